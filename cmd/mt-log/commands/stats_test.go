package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lowpan-mt/mt-go/pkg/log"
	"github.com/lowpan-mt/mt-go/pkg/mt"
)

func TestStatsCountsByLayer(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, Layer: log.LayerTransport, Category: log.CategoryMessage},
		{Timestamp: ts, Layer: log.LayerTransport, Category: log.CategoryMessage},
		{Timestamp: ts, Layer: log.LayerFrame, Category: log.CategoryMessage},
		{Timestamp: ts, Layer: log.LayerService, Category: log.CategoryState},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "Total Events: 4") {
		t.Errorf("expected total, got: %s", output)
	}
	if !strings.Contains(output, "TRANSPORT:   2") {
		t.Errorf("expected TRANSPORT count, got: %s", output)
	}
	if !strings.Contains(output, "FRAME:") || !strings.Contains(output, "SERVICE:") {
		t.Errorf("expected FRAME and SERVICE layers, got: %s", output)
	}
}

func TestStatsCountsByCategory(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, Category: log.CategoryMessage},
		{Timestamp: ts, Category: log.CategoryFragment},
		{Timestamp: ts, Category: log.CategoryState},
		{Timestamp: ts, Category: log.CategoryError, Error: &log.ErrorEventData{Message: "test"}},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{"MESSAGE:", "FRAGMENT:", "STATE:", "ERROR:", "Errors: 1"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestStatsCountsCommandsAndStatuses(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := append(pingExchange(ts), pingExchange(ts.Add(time.Second))...)
	msg := mt.NewFrame(mt.TypeAREQ, mt.SubsystemMAC, mt.MACDataReq, nil)
	events = append(events,
		log.Event{
			Timestamp: ts, ConnectionID: "abc12345", Category: log.CategoryMessage,
			Message: log.NewMessageEvent(mt.NewFrame(mt.TypeSRSP, mt.SubsystemMAC, mt.MACSetReq, []byte{0xE8}), -1),
		},
		log.Event{
			Timestamp: ts, ConnectionID: "abc12345", Category: log.CategoryFragment,
			Fragment: log.NewFragmentEvent(mt.NewReportFrame(msg, mt.ExtVersionFragAck, 0, mt.FragmentReport{Status: mt.FragResend})),
		},
	)

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "SYS.PING:") {
		t.Errorf("expected SYS.PING command count, got: %s", output)
	}
	if !strings.Contains(output, "INVALID_PARAMETER:") {
		t.Errorf("expected status count, got: %s", output)
	}
	if !strings.Contains(output, "RESEND:") {
		t.Errorf("expected fragment report count, got: %s", output)
	}
	if !strings.Contains(output, "Requests: 2") {
		t.Errorf("expected per-connection request count, got: %s", output)
	}
}

func TestStatsCountsConnections(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, ConnectionID: "conn-aaaa-bbbb", Category: log.CategoryMessage, RemoteAddr: "192.0.2.1:50000"},
		{Timestamp: ts.Add(time.Second), ConnectionID: "conn-aaaa-bbbb", Category: log.CategoryMessage},
		{Timestamp: ts.Add(2 * time.Second), ConnectionID: "conn-cccc-dddd", Category: log.CategoryMessage},
		{
			Timestamp: ts.Add(3 * time.Second), ConnectionID: "conn-cccc-dddd", Category: log.CategoryState,
			StateChange: &log.StateChangeEvent{Entity: log.StateEntityBridge, OldState: "RUNNING", NewState: "RUNNING", Reason: "reset HARD"},
		},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "Connections: 2") {
		t.Errorf("expected 2 connections, got: %s", output)
	}
	if !strings.Contains(output, "[conn-aaa] 2 events, duration 1s") {
		t.Errorf("expected first connection summary, got: %s", output)
	}
	if !strings.Contains(output, "Remote: 192.0.2.1:50000") {
		t.Errorf("expected remote address, got: %s", output)
	}
	if !strings.Contains(output, "Resets: 1") {
		t.Errorf("expected reset count, got: %s", output)
	}
	if !strings.Contains(output, "Duration:   3s") {
		t.Errorf("expected overall duration, got: %s", output)
	}
}

func TestStatsEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("expected zero events, got: %s", buf.String())
	}
}
