package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lowpan-mt/mt-go/pkg/log"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

func TestFormatFrameEvent(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)
	event := log.Event{
		Timestamp:    ts,
		ConnectionID: "abc12345-6789-0123-4567-890abcdef012",
		Direction:    log.DirectionOut,
		Layer:        log.LayerTransport,
		Category:     log.CategoryMessage,
		Frame: &log.FrameEvent{
			Size: 5,
			Data: []byte{0x00, 0x21, 0x01},
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "2026-01-28T10:15:32.123456Z") {
		t.Errorf("expected microsecond timestamp, got: %s", output)
	}
	if !strings.Contains(output, "[conn:abc12345]") {
		t.Errorf("expected shortened connection ID, got: %s", output)
	}
	if !strings.Contains(output, "OUT TRANSPORT Frame") {
		t.Errorf("expected header, got: %s", output)
	}
	if !strings.Contains(output, "Size: 5 bytes") {
		t.Errorf("expected frame size, got: %s", output)
	}
	if !strings.Contains(output, "Data: 002101\n") {
		t.Errorf("expected frame data, got: %s", output)
	}
}

func TestFormatMessageEventRequest(t *testing.T) {
	f := mt.NewFrame(mt.TypeSREQ, mt.SubsystemMAC, mt.MACSetReq, []byte{0x50, 0x34, 0x12})
	event := log.Event{
		Timestamp:    time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC),
		ConnectionID: "abc12345",
		Direction:    log.DirectionIn,
		Layer:        log.LayerFrame,
		Category:     log.CategoryMessage,
		Message:      log.NewMessageEvent(f, 2),
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "IN  FRAME SREQ MAC.SET_REQ") {
		t.Errorf("expected named command, got: %s", output)
	}
	if !strings.Contains(output, "Length: 3") {
		t.Errorf("expected length, got: %s", output)
	}
	if !strings.Contains(output, "Data: 5034 (truncated)") {
		t.Errorf("expected truncated data, got: %s", output)
	}
	if strings.Contains(output, "Status:") {
		t.Errorf("request should not carry a status, got: %s", output)
	}
}

func TestFormatMessageEventResponse(t *testing.T) {
	f := mt.NewFrame(mt.TypeSRSP, mt.SubsystemMAC, mt.MACGetReq, []byte{byte(wire.StatusSuccess)})
	msg := log.NewMessageEvent(f, -1)
	processingTime := 2333 * time.Microsecond
	msg.ProcessingTime = &processingTime
	event := log.Event{
		Timestamp: time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC),
		Direction: log.DirectionOut,
		Layer:     log.LayerFrame,
		Category:  log.CategoryMessage,
		Message:   msg,
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "SRSP MAC.GET_REQ") {
		t.Errorf("expected response label, got: %s", output)
	}
	if !strings.Contains(output, "Status: SUCCESS (0)") {
		t.Errorf("expected status, got: %s", output)
	}
	if !strings.Contains(output, "Duration: 2.333ms") {
		t.Errorf("expected processing time, got: %s", output)
	}
}

func TestFormatExtendedMessage(t *testing.T) {
	f := mt.NewFrame(mt.TypeAREQ, mt.SubsystemMAC, 0x85, []byte{1, 2})
	f.Extended = true
	f.Version = mt.ExtVersionStackID
	f.StackID = 3
	event := log.Event{
		Direction: log.DirectionOut,
		Layer:     log.LayerFrame,
		Category:  log.CategoryMessage,
		Message:   log.NewMessageEvent(f, -1),
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)

	if !strings.Contains(buf.String(), "Extended: STACK_ID stack=3") {
		t.Errorf("expected extended header, got: %s", buf.String())
	}
}

func TestFormatFragmentEvent(t *testing.T) {
	msg := mt.NewFrame(mt.TypeAREQ, mt.SubsystemMAC, mt.MACDataReq, nil)
	data := mt.NewFragmentFrame(msg, 1, mt.FragmentData{Block: 0, Total: 600, Chunk: make([]byte, 200)})
	ack := mt.NewReportFrame(msg, mt.ExtVersionFragAck, 1, mt.FragmentReport{Block: 0, Status: mt.FragResend})

	var buf bytes.Buffer
	formatEvent(&buf, log.Event{Layer: log.LayerFrame, Category: log.CategoryFragment, Fragment: log.NewFragmentEvent(data)})
	output := buf.String()
	if !strings.Contains(output, "FRAME FRAGMENT") {
		t.Errorf("expected fragment label, got: %s", output)
	}
	if !strings.Contains(output, "Total: 600 bytes") || !strings.Contains(output, "Chunk: 200 bytes") {
		t.Errorf("expected block sizes, got: %s", output)
	}

	buf.Reset()
	formatEvent(&buf, log.Event{Layer: log.LayerFrame, Category: log.CategoryFragment, Fragment: log.NewFragmentEvent(ack)})
	output = buf.String()
	if !strings.Contains(output, "FRAG_ACK") || !strings.Contains(output, "Status: RESEND") {
		t.Errorf("expected ack status, got: %s", output)
	}
}

func TestFormatStateChangeEvent(t *testing.T) {
	event := log.Event{
		Layer:    log.LayerService,
		Category: log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityBridge,
			OldState: "RUNNING",
			NewState: "RUNNING",
			Reason:   "reset SOFT",
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "Entity: BRIDGE") {
		t.Errorf("expected entity, got: %s", output)
	}
	if !strings.Contains(output, "RUNNING -> RUNNING") {
		t.Errorf("expected transition, got: %s", output)
	}
	if !strings.Contains(output, "Reason: reset SOFT") {
		t.Errorf("expected reason, got: %s", output)
	}
}

func TestFormatErrorEvent(t *testing.T) {
	code := 0xFC
	event := log.Event{
		Layer:    log.LayerFrame,
		Category: log.CategoryError,
		Error: &log.ErrorEventData{
			Layer:   log.LayerFrame,
			Message: "reassembly timeout",
			Code:    &code,
			Context: "MAC.DATA_REQ",
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	for _, want := range []string{"Error", "Message: reassembly timeout", "Code: 252", "Context: MAC.DATA_REQ"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q, got: %s", want, output)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Nanosecond, "0.500us"},
		{1500 * time.Microsecond, "1.500ms"},
		{2500 * time.Millisecond, "2.500s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestParseFlags(t *testing.T) {
	if l, err := parseLayer("Frame"); err != nil || l != log.LayerFrame {
		t.Errorf("parseLayer(Frame) = %v, %v", l, err)
	}
	if _, err := parseLayer("wire"); err == nil {
		t.Error("expected error for unknown layer")
	}
	if d, err := parseDirection("OUT"); err != nil || d != log.DirectionOut {
		t.Errorf("parseDirection(OUT) = %v, %v", d, err)
	}
	if c, err := parseCategory("fragment"); err != nil || c != log.CategoryFragment {
		t.Errorf("parseCategory(fragment) = %v, %v", c, err)
	}
	if s, err := parseSubsystem("MAC"); err != nil || s != mt.SubsystemMAC {
		t.Errorf("parseSubsystem(MAC) = %v, %v", s, err)
	}
	if s, err := parseSubsystem("7"); err != nil || s != mt.SubsystemUtil {
		t.Errorf("parseSubsystem(7) = %v, %v", s, err)
	}
	for _, bad := range []string{"32", "zdo", "-1"} {
		if _, err := parseSubsystem(bad); err == nil {
			t.Errorf("parseSubsystem(%q): expected error", bad)
		}
	}
	if ft, err := parseType("areq"); err != nil || ft != mt.TypeAREQ {
		t.Errorf("parseType(areq) = %v, %v", ft, err)
	}
	if b, err := parseByte("command", "0x8A"); err != nil || b != 0x8A {
		t.Errorf("parseByte(0x8A) = %v, %v", b, err)
	}
}

func TestRunViewFiltersBySubsystem(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := pingExchange(ts)
	events = append(events, log.Event{
		Timestamp: ts,
		Layer:     log.LayerFrame,
		Category:  log.CategoryMessage,
		Message:   log.NewMessageEvent(mt.NewFrame(mt.TypeSREQ, mt.SubsystemMAC, mt.MACGetReq, []byte{0x50}), -1),
	})
	path := createTestLogFile(t, events)

	mac := mt.SubsystemMAC
	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{Subsystem: &mac}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "MAC.GET_REQ") {
		t.Errorf("expected MAC event, got: %s", output)
	}
	if strings.Contains(output, "SYS.PING") {
		t.Errorf("SYS events should be filtered out, got: %s", output)
	}
}
