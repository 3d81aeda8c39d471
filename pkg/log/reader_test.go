package log

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

func writeEvents(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mlog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()
	return path
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	mac := mt.SubsystemMAC
	sys := mt.SubsystemSys
	in := DirectionIn
	frame := LayerFrame
	fragment := CategoryFragment
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	events := []Event{
		{Timestamp: base, ConnectionID: "a", Direction: DirectionIn, Layer: LayerTransport, Frame: &FrameEvent{Size: 5}},
		{Timestamp: base.Add(time.Second), ConnectionID: "a", Direction: DirectionIn, Layer: LayerFrame,
			Message: &MessageEvent{Type: mt.TypeSREQ, Subsystem: mt.SubsystemMAC}},
		{Timestamp: base.Add(2 * time.Second), ConnectionID: "b", Direction: DirectionOut, Layer: LayerFrame,
			Message: &MessageEvent{Type: mt.TypeSRSP, Subsystem: mt.SubsystemSys}},
		{Timestamp: base.Add(3 * time.Second), ConnectionID: "b", Direction: DirectionOut, Layer: LayerFrame,
			Category: CategoryFragment, Fragment: &FragmentEvent{Version: mt.ExtVersionFragment}},
	}
	path := writeEvents(t, events)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"none", Filter{}, 4},
		{"connection", Filter{ConnectionID: "b"}, 2},
		{"direction", Filter{Direction: &in}, 2},
		{"layer", Filter{Layer: &frame}, 3},
		{"category", Filter{Category: &fragment}, 1},
		{"time range", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"subsystem MAC", Filter{Subsystem: &mac}, 1},
		{"subsystem SYS", Filter{Subsystem: &sys}, 1},
		{"combined", Filter{ConnectionID: "a", Layer: &frame, Subsystem: &mac}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(readAll(t, path, tt.filter)); got != tt.want {
				t.Errorf("got %d events, want %d", got, tt.want)
			}
		})
	}
}

func TestReaderMessageFilters(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	success := wire.StatusSuccess
	denied := wire.StatusUnsupportedAttribute

	events := []Event{
		{Timestamp: base, Direction: DirectionIn, Layer: LayerFrame,
			Message: &MessageEvent{Type: mt.TypeSREQ, Subsystem: mt.SubsystemMAC, Command: 0x09}},
		{Timestamp: base, Direction: DirectionOut, Layer: LayerFrame,
			Message: &MessageEvent{Type: mt.TypeSRSP, Subsystem: mt.SubsystemMAC, Command: 0x09, Status: &denied}},
		{Timestamp: base, Direction: DirectionIn, Layer: LayerFrame,
			Message: &MessageEvent{Type: mt.TypeSREQ, Subsystem: mt.SubsystemSys, Command: 0x01,
				Extended: true, Version: mt.ExtVersionStackID, StackID: 2}},
		{Timestamp: base, Direction: DirectionOut, Layer: LayerFrame,
			Message: &MessageEvent{Type: mt.TypeSRSP, Subsystem: mt.SubsystemSys, Command: 0x01, Status: &success}},
		{Timestamp: base, Direction: DirectionIn, Layer: LayerFrame, Category: CategoryFragment,
			Fragment: &FragmentEvent{Version: mt.ExtVersionFragment, StackID: 2, Block: 1}},
		{Timestamp: base, Layer: LayerService, Category: CategoryState,
			StateChange: &StateChangeEvent{Entity: StateEntityBridge, NewState: "RUNNING"}},
	}
	path := writeEvents(t, events)

	srsp := mt.TypeSRSP
	cmd := uint8(0x09)
	stack := uint8(2)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"type", Filter{Type: &srsp}, 2},
		{"command", Filter{Command: &cmd}, 2},
		{"status", Filter{Status: &denied}, 1},
		{"status success", Filter{Status: &success}, 1},
		{"stack id", Filter{StackID: &stack}, 2},
		{"type and command", Filter{Type: &srsp, Command: &cmd}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(readAll(t, path, tt.filter)); got != tt.want {
				t.Errorf("got %d events, want %d", got, tt.want)
			}
		})
	}
}

func TestReaderCountsSkipped(t *testing.T) {
	path := writeEvents(t, []Event{{ConnectionID: "a"}, {ConnectionID: "b"}, {ConnectionID: "a"}})

	r, err := NewFilteredReader(path, Filter{ConnectionID: "a"})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	for {
		if _, err := r.Next(); err != nil {
			break
		}
	}
	if r.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1", r.Skipped())
	}
}

func TestReaderEmptyFile(t *testing.T) {
	path := writeEvents(t, nil)

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReaderTruncatedRecord(t *testing.T) {
	path := writeEvents(t, []Event{{ConnectionID: "whole"}})

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	f.Write([]byte{0xA3, 0x01})
	f.Close()

	r, err := NewReader(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if e, err := r.Next(); err != nil || e.ConnectionID != "whole" {
		t.Fatalf("first Next = %+v, %v", e, err)
	}
	if _, err := r.Next(); err == nil || err == io.EOF {
		t.Errorf("expected decode error for torn record, got %v", err)
	}
}

func TestNewReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "nope.mlog")); err == nil {
		t.Error("expected error")
	}
}
