package log

import (
	"testing"

	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{DirectionIn.String(), "IN"},
		{DirectionOut.String(), "OUT"},
		{Direction(9).String(), "UNKNOWN"},
		{LayerTransport.String(), "TRANSPORT"},
		{LayerFrame.String(), "FRAME"},
		{LayerService.String(), "SERVICE"},
		{Layer(9).String(), "UNKNOWN"},
		{CategoryMessage.String(), "MESSAGE"},
		{CategoryFragment.String(), "FRAGMENT"},
		{CategoryState.String(), "STATE"},
		{CategoryError.String(), "ERROR"},
		{Category(9).String(), "UNKNOWN"},
		{RoleBridge.String(), "BRIDGE"},
		{RoleHost.String(), "HOST"},
		{Role(9).String(), "UNKNOWN"},
		{StateEntityConnection.String(), "CONNECTION"},
		{StateEntitySendSession.String(), "SEND_SESSION"},
		{StateEntityRecvSession.String(), "RECV_SESSION"},
		{StateEntityBridge.String(), "BRIDGE"},
		{StateEntity(9).String(), "UNKNOWN"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestNewMessageEvent(t *testing.T) {
	t.Run("status response", func(t *testing.T) {
		f := mt.NewFrame(mt.TypeSRSP, mt.SubsystemMAC, mt.MACSetReq, []byte{uint8(wire.StatusUnsupportedAttribute)})
		m := NewMessageEvent(f, 16)
		if m.Status == nil || *m.Status != wire.StatusUnsupportedAttribute {
			t.Fatalf("Status = %v, want unsupportedAttribute", m.Status)
		}
		if m.Subsystem != mt.SubsystemMAC || m.Command != mt.MACSetReq || m.Type != mt.TypeSRSP {
			t.Errorf("header = %s/%s/0x%02X", m.Type, m.Subsystem, m.Command)
		}
	})

	t.Run("truncated body", func(t *testing.T) {
		f := mt.NewFrame(mt.TypeAREQ, mt.SubsystemMAC, mt.MACDataInd, make([]byte, 100))
		m := NewMessageEvent(f, 10)
		if len(m.Data) != 10 || m.Length != 100 {
			t.Errorf("len(Data) = %d, Length = %d, want 10, 100", len(m.Data), m.Length)
		}
		if m.Status != nil {
			t.Error("AREQ must not carry a status")
		}
	})

	t.Run("no limit", func(t *testing.T) {
		f := mt.NewFrame(mt.TypeSREQ, mt.SubsystemSys, mt.SysPing, make([]byte, 40))
		if m := NewMessageEvent(f, -1); len(m.Data) != 40 {
			t.Errorf("len(Data) = %d, want 40", len(m.Data))
		}
	})
}

func TestNewFragmentEvent(t *testing.T) {
	msg := mt.NewFrame(mt.TypeSRSP, mt.SubsystemMAC, mt.MACGetReq, nil)

	data := mt.NewFragmentFrame(msg, 1, mt.FragmentData{Block: 0, Total: 600, Chunk: make([]byte, 247)})
	ev := NewFragmentEvent(data)
	if ev == nil {
		t.Fatal("NewFragmentEvent(data) = nil")
	}
	if ev.Version != mt.ExtVersionFragment || ev.Total != 600 || ev.ChunkSize != 247 || ev.StackID != 1 {
		t.Errorf("data event = %+v", ev)
	}

	ack := mt.NewReportFrame(msg, mt.ExtVersionFragAck, 1, mt.FragmentReport{Block: 2, Status: mt.FragResend})
	ev = NewFragmentEvent(ack)
	if ev == nil || ev.Status == nil || *ev.Status != mt.FragResend || ev.Block != 2 {
		t.Errorf("ack event = %+v", ev)
	}

	if NewFragmentEvent(msg) != nil {
		t.Error("basic frame should not produce a fragment event")
	}
	bad := ack
	bad.Data = []byte{1}
	if NewFragmentEvent(bad) != nil {
		t.Error("malformed report should not produce a fragment event")
	}
}
