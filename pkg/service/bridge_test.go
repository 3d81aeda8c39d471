package service

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowpan-mt/mt-go/internal/macsim"
	"github.com/lowpan-mt/mt-go/pkg/fragment"
	"github.com/lowpan-mt/mt-go/pkg/interaction"
	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/nv"
	"github.com/lowpan-mt/mt-go/pkg/payload"
	"github.com/lowpan-mt/mt-go/pkg/subscription"
	"github.com/lowpan-mt/mt-go/pkg/transport"
	"github.com/lowpan-mt/mt-go/pkg/version"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

const readTimeout = 2 * time.Second

// harness serves a bridge over an in-memory pipe and plays the host.
type harness struct {
	t      *testing.T
	bridge *Bridge
	engine *macsim.Engine
	host   *transport.Conn
	events chan Event

	cancel   context.CancelFunc
	done     chan error
	stopOnce sync.Once
	err      error
}

func newHarness(t *testing.T, mutate func(*BridgeConfig)) *harness {
	t.Helper()

	engine := macsim.New(macsim.DefaultConfig())
	config := DefaultBridgeConfig()
	if mutate != nil {
		mutate(&config)
	}
	b, err := NewBridge(engine, config)
	require.NoError(t, err)

	host, link := transport.Pipe(nil)
	ctx, cancel := context.WithCancel(context.Background())
	h := &harness{
		t:      t,
		bridge: b,
		engine: engine,
		host:   host,
		events: make(chan Event, 16),
		cancel: cancel,
		done:   make(chan error, 1),
	}
	b.OnEvent(func(ev Event) { h.events <- ev })

	go func() { h.done <- b.Serve(ctx, link) }()
	t.Cleanup(func() { h.stop() })
	return h
}

func (h *harness) stop() error {
	h.stopOnce.Do(func() {
		h.cancel()
		h.host.Close()
		select {
		case h.err = <-h.done:
		case <-time.After(readTimeout):
			h.t.Error("bridge did not stop")
		}
	})
	return h.err
}

func (h *harness) send(f mt.Frame) {
	h.t.Helper()
	require.NoError(h.t, h.host.Send(f))
}

func (h *harness) read() mt.Frame {
	h.t.Helper()
	data, err := h.host.Receive(readTimeout)
	require.NoError(h.t, err)
	f, err := mt.Decode(data)
	require.NoError(h.t, err)
	return f
}

func (h *harness) request(f mt.Frame) mt.Frame {
	h.t.Helper()
	h.send(f)
	return h.read()
}

// expectResetInd reads the SYS_RESET_IND announcing a start.
func (h *harness) expectResetInd(reason uint8) {
	h.t.Helper()
	f := h.read()
	require.Equal(h.t, mt.TypeAREQ, f.Type)
	require.Equal(h.t, mt.SubsystemSys, f.Subsystem)
	require.Equal(h.t, mt.SysResetInd, f.Command)
	require.Len(h.t, f.Data, interaction.ResetIndSize)
	assert.Equal(h.t, reason, f.Data[0])
	assert.Equal(h.t, version.Default.Bytes(), f.Data[1:])
}

func (h *harness) waitEvent(typ EventType) Event {
	h.t.Helper()
	deadline := time.After(readTimeout)
	for {
		select {
		case ev := <-h.events:
			if ev.Type == typ {
				return ev
			}
		case <-deadline:
			h.t.Fatalf("no %s event", typ)
			return Event{}
		}
	}
}

// sendFragmented sends msg as fragments, acknowledged block by block.
func (h *harness) sendFragmented(msg mt.Frame) {
	h.t.Helper()
	s := fragment.NewSplitter(fragment.DefaultConfig(), DefaultStackID)
	res, err := s.Start(msg, time.Now())
	require.NoError(h.t, err)

	for res.State == fragment.SendAwaitAck {
		require.NotNil(h.t, res.Frame)
		h.send(*res.Frame)

		ack := h.read()
		require.True(h.t, ack.Extended)
		require.Equal(h.t, mt.ExtVersionFragAck, ack.Version)
		report, err := mt.ParseFragmentReport(ack.Data)
		require.NoError(h.t, err)
		res, err = s.HandleAck(report, time.Now())
		require.NoError(h.t, err)
	}
	require.Equal(h.t, fragment.SendDone, res.State)
}

// receiveFragmented reassembles a fragmented message, acknowledging each
// block.
func (h *harness) receiveFragmented() mt.Frame {
	h.t.Helper()
	a := fragment.NewAssembler(fragment.DefaultConfig(), DefaultStackID)
	for {
		f := h.read()
		require.True(h.t, f.Extended)
		require.Equal(h.t, mt.ExtVersionFragment, f.Version)

		res := a.Accept(f, time.Now())
		require.NotNil(h.t, res.Reply)
		h.send(*res.Reply)

		switch res.State {
		case fragment.RecvComplete:
			return *res.Message
		case fragment.RecvReceiving:
		default:
			h.t.Fatalf("reassembly failed: %s", res.Reason)
		}
	}
}

func loopbackBody(repeats uint8, interval uint32, data []byte) []byte {
	w := wire.NewWriter(interaction.LoopbackHeaderSize + len(data))
	w.PutUint8(repeats)
	w.PutUint32(interval)
	w.PutBytes(data)
	return w.Bytes()
}

func TestNewBridgeValidation(t *testing.T) {
	_, err := NewBridge(nil, DefaultBridgeConfig())
	assert.ErrorIs(t, err, ErrNilEngine)

	config := DefaultBridgeConfig()
	config.StackID = 9
	_, err = NewBridge(macsim.New(macsim.DefaultConfig()), config)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestBridgeAnnouncesPowerUp(t *testing.T) {
	h := newHarness(t, nil)
	h.expectResetInd(interaction.ResetReasonPowerUp)

	ev := h.waitEvent(EventLinkUp)
	assert.NotEmpty(t, ev.ConnectionID)
	assert.Equal(t, StateRunning, h.bridge.State())
}

func TestBridgeSysCommands(t *testing.T) {
	h := newHarness(t, nil)
	h.expectResetInd(interaction.ResetReasonPowerUp)

	t.Run("ping", func(t *testing.T) {
		rsp := h.request(mt.NewFrame(mt.TypeSREQ, mt.SubsystemSys, mt.SysPing, nil))
		assert.Equal(t, mt.TypeSRSP, rsp.Type)
		assert.Equal(t, mt.SysPing, rsp.Command)
		r := wire.NewReader(rsp.Data)
		assert.Equal(t, h.bridge.Registry().Capabilities(), r.Uint16())
	})

	t.Run("version", func(t *testing.T) {
		rsp := h.request(mt.NewFrame(mt.TypeSREQ, mt.SubsystemSys, mt.SysVersion, nil))
		assert.Equal(t, version.Default.Bytes(), rsp.Data)
	})

	t.Run("bad length", func(t *testing.T) {
		rsp := h.request(mt.NewFrame(mt.TypeSREQ, mt.SubsystemSys, mt.SysPing, []byte{1}))
		assert.Equal(t, payload.StatusBody(wire.StatusLengthError), rsp.Data)
	})
}

func TestBridgeFramingErrors(t *testing.T) {
	h := newHarness(t, nil)
	h.expectResetInd(interaction.ResetReasonPowerUp)

	t.Run("unknown subsystem", func(t *testing.T) {
		rsp := h.request(mt.NewFrame(mt.TypeSREQ, mt.Subsystem(9), 0x42, nil))
		assert.Equal(t, mt.SubsystemRes0, rsp.Subsystem)
		assert.Equal(t, uint8(0x42), rsp.Command)
		assert.Equal(t, payload.StatusBody(wire.StatusSubSysError), rsp.Data)
	})

	t.Run("unknown command", func(t *testing.T) {
		rsp := h.request(mt.NewFrame(mt.TypeSREQ, mt.SubsystemSys, 0x7F, nil))
		assert.Equal(t, mt.SubsystemSys, rsp.Subsystem)
		assert.Equal(t, payload.StatusBody(wire.StatusCommandIDError), rsp.Data)
	})

	t.Run("dropped areq", func(t *testing.T) {
		// The AREQ is dropped; the next answer belongs to the ping.
		h.send(mt.NewFrame(mt.TypeAREQ, mt.Subsystem(9), 0x01, nil))
		rsp := h.request(mt.NewFrame(mt.TypeSREQ, mt.SubsystemSys, mt.SysPing, nil))
		assert.Equal(t, mt.SysPing, rsp.Command)
	})
}

func TestBridgeExtendedFrames(t *testing.T) {
	h := newHarness(t, nil)
	h.expectResetInd(interaction.ResetReasonPowerUp)

	ping := mt.NewFrame(mt.TypeSREQ, mt.SubsystemSys, mt.SysPing, nil)

	t.Run("stack id", func(t *testing.T) {
		req := ping
		req.Extended, req.Version, req.StackID = true, mt.ExtVersionStackID, DefaultStackID
		rsp := h.request(req)
		assert.Equal(t, mt.TypeSRSP, rsp.Type)
		assert.True(t, rsp.Extended)
		assert.Equal(t, mt.ExtVersionStackID, rsp.Version)
		assert.Equal(t, uint8(DefaultStackID), rsp.StackID)
		assert.Len(t, rsp.Data, 2)
	})

	tests := []struct {
		name    string
		version mt.ExtVersion
		stackID uint8
		data    []byte
		block   uint8
	}{
		{name: "wrong stack", version: mt.ExtVersionStackID, stackID: 3},
		{name: "unknown version", version: mt.ExtVersion(9), stackID: DefaultStackID},
		{name: "fragment for other stack", version: mt.ExtVersionFragment, stackID: 2, data: []byte{4, 0xAA}, block: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ping
			req.Extended, req.Version, req.StackID, req.Data = true, tt.version, tt.stackID, tt.data
			rsp := h.request(req)
			require.True(t, rsp.Extended)
			assert.Equal(t, mt.ExtVersionStatus, rsp.Version)
			report, err := mt.ParseFragmentReport(rsp.Data)
			require.NoError(t, err)
			assert.Equal(t, mt.FragmentReport{Block: tt.block, Status: mt.FragBadStack}, report)
		})
	}
}

func TestBridgeFragmentedLoopback(t *testing.T) {
	h := newHarness(t, nil)
	h.expectResetInd(interaction.ResetReasonPowerUp)

	body := loopbackBody(0, 0, bytes.Repeat([]byte{0x5A}, 600))
	h.sendFragmented(mt.NewFrame(mt.TypeSREQ, mt.SubsystemUtil, mt.UtilLoopback, body))

	rsp := h.receiveFragmented()
	assert.Equal(t, mt.TypeSRSP, rsp.Type)
	assert.Equal(t, mt.SubsystemUtil, rsp.Subsystem)
	assert.Equal(t, mt.UtilLoopback, rsp.Command)
	assert.Equal(t, body, rsp.Data)

	// The link is usable again once the exchange is done.
	ping := h.request(mt.NewFrame(mt.TypeSREQ, mt.SubsystemSys, mt.SysPing, nil))
	assert.Equal(t, mt.SysPing, ping.Command)
}

func TestBridgeBusySplitter(t *testing.T) {
	h := newHarness(t, func(c *BridgeConfig) {
		c.Fragment.AckTimeout = time.Minute
	})
	h.expectResetInd(interaction.ResetReasonPowerUp)

	first := loopbackBody(0, 0, bytes.Repeat([]byte{0x01}, 400))
	h.sendFragmented(mt.NewFrame(mt.TypeSREQ, mt.SubsystemUtil, mt.UtilLoopback, first))

	// Leave the first block of the response unacknowledged.
	block0 := h.read()
	require.Equal(t, mt.ExtVersionFragment, block0.Version)

	second := loopbackBody(0, 0, bytes.Repeat([]byte{0x02}, 400))
	h.sendFragmented(mt.NewFrame(mt.TypeSREQ, mt.SubsystemUtil, mt.UtilLoopback, second))

	rsp := h.read()
	assert.False(t, rsp.Extended)
	assert.Equal(t, mt.UtilLoopback, rsp.Command)
	assert.Equal(t, payload.StatusBody(wire.StatusNoResources), rsp.Data)
}

func TestBridgeLoopbackRepeats(t *testing.T) {
	h := newHarness(t, nil)
	h.expectResetInd(interaction.ResetReasonPowerUp)

	body := loopbackBody(2, 10, []byte{0xAA, 0xBB})
	rsp := h.request(mt.NewFrame(mt.TypeSREQ, mt.SubsystemUtil, mt.UtilLoopback, body))
	assert.Equal(t, mt.TypeSRSP, rsp.Type)
	assert.Equal(t, body, rsp.Data)

	for i := 0; i < 2; i++ {
		f := h.read()
		assert.Equal(t, mt.TypeAREQ, f.Type)
		assert.Equal(t, mt.UtilLoopback, f.Command)
		assert.Equal(t, body, f.Data)
	}
}

func TestBridgeCallbackSubscription(t *testing.T) {
	h := newHarness(t, nil)
	h.expectResetInd(interaction.ResetReasonPowerUp)

	h.engine.Inject(mac.DataCnf{Status: wire.StatusSuccess, MSDUHandle: 7})
	f := h.read()
	assert.Equal(t, mt.TypeAREQ, f.Type)
	assert.Equal(t, mt.SubsystemMAC, f.Subsystem)
	assert.Equal(t, mt.MACDataCnf, f.Command)

	sub := wire.NewWriter(interaction.CallbackSubReqSize)
	sub.PutUint8(uint8(mt.SubsystemMAC))
	sub.PutUint32(subscription.ClearFlag | payload.CallbackDataCnf)
	rsp := h.request(mt.NewFrame(mt.TypeSREQ, mt.SubsystemUtil, mt.UtilCallbackSub, sub.Bytes()))
	require.Len(t, rsp.Data, 5)
	assert.Equal(t, uint8(wire.StatusSuccess), rsp.Data[0])
	assert.False(t, h.bridge.Table().Enabled(mt.SubsystemMAC, payload.CallbackDataCnf))

	// The suppressed confirm never reaches the host.
	h.engine.Inject(mac.DataCnf{Status: wire.StatusSuccess, MSDUHandle: 8})
	ping := h.request(mt.NewFrame(mt.TypeSREQ, mt.SubsystemSys, mt.SysPing, nil))
	assert.Equal(t, mt.SysPing, ping.Command)
}

func TestBridgeReset(t *testing.T) {
	resets := make(chan interaction.ResetType, 1)
	storage := nv.NewMemoryStorage()
	h := newHarness(t, func(c *BridgeConfig) {
		c.Storage = storage
		c.Reset = func(rt interaction.ResetType) { resets <- rt }
	})
	h.expectResetInd(interaction.ResetReasonPowerUp)

	require.Equal(t, wire.StatusSuccess, h.engine.SetPIB(mac.AttrPANID, 0x1234))
	sub := wire.NewWriter(interaction.CallbackSubReqSize)
	sub.PutUint8(uint8(mt.SubsystemMAC))
	sub.PutUint32(subscription.ClearFlag | payload.CallbackDataCnf)
	h.request(mt.NewFrame(mt.TypeSREQ, mt.SubsystemUtil, mt.UtilCallbackSub, sub.Bytes()))

	h.send(mt.NewFrame(mt.TypeAREQ, mt.SubsystemSys, mt.SysResetReq, []byte{uint8(interaction.ResetSoft)}))
	h.expectResetInd(interaction.ResetReasonSoft)

	select {
	case rt := <-resets:
		assert.Equal(t, interaction.ResetSoft, rt)
	case <-time.After(readTimeout):
		t.Fatal("reset hook not called")
	}
	ev := h.waitEvent(EventReset)
	assert.Equal(t, interaction.ResetSoft, ev.ResetType)

	pan, _ := h.engine.GetPIB(mac.AttrPANID)
	assert.Equal(t, uint32(0xFFFF), pan)
	assert.True(t, h.bridge.Table().Enabled(mt.SubsystemMAC, payload.CallbackDataCnf))

	// The reason is consumed by the indication.
	_, ok := storage.Item(nv.ResetReasonItem)
	assert.False(t, ok)
}

func TestBridgeServeLifecycle(t *testing.T) {
	h := newHarness(t, nil)
	h.expectResetInd(interaction.ResetReasonPowerUp)
	h.waitEvent(EventLinkUp)

	other, _ := transport.Pipe(nil)
	defer other.Close()
	assert.ErrorIs(t, h.bridge.Serve(context.Background(), other), ErrAlreadyStarted)

	// A host hangup ends Serve cleanly.
	require.NoError(t, h.host.Close())
	ev := h.waitEvent(EventLinkDown)
	assert.NoError(t, ev.Error)
	assert.NoError(t, h.stop())
	assert.Equal(t, StateStopped, h.bridge.State())
}

func TestBridgeServesAgain(t *testing.T) {
	engine := macsim.New(macsim.DefaultConfig())
	b, err := NewBridge(engine, DefaultBridgeConfig())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		host, link := transport.Pipe(nil)
		done := make(chan error, 1)
		go func() { done <- b.Serve(context.Background(), link) }()

		if i == 0 {
			data, err := host.Receive(readTimeout)
			require.NoError(t, err)
			f, err := mt.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, mt.SysResetInd, f.Command)
		}

		// Only the first link sees the power-up indication.
		require.NoError(t, host.Send(mt.NewFrame(mt.TypeSREQ, mt.SubsystemSys, mt.SysPing, nil)))
		data, err := host.Receive(readTimeout)
		require.NoError(t, err)
		f, err := mt.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, mt.SysPing, f.Command)

		host.Close()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(readTimeout):
			t.Fatal("serve did not return")
		}
	}
}
