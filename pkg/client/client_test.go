package client

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowpan-mt/mt-go/internal/macsim"
	"github.com/lowpan-mt/mt-go/pkg/interaction"
	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/nv"
	"github.com/lowpan-mt/mt-go/pkg/service"
	"github.com/lowpan-mt/mt-go/pkg/transport"
	"github.com/lowpan-mt/mt-go/pkg/version"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

const waitTimeout = 2 * time.Second

// connect serves a simulated bridge and returns a started client for it
// plus the channel of indications it received.
func connect(t *testing.T) (*Client, <-chan mt.Frame) {
	t.Helper()

	config := service.DefaultBridgeConfig()
	config.Storage = nv.NewMemoryStorage()
	bridge, err := service.NewBridge(macsim.New(macsim.DefaultConfig()), config)
	require.NoError(t, err)

	hostConn, bridgeConn := transport.Pipe(nil)
	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- bridge.Serve(ctx, bridgeConn) }()

	indications := make(chan mt.Frame, 16)
	c := New(hostConn, DefaultConfig())
	c.OnIndication(func(f mt.Frame) { indications <- f })
	c.Start(ctx)

	t.Cleanup(func() {
		c.Close()
		cancel()
		select {
		case <-served:
		case <-time.After(waitTimeout):
			t.Error("bridge did not stop")
		}
	})
	return c, indications
}

func expectIndication(t *testing.T, ch <-chan mt.Frame, sub mt.Subsystem, cmd uint8) mt.Frame {
	t.Helper()
	select {
	case f := <-ch:
		require.Equal(t, sub, f.Subsystem)
		require.Equal(t, cmd, f.Command)
		return f
	case <-time.After(waitTimeout):
		t.Fatalf("no %s indication 0x%02X", sub, cmd)
		return mt.Frame{}
	}
}

func TestClientSys(t *testing.T) {
	c, ind := connect(t)
	ctx := context.Background()

	reset := expectIndication(t, ind, mt.SubsystemSys, mt.SysResetInd)
	assert.Equal(t, interaction.ResetReasonPowerUp, reset.Data[0])

	caps, err := c.Ping(ctx)
	require.NoError(t, err)
	assert.Equal(t, mt.SubsystemSys.Capability()|mt.SubsystemMAC.Capability()|mt.SubsystemUtil.Capability(), caps)

	rec, err := c.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, version.Default, rec)

	require.NoError(t, c.Reset(interaction.ResetHard))
	reset = expectIndication(t, ind, mt.SubsystemSys, mt.SysResetInd)
	assert.Equal(t, interaction.ResetReasonHard, reset.Data[0])
}

func TestClientNV(t *testing.T) {
	c, _ := connect(t)
	ctx := context.Background()
	id := nv.ItemID{SystemID: 2, ItemID: 0x0010, SubID: 1}

	require.NoError(t, c.NVCreate(ctx, id, 4))
	require.NoError(t, c.NVWrite(ctx, id, 1, []byte{0xAA, 0xBB}))

	n, err := c.NVLength(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), n)

	data, err := c.NVRead(ctx, id, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0xAA, 0xBB, 0}, data)

	require.NoError(t, c.NVUpdate(ctx, id, []byte{1, 2}))
	require.NoError(t, c.NVDelete(ctx, id))

	_, err = c.NVLength(ctx, id)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, wire.StatusInvalidParameter, statusErr.Status)
}

func TestClientPIB(t *testing.T) {
	c, _ := connect(t)
	ctx := context.Background()

	require.NoError(t, c.SetPIB(ctx, mac.AttrPANID, []byte{0x34, 0x12}))
	value, err := c.GetPIB(ctx, mac.AttrPANID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x34, 0x12}, value)

	// A value of the wrong width is refused.
	err = c.SetPIB(ctx, mac.AttrPANID, []byte{0x34})
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)

	require.NoError(t, c.MACReset(ctx, true))
	value, err = c.GetPIB(ctx, mac.AttrPANID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFF}, value)
}

func TestClientUtil(t *testing.T) {
	c, ind := connect(t)
	ctx := context.Background()
	expectIndication(t, ind, mt.SubsystemSys, mt.SysResetInd)

	t.Run("ext address", func(t *testing.T) {
		addr, err := c.ExtAddress(ctx, mac.ExtAddrPrimary)
		require.NoError(t, err)
		assert.Equal(t, macsim.DefaultConfig().ExtAddr, addr)
	})

	t.Run("random", func(t *testing.T) {
		_, err := c.Random(ctx)
		assert.NoError(t, err)
	})

	t.Run("subscribe", func(t *testing.T) {
		mask, err := c.Subscribe(ctx, mt.SubsystemMAC, 0x80000000|0x0010)
		require.NoError(t, err)
		assert.Equal(t, uint32(0xFFFFFFEF), mask)

		_, err = c.Subscribe(ctx, mt.SubsystemUtil, 1)
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, wire.StatusSubSysError, statusErr.Status)
	})

	t.Run("loopback repeats", func(t *testing.T) {
		echo, err := c.Loopback(ctx, 2, 5*time.Millisecond, []byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), echo)

		for i := 0; i < 2; i++ {
			f := expectIndication(t, ind, mt.SubsystemUtil, mt.UtilLoopback)
			assert.Equal(t, []byte("hello"), f.Data[interaction.LoopbackHeaderSize:])
		}
	})

	t.Run("fragmented loopback", func(t *testing.T) {
		data := bytes.Repeat([]byte{0x11, 0x22, 0x33}, 300)
		echo, err := c.Loopback(ctx, 0, 0, data)
		require.NoError(t, err)
		assert.Equal(t, data, echo)
	})
}

func TestClientUnknownSubsystem(t *testing.T) {
	c, _ := connect(t)

	rsp, err := c.Request(context.Background(), mt.NewFrame(mt.TypeSREQ, mt.Subsystem(9), 0x01, nil))
	require.NoError(t, err)
	assert.Equal(t, mt.SubsystemRes0, rsp.Subsystem)
	assert.Equal(t, []byte{uint8(wire.StatusSubSysError)}, rsp.Data)

	_, err = c.Request(context.Background(), mt.NewFrame(mt.TypeAREQ, mt.SubsystemSys, mt.SysPing, nil))
	assert.ErrorIs(t, err, ErrNotRequest)
}

// silentPeer reads and discards everything written to it.
func silentPeer(t *testing.T) *transport.Conn {
	t.Helper()
	host, peer := transport.Pipe(nil)
	go func() {
		for {
			if _, err := peer.ReadFrame(); err != nil {
				return
			}
		}
	}()
	t.Cleanup(func() { peer.Close() })
	return host
}

func TestClientTimeout(t *testing.T) {
	config := DefaultConfig()
	config.Timeout = 50 * time.Millisecond
	c := New(silentPeer(t), config)
	c.Start(context.Background())
	defer c.Close()

	_, err := c.Ping(context.Background())
	assert.ErrorIs(t, err, ErrRequestTimeout)
}

func TestClientClose(t *testing.T) {
	c := New(silentPeer(t), DefaultConfig())
	c.Start(context.Background())
	require.NoError(t, c.Close())

	_, err := c.Ping(context.Background())
	assert.ErrorIs(t, err, ErrClientClosed)
	assert.ErrorIs(t, c.Err(), ErrClientClosed)
}

func TestClientKeepAlive(t *testing.T) {
	config := DefaultConfig()
	config.Timeout = 20 * time.Millisecond
	config.KeepAlive = &transport.KeepAliveConfig{
		PingInterval: 20 * time.Millisecond,
		ReplyTimeout: 10 * time.Millisecond,
		MaxMissed:    2,
	}
	c := New(silentPeer(t), config)
	c.Start(context.Background())
	defer c.Close()

	select {
	case <-c.Done():
		assert.True(t, errors.Is(c.Err(), ErrLinkLost))
	case <-time.After(waitTimeout):
		t.Fatal("keep-alive did not close the client")
	}
}

func TestClientKeepAliveHealthy(t *testing.T) {
	config := service.DefaultBridgeConfig()
	bridge, err := service.NewBridge(macsim.New(macsim.DefaultConfig()), config)
	require.NoError(t, err)

	hostConn, bridgeConn := transport.Pipe(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bridge.Serve(ctx, bridgeConn)

	cc := DefaultConfig()
	cc.KeepAlive = &transport.KeepAliveConfig{
		PingInterval: 10 * time.Millisecond,
		ReplyTimeout: 50 * time.Millisecond,
		MaxMissed:    3,
	}
	c := New(hostConn, cc)
	c.Start(ctx)
	defer c.Close()

	time.Sleep(100 * time.Millisecond)
	select {
	case <-c.Done():
		t.Fatalf("client closed: %v", c.Err())
	default:
	}
}
