package transport

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowpan-mt/mt-go/pkg/mt"
)

func TestPipeSendReceive(t *testing.T) {
	host, bridge := Pipe(nil)
	defer host.Close()
	defer bridge.Close()

	assert.NotEqual(t, host.ConnID(), bridge.ConnID())

	go host.Send(mt.NewFrame(mt.TypeSREQ, mt.SubsystemSys, mt.SysVersion, nil))

	data, err := bridge.Receive(time.Second)
	require.NoError(t, err)
	f, err := mt.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, mt.SubsystemSys, f.Subsystem)
	assert.Equal(t, mt.SysVersion, f.Command)
}

func TestConnReceiveTimeout(t *testing.T) {
	host, bridge := Pipe(nil)
	defer host.Close()
	defer bridge.Close()

	_, err := bridge.Receive(20 * time.Millisecond)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrDeadlineExceeded), "got %v", err)
}

func TestConnClose(t *testing.T) {
	host, bridge := Pipe(nil)
	defer host.Close()

	readErr := make(chan error, 1)
	go func() {
		_, err := bridge.ReadFrame()
		readErr <- err
	}()

	require.NoError(t, bridge.Close())
	require.NoError(t, bridge.Close())

	select {
	case err := <-readErr:
		assert.ErrorIs(t, err, ErrConnectionClosed)
	case <-time.After(time.Second):
		t.Fatal("ReadFrame did not unblock on Close")
	}

	select {
	case <-bridge.Done():
	default:
		t.Error("Done not closed")
	}

	assert.ErrorIs(t, bridge.WriteFrame([]byte{0x00, 0x21, 0x01}), ErrConnectionClosed)
	assert.ErrorIs(t, bridge.Send(mt.NewFrame(mt.TypeSREQ, mt.SubsystemSys, mt.SysPing, nil)), ErrConnectionClosed)
	_, err := bridge.ReadFrame()
	assert.ErrorIs(t, err, ErrConnectionClosed)
}
