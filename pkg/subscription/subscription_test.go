package subscription

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/payload"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

func TestTableDefaults(t *testing.T) {
	table := NewTable(mt.SubsystemSys, mt.SubsystemMAC)

	assert.Equal(t, AllCallbacks, table.Mask(mt.SubsystemMAC))
	assert.True(t, table.Enabled(mt.SubsystemMAC, payload.CallbackDataInd))
	assert.False(t, table.Enabled(mt.SubsystemUtil, payload.CallbackDataInd))

	_, ok := table.Set(mt.SubsystemUtil, 1)
	assert.False(t, ok)
}

func TestTableSetAndClear(t *testing.T) {
	tests := []struct {
		name  string
		start uint32
		cmd   uint32
		want  uint32
	}{
		{"clear two bits", AllCallbacks, ClearFlag | 0x0030, AllCallbacks &^ 0x0030},
		{"clear nothing", AllCallbacks, ClearFlag, AllCallbacks},
		{"set bits", 0x0001, 0x0030, 0x0031},
		{"set already set", 0x0031, 0x0001, 0x0031},
		{"clear from partial", 0x0031, ClearFlag | 0x0011, 0x0020},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable(mt.SubsystemMAC)
			table.masks[mt.SubsystemMAC] = tt.start

			got, ok := table.Set(mt.SubsystemMAC, tt.cmd)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, table.Mask(mt.SubsystemMAC))
		})
	}
}

type sink struct {
	frames []mt.Frame
	err    error
}

func (s *sink) send(f mt.Frame) error {
	if s.err != nil {
		return s.err
	}
	s.frames = append(s.frames, f)
	return nil
}

func TestRouterFiltersBySubscription(t *testing.T) {
	table := NewTable(mt.SubsystemSys, mt.SubsystemMAC)
	out := &sink{}
	var suppressed, emitted int
	r := NewRouter(table, out.send, Config{
		OnEmit:     func(mt.Subsystem, uint8) { emitted++ },
		OnSuppress: func(mt.Subsystem, uint8) { suppressed++ },
	})

	ind := mac.DataInd{SrcAddr: wire.ShortAddress(1), DstAddr: wire.ShortAddress(2), MSDU: []byte{1}}
	cnf := mac.DataCnf{Status: wire.StatusSuccess, MSDUHandle: 4}

	sent, err := r.Dispatch(ind)
	require.NoError(t, err)
	assert.True(t, sent)

	// Clearing the data bits suppresses both kinds.
	mask, _ := table.Set(mt.SubsystemMAC, ClearFlag|payload.CallbackDataInd|payload.CallbackDataCnf)
	assert.Zero(t, mask&(payload.CallbackDataInd|payload.CallbackDataCnf))

	for _, ev := range []mac.Event{ind, cnf} {
		sent, err := r.Dispatch(ev)
		require.NoError(t, err)
		assert.False(t, sent)
	}

	// Other kinds still pass.
	sent, err = r.Dispatch(mac.StartCnf{})
	require.NoError(t, err)
	assert.True(t, sent)

	// Setting the bits again restores delivery.
	table.Set(mt.SubsystemMAC, payload.CallbackDataInd|payload.CallbackDataCnf)
	sent, err = r.Dispatch(cnf)
	require.NoError(t, err)
	assert.True(t, sent)

	require.Len(t, out.frames, 3)
	assert.Equal(t, mt.TypeAREQ, out.frames[0].Type)
	assert.Equal(t, mt.SubsystemMAC, out.frames[0].Subsystem)
	assert.Equal(t, mt.MACDataInd, out.frames[0].Command)
	assert.Equal(t, mt.MACStartCnf, out.frames[1].Command)
	assert.Equal(t, mt.MACDataCnf, out.frames[2].Command)
	assert.Equal(t, 3, emitted)
	assert.Equal(t, 2, suppressed)
}

func TestRouterSendError(t *testing.T) {
	out := &sink{err: errors.New("link down")}
	r := NewRouter(NewTable(mt.SubsystemSys), out.send, DefaultConfig())

	sent, err := r.MaybeEmit(mt.SubsystemSys, payload.CallbackSysResetInd, mt.SysResetInd, []byte{0})
	assert.False(t, sent)
	assert.ErrorContains(t, err, "link down")
}

func TestRouterPostDropsWhenFull(t *testing.T) {
	var dropped []mac.Event
	r := NewRouter(NewTable(mt.SubsystemMAC), (&sink{}).send, Config{
		QueueSize: 2,
		OnDrop:    func(ev mac.Event) { dropped = append(dropped, ev) },
	})

	assert.True(t, r.Post(mac.StartCnf{}))
	assert.True(t, r.Post(mac.PollCnf{}))
	assert.False(t, r.Post(mac.PurgeCnf{MSDUHandle: 9}))

	assert.Equal(t, uint64(1), r.Dropped())
	require.Len(t, dropped, 1)
	assert.Equal(t, mac.PurgeCnf{MSDUHandle: 9}, dropped[0])

	assert.Equal(t, mac.StartCnf{}, <-r.Events())
	assert.Equal(t, mac.PollCnf{}, <-r.Events())
}
