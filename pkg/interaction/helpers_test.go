package interaction

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/mac/mocks"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/nv"
	"github.com/lowpan-mt/mt-go/pkg/payload"
	"github.com/lowpan-mt/mt-go/pkg/subscription"
	"github.com/lowpan-mt/mt-go/pkg/version"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

type repeat struct {
	frame    mt.Frame
	interval time.Duration
	count    int
}

type recordingScheduler struct {
	mu      sync.Mutex
	repeats []repeat
}

func (s *recordingScheduler) Repeat(f mt.Frame, interval time.Duration, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repeats = append(s.repeats, repeat{frame: f, interval: interval, count: count})
}

type fixture struct {
	dispatcher *Dispatcher
	engine     *mocks.MockEngine
	table      *subscription.Table
	scheduler  *recordingScheduler
	storage    *nv.MemoryStorage
	system     *System
	resets     []ResetType
	errors     []wire.Status
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		engine:    mocks.NewMockEngine(t),
		table:     subscription.NewTable(mt.SubsystemSys, mt.SubsystemMAC),
		scheduler: &recordingScheduler{},
		storage:   nv.NewMemoryStorage(),
	}

	reg := NewRegistry()
	f.system = NewSystem(SystemConfig{
		Registry: reg,
		Version:  version.Default,
		NV:       nv.NewBridge(f.storage, nil),
		Reset:    func(rt ResetType) { f.resets = append(f.resets, rt) },
	})
	groups := []Group{
		f.system,
		NewMAC(f.engine, payload.MustCodec(wire.IndexWidth8)),
		NewUtil(f.table, f.engine, f.scheduler),
	}
	for _, g := range groups {
		require.NoError(t, g.Register(reg))
	}

	f.dispatcher = NewDispatcher(reg, nil, func(_ mt.Frame, st wire.Status) {
		f.errors = append(f.errors, st)
	})
	return f
}

// request dispatches an SREQ and returns the SRSP body.
func (f *fixture) request(t *testing.T, sub mt.Subsystem, cmd uint8, data []byte) []byte {
	t.Helper()
	rsp, ok := f.dispatcher.Dispatch(mt.NewFrame(mt.TypeSREQ, sub, cmd, data))
	require.True(t, ok, "SREQ must be answered")
	require.Equal(t, mt.TypeSRSP, rsp.Type)
	return rsp.Data
}

var _ mac.Engine = (*mocks.MockEngine)(nil)
