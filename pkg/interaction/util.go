package interaction

import (
	"time"

	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/subscription"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// UTIL request sizes.
const (
	CallbackSubReqSize = 5
	LoopbackHeaderSize = 5
	ExtAddrReqSize     = 1
)

// Scheduler sends f count times, one interval apart, from the worker that
// owns the transport.
type Scheduler interface {
	Repeat(f mt.Frame, interval time.Duration, count int)
}

// UtilEngine is the part of the engine the UTIL subsystem needs.
type UtilEngine interface {
	ExtAddress(kind mac.ExtAddrType) (wire.ExtAddr, wire.Status)
	Random() uint16
}

// Util serves the UTIL subsystem.
type Util struct {
	table     *subscription.Table
	engine    UtilEngine
	scheduler Scheduler
}

// NewUtil creates the UTIL command group. A nil scheduler ignores loopback
// repeats.
func NewUtil(table *subscription.Table, engine UtilEngine, scheduler Scheduler) *Util {
	return &Util{table: table, engine: engine, scheduler: scheduler}
}

// Register implements Group.
func (u *Util) Register(r *Registry) error {
	return r.Register(mt.SubsystemUtil,
		Command{ID: mt.UtilCallbackSub, Name: "CALLBACK_SUB", Type: mt.TypeSREQ, Handle: u.handleCallbackSub},
		Command{ID: mt.UtilLoopback, Name: "LOOPBACK", Type: mt.TypeSREQ, Handle: u.handleLoopback},
		Command{ID: mt.UtilRandom, Name: "RANDOM", Type: mt.TypeSREQ, Handle: u.handleRandom},
		Command{ID: mt.UtilExtAddr, Name: "EXT_ADDR", Type: mt.TypeSREQ, Handle: u.handleExtAddr},
	)
}

// handleCallbackSub answers [status][mask u32]. A subsystem without
// callbacks reports subSysError and a zero mask.
func (u *Util) handleCallbackSub(data []byte) []byte {
	if len(data) != CallbackSubReqSize {
		return status(wire.StatusLengthError)
	}
	r := wire.NewReader(data)
	sub := mt.Subsystem(r.Uint8())
	mask := r.Uint32()

	w := wire.NewWriter(5)
	result, ok := u.table.Set(sub, mask)
	if !ok {
		w.PutStatus(wire.StatusSubSysError)
		w.PutUint32(0)
		return w.Bytes()
	}
	w.PutStatus(wire.StatusSuccess)
	w.PutUint32(result)
	return w.Bytes()
}

// handleLoopback echoes the request and schedules the repeats as AREQs.
func (u *Util) handleLoopback(data []byte) []byte {
	if len(data) < LoopbackHeaderSize {
		return status(wire.StatusLengthError)
	}
	r := wire.NewReader(data)
	repeats := int(r.Uint8())
	interval := time.Duration(r.Uint32()) * time.Millisecond

	echo := append([]byte(nil), data...)
	if repeats > 0 && u.scheduler != nil {
		u.scheduler.Repeat(mt.NewFrame(mt.TypeAREQ, mt.SubsystemUtil, mt.UtilLoopback, echo), interval, repeats)
	}
	return echo
}

func (u *Util) handleRandom(data []byte) []byte {
	if len(data) != 0 {
		return status(wire.StatusLengthError)
	}
	w := wire.NewWriter(2)
	w.PutUint16(u.engine.Random())
	return w.Bytes()
}

// handleExtAddr answers [type][ext 8], or a status on failure.
func (u *Util) handleExtAddr(data []byte) []byte {
	if len(data) != ExtAddrReqSize {
		return status(wire.StatusLengthError)
	}
	kind := mac.ExtAddrType(data[0])
	if kind > mac.ExtAddrUserConfig {
		return status(wire.StatusInvalidParameter)
	}
	addr, st := u.engine.ExtAddress(kind)
	if st != wire.StatusSuccess {
		return status(st)
	}
	w := wire.NewWriter(1 + wire.ExtAddrSize)
	w.PutUint8(uint8(kind))
	w.PutExtAddr(addr)
	return w.Bytes()
}
