package interaction

import (
	"log/slog"

	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/payload"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// ErrorFunc is told about every framing error the dispatcher detects,
// answered or dropped.
type ErrorFunc func(f mt.Frame, status wire.Status)

// Dispatcher routes inbound frames through a Registry.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger
	onError  ErrorFunc
}

// NewDispatcher creates a dispatcher. logger and onError may be nil.
func NewDispatcher(registry *Registry, logger *slog.Logger, onError ErrorFunc) *Dispatcher {
	return &Dispatcher{registry: registry, logger: logger, onError: onError}
}

// Registry returns the command registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch handles one frame and returns the SRSP to send, if any. The
// returned frame may carry more than mt.MaxDataSize bytes; the caller
// fragments it.
func (d *Dispatcher) Dispatch(f mt.Frame) (mt.Frame, bool) {
	switch f.Type {
	case mt.TypeSREQ, mt.TypeAREQ:
	default:
		d.debug("dropping frame", "frame", f.String())
		return mt.Frame{}, false
	}

	if !d.registry.Has(f.Subsystem) {
		return d.fail(f, mt.NewFrame(mt.TypeSRSP, mt.SubsystemRes0, f.Command, nil), wire.StatusSubSysError)
	}

	cmd, ok := d.registry.Lookup(f.Subsystem, f.Command)
	if !ok || cmd.Type != f.Type {
		return d.fail(f, f.Response(nil), wire.StatusCommandIDError)
	}

	body := cmd.Handle(f.Data)
	if f.Type != mt.TypeSREQ {
		return mt.Frame{}, false
	}
	if body == nil {
		body = payload.StatusBody(wire.StatusSuccess)
	}
	return f.Response(body), true
}

// fail answers an SREQ with a status-only response; other input is dropped.
func (d *Dispatcher) fail(f, rsp mt.Frame, status wire.Status) (mt.Frame, bool) {
	if d.onError != nil {
		d.onError(f, status)
	}
	if f.Type != mt.TypeSREQ {
		d.debug("dropping frame", "frame", f.String(), "status", status.String())
		return mt.Frame{}, false
	}
	d.debug("rejecting request", "frame", f.String(), "status", status.String())
	rsp.Data = payload.StatusBody(status)
	return rsp, true
}

func (d *Dispatcher) debug(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Debug(msg, args...)
	}
}
