package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lowpan-mt/mt-go/pkg/fragment"
	"github.com/lowpan-mt/mt-go/pkg/interaction"
	"github.com/lowpan-mt/mt-go/pkg/log"
	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/metrics"
	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/nv"
	"github.com/lowpan-mt/mt-go/pkg/payload"
	"github.com/lowpan-mt/mt-go/pkg/subscription"
	"github.com/lowpan-mt/mt-go/pkg/transport"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

const (
	directionIn  = "in"
	directionOut = "out"
)

// repeat is a pending loopback AREQ.
type repeat struct {
	frame     mt.Frame
	interval  time.Duration
	remaining int
	gen       uint64
}

// session is the worker state of one served link.
type session struct {
	link   transport.Link
	connID string
	remote string
	timed  chan repeat
	done   chan struct{}

	// gen invalidates scheduled repeats when bumped.
	gen uint64
}

func newSession(link transport.Link) *session {
	s := &session{
		link:  link,
		timed: make(chan repeat),
		done:  make(chan struct{}),
	}
	if c, ok := link.(interface{ ConnID() string }); ok {
		s.connID = c.ConnID()
	} else {
		s.connID = uuid.NewString()
	}
	if c, ok := link.(interface{ RemoteAddr() net.Addr }); ok && c.RemoteAddr() != nil {
		s.remote = c.RemoteAddr().String()
	}
	return s
}

// Bridge serves the MT command set of a MAC engine over a host link.
type Bridge struct {
	config         BridgeConfig
	engine         mac.Engine
	logger         *slog.Logger
	protocolLogger log.Logger
	metrics        *metrics.Metrics

	table      *subscription.Table
	router     *subscription.Router
	registry   *interaction.Registry
	dispatcher *interaction.Dispatcher
	system     *interaction.System
	splitter   *fragment.Splitter
	assembler  *fragment.Assembler

	mu       sync.RWMutex
	state    ServiceState
	handlers []EventHandler

	// Owned by the worker.
	sess         *session
	pendingReset *interaction.ResetType
	announced    bool
}

var _ interaction.Scheduler = (*Bridge)(nil)

// NewBridge creates a bridge for engine.
func NewBridge(engine mac.Engine, config BridgeConfig) (*Bridge, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}
	if config.MaxLogData == 0 {
		config.MaxLogData = DefaultMaxLogData
	}
	codec, err := payload.NewCodec(config.IndexWidth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	b := &Bridge{
		config:         config,
		engine:         engine,
		logger:         config.Logger,
		protocolLogger: config.ProtocolLogger,
		metrics:        config.Metrics,
		state:          StateIdle,
		registry:       interaction.NewRegistry(),
		splitter:       fragment.NewSplitter(config.Fragment, config.StackID),
		assembler:      fragment.NewAssembler(config.Fragment, config.StackID),
	}

	b.table = subscription.NewTable(mt.SubsystemSys, mt.SubsystemMAC)
	b.router = subscription.NewRouter(b.table, b.transmit, subscription.Config{
		QueueSize:  config.QueueSize,
		OnEmit:     func(mt.Subsystem, uint8) { b.metrics.RecordCallback(true) },
		OnSuppress: func(mt.Subsystem, uint8) { b.metrics.RecordCallback(false) },
		OnDrop: func(ev mac.Event) {
			b.metrics.RecordDrop()
			b.warn("engine event dropped", "event", ev.Kind().String())
		},
	})

	b.system = interaction.NewSystem(interaction.SystemConfig{
		Registry: b.registry,
		Version:  config.Version,
		NV:       nv.NewBridge(config.Storage, config.Logger),
		Reset:    b.requestReset,
		Logger:   config.Logger,
	})
	groups := []interaction.Group{
		b.system,
		interaction.NewMAC(engine, codec),
		interaction.NewUtil(b.table, engine, b),
	}
	for _, g := range groups {
		if err := g.Register(b.registry); err != nil {
			return nil, fmt.Errorf("register commands: %w", err)
		}
	}
	b.dispatcher = interaction.NewDispatcher(b.registry, config.Logger, b.onDispatchError)

	return b, nil
}

// State returns the current service state.
func (b *Bridge) State() ServiceState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

func (b *Bridge) setState(s ServiceState) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
}

// Registry returns the command registry.
func (b *Bridge) Registry() *interaction.Registry {
	return b.registry
}

// Table returns the callback subscription table.
func (b *Bridge) Table() *subscription.Table {
	return b.table
}

// DroppedEvents returns the number of engine events lost at the handoff.
func (b *Bridge) DroppedEvents() uint64 {
	return b.router.Dropped()
}

// OnEvent registers a handler for bridge events.
func (b *Bridge) OnEvent(handler EventHandler) {
	b.mu.Lock()
	b.handlers = append(b.handlers, handler)
	b.mu.Unlock()
}

func (b *Bridge) notify(ev Event) {
	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.handlers...)
	b.mu.RUnlock()
	for _, h := range handlers {
		h(ev)
	}
}

// Serve runs the worker for link until ctx is done or the link fails. It
// closes the link before returning. A link closed by the peer ends Serve
// without error. Only one link is served at a time.
func (b *Bridge) Serve(ctx context.Context, link transport.Link) error {
	b.mu.Lock()
	switch b.state {
	case StateStarting, StateRunning, StateStopping:
		b.mu.Unlock()
		return ErrAlreadyStarted
	}
	b.state = StateStarting
	b.mu.Unlock()

	sess := newSession(link)
	b.sess = sess
	ctx, cancel := context.WithCancel(ctx)

	frames := make(chan []byte, inboundQueueSize)
	readErr := make(chan error, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		readLoop(ctx, link, frames, readErr)
	}()

	b.drainEvents()
	b.engine.SetEventHandler(func(ev mac.Event) { b.router.Post(ev) })
	b.setState(StateRunning)
	b.debug("link attached", "conn_id", sess.connID, "remote", sess.remote)
	b.logState(log.StateEntityBridge, StateIdle.String(), StateRunning.String(), "")
	b.notify(Event{Type: EventLinkUp, ConnectionID: sess.connID})

	if !b.announced {
		b.announced = true
		b.announceReset()
	}

	err := b.run(ctx, frames, readErr)

	b.setState(StateStopping)
	b.engine.SetEventHandler(nil)
	cancel()
	close(sess.done)
	_ = link.Close()
	wg.Wait()
	b.abortSessions("link closed")
	b.pendingReset = nil
	b.logState(log.StateEntityBridge, StateRunning.String(), StateStopped.String(), errString(err))
	b.sess = nil
	b.setState(StateStopped)
	b.debug("link released", "conn_id", sess.connID, "error", err)
	b.notify(Event{Type: EventLinkDown, ConnectionID: sess.connID, Error: err})
	return err
}

func readLoop(ctx context.Context, link transport.Link, frames chan<- []byte, errs chan<- error) {
	for {
		data, err := link.ReadFrame()
		if err != nil {
			errs <- err
			return
		}
		select {
		case frames <- data:
		case <-ctx.Done():
			return
		}
	}
}

func (b *Bridge) run(ctx context.Context, frames <-chan []byte, readErr <-chan error) error {
	ticker := time.NewTicker(b.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			b.drainFrames(frames)
			return linkError(err)
		case data := <-frames:
			b.handleFrame(data)
		case ev := <-b.router.Events():
			b.handleEvent(ev)
		case r := <-b.sess.timed:
			b.handleRepeat(r)
		case now := <-ticker.C:
			b.expire(now)
		}
		b.applyReset()
	}
}

// drainFrames handles frames that were read before the link failed.
func (b *Bridge) drainFrames(frames <-chan []byte) {
	for {
		select {
		case data := <-frames:
			b.handleFrame(data)
			b.applyReset()
		default:
			return
		}
	}
}

func linkError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, transport.ErrConnectionClosed) || errors.Is(err, net.ErrClosed) {
		return nil
	}
	return fmt.Errorf("read link: %w", err)
}

// handleFrame decodes and routes one inbound frame.
func (b *Bridge) handleFrame(data []byte) {
	f, err := mt.Decode(data)
	if err != nil {
		b.debug("malformed frame", "error", err, "size", len(data))
		b.logError(log.LayerFrame, err.Error(), "decode", nil)
		b.rejectMalformed(data)
		return
	}
	b.metrics.RecordFrame(directionIn, f)
	b.logMessage(f, log.DirectionIn)

	if f.Extended {
		b.handleExtended(f)
		return
	}
	b.dispatch(f, false)
}

// rejectMalformed answers an undecodable SREQ with lengthError. Anything
// else is dropped.
func (b *Bridge) rejectMalformed(data []byte) {
	if len(data) < mt.HeaderSize {
		return
	}
	t, sub, _ := mt.ParseHeader(data[1])
	if t != mt.TypeSREQ {
		return
	}
	rsp := mt.NewFrame(mt.TypeSRSP, sub, data[2], payload.StatusBody(wire.StatusLengthError))
	if err := b.send(rsp); err != nil {
		b.warn("send error response failed", "error", err)
	}
}

func (b *Bridge) handleExtended(f mt.Frame) {
	if !f.Version.Known() || f.StackID != b.config.StackID {
		var block uint8
		if f.Version == mt.ExtVersionFragment && len(f.Data) > 0 {
			block = f.Data[0]
		}
		b.debug("rejecting extended frame", "frame", f.String())
		report := mt.NewReportFrame(f, mt.ExtVersionStatus, b.config.StackID, mt.FragmentReport{Block: block, Status: mt.FragBadStack})
		if err := b.send(report); err != nil {
			b.warn("send fragment status failed", "error", err)
		}
		return
	}

	now := time.Now()
	switch f.Version {
	case mt.ExtVersionStackID:
		f.Extended, f.Version, f.StackID = false, 0, 0
		b.dispatch(f, true)

	case mt.ExtVersionFragment:
		b.applyRecv(b.assembler.Accept(f, now))

	case mt.ExtVersionFragAck:
		report, err := mt.ParseFragmentReport(f.Data)
		if err != nil {
			b.debug("dropping malformed fragment ack", "error", err)
			return
		}
		res, err := b.splitter.HandleAck(report, now)
		if err != nil {
			b.debug("unexpected fragment ack", "block", report.Block, "error", err)
			return
		}
		b.applySend(res)

	case mt.ExtVersionStatus:
		report, err := mt.ParseFragmentReport(f.Data)
		if err != nil {
			b.debug("dropping malformed fragment status", "error", err)
			return
		}
		b.applySend(b.splitter.HandleStatus(report))
		b.applyRecv(b.assembler.HandleStatus(report))
	}
}

// dispatch runs a request through the registry. Replies to stack-addressed
// requests are stamped with the bridge stack id.
func (b *Bridge) dispatch(f mt.Frame, stacked bool) {
	start := time.Now()
	rsp, ok := b.dispatcher.Dispatch(f)
	b.metrics.ObserveDispatch(f.Subsystem, time.Since(start))
	if !ok {
		return
	}
	if stacked && len(rsp.Data) <= mt.MaxDataSize {
		rsp.Extended, rsp.Version, rsp.StackID = true, mt.ExtVersionStackID, b.config.StackID
	}
	b.respond(rsp)
}

// respond sends an SRSP. A response that cannot be fragmented is replaced
// by a noResources status.
func (b *Bridge) respond(rsp mt.Frame) {
	err := b.transmit(rsp)
	if err == nil {
		return
	}
	if errors.Is(err, fragment.ErrSessionBusy) || errors.Is(err, fragment.ErrMessageTooLarge) {
		b.warn("cannot fragment response", "frame", rsp.String(), "error", err)
		rsp.Data = payload.StatusBody(wire.StatusNoResources)
		err = b.send(rsp)
	}
	if err != nil {
		b.warn("send response failed", "frame", rsp.String(), "error", err)
	}
}

// transmit sends a message, fragmenting it when it exceeds one frame.
func (b *Bridge) transmit(f mt.Frame) error {
	if len(f.Data) <= mt.MaxDataSize {
		return b.send(f)
	}
	res, err := b.splitter.Start(f, time.Now())
	if err != nil {
		return fmt.Errorf("fragment %s: %w", f, err)
	}
	b.logState(log.StateEntitySendSession, fragment.SendIdle.String(), fragment.SendAwaitAck.String(), f.String())
	b.applySend(res)
	return nil
}

// send writes one frame to the link.
func (b *Bridge) send(f mt.Frame) error {
	sess := b.sess
	if sess == nil {
		return ErrNotStarted
	}
	data, err := mt.Encode(f)
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	if err := sess.link.WriteFrame(data); err != nil {
		b.logError(log.LayerTransport, err.Error(), "write "+f.String(), nil)
		return err
	}
	b.metrics.RecordFrame(directionOut, f)
	if f.Type == mt.TypeSRSP && len(f.Data) == 1 {
		b.metrics.RecordStatus(wire.Status(f.Data[0]))
	}
	b.logMessage(f, log.DirectionOut)
	return nil
}

func (b *Bridge) applySend(res fragment.SendResult) {
	if res.Frame != nil {
		if err := b.send(*res.Frame); err != nil {
			b.warn("send fragment failed", "error", err)
		}
	}
	switch res.State {
	case fragment.SendAwaitAck:
		if res.Frame == nil {
			return
		}
		if res.Resent {
			b.metrics.RecordFragment(metrics.FragmentResent)
		} else {
			b.metrics.RecordFragment(metrics.FragmentSent)
		}
	case fragment.SendDone:
		b.logState(log.StateEntitySendSession, fragment.SendAwaitAck.String(), fragment.SendDone.String(), "")
	case fragment.SendAborted:
		b.metrics.RecordFragment(metrics.FragmentAborted)
		b.logState(log.StateEntitySendSession, fragment.SendAwaitAck.String(), fragment.SendAborted.String(), res.Reason.String())
	}
}

func (b *Bridge) applyRecv(res fragment.RecvResult) {
	if res.Restarted {
		b.logState(log.StateEntityRecvSession, fragment.RecvReceiving.String(), fragment.RecvReceiving.String(), "restarted by block 0")
	}
	if res.Reply != nil {
		if err := b.send(*res.Reply); err != nil {
			b.warn("send fragment reply failed", "error", err)
		}
	}
	switch res.State {
	case fragment.RecvReceiving:
		if res.Reply != nil {
			b.metrics.RecordFragment(metrics.FragmentReceived)
		}
	case fragment.RecvComplete:
		b.metrics.RecordFragment(metrics.FragmentReceived)
		b.logState(log.StateEntityRecvSession, fragment.RecvReceiving.String(), fragment.RecvComplete.String(), "")
		b.logMessage(*res.Message, log.DirectionIn)
		b.dispatch(*res.Message, false)
	case fragment.RecvAborted:
		b.metrics.RecordFragment(metrics.FragmentRejected)
		b.logState(log.StateEntityRecvSession, fragment.RecvReceiving.String(), fragment.RecvAborted.String(), res.Reason.String())
	}
}

// expire applies the acknowledgement and reassembly timeouts.
func (b *Bridge) expire(now time.Time) {
	b.applySend(b.splitter.Expire(now))
	b.applyRecv(b.assembler.Expire(now))
}

// abortSessions drops in-flight fragment sessions without telling the peer.
func (b *Bridge) abortSessions(reason string) {
	if b.splitter.Active() {
		b.splitter.Abort()
		b.logState(log.StateEntitySendSession, fragment.SendAwaitAck.String(), fragment.SendAborted.String(), reason)
	}
	if b.assembler.Active() {
		b.assembler.HandleStatus(mt.FragmentReport{Status: mt.FragAbort})
		b.logState(log.StateEntityRecvSession, fragment.RecvReceiving.String(), fragment.RecvAborted.String(), reason)
	}
}

func (b *Bridge) handleEvent(ev mac.Event) {
	if _, err := b.router.Dispatch(ev); err != nil {
		b.warn("callback not delivered", "event", ev.Kind().String(), "error", err)
		b.logError(log.LayerService, err.Error(), ev.Kind().String(), nil)
	}
}

func (b *Bridge) drainEvents() {
	for {
		select {
		case <-b.router.Events():
		default:
			return
		}
	}
}

func (b *Bridge) onDispatchError(f mt.Frame, status wire.Status) {
	code := int(status)
	b.logError(log.LayerService, status.String(), f.String(), &code)
}

// Repeat implements interaction.Scheduler. It must be called from the
// worker.
func (b *Bridge) Repeat(f mt.Frame, interval time.Duration, count int) {
	if b.sess == nil || count <= 0 {
		return
	}
	b.schedule(repeat{frame: f, interval: interval, remaining: count, gen: b.sess.gen})
}

func (b *Bridge) schedule(r repeat) {
	sess := b.sess
	time.AfterFunc(r.interval, func() {
		select {
		case sess.timed <- r:
		case <-sess.done:
		}
	})
}

func (b *Bridge) handleRepeat(r repeat) {
	if r.gen != b.sess.gen {
		return
	}
	if err := b.transmit(r.frame); err != nil {
		b.warn("loopback repeat failed", "error", err)
	}
	r.remaining--
	if r.remaining > 0 {
		b.schedule(r)
	}
}

// requestReset is the SYS reset hook. The reset runs once the current
// request is finished.
func (b *Bridge) requestReset(t interaction.ResetType) {
	b.pendingReset = &t
}

func (b *Bridge) applyReset() {
	if b.pendingReset == nil {
		return
	}
	t := *b.pendingReset
	b.pendingReset = nil

	b.abortSessions("reset")
	b.sess.gen++
	b.drainEvents()
	b.table.Reset()
	if st := b.engine.Reset(true); st != wire.StatusSuccess {
		b.warn("engine reset failed", "status", st.String())
	}
	if b.config.Reset != nil {
		b.config.Reset(t)
	}

	b.debug("bridge reset", "type", t.String())
	b.logState(log.StateEntityBridge, StateRunning.String(), StateRunning.String(), "reset "+t.String())
	b.notify(Event{Type: EventReset, ConnectionID: b.sess.connID, ResetType: t})
	b.announceReset()
}

// announceReset emits SYS_RESET_IND for the current start.
func (b *Bridge) announceReset() {
	body := b.system.ResetIndication()
	if _, err := b.router.MaybeEmit(mt.SubsystemSys, payload.CallbackSysResetInd, mt.SysResetInd, body); err != nil {
		b.warn("reset indication not delivered", "error", err)
	}
}

func (b *Bridge) event(dir log.Direction, layer log.Layer, cat log.Category) log.Event {
	ev := log.Event{
		Timestamp: time.Now(),
		Direction: dir,
		Layer:     layer,
		Category:  cat,
		LocalRole: log.RoleBridge,
	}
	if b.sess != nil {
		ev.ConnectionID = b.sess.connID
		ev.RemoteAddr = b.sess.remote
	}
	return ev
}

func (b *Bridge) logMessage(f mt.Frame, dir log.Direction) {
	if b.protocolLogger == nil {
		return
	}
	ev := b.event(dir, log.LayerFrame, log.CategoryMessage)
	if frag := log.NewFragmentEvent(f); frag != nil {
		ev.Category = log.CategoryFragment
		ev.Fragment = frag
	} else {
		ev.Message = log.NewMessageEvent(f, b.config.MaxLogData)
	}
	b.protocolLogger.Log(ev)
}

func (b *Bridge) logState(entity log.StateEntity, oldState, newState, reason string) {
	if b.protocolLogger == nil {
		return
	}
	ev := b.event(log.DirectionOut, log.LayerService, log.CategoryState)
	ev.StateChange = &log.StateChangeEvent{
		Entity:   entity,
		OldState: oldState,
		NewState: newState,
		Reason:   reason,
	}
	b.protocolLogger.Log(ev)
}

func (b *Bridge) logError(layer log.Layer, msg, context string, code *int) {
	if b.protocolLogger == nil {
		return
	}
	ev := b.event(log.DirectionIn, layer, log.CategoryError)
	ev.Error = &log.ErrorEventData{
		Layer:   layer,
		Message: msg,
		Code:    code,
		Context: context,
	}
	b.protocolLogger.Log(ev)
}

func (b *Bridge) debug(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Debug(msg, args...)
	}
}

func (b *Bridge) warn(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Warn(msg, args...)
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
