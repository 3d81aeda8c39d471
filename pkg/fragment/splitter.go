package fragment

import (
	"fmt"
	"time"

	"github.com/lowpan-mt/mt-go/pkg/mt"
)

// SendState is the state of an outbound session.
type SendState uint8

const (
	SendIdle SendState = iota
	SendAwaitAck
	SendDone
	SendAborted
)

// String returns the state name.
func (s SendState) String() string {
	switch s {
	case SendIdle:
		return "IDLE"
	case SendAwaitAck:
		return "AWAIT_ACK"
	case SendDone:
		return "DONE"
	case SendAborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

// SendResult is the outcome of driving a Splitter.
type SendResult struct {
	// State after the step.
	State SendState

	// Frame to transmit, if any: the next (or repeated) fragment, or a
	// fragment status frame when the session was aborted locally.
	Frame *mt.Frame

	// Resent is true when Frame repeats the previous block.
	Resent bool

	// Reason explains an abort.
	Reason mt.FragStatus
}

type sendSession struct {
	msg      mt.Frame
	blocks   []mt.FragmentData
	current  int
	resends  int
	deadline time.Time
}

// Splitter sends one oversized message at a time.
type Splitter struct {
	config  Config
	stackID uint8
	session *sendSession
}

// NewSplitter creates a splitter that stamps frames with stackID.
func NewSplitter(config Config, stackID uint8) *Splitter {
	return &Splitter{config: config.normalized(), stackID: stackID}
}

// Active returns true while a send session is in flight.
func (s *Splitter) Active() bool {
	return s.session != nil
}

// Start opens a session for msg and returns the first fragment to send.
func (s *Splitter) Start(msg mt.Frame, now time.Time) (SendResult, error) {
	if s.session != nil {
		return SendResult{State: SendAwaitAck}, ErrSessionBusy
	}
	blocks, err := Split(msg.Data)
	if err != nil {
		return SendResult{State: SendIdle}, fmt.Errorf("start fragmentation of %s: %w", msg, err)
	}

	s.session = &sendSession{msg: msg, blocks: blocks}
	return s.emitCurrent(now, false), nil
}

func (s *Splitter) emitCurrent(now time.Time, resent bool) SendResult {
	sess := s.session
	f := mt.NewFragmentFrame(sess.msg, s.stackID, sess.blocks[sess.current])
	sess.deadline = now.Add(s.config.AckTimeout)
	return SendResult{State: SendAwaitAck, Frame: &f, Resent: resent}
}

// HandleAck processes a fragment ACK from the peer.
func (s *Splitter) HandleAck(ack mt.FragmentReport, now time.Time) (SendResult, error) {
	sess := s.session
	if sess == nil {
		return SendResult{State: SendIdle}, ErrNoSession
	}

	current := sess.blocks[sess.current].Block
	if ack.Block != current {
		return s.abort(mt.FragBadAck), nil
	}

	switch ack.Status {
	case mt.FragSuccess, mt.FragDone:
		sess.resends = 0
		if sess.current == len(sess.blocks)-1 {
			s.session = nil
			return SendResult{State: SendDone}, nil
		}
		if ack.Status == mt.FragDone {
			// The peer claims completion before the last block.
			return s.abort(mt.FragBadAck), nil
		}
		sess.current++
		return s.emitCurrent(now, false), nil

	case mt.FragResend:
		return s.resend(now), nil

	case mt.FragAbort:
		s.session = nil
		return SendResult{State: SendAborted, Reason: mt.FragAbort}, nil

	default:
		// Any other report ends the exchange; the peer has given up.
		s.session = nil
		return SendResult{State: SendAborted, Reason: ack.Status}, nil
	}
}

func (s *Splitter) resend(now time.Time) SendResult {
	sess := s.session
	sess.resends++
	if sess.resends > s.config.MaxResends {
		return s.abort(mt.FragAbort)
	}
	return s.emitCurrent(now, true)
}

// HandleStatus processes a fragment status frame from the peer. Only an
// abort affects the send session.
func (s *Splitter) HandleStatus(st mt.FragmentReport) SendResult {
	if s.session == nil {
		return SendResult{State: SendIdle}
	}
	if st.Status == mt.FragAbort {
		s.session = nil
		return SendResult{State: SendAborted, Reason: mt.FragAbort}
	}
	return SendResult{State: SendAwaitAck}
}

// Expire treats a missed acknowledgement as a RESEND request.
func (s *Splitter) Expire(now time.Time) SendResult {
	if s.session == nil {
		return SendResult{State: SendIdle}
	}
	if now.Before(s.session.deadline) {
		return SendResult{State: SendAwaitAck}
	}
	return s.resend(now)
}

// Abort drops the session and returns the status frame to send.
func (s *Splitter) Abort() SendResult {
	if s.session == nil {
		return SendResult{State: SendIdle}
	}
	return s.abort(mt.FragAbort)
}

func (s *Splitter) abort(reason mt.FragStatus) SendResult {
	sess := s.session
	s.session = nil
	f := mt.NewReportFrame(sess.msg, mt.ExtVersionStatus, s.stackID, mt.FragmentReport{
		Block:  sess.blocks[sess.current].Block,
		Status: reason,
	})
	return SendResult{State: SendAborted, Frame: &f, Reason: reason}
}
