package fragment

import (
	"time"

	"github.com/lowpan-mt/mt-go/pkg/mt"
)

// RecvState is the state of an inbound session.
type RecvState uint8

const (
	RecvIdle RecvState = iota
	RecvReceiving
	RecvComplete
	RecvAborted
)

// String returns the state name.
func (s RecvState) String() string {
	switch s {
	case RecvIdle:
		return "IDLE"
	case RecvReceiving:
		return "RECEIVING"
	case RecvComplete:
		return "COMPLETE"
	case RecvAborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

// RecvResult is the outcome of feeding a fragment to an Assembler.
type RecvResult struct {
	State RecvState

	// Reply is the ACK or status frame to send back, if any.
	Reply *mt.Frame

	// Message is the reassembled message once State is RecvComplete.
	Message *mt.Frame

	// Reason explains an abort.
	Reason mt.FragStatus

	// Restarted is true when block 0 replaced an unfinished session.
	Restarted bool
}

type recvSession struct {
	header   mt.Frame
	total    int
	next     int
	buf      []byte
	deadline time.Time
}

// matches reports whether f continues the message this session holds.
func (s *recvSession) matches(f mt.Frame) bool {
	return f.Type == s.header.Type && f.Subsystem == s.header.Subsystem && f.Command == s.header.Command
}

// Assembler reassembles one inbound oversized message at a time.
type Assembler struct {
	config  Config
	stackID uint8
	session *recvSession
}

// NewAssembler creates an assembler that stamps replies with stackID.
func NewAssembler(config Config, stackID uint8) *Assembler {
	return &Assembler{config: config.normalized(), stackID: stackID}
}

// Active returns true while an inbound session is in progress.
func (a *Assembler) Active() bool {
	return a.session != nil
}

// Received returns the number of bytes buffered so far.
func (a *Assembler) Received() int {
	if a.session == nil {
		return 0
	}
	return len(a.session.buf)
}

// Accept processes one fragment data frame.
func (a *Assembler) Accept(f mt.Frame, now time.Time) RecvResult {
	fd, err := mt.ParseFragmentData(f.Data)
	if err != nil {
		var block uint8
		if len(f.Data) > 0 {
			block = f.Data[0]
		}
		return a.reject(f, block, mt.FragBadLength)
	}

	if fd.Block == 0 {
		return a.begin(f, fd, now)
	}

	sess := a.session
	if sess == nil || int(fd.Block) != sess.next || !sess.matches(f) {
		return a.reject(f, fd.Block, mt.FragBadBlock)
	}
	if len(fd.Chunk) == 0 || len(sess.buf)+len(fd.Chunk) > sess.total {
		return a.reject(f, fd.Block, mt.FragBadLength)
	}
	return a.append(f, fd, now)
}

func (a *Assembler) begin(f mt.Frame, fd mt.FragmentData, now time.Time) RecvResult {
	restarted := a.session != nil
	a.session = nil

	total := int(fd.Total)
	if total > a.config.MaxMessageSize {
		res := a.reject(f, 0, mt.FragNoMemory)
		res.Restarted = restarted
		return res
	}
	if total == 0 || len(fd.Chunk) > total || len(fd.Chunk) == 0 {
		res := a.reject(f, 0, mt.FragBadLength)
		res.Restarted = restarted
		return res
	}

	a.session = &recvSession{
		header: mt.Frame{Type: f.Type, Subsystem: f.Subsystem, Command: f.Command},
		total:  total,
		buf:    make([]byte, 0, total),
	}
	res := a.append(f, fd, now)
	res.Restarted = restarted
	return res
}

func (a *Assembler) append(f mt.Frame, fd mt.FragmentData, now time.Time) RecvResult {
	sess := a.session
	sess.buf = append(sess.buf, fd.Chunk...)
	sess.next++
	sess.deadline = now.Add(a.config.ReassemblyTimeout)

	if len(sess.buf) < sess.total {
		reply := mt.NewReportFrame(f, mt.ExtVersionFragAck, a.stackID, mt.FragmentReport{Block: fd.Block, Status: mt.FragSuccess})
		return RecvResult{State: RecvReceiving, Reply: &reply}
	}

	a.session = nil
	msg := sess.header
	msg.Data = sess.buf
	reply := mt.NewReportFrame(f, mt.ExtVersionFragAck, a.stackID, mt.FragmentReport{Block: fd.Block, Status: mt.FragDone})
	return RecvResult{State: RecvComplete, Reply: &reply, Message: &msg}
}

func (a *Assembler) reject(f mt.Frame, block uint8, reason mt.FragStatus) RecvResult {
	a.session = nil
	reply := mt.NewReportFrame(f, mt.ExtVersionStatus, a.stackID, mt.FragmentReport{Block: block, Status: reason})
	return RecvResult{State: RecvAborted, Reply: &reply, Reason: reason}
}

// HandleStatus processes a fragment status frame from the peer. An abort
// discards the inbound session.
func (a *Assembler) HandleStatus(st mt.FragmentReport) RecvResult {
	if a.session == nil {
		return RecvResult{State: RecvIdle}
	}
	if st.Status == mt.FragAbort {
		a.session = nil
		return RecvResult{State: RecvAborted, Reason: mt.FragAbort}
	}
	return RecvResult{State: RecvReceiving}
}

// Expire aborts a session whose next block is overdue.
func (a *Assembler) Expire(now time.Time) RecvResult {
	sess := a.session
	if sess == nil {
		return RecvResult{State: RecvIdle}
	}
	if now.Before(sess.deadline) {
		return RecvResult{State: RecvReceiving}
	}
	block := uint8(0)
	if sess.next > 0 {
		block = uint8(sess.next - 1)
	}
	return a.reject(sess.header, block, mt.FragAbort)
}
