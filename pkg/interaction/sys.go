package interaction

import (
	"log/slog"

	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/nv"
	"github.com/lowpan-mt/mt-go/pkg/payload"
	"github.com/lowpan-mt/mt-go/pkg/version"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// ResetType is the kind of reset a host asks for.
type ResetType uint8

const (
	ResetHard ResetType = 0
	ResetSoft ResetType = 1
)

// String returns the reset type name.
func (t ResetType) String() string {
	switch t {
	case ResetHard:
		return "HARD"
	case ResetSoft:
		return "SOFT"
	default:
		return "UNKNOWN"
	}
}

// Reset reasons reported in SYS_RESET_IND.
const (
	ResetReasonPowerUp uint8 = 0
	ResetReasonHard    uint8 = 1
	ResetReasonSoft    uint8 = 2
)

// ResetIndSize is the body size of SYS_RESET_IND.
const ResetIndSize = 1 + version.RecordSize

// ResetFunc asks the embedder to restart the bridge.
type ResetFunc func(t ResetType)

// SystemConfig configures the SYS command group.
type SystemConfig struct {
	// Registry answers PING with its capability mask.
	Registry *Registry

	Version version.Record

	// NV serves the NV commands. Nil leaves them unregistered.
	NV *nv.Bridge

	// Reset is called after the reset reason was recorded.
	Reset ResetFunc

	Logger *slog.Logger
}

// System serves the SYS subsystem.
type System struct {
	config SystemConfig
}

// NewSystem creates the SYS command group.
func NewSystem(config SystemConfig) *System {
	return &System{config: config}
}

// Register implements Group.
func (s *System) Register(r *Registry) error {
	cmds := []Command{
		{ID: mt.SysResetReq, Name: "RESET_REQ", Type: mt.TypeAREQ, Handle: s.handleReset},
		{ID: mt.SysPing, Name: "PING", Type: mt.TypeSREQ, Handle: s.handlePing},
		{ID: mt.SysVersion, Name: "VERSION", Type: mt.TypeSREQ, Handle: s.handleVersion},
	}
	if b := s.config.NV; b != nil {
		cmds = append(cmds,
			Command{ID: mt.SysNVCreate, Name: "NV_CREATE", Type: mt.TypeSREQ, Handle: b.HandleCreate},
			Command{ID: mt.SysNVDelete, Name: "NV_DELETE", Type: mt.TypeSREQ, Handle: b.HandleDelete},
			Command{ID: mt.SysNVLength, Name: "NV_LENGTH", Type: mt.TypeSREQ, Handle: b.HandleLength},
			Command{ID: mt.SysNVRead, Name: "NV_READ", Type: mt.TypeSREQ, Handle: b.HandleRead},
			Command{ID: mt.SysNVWrite, Name: "NV_WRITE", Type: mt.TypeSREQ, Handle: b.HandleWrite},
			Command{ID: mt.SysNVUpdate, Name: "NV_UPDATE", Type: mt.TypeSREQ, Handle: b.HandleUpdate},
			Command{ID: mt.SysNVCompact, Name: "NV_COMPACT", Type: mt.TypeSREQ, Handle: b.HandleCompact},
		)
	}
	return r.Register(mt.SubsystemSys, cmds...)
}

func (s *System) handlePing(data []byte) []byte {
	if len(data) != 0 {
		return payload.StatusBody(wire.StatusLengthError)
	}
	var caps uint16
	if s.config.Registry != nil {
		caps = s.config.Registry.Capabilities()
	}
	w := wire.NewWriter(2)
	w.PutUint16(caps)
	return w.Bytes()
}

func (s *System) handleVersion(data []byte) []byte {
	if len(data) != 0 {
		return payload.StatusBody(wire.StatusLengthError)
	}
	return s.config.Version.Bytes()
}

// handleReset records the reason in NV before handing over to the embedder.
// It is an AREQ: nothing is answered.
func (s *System) handleReset(data []byte) []byte {
	v, st := payload.DecodeUint8(data)
	if st != wire.StatusSuccess || v > uint8(ResetSoft) {
		s.warn("ignoring malformed reset request", "len", len(data))
		return nil
	}
	t := ResetType(v)

	reason := ResetReasonHard
	if t == ResetSoft {
		reason = ResetReasonSoft
	}
	if s.config.NV != nil {
		if err := s.config.NV.SaveResetReason(reason); err != nil {
			s.warn("recording reset reason failed", "error", err)
		}
	}
	if s.config.Reset != nil {
		s.config.Reset(t)
	}
	return nil
}

// ResetIndication returns the SYS_RESET_IND body for the current start.
// A recorded reason is consumed; without one the start counts as power-up.
func (s *System) ResetIndication() []byte {
	reason := ResetReasonPowerUp
	if s.config.NV != nil {
		if r, ok := s.config.NV.TakeResetReason(); ok {
			reason = r
		}
	}
	w := wire.NewWriter(ResetIndSize)
	w.PutUint8(reason)
	w.PutBytes(s.config.Version.Bytes())
	return w.Bytes()
}

func (s *System) warn(msg string, args ...any) {
	if s.config.Logger != nil {
		s.config.Logger.Warn(msg, args...)
	}
}
