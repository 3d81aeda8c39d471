package interaction

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/version"
)

// Registry errors.
var (
	ErrDuplicateCommand = errors.New("command already registered")
	ErrNilHandler       = errors.New("command has no handler")
)

// Handler serves one command body. For SREQ commands the returned bytes are
// the SRSP body; AREQ commands return nil.
type Handler func(data []byte) []byte

// Command is one entry of a subsystem command table.
type Command struct {
	ID   uint8
	Name string

	// Type is the frame type the command is accepted as (SREQ or AREQ).
	Type   mt.Type
	Handle Handler
}

// Group is a set of commands belonging to one subsystem.
type Group interface {
	Register(r *Registry) error
}

// Registry maps (subsystem, command id) to commands.
type Registry struct {
	tables map[mt.Subsystem]map[uint8]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[mt.Subsystem]map[uint8]Command)}
}

// Register adds commands to the table of sub, creating it if needed.
func (r *Registry) Register(sub mt.Subsystem, cmds ...Command) error {
	table, ok := r.tables[sub]
	if !ok {
		table = make(map[uint8]Command)
		r.tables[sub] = table
	}
	for _, c := range cmds {
		if c.Handle == nil {
			return fmt.Errorf("%w: %s/0x%02X", ErrNilHandler, sub, c.ID)
		}
		if _, exists := table[c.ID]; exists {
			return fmt.Errorf("%w: %s/0x%02X", ErrDuplicateCommand, sub, c.ID)
		}
		table[c.ID] = c
	}
	return nil
}

// Lookup returns the command registered for sub/id.
func (r *Registry) Lookup(sub mt.Subsystem, id uint8) (Command, bool) {
	c, ok := r.tables[sub][id]
	return c, ok
}

// Has reports whether sub has a command table.
func (r *Registry) Has(sub mt.Subsystem) bool {
	_, ok := r.tables[sub]
	return ok
}

// Subsystems returns the registered subsystems in ascending order.
func (r *Registry) Subsystems() []mt.Subsystem {
	out := make([]mt.Subsystem, 0, len(r.tables))
	for sub := range r.tables {
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Commands returns the command ids of sub in ascending order.
func (r *Registry) Commands(sub mt.Subsystem) []uint8 {
	table := r.tables[sub]
	out := make([]uint8, 0, len(table))
	for id := range table {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Capabilities returns the ping capability bitmask.
func (r *Registry) Capabilities() uint16 {
	var caps uint16
	for sub := range r.tables {
		caps |= sub.Capability()
	}
	return caps
}

// BridgeCapabilities describes the registry for manifest validation.
func (r *Registry) BridgeCapabilities() version.BridgeCapabilities {
	caps := make(version.BridgeCapabilities, len(r.tables))
	for sub := range r.tables {
		caps[uint8(sub)] = r.Commands(sub)
	}
	return caps
}
