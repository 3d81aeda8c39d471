package subscription

import (
	"sync"

	"github.com/lowpan-mt/mt-go/pkg/mt"
)

const (
	// ClearFlag in a subscription mask requests that the other bits be
	// cleared instead of set.
	ClearFlag uint32 = 0x80000000

	// AllCallbacks is the mask of a subsystem after reset.
	AllCallbacks uint32 = 0xFFFFFFFF
)

// Table holds the callback subscription mask of each subsystem.
type Table struct {
	mu    sync.RWMutex
	masks map[mt.Subsystem]uint32
}

// NewTable creates a table for the given subsystems with every callback
// enabled.
func NewTable(subsystems ...mt.Subsystem) *Table {
	t := &Table{masks: make(map[mt.Subsystem]uint32, len(subsystems))}
	for _, sub := range subsystems {
		t.masks[sub] = AllCallbacks
	}
	return t
}

// Set applies a subscription command and returns the resulting mask. It
// returns false if the subsystem has no callbacks.
func (t *Table) Set(sub mt.Subsystem, mask uint32) (uint32, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur, ok := t.masks[sub]
	if !ok {
		return 0, false
	}
	if mask&ClearFlag != 0 {
		cur &^= mask &^ ClearFlag
	} else {
		cur |= mask
	}
	t.masks[sub] = cur
	return cur, true
}

// Enabled returns true if every bit of bit is set for the subsystem.
func (t *Table) Enabled(sub mt.Subsystem, bit uint32) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cur, ok := t.masks[sub]
	return ok && cur&bit == bit
}

// Mask returns the current mask of the subsystem.
func (t *Table) Mask(sub mt.Subsystem) uint32 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.masks[sub]
}

// Reset enables every callback again.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for sub := range t.masks {
		t.masks[sub] = AllCallbacks
	}
}
