package nv

import (
	"fmt"
	"sync"
)

// MemoryStorage keeps items in memory. It implements every capability.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[ItemID][]byte
}

// NewMemoryStorage creates an empty store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[ItemID][]byte)}
}

// Items returns a copy of every item.
func (m *MemoryStorage) Items() map[ItemID][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[ItemID][]byte, len(m.items))
	for id, v := range m.items {
		out[id] = append([]byte(nil), v...)
	}
	return out
}

// Item returns a copy of one item.
func (m *MemoryStorage) Item(id ItemID) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[id]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), v...), true
}

// Load replaces the contents of the store.
func (m *MemoryStorage) Load(items map[ItemID][]byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = make(map[ItemID][]byte, len(items))
	for id, v := range items {
		m.items[id] = append([]byte(nil), v...)
	}
}

func span(item []byte, offset uint16, n int) error {
	if int(offset) > len(item) {
		return fmt.Errorf("%w: offset %d beyond item length %d", ErrBadOffset, offset, len(item))
	}
	if int(offset)+n > len(item) {
		return fmt.Errorf("%w: %d bytes at offset %d exceed item length %d", ErrBadLength, n, offset, len(item))
	}
	return nil
}

// ReadItem implements Storage.
func (m *MemoryStorage) ReadItem(id ItemID, offset uint16, dst []byte) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := span(item, offset, len(dst)); err != nil {
		return err
	}
	copy(dst, item[offset:])
	return nil
}

// WriteItem implements Storage.
func (m *MemoryStorage) WriteItem(id ItemID, offset uint16, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := span(item, offset, len(data)); err != nil {
		return err
	}
	copy(item[offset:], data)
	return nil
}

// CreateItem implements Creator. Creating an existing item of the same
// length succeeds and keeps its contents.
func (m *MemoryStorage) CreateItem(id ItemID, length uint32) error {
	if length == 0 || length > MaxItemSize {
		return fmt.Errorf("%w: %d", ErrBadLength, length)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if item, ok := m.items[id]; ok {
		if uint32(len(item)) != length {
			return fmt.Errorf("%w: %s has length %d", ErrExists, id, len(item))
		}
		return nil
	}
	m.items[id] = make([]byte, length)
	return nil
}

// DeleteItem implements Deleter.
func (m *MemoryStorage) DeleteItem(id ItemID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(m.items, id)
	return nil
}

// GetItemLength implements Lengther.
func (m *MemoryStorage) GetItemLength(id ItemID) (uint32, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return uint32(len(item)), nil
}

// UpdateItem implements Updater.
func (m *MemoryStorage) UpdateItem(id ItemID, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty update", ErrBadLength)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id] = append([]byte(nil), data...)
	return nil
}

// Compact implements Compactor. Memory never fragments.
func (m *MemoryStorage) Compact(uint16) error {
	return nil
}
