package nv

import (
	"errors"
	"fmt"

	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// Storage errors.
var (
	ErrBadParam  = errors.New("nv: bad parameter")
	ErrBadLength = errors.New("nv: bad length")
	ErrBadOffset = errors.New("nv: bad offset")
	ErrBadItemID = errors.New("nv: bad item id")
	ErrNotFound  = errors.New("nv: item not found")
	ErrExists    = errors.New("nv: item exists")
	ErrNoMemory  = errors.New("nv: out of memory")
	ErrFailure   = errors.New("nv: failure")
)

// ItemID identifies an NV item.
type ItemID struct {
	SystemID uint8
	ItemID   uint16
	SubID    uint16
}

// String returns the item id in sys/item/sub form.
func (id ItemID) String() string {
	return fmt.Sprintf("%d/0x%04X/0x%04X", id.SystemID, id.ItemID, id.SubID)
}

// Storage reads and writes NV items.
type Storage interface {
	// ReadItem fills dst from offset. It fails if the item is shorter than
	// offset+len(dst).
	ReadItem(id ItemID, offset uint16, dst []byte) error

	// WriteItem writes data at offset. It fails if the item is shorter than
	// offset+len(data).
	WriteItem(id ItemID, offset uint16, data []byte) error
}

// Creator creates items of a fixed length.
type Creator interface {
	CreateItem(id ItemID, length uint32) error
}

// Deleter deletes items.
type Deleter interface {
	DeleteItem(id ItemID) error
}

// Lengther reports item lengths.
type Lengther interface {
	GetItemLength(id ItemID) (uint32, error)
}

// Updater replaces a whole item, creating it if needed.
type Updater interface {
	UpdateItem(id ItemID, data []byte) error
}

// Compactor reclaims space held by stale data.
type Compactor interface {
	Compact(threshold uint16) error
}

// StatusOf maps a storage error into the RPC status set.
func StatusOf(err error) wire.Status {
	switch {
	case err == nil:
		return wire.StatusSuccess
	case errors.Is(err, ErrBadParam),
		errors.Is(err, ErrBadLength),
		errors.Is(err, ErrBadOffset),
		errors.Is(err, ErrBadItemID),
		errors.Is(err, ErrNotFound):
		return wire.StatusInvalidParameter
	default:
		return wire.StatusUnsupported
	}
}
