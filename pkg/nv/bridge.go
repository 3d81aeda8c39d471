package nv

import (
	"fmt"
	"log/slog"

	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// Request sizes.
const (
	ItemIDSize        = 5
	CreateReqSize     = ItemIDSize + 4
	ReadReqSize       = ItemIDSize + 3
	WriteReqSize      = ItemIDSize + 3
	UpdateReqSize     = ItemIDSize + 1
	CompactReqSize    = 2
	readResponseExtra = 2
)

// MaxReadSize is the most data one NV_READ response carries.
const MaxReadSize = mt.MaxDataSize - readResponseExtra

// MaxItemSize is the largest item the bridge creates.
const MaxItemSize = 0xFFFF

// ResetReasonItem holds the reason of the last requested reset.
var ResetReasonItem = ItemID{SystemID: 1, ItemID: 0x0F00, SubID: 0}

// Bridge serves NV commands from a storage driver.
type Bridge struct {
	storage Storage
	logger  *slog.Logger
}

// NewBridge creates a bridge over storage. A nil storage makes every
// command unsupported.
func NewBridge(storage Storage, logger *slog.Logger) *Bridge {
	return &Bridge{storage: storage, logger: logger}
}

func (b *Bridge) debug(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Debug(msg, args...)
	}
}

func readItemID(r *wire.Reader) ItemID {
	return ItemID{SystemID: r.Uint8(), ItemID: r.Uint16(), SubID: r.Uint16()}
}

// PutItemID appends an item id.
func PutItemID(w *wire.Writer, id ItemID) {
	w.PutUint8(id.SystemID)
	w.PutUint16(id.ItemID)
	w.PutUint16(id.SubID)
}

// Create creates an item of the given length.
func (b *Bridge) Create(id ItemID, length uint32) wire.Status {
	c, ok := b.storage.(Creator)
	if !ok {
		return wire.StatusUnsupported
	}
	return b.result("create", id, c.CreateItem(id, length))
}

// Delete removes an item.
func (b *Bridge) Delete(id ItemID) wire.Status {
	d, ok := b.storage.(Deleter)
	if !ok {
		return wire.StatusUnsupported
	}
	return b.result("delete", id, d.DeleteItem(id))
}

// Length returns the length of an item.
func (b *Bridge) Length(id ItemID) (uint32, wire.Status) {
	l, ok := b.storage.(Lengther)
	if !ok {
		return 0, wire.StatusUnsupported
	}
	n, err := l.GetItemLength(id)
	return n, b.result("length", id, err)
}

// Read reads up to length bytes at offset, capped at MaxReadSize.
func (b *Bridge) Read(id ItemID, offset uint16, length uint8) ([]byte, wire.Status) {
	if b.storage == nil {
		return nil, wire.StatusUnsupported
	}
	buf := make([]byte, min(int(length), MaxReadSize))
	if st := b.result("read", id, b.storage.ReadItem(id, offset, buf)); st != wire.StatusSuccess {
		return nil, st
	}
	return buf, wire.StatusSuccess
}

// Write writes data at offset.
func (b *Bridge) Write(id ItemID, offset uint16, data []byte) wire.Status {
	if b.storage == nil {
		return wire.StatusUnsupported
	}
	return b.result("write", id, b.storage.WriteItem(id, offset, data))
}

// Update replaces a whole item.
func (b *Bridge) Update(id ItemID, data []byte) wire.Status {
	u, ok := b.storage.(Updater)
	if !ok {
		return wire.StatusUnsupported
	}
	return b.result("update", id, u.UpdateItem(id, data))
}

// Compact asks the driver to reclaim space.
func (b *Bridge) Compact(threshold uint16) wire.Status {
	c, ok := b.storage.(Compactor)
	if !ok {
		return wire.StatusUnsupported
	}
	return b.result("compact", ItemID{}, c.Compact(threshold))
}

func (b *Bridge) result(op string, id ItemID, err error) wire.Status {
	st := StatusOf(err)
	if err != nil {
		b.debug("nv operation failed", "op", op, "item", id.String(), "status", st, "error", err)
	}
	return st
}

// HandleCreate serves NV_CREATE.
func (b *Bridge) HandleCreate(data []byte) []byte {
	if len(data) != CreateReqSize {
		return []byte{uint8(wire.StatusLengthError)}
	}
	r := wire.NewReader(data)
	id := readItemID(r)
	length := r.Uint32()
	return []byte{uint8(b.Create(id, length))}
}

// HandleDelete serves NV_DELETE.
func (b *Bridge) HandleDelete(data []byte) []byte {
	if len(data) != ItemIDSize {
		return []byte{uint8(wire.StatusLengthError)}
	}
	return []byte{uint8(b.Delete(readItemID(wire.NewReader(data))))}
}

// HandleLength serves NV_LENGTH: [status][length u32].
func (b *Bridge) HandleLength(data []byte) []byte {
	if len(data) != ItemIDSize {
		return []byte{uint8(wire.StatusLengthError)}
	}
	n, st := b.Length(readItemID(wire.NewReader(data)))
	w := wire.NewWriter(5)
	w.PutStatus(st)
	w.PutUint32(n)
	return w.Bytes()
}

// HandleRead serves NV_READ: [status][len][data].
func (b *Bridge) HandleRead(data []byte) []byte {
	if len(data) != ReadReqSize {
		return []byte{uint8(wire.StatusLengthError)}
	}
	r := wire.NewReader(data)
	id := readItemID(r)
	offset := r.Uint16()
	length := r.Uint8()

	value, st := b.Read(id, offset, length)
	w := wire.NewWriter(readResponseExtra + len(value))
	w.PutStatus(st)
	w.PutUint8(uint8(len(value)))
	w.PutBytes(value)
	return w.Bytes()
}

// HandleWrite serves NV_WRITE.
func (b *Bridge) HandleWrite(data []byte) []byte {
	if len(data) < WriteReqSize || len(data) != WriteReqSize+int(data[WriteReqSize-1]) {
		return []byte{uint8(wire.StatusLengthError)}
	}
	r := wire.NewReader(data)
	id := readItemID(r)
	offset := r.Uint16()
	n := int(r.Uint8())
	return []byte{uint8(b.Write(id, offset, r.Bytes(n)))}
}

// HandleUpdate serves NV_UPDATE.
func (b *Bridge) HandleUpdate(data []byte) []byte {
	if len(data) < UpdateReqSize || len(data) != UpdateReqSize+int(data[UpdateReqSize-1]) {
		return []byte{uint8(wire.StatusLengthError)}
	}
	r := wire.NewReader(data)
	id := readItemID(r)
	n := int(r.Uint8())
	return []byte{uint8(b.Update(id, r.Bytes(n)))}
}

// HandleCompact serves NV_COMPACT.
func (b *Bridge) HandleCompact(data []byte) []byte {
	if len(data) != CompactReqSize {
		return []byte{uint8(wire.StatusLengthError)}
	}
	r := wire.NewReader(data)
	return []byte{uint8(b.Compact(r.Uint16()))}
}

// SaveResetReason records why the bridge is about to reset.
func (b *Bridge) SaveResetReason(reason uint8) error {
	if st := b.Update(ResetReasonItem, []byte{reason}); st == wire.StatusSuccess {
		return nil
	}
	if st := b.Create(ResetReasonItem, 1); st != wire.StatusSuccess {
		return fmt.Errorf("%w: create reset reason item: %s", ErrFailure, st)
	}
	if st := b.Write(ResetReasonItem, 0, []byte{reason}); st != wire.StatusSuccess {
		return fmt.Errorf("%w: write reset reason: %s", ErrFailure, st)
	}
	return nil
}

// TakeResetReason returns the recorded reset reason and deletes it. A reason
// that cannot be deleted is not reported.
func (b *Bridge) TakeResetReason() (uint8, bool) {
	value, st := b.Read(ResetReasonItem, 0, 1)
	if st != wire.StatusSuccess || len(value) != 1 {
		return 0, false
	}
	if b.Delete(ResetReasonItem) != wire.StatusSuccess {
		return 0, false
	}
	return value[0], true
}
