package wire

import "encoding/binary"

// Writer builds a little-endian payload. The zero value is ready to use.
type Writer struct {
	buf []byte
}

// NewWriter creates a writer with the given initial capacity. Encoders that
// know their total size up front pass it here so the buffer is allocated once.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// Bytes returns the encoded payload.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return len(w.buf)
}

// PutUint8 appends one byte.
func (w *Writer) PutUint8(v uint8) {
	w.buf = append(w.buf, v)
}

// PutStatus appends a status byte.
func (w *Writer) PutStatus(s Status) {
	w.buf = append(w.buf, uint8(s))
}

// PutBool appends 1 for true and 0 for false.
func (w *Writer) PutBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
		return
	}
	w.buf = append(w.buf, 0)
}

// PutUint16 appends a little-endian uint16.
func (w *Writer) PutUint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// PutUint32 appends a little-endian uint32.
func (w *Writer) PutUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// PutBytes appends raw bytes.
func (w *Writer) PutBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// PutIndex appends a table index using the given width. Values that do not
// fit a one-byte index are truncated; the caller validates ranges.
func (w *Writer) PutIndex(width IndexWidth, v uint16) {
	if width == IndexWidth16 {
		w.PutUint16(v)
		return
	}
	w.PutUint8(uint8(v))
}

// PutExtAddr appends an 8-byte extended address.
func (w *Writer) PutExtAddr(a ExtAddr) {
	w.buf = append(w.buf, a[:]...)
}

// PutAddress appends a mode byte and the 8-byte address slot.
func (w *Writer) PutAddress(a Address) {
	w.PutUint8(uint8(a.Mode))
	var slot [AddressSlotSize]byte
	switch a.Mode {
	case AddrModeShort:
		binary.LittleEndian.PutUint16(slot[:], a.Short)
	case AddrModeExt:
		slot = a.Ext
	}
	w.buf = append(w.buf, slot[:]...)
}

// PutSecurityDescriptor appends the 11-byte security descriptor.
func (w *Writer) PutSecurityDescriptor(s SecurityDescriptor) {
	w.buf = append(w.buf, s.KeySource[:]...)
	w.PutUint8(s.SecurityLevel)
	w.PutUint8(s.KeyIDMode)
	w.PutUint8(s.KeyIndex)
}
