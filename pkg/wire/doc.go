// Package wire provides the low-level byte codec shared by every MT layer.
//
// MT payloads are flat little-endian byte layouts with fixed field order.
// Instead of offset arithmetic, every decoder walks the payload with a
// bounds-checked Reader and every encoder appends to a Writer.
//
// # Reader
//
// Reader keeps a sticky error: once a read runs past the end of the buffer
// all subsequent reads return zero values and Err reports ErrShortBuffer.
// Handlers still validate the total request length up front; the sticky
// error guards against layout bugs, not against malformed input.
//
//	r := wire.NewReader(data)
//	pan := r.Uint16()
//	addr := r.Address()
//	if err := r.Err(); err != nil {
//	    return wire.StatusLengthError
//	}
//
// # Addresses
//
// A MAC address always occupies a mode byte plus an 8-byte slot on the wire.
// Short addresses use the low two bytes of the slot; the rest is zeroed.
//
// # Index Width
//
// Security table indices are one or two bytes wide depending on how the
// deployment is built. IndexWidth is chosen once at configuration time and
// passed to every codec that reads or writes an index; it is never inferred
// from a payload.
package wire
