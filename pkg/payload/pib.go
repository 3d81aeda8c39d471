package payload

import (
	"encoding/binary"

	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// accessor binds the typed get/set calls of one attribute.
type accessor struct {
	get      func() (uint32, wire.Status)
	getArray func(dst []byte) wire.Status
	set      func(v uint32) wire.Status
	setArray func(v []byte) wire.Status
}

func (c *Codec) putScalar(w *wire.Writer, d Descriptor, v uint32) {
	switch d.Width {
	case WidthBool:
		w.PutBool(v != 0)
	case WidthUint8:
		w.PutUint8(uint8(v))
	case WidthUint16:
		w.PutUint16(uint16(v))
	case WidthUint32:
		w.PutUint32(v)
	case WidthIndex:
		w.PutIndex(c.width, uint16(v))
	}
}

func (c *Codec) scalarValue(d Descriptor, b []byte) uint32 {
	switch c.scalarSize(d) {
	case 1:
		if d.Width == WidthBool && b[0] != 0 {
			return 1
		}
		return uint32(b[0])
	case 2:
		return uint32(binary.LittleEndian.Uint16(b))
	default:
		return binary.LittleEndian.Uint32(b)
	}
}

// read fetches an attribute value in wire form. n is the array length to
// copy and is ignored for scalars.
func (c *Codec) read(d Descriptor, a accessor, n int) ([]byte, wire.Status) {
	if d.Width == WidthArray {
		buf := make([]byte, n)
		if st := a.getArray(buf); st != wire.StatusSuccess {
			return nil, st
		}
		return buf, wire.StatusSuccess
	}
	v, st := a.get()
	if st != wire.StatusSuccess {
		return nil, st
	}
	w := wire.NewWriter(c.scalarSize(d))
	c.putScalar(w, d, v)
	return w.Bytes(), wire.StatusSuccess
}

// valid checks a value length against the descriptor.
func (c *Codec) valid(d Descriptor, value []byte) bool {
	if d.Width == WidthArray && d.Variable {
		return len(value) <= d.Size
	}
	return len(value) == c.scalarSize(d)
}

func (c *Codec) write(d Descriptor, a accessor, value []byte) wire.Status {
	if d.Width == WidthArray {
		return a.setArray(value)
	}
	return a.set(c.scalarValue(d, value))
}

func pibAccessor(e mac.PIB, attr mac.PIBAttribute) accessor {
	return accessor{
		get:      func() (uint32, wire.Status) { return e.GetPIB(attr) },
		getArray: func(dst []byte) wire.Status { return e.GetPIBArray(attr, dst) },
		set:      func(v uint32) wire.Status { return e.SetPIB(attr, v) },
		setArray: func(v []byte) wire.Status { return e.SetPIBArray(attr, v) },
	}
}

// GetPIB serves a MAC GET request: [attr] -> [status][len][value].
func (c *Codec) GetPIB(e mac.PIB, data []byte) []byte {
	id, st := DecodeUint8(data)
	if st != wire.StatusSuccess {
		return StatusBody(st)
	}
	attr := mac.PIBAttribute(id)
	d, ok := pibDescriptors[attr]
	if !ok {
		return StatusBody(wire.StatusUnsupportedAttribute)
	}

	n := d.Size
	if d.Variable {
		length, st := e.GetPIB(mustLengthAttr(attr, d))
		if st != wire.StatusSuccess {
			return StatusBody(st)
		}
		n = min(int(length), d.Size)
	}

	value, st := c.read(d, pibAccessor(e, attr), n)
	if st != wire.StatusSuccess {
		return StatusBody(st)
	}
	w := wire.NewWriter(2 + len(value))
	w.PutStatus(wire.StatusSuccess)
	w.PutUint8(uint8(len(value)))
	w.PutBytes(value)
	return w.Bytes()
}

// SetPIB serves a MAC SET request: [attr][value] -> [status]. The value must
// have exactly the attribute's width; variable arrays also update their
// length attribute, all or nothing.
func (c *Codec) SetPIB(e mac.PIB, data []byte) wire.Status {
	if len(data) < 1 {
		return wire.StatusLengthError
	}
	attr := mac.PIBAttribute(data[0])
	d, ok := pibDescriptors[attr]
	if !ok {
		return wire.StatusUnsupportedAttribute
	}
	value := data[1:]
	if !c.valid(d, value) {
		return wire.StatusLengthError
	}

	if d.Variable {
		return setVariablePIB(e, attr, mustLengthAttr(attr, d), value)
	}
	return c.write(d, pibAccessor(e, attr), value)
}

// setVariablePIB sets the length attribute before the value and puts the old
// length back if the value is refused, so a failed SET leaves the PIB as it was.
func setVariablePIB(e mac.PIB, attr, lengthAttr mac.PIBAttribute, value []byte) wire.Status {
	old, st := e.GetPIB(lengthAttr)
	if st != wire.StatusSuccess {
		return st
	}
	if st := e.SetPIB(lengthAttr, uint32(len(value))); st != wire.StatusSuccess {
		return st
	}
	if st := e.SetPIBArray(attr, value); st != wire.StatusSuccess {
		e.SetPIB(lengthAttr, old)
		return st
	}
	return wire.StatusSuccess
}

// EncodeGetPIB builds a GET request body.
func EncodeGetPIB(attr mac.PIBAttribute) []byte {
	return []byte{uint8(attr)}
}

// EncodeSetPIB builds a SET request body.
func EncodeSetPIB(attr mac.PIBAttribute, value []byte) []byte {
	return append([]byte{uint8(attr)}, value...)
}

func fhAccessor(e mac.FrequencyHopping, attr mac.FHAttribute) accessor {
	return accessor{
		get:      func() (uint32, wire.Status) { return e.GetFH(attr) },
		getArray: func(dst []byte) wire.Status { return e.GetFHArray(attr, dst) },
		set:      func(v uint32) wire.Status { return e.SetFH(attr, v) },
		setArray: func(v []byte) wire.Status { return e.SetFHArray(attr, v) },
	}
}

// GetFH serves an FH GET request: [attr u16] -> [status][len u16][value].
func (c *Codec) GetFH(e mac.FrequencyHopping, data []byte) []byte {
	id, st := DecodeUint16(data)
	if st != wire.StatusSuccess {
		return StatusBody(st)
	}
	attr := mac.FHAttribute(id)
	d, ok := fhDescriptors[attr]
	if !ok {
		return StatusBody(wire.StatusUnsupportedAttribute)
	}

	value, st := c.read(d, fhAccessor(e, attr), d.Size)
	if st != wire.StatusSuccess {
		return StatusBody(st)
	}
	w := wire.NewWriter(3 + len(value))
	w.PutStatus(wire.StatusSuccess)
	w.PutUint16(uint16(len(value)))
	w.PutBytes(value)
	return w.Bytes()
}

// SetFH serves an FH SET request: [attr u16][value] -> [status].
func (c *Codec) SetFH(e mac.FrequencyHopping, data []byte) wire.Status {
	if len(data) < 2 {
		return wire.StatusLengthError
	}
	attr := mac.FHAttribute(binary.LittleEndian.Uint16(data))
	d, ok := fhDescriptors[attr]
	if !ok {
		return wire.StatusUnsupportedAttribute
	}
	value := data[2:]
	if !c.valid(d, value) {
		return wire.StatusLengthError
	}
	return c.write(d, fhAccessor(e, attr), value)
}

// EncodeGetFH builds an FH GET request body.
func EncodeGetFH(attr mac.FHAttribute) []byte {
	return binary.LittleEndian.AppendUint16(nil, uint16(attr))
}

// EncodeSetFH builds an FH SET request body.
func EncodeSetFH(attr mac.FHAttribute, value []byte) []byte {
	return append(EncodeGetFH(attr), value...)
}
