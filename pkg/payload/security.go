package payload

import (
	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// EntrySize returns the wire size of a security table entry, or 0 if attr
// is not an entry attribute.
func (c *Codec) EntrySize(attr mac.SecurityAttribute) int {
	w := c.width.Size()
	switch attr {
	case mac.SecAttrKeyIDLookupEntry:
		return 2*w + mac.KeyLookupSize + 1
	case mac.SecAttrKeyDeviceEntry:
		return 2*w + 3
	case mac.SecAttrKeyUsageEntry:
		return 2*w + 2
	case mac.SecAttrKeyEntry:
		return w + mac.KeySize + 4
	case mac.SecAttrDeviceEntry:
		return w + 2 + 2 + wire.ExtAddrSize + 4 + 1
	case mac.SecAttrSecurityLevelEntry:
		return w + 4
	default:
		return 0
	}
}

// EncodeSecurityEntry encodes a security table entry.
func (c *Codec) EncodeSecurityEntry(entry mac.SecurityEntry) []byte {
	w := wire.NewWriter(c.EntrySize(entry.Attribute()))
	c.putSecurityEntry(w, entry)
	return w.Bytes()
}

func (c *Codec) putSecurityEntry(w *wire.Writer, entry mac.SecurityEntry) {
	switch e := entry.(type) {
	case mac.KeyIDLookupEntry:
		w.PutIndex(c.width, e.KeyIndex)
		w.PutIndex(c.width, e.LookupIndex)
		w.PutBytes(e.LookupData[:])
		w.PutUint8(e.LookupSize)
	case mac.KeyDeviceEntry:
		w.PutIndex(c.width, e.KeyIndex)
		w.PutIndex(c.width, e.KeyDeviceIndex)
		w.PutUint8(e.DeviceHandle)
		w.PutBool(e.UniqueDevice)
		w.PutBool(e.Blacklisted)
	case mac.KeyUsageEntry:
		w.PutIndex(c.width, e.KeyIndex)
		w.PutIndex(c.width, e.KeyUsageIndex)
		w.PutUint8(e.FrameType)
		w.PutUint8(e.CmdFrameID)
	case mac.KeyEntry:
		w.PutIndex(c.width, e.KeyIndex)
		w.PutBytes(e.Key[:])
		w.PutUint32(e.FrameCounter)
	case mac.DeviceEntry:
		w.PutIndex(c.width, e.DeviceIndex)
		w.PutUint16(e.PANID)
		w.PutUint16(e.ShortAddr)
		w.PutExtAddr(e.ExtAddr)
		w.PutUint32(e.FrameCounter)
		w.PutBool(e.Exempt)
	case mac.SecurityLevelEntry:
		w.PutIndex(c.width, e.LevelIndex)
		w.PutUint8(e.FrameType)
		w.PutUint8(e.CmdFrameID)
		w.PutUint8(e.SecurityMinimum)
		w.PutBool(e.OverrideMinimum)
	}
}

// DecodeSecurityEntry decodes the entry for attr. The body must have exactly
// the entry size.
func (c *Codec) DecodeSecurityEntry(attr mac.SecurityAttribute, data []byte) (mac.SecurityEntry, wire.Status) {
	size := c.EntrySize(attr)
	if size == 0 {
		return nil, wire.StatusUnsupportedAttribute
	}
	if !exact(data, size) {
		return nil, wire.StatusLengthError
	}

	r := wire.NewReader(data)
	var entry mac.SecurityEntry
	switch attr {
	case mac.SecAttrKeyIDLookupEntry:
		var e mac.KeyIDLookupEntry
		e.KeyIndex = r.Index(c.width)
		e.LookupIndex = r.Index(c.width)
		r.Fixed(e.LookupData[:])
		e.LookupSize = r.Uint8()
		entry = e
	case mac.SecAttrKeyDeviceEntry:
		var e mac.KeyDeviceEntry
		e.KeyIndex = r.Index(c.width)
		e.KeyDeviceIndex = r.Index(c.width)
		e.DeviceHandle = r.Uint8()
		e.UniqueDevice = r.Bool()
		e.Blacklisted = r.Bool()
		entry = e
	case mac.SecAttrKeyUsageEntry:
		var e mac.KeyUsageEntry
		e.KeyIndex = r.Index(c.width)
		e.KeyUsageIndex = r.Index(c.width)
		e.FrameType = r.Uint8()
		e.CmdFrameID = r.Uint8()
		entry = e
	case mac.SecAttrKeyEntry:
		var e mac.KeyEntry
		e.KeyIndex = r.Index(c.width)
		r.Fixed(e.Key[:])
		e.FrameCounter = r.Uint32()
		entry = e
	case mac.SecAttrDeviceEntry:
		var e mac.DeviceEntry
		e.DeviceIndex = r.Index(c.width)
		e.PANID = r.Uint16()
		e.ShortAddr = r.Uint16()
		e.ExtAddr = r.ExtAddr()
		e.FrameCounter = r.Uint32()
		e.Exempt = r.Bool()
		entry = e
	case mac.SecAttrSecurityLevelEntry:
		var e mac.SecurityLevelEntry
		e.LevelIndex = r.Index(c.width)
		e.FrameType = r.Uint8()
		e.CmdFrameID = r.Uint8()
		e.SecurityMinimum = r.Uint8()
		e.OverrideMinimum = r.Bool()
		entry = e
	}
	if st := finish(r); st != wire.StatusSuccess {
		return nil, st
	}
	return entry, wire.StatusSuccess
}

// securityHeaderSize is [attr][index1][index2].
func (c *Codec) securityHeaderSize() int {
	return 1 + 2*c.width.Size()
}

func securityAccessor(e mac.Security, attr mac.SecurityAttribute) accessor {
	return accessor{
		get:      func() (uint32, wire.Status) { return e.GetSecurity(attr) },
		getArray: func(dst []byte) wire.Status { return e.GetSecurityArray(attr, dst) },
		set:      func(v uint32) wire.Status { return e.SetSecurity(attr, v) },
		setArray: func(v []byte) wire.Status { return e.SetSecurityArray(attr, v) },
	}
}

// GetSecurity serves a security GET request:
// [attr][index1][index2] -> [status][attr][index1][index2][value].
func (c *Codec) GetSecurity(e mac.Security, data []byte) []byte {
	if !exact(data, c.securityHeaderSize()) {
		return StatusBody(wire.StatusLengthError)
	}
	header := data
	r := wire.NewReader(data)
	attr := mac.SecurityAttribute(r.Uint8())
	index1 := r.Index(c.width)
	index2 := r.Index(c.width)

	var value []byte
	if attr.IsEntry() {
		entry, st := e.GetSecurityEntry(attr, index1, index2)
		if st != wire.StatusSuccess {
			return StatusBody(st)
		}
		if entry == nil || entry.Attribute() != attr {
			return StatusBody(wire.StatusInvalidParameter)
		}
		value = c.EncodeSecurityEntry(entry)
	} else {
		d, ok := securityDescriptors[attr]
		if !ok {
			return StatusBody(wire.StatusUnsupportedAttribute)
		}
		var st wire.Status
		value, st = c.read(d, securityAccessor(e, attr), d.Size)
		if st != wire.StatusSuccess {
			return StatusBody(st)
		}
	}

	w := wire.NewWriter(1 + len(header) + len(value))
	w.PutStatus(wire.StatusSuccess)
	w.PutBytes(header)
	w.PutBytes(value)
	return w.Bytes()
}

// SetSecurity serves a security SET request: [attr][index1][index2][value].
// Entry values carry their own indices; the header indices address scalar
// attributes only.
func (c *Codec) SetSecurity(e mac.Security, data []byte) wire.Status {
	hs := c.securityHeaderSize()
	if len(data) < hs {
		return wire.StatusLengthError
	}
	attr := mac.SecurityAttribute(data[0])
	value := data[hs:]

	if attr.IsEntry() {
		entry, st := c.DecodeSecurityEntry(attr, value)
		if st != wire.StatusSuccess {
			return st
		}
		return e.SetSecurityEntry(entry)
	}

	d, ok := securityDescriptors[attr]
	if !ok {
		return wire.StatusUnsupportedAttribute
	}
	if !c.valid(d, value) {
		return wire.StatusLengthError
	}
	return c.write(d, securityAccessor(e, attr), value)
}

// EncodeGetSecurity builds a security GET request body.
func (c *Codec) EncodeGetSecurity(attr mac.SecurityAttribute, index1, index2 uint16) []byte {
	w := wire.NewWriter(c.securityHeaderSize())
	w.PutUint8(uint8(attr))
	w.PutIndex(c.width, index1)
	w.PutIndex(c.width, index2)
	return w.Bytes()
}

// EncodeSetSecurityEntry builds a security SET request body for an entry.
func (c *Codec) EncodeSetSecurityEntry(entry mac.SecurityEntry, index1, index2 uint16) []byte {
	w := wire.NewWriter(c.securityHeaderSize() + c.EntrySize(entry.Attribute()))
	w.PutUint8(uint8(entry.Attribute()))
	w.PutIndex(c.width, index1)
	w.PutIndex(c.width, index2)
	c.putSecurityEntry(w, entry)
	return w.Bytes()
}

// EncodeSetSecurity builds a security SET request body for a scalar value
// already in wire form.
func (c *Codec) EncodeSetSecurity(attr mac.SecurityAttribute, value []byte) []byte {
	w := wire.NewWriter(c.securityHeaderSize() + len(value))
	w.PutUint8(uint8(attr))
	w.PutIndex(c.width, 0)
	w.PutIndex(c.width, 0)
	w.PutBytes(value)
	return w.Bytes()
}
