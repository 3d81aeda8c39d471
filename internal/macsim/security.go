package macsim

import (
	"github.com/lowpan-mt/mt-go/pkg/mac"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// entryKey addresses one security table entry. index2 is zero for tables
// with a single index.
type entryKey struct {
	attr   mac.SecurityAttribute
	index1 uint16
	index2 uint16
}

func (e *Engine) GetSecurity(attr mac.SecurityAttribute) (uint32, wire.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.security.get(attr)
}

func (e *Engine) GetSecurityArray(attr mac.SecurityAttribute, dst []byte) wire.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.security.getArray(attr, dst)
}

func (e *Engine) SetSecurity(attr mac.SecurityAttribute, value uint32) wire.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.security.set(attr, value)
}

func (e *Engine) SetSecurityArray(attr mac.SecurityAttribute, value []byte) wire.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.security.setArray(attr, value)
}

// capacity returns the size of the table that bounds the first index of attr.
// Caller holds mu.
func (e *Engine) capacity(attr mac.SecurityAttribute) uint16 {
	switch attr {
	case mac.SecAttrDeviceEntry:
		return uint16(e.security.scalars[mac.SecAttrDeviceTableEntries])
	case mac.SecAttrSecurityLevelEntry:
		return uint16(e.security.scalars[mac.SecAttrSecurityLevelTableEntries])
	default:
		return uint16(e.security.scalars[mac.SecAttrKeyTableEntries])
	}
}

// GetSecurityEntry returns the addressed entry. Unwritten slots read back as
// zero entries carrying their indices.
func (e *Engine) GetSecurityEntry(attr mac.SecurityAttribute, index1, index2 uint16) (mac.SecurityEntry, wire.Status) {
	if !attr.IsEntry() {
		return nil, wire.StatusUnsupportedAttribute
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if index1 >= e.capacity(attr) {
		return nil, wire.StatusInvalidIndex
	}
	key := entryKey{attr: attr, index1: index1}
	if twoIndexed(attr) {
		key.index2 = index2
	}
	if entry, ok := e.entries[key]; ok {
		return entry, wire.StatusSuccess
	}
	return emptyEntry(attr, index1, index2), wire.StatusSuccess
}

// SetSecurityEntry stores an entry at the indices it carries.
func (e *Engine) SetSecurityEntry(entry mac.SecurityEntry) wire.Status {
	if entry == nil {
		return wire.StatusInvalidParameter
	}
	key := keyOf(entry)
	e.mu.Lock()
	defer e.mu.Unlock()
	if key.index1 >= e.capacity(key.attr) {
		return wire.StatusInvalidIndex
	}
	e.entries[key] = entry
	return wire.StatusSuccess
}

func twoIndexed(attr mac.SecurityAttribute) bool {
	switch attr {
	case mac.SecAttrKeyIDLookupEntry, mac.SecAttrKeyDeviceEntry, mac.SecAttrKeyUsageEntry:
		return true
	default:
		return false
	}
}

func keyOf(entry mac.SecurityEntry) entryKey {
	switch v := entry.(type) {
	case mac.KeyIDLookupEntry:
		return entryKey{v.Attribute(), v.KeyIndex, v.LookupIndex}
	case mac.KeyDeviceEntry:
		return entryKey{v.Attribute(), v.KeyIndex, v.KeyDeviceIndex}
	case mac.KeyUsageEntry:
		return entryKey{v.Attribute(), v.KeyIndex, v.KeyUsageIndex}
	case mac.KeyEntry:
		return entryKey{attr: v.Attribute(), index1: v.KeyIndex}
	case mac.DeviceEntry:
		return entryKey{attr: v.Attribute(), index1: v.DeviceIndex}
	case mac.SecurityLevelEntry:
		return entryKey{attr: v.Attribute(), index1: v.LevelIndex}
	default:
		return entryKey{attr: entry.Attribute()}
	}
}

func emptyEntry(attr mac.SecurityAttribute, index1, index2 uint16) mac.SecurityEntry {
	switch attr {
	case mac.SecAttrKeyIDLookupEntry:
		return mac.KeyIDLookupEntry{KeyIndex: index1, LookupIndex: index2}
	case mac.SecAttrKeyDeviceEntry:
		return mac.KeyDeviceEntry{KeyIndex: index1, KeyDeviceIndex: index2}
	case mac.SecAttrKeyUsageEntry:
		return mac.KeyUsageEntry{KeyIndex: index1, KeyUsageIndex: index2}
	case mac.SecAttrKeyEntry:
		return mac.KeyEntry{KeyIndex: index1}
	case mac.SecAttrDeviceEntry:
		return mac.DeviceEntry{DeviceIndex: index1}
	default:
		return mac.SecurityLevelEntry{LevelIndex: index1}
	}
}

// AddDevice updates the device with the same extended address or takes the
// first free slot of the device table.
func (e *Engine) AddDevice(req mac.AddDeviceRequest) wire.Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	size := e.capacity(mac.SecAttrDeviceEntry)
	free := -1
	for i := uint16(0); i < size; i++ {
		entry, ok := e.entries[entryKey{attr: mac.SecAttrDeviceEntry, index1: i}]
		if !ok {
			if free < 0 {
				free = int(i)
			}
			continue
		}
		if entry.(mac.DeviceEntry).ExtAddr == req.ExtAddr {
			free = int(i)
			break
		}
	}
	if free < 0 {
		return wire.StatusNoResources
	}

	index := uint16(free)
	e.entries[entryKey{attr: mac.SecAttrDeviceEntry, index1: index}] = mac.DeviceEntry{
		DeviceIndex:  index,
		PANID:        req.PANID,
		ShortAddr:    req.ShortAddr,
		ExtAddr:      req.ExtAddr,
		FrameCounter: req.FrameCounter,
		Exempt:       req.Exempt,
	}
	e.debugLog("device added", "index", index, "ext", req.ExtAddr.String())
	return wire.StatusSuccess
}

// DeleteDevice removes the device with the extended address.
func (e *Engine) DeleteDevice(ext wire.ExtAddr) wire.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	for key, entry := range e.entries {
		if d, ok := entry.(mac.DeviceEntry); ok && d.ExtAddr == ext {
			delete(e.entries, key)
			return wire.StatusSuccess
		}
	}
	return wire.StatusInvalidParameter
}

// DeleteAllDevices empties the device table.
func (e *Engine) DeleteAllDevices() wire.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	for key := range e.entries {
		if key.attr == mac.SecAttrDeviceEntry {
			delete(e.entries, key)
		}
	}
	return wire.StatusSuccess
}

// DeviceCount returns the number of populated device table slots.
func (e *Engine) DeviceCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for key := range e.entries {
		if key.attr == mac.SecAttrDeviceEntry {
			n++
		}
	}
	return n
}

// ReadKeyFrameCounter returns the outgoing frame counter of a key.
func (e *Engine) ReadKeyFrameCounter(keyIndex uint16) (uint32, wire.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if keyIndex >= e.capacity(mac.SecAttrKeyEntry) {
		return 0, wire.StatusInvalidIndex
	}
	entry, ok := e.entries[entryKey{attr: mac.SecAttrKeyEntry, index1: keyIndex}]
	if !ok {
		return 0, wire.StatusUnavailableKey
	}
	return entry.(mac.KeyEntry).FrameCounter, wire.StatusSuccess
}

// WriteKey stores a key and its first lookup entry. A non-new write requires
// the key to exist.
func (e *Engine) WriteKey(req mac.WriteKeyRequest) wire.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	if req.KeyIndex >= e.capacity(mac.SecAttrKeyEntry) {
		return wire.StatusInvalidIndex
	}
	key := entryKey{attr: mac.SecAttrKeyEntry, index1: req.KeyIndex}
	if _, ok := e.entries[key]; !ok && !req.New {
		return wire.StatusUnavailableKey
	}
	e.entries[key] = mac.KeyEntry{KeyIndex: req.KeyIndex, Key: req.Key, FrameCounter: req.FrameCounter}
	e.entries[entryKey{attr: mac.SecAttrKeyIDLookupEntry, index1: req.KeyIndex}] = mac.KeyIDLookupEntry{
		KeyIndex:   req.KeyIndex,
		LookupData: req.LookupData,
		LookupSize: req.LookupSize,
	}
	return wire.StatusSuccess
}

// DeleteKey removes a key with its lookup, device and usage entries.
func (e *Engine) DeleteKey(keyIndex uint16) wire.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.entries[entryKey{attr: mac.SecAttrKeyEntry, index1: keyIndex}]; !ok {
		return wire.StatusUnavailableKey
	}
	for key := range e.entries {
		if key.index1 == keyIndex && key.attr != mac.SecAttrDeviceEntry && key.attr != mac.SecAttrSecurityLevelEntry {
			delete(e.entries, key)
		}
	}
	return wire.StatusSuccess
}
