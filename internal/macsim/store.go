package macsim

import (
	"github.com/lowpan-mt/mt-go/pkg/payload"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// attrStore holds the values of one attribute space. Which attributes exist
// and how wide they are comes from the payload descriptor tables.
type attrStore[K comparable] struct {
	lookup   func(K) (payload.Descriptor, bool)
	scalars  map[K]uint32
	arrays   map[K][]byte
	defaults map[K]uint32
}

func newAttrStore[K comparable](lookup func(K) (payload.Descriptor, bool), defaults map[K]uint32) *attrStore[K] {
	s := &attrStore[K]{lookup: lookup, defaults: defaults}
	s.reset()
	return s
}

func (s *attrStore[K]) reset() {
	s.scalars = make(map[K]uint32, len(s.defaults))
	for k, v := range s.defaults {
		s.scalars[k] = v
	}
	s.arrays = make(map[K][]byte)
}

func (s *attrStore[K]) get(attr K) (uint32, wire.Status) {
	d, ok := s.lookup(attr)
	if !ok || d.Width == payload.WidthArray {
		return 0, wire.StatusUnsupportedAttribute
	}
	return s.scalars[attr], wire.StatusSuccess
}

func (s *attrStore[K]) set(attr K, v uint32) wire.Status {
	d, ok := s.lookup(attr)
	if !ok || d.Width == payload.WidthArray {
		return wire.StatusUnsupportedAttribute
	}
	if v > maxScalar(d) {
		return wire.StatusInvalidParameter
	}
	s.scalars[attr] = v
	return wire.StatusSuccess
}

func (s *attrStore[K]) getArray(attr K, dst []byte) wire.Status {
	d, ok := s.lookup(attr)
	if !ok || d.Width != payload.WidthArray {
		return wire.StatusUnsupportedAttribute
	}
	if len(dst) > d.Size {
		return wire.StatusInvalidParameter
	}
	clear(dst)
	copy(dst, s.arrays[attr])
	return wire.StatusSuccess
}

func (s *attrStore[K]) setArray(attr K, v []byte) wire.Status {
	d, ok := s.lookup(attr)
	if !ok || d.Width != payload.WidthArray {
		return wire.StatusUnsupportedAttribute
	}
	if len(v) > d.Size || (!d.Variable && len(v) != d.Size) {
		return wire.StatusInvalidParameter
	}
	s.arrays[attr] = append([]byte(nil), v...)
	return wire.StatusSuccess
}

func maxScalar(d payload.Descriptor) uint32 {
	switch d.Width {
	case payload.WidthBool:
		return 1
	case payload.WidthUint8:
		return 0xFF
	case payload.WidthUint16, payload.WidthIndex:
		return 0xFFFF
	default:
		return 0xFFFFFFFF
	}
}
