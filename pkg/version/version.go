// Package version describes the MT protocol release a bridge implements: the
// five-byte version record reported to hosts and the embedded command
// manifests for each release.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Current is the protocol release implemented by this library.
const Current = "2.1"

// RecordSize is the encoded size of a Record.
const RecordSize = 5

// ErrShortRecord is returned when decoding fewer than RecordSize bytes.
var ErrShortRecord = errors.New("version record too short")

// Record is the version record carried by SYS_VERSION and SYS_RESET_IND.
type Record struct {
	Transport uint8
	Product   uint8
	Major     uint8
	Minor     uint8
	Maint     uint8
}

// Default is the record a bridge reports unless configured otherwise.
var Default = Record{Transport: 2, Product: 1, Major: 1, Minor: 0, Maint: 0}

// Parse parses a "major.minor.maint" release string. Transport and product
// are left zero.
func Parse(s string) (Record, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Record{}, fmt.Errorf("invalid release %q: expected major.minor.maint", s)
	}

	var out [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil || p == "" {
			return Record{}, fmt.Errorf("invalid release %q: bad component %q", s, p)
		}
		out[i] = uint8(n)
	}

	return Record{Major: out[0], Minor: out[1], Maint: out[2]}, nil
}

// Release returns the release as "major.minor.maint".
func (r Record) Release() string {
	return fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Maint)
}

// String includes the transport and product bytes.
func (r Record) String() string {
	return fmt.Sprintf("transport=%d product=%d release=%s", r.Transport, r.Product, r.Release())
}

// Bytes returns the wire encoding.
func (r Record) Bytes() []byte {
	return []byte{r.Transport, r.Product, r.Major, r.Minor, r.Maint}
}

// DecodeRecord parses the first RecordSize bytes of b.
func DecodeRecord(b []byte) (Record, error) {
	if len(b) < RecordSize {
		return Record{}, fmt.Errorf("%w: %d bytes", ErrShortRecord, len(b))
	}
	return Record{Transport: b[0], Product: b[1], Major: b[2], Minor: b[3], Maint: b[4]}, nil
}

// Compatible reports whether a host built for other can talk to r: the
// transport revision and major release must match.
func (r Record) Compatible(other Record) bool {
	return r.Transport == other.Transport && r.Major == other.Major
}
