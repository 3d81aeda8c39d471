package log

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/lowpan-mt/mt-go/pkg/mt"
	"github.com/lowpan-mt/mt-go/pkg/wire"
)

// Filter selects events from a capture. Nil and empty fields match anything.
//
// The first group applies to every event. The MT group narrows to message
// events: once any of Type, Subsystem, Command or Status is set, events
// without a decoded message are dropped. StackID also matches fragment
// events, which carry the stack id of their extended header.
type Filter struct {
	ConnectionID string
	Direction    *Direction
	Layer        *Layer
	Category     *Category

	// TimeStart is inclusive, TimeEnd exclusive.
	TimeStart *time.Time
	TimeEnd   *time.Time

	Type      *mt.Type
	Subsystem *mt.Subsystem
	Command   *uint8
	Status    *wire.Status
	StackID   *uint8
}

func (f *Filter) messageOnly() bool {
	return f.Type != nil || f.Subsystem != nil || f.Command != nil || f.Status != nil
}

func (f *Filter) matches(event Event) bool {
	switch {
	case f.ConnectionID != "" && event.ConnectionID != f.ConnectionID,
		f.Direction != nil && event.Direction != *f.Direction,
		f.Layer != nil && event.Layer != *f.Layer,
		f.Category != nil && event.Category != *f.Category,
		f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart),
		f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd):
		return false
	}

	if f.StackID != nil && !matchesStack(event, *f.StackID) {
		return false
	}
	if !f.messageOnly() {
		return true
	}
	m := event.Message
	if m == nil {
		return false
	}
	switch {
	case f.Type != nil && m.Type != *f.Type,
		f.Subsystem != nil && m.Subsystem != *f.Subsystem,
		f.Command != nil && m.Command != *f.Command,
		f.Status != nil && (m.Status == nil || *m.Status != *f.Status):
		return false
	}
	return true
}

func matchesStack(event Event, id uint8) bool {
	if m := event.Message; m != nil {
		return m.Extended && m.StackID == id
	}
	if fr := event.Fragment; fr != nil {
		return fr.StackID == id
	}
	return false
}

// Reader streams events from a capture file.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
	skipped int
}

// NewReader opens path and yields every event.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens path and yields only events matching filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{file: f, decoder: NewDecoder(f), filter: filter}, nil
}

// Next returns the next matching event, or io.EOF at the end of the file.
// A record cut short by a crash surfaces as a decode error.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		err := r.decoder.Decode(&event)
		if errors.Is(err, io.EOF) {
			return Event{}, io.EOF
		}
		if err != nil {
			return Event{}, err
		}
		if r.filter.matches(event) {
			return event, nil
		}
		r.skipped++
	}
}

// Skipped returns how many events the filter has rejected so far.
func (r *Reader) Skipped() int {
	return r.skipped
}

// Close closes the file.
func (r *Reader) Close() error {
	return r.file.Close()
}
