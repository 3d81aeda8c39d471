package persistence

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fxamacker/cbor/v2"

	"github.com/lowpan-mt/mt-go/pkg/nv"
)

const (
	opPut    uint8 = 1
	opDelete uint8 = 2
)

// record is one log entry.
type record struct {
	Op       uint8  `cbor:"1,keyasint"`
	SystemID uint8  `cbor:"2,keyasint"`
	ItemID   uint16 `cbor:"3,keyasint"`
	SubID    uint16 `cbor:"4,keyasint"`
	Data     []byte `cbor:"5,keyasint,omitempty"`
}

func (r record) id() nv.ItemID {
	return nv.ItemID{SystemID: r.SystemID, ItemID: r.ItemID, SubID: r.SubID}
}

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("persistence: cbor encoder: %v", err))
	}
}

// FileStorage is an nv driver persisted to a CBOR record log.
type FileStorage struct {
	mu   sync.Mutex
	path string
	file *os.File
	mem  *nv.MemoryStorage

	// size is the log size; live maps items to the size of their latest
	// record.
	size int64
	live map[nv.ItemID]int
}

// OpenFileStorage opens or creates the log at path and replays it.
func OpenFileStorage(path string) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	s := &FileStorage{
		path: path,
		mem:  nv.NewMemoryStorage(),
		live: make(map[nv.ItemID]int),
	}
	if err := s.replay(); err != nil {
		return nil, err
	}
	if s.file != nil {
		return s, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	s.file = f
	return s, nil
}

func (s *FileStorage) replay() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	items := make(map[nv.ItemID][]byte)
	dec := cbor.NewDecoder(bytes.NewReader(data))
	var offset int
	for {
		var rec record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A torn final record is dropped; the log is truncated on the
			// next compaction.
			break
		}
		n := dec.NumBytesRead() - offset
		offset = dec.NumBytesRead()

		switch rec.Op {
		case opPut:
			items[rec.id()] = rec.Data
			s.live[rec.id()] = n
		case opDelete:
			delete(items, rec.id())
			delete(s.live, rec.id())
		}
	}
	s.size = int64(offset)
	s.mem.Load(items)

	if offset != len(data) {
		return s.rewrite()
	}
	return nil
}

// Close closes the log file.
func (s *FileStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// Stale returns the number of log bytes held by superseded records.
func (s *FileStorage) Stale() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stale()
}

func (s *FileStorage) stale() int64 {
	var live int64
	for _, n := range s.live {
		live += int64(n)
	}
	return s.size - live
}

func (s *FileStorage) append(rec record) error {
	data, err := encMode.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: encode record: %v", nv.ErrFailure, err)
	}
	if s.file == nil {
		return fmt.Errorf("%w: storage closed", nv.ErrFailure)
	}
	if _, err := s.file.Write(data); err != nil {
		return fmt.Errorf("%w: %v", nv.ErrFailure, err)
	}
	s.size += int64(len(data))
	if rec.Op == opPut {
		s.live[rec.id()] = len(data)
	} else {
		delete(s.live, rec.id())
	}
	return nil
}

func (s *FileStorage) putItem(id nv.ItemID) error {
	data, ok := s.mem.Item(id)
	if !ok {
		return fmt.Errorf("%w: %s", nv.ErrNotFound, id)
	}
	return s.append(record{Op: opPut, SystemID: id.SystemID, ItemID: id.ItemID, SubID: id.SubID, Data: data})
}

// ReadItem implements nv.Storage.
func (s *FileStorage) ReadItem(id nv.ItemID, offset uint16, dst []byte) error {
	return s.mem.ReadItem(id, offset, dst)
}

// WriteItem implements nv.Storage.
func (s *FileStorage) WriteItem(id nv.ItemID, offset uint16, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mem.WriteItem(id, offset, data); err != nil {
		return err
	}
	return s.putItem(id)
}

// CreateItem implements nv.Creator.
func (s *FileStorage) CreateItem(id nv.ItemID, length uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.mem.Item(id); ok {
		return s.mem.CreateItem(id, length)
	}
	if err := s.mem.CreateItem(id, length); err != nil {
		return err
	}
	return s.putItem(id)
}

// DeleteItem implements nv.Deleter.
func (s *FileStorage) DeleteItem(id nv.ItemID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mem.DeleteItem(id); err != nil {
		return err
	}
	return s.append(record{Op: opDelete, SystemID: id.SystemID, ItemID: id.ItemID, SubID: id.SubID})
}

// GetItemLength implements nv.Lengther.
func (s *FileStorage) GetItemLength(id nv.ItemID) (uint32, error) {
	return s.mem.GetItemLength(id)
}

// UpdateItem implements nv.Updater.
func (s *FileStorage) UpdateItem(id nv.ItemID, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mem.UpdateItem(id, data); err != nil {
		return err
	}
	return s.putItem(id)
}

// Compact implements nv.Compactor. The log is rewritten when at least
// threshold bytes are stale; a zero threshold always rewrites.
func (s *FileStorage) Compact(threshold uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stale() < int64(threshold) {
		return nil
	}
	return s.rewrite()
}

// rewrite replaces the log with one record per live item.
func (s *FileStorage) rewrite() error {
	var buf bytes.Buffer
	live := make(map[nv.ItemID]int)
	for id, data := range s.mem.Items() {
		enc, err := encMode.Marshal(record{Op: opPut, SystemID: id.SystemID, ItemID: id.ItemID, SubID: id.SubID, Data: data})
		if err != nil {
			return fmt.Errorf("%w: encode record: %v", nv.ErrFailure, err)
		}
		buf.Write(enc)
		live[id] = len(enc)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %v", nv.ErrFailure, err)
	}
	if s.file != nil {
		s.file.Close()
		s.file = nil
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: %v", nv.ErrFailure, err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", nv.ErrFailure, err)
	}
	s.file = f
	s.size = int64(buf.Len())
	s.live = live
	return nil
}
