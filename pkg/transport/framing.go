package transport

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/lowpan-mt/mt-go/pkg/log"
	"github.com/lowpan-mt/mt-go/pkg/mt"
)

// Framing errors.
var (
	// ErrMessageTooLarge indicates a declared data length above mt.MaxDataSize.
	ErrMessageTooLarge = errors.New("message too large")

	// ErrMessageEmpty indicates an empty write.
	ErrMessageEmpty = errors.New("message is empty")

	// ErrFrameTruncated indicates the stream ended inside a frame.
	ErrFrameTruncated = errors.New("frame truncated")

	// ErrMalformedFrame indicates bytes whose header disagrees with their length.
	ErrMalformedFrame = errors.New("malformed frame")
)

// FrameWriter writes encoded MT frames to an underlying writer.
type FrameWriter struct {
	w  io.Writer
	mu sync.Mutex

	// Logging support (optional)
	logger log.Logger
	connID string
}

// NewFrameWriter creates a new frame writer.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{w: w}
}

// SetLogger configures logging for this writer.
// Pass nil to disable logging.
func (fw *FrameWriter) SetLogger(logger log.Logger, connID string) {
	fw.logger = logger
	fw.connID = connID
}

// WriteFrame writes one encoded frame. The bytes must form exactly one
// frame; anything else would desynchronize the peer.
// Thread-safe: can be called from multiple goroutines.
func (fw *FrameWriter) WriteFrame(data []byte) error {
	if len(data) == 0 {
		return ErrMessageEmpty
	}
	if len(data) < mt.HeaderSize || mt.FrameSize(data) != len(data) {
		return fmt.Errorf("%w: %d bytes", ErrMalformedFrame, len(data))
	}
	if int(data[0]) > mt.MaxDataSize {
		return fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, data[0], mt.MaxDataSize)
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, err := fw.w.Write(data); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	if fw.logger != nil {
		fw.logger.Log(makeFrameEvent(fw.connID, data, log.DirectionOut))
	}
	return nil
}

// WriteMessage encodes f and writes it.
func (fw *FrameWriter) WriteMessage(f mt.Frame) error {
	buf, err := mt.Encode(f)
	if err != nil {
		return err
	}
	return fw.WriteFrame(buf)
}

func makeFrameEvent(connID string, data []byte, direction log.Direction) log.Event {
	return log.Event{
		Timestamp:    time.Now(),
		ConnectionID: connID,
		Direction:    direction,
		Layer:        log.LayerTransport,
		Category:     log.CategoryMessage,
		Frame: &log.FrameEvent{
			Size: len(data),
			Data: data,
		},
	}
}

// FrameReader reads encoded MT frames from an underlying reader.
type FrameReader struct {
	r   io.Reader
	hdr [2]byte

	// Logging support (optional)
	logger log.Logger
	connID string
}

// NewFrameReader creates a new frame reader.
func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{r: r}
}

// SetLogger configures logging for this reader.
// Pass nil to disable logging.
func (fr *FrameReader) SetLogger(logger log.Logger, connID string) {
	fr.logger = logger
	fr.connID = connID
}

// ReadFrame reads one frame and returns its encoded bytes, header included.
// io.EOF is returned only on a clean boundary between frames.
func (fr *FrameReader) ReadFrame() ([]byte, error) {
	if _, err := io.ReadFull(fr.r, fr.hdr[:]); err != nil {
		if err == io.EOF {
			return nil, err
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrFrameTruncated
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if int(fr.hdr[0]) > mt.MaxDataSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, fr.hdr[0], mt.MaxDataSize)
	}

	buf := make([]byte, mt.FrameSize(fr.hdr[:]))
	copy(buf, fr.hdr[:])
	if _, err := io.ReadFull(fr.r, buf[len(fr.hdr):]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || err == io.EOF {
			return nil, ErrFrameTruncated
		}
		return nil, fmt.Errorf("failed to read frame body: %w", err)
	}

	if fr.logger != nil {
		fr.logger.Log(makeFrameEvent(fr.connID, buf, log.DirectionIn))
	}
	return buf, nil
}

// ReadMessage reads and decodes one frame.
func (fr *FrameReader) ReadMessage() (mt.Frame, error) {
	buf, err := fr.ReadFrame()
	if err != nil {
		return mt.Frame{}, err
	}
	return mt.Decode(buf)
}

// Framer combines frame reading and writing.
type Framer struct {
	*FrameReader
	*FrameWriter
}

// NewFramer creates a new framer for bidirectional communication.
func NewFramer(rw io.ReadWriter) *Framer {
	return &Framer{
		FrameReader: NewFrameReader(rw),
		FrameWriter: NewFrameWriter(rw),
	}
}

// SetLogger configures logging for both reader and writer.
// Pass nil to disable logging.
func (f *Framer) SetLogger(logger log.Logger, connID string) {
	f.FrameReader.SetLogger(logger, connID)
	f.FrameWriter.SetLogger(logger, connID)
}
