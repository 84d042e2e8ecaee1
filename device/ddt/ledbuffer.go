package ddt

import (
	"errors"
	"fmt"

	"github.com/arcadehw/ddtio/transport"
)

var (
	// ErrInvalidBoard is returned for board indices the buffer layout
	// cannot address.
	ErrInvalidBoard = errors.New("invalid led board")

	// ErrInsufficientColors is returned when a color payload is shorter
	// than the board's full LED count.
	ErrInsufficientColors = errors.New("insufficient led colors")
)

// LedBuffer is the persistent 33-byte output buffer for the two LED boards.
// It survives across flushes; every flush re-sends the whole buffer no
// matter which bytes changed.
//
// Layout:
//
//	0..2    header "DL" 0x01, written at construction, never overwritten
//	3..20   board 1: 6 RGB triples (game buttons)
//	21..23  board 0, LED 0 (left side button)
//	24..26  reserved
//	27..29  board 0, LED 60 (right side button)
//	30..32  reserved
//
// Board 0 nominally spans 61 LEDs; only its first and last are addressable
// here. The real board expects exactly this buffer, so the gap is kept
// rather than compacted.
type LedBuffer struct {
	buf [LedBufferLength]byte
}

// NewLedBuffer returns a zeroed buffer with the header written.
func NewLedBuffer() *LedBuffer {
	b := &LedBuffer{}
	b.writeHeader()
	return b
}

func (b *LedBuffer) writeHeader() {
	copy(b.buf[0:3], ledHeader[:])
}

// Set stores colors for one board. colors is a flattened sequence of RGB
// triples covering the board's full LED count: 6 triples for board 1, 61 for
// board 0. Board 0 payloads must be supplied in full even though only
// triples 0 and 60 are consumed; the rest are accepted and ignored.
//
// Set only mutates the buffer; call Flush to push it to the device.
func (b *LedBuffer) Set(board int, colors []byte) error {
	switch board {
	case Board1:
		if len(colors) < Board1LedCount*3 {
			return fmt.Errorf("%w: board 1 needs %d bytes, got %d", ErrInsufficientColors, Board1LedCount*3, len(colors))
		}
		copy(b.buf[board1Offset:board1Offset+Board1LedCount*3], colors)
		return nil
	case Board0:
		if len(colors) < Board0LedCount*3 {
			return fmt.Errorf("%w: board 0 needs %d bytes, got %d", ErrInsufficientColors, Board0LedCount*3, len(colors))
		}
		copy(b.buf[board0LeftOffset:board0LeftOffset+3], colors[0:3])
		copy(b.buf[board0RightOffset:board0RightOffset+3], colors[(Board0LedCount-1)*3:Board0LedCount*3])
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidBoard, board)
	}
}

// Flush writes the full buffer to the output endpoint as a single transfer.
func (b *LedBuffer) Flush(p transport.Pipe) (int, error) {
	n, err := p.WritePipe(OutputEndpoint, b.buf[:])
	if err != nil {
		return n, fmt.Errorf("led flush: %w", err)
	}
	return n, nil
}

// Bytes returns a copy of the current buffer contents.
func (b *LedBuffer) Bytes() []byte {
	out := make([]byte, LedBufferLength)
	copy(out, b.buf[:])
	return out
}
