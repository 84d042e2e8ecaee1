package ddt

// Default USB identity of the DDT I/O board. Override via --device.vendor /
// --device.product if the cabinet carries a re-flashed board.
const (
	DefaultVendorID  = 0x16D0
	DefaultProductID = 0x0DD7
)

// Bulk endpoints used by the board. One IN endpoint for input reports, one
// OUT endpoint for the LED buffer.
const (
	InputEndpoint  = 0x81
	OutputEndpoint = 0x02
)

const (
	// InputReportLength is the fixed size of one input report.
	InputReportLength = 8

	// LedBufferLength is the fixed size of the LED output buffer.
	LedBufferLength = 33
)

// inputSignature prefixes every valid input report ("DDT"). The board uses it
// as a presence marker, so validation matches on content, not length.
var inputSignature = [3]byte{0x44, 0x44, 0x54}

// ledHeader prefixes the LED output buffer ("DL" + protocol revision 1).
var ledHeader = [3]byte{0x44, 0x4C, 0x01}

// Logical LED boards.
//
// Board 1 drives the six game button LEDs. Board 0 nominally drives a strip
// of 61 LEDs, but the output buffer only carries its first and last triple
// (the left and right side button LEDs); everything in between is accepted
// and dropped. See LedBuffer.Set.
const (
	Board0 = 0
	Board1 = 1

	Board0LedCount = 61
	Board1LedCount = 6
)

// LED buffer layout. Offsets 24..26 and 30..32 are reserved and never
// written; the real board expects them present in every transfer.
const (
	board1Offset      = 3  // 6 RGB triples, bytes 3..20
	board0LeftOffset  = 21 // left side button, bytes 21..23
	board0RightOffset = 27 // right side button, bytes 27..29
)

// Option button group (bits in OptionButtons).
const (
	OptionService = 0x01
	OptionTest    = 0x02
)

// Game button groups (bits in LeftGameButtons / RightGameButtons). Bits 0..2
// are the three main buttons of each side, bit 3 the side button (the one
// with the board-0 LED), bit 4 the auxiliary button.
const (
	Button1    = 0x01
	Button2    = 0x02
	Button3    = 0x04
	ButtonSide = 0x08
	ButtonAux  = 0x10
)

// LeverRange is the magnitude of a fully deflected lever position.
const LeverRange = 32767
