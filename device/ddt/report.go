package ddt

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidSignature is returned when an input report does not carry the
// "DDT" marker. The board embeds it in every report as a presence check, so
// a mismatch means the endpoint produced something that is not an input
// report, not that the device is gone.
var ErrInvalidSignature = errors.New("input report signature mismatch")

// InputState is the decoded form of one input report.
//
// Wire format (device -> host): fixed 8 bytes.
//
//	0..2  signature "DDT"
//	3..4  button bitfields (see inputBitMap)
//	5..6  raw lever value, little-endian
//	7     unused
type InputState struct {
	// Option, Left and Right are bitsets of up to 5 buttons each, packed
	// into bits 0..4. See the Option* and Button* constants.
	Option byte
	Left   byte
	Right  byte

	// Lever is the calibrated lever position in [-LeverRange, LeverRange].
	Lever int16

	// RawLever is the unclamped 16-bit reading, kept for calibration
	// diagnostics.
	RawLever uint16
}

// buttonGroup selects which InputState flag byte a decoded bit lands in.
type buttonGroup int

const (
	groupOption buttonGroup = iota
	groupLeft
	groupRight
)

// inputBitMap is the fixed wiring of raw report bits to logical buttons.
// The raw layout interleaves the two sides; the decoded layout groups them.
var inputBitMap = []struct {
	srcByte int
	srcBit  byte
	group   buttonGroup
	out     byte
}{
	{3, 0x20, groupLeft, Button1},
	{3, 0x10, groupLeft, Button2},
	{3, 0x08, groupLeft, Button3},
	{3, 0x04, groupRight, Button1},
	{3, 0x02, groupRight, Button2},
	{3, 0x01, groupRight, Button3},
	{4, 0x80, groupLeft, ButtonSide},
	{4, 0x40, groupRight, ButtonSide},
	{4, 0x20, groupLeft, ButtonAux},
	{4, 0x10, groupRight, ButtonAux},
	{4, 0x08, groupOption, OptionService},
	{4, 0x04, groupOption, OptionTest},
}

// DecodeInputReport decodes one raw input report into an InputState using
// the given lever calibration.
func DecodeInputReport(data []byte, cal Calibration) (InputState, error) {
	if len(data) < InputReportLength {
		return InputState{}, fmt.Errorf("input report: %w (%d bytes)", io.ErrUnexpectedEOF, len(data))
	}
	if data[0] != inputSignature[0] || data[1] != inputSignature[1] || data[2] != inputSignature[2] {
		return InputState{}, fmt.Errorf("%w: % X", ErrInvalidSignature, data[0:3])
	}

	var s InputState
	for _, m := range inputBitMap {
		if data[m.srcByte]&m.srcBit == 0 {
			continue
		}
		switch m.group {
		case groupOption:
			s.Option |= m.out
		case groupLeft:
			s.Left |= m.out
		case groupRight:
			s.Right |= m.out
		}
	}

	s.RawLever = binary.LittleEndian.Uint16(data[5:7])
	s.Lever = cal.Position(s.RawLever)
	return s, nil
}
