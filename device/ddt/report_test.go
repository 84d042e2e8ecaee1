package ddt_test

import (
	"testing"

	"github.com/arcadehw/ddtio/device/ddt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReport() []byte {
	return []byte{0x44, 0x44, 0x54, 0x00, 0x00, 0x00, 0x00, 0x00}
}

func TestDecodeRejectsBadSignature(t *testing.T) {
	cal := ddt.DefaultCalibration()

	report := validReport()
	report[0], report[1], report[2] = 0x00, 0x00, 0x00
	_, err := ddt.DecodeInputReport(report, cal)
	assert.ErrorIs(t, err, ddt.ErrInvalidSignature)

	// One wrong byte is enough.
	report = validReport()
	report[2] = 0x55
	_, err = ddt.DecodeInputReport(report, cal)
	assert.ErrorIs(t, err, ddt.ErrInvalidSignature)
}

func TestDecodeRejectsShortReport(t *testing.T) {
	_, err := ddt.DecodeInputReport([]byte{0x44, 0x44, 0x54, 0x00}, ddt.DefaultCalibration())
	assert.Error(t, err)
}

func TestDecodeButtonBits(t *testing.T) {
	type testCase struct {
		name    string
		srcByte int
		srcBit  byte
		option  byte
		left    byte
		right   byte
	}

	cases := []testCase{
		{"left 1", 3, 0x20, 0, ddt.Button1, 0},
		{"left 2", 3, 0x10, 0, ddt.Button2, 0},
		{"left 3", 3, 0x08, 0, ddt.Button3, 0},
		{"right 1", 3, 0x04, 0, 0, ddt.Button1},
		{"right 2", 3, 0x02, 0, 0, ddt.Button2},
		{"right 3", 3, 0x01, 0, 0, ddt.Button3},
		{"left side", 4, 0x80, 0, ddt.ButtonSide, 0},
		{"right side", 4, 0x40, 0, 0, ddt.ButtonSide},
		{"left aux", 4, 0x20, 0, ddt.ButtonAux, 0},
		{"right aux", 4, 0x10, 0, 0, ddt.ButtonAux},
		{"service", 4, 0x08, ddt.OptionService, 0, 0},
		{"test", 4, 0x04, ddt.OptionTest, 0, 0},
	}

	cal := ddt.DefaultCalibration()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := validReport()
			report[tc.srcByte] |= tc.srcBit

			state, err := ddt.DecodeInputReport(report, cal)
			require.NoError(t, err)
			assert.Equal(t, tc.option, state.Option)
			assert.Equal(t, tc.left, state.Left)
			assert.Equal(t, tc.right, state.Right)
		})
	}
}

func TestDecodeAllButtons(t *testing.T) {
	report := validReport()
	report[3] = 0x3F
	report[4] = 0xFC

	state, err := ddt.DecodeInputReport(report, ddt.DefaultCalibration())
	require.NoError(t, err)
	assert.Equal(t, byte(ddt.OptionService|ddt.OptionTest), state.Option)
	assert.Equal(t, byte(0x1F), state.Left)
	assert.Equal(t, byte(0x1F), state.Right)
}

func TestDecodeLever(t *testing.T) {
	cal := ddt.DefaultCalibration()

	// Raw value is little-endian at bytes 5..6: 0x58, 0x01 -> 0x0158 = 344.
	report := []byte{0x44, 0x44, 0x54, 0x20, 0x00, 0x58, 0x01, 0x00}
	state, err := ddt.DecodeInputReport(report, cal)
	require.NoError(t, err)

	assert.Equal(t, byte(ddt.Button1), state.Left)
	assert.Equal(t, byte(0), state.Right)
	assert.Equal(t, byte(0), state.Option)
	assert.Equal(t, uint16(344), state.RawLever)
	assert.Equal(t, int16(-786), state.Lever)
}

func TestDecodeLeverUnclampedRawIsKept(t *testing.T) {
	report := validReport()
	report[5], report[6] = 0xFF, 0xFF

	state, err := ddt.DecodeInputReport(report, ddt.DefaultCalibration())
	require.NoError(t, err)
	assert.Equal(t, uint16(0xFFFF), state.RawLever)
	assert.Equal(t, int16(32767), state.Lever)
}
