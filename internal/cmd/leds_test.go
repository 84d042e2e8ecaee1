package cmd

import (
	"testing"

	"github.com/arcadehw/ddtio/device/ddt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := parseColor("ff8000")
	require.NoError(t, err)
	assert.Equal(t, ddt.Color{R: 0xFF, G: 0x80, B: 0x00}, c)

	c, err = parseColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, ddt.Color{R: 0x10, G: 0x20, B: 0x30}, c)

	_, err = parseColor("red")
	assert.Error(t, err)
	_, err = parseColor("ffff")
	assert.Error(t, err)
}

func TestLedsPayloadBoard1(t *testing.T) {
	l := &Leds{Board: ddt.Board1, Colors: []string{"ff0000"}}
	payload, err := l.payload()
	require.NoError(t, err)
	require.Len(t, payload, ddt.Board1LedCount*3)
	for i := 0; i < ddt.Board1LedCount; i++ {
		assert.Equal(t, []byte{0xFF, 0x00, 0x00}, payload[i*3:i*3+3])
	}

	l = &Leds{Board: ddt.Board1, Colors: []string{"ff0000", "00ff00"}}
	_, err = l.payload()
	assert.Error(t, err)
}

func TestLedsPayloadBoard0(t *testing.T) {
	l := &Leds{Board: ddt.Board0, Colors: []string{"0a141e", "28323c"}}
	payload, err := l.payload()
	require.NoError(t, err)
	require.Len(t, payload, ddt.Board0LedCount*3)
	assert.Equal(t, []byte{10, 20, 30}, payload[0:3])
	assert.Equal(t, []byte{40, 50, 60}, payload[180:183])

	l = &Leds{Board: ddt.Board0, Colors: []string{"0a141e", "28323c", "000000"}}
	_, err = l.payload()
	assert.Error(t, err)
}

func TestLedsPayloadUnknownBoard(t *testing.T) {
	l := &Leds{Board: 3, Colors: []string{"ffffff"}}
	_, err := l.payload()
	assert.ErrorIs(t, err, ddt.ErrInvalidBoard)
}

func TestParseUsbID(t *testing.T) {
	id, err := parseUsbID("16d0")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x16D0), id)

	id, err = parseUsbID("0x0DD7")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0DD7), id)

	_, err = parseUsbID("10000")
	assert.Error(t, err)
	_, err = parseUsbID("nope")
	assert.Error(t, err)
}
