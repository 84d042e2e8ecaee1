package ddt_test

import (
	"testing"

	"github.com/arcadehw/ddtio/device/ddt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenColors(t *testing.T) {
	flat := ddt.FlattenColors([]ddt.Color{
		{R: 1, G: 2, B: 3},
		{R: 4, G: 5, B: 6},
	})
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, flat)
}

func TestBoard0Frame(t *testing.T) {
	frame := ddt.Board0Frame(ddt.Color{R: 10, G: 20, B: 30}, ddt.Color{R: 40, G: 50, B: 60})
	require.Len(t, frame, ddt.Board0LedCount*3)

	assert.Equal(t, []byte{10, 20, 30}, frame[0:3])
	assert.Equal(t, []byte{40, 50, 60}, frame[180:183])
	for i := 3; i < 180; i++ {
		assert.Zero(t, frame[i], "byte %d", i)
	}

	// A full frame must satisfy the board-0 contract.
	assert.NoError(t, ddt.NewLedBuffer().Set(ddt.Board0, frame))
}
