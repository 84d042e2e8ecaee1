package cmd

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMapFromPollCommand(t *testing.T) {
	root := buildMapFromStruct(reflect.TypeOf(Poll{}))

	device, ok := root["device"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "16d0", device["vendor"])
	assert.Equal(t, "0dd7", device["product"])

	lever, ok := root["lever"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int64(100), lever["min"])
	assert.Equal(t, int64(600), lever["max"])

	assert.Equal(t, "1ms", root["rate"])
}

func TestBuildMapSkipsPositionalArgs(t *testing.T) {
	root := buildMapFromStruct(reflect.TypeOf(Leds{}))

	assert.NotContains(t, root, "colors")
	assert.Contains(t, root, "board")
}

func TestConfigInitWritesToml(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "poll.toml")
	c := &ConfigInit{Command: "poll", Format: "toml", Output: dest}
	require.NoError(t, c.Run())

	tree, err := toml.LoadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, int64(100), tree.Get("lever.min"))
	assert.Equal(t, int64(600), tree.Get("lever.max"))
	assert.Equal(t, "16d0", tree.Get("device.vendor"))
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "poll.toml")
	require.NoError(t, os.WriteFile(dest, []byte("# existing"), 0o644))

	c := &ConfigInit{Command: "poll", Format: "toml", Output: dest}
	assert.Error(t, c.Run())

	c.Force = true
	assert.NoError(t, c.Run())
}
