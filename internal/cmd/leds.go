package cmd

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arcadehw/ddtio/device/ddt"
)

// Leds pushes a one-shot color update to one LED board.
//
// Board 1 takes six colors (the game buttons, left to right); board 0 takes
// two (left side, right side). A single color is replicated across the
// board.
type Leds struct {
	Device DeviceFlags `embed:"" prefix:"device."`

	Board  int      `help:"Target board: 1 = game buttons, 0 = side buttons" default:"1"`
	Colors []string `arg:"" name:"color" help:"RRGGBB hex colors"`
}

// Run is called by Kong when the leds command is executed.
func (l *Leds) Run(logger *slog.Logger) error {
	payload, err := l.payload()
	if err != nil {
		return err
	}

	dev, err := l.Device.Open()
	if err != nil {
		return err
	}
	defer dev.Close()

	ctrl := ddt.New(dev, ddt.DefaultCalibration(), logger)
	if !ctrl.InitLeds() {
		return fmt.Errorf("led init transfer failed")
	}
	if !ctrl.SetLeds(l.Board, payload) {
		return fmt.Errorf("led update failed")
	}
	logger.Info("leds updated", "board", l.Board, "colors", len(l.Colors))
	return nil
}

func (l *Leds) payload() ([]byte, error) {
	colors, err := parseColors(l.Colors)
	if err != nil {
		return nil, err
	}

	switch l.Board {
	case ddt.Board1:
		if len(colors) == 1 {
			six := make([]ddt.Color, ddt.Board1LedCount)
			for i := range six {
				six[i] = colors[0]
			}
			colors = six
		}
		if len(colors) != ddt.Board1LedCount {
			return nil, fmt.Errorf("board 1 takes 1 or %d colors, got %d", ddt.Board1LedCount, len(colors))
		}
		return ddt.FlattenColors(colors), nil
	case ddt.Board0:
		switch len(colors) {
		case 1:
			return ddt.Board0Frame(colors[0], colors[0]), nil
		case 2:
			return ddt.Board0Frame(colors[0], colors[1]), nil
		default:
			return nil, fmt.Errorf("board 0 takes 1 or 2 colors, got %d", len(colors))
		}
	default:
		return nil, fmt.Errorf("%w: %d", ddt.ErrInvalidBoard, l.Board)
	}
}

func parseColors(args []string) ([]ddt.Color, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one color required")
	}
	colors := make([]ddt.Color, 0, len(args))
	for _, arg := range args {
		c, err := parseColor(arg)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

func parseColor(s string) (ddt.Color, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil || len(raw) != 3 {
		return ddt.Color{}, fmt.Errorf("%q is not an RRGGBB color", s)
	}
	return ddt.Color{R: raw[0], G: raw[1], B: raw[2]}, nil
}
