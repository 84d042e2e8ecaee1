package ddt

import (
	"fmt"
	"math"
)

// Raw lever bounds shipped with the stock board. Individual cabinets drift,
// so both are configurable.
const (
	DefaultLeverMin = 100
	DefaultLeverMax = 600
)

// Calibration maps raw lever readings onto the signed position range. It is
// built once at startup and never mutated afterwards; the decoder receives it
// by value on every call.
type Calibration struct {
	Min int
	Max int

	absoluteCenter float64
	rangeCenter    float64
}

// NewCalibration builds a Calibration from the raw lever bounds.
func NewCalibration(min, max int) (Calibration, error) {
	if max <= min {
		return Calibration{}, fmt.Errorf("lever calibration: max (%d) must be greater than min (%d)", max, min)
	}
	return Calibration{
		Min:            min,
		Max:            max,
		absoluteCenter: float64(max+min) / 2,
		rangeCenter:    float64(max-min) / 2,
	}, nil
}

// DefaultCalibration returns the calibration for a stock board.
func DefaultCalibration() Calibration {
	c, _ := NewCalibration(DefaultLeverMin, DefaultLeverMax)
	return c
}

// Position converts a raw lever reading into a signed position in
// [-LeverRange, LeverRange]. Readings outside the calibrated bounds clamp to
// the nearest bound.
func (c Calibration) Position(raw uint16) int16 {
	v := int(raw)
	if v < c.Min {
		v = c.Min
	}
	if v > c.Max {
		v = c.Max
	}
	norm := (float64(v) - c.absoluteCenter) / c.rangeCenter
	return int16(math.Round(norm * LeverRange))
}
