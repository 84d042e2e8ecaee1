// Package ddt implements the wire protocol of the DDT arcade cabinet I/O
// board: decoding 8-byte input reports into button and lever state, and
// maintaining the 33-byte LED output buffer.
package ddt

import (
	"log/slog"

	"github.com/arcadehw/ddtio/transport"
)

// Controller owns the decoded input state and the LED buffer for one
// connected board. It is driven by an external fixed-rate loop calling Poll;
// LED updates arrive through SetLeds between polls.
//
// Controller is not safe for concurrent use. Poll and SetLeds must be called
// from a single owning goroutine.
type Controller struct {
	pipe   transport.Pipe
	cal    Calibration
	logger *slog.Logger

	leds *LedBuffer

	option byte
	left   byte
	right  byte
	lever  int16
}

// New builds a Controller over an already-open pipe. Device discovery and
// handle lifecycle belong to the caller.
func New(pipe transport.Pipe, cal Calibration, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		pipe:   pipe,
		cal:    cal,
		logger: logger,
		leds:   NewLedBuffer(),
	}
}

// Poll performs one input transfer and refreshes the public state.
//
// The button flags are cleared up front and rebuilt from the report, so a
// failed poll leaves them zeroed. The lever position is only written on
// success and keeps its previous value across a dropped frame. After a
// successful decode the LED buffer is flushed unconditionally.
//
// Every failure is non-fatal: transport and signature errors are logged at
// debug level and reported as false. Retry cadence belongs to the caller.
func (c *Controller) Poll() bool {
	c.option, c.left, c.right = 0, 0, 0

	buf := make([]byte, InputReportLength)
	n, err := c.pipe.ReadPipe(InputEndpoint, buf)
	if err != nil {
		c.logger.Debug("input transfer failed", "error", err)
		return false
	}

	state, err := DecodeInputReport(buf[:n], c.cal)
	if err != nil {
		c.logger.Debug("input report rejected", "error", err)
		return false
	}

	c.option = state.Option
	c.left = state.Left
	c.right = state.Right
	c.lever = state.Lever

	// Service+Test held together is the on-cabinet calibration gesture;
	// surface the raw reading so the bounds can be read off the log.
	if state.Option == OptionService|OptionTest {
		c.logger.Debug("lever raw reading", "raw", state.RawLever)
	}

	if _, err := c.leds.Flush(c.pipe); err != nil {
		c.logger.Debug("led flush failed", "error", err)
	}
	return true
}

// InitLeds rewrites the LED buffer header and pushes the buffer out once.
// It reports whether the transfer succeeded.
func (c *Controller) InitLeds() bool {
	c.leds.writeHeader()
	if _, err := c.leds.Flush(c.pipe); err != nil {
		c.logger.Debug("led init failed", "error", err)
		return false
	}
	return true
}

// SetLeds stores colors for one board and immediately flushes the buffer.
// It reports whether the flush succeeded; a rejected payload (bad board
// index or short color array) also returns false.
func (c *Controller) SetLeds(board int, colors []byte) bool {
	if err := c.leds.Set(board, colors); err != nil {
		c.logger.Warn("led update rejected", "board", board, "error", err)
		return false
	}
	if _, err := c.leds.Flush(c.pipe); err != nil {
		c.logger.Debug("led flush failed", "error", err)
		return false
	}
	return true
}

// OptionButtons returns the option button bitset from the last successful
// poll (zero after a failed poll).
func (c *Controller) OptionButtons() byte { return c.option }

// LeftGameButtons returns the left-side button bitset from the last
// successful poll (zero after a failed poll).
func (c *Controller) LeftGameButtons() byte { return c.left }

// RightGameButtons returns the right-side button bitset from the last
// successful poll (zero after a failed poll).
func (c *Controller) RightGameButtons() byte { return c.right }

// LeverPosition returns the lever position from the last successful poll.
// Unlike the button flags it is retained across failed polls.
func (c *Controller) LeverPosition() int16 { return c.lever }
