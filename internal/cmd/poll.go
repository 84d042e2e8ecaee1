package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arcadehw/ddtio/device/ddt"
	"github.com/arcadehw/ddtio/internal/log"
)

// Poll runs the fixed-rate input loop: one input transfer per tick, button
// edges mirrored to the log. This layer owns the retry cadence; the
// controller itself never retries a failed transfer.
type Poll struct {
	Device DeviceFlags `embed:"" prefix:"device."`
	Lever  LeverFlags  `embed:"" prefix:"lever."`

	Rate time.Duration `help:"Poll interval" default:"1ms" env:"DDTIO_POLL_RATE"`
}

// Run is called by Kong when the poll command is executed.
func (p *Poll) Run(logger *slog.Logger) error {
	cal, err := p.Lever.Calibration()
	if err != nil {
		return err
	}

	dev, err := p.Device.Open()
	if err != nil {
		return err
	}
	defer dev.Close()

	ctrl := ddt.New(dev, cal, logger)
	if !ctrl.InitLeds() {
		logger.Warn("initial led transfer failed, continuing")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("polling started",
		"vendor", p.Device.Vendor, "product", p.Device.Product,
		"rate", p.Rate, "lever_min", cal.Min, "lever_max", cal.Max)

	var prevOption, prevLeft, prevRight byte
	var prevLever int16

	ticker := time.NewTicker(p.Rate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("polling stopped")
			return nil
		case <-ticker.C:
		}

		if !ctrl.Poll() {
			continue
		}

		option, left, right := ctrl.OptionButtons(), ctrl.LeftGameButtons(), ctrl.RightGameButtons()
		if option != prevOption || left != prevLeft || right != prevRight {
			logger.Debug("buttons",
				"option", option, "left", left, "right", right)
			prevOption, prevLeft, prevRight = option, left, right
		}
		if lever := ctrl.LeverPosition(); lever != prevLever {
			logger.Log(ctx, log.LevelTrace, "lever", "position", lever)
			prevLever = lever
		}
	}
}
