package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcadehw/ddtio/device/ddt"
	"github.com/arcadehw/ddtio/transport/libusb"
)

// DeviceFlags identify which USB device to open. IDs are hex strings so the
// flags read like lsusb output.
type DeviceFlags struct {
	Vendor  string `help:"USB vendor id (hex)" default:"16d0" env:"DDTIO_DEVICE_VENDOR"`
	Product string `help:"USB product id (hex)" default:"0dd7" env:"DDTIO_DEVICE_PRODUCT"`
}

// Open claims the configured device and returns it as a transport pipe.
func (f DeviceFlags) Open() (*libusb.Device, error) {
	vendor, err := parseUsbID(f.Vendor)
	if err != nil {
		return nil, fmt.Errorf("vendor id: %w", err)
	}
	product, err := parseUsbID(f.Product)
	if err != nil {
		return nil, fmt.Errorf("product id: %w", err)
	}
	return libusb.Open(vendor, product)
}

func parseUsbID(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	id, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("%q is not a 16-bit hex id", s)
	}
	return uint16(id), nil
}

// LeverFlags are the two calibration entries of the [lever] config section.
type LeverFlags struct {
	Min int `help:"Raw lever reading at the minimum stop" default:"100" env:"DDTIO_LEVER_MIN"`
	Max int `help:"Raw lever reading at the maximum stop" default:"600" env:"DDTIO_LEVER_MAX"`
}

// Calibration validates the bounds and builds the decoder calibration.
// Invalid bounds are fatal at startup; nothing else in the tool is.
func (f LeverFlags) Calibration() (ddt.Calibration, error) {
	return ddt.NewCalibration(f.Min, f.Max)
}
