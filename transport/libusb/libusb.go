// Package libusb provides the gousb-backed transport.Pipe used to reach a
// physical I/O board. It opens one device by vendor/product id, claims its
// default interface and resolves the first bulk IN/OUT endpoint pair.
package libusb

import (
	"fmt"

	"github.com/google/gousb"
)

// Device is an open USB device exposing its bulk endpoints as a
// transport.Pipe.
type Device struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	intf *gousb.Interface
	done func()

	in  *gousb.InEndpoint
	out *gousb.OutEndpoint
}

// Open claims the first device matching vendor/product. The kernel driver is
// detached from the interface while the device is held.
func Open(vendor, product uint16) (*Device, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(vendor), gousb.ID(product))
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("open %04x:%04x: %w", vendor, product, err)
	}
	if dev == nil {
		ctx.Close()
		return nil, fmt.Errorf("no device %04x:%04x found", vendor, product)
	}

	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("auto-detach %04x:%04x: %w", vendor, product, err)
	}

	intf, done, err := dev.DefaultInterface()
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("claim interface on %04x:%04x: %w", vendor, product, err)
	}

	d := &Device{ctx: ctx, dev: dev, intf: intf, done: done}
	if err := d.resolveEndpoints(); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

func (d *Device) resolveEndpoints() error {
	for _, ep := range d.intf.Setting.Endpoints {
		if ep.TransferType != gousb.TransferTypeBulk {
			continue
		}
		switch ep.Direction {
		case gousb.EndpointDirectionIn:
			if d.in == nil {
				in, err := d.intf.InEndpoint(ep.Number)
				if err != nil {
					return fmt.Errorf("in endpoint %d: %w", ep.Number, err)
				}
				d.in = in
			}
		case gousb.EndpointDirectionOut:
			if d.out == nil {
				out, err := d.intf.OutEndpoint(ep.Number)
				if err != nil {
					return fmt.Errorf("out endpoint %d: %w", ep.Number, err)
				}
				d.out = out
			}
		}
	}
	if d.in == nil || d.out == nil {
		return fmt.Errorf("device lacks a bulk in/out endpoint pair")
	}
	return nil
}

// ReadPipe performs one bulk transfer from the IN endpoint. The requested
// endpoint address must match the resolved one; asking for anything else is
// a programming error, not a device fault.
func (d *Device) ReadPipe(endpoint byte, buf []byte) (int, error) {
	if endpoint != endpointAddress(d.in.Desc) {
		return 0, fmt.Errorf("read on endpoint %#02x, device uses %#02x", endpoint, endpointAddress(d.in.Desc))
	}
	return d.in.Read(buf)
}

// WritePipe performs one bulk transfer to the OUT endpoint.
func (d *Device) WritePipe(endpoint byte, data []byte) (int, error) {
	if endpoint != endpointAddress(d.out.Desc) {
		return 0, fmt.Errorf("write on endpoint %#02x, device uses %#02x", endpoint, endpointAddress(d.out.Desc))
	}
	return d.out.Write(data)
}

// Close releases the interface, device and libusb context.
func (d *Device) Close() error {
	if d.done != nil {
		d.done()
		d.done = nil
	}
	var err error
	if d.dev != nil {
		err = d.dev.Close()
		d.dev = nil
	}
	if d.ctx != nil {
		if cerr := d.ctx.Close(); err == nil {
			err = cerr
		}
		d.ctx = nil
	}
	return err
}

func endpointAddress(desc gousb.EndpointDesc) byte {
	return byte(desc.Address)
}
