package transport

import (
	"context"
	"fmt"

	"github.com/google/gousb"

	"github.com/tdryer/eh-fifty/pkg"
)

// Astro A50 gen 4 base station identification.
const (
	VendorID  = 0x9886
	ProductID = 0x002C

	// InterfaceNumber is the vendor-specific configuration interface.
	InterfaceNumber = 6

	// EndpointIn and EndpointOut are the bulk endpoint addresses used by
	// the configuration protocol.
	EndpointIn  = 0x85
	EndpointOut = 0x05
)

// usbPipe implements Pipe over a claimed gousb interface.
type usbPipe struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface
	in   *gousb.InEndpoint
	out  *gousb.OutEndpoint
}

// openPipe locates the device by vendor/product ID and claims the
// configuration interface. The kernel driver, if bound, is detached for the
// lifetime of the claim and restored on release.
func openPipe() (*usbPipe, error) {
	usbCtx := gousb.NewContext()

	dev, err := usbCtx.OpenDeviceWithVIDPID(VendorID, ProductID)
	if err != nil {
		usbCtx.Close()
		return nil, fmt.Errorf("open device: %w", err)
	}
	if dev == nil {
		usbCtx.Close()
		return nil, fmt.Errorf("%w: no USB device %04x:%04x",
			pkg.ErrDeviceNotFound, VendorID, ProductID)
	}

	p := &usbPipe{ctx: usbCtx, dev: dev}

	// Libusb detaches a bound kernel driver when the interface is claimed
	// and reattaches it on release.
	if err := dev.SetAutoDetach(true); err != nil {
		p.Close()
		return nil, fmt.Errorf("set auto detach: %w", err)
	}

	cfgNum, err := dev.ActiveConfigNum()
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("active config: %w", err)
	}
	p.cfg, err = dev.Config(cfgNum)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("claim config %d: %w", cfgNum, err)
	}
	p.intf, err = p.cfg.Interface(InterfaceNumber, 0)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("claim interface %d: %w", InterfaceNumber, err)
	}
	p.in, err = p.intf.InEndpoint(EndpointIn & 0x0F)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("open IN endpoint 0x%02x: %w", EndpointIn, err)
	}
	p.out, err = p.intf.OutEndpoint(EndpointOut & 0x0F)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("open OUT endpoint 0x%02x: %w", EndpointOut, err)
	}

	pkg.LogInfo(pkg.ComponentTransport, "device opened",
		"vendor", fmt.Sprintf("%04x", VendorID),
		"product", fmt.Sprintf("%04x", ProductID),
		"interface", InterfaceNumber,
	)
	return p, nil
}

func (p *usbPipe) Write(ctx context.Context, b []byte) (int, error) {
	return p.out.WriteContext(ctx, b)
}

func (p *usbPipe) Read(ctx context.Context, b []byte) (int, error) {
	return p.in.ReadContext(ctx, b)
}

func (p *usbPipe) Reset() error {
	return p.dev.Reset()
}

// Close releases the interface, configuration, device handle, and libusb
// context, in that order. Cleanup failures are logged and do not abort the
// remaining steps.
func (p *usbPipe) Close() error {
	if p.intf != nil {
		p.intf.Close()
		p.intf = nil
	}
	if p.cfg != nil {
		if err := p.cfg.Close(); err != nil {
			pkg.LogWarn(pkg.ComponentTransport, "release config failed", "error", err)
		}
		p.cfg = nil
	}
	if p.dev != nil {
		if err := p.dev.Close(); err != nil {
			pkg.LogWarn(pkg.ComponentTransport, "close device failed", "error", err)
		}
		p.dev = nil
	}
	if p.ctx != nil {
		if err := p.ctx.Close(); err != nil {
			pkg.LogWarn(pkg.ComponentTransport, "close USB context failed", "error", err)
		}
		p.ctx = nil
	}
	return nil
}
