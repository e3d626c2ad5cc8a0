//go:build purego

package hid

import (
	"time"

	usbhid "rafaelmartins.com/p/usbhid"
)

// Pure-Go backend. The library exposes neither read timeouts nor interface
// numbers, so reads block until a report arrives and every device looks
// wired (Bluetooth detection needs the hidapi backend).

type usbManager struct{}

func newManager() (Manager, error) { return &usbManager{}, nil }

func (m *usbManager) Enumerate(vendorID, productID uint16) ([]Info, error) {
	devs, err := usbhid.Enumerate(func(d *usbhid.Device) bool {
		return d.VendorId() == vendorID && (productID == 0 || d.ProductId() == productID)
	})
	if err != nil {
		return nil, err
	}
	out := make([]Info, 0, len(devs))
	for _, d := range devs {
		out = append(out, Info{
			Path:         d.Path(),
			VendorID:     d.VendorId(),
			ProductID:    d.ProductId(),
			SerialNumber: d.SerialNumber(),
			Product:      d.Product(),
			Manufacturer: d.Manufacturer(),
		})
	}
	return out, nil
}

func (m *usbManager) Open(info Info) (Device, error) {
	d, err := usbhid.Get(func(dev *usbhid.Device) bool {
		return dev.Path() == info.Path
	}, true, false)
	if err != nil {
		return nil, err
	}
	return &usbDevice{d}, nil
}

type usbDevice struct{ d *usbhid.Device }

func (d *usbDevice) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := d.d.SetOutputReport(p[0], p[1:]); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (d *usbDevice) ReadTimeout(p []byte, _ time.Duration) (int, error) {
	rid, buf, err := d.d.GetInputReport()
	if err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = rid
	n := copy(p[1:], buf)
	return n + 1, nil
}

func (d *usbDevice) GetFeatureReport(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	buf, err := d.d.GetFeatureReport(p[0])
	if err != nil {
		return 0, err
	}
	n := copy(p[1:], buf)
	return n + 1, nil
}

func (d *usbDevice) Close() error { return d.d.Close() }
