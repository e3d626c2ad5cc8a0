//go:build !purego

package hid

import (
	"time"

	hidapi "github.com/sstallion/go-hid"
)

// Default backend, a thin wrapper around the hidapi binding.

type hidapiManager struct{}

func newManager() (Manager, error) {
	if err := hidapi.Init(); err != nil {
		return nil, err
	}
	return &hidapiManager{}, nil
}

func (m *hidapiManager) Enumerate(vendorID, productID uint16) ([]Info, error) {
	var out []Info
	err := hidapi.Enumerate(vendorID, productID, func(info *hidapi.DeviceInfo) error {
		out = append(out, Info{
			Path:            info.Path,
			VendorID:        info.VendorID,
			ProductID:       info.ProductID,
			SerialNumber:    info.SerialNbr,
			Product:         info.ProductStr,
			Manufacturer:    info.MfrStr,
			InterfaceNumber: info.InterfaceNbr,
		})
		return nil
	})
	if err != nil && len(out) == 0 {
		// hidapi reports an empty enumeration as an error; callers treat an
		// empty list as "not found".
		return nil, nil
	}
	return out, nil
}

func (m *hidapiManager) Open(info Info) (Device, error) {
	d, err := hidapi.OpenPath(info.Path)
	if err != nil {
		return nil, err
	}
	return &hidapiDevice{d}, nil
}

type hidapiDevice struct{ d *hidapi.Device }

func (d *hidapiDevice) Write(p []byte) (int, error) {
	return d.d.Write(p)
}

func (d *hidapiDevice) ReadTimeout(p []byte, timeout time.Duration) (int, error) {
	return d.d.ReadWithTimeout(p, timeout)
}

func (d *hidapiDevice) GetFeatureReport(p []byte) (int, error) {
	return d.d.GetFeatureReport(p)
}

func (d *hidapiDevice) Close() error { return d.d.Close() }
