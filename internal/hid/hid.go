package hid

import "time"

// Info represents a HID device descriptor.
type Info struct {
	Path            string
	VendorID        uint16
	ProductID       uint16
	SerialNumber    string
	Product         string
	Manufacturer    string
	InterfaceNumber int
}

// Device represents an opened HID device capable of report I/O.
type Device interface {
	// Write sends an output report. p[0] carries the report ID.
	Write(p []byte) (int, error)
	// ReadTimeout reads an input report, waiting at most timeout. A return
	// of 0 bytes with a nil error means the timeout expired.
	ReadTimeout(p []byte, timeout time.Duration) (int, error)
	// GetFeatureReport reads a feature report. p[0] carries the report ID
	// on entry and the returned data starts with it.
	GetFeatureReport(p []byte) (int, error)
	Close() error
}

// Manager enumerates and opens HID devices.
type Manager interface {
	Enumerate(vendorID, productID uint16) ([]Info, error)
	Open(info Info) (Device, error)
}

// NewManager returns the backend selected at build time.
func NewManager() (Manager, error) {
	return newManager()
}
