package hid

import (
	"errors"
	"time"
)

// MockDevice records written reports and serves queued input and feature
// reports. Used by command tests.
type MockDevice struct {
	Writes   [][]byte
	Reads    [][]byte
	Features map[byte][]byte
	WriteErr error
	Closed   bool
}

func NewMockDevice() *MockDevice {
	return &MockDevice{Features: make(map[byte][]byte)}
}

func (m *MockDevice) Write(p []byte) (int, error) {
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	m.Writes = append(m.Writes, append([]byte(nil), p...))
	return len(p), nil
}

func (m *MockDevice) ReadTimeout(p []byte, _ time.Duration) (int, error) {
	if len(m.Reads) == 0 {
		return 0, nil // timeout
	}
	r := m.Reads[0]
	m.Reads = m.Reads[1:]
	return copy(p, r), nil
}

func (m *MockDevice) GetFeatureReport(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, errors.New("empty feature buffer")
	}
	r, ok := m.Features[p[0]]
	if !ok {
		return 0, errors.New("no such feature report")
	}
	return copy(p, r), nil
}

func (m *MockDevice) Close() error {
	m.Closed = true
	return nil
}

// MockManager serves a fixed device list and hands out a single MockDevice.
type MockManager struct {
	Infos   []Info
	Device  *MockDevice
	OpenErr error
}

func (m *MockManager) Enumerate(vendorID, productID uint16) ([]Info, error) {
	var out []Info
	for _, info := range m.Infos {
		if info.VendorID == vendorID && (productID == 0 || info.ProductID == productID) {
			out = append(out, info)
		}
	}
	return out, nil
}

func (m *MockManager) Open(Info) (Device, error) {
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	return m.Device, nil
}
