// Package dualsense drives a Sony DualSense controller over USB or
// Bluetooth HID: one session per process run, one output report or one
// bounded read per command.
package dualsense

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dualsensectl/dualsensectl/internal/hid"
	"github.com/dualsensectl/dualsensectl/internal/report"
)

const (
	VendorSony           uint16 = 0x054C
	ProductDualSense     uint16 = 0x0CE6
	ProductDualSenseEdge uint16 = 0x0DF2
)

var productIDs = []uint16{ProductDualSense, ProductDualSenseEdge}

// readTimeout bounds every input report read.
const readTimeout = 1000 * time.Millisecond

// Device is one open controller session. It owns the HID handle and the
// rolling 4-bit output sequence counter used by Bluetooth framing.
type Device struct {
	dev       hid.Device
	transport report.Transport
	address   [6]byte // little-endian order
	outputSeq byte
}

// Open finds a controller and opens a session. serial optionally selects a
// specific controller by the serial/MAC printed by List; empty picks the
// first one found.
func Open(mgr hid.Manager, serial string) (*Device, error) {
	info, err := find(mgr, serial)
	if err != nil {
		return nil, err
	}
	dev, err := mgr.Open(info)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", info.Path, err)
	}
	d := &Device{dev: dev, transport: report.USB}
	// hidapi reports interface number -1 for Bluetooth HID devices.
	if info.InterfaceNumber < 0 {
		d.transport = report.Bluetooth
	}
	if err := d.readAddress(info.SerialNumber); err != nil {
		dev.Close()
		return nil, err
	}
	return d, nil
}

// List enumerates connected controllers.
func List(mgr hid.Manager) ([]hid.Info, error) {
	var out []hid.Info
	for _, pid := range productIDs {
		infos, err := mgr.Enumerate(VendorSony, pid)
		if err != nil {
			return nil, fmt.Errorf("enumerate: %w", err)
		}
		out = append(out, infos...)
	}
	return out, nil
}

func find(mgr hid.Manager, serial string) (hid.Info, error) {
	infos, err := List(mgr)
	if err != nil {
		return hid.Info{}, err
	}
	for _, info := range infos {
		if serial == "" || strings.EqualFold(info.SerialNumber, serial) {
			return info, nil
		}
	}
	return hid.Info{}, ErrNotFound
}

// readAddress derives the device address from the serial string, falling
// back to the pairing-info feature report when the serial carries no MAC
// (DualSense Edge).
func (d *Device) readAddress(serial string) error {
	if addr, ok := parseAddress(serial); ok {
		d.address = addr
		return nil
	}
	buf := make([]byte, report.FeatureReportSizePairingInfo)
	buf[0] = report.FeatureReportIDPairingInfo
	n, err := d.dev.GetFeatureReport(buf)
	if err != nil {
		return fmt.Errorf("read pairing info: %w", err)
	}
	info, err := report.ParsePairingInfo(buf[:n])
	if err != nil {
		return err
	}
	d.address = info.Address
	return nil
}

func parseAddress(s string) ([6]byte, bool) {
	var addr [6]byte
	parts := strings.Split(s, ":")
	if len(parts) != 6 {
		return addr, false
	}
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return addr, false
		}
		addr[5-i] = byte(v)
	}
	return addr, true
}

// Address returns the controller's Bluetooth address as AA:BB:CC:DD:EE:FF.
func (d *Device) Address() string {
	a := d.address
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", a[5], a[4], a[3], a[2], a[1], a[0])
}

func (d *Device) Transport() report.Transport { return d.transport }

func (d *Device) Close() error { return d.dev.Close() }

// newOutputReport builds a freshly framed output report and advances the
// rolling sequence counter for Bluetooth framing. The counter wraps mod 16
// and is never otherwise reset.
func (d *Device) newOutputReport() report.Frame {
	f := report.NewOutputReport(d.transport, d.outputSeq)
	if d.transport == report.Bluetooth {
		d.outputSeq = (d.outputSeq + 1) & 0x0F
	}
	return f
}

// sendOutputReport finalizes the frame (signing Bluetooth framing) and
// writes it to the device.
func (d *Device) sendOutputReport(f report.Frame) error {
	if _, err := d.dev.Write(f.Bytes()); err != nil {
		return fmt.Errorf("write output report: %w", err)
	}
	return nil
}

// readInputReport performs one bounded input report read.
func (d *Device) readInputReport() (*report.Input, error) {
	buf := make([]byte, report.InputReportSizeBT)
	n, err := d.dev.ReadTimeout(buf, readTimeout)
	if err != nil {
		return nil, fmt.Errorf("read input report: %w", err)
	}
	if n == 0 {
		return nil, ErrTimeout
	}
	return report.ParseInput(d.transport, buf[:n])
}
