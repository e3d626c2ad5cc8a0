package report

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Firmware-info feature report offsets.
const (
	fwBuildDate     = 1 // 11 chars
	fwBuildTime     = 12
	fwType          = 20
	fwSwSeries      = 22
	fwHardwareInfo  = 24
	fwVersion       = 28
	fwDeviceInfo    = 32 // 12 bytes, opaque
	fwUpdateVersion = 44
	fwVersion1      = 48
	fwVersion2      = 52
	fwVersion3      = 56
	fwChecksum      = 60
)

// FirmwareInfo is a read-only parsed view of the firmware-info feature
// report (0x20).
type FirmwareInfo struct {
	BuildDate       string
	BuildTime       string
	FwType          uint16
	SwSeries        uint16
	HardwareInfo    uint32
	FirmwareVersion uint32
	UpdateVersion   uint16
	FwVersion1      uint32
	FwVersion2      uint32
	FwVersion3      uint32

	// Checksum is carried in the report but not validated here; the device
	// uses it on its own side.
	Checksum uint32
}

// ParseFirmwareInfo parses the fixed 64-byte firmware-info feature report.
func ParseFirmwareInfo(buf []byte) (*FirmwareInfo, error) {
	if len(buf) < FeatureReportSizeFirmwareInfo || buf[0] != FeatureReportIDFirmwareInfo {
		id := byte(0)
		if len(buf) > 0 {
			id = buf[0]
		}
		return nil, fmt.Errorf("%w: feature report id 0x%02x, %d bytes", ErrUnrecognizedReport, id, len(buf))
	}
	return &FirmwareInfo{
		BuildDate:       cString(buf[fwBuildDate:fwBuildTime]),
		BuildTime:       cString(buf[fwBuildTime:fwType]),
		FwType:          binary.LittleEndian.Uint16(buf[fwType:]),
		SwSeries:        binary.LittleEndian.Uint16(buf[fwSwSeries:]),
		HardwareInfo:    binary.LittleEndian.Uint32(buf[fwHardwareInfo:]),
		FirmwareVersion: binary.LittleEndian.Uint32(buf[fwVersion:]),
		UpdateVersion:   binary.LittleEndian.Uint16(buf[fwUpdateVersion:]),
		FwVersion1:      binary.LittleEndian.Uint32(buf[fwVersion1:]),
		FwVersion2:      binary.LittleEndian.Uint32(buf[fwVersion2:]),
		FwVersion3:      binary.LittleEndian.Uint32(buf[fwVersion3:]),
		Checksum:        binary.LittleEndian.Uint32(buf[fwChecksum:]),
	}, nil
}

// FormatVersion renders a firmware version word 0xAABBCCCC as AA.BB.CCCC.
func FormatVersion(v uint32) string {
	return fmt.Sprintf("%x.%x.%x", v>>24, (v>>16)&0xFF, v&0xFFFF)
}

// PairingInfo is a read-only parsed view of the pairing-info feature
// report (0x09).
type PairingInfo struct {
	Address         [6]byte // little-endian order
	BluetoothPaired bool
}

// ParsePairingInfo parses the fixed 20-byte pairing-info feature report.
func ParsePairingInfo(buf []byte) (*PairingInfo, error) {
	if len(buf) < FeatureReportSizePairingInfo || buf[0] != FeatureReportIDPairingInfo {
		id := byte(0)
		if len(buf) > 0 {
			id = buf[0]
		}
		return nil, fmt.Errorf("%w: feature report id 0x%02x, %d bytes", ErrUnrecognizedReport, id, len(buf))
	}
	info := &PairingInfo{BluetoothPaired: buf[16] != 0}
	copy(info.Address[:], buf[1:7])
	return info, nil
}

func cString(b []byte) string {
	return string(bytes.TrimRight(b, "\x00"))
}
