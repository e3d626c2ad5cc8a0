package report

import (
	"encoding/binary"
	"errors"
	"testing"
)

func firmwareReport() []byte {
	buf := make([]byte, FeatureReportSizeFirmwareInfo)
	buf[0] = FeatureReportIDFirmwareInfo
	copy(buf[fwBuildDate:], "Jun 16 2023")
	copy(buf[fwBuildTime:], "19:39:42")
	binary.LittleEndian.PutUint16(buf[fwType:], 0x0004)
	binary.LittleEndian.PutUint16(buf[fwSwSeries:], 0x0132)
	binary.LittleEndian.PutUint32(buf[fwHardwareInfo:], 0x00000B00)
	binary.LittleEndian.PutUint32(buf[fwVersion:], 0x01040014)
	binary.LittleEndian.PutUint16(buf[fwUpdateVersion:], 0x0330)
	binary.LittleEndian.PutUint32(buf[fwVersion1:], 0x00030028)
	binary.LittleEndian.PutUint32(buf[fwVersion2:], 0x00040018)
	binary.LittleEndian.PutUint32(buf[fwVersion3:], 0x00000001)
	binary.LittleEndian.PutUint32(buf[fwChecksum:], 0xDEADBEEF)
	return buf
}

func TestParseFirmwareInfo(t *testing.T) {
	info, err := ParseFirmwareInfo(firmwareReport())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if info.BuildDate != "Jun 16 2023" || info.BuildTime != "19:39:42" {
		t.Fatalf("build stamp: %q %q", info.BuildDate, info.BuildTime)
	}
	if info.FwType != 0x0004 || info.SwSeries != 0x0132 {
		t.Fatalf("type/series: 0x%04x 0x%04x", info.FwType, info.SwSeries)
	}
	if info.HardwareInfo != 0x00000B00 {
		t.Fatalf("hardware info: 0x%08x", info.HardwareInfo)
	}
	if info.FirmwareVersion != 0x01040014 || info.UpdateVersion != 0x0330 {
		t.Fatalf("versions: 0x%08x 0x%04x", info.FirmwareVersion, info.UpdateVersion)
	}
	if info.Checksum != 0xDEADBEEF {
		t.Fatalf("checksum: 0x%08x", info.Checksum)
	}
}

func TestParseFirmwareInfoRejects(t *testing.T) {
	short := firmwareReport()[:32]
	if _, err := ParseFirmwareInfo(short); !errors.Is(err, ErrUnrecognizedReport) {
		t.Fatalf("short report: %v", err)
	}
	wrongID := firmwareReport()
	wrongID[0] = 0x05
	if _, err := ParseFirmwareInfo(wrongID); !errors.Is(err, ErrUnrecognizedReport) {
		t.Fatalf("wrong id: %v", err)
	}
}

func TestFormatVersion(t *testing.T) {
	cases := []struct {
		v    uint32
		want string
	}{
		{0x01040014, "1.4.14"},
		{0x00000000, "0.0.0"},
		{0xFF102345, "ff.10.2345"},
	}
	for _, tc := range cases {
		if got := FormatVersion(tc.v); got != tc.want {
			t.Fatalf("FormatVersion(0x%08x) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestParsePairingInfo(t *testing.T) {
	buf := make([]byte, FeatureReportSizePairingInfo)
	buf[0] = FeatureReportIDPairingInfo
	copy(buf[1:7], []byte{0xFF, 0xEE, 0xDD, 0xCC, 0xBB, 0xAA})
	buf[16] = 0x01
	info, err := ParsePairingInfo(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if info.Address != [6]byte{0xFF, 0xEE, 0xDD, 0xCC, 0xBB, 0xAA} {
		t.Fatalf("address: %x", info.Address)
	}
	if !info.BluetoothPaired {
		t.Fatalf("expected paired")
	}

	buf[16] = 0
	info, err = ParsePairingInfo(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if info.BluetoothPaired {
		t.Fatalf("expected unpaired")
	}
}

func TestParsePairingInfoRejects(t *testing.T) {
	if _, err := ParsePairingInfo([]byte{0x09, 0x00}); !errors.Is(err, ErrUnrecognizedReport) {
		t.Fatalf("short report: %v", err)
	}
}
