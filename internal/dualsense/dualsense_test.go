package dualsense

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dualsensectl/dualsensectl/internal/hid"
	"github.com/dualsensectl/dualsensectl/internal/report"
)

func mockManager(iface int, serial string) (*hid.MockManager, *hid.MockDevice) {
	dev := hid.NewMockDevice()
	mgr := &hid.MockManager{
		Infos: []hid.Info{{
			Path:            "/dev/hidraw0",
			VendorID:        VendorSony,
			ProductID:       ProductDualSense,
			SerialNumber:    serial,
			Product:         "Wireless Controller",
			InterfaceNumber: iface,
		}},
		Device: dev,
	}
	return mgr, dev
}

func openMock(t *testing.T, iface int, serial string) (*Device, *hid.MockDevice) {
	t.Helper()
	mgr, dev := mockManager(iface, serial)
	d, err := Open(mgr, "")
	require.NoError(t, err)
	return d, dev
}

func TestOpenUSB(t *testing.T) {
	d, _ := openMock(t, 3, "a0:ab:51:00:11:22")
	assert.Equal(t, report.USB, d.Transport())
	assert.Equal(t, "A0:AB:51:00:11:22", d.Address())
}

func TestOpenBluetooth(t *testing.T) {
	d, _ := openMock(t, -1, "A0:AB:51:00:11:22")
	assert.Equal(t, report.Bluetooth, d.Transport())
	assert.Equal(t, "A0:AB:51:00:11:22", d.Address())
}

func TestOpenPairingFallback(t *testing.T) {
	// Serial without a MAC forces the pairing-info feature report.
	mgr, dev := mockManager(3, "")
	pairing := make([]byte, report.FeatureReportSizePairingInfo)
	pairing[0] = report.FeatureReportIDPairingInfo
	copy(pairing[1:7], []byte{0x22, 0x11, 0x00, 0x51, 0xAB, 0xA0})
	pairing[16] = 1
	dev.Features[report.FeatureReportIDPairingInfo] = pairing

	d, err := Open(mgr, "")
	require.NoError(t, err)
	assert.Equal(t, "A0:AB:51:00:11:22", d.Address())
}

func TestOpenPairingFallbackFailureClosesDevice(t *testing.T) {
	mgr, dev := mockManager(3, "not-a-mac")
	_, err := Open(mgr, "")
	require.Error(t, err)
	assert.True(t, dev.Closed)
}

func TestOpenSerialSelection(t *testing.T) {
	mgr, _ := mockManager(3, "a0:ab:51:00:11:22")

	_, err := Open(mgr, "A0:AB:51:00:11:22")
	assert.NoError(t, err, "serial match is case-insensitive")

	_, err = Open(mgr, "00:00:00:00:00:00")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenNoController(t *testing.T) {
	_, err := Open(&hid.MockManager{}, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBluetoothSequenceCycles(t *testing.T) {
	d, dev := openMock(t, -1, "A0:AB:51:00:11:22")
	for i := 0; i < 18; i++ {
		require.NoError(t, d.SetLightbarState(true))
	}
	require.Len(t, dev.Writes, 18)
	for i, w := range dev.Writes {
		assert.Equal(t, byte(i%16), w[1]>>4, "write %d", i)
	}
}

func TestBluetoothFramesSigned(t *testing.T) {
	d, dev := openMock(t, -1, "A0:AB:51:00:11:22")
	require.NoError(t, d.SetLightbarColor(255, 0, 128, 255))
	require.Len(t, dev.Writes, 1)
	w := dev.Writes[0]
	require.Len(t, w, report.OutputReportSizeBT)
	n := len(w) - 4
	assert.Equal(t, report.SignOutput(w[:n]), binary.LittleEndian.Uint32(w[n:]))
}

func TestUSBFrameShape(t *testing.T) {
	d, dev := openMock(t, 3, "a0:ab:51:00:11:22")
	require.NoError(t, d.SetLightbarState(true))
	require.Len(t, dev.Writes, 1)
	w := dev.Writes[0]
	assert.Len(t, w, report.OutputReportSizeUSB)
	assert.Equal(t, report.OutputReportIDUSB, w[0])
}

func TestBattery(t *testing.T) {
	d, dev := openMock(t, 3, "a0:ab:51:00:11:22")
	in := make([]byte, report.InputReportSizeUSB)
	in[0] = report.InputReportIDUSB
	in[1+52] = 0x15 // capacity 5, charging
	dev.Reads = append(dev.Reads, in)

	b, err := d.Battery()
	require.NoError(t, err)
	assert.Equal(t, uint8(55), b.Percent)
	assert.Equal(t, "charging", b.Status)
}

func TestBatteryTimeout(t *testing.T) {
	d, _ := openMock(t, 3, "a0:ab:51:00:11:22")
	_, err := d.Battery()
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestBatteryUnrecognized(t *testing.T) {
	d, dev := openMock(t, 3, "a0:ab:51:00:11:22")
	dev.Reads = append(dev.Reads, []byte{0x77, 0x00, 0x00})
	_, err := d.Battery()
	assert.ErrorIs(t, err, report.ErrUnrecognizedReport)
}

func TestFirmwareInfo(t *testing.T) {
	d, dev := openMock(t, 3, "a0:ab:51:00:11:22")
	fw := make([]byte, report.FeatureReportSizeFirmwareInfo)
	fw[0] = report.FeatureReportIDFirmwareInfo
	copy(fw[1:], "Jun 16 2023")
	copy(fw[12:], "19:39:42")
	binary.LittleEndian.PutUint32(fw[28:], 0x01040014)
	dev.Features[report.FeatureReportIDFirmwareInfo] = fw

	info, err := d.FirmwareInfo()
	require.NoError(t, err)
	assert.Equal(t, "Jun 16 2023", info.BuildDate)
	assert.Equal(t, "19:39:42", info.BuildTime)
	assert.Equal(t, "1.4.14", report.FormatVersion(info.FirmwareVersion))
}

func TestFirmwareInfoUnavailable(t *testing.T) {
	d, _ := openMock(t, 3, "a0:ab:51:00:11:22")
	_, err := d.FirmwareInfo()
	assert.Error(t, err)
}
