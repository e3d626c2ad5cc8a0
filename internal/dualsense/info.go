package dualsense

import (
	"fmt"

	"github.com/dualsensectl/dualsensectl/internal/report"
)

// FirmwareInfo reads and parses the firmware-info feature report.
func (d *Device) FirmwareInfo() (*report.FirmwareInfo, error) {
	buf := make([]byte, report.FeatureReportSizeFirmwareInfo)
	buf[0] = report.FeatureReportIDFirmwareInfo
	n, err := d.dev.GetFeatureReport(buf)
	if err != nil {
		return nil, fmt.Errorf("read firmware info: %w", err)
	}
	return report.ParseFirmwareInfo(buf[:n])
}
