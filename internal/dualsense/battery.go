package dualsense

import "github.com/dualsensectl/dualsensectl/internal/report"

// Battery reads one input report and decodes the battery level and
// charging status.
func (d *Device) Battery() (report.BatteryStatus, error) {
	in, err := d.readInputReport()
	if err != nil {
		return report.BatteryStatus{}, err
	}
	return in.Battery(), nil
}
