package dualsense

import "github.com/dualsensectl/dualsensectl/internal/report"

// SetLightbarState switches the lightbar on or off without touching its
// color.
func (d *Device) SetLightbarState(on bool) error {
	f := d.newOutputReport()
	c := f.Common()
	c.SetValidFlag2(report.ValidFlag2LightbarSetup)
	if on {
		c.SetLightbarSetup(report.LightbarSetupOn)
	} else {
		c.SetLightbarSetup(report.LightbarSetupOut)
	}
	return d.sendOutputReport(f)
}

// SetLightbarColor sets the lightbar color, scaling each channel by
// brightness/255 with truncating integer division.
func (d *Device) SetLightbarColor(red, green, blue, brightness uint8) error {
	f := d.newOutputReport()
	c := f.Common()
	c.SetValidFlag1(report.ValidFlag1Lightbar)
	c.SetLightbarColor(
		uint8(int(brightness)*int(red)/255),
		uint8(int(brightness)*int(green)/255),
		uint8(int(brightness)*int(blue)/255),
	)
	return d.sendOutputReport(f)
}

// SetLEDBrightness sets the LED brightness level (0-2).
func (d *Device) SetLEDBrightness(level uint8) error {
	if level > 2 {
		return argErrorf("led brightness %d out of range 0-2", level)
	}
	f := d.newOutputReport()
	c := f.Common()
	c.SetValidFlag2(report.ValidFlag2LEDBrightness)
	c.SetLEDBrightness(level)
	return d.sendOutputReport(f)
}
