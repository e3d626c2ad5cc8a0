package dualsense

import (
	"fmt"

	"github.com/dualsensectl/dualsensectl/internal/report"
)

// TriggerSelect identifies which trigger motors a command applies to.
type TriggerSelect int

const (
	TriggerLeft TriggerSelect = iota
	TriggerRight
	TriggerBoth
)

// ParseTriggerSelect maps the CLI keywords left, right and both.
func ParseTriggerSelect(s string) (TriggerSelect, error) {
	switch s {
	case "left":
		return TriggerLeft, nil
	case "right":
		return TriggerRight, nil
	case "both":
		return TriggerBoth, nil
	}
	return 0, argErrorf("trigger must be left, right or both, got %q", s)
}

// setTrigger writes one trigger effect report. The mode and parameters are
// mirrored into both trigger blocks regardless of the selection; the valid
// flags gate which side the device actually applies.
func (d *Device) setTrigger(sel TriggerSelect, mode byte, params [report.TriggerParamCount]byte) error {
	var flags byte
	switch sel {
	case TriggerLeft:
		flags = report.ValidFlag0LeftTriggerMotor
	case TriggerRight:
		flags = report.ValidFlag0RightTriggerMotor
	case TriggerBoth:
		flags = report.ValidFlag0LeftTriggerMotor | report.ValidFlag0RightTriggerMotor
	default:
		return argErrorf("unknown trigger selection %d", sel)
	}
	f := d.newOutputReport()
	c := f.Common()
	c.SetValidFlag0(flags)
	c.SetRightTrigger(mode, params)
	c.SetLeftTrigger(mode, params)
	return d.sendOutputReport(f)
}

// SetTriggerRaw writes a raw mode byte and up to nine literal parameter
// bytes, bypassing effect derivation.
func (d *Device) SetTriggerRaw(sel TriggerSelect, mode byte, params []byte) error {
	if len(params) > report.TriggerParamCount-1 {
		return argErrorf("at most %d trigger parameters, got %d", report.TriggerParamCount-1, len(params))
	}
	var p [report.TriggerParamCount]byte
	copy(p[:], params)
	return d.setTrigger(sel, mode, p)
}

// SetTriggerOff disables the trigger effect.
func (d *Device) SetTriggerOff(sel TriggerSelect) error {
	return d.setTrigger(sel, report.TriggerModeOff, [report.TriggerParamCount]byte{})
}

// SetTriggerFeedback sets a constant resistance from position (0-9) to the
// end of the trigger travel with the given strength (1-8).
func (d *Device) SetTriggerFeedback(sel TriggerSelect, position, strength uint8) error {
	if position > 9 {
		return argErrorf("feedback position %d out of range 0-9", position)
	}
	if strength < 1 || strength > 8 {
		return argErrorf("feedback strength %d out of range 1-8", strength)
	}
	var zones [report.ZoneCount]uint8
	for i := int(position); i < report.ZoneCount; i++ {
		zones[i] = strength
	}
	params, err := report.PackZones(zones)
	if err != nil {
		return argErrorf("%v", err)
	}
	return d.setTrigger(sel, report.TriggerModeFeedback, params)
}

// SetTriggerWeapon sets a resistance band between start (2-7) and stop
// (start+1 to 8) with the given strength (1-8).
func (d *Device) SetTriggerWeapon(sel TriggerSelect, start, stop, strength uint8) error {
	if start < 2 || start > 7 {
		return argErrorf("weapon start position %d out of range 2-7", start)
	}
	if stop <= start || stop > 8 {
		return argErrorf("weapon stop position %d out of range %d-8", stop, start+1)
	}
	if strength < 1 || strength > 8 {
		return argErrorf("weapon strength %d out of range 1-8", strength)
	}
	var params [report.TriggerParamCount]byte
	params[0], params[1] = report.ZoneMask(start, stop)
	params[2] = strength - 1
	return d.setTrigger(sel, report.TriggerModeWeapon, params)
}

// SetTriggerBow sets a bow-draw effect between start (1-8) and stop
// (start+1 to 8) with strength and snap force each 1-8.
func (d *Device) SetTriggerBow(sel TriggerSelect, start, stop, strength, snap uint8) error {
	if start < 1 || start > 8 {
		return argErrorf("bow start position %d out of range 1-8", start)
	}
	if stop <= start || stop > 8 {
		return argErrorf("bow stop position %d out of range %d-8", stop, start+1)
	}
	if strength < 1 || strength > 8 {
		return argErrorf("bow strength %d out of range 1-8", strength)
	}
	if snap < 1 || snap > 8 {
		return argErrorf("bow snap force %d out of range 1-8", snap)
	}
	var params [report.TriggerParamCount]byte
	params[0], params[1] = report.ZoneMask(start, stop)
	params[2] = (strength - 1) | (snap-1)<<3
	return d.setTrigger(sel, report.TriggerModeBow, params)
}

// SetTriggerGalloping sets a galloping pulse pattern between start (0-8)
// and stop (start+1 to 9), with the two hoof beats at firstFoot (0-6) and
// secondFoot (firstFoot+1 to 7) and a nonzero frequency.
func (d *Device) SetTriggerGalloping(sel TriggerSelect, start, stop, firstFoot, secondFoot, frequency uint8) error {
	if start > 8 {
		return argErrorf("galloping start position %d out of range 0-8", start)
	}
	if stop <= start || stop > 9 {
		return argErrorf("galloping stop position %d out of range %d-9", stop, start+1)
	}
	if firstFoot > 6 {
		return argErrorf("galloping first foot %d out of range 0-6", firstFoot)
	}
	if secondFoot <= firstFoot || secondFoot > 7 {
		return argErrorf("galloping second foot %d out of range %d-7", secondFoot, firstFoot+1)
	}
	if frequency == 0 {
		return argErrorf("galloping frequency must be nonzero")
	}
	var params [report.TriggerParamCount]byte
	params[0], params[1] = report.ZoneMask(start, stop)
	params[2] = secondFoot | firstFoot<<3
	params[3] = frequency
	return d.setTrigger(sel, report.TriggerModeGalloping, params)
}

// SetTriggerMachine sets an alternating machine vibration between start
// (1-8) and stop (start+1 to 9) with two strengths (0-7), a nonzero
// frequency and a period.
func (d *Device) SetTriggerMachine(sel TriggerSelect, start, stop, strengthA, strengthB, frequency, period uint8) error {
	if start < 1 || start > 8 {
		return argErrorf("machine start position %d out of range 1-8", start)
	}
	if stop <= start || stop > 9 {
		return argErrorf("machine stop position %d out of range %d-9", stop, start+1)
	}
	if strengthA > 7 || strengthB > 7 {
		return argErrorf("machine strengths %d,%d out of range 0-7", strengthA, strengthB)
	}
	if frequency == 0 {
		return argErrorf("machine frequency must be nonzero")
	}
	var params [report.TriggerParamCount]byte
	params[0], params[1] = report.ZoneMask(start, stop)
	params[2] = strengthA | strengthB<<3
	params[3] = frequency
	params[4] = period
	return d.setTrigger(sel, report.TriggerModeMachine, params)
}

// SetTriggerVibration vibrates the zones from position (0-9) to the end of
// the travel with the given amplitude (1-8) and a nonzero frequency.
func (d *Device) SetTriggerVibration(sel TriggerSelect, position, amplitude, frequency uint8) error {
	if position > 9 {
		return argErrorf("vibration position %d out of range 0-9", position)
	}
	if amplitude < 1 || amplitude > 8 {
		return argErrorf("vibration amplitude %d out of range 1-8", amplitude)
	}
	if frequency == 0 {
		return argErrorf("vibration frequency must be nonzero")
	}
	var zones [report.ZoneCount]uint8
	for i := int(position); i < report.ZoneCount; i++ {
		zones[i] = amplitude
	}
	params, err := report.PackZonesFrequency(zones, frequency)
	if err != nil {
		return argErrorf("%v", err)
	}
	return d.setTrigger(sel, report.TriggerModeVibration, params)
}

// SetTriggerFeedbackRaw packs ten literal zone strengths (0-8 each).
func (d *Device) SetTriggerFeedbackRaw(sel TriggerSelect, strengths [report.ZoneCount]uint8) error {
	params, err := report.PackZones(strengths)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return d.setTrigger(sel, report.TriggerModeFeedback, params)
}

// SetTriggerVibrationRaw packs ten literal zone strengths (0-8 each) plus a
// frequency byte.
func (d *Device) SetTriggerVibrationRaw(sel TriggerSelect, strengths [report.ZoneCount]uint8, frequency uint8) error {
	params, err := report.PackZonesFrequency(strengths, frequency)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return d.setTrigger(sel, report.TriggerModeVibration, params)
}
