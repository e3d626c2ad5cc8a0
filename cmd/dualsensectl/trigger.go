package main

import (
	"github.com/dualsensectl/dualsensectl/internal/dualsense"
	"github.com/dualsensectl/dualsensectl/internal/report"
)

// TriggerCmd dispatches the adaptive trigger effect subcommands. The effect
// name picks the parameter layout, so params stay free-form strings here and
// are decoded per effect.
type TriggerCmd struct {
	Trigger string   `arg:"" help:"left, right or both."`
	Mode    string   `arg:"" help:"Effect: off, feedback, weapon, bow, galloping, machine, vibration, feedback-raw, vibration-raw or a raw mode byte."`
	Params  []string `arg:"" optional:"" help:"Effect parameters."`
}

func (c *TriggerCmd) Run(cli *CLI) error {
	sel, err := dualsense.ParseTriggerSelect(c.Trigger)
	if err != nil {
		return err
	}
	d, err := openSession(cli)
	if err != nil {
		return err
	}
	defer d.Close()

	switch c.Mode {
	case "off":
		if err := c.wantParams(0); err != nil {
			return err
		}
		return d.SetTriggerOff(sel)
	case "feedback":
		p, err := c.uint8Params("position", "strength")
		if err != nil {
			return err
		}
		return d.SetTriggerFeedback(sel, p[0], p[1])
	case "weapon":
		p, err := c.uint8Params("start", "stop", "strength")
		if err != nil {
			return err
		}
		return d.SetTriggerWeapon(sel, p[0], p[1], p[2])
	case "bow":
		p, err := c.uint8Params("start", "stop", "strength", "snapforce")
		if err != nil {
			return err
		}
		return d.SetTriggerBow(sel, p[0], p[1], p[2], p[3])
	case "galloping":
		p, err := c.uint8Params("start", "stop", "first-foot", "second-foot", "frequency")
		if err != nil {
			return err
		}
		return d.SetTriggerGalloping(sel, p[0], p[1], p[2], p[3], p[4])
	case "machine":
		p, err := c.uint8Params("start", "stop", "strength-a", "strength-b", "frequency", "period")
		if err != nil {
			return err
		}
		return d.SetTriggerMachine(sel, p[0], p[1], p[2], p[3], p[4], p[5])
	case "vibration":
		p, err := c.uint8Params("position", "amplitude", "frequency")
		if err != nil {
			return err
		}
		return d.SetTriggerVibration(sel, p[0], p[1], p[2])
	case "feedback-raw":
		zones, err := c.zoneParams()
		if err != nil {
			return err
		}
		return d.SetTriggerFeedbackRaw(sel, zones)
	case "vibration-raw":
		if err := c.wantParams(report.ZoneCount + 1); err != nil {
			return err
		}
		zones, err := c.zoneParamsN(report.ZoneCount)
		if err != nil {
			return err
		}
		freq, err := parseUint8("frequency", c.Params[report.ZoneCount])
		if err != nil {
			return err
		}
		return d.SetTriggerVibrationRaw(sel, zones, freq)
	}

	// Anything else is a raw mode byte followed by literal parameter bytes.
	mode, err := parseUint8("mode", c.Mode)
	if err != nil {
		return badArgs("unknown trigger effect %q", c.Mode)
	}
	params := make([]byte, 0, len(c.Params))
	for _, s := range c.Params {
		v, err := parseUint8("parameter", s)
		if err != nil {
			return err
		}
		params = append(params, v)
	}
	return d.SetTriggerRaw(sel, mode, params)
}

func (c *TriggerCmd) wantParams(n int) error {
	if len(c.Params) != n {
		return badArgs("%s takes %d parameters, got %d", c.Mode, n, len(c.Params))
	}
	return nil
}

// uint8Params decodes exactly len(names) positional parameters.
func (c *TriggerCmd) uint8Params(names ...string) ([]uint8, error) {
	if err := c.wantParams(len(names)); err != nil {
		return nil, err
	}
	out := make([]uint8, len(names))
	for i, name := range names {
		v, err := parseUint8(name, c.Params[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (c *TriggerCmd) zoneParams() ([report.ZoneCount]uint8, error) {
	if err := c.wantParams(report.ZoneCount); err != nil {
		return [report.ZoneCount]uint8{}, err
	}
	return c.zoneParamsN(report.ZoneCount)
}

func (c *TriggerCmd) zoneParamsN(n int) ([report.ZoneCount]uint8, error) {
	var zones [report.ZoneCount]uint8
	for i := 0; i < n; i++ {
		v, err := parseUint8("strength", c.Params[i])
		if err != nil {
			return zones, err
		}
		zones[i] = v
	}
	return zones, nil
}
