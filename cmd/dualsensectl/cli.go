package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/dualsensectl/dualsensectl/internal/bluez"
	"github.com/dualsensectl/dualsensectl/internal/dualsense"
	"github.com/dualsensectl/dualsensectl/internal/hid"
	"github.com/dualsensectl/dualsensectl/internal/monitor"
	"github.com/dualsensectl/dualsensectl/internal/report"
)

// CLI is the root command structure for kong parsing. Subcommands map 1:1
// to controller operations.
type CLI struct {
	Device   string           `short:"d" help:"Select the controller by serial/MAC as printed by list."`
	LogLevel string           `help:"Log level: debug, info, warn, error." default:"info" env:"DUALSENSECTL_LOG_LEVEL"`
	Version  kong.VersionFlag `help:"Print version and exit."`

	List           ListCmd           `cmd:"" help:"List connected controllers."`
	PowerOff       PowerOffCmd       `cmd:"" name:"power-off" help:"Turn off the controller (Bluetooth only)."`
	Battery        BatteryCmd        `cmd:"" help:"Print battery level and charging status."`
	Info           InfoCmd           `cmd:"" help:"Print firmware information."`
	Lightbar       LightbarCmd       `cmd:"" help:"Enable/disable the lightbar or set its color."`
	LedBrightness  LedBrightnessCmd  `cmd:"" name:"led-brightness" help:"Set LED brightness (0-2)."`
	PlayerLeds     PlayerLedsCmd     `cmd:"" name:"player-leds" help:"Set the player indicator LEDs (0-7)."`
	Microphone     MicrophoneCmd     `cmd:"" help:"Enable (on) or disable (off) the microphone."`
	MicrophoneLed  MicrophoneLedCmd  `cmd:"" name:"microphone-led" help:"Set the mute button LED (on, off, pulse)."`
	MicrophoneMode MicrophoneModeCmd `cmd:"" name:"microphone-mode" help:"Route microphone input (chat, asr, both)."`
	Speaker        SpeakerCmd        `cmd:"" help:"Route audio output (internal, headphone, monoheadphone, both)."`
	Volume         VolumeCmd         `cmd:"" help:"Set audio volume (0-255)."`
	Attenuation    AttenuationCmd    `cmd:"" help:"Set rumble and trigger attenuation (0-7 each)."`
	Trigger        TriggerCmd        `cmd:"" help:"Configure adaptive trigger effects."`
	Monitor        MonitorCmd        `cmd:"" help:"Watch for controller hotplug events and run hooks."`
}

func openSession(cli *CLI) (*dualsense.Device, error) {
	mgr, err := hid.NewManager()
	if err != nil {
		return nil, err
	}
	return dualsense.Open(mgr, cli.Device)
}

type ListCmd struct{}

func (c *ListCmd) Run(cli *CLI) error {
	mgr, err := hid.NewManager()
	if err != nil {
		return err
	}
	infos, err := dualsense.List(mgr)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return dualsense.ErrNotFound
	}
	for _, info := range infos {
		transport := "USB"
		if info.InterfaceNumber < 0 {
			transport = "Bluetooth"
		}
		fmt.Printf("%s %04x:%04x %s (%s)\n", info.SerialNumber, info.VendorID, info.ProductID, info.Product, transport)
	}
	return nil
}

type PowerOffCmd struct{}

func (c *PowerOffCmd) Run(cli *CLI) error {
	d, err := openSession(cli)
	if err != nil {
		return err
	}
	defer d.Close()
	if d.Transport() != report.Bluetooth {
		return fmt.Errorf("controller is not connected via Bluetooth")
	}
	return bluez.DisconnectDevice(d.Address())
}

type BatteryCmd struct{}

func (c *BatteryCmd) Run(cli *CLI) error {
	d, err := openSession(cli)
	if err != nil {
		return err
	}
	defer d.Close()
	b, err := d.Battery()
	if err != nil {
		return err
	}
	fmt.Printf("%d %s\n", b.Percent, b.Status)
	return nil
}

type InfoCmd struct{}

func (c *InfoCmd) Run(cli *CLI) error {
	d, err := openSession(cli)
	if err != nil {
		return err
	}
	defer d.Close()
	info, err := d.FirmwareInfo()
	if err != nil {
		return err
	}
	fmt.Printf("Build Date: %s %s\n", info.BuildDate, info.BuildTime)
	fmt.Printf("Firmware Type: 0x%04x\n", info.FwType)
	fmt.Printf("Software Series: 0x%04x\n", info.SwSeries)
	fmt.Printf("Hardware Info: 0x%08x\n", info.HardwareInfo)
	fmt.Printf("Firmware Version: %s\n", report.FormatVersion(info.FirmwareVersion))
	fmt.Printf("Update Version: 0x%04x\n", info.UpdateVersion)
	fmt.Printf("Firmware Version 1: %s\n", report.FormatVersion(info.FwVersion1))
	fmt.Printf("Firmware Version 2: %s\n", report.FormatVersion(info.FwVersion2))
	fmt.Printf("Firmware Version 3: %s\n", report.FormatVersion(info.FwVersion3))
	return nil
}

type LightbarCmd struct {
	Args []string `arg:"" optional:"" name:"args" help:"STATE (on/off) or RED GREEN BLUE [BRIGHTNESS]."`
}

func (c *LightbarCmd) Run(cli *CLI) error {
	switch len(c.Args) {
	case 1:
		on, err := parseOnOff(c.Args[0])
		if err != nil {
			return err
		}
		d, err := openSession(cli)
		if err != nil {
			return err
		}
		defer d.Close()
		return d.SetLightbarState(on)
	case 3, 4:
		var rgb [3]uint8
		for i, name := range []string{"red", "green", "blue"} {
			v, err := parseUint8(name, c.Args[i])
			if err != nil {
				return err
			}
			rgb[i] = v
		}
		brightness := uint8(255)
		if len(c.Args) == 4 {
			v, err := parseUint8("brightness", c.Args[3])
			if err != nil {
				return err
			}
			brightness = v
		}
		d, err := openSession(cli)
		if err != nil {
			return err
		}
		defer d.Close()
		return d.SetLightbarColor(rgb[0], rgb[1], rgb[2], brightness)
	}
	return badArgs("lightbar expects STATE or RED GREEN BLUE [BRIGHTNESS]")
}

type LedBrightnessCmd struct {
	Level uint8 `arg:"" help:"Brightness level 0-2."`
}

func (c *LedBrightnessCmd) Run(cli *CLI) error {
	d, err := openSession(cli)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.SetLEDBrightness(c.Level)
}

type PlayerLedsCmd struct {
	Number  uint8  `arg:"" help:"Player number 1-7, or 0 for off."`
	Instant string `arg:"" optional:"" help:"Pass 'instant' to skip the fade animation."`
}

func (c *PlayerLedsCmd) Run(cli *CLI) error {
	instant := false
	switch c.Instant {
	case "":
	case "instant":
		instant = true
	default:
		return badArgs("unexpected argument %q, only 'instant' is accepted", c.Instant)
	}
	d, err := openSession(cli)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.SetPlayerLEDs(c.Number, instant)
}

type MicrophoneCmd struct {
	State string `arg:"" help:"on or off."`
}

func (c *MicrophoneCmd) Run(cli *CLI) error {
	on, err := parseOnOff(c.State)
	if err != nil {
		return err
	}
	d, err := openSession(cli)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.SetMicrophone(on)
}

type MicrophoneLedCmd struct {
	State string `arg:"" help:"on, off or pulse."`
}

func (c *MicrophoneLedCmd) Run(cli *CLI) error {
	var state uint8
	switch c.State {
	case "on":
		state = dualsense.MicLEDOn
	case "off":
		state = dualsense.MicLEDOff
	case "pulse":
		state = dualsense.MicLEDPulse
	default:
		return badArgs("state must be on, off or pulse, got %q", c.State)
	}
	d, err := openSession(cli)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.SetMicrophoneLED(state)
}

type MicrophoneModeCmd struct {
	Mode string `arg:"" help:"chat, asr or both."`
}

func (c *MicrophoneModeCmd) Run(cli *CLI) error {
	var mode uint8
	switch c.Mode {
	case "chat":
		mode = dualsense.MicModeChat
	case "asr":
		mode = dualsense.MicModeASR
	case "both":
		mode = dualsense.MicModeBoth
	default:
		return badArgs("mode must be chat, asr or both, got %q", c.Mode)
	}
	d, err := openSession(cli)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.SetMicrophoneMode(mode)
}

type SpeakerCmd struct {
	Path string `arg:"" help:"internal, headphone, monoheadphone or both."`
}

func (c *SpeakerCmd) Run(cli *CLI) error {
	var path uint8
	switch c.Path {
	case "internal":
		path = dualsense.SpeakerInternal
	case "headphone":
		path = dualsense.SpeakerHeadphone
	case "monoheadphone":
		path = dualsense.SpeakerMonoHeadphone
	case "both":
		path = dualsense.SpeakerBoth
	default:
		return badArgs("speaker path must be internal, headphone, monoheadphone or both, got %q", c.Path)
	}
	d, err := openSession(cli)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.SetSpeaker(path)
}

type VolumeCmd struct {
	Volume uint8 `arg:"" help:"Volume 0-255."`
}

func (c *VolumeCmd) Run(cli *CLI) error {
	d, err := openSession(cli)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.SetVolume(c.Volume)
}

type AttenuationCmd struct {
	Rumble  uint8 `arg:"" help:"Rumble attenuation 0-7."`
	Trigger uint8 `arg:"" help:"Trigger attenuation 0-7."`
}

func (c *AttenuationCmd) Run(cli *CLI) error {
	d, err := openSession(cli)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.SetVibrationAttenuation(c.Rumble, c.Trigger)
}

type MonitorCmd struct {
	AddCmd    string `name:"add-cmd" help:"Shell command to run when a controller appears."`
	RemoveCmd string `name:"remove-cmd" help:"Shell command to run when a controller disappears."`
	Wait      bool   `help:"Wait for hook commands to finish."`
}

func (c *MonitorCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	present := false
	if mgr, err := hid.NewManager(); err == nil {
		if infos, err := dualsense.List(mgr); err == nil && len(infos) > 0 {
			present = true
		}
	}

	cfg := monitor.Config{
		AddCommand:    c.AddCmd,
		RemoveCommand: c.RemoveCmd,
		Wait:          c.Wait,
	}
	return monitor.Run(ctx, cfg, present, slog.Default())
}
