package dualsense

import "github.com/dualsensectl/dualsensectl/internal/report"

// Mute button LED states.
const (
	MicLEDOff   uint8 = 0
	MicLEDOn    uint8 = 1
	MicLEDPulse uint8 = 2
)

// Microphone input routing codes, packed into bits 6-7 of the audio flags
// byte. "both" feeds chat and speech recognition simultaneously.
const (
	MicModeBoth uint8 = 0x0
	MicModeChat uint8 = 0x1
	MicModeASR  uint8 = 0x2
)

const micModeShift = 6

// SetMicrophone enables or disables the microphone through the power-save
// control byte. The frame is freshly zeroed, so no other power-save bits
// are disturbed.
func (d *Device) SetMicrophone(on bool) error {
	f := d.newOutputReport()
	c := f.Common()
	c.SetValidFlag1(report.ValidFlag1PowerSave)
	if !on {
		c.OrPowerSave(report.PowerSaveMicMute)
	}
	return d.sendOutputReport(f)
}

// SetMicrophoneLED sets the mute button LED state.
func (d *Device) SetMicrophoneLED(state uint8) error {
	if state > MicLEDPulse {
		return argErrorf("microphone led state %d out of range 0-2", state)
	}
	f := d.newOutputReport()
	c := f.Common()
	c.SetValidFlag1(report.ValidFlag1MicMuteLED)
	c.SetMuteButtonLED(state)
	return d.sendOutputReport(f)
}

// SetMicrophoneMode routes microphone input to chat, speech recognition or
// both.
func (d *Device) SetMicrophoneMode(mode uint8) error {
	if mode > MicModeASR {
		return argErrorf("microphone mode %d out of range 0-2", mode)
	}
	f := d.newOutputReport()
	c := f.Common()
	c.SetValidFlag0(report.ValidFlag0AudioControl)
	c.OrAudioFlags(mode << micModeShift)
	return d.sendOutputReport(f)
}
