package dualsense

import "github.com/dualsensectl/dualsensectl/internal/report"

// Audio output routing codes, packed into bits 4-5 of the audio flags byte.
const (
	SpeakerHeadphone     uint8 = 0x0
	SpeakerBoth          uint8 = 0x1
	SpeakerMonoHeadphone uint8 = 0x2
	SpeakerInternal      uint8 = 0x3
)

const speakerPathShift = 4

// SetSpeaker routes audio output.
func (d *Device) SetSpeaker(path uint8) error {
	if path > SpeakerInternal {
		return argErrorf("speaker path %d out of range 0-3", path)
	}
	f := d.newOutputReport()
	c := f.Common()
	c.SetValidFlag0(report.ValidFlag0AudioControl)
	c.OrAudioFlags(path << speakerPathShift)
	return d.sendOutputReport(f)
}

// SetVolume sets headphone and speaker volume from a single 0-255 level.
// The firmware takes the headphone volume on a 0-0x7f scale and the
// speaker volume on a 0-0x64 scale.
func (d *Device) SetVolume(volume uint8) error {
	f := d.newOutputReport()
	c := f.Common()
	c.SetValidFlag0(report.ValidFlag0HeadphoneVolume | report.ValidFlag0SpeakerVolume)
	c.SetHeadphoneVolume(uint8(int(volume) * 0x7f / 255))
	c.SetSpeakerVolume(uint8(int(volume) * 0x64 / 255))
	return d.sendOutputReport(f)
}

// SetVibrationAttenuation reduces rumble and trigger motor power, each on a
// 0-7 scale packed into one byte.
func (d *Device) SetVibrationAttenuation(rumble, trigger uint8) error {
	if rumble > 7 {
		return argErrorf("rumble attenuation %d out of range 0-7", rumble)
	}
	if trigger > 7 {
		return argErrorf("trigger attenuation %d out of range 0-7", trigger)
	}
	f := d.newOutputReport()
	c := f.Common()
	c.SetValidFlag2(report.ValidFlag2VibrationAttenuation)
	c.SetVibrationAttenuation(rumble | trigger<<4)
	return d.sendOutputReport(f)
}
