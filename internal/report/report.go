// Package report implements the DualSense binary report formats: output
// report framing for USB and Bluetooth, the CRC32 signing scheme, adaptive
// trigger parameter packing, and parsing of input and feature reports.
package report

import "encoding/binary"

// Transport identifies which framing applies to a report.
type Transport int

const (
	USB Transport = iota
	Bluetooth
)

func (t Transport) String() string {
	if t == Bluetooth {
		return "Bluetooth"
	}
	return "USB"
}

// Report IDs and sizes, including the leading report-id byte.
const (
	InputReportIDUSB    byte = 0x01
	InputReportSizeUSB       = 64
	InputReportIDBT     byte = 0x31
	InputReportSizeBT        = 78
	OutputReportIDUSB   byte = 0x02
	OutputReportSizeUSB      = 63
	OutputReportIDBT    byte = 0x31
	OutputReportSizeBT       = 78

	FeatureReportIDPairingInfo    byte = 0x09
	FeatureReportSizePairingInfo       = 20
	FeatureReportIDFirmwareInfo   byte = 0x20
	FeatureReportSizeFirmwareInfo      = 64
)

// Magic value required in the tag field of Bluetooth output reports.
const outputTag = 0x10

const (
	commonSize    = 47
	usbHeaderSize = 1
	btHeaderSize  = 3
	btCRCSize     = 4
)

// Valid flags. The device only honors a field when the matching flag bit is
// set in the same report.
const (
	ValidFlag0CompatibleVibration byte = 1 << 0
	ValidFlag0HapticsSelect       byte = 1 << 1
	ValidFlag0RightTriggerMotor   byte = 1 << 2
	ValidFlag0LeftTriggerMotor    byte = 1 << 3
	ValidFlag0HeadphoneVolume     byte = 1 << 4
	ValidFlag0SpeakerVolume       byte = 1 << 5
	ValidFlag0MicrophoneVolume    byte = 1 << 6
	ValidFlag0AudioControl        byte = 1 << 7

	ValidFlag1MicMuteLED      byte = 1 << 0
	ValidFlag1PowerSave       byte = 1 << 1
	ValidFlag1Lightbar        byte = 1 << 2
	ValidFlag1ReleaseLEDs     byte = 1 << 3
	ValidFlag1PlayerIndicator byte = 1 << 4

	ValidFlag2LEDBrightness        byte = 1 << 0
	ValidFlag2LightbarSetup        byte = 1 << 1
	ValidFlag2VibrationAttenuation byte = 1 << 2
)

const (
	PowerSaveMicMute byte = 1 << 4

	LightbarSetupOn  byte = 1 << 0
	LightbarSetupOut byte = 1 << 1
)

// Offsets into the common field block shared by both output framings.
const (
	comValidFlag0           = 0
	comValidFlag1           = 1
	comMotorRight           = 2
	comMotorLeft            = 3
	comHeadphoneVolume      = 4
	comSpeakerVolume        = 5
	comMicrophoneVolume     = 6
	comAudioFlags           = 7
	comMuteButtonLED        = 8
	comPowerSave            = 9
	comRightTriggerMode     = 10
	comRightTriggerParams   = 11
	comLeftTriggerMode      = 21
	comLeftTriggerParams    = 22
	comVibrationAttenuation = 36
	comValidFlag2           = 38
	comLightbarSetup        = 41
	comLEDBrightness        = 42
	comPlayerLEDs           = 43
	comLightbarRed          = 44
)

// Common is a mutable view over the transport-independent payload of an
// output report, positioned past the transport header.
type Common []byte

func (c Common) SetValidFlag0(bits byte) { c[comValidFlag0] |= bits }
func (c Common) SetValidFlag1(bits byte) { c[comValidFlag1] |= bits }
func (c Common) SetValidFlag2(bits byte) { c[comValidFlag2] |= bits }

func (c Common) SetMotors(right, left byte) {
	c[comMotorRight] = right
	c[comMotorLeft] = left
}

func (c Common) SetHeadphoneVolume(v byte)  { c[comHeadphoneVolume] = v }
func (c Common) SetSpeakerVolume(v byte)    { c[comSpeakerVolume] = v }
func (c Common) SetMicrophoneVolume(v byte) { c[comMicrophoneVolume] = v }
func (c Common) OrAudioFlags(bits byte)     { c[comAudioFlags] |= bits }
func (c Common) SetMuteButtonLED(v byte)    { c[comMuteButtonLED] = v }
func (c Common) OrPowerSave(bits byte)      { c[comPowerSave] |= bits }

func (c Common) SetRightTrigger(mode byte, params [TriggerParamCount]byte) {
	c[comRightTriggerMode] = mode
	copy(c[comRightTriggerParams:comRightTriggerParams+TriggerParamCount], params[:])
}

func (c Common) SetLeftTrigger(mode byte, params [TriggerParamCount]byte) {
	c[comLeftTriggerMode] = mode
	copy(c[comLeftTriggerParams:comLeftTriggerParams+TriggerParamCount], params[:])
}

func (c Common) SetVibrationAttenuation(v byte) { c[comVibrationAttenuation] = v }
func (c Common) SetLightbarSetup(v byte)        { c[comLightbarSetup] = v }
func (c Common) SetLEDBrightness(v byte)        { c[comLEDBrightness] = v }
func (c Common) SetPlayerLEDs(v byte)           { c[comPlayerLEDs] = v }

func (c Common) SetLightbarColor(red, green, blue byte) {
	c[comLightbarRed] = red
	c[comLightbarRed+1] = green
	c[comLightbarRed+2] = blue
}

// Frame is one constructed output report, framed for a specific transport.
// It is transient: built, filled and sent within a single command.
type Frame struct {
	transport Transport
	data      []byte
}

// NewOutputReport allocates a zeroed output report framed for the given
// transport. seq supplies the rolling sequence number carried in the upper
// nibble of the Bluetooth header; it is ignored for USB.
func NewOutputReport(t Transport, seq byte) Frame {
	if t == Bluetooth {
		data := make([]byte, OutputReportSizeBT)
		data[0] = OutputReportIDBT
		// Upper 4 bits are the sequence number, lower 4 bits a tag that can
		// stay zero.
		data[1] = seq << 4
		data[2] = outputTag
		return Frame{transport: Bluetooth, data: data}
	}
	data := make([]byte, OutputReportSizeUSB)
	data[0] = OutputReportIDUSB
	return Frame{transport: USB, data: data}
}

func (f Frame) Transport() Transport { return f.transport }

// Common returns the view over the shared field block, past the header.
func (f Frame) Common() Common {
	if f.transport == Bluetooth {
		return Common(f.data[btHeaderSize : btHeaderSize+commonSize])
	}
	return Common(f.data[usbHeaderSize : usbHeaderSize+commonSize])
}

// Bytes finalizes the frame for transmission. Bluetooth frames are signed:
// the CRC32 over everything but the trailing checksum slot is written into
// the last four bytes, little-endian.
func (f Frame) Bytes() []byte {
	if f.transport == Bluetooth {
		n := len(f.data) - btCRCSize
		binary.LittleEndian.PutUint32(f.data[n:], SignOutput(f.data[:n]))
	}
	return f.data
}
