package report

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrUnrecognizedReport flags bytes that match no known report-id, length
// and transport combination.
var ErrUnrecognizedReport = errors.New("unrecognized report")

// Input-report payload offsets, counted from past the transport header.
const (
	inStickLX         = 0
	inStickLY         = 1
	inStickRX         = 2
	inStickRY         = 3
	inTriggerL2       = 4
	inTriggerR2       = 5
	inSeqNumber       = 6
	inButtons         = 7
	inGyro            = 15
	inAccel           = 21
	inSensorTimestamp = 27
	inTouchPoints     = 32
	inStatus          = 52

	inPayloadMin = 53

	touchPointSize = 4
)

const (
	statusBatteryCapacityMask byte = 0x0F
	statusChargingMask        byte = 0xF0
	statusChargingShift            = 4
)

// TouchPoint is one touchpad contact record.
type TouchPoint struct {
	ID     uint8
	Active bool
	X      uint16 // 12-bit
	Y      uint16 // 12-bit
}

// Input is a read-only parsed view of an input report.
type Input struct {
	StickLX, StickLY uint8
	StickRX, StickRY uint8
	TriggerL2        uint8
	TriggerR2        uint8
	SeqNumber        uint8
	Buttons          uint32
	Gyro             [3]int16
	Accel            [3]int16
	SensorTimestamp  uint32
	Touch            [2]TouchPoint
	Status           byte
}

// ParseInput parses a raw input report as read from the device, selecting
// the framing from the transport, report ID and length. Bluetooth frames
// carry a trailing CRC32 which is not validated.
func ParseInput(t Transport, buf []byte) (*Input, error) {
	var payload []byte
	switch {
	case t == USB && len(buf) >= InputReportSizeUSB && buf[0] == InputReportIDUSB:
		payload = buf[1:InputReportSizeUSB]
	case t == Bluetooth && len(buf) >= InputReportSizeBT && buf[0] == InputReportIDBT:
		payload = buf[2 : InputReportSizeBT-btCRCSize]
	default:
		id := byte(0)
		if len(buf) > 0 {
			id = buf[0]
		}
		return nil, fmt.Errorf("%w: id 0x%02x, %d bytes over %s", ErrUnrecognizedReport, id, len(buf), t)
	}
	if len(payload) < inPayloadMin {
		return nil, fmt.Errorf("%w: payload truncated to %d bytes", ErrUnrecognizedReport, len(payload))
	}

	in := &Input{
		StickLX:         payload[inStickLX],
		StickLY:         payload[inStickLY],
		StickRX:         payload[inStickRX],
		StickRY:         payload[inStickRY],
		TriggerL2:       payload[inTriggerL2],
		TriggerR2:       payload[inTriggerR2],
		SeqNumber:       payload[inSeqNumber],
		Buttons:         binary.LittleEndian.Uint32(payload[inButtons : inButtons+4]),
		SensorTimestamp: binary.LittleEndian.Uint32(payload[inSensorTimestamp : inSensorTimestamp+4]),
		Status:          payload[inStatus],
	}
	for i := 0; i < 3; i++ {
		in.Gyro[i] = int16(binary.LittleEndian.Uint16(payload[inGyro+2*i:]))
		in.Accel[i] = int16(binary.LittleEndian.Uint16(payload[inAccel+2*i:]))
	}
	for i := range in.Touch {
		in.Touch[i] = parseTouchPoint(payload[inTouchPoints+i*touchPointSize:])
	}
	return in, nil
}

// parseTouchPoint decodes one packed contact record: a contact byte (bit 7
// clear while touching, low bits the contact ID) and two 12-bit coordinates
// sharing the middle byte.
func parseTouchPoint(b []byte) TouchPoint {
	return TouchPoint{
		ID:     b[0] & 0x7F,
		Active: b[0]&0x80 == 0,
		X:      uint16(b[1]) | uint16(b[2]&0x0F)<<8,
		Y:      uint16(b[2]>>4) | uint16(b[3])<<4,
	}
}

// BatteryStatus is the decoded battery portion of the status byte.
type BatteryStatus struct {
	Percent uint8
	Status  string
}

// Battery decodes the status byte: the low nibble is capacity on a 0-10
// scale, the next nibble a charging-state code.
func (in *Input) Battery() BatteryStatus {
	capacity := in.Status & statusBatteryCapacityMask
	charging := (in.Status & statusChargingMask) >> statusChargingShift
	percent := uint8(min(int(capacity)*10+5, 100))
	switch charging {
	case 0x0:
		return BatteryStatus{percent, "discharging"}
	case 0x1:
		return BatteryStatus{percent, "charging"}
	case 0x2:
		return BatteryStatus{100, "full"}
	case 0xa, 0xb:
		return BatteryStatus{0, "not-charging"}
	default:
		return BatteryStatus{0, "unknown"}
	}
}
