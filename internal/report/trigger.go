package report

import (
	"encoding/binary"
	"fmt"
)

// Trigger motor modes understood by the firmware.
const (
	TriggerModeOff       byte = 0x05
	TriggerModeFeedback  byte = 0x21
	TriggerModeBow       byte = 0x22
	TriggerModeGalloping byte = 0x23
	TriggerModeWeapon    byte = 0x25
	TriggerModeVibration byte = 0x26
	TriggerModeMachine   byte = 0x27
)

// TriggerParamCount is the size of one trigger motor parameter block.
const TriggerParamCount = 10

// ZoneCount is the number of positions along a trigger's travel range that
// haptic effects can address independently.
const ZoneCount = 10

// MaxZoneStrength is the highest per-zone force level.
const MaxZoneStrength = 8

// The frequency byte for vibration effects rides in the last CLI-settable
// parameter slot.
const triggerParamFrequency = 8

// PackZones bit-packs ten per-zone strengths (0 = inactive, 1-8 = active
// level) into trigger parameters: a 10-bit active-zone mask in params[0..1]
// and three bits of (strength-1) per zone in params[2..5], both
// little-endian. Inactive zones leave their three bits zero.
func PackZones(strength [ZoneCount]uint8) ([TriggerParamCount]byte, error) {
	var params [TriggerParamCount]byte
	var active uint16
	var packed uint32
	for i, s := range strength {
		if s > MaxZoneStrength {
			return params, fmt.Errorf("zone %d strength %d out of range 0-%d", i, s, MaxZoneStrength)
		}
		if s == 0 {
			continue
		}
		active |= 1 << i
		packed |= uint32((s-1)&0x07) << (3 * i)
	}
	binary.LittleEndian.PutUint16(params[0:2], active)
	binary.LittleEndian.PutUint32(params[2:6], packed)
	return params, nil
}

// PackZonesFrequency packs per-zone strengths like PackZones and appends the
// vibration frequency parameter.
func PackZonesFrequency(strength [ZoneCount]uint8, frequency uint8) ([TriggerParamCount]byte, error) {
	params, err := PackZones(strength)
	if err != nil {
		return params, err
	}
	params[triggerParamFrequency] = frequency
	return params, nil
}

// ZoneMask returns the two little-endian bytes of a start/stop zone bitmask
// used by the weapon, bow, galloping and machine effects.
func ZoneMask(start, stop uint8) (byte, byte) {
	mask := uint16(1)<<start | uint16(1)<<stop
	return byte(mask), byte(mask >> 8)
}
