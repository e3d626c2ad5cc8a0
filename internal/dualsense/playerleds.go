package dualsense

import "github.com/dualsensectl/dualsensectl/internal/report"

// Patterns of lit player indicator LEDs, indexed by player number. Index 0
// turns the indicator off; 1-5 are the symmetric patterns the firmware
// animates for players; 6 and 7 light the outer pair and the inner trio.
var playerLEDPatterns = [8]byte{
	0x00,
	0x04,
	0x0A,
	0x15,
	0x1B,
	0x1F,
	0x11,
	0x0E,
}

// Bit 5 of the player-LED byte skips the fade-in animation.
const playerLEDInstant byte = 1 << 5

// SetPlayerLEDs selects a player indicator pattern. instant applies it
// without the fade animation.
func (d *Device) SetPlayerLEDs(number uint8, instant bool) error {
	if int(number) >= len(playerLEDPatterns) {
		return argErrorf("player number %d out of range 0-%d", number, len(playerLEDPatterns)-1)
	}
	f := d.newOutputReport()
	c := f.Common()
	c.SetValidFlag1(report.ValidFlag1PlayerIndicator)
	pattern := playerLEDPatterns[number]
	if instant {
		pattern |= playerLEDInstant
	}
	c.SetPlayerLEDs(pattern)
	return d.sendOutputReport(f)
}
