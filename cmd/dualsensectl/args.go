package main

import (
	"fmt"
	"strconv"

	"github.com/dualsensectl/dualsensectl/internal/dualsense"
)

func badArgs(format string, args ...any) error {
	return fmt.Errorf("%w: %s", dualsense.ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// parseUint8 accepts decimal, 0x-hex and octal via strconv base 0.
func parseUint8(name, s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, badArgs("%s must be a number 0-255, got %q", name, s)
	}
	return uint8(v), nil
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, badArgs("state must be on or off, got %q", s)
}
