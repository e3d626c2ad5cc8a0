package main

import (
	"errors"
	"testing"

	"github.com/dualsensectl/dualsensectl/internal/dualsense"
	"github.com/dualsensectl/dualsensectl/internal/report"
)

func TestParseUint8(t *testing.T) {
	cases := []struct {
		in   string
		want uint8
		ok   bool
	}{
		{"0", 0, true},
		{"255", 255, true},
		{"0x1f", 0x1F, true},
		{"010", 8, true}, // octal via base 0
		{"256", 0, false},
		{"-1", 0, false},
		{"red", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := parseUint8("value", tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("parseUint8(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("parseUint8(%q) = %d, want %d", tc.in, got, tc.want)
			}
			continue
		}
		if !errors.Is(err, dualsense.ErrInvalidArgument) {
			t.Fatalf("parseUint8(%q): err = %v", tc.in, err)
		}
	}
}

func TestParseOnOff(t *testing.T) {
	on, err := parseOnOff("on")
	if err != nil || !on {
		t.Fatalf("on: %v %v", on, err)
	}
	off, err := parseOnOff("off")
	if err != nil || off {
		t.Fatalf("off: %v %v", off, err)
	}
	if _, err := parseOnOff("maybe"); !errors.Is(err, dualsense.ErrInvalidArgument) {
		t.Fatalf("maybe: %v", err)
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errors.New("io failure"), 1},
		{badArgs("bad input"), 2},
		{dualsense.ErrNotFound, 3},
		{dualsense.ErrTimeout, 4},
		{report.ErrUnrecognizedReport, 5},
	}
	for _, tc := range cases {
		if got := exitCode(tc.err); got != tc.want {
			t.Fatalf("exitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
