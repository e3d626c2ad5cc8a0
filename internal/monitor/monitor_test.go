package monitor

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pilebones/go-udev/netlink"
)

func event(action netlink.KObjAction, hidID string) netlink.UEvent {
	return netlink.UEvent{
		Action: action,
		KObj:   "/devices/virtual/misc/uhid/0005:054C:0CE6.0003",
		Env: map[string]string{
			"SUBSYSTEM": "hid",
			"HID_ID":    hidID,
		},
	}
}

func TestControllerMatcher(t *testing.T) {
	matcher := controllerMatcher()
	if err := matcher.Compile(); err != nil {
		t.Fatalf("compile: %v", err)
	}

	cases := []struct {
		name string
		ev   netlink.UEvent
		want bool
	}{
		{"dualsense add", event(netlink.ADD, "0003:0000054C:00000CE6"), true},
		{"dualsense remove", event(netlink.REMOVE, "0003:0000054C:00000CE6"), true},
		{"edge add", event(netlink.ADD, "0003:0000054C:00000DF2"), true},
		{"other sony device", event(netlink.ADD, "0003:0000054C:000005C4"), false},
		{"other vendor", event(netlink.ADD, "0003:0000046D:0000C52B"), false},
	}
	for _, tc := range cases {
		if got := matcher.Evaluate(tc.ev); got != tc.want {
			t.Errorf("%s: Evaluate = %v, want %v", tc.name, got, tc.want)
		}
	}

	ev := event(netlink.ADD, "0003:0000054C:00000CE6")
	ev.Env["SUBSYSTEM"] = "input"
	if matcher.Evaluate(ev) {
		t.Errorf("non-hid subsystem should not match")
	}
}

// change events carry no hook; dispatch must be a no-op for them.
func TestDispatchIgnoresOtherActions(t *testing.T) {
	hook := filepath.Join(t.TempDir(), "ran")
	cfg := Config{
		AddCommand:    "touch " + hook,
		RemoveCommand: "touch " + hook,
		Wait:          true,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg.dispatch(event(netlink.CHANGE, "0003:0000054C:00000CE6"), logger)
	if _, err := os.Stat(hook); err == nil {
		t.Fatalf("hook ran for change event")
	}
}

func TestDispatchRunsAddHook(t *testing.T) {
	hook := filepath.Join(t.TempDir(), "ran")
	cfg := Config{AddCommand: "touch " + hook, Wait: true}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg.dispatch(event(netlink.ADD, "0003:0000054C:00000CE6"), logger)
	if _, err := os.Stat(hook); err != nil {
		t.Fatalf("add hook did not run: %v", err)
	}
}
