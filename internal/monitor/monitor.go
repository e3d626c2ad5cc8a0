// Package monitor watches udev for controller hotplug events and runs the
// configured shell hooks.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/pilebones/go-udev/netlink"

	"github.com/dualsensectl/dualsensectl/internal/dualsense"
)

// Config holds the hook commands run on controller hotplug events. It is
// passed in explicitly; the monitor keeps no process-wide state.
type Config struct {
	AddCommand    string
	RemoveCommand string

	// Wait runs each hook synchronously instead of fire-and-forget.
	Wait bool
}

// Run watches udev until ctx is done. When present is true the add hook
// fires immediately, covering controllers plugged in before the monitor
// started.
func Run(ctx context.Context, cfg Config, present bool, logger *slog.Logger) error {
	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		return fmt.Errorf("connect udev socket: %w", err)
	}
	defer conn.Close()

	matcher := controllerMatcher()
	if err := matcher.Compile(); err != nil {
		return fmt.Errorf("compile udev match rules: %w", err)
	}

	queue := make(chan netlink.UEvent)
	errs := make(chan error)
	quit := conn.Monitor(queue, errs, matcher)
	defer close(quit)

	if present {
		logger.Info("controller already connected")
		cfg.runHook(cfg.AddCommand, logger)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errs:
			logger.Warn("udev monitor error", "error", err)
		case ev := <-queue:
			cfg.dispatch(ev, logger)
		}
	}
}

// controllerMatcher matches hid subsystem add/remove events whose HID_ID
// carries the Sony vendor ID and a known controller product ID.
func controllerMatcher() netlink.Matcher {
	hidID := fmt.Sprintf("0003:%08X:(%08X|%08X)",
		dualsense.VendorSony, dualsense.ProductDualSense, dualsense.ProductDualSenseEdge)
	add := string(netlink.ADD)
	remove := string(netlink.REMOVE)
	return &netlink.RuleDefinitions{
		Rules: []netlink.RuleDefinition{
			{Action: &add, Env: map[string]string{"SUBSYSTEM": "hid", "HID_ID": hidID}},
			{Action: &remove, Env: map[string]string{"SUBSYSTEM": "hid", "HID_ID": hidID}},
		},
	}
}

func (cfg Config) dispatch(ev netlink.UEvent, logger *slog.Logger) {
	var command, msg string
	switch ev.Action {
	case netlink.ADD:
		command, msg = cfg.AddCommand, "controller connected"
	case netlink.REMOVE:
		command, msg = cfg.RemoveCommand, "controller disconnected"
	default:
		return
	}
	logger.Info(msg, "devpath", ev.KObj)
	cfg.runHook(command, logger)
}

func (cfg Config) runHook(command string, logger *slog.Logger) {
	if command == "" {
		return
	}
	cmd := exec.Command("sh", "-c", command)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if cfg.Wait {
		if err := cmd.Run(); err != nil {
			logger.Warn("hook failed", "command", command, "error", err)
		}
		return
	}
	if err := cmd.Start(); err != nil {
		logger.Warn("hook failed to start", "command", command, "error", err)
		return
	}
	go func() { _ = cmd.Wait() }()
}
