package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/dualsensectl/dualsensectl/internal/bluez"
	"github.com/dualsensectl/dualsensectl/internal/dualsense"
	"github.com/dualsensectl/dualsensectl/internal/log"
	"github.com/dualsensectl/dualsensectl/internal/report"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dualsensectl"),
		kong.Description("Control a Sony DualSense controller over USB or Bluetooth."),
		kong.UsageOnError(),
		kong.Configuration(kongyaml.Loader, configPaths()...),
		kong.Vars{"version": version()},
		kong.Exit(exit),
	)

	logger := log.Setup(cli.LogLevel)
	ctx.Bind(&cli)

	if err := ctx.Run(); err != nil {
		logger.Debug("command failed", "error", err)
		fmt.Fprintln(os.Stderr, "dualsensectl:", err)
		os.Exit(exitCode(err))
	}
}

// exit maps kong-level failures (usage, flag parsing) to the invalid
// argument exit code while keeping --help at zero.
func exit(code int) {
	if code != 0 {
		os.Exit(2)
	}
	os.Exit(0)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, dualsense.ErrInvalidArgument):
		return 2
	case errors.Is(err, dualsense.ErrNotFound), errors.Is(err, bluez.ErrNotFound):
		return 3
	case errors.Is(err, dualsense.ErrTimeout):
		return 4
	case errors.Is(err, report.ErrUnrecognizedReport):
		return 5
	}
	return 1
}

func configPaths() []string {
	return []string{
		"/etc/dualsensectl/config.yaml",
		"~/.config/dualsensectl/config.yaml",
	}
}
