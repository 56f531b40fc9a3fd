// Package shared provides common CLI flag definitions and utility functions
// used across the command-line interface.
package shared

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"livesplit-hotkeys/pkg/config"
	"livesplit-hotkeys/pkg/log"
)

const categoryCommon = "common"

// SettingsFlag is the name of the flag to specify the LiveSplit settings file.
const SettingsFlag = "settings"

// ProfileFlag is the name of the flag to specify the hotkey profile.
const ProfileFlag = "profile"

// HostFlag is the name of the flag to specify the server host.
const HostFlag = "host"

// PortFlag is the name of the flag to specify the server port.
const PortFlag = "port"

// TransportFlag is the name of the flag to select the transport protocol.
const TransportFlag = "transport"

// DeviceFlag is the name of the flag to specify explicit input devices.
const DeviceFlag = "device"

// LogFileFlag is the name of the flag to specify a command log file.
const LogFileFlag = "log"

// VerboseFlag is the name of the flag to log each hotkey sent.
const VerboseFlag = "verbose"

// DebugFlag is the name of the flag to log every key event.
const DebugFlag = "debug"

// GetCommonFlags returns the flags shared by the run and doctor commands.
func GetCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     SettingsFlag,
			Aliases:  []string{"s"},
			Usage:    "Path to LiveSplit's settings.cfg, defaults to ~/LiveSplit/settings.cfg",
			Category: categoryCommon,
			Value:    "",
			Required: false,
		},
		&cli.StringFlag{
			Name:     ProfileFlag,
			Aliases:  []string{"f"},
			Usage:    "Name of the hotkey profile to use",
			Category: categoryCommon,
			Value:    config.DefaultProfile,
			Required: false,
		},
		&cli.StringFlag{
			Name:     HostFlag,
			Aliases:  []string{"o"},
			Usage:    "Hostname or IP address where the LiveSplit server is running",
			Category: categoryCommon,
			Value:    "localhost",
			Required: false,
		},
		&cli.IntFlag{
			Name:     PortFlag,
			Aliases:  []string{"p"},
			Usage:    "Port the LiveSplit server is listening on",
			Category: categoryCommon,
			Value:    config.DefaultPort,
			Required: false,
		},
		&cli.StringFlag{
			Name:     TransportFlag,
			Aliases:  []string{"t"},
			Usage:    "Transport protocol: tcp (LiveSplit Server), ws or wss (LiveSplit One)",
			Category: categoryCommon,
			Value:    "tcp",
			Required: false,
		},
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Log every hotkey sent to the server",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
		&cli.BoolFlag{
			Name:     DebugFlag,
			Aliases:  []string{},
			Usage:    "Log every key event received, implies --verbose",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
	}
}

// ParseProtocol maps a transport flag value to a config.Protocol.
func ParseProtocol(s string) (config.Protocol, error) {
	switch s {
	case "tcp":
		return config.ProtoTCP, nil
	case "ws":
		return config.ProtoWS, nil
	case "wss":
		return config.ProtoWSS, nil
	default:
		return 0, fmt.Errorf("parsing %q: transport must be tcp|ws|wss", s)
	}
}

// Verbosity derives the logger verbosity level from the verbose and
// debug flags.
func Verbosity(cmd *cli.Command) int {
	if cmd.Bool(DebugFlag) {
		return 2
	}
	if cmd.Bool(VerboseFlag) {
		return 1
	}
	return 0
}

// BuildConfig assembles a config.Config from the common flags.
func BuildConfig(cmd *cli.Command) (*config.Config, error) {
	proto, err := ParseProtocol(cmd.String(TransportFlag))
	if err != nil {
		return nil, err
	}

	verbosity := Verbosity(cmd)

	return &config.Config{
		Protocol:  proto,
		Host:      cmd.String(HostFlag),
		Port:      int(cmd.Int(PortFlag)),
		Settings:  cmd.String(SettingsFlag),
		Profile:   cmd.String(ProfileFlag),
		Verbosity: verbosity,
		Logger:    log.New(verbosity),
	}, nil
}
