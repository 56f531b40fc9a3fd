// Package config defines the runtime configuration shared across the
// application, along with validation and injectable dependencies.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"livesplit-hotkeys/pkg/log"
)

// Protocol identifies the transport used to reach the timer server.
type Protocol int

const (
	// ProtoTCP is the classic LiveSplit Server plain TCP protocol.
	ProtoTCP Protocol = iota
	// ProtoWS is the LiveSplit One WebSocket protocol.
	ProtoWS
	// ProtoWSS is the LiveSplit One WebSocket protocol over TLS.
	ProtoWSS
)

// String returns the protocol scheme as used in URLs.
func (p Protocol) String() string {
	switch p {
	case ProtoTCP:
		return "tcp"
	case ProtoWS:
		return "ws"
	case ProtoWSS:
		return "wss"
	default:
		return ""
	}
}

// DefaultPort is the port the LiveSplit Server component listens on.
const DefaultPort = 16834

// DefaultProfile is the hotkey profile LiveSplit creates out of the box.
const DefaultProfile = "Default"

// Config holds the runtime configuration for a hotkey relay run.
type Config struct {
	Protocol Protocol
	Host     string
	Port     int

	Settings string // path to LiveSplit's settings.cfg, empty for the default location
	Profile  string // name of the hotkey profile to read bindings from

	Devices []string // explicit evdev device paths, empty for autodetection

	CommandLog string // file receiving a copy of all commands sent, empty to disable

	Verbosity int
	Logger    *log.Logger

	Deps *Dependencies
}

// Validate checks the configuration and returns all problems found.
func (c *Config) Validate() []error {
	var errors []error

	if c.Port < 1 || c.Port > 65535 {
		errors = append(errors, fmt.Errorf("'--port' must be in [1, 65535]"))
	}

	if c.Profile == "" {
		errors = append(errors, fmt.Errorf("'--profile' must not be empty"))
	}

	if c.Verbosity < 0 || c.Verbosity > 2 {
		errors = append(errors, fmt.Errorf("verbosity must be in [0, 2]"))
	}

	return errors
}

// SettingsPath returns the configured settings file path, falling back
// to LiveSplit's default location under the home directory.
func (c *Config) SettingsPath() (string, error) {
	if c.Settings != "" {
		return c.Settings, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("os.UserHomeDir(): %s", err)
	}

	return filepath.Join(home, "LiveSplit", "settings.cfg"), nil
}
