package config

import (
	"path/filepath"
	"testing"
)

func TestProtocol_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		protocol Protocol
		want     string
	}{
		{"TCP", ProtoTCP, "tcp"},
		{"WebSocket", ProtoWS, "ws"},
		{"WebSocket Secure", ProtoWSS, "wss"},
		{"Invalid", Protocol(999), ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.protocol.String(); got != tc.want {
				t.Errorf("Protocol.String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      *Config
		wantErrs int
	}{
		{
			name: "valid defaults",
			cfg: &Config{
				Host:    "localhost",
				Port:    DefaultPort,
				Profile: DefaultProfile,
			},
			wantErrs: 0,
		},
		{
			name: "port too small",
			cfg: &Config{
				Host:    "localhost",
				Port:    0,
				Profile: DefaultProfile,
			},
			wantErrs: 1,
		},
		{
			name: "port too large",
			cfg: &Config{
				Host:    "localhost",
				Port:    70000,
				Profile: DefaultProfile,
			},
			wantErrs: 1,
		},
		{
			name: "empty profile",
			cfg: &Config{
				Host: "localhost",
				Port: DefaultPort,
			},
			wantErrs: 1,
		},
		{
			name: "multiple errors",
			cfg: &Config{
				Host:      "localhost",
				Port:      -1,
				Verbosity: 7,
			},
			wantErrs: 3,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.cfg.Validate(); len(got) != tc.wantErrs {
				t.Errorf("Validate() returned %d errors (%v), want %d", len(got), got, tc.wantErrs)
			}
		})
	}
}

func TestConfig_SettingsPath_Explicit(t *testing.T) {
	t.Parallel()

	cfg := &Config{Settings: "/tmp/settings.cfg"}

	got, err := cfg.SettingsPath()
	if err != nil {
		t.Fatalf("SettingsPath() error: %s", err)
	}
	if got != "/tmp/settings.cfg" {
		t.Errorf("SettingsPath() = %q, want %q", got, "/tmp/settings.cfg")
	}
}

func TestConfig_SettingsPath_Default(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &Config{}

	got, err := cfg.SettingsPath()
	if err != nil {
		t.Fatalf("SettingsPath() error: %s", err)
	}
	want := filepath.Join(home, "LiveSplit", "settings.cfg")
	if got != want {
		t.Errorf("SettingsPath() = %q, want %q", got, want)
	}
}
