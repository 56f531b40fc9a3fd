//go:build linux

// Package helpers provides common utilities for end-to-end tests.
package helpers

import (
	"io"

	"livesplit-hotkeys/mocks"
	mocktcp "livesplit-hotkeys/mocks/tcp"
	"livesplit-hotkeys/pkg/config"
)

// SettingsXML is a minimal LiveSplit settings document with a Default
// hotkey profile for end-to-end tests. Bound keys: NumPad1 split,
// NumPad3 reset, Space pause.
const SettingsXML = `<?xml version="1.0" encoding="utf-8"?>
<Settings version="1.8.16">
  <LastComparison>Personal Best</LastComparison>
  <GlobalHotkeysEnabled>True</GlobalHotkeysEnabled>
  <ComparisonGeneratorStates>
    <Generator name="Best Segments">True</Generator>
    <Generator name="Latest Run">False</Generator>
  </ComparisonGeneratorStates>
  <HotkeyProfiles>
    <HotkeyProfile name="Default">
      <SplitKey>NumPad1</SplitKey>
      <ResetKey>NumPad3</ResetKey>
      <PauseKey>Space</PauseKey>
    </HotkeyProfile>
  </HotkeyProfiles>
</Settings>`

// SetupMockDependencies wires a mock TCP network and a scripted input
// device into a dependency set for entrypoint tests. The scanner
// reports a single fake keyboard which the opener serves from the
// scripted device.
func SetupMockDependencies(device *mocks.ScriptedDevice) (*mocktcp.MockTCPNetwork, *config.Dependencies) {
	mockNet := mocktcp.NewMockTCPNetwork()

	deps := &config.Dependencies{
		TCPDialer: mockNet.DialTCP,
		DeviceScanner: func() ([]string, error) {
			return []string{"/dev/input/event0"}, nil
		},
		DeviceOpener: func(path string) (io.ReadCloser, error) {
			return device, nil
		},
	}

	return mockNet, deps
}
