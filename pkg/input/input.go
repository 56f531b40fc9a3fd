// Package input captures keyboard events from Linux evdev devices.
//
// Devices are read directly from /dev/input, so the process must have
// read access to them (typically via the 'input' group). Only key press
// and release events are reported; autorepeat events are dropped.
package input

import "io"

// Event is a single key press or release.
type Event struct {
	Code    uint16
	Pressed bool
}

// Opener opens an input device for reading. Tests substitute scripted
// devices here.
type Opener func(path string) (io.ReadCloser, error)
