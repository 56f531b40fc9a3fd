//go:build linux

// Package mocks provides mock implementations for testing.
package mocks

import (
	"encoding/binary"
	"io"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// KeyEvent is one scripted key event for a ScriptedDevice.
type KeyEvent struct {
	Code  uint16
	Value int32 // 0 = release, 1 = press, 2 = autorepeat
}

// Press returns a scripted press of the given key.
func Press(code uint16) KeyEvent {
	return KeyEvent{Code: code, Value: 1}
}

// Release returns a scripted release of the given key.
func Release(code uint16) KeyEvent {
	return KeyEvent{Code: code, Value: 0}
}

// ScriptedDevice is an io.ReadCloser that serves raw input_event
// records for a scripted key sequence, then blocks until closed. It
// stands in for an evdev device file in tests.
type ScriptedDevice struct {
	mu      sync.Mutex
	data    []byte
	offset  int
	closed  chan struct{}
	closeMu sync.Once
}

const evKey = 1

var timevalSize = int(unsafe.Sizeof(unix.Timeval{}))
var eventSize = timevalSize + 8

// NewScriptedDevice creates a device serving the given events in order.
func NewScriptedDevice(events ...KeyEvent) *ScriptedDevice {
	d := &ScriptedDevice{
		closed: make(chan struct{}),
	}
	for _, ev := range events {
		d.data = append(d.data, marshalEvent(evKey, ev.Code, ev.Value)...)
	}
	return d
}

// Append adds more events to the script. Events appended after the
// initial script has been consumed are served by the next Read.
func (d *ScriptedDevice) Append(events ...KeyEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, ev := range events {
		d.data = append(d.data, marshalEvent(evKey, ev.Code, ev.Value)...)
	}
}

// Read serves pending event bytes. With the script exhausted it blocks
// until more events are appended or the device is closed, mirroring a
// real device file waiting for input.
func (d *ScriptedDevice) Read(p []byte) (int, error) {
	for {
		d.mu.Lock()
		if d.offset < len(d.data) {
			n := copy(p, d.data[d.offset:])
			d.offset += n
			d.mu.Unlock()
			return n, nil
		}
		d.mu.Unlock()

		select {
		case <-d.closed:
			return 0, io.EOF
		default:
		}

		// Polling is good enough for tests; scripts are short.
		select {
		case <-d.closed:
			return 0, io.EOF
		case <-time.After(time.Millisecond):
		}
	}
}

// Close unblocks pending reads with EOF.
func (d *ScriptedDevice) Close() error {
	d.closeMu.Do(func() {
		close(d.closed)
	})
	return nil
}

func marshalEvent(typ, code uint16, value int32) []byte {
	buf := make([]byte, eventSize)
	binary.LittleEndian.PutUint16(buf[timevalSize:], typ)
	binary.LittleEndian.PutUint16(buf[timevalSize+2:], code)
	binary.LittleEndian.PutUint32(buf[timevalSize+4:], uint32(value))
	return buf
}
