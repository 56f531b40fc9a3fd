//go:build linux

package input

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/unix"
)

const evKey = 1 // EV_KEY

// A raw input_event record is a timeval followed by type (2 bytes),
// code (2 bytes) and value (4 bytes), all in host byte order.
var eventSize = int(unsafe.Sizeof(unix.Timeval{})) + 8

// decodeEvent parses one raw input_event record. ok is false for
// records that are not plain key presses or releases: other event
// types and autorepeat (value 2) are dropped.
func decodeEvent(buf []byte) (Event, bool) {
	typ := binary.LittleEndian.Uint16(buf[eventSize-8:])
	code := binary.LittleEndian.Uint16(buf[eventSize-6:])
	value := int32(binary.LittleEndian.Uint32(buf[eventSize-4:]))

	if typ != evKey || value < 0 || value > 1 {
		return Event{}, false
	}

	return Event{Code: code, Pressed: value == 1}, true
}
