//go:build linux

package input

import (
	"encoding/binary"
	"testing"
)

func rawEvent(typ, code uint16, value int32) []byte {
	buf := make([]byte, eventSize)
	binary.LittleEndian.PutUint16(buf[eventSize-8:], typ)
	binary.LittleEndian.PutUint16(buf[eventSize-6:], code)
	binary.LittleEndian.PutUint32(buf[eventSize-4:], uint32(value))
	return buf
}

func TestDecodeEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		typ    uint16
		code   uint16
		value  int32
		want   Event
		wantOk bool
	}{
		{"key press", evKey, 57, 1, Event{Code: 57, Pressed: true}, true},
		{"key release", evKey, 57, 0, Event{Code: 57, Pressed: false}, true},
		{"autorepeat dropped", evKey, 57, 2, Event{}, false},
		{"non-key event dropped", 2, 0, 1, Event{}, false}, // EV_REL
		{"sync event dropped", 0, 0, 0, Event{}, false},    // EV_SYN
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := decodeEvent(rawEvent(tc.typ, tc.code, tc.value))
			if ok != tc.wantOk {
				t.Fatalf("decodeEvent() ok = %t, want %t", ok, tc.wantOk)
			}
			if ok && got != tc.want {
				t.Errorf("decodeEvent() = %+v, want %+v", got, tc.want)
			}
		})
	}
}
