//go:build !linux

package input

import (
	"context"
	"fmt"
)

var errUnsupported = fmt.Errorf("reading input devices is only supported on Linux")

// Discover is not supported on this platform.
func Discover() ([]string, error) {
	return nil, errUnsupported
}

// Name is not supported on this platform.
func Name(path string) (string, error) {
	return "", errUnsupported
}

// Reader is not supported on this platform.
type Reader struct{}

// NewReader is not supported on this platform.
func NewReader(path string, open Opener) (*Reader, error) {
	return nil, errUnsupported
}

// Path returns an empty string on this platform.
func (r *Reader) Path() string {
	return ""
}

// Run is not supported on this platform.
func (r *Reader) Run(ctx context.Context, ch chan<- Event) error {
	return errUnsupported
}

// Close is a no-op on this platform.
func (r *Reader) Close() error {
	return nil
}
