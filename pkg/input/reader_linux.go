//go:build linux

package input

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/muesli/cancelreader"
)

// Reader reads key events from a single input device. The device file
// is wrapped in a cancelable reader so a blocking read can be
// interrupted on shutdown.
type Reader struct {
	path string
	rc   io.ReadCloser
	cr   cancelreader.CancelReader
}

// NewReader opens the device at path using the given opener.
func NewReader(path string, open Opener) (*Reader, error) {
	rc, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %s", path, err)
	}

	r := &Reader{
		path: path,
		rc:   rc,
	}

	// Not all readers support cancelation; fall back to plain reads,
	// which then only unblock when the device is closed.
	if cr, err := cancelreader.NewReader(rc); err == nil {
		r.cr = cr
	}

	return r, nil
}

// Path returns the device path this reader was opened with.
func (r *Reader) Path() string {
	return r.path
}

// Run reads input events and sends key events to ch until the context
// is cancelled or the device fails. A device reaching EOF ends the run
// without error.
func (r *Reader) Run(ctx context.Context, ch chan<- Event) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			r.Close()
		case <-done:
		}
	}()

	buf := make([]byte, eventSize*16)
	var pending []byte

	for {
		n, err := r.read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			for len(pending) >= eventSize {
				if ev, ok := decodeEvent(pending[:eventSize]); ok {
					select {
					case ch <- ev:
					case <-ctx.Done():
						return nil
					}
				}
				pending = pending[eventSize:]
			}
		}
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, cancelreader.ErrCanceled) || err == io.EOF {
				return nil
			}
			return fmt.Errorf("reading %s: %s", r.path, err)
		}
	}
}

func (r *Reader) read(buf []byte) (int, error) {
	if r.cr != nil {
		return r.cr.Read(buf)
	}
	return r.rc.Read(buf)
}

// Close cancels any pending read and closes the device.
func (r *Reader) Close() error {
	if r.cr != nil {
		r.cr.Cancel()
	}
	return r.rc.Close()
}
