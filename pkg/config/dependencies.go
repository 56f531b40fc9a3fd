package config

import (
	"io"
	"net"
	"os"
)

// Dependencies contains injectable dependencies for testing and customization.
// All fields are optional and will use default implementations if nil.
type Dependencies struct {
	TCPDialer     TCPDialerFunc
	DeviceOpener  DeviceOpenerFunc
	DeviceScanner DeviceScannerFunc
}

// TCPDialerFunc is a function that dials a TCP connection.
// It returns a net.Conn to allow for mock implementations.
type TCPDialerFunc func(network string, laddr, raddr *net.TCPAddr) (net.Conn, error)

// DeviceOpenerFunc is a function that opens an input device for reading.
// It returns an io.ReadCloser to allow for mock implementations.
type DeviceOpenerFunc func(path string) (io.ReadCloser, error)

// DeviceScannerFunc is a function that lists candidate keyboard device paths.
type DeviceScannerFunc func() ([]string, error)

// GetTCPDialerFunc returns the TCP dialer function from dependencies, or a default implementation.
// If deps is nil or deps.TCPDialer is nil, returns a function that uses net.DialTCP.
func GetTCPDialerFunc(deps *Dependencies) TCPDialerFunc {
	if deps != nil && deps.TCPDialer != nil {
		return deps.TCPDialer
	}
	return func(network string, laddr, raddr *net.TCPAddr) (net.Conn, error) {
		return net.DialTCP(network, laddr, raddr)
	}
}

// GetDeviceOpenerFunc returns the device opener function from dependencies, or a default implementation.
// If deps is nil or deps.DeviceOpener is nil, returns a function that uses os.Open.
func GetDeviceOpenerFunc(deps *Dependencies) DeviceOpenerFunc {
	if deps != nil && deps.DeviceOpener != nil {
		return deps.DeviceOpener
	}
	return func(path string) (io.ReadCloser, error) {
		return os.Open(path)
	}
}

// GetDeviceScannerFunc returns the device scanner from dependencies, if any.
// There is no default here: discovery is platform specific and lives in
// pkg/input, which falls back to its own scan when this returns nil.
func GetDeviceScannerFunc(deps *Dependencies) DeviceScannerFunc {
	if deps != nil && deps.DeviceScanner != nil {
		return deps.DeviceScanner
	}
	return nil
}
