package config

import (
	"io"
	"net"
	"testing"
)

func TestGetTCPDialerFunc_Default(t *testing.T) {
	t.Parallel()

	if got := GetTCPDialerFunc(nil); got == nil {
		t.Error("GetTCPDialerFunc(nil) returned nil")
	}
	if got := GetTCPDialerFunc(&Dependencies{}); got == nil {
		t.Error("GetTCPDialerFunc(&Dependencies{}) returned nil")
	}
}

func TestGetTCPDialerFunc_Injected(t *testing.T) {
	t.Parallel()

	called := false
	deps := &Dependencies{
		TCPDialer: func(network string, laddr, raddr *net.TCPAddr) (net.Conn, error) {
			called = true
			return nil, nil
		},
	}

	dial := GetTCPDialerFunc(deps)
	dial("tcp", nil, nil)

	if !called {
		t.Error("injected TCP dialer was not used")
	}
}

func TestGetDeviceOpenerFunc_Injected(t *testing.T) {
	t.Parallel()

	deps := &Dependencies{
		DeviceOpener: func(path string) (io.ReadCloser, error) {
			return nil, nil
		},
	}

	open := GetDeviceOpenerFunc(deps)
	if rc, err := open("/nonexistent"); rc != nil || err != nil {
		t.Errorf("injected opener not used: got (%v, %v)", rc, err)
	}
}

func TestGetDeviceOpenerFunc_Default(t *testing.T) {
	t.Parallel()

	open := GetDeviceOpenerFunc(nil)
	if _, err := open("/nonexistent/device"); err == nil {
		t.Error("default opener opened a nonexistent path")
	}
}

func TestGetDeviceScannerFunc(t *testing.T) {
	t.Parallel()

	if got := GetDeviceScannerFunc(nil); got != nil {
		t.Error("GetDeviceScannerFunc(nil) should return nil")
	}

	deps := &Dependencies{
		DeviceScanner: func() ([]string, error) {
			return []string{"/dev/input/event0"}, nil
		},
	}
	scan := GetDeviceScannerFunc(deps)
	if scan == nil {
		t.Fatal("GetDeviceScannerFunc did not return the injected scanner")
	}
	paths, err := scan()
	if err != nil || len(paths) != 1 {
		t.Errorf("scan() = (%v, %v), want one path", paths, err)
	}
}
