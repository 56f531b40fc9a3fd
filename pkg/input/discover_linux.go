//go:build linux

package input

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

const byPathDir = "/dev/input/by-path"
const devInputDir = "/dev/input"

// Discover returns the paths of keyboard devices. It prefers the
// stable by-path symlinks ending in "-event-kbd" and falls back to
// scanning /dev/input against the sysfs key capability bitmap on
// systems without a by-path directory.
func Discover() ([]string, error) {
	devices, err := filepath.Glob(filepath.Join(byPathDir, "*-event-kbd"))
	if err == nil && len(devices) > 0 {
		sort.Strings(devices)
		return devices, nil
	}

	devices, err = discoverSysfs()
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %s", devInputDir, err)
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("no keyboard devices found under %s or %s (is the user in the 'input' group?)", byPathDir, devInputDir)
	}

	sort.Strings(devices)
	return devices, nil
}

func discoverSysfs() ([]string, error) {
	entries, err := os.ReadDir(devInputDir)
	if err != nil {
		return nil, err
	}

	var devices []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "event") {
			continue
		}
		if isKeyboard(e.Name()) {
			devices = append(devices, filepath.Join(devInputDir, e.Name()))
		}
	}
	return devices, nil
}

func isKeyboard(eventName string) bool {
	capsPath := filepath.Join("/sys/class/input", eventName, "device", "capabilities", "key")
	data, err := os.ReadFile(capsPath)
	if err != nil {
		return false
	}
	// Real keyboards have long key capability bitmaps.
	caps := strings.TrimSpace(string(data))
	return len(caps) > 10
}

// eviocgname builds the EVIOCGNAME ioctl request for a buffer of the
// given size: _IOC(_IOC_READ, 'E', 0x06, size).
func eviocgname(size int) uintptr {
	const iocRead = 2
	return uintptr(iocRead<<30 | size<<16 | 'E'<<8 | 0x06)
}

// Name returns the human-readable device name reported by the kernel.
func Name(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("os.Open(%s): %s", path, err)
	}
	defer f.Close()

	buf := make([]byte, 256)
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), eviocgname(len(buf)), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return "", fmt.Errorf("ioctl(EVIOCGNAME, %s): %s", path, errno)
	}

	return string(bytes.TrimRight(buf, "\x00")), nil
}
