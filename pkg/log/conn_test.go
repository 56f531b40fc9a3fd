package log

import (
	"net"
	"os"
	"path/filepath"
	"testing"
)

func TestNewLoggedConn_RecordsWrites(t *testing.T) {
	t.Parallel()

	client, server := net.Pipe()
	defer server.Close()

	path := filepath.Join(t.TempDir(), "commands.log")

	lc, err := NewLoggedConn(client, path)
	if err != nil {
		t.Fatalf("NewLoggedConn() error: %s", err)
	}

	go func() {
		buf := make([]byte, 64)
		server.Read(buf)
	}()

	msg := []byte("startorsplit\r\n")
	if _, err := lc.Write(msg); err != nil {
		t.Fatalf("Write() error: %s", err)
	}
	if err := lc.Close(); err != nil {
		t.Fatalf("Close() error: %s", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("os.ReadFile(%s): %s", path, err)
	}
	if string(data) != string(msg) {
		t.Errorf("log file content = %q, want %q", data, msg)
	}
}

func TestNewLoggedConn_BadPath(t *testing.T) {
	t.Parallel()

	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	if _, err := NewLoggedConn(client, "/nonexistent/dir/commands.log"); err == nil {
		t.Error("NewLoggedConn() with bad path should fail")
	}
}
