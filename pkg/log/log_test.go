package log

import "testing"

func TestNew(t *testing.T) {
	t.Parallel()

	l := New(1)
	if l == nil {
		t.Fatal("New() returned nil")
	}
	if got := l.Verbosity(); got != 1 {
		t.Errorf("Verbosity() = %d, want 1", got)
	}
}

func TestLogger_Verbosity_Nil(t *testing.T) {
	t.Parallel()

	var l *Logger
	if got := l.Verbosity(); got != 0 {
		t.Errorf("nil Logger Verbosity() = %d, want 0", got)
	}
}

func TestLogger_SuppressedLevels(t *testing.T) {
	t.Parallel()

	// These must not panic regardless of level; output goes to stderr.
	l := New(0)
	l.VerboseMsg("suppressed %s\n", "verbose")
	l.DebugMsg("suppressed %s\n", "debug")

	l = New(2)
	l.VerboseMsg("shown %s\n", "verbose")
	l.DebugMsg("shown %s\n", "debug")
}
