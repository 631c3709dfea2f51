package blitpass

import (
	"context"
	"log/slog"
	"os"
	"testing"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("default logger is nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at all levels")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	custom := slog.New(slog.NewTextHandler(os.Stderr, nil))
	SetLogger(custom)
	if Logger() != custom {
		t.Error("Logger() did not return the logger set by SetLogger")
	}

	// nil restores the silent default.
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() is nil after SetLogger(nil)")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("logger should be silent after SetLogger(nil)")
	}
}
