package cmd

import (
	"context"
	"log/slog"
	"testing"

	"workend/config"
)

func TestResolveServePort(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Serve.Port = 9090

	tests := []struct {
		name      string
		flagSet   bool
		flagValue int
		want      int
	}{
		{name: "config when flag unset", flagSet: false, flagValue: 0, want: 9090},
		{name: "flag wins", flagSet: true, flagValue: 8484, want: 8484},
		{name: "non-positive flag falls back", flagSet: true, flagValue: 0, want: 9090},
	}

	for _, tt := range tests {
		if got := resolveServePort(tt.flagSet, tt.flagValue, cfg); got != tt.want {
			t.Fatalf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestNewServeLogger_VerboseEnablesDebug(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if newServeLogger(false).Enabled(ctx, slog.LevelDebug) {
		t.Fatalf("expected debug disabled by default")
	}
	if !newServeLogger(true).Enabled(ctx, slog.LevelDebug) {
		t.Fatalf("expected debug enabled with verbose")
	}
}

func TestListenAddr_BindsLoopbackOnly(t *testing.T) {
	t.Parallel()

	if got := listenAddr(8484); got != "localhost:8484" {
		t.Fatalf("expected localhost:8484, got %q", got)
	}
}
