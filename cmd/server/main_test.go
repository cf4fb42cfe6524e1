package main

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/veloz/fondos/internal/infrastructure/config"
)

func TestSetupLogger_ParsesLevel(t *testing.T) {
	orig := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(orig)

	setupLogger(&config.Config{LogLevel: "debug", LogFormat: "json"})
	if got := zerolog.GlobalLevel(); got != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %s", got)
	}

	setupLogger(&config.Config{LogLevel: "not-a-level", LogFormat: "json"})
	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Fatalf("expected fallback to info level, got %s", got)
	}
}
