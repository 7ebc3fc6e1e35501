package logging

import (
	"testing"

	"github.com/mikey/phish-scan/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestInitLoggerDefaults(t *testing.T) {
	cfg := config.NewFromViper(config.NewEmptyViper())
	if got := cfg.GetString("logging.output"); got != "stdout" {
		t.Fatalf("default output = %q, want stdout", got)
	}

	logger, err := InitLogger(cfg)
	if err != nil {
		t.Fatalf("InitLogger: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug enabled at the default level")
	}
	if !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info disabled at the default level")
	}
}

func TestInitLoggerDebugJSON(t *testing.T) {
	cfg := config.NewFromViper(config.NewEmptyViper())
	cfg.Set("logging.level", "debug")
	cfg.Set("logging.format", "json")

	logger, err := InitLogger(cfg)
	if err != nil {
		t.Fatalf("InitLogger: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level not applied")
	}
}

func TestInitLoggerBadOutput(t *testing.T) {
	cfg := config.NewFromViper(config.NewEmptyViper())
	cfg.Set("logging.output", "bogus-scheme://nowhere")

	if _, err := InitLogger(cfg); err == nil {
		t.Fatal("expected error for unusable output path")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for name, want := range tests {
		if got := parseLevel(name); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}
