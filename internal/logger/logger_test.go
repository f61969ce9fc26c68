package logger

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   zapcore.Level
		wantOK bool
	}{
		{"debug", zapcore.DebugLevel, true},
		{"info", zapcore.InfoLevel, true},
		{"warn", zapcore.WarnLevel, true},
		{"error", zapcore.ErrorLevel, true},
		{"verbose", zapcore.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseLevel(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("parseLevel(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core)).With(String("component", "test"))

	log.Info("hello", Int("n", 1), Bool("ok", true), Error(errors.New("boom")))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["component"] != "test" {
		t.Errorf("component field = %v, want test", ctx["component"])
	}
	if ctx["n"] != int64(1) {
		t.Errorf("n field = %v, want 1", ctx["n"])
	}
	if ctx["error"] != "boom" {
		t.Errorf("error field = %v, want boom", ctx["error"])
	}
}

func TestNewNopDoesNotPanic(t *testing.T) {
	log := NewNop()
	log.Debugf("value %d", 1)
	log.Warn("warn")
	_ = log.Sync()
}
