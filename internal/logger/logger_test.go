package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"todo/internal/logger"
)

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("warn", &buf)

	log.Debugw("hidden")
	log.Infow("hidden too")
	log.Warnw("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug/info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "value") {
		t.Errorf("expected warn line with fields, got %q", out)
	}
}

func TestNew_UnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("chatty", &buf)

	log.Infow("hidden")
	log.Errorw("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("expected info to be filtered at fallback level, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected error line, got %q", buf.String())
	}
}

func TestNamed(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("debug", &buf).Named("store")

	log.Debugw("loaded")

	if !strings.Contains(buf.String(), "store") {
		t.Errorf("expected logger name in output, got %q", buf.String())
	}
}
