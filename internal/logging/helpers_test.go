package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersAreNilSafe(t *testing.T) {
	Debug(nil, "ignored")
	Info(nil, "ignored")
	Warn(nil, "ignored")
	Error(nil, "ignored", errors.New("boom"))
	if ForLeague(nil, "NBA") != nil {
		t.Fatalf("expected nil logger to stay nil")
	}
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "failed", errors.New("boom"), FieldLeague, "NBA")

	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "league=NBA") {
		t.Fatalf("expected error and league fields, got %s", out)
	}
}

func TestDebugRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	Debug(logger, "hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug suppressed at info level, got %s", buf.String())
	}

	logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Debug(logger, "day scanned", FieldDate, "2024-01-15")
	if !strings.Contains(buf.String(), "date=2024-01-15") {
		t.Fatalf("expected debug line, got %s", buf.String())
	}
}

func TestForLeagueAddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := ForLeague(slog.New(slog.NewTextHandler(&buf, nil)), "NHL")

	Info(logger, "scan finished")
	if !strings.Contains(buf.String(), "league=NHL") {
		t.Fatalf("expected league field, got %s", buf.String())
	}
}
