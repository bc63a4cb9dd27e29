package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerPromotesComponent(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	WithComponent(logger, "settings").Info("patched key", slog.String("key", "update_time"))

	line := buf.String()
	if !strings.Contains(line, "INFO settings: patched key") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "key=update_time") {
		t.Fatalf("expected key attribute, got %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be promoted out of the attr list: %q", line)
	}
}

func TestConsoleHandlerQuotesAwkwardValues(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, new(slog.LevelVar)))

	logger.Info("scan warning", slog.String("path", "/mods/My Mod.mod"))

	if !strings.Contains(buf.String(), `path="/mods/My Mod.mod"`) {
		t.Fatalf("expected quoted path, got %q", buf.String())
	}
}

func TestConsoleHandlerLevelGate(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info line should be suppressed: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestFromContextFallsBack(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected no-op logger, got nil")
	}

	logger := NewNop()
	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Fatal("expected stored logger back")
	}
}
