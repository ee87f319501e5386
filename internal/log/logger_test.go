package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "": slog.LevelInfo,
		"warn": slog.LevelWarn, "warning": slog.LevelWarn, "error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("%q: got %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelDebug, Component: ComponentLedger, Output: &buf})

	l.Info("record saved", FieldRecordID, 7)
	out := buf.String()
	if !strings.Contains(out, "component=ledger") || !strings.Contains(out, "record_id=7") {
		t.Fatalf("unexpected output %q", out)
	}

	buf.Reset()
	l.WithComponent(ComponentStorage).Debug("x")
	if !strings.Contains(buf.String(), "component=storage") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Component: ComponentAMQP, Output: &buf})

	l.LogError(context.Background(), "publish failed", errors.New("boom"), OpPublish, NewFields().WithOwner(3))
	out := buf.String()
	for _, want := range []string{"level=ERROR", "error=boom", "operation=publish", "owner_id=3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestFromContext(t *testing.T) {
	if got := FromContext(context.Background()); got.Component() != "unknown" {
		t.Fatalf("expected fallback logger, got %q", got.Component())
	}

	l := Discard().WithComponent(ComponentCLI)
	if got := FromContext(WithContext(context.Background(), l)); got != l {
		t.Fatalf("expected logger from context")
	}
}
