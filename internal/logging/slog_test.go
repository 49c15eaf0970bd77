package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNewTextLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, "warn")
	ctx := context.Background()

	log.Debug(ctx, "dbg")
	log.Info(ctx, "inf")
	log.Warn(ctx, "wrn")
	log.Error(ctx, "err")

	out := buf.String()
	if strings.Contains(out, "msg=dbg") || strings.Contains(out, "msg=inf") {
		t.Fatalf("below-threshold lines leaked:\n%s", out)
	}
	for _, want := range []string{"level=WARN", "msg=wrn", "level=ERROR", "msg=err"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestNewTextLogger_UnknownLevelMeansInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, "chatty")
	ctx := context.Background()

	log.Debug(ctx, "dbg")
	log.Info(ctx, "inf")

	out := buf.String()
	if strings.Contains(out, "msg=dbg") {
		t.Fatalf("debug should be filtered at info level:\n%s", out)
	}
	if !strings.Contains(out, "msg=inf") {
		t.Fatalf("info line missing:\n%s", out)
	}
}

func TestSlogLogger_WithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, "debug").With("component", "session")

	log.Info(context.Background(), "restored", "email", "alice@example.org")

	out := buf.String()
	for _, want := range []string{"component=session", "msg=restored", "email=alice@example.org"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
