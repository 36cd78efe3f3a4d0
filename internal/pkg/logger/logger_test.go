package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDebugSuppressedWhenNotVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Debug("hidden", nil)
	log.Info("shown", map[string]interface{}{"query": "go"})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record leaked: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "query=go") {
		t.Fatalf("info record missing fields: %q", out)
	}
}

func TestErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Error("search failed", errors.New("boom"), map[string]interface{}{"b": 2, "a": 1})

	out := buf.String()
	if !strings.Contains(out, "error=boom") {
		t.Fatalf("expected error attribute, got %q", out)
	}
	if strings.Index(out, "a=1") > strings.Index(out, "b=2") {
		t.Fatalf("expected sorted attributes, got %q", out)
	}
}
