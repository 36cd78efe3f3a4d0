package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSearchErrorRendering(t *testing.T) {
	err := NewSearchError(KindGeminiExec, "quota exceeded", nil)
	if got := err.Error(); got != "GeminiExecutionError: quota exceeded" {
		t.Fatalf("Error() = %q", got)
	}
	if got := (&SearchError{Kind: KindUnexpected}).Error(); got != "Unexpected" {
		t.Fatalf("Error() without detail = %q", got)
	}
}

func TestSearchErrorMatchesByKind(t *testing.T) {
	cause := errors.New("exec: not found")
	err := fmt.Errorf("wrapped: %w", NewSearchError(KindGeminiNotFound, "gemini missing", cause))

	if !errors.Is(err, ErrGeminiNotFound) {
		t.Fatal("expected errors.Is to match GeminiNotFound")
	}
	if errors.Is(err, ErrInvalidQuery) {
		t.Fatal("kinds must not cross-match")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable")
	}
	if KindOf(err) != KindGeminiNotFound {
		t.Fatalf("KindOf() = %s", KindOf(err))
	}
	if KindOf(errors.New("plain")) != KindUnexpected {
		t.Fatal("foreign errors should classify as Unexpected")
	}
}

func TestHintPerKind(t *testing.T) {
	seen := map[string]ErrorKind{}
	for _, kind := range []ErrorKind{KindInvalidQuery, KindGeminiNotFound, KindGeminiExec, KindUnexpected} {
		hint := Hint(kind)
		if hint == "" {
			t.Fatalf("Hint(%s) is empty", kind)
		}
		if prev, ok := seen[hint]; ok {
			t.Fatalf("Hint(%s) duplicates Hint(%s)", kind, prev)
		}
		seen[hint] = kind
	}
}
