// Package domain defines core business entities and value objects for gemsearch.
//
// This file contains the search error taxonomy. The domain layer is independent of
// infrastructure concerns; adapters translate their failures into these types.
package domain

import "errors"

// ErrorKind classifies failures surfaced by the search pipeline.
type ErrorKind string

const (
	KindInvalidQuery   ErrorKind = "InvalidQuery"
	KindGeminiNotFound ErrorKind = "GeminiNotFound"
	KindGeminiExec     ErrorKind = "GeminiExecutionError"
	KindUnexpected     ErrorKind = "Unexpected"
)

// Sentinels usable with errors.Is against any *SearchError of the same kind.
var (
	ErrInvalidQuery   = &SearchError{Kind: KindInvalidQuery}
	ErrGeminiNotFound = &SearchError{Kind: KindGeminiNotFound}
	ErrGeminiExec     = &SearchError{Kind: KindGeminiExec}
	ErrUnexpected     = &SearchError{Kind: KindUnexpected}
)

// SearchError is the tagged error returned by the orchestrator.
// Detail carries the human readable part; Err keeps the underlying cause, if any.
type SearchError struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

// NewSearchError builds a SearchError of the given kind.
func NewSearchError(kind ErrorKind, detail string, cause error) *SearchError {
	return &SearchError{Kind: kind, Detail: detail, Err: cause}
}

// Error renders the "<Kind>: <detail>" wire form.
func (e *SearchError) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Detail
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// Is matches on kind so callers can write errors.Is(err, domain.ErrGeminiNotFound).
func (e *SearchError) Is(target error) bool {
	var other *SearchError
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// KindOf returns the kind carried by err, or KindUnexpected for foreign errors.
func KindOf(err error) ErrorKind {
	var se *SearchError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnexpected
}

// Hint returns a static remediation message for the given kind.
func Hint(kind ErrorKind) string {
	switch kind {
	case KindInvalidQuery:
		return "Provide a non-empty query of at most 500 characters."
	case KindGeminiNotFound:
		return "Install the Gemini CLI (npm install -g @google/gemini-cli) and make sure `gemini` is on PATH, or set gemini.binary in the config."
	case KindGeminiExec:
		return "Check that the Gemini CLI is authenticated and works from a terminal: gemini -p \"hello\"."
	default:
		return "Check the server logs for details and try again."
	}
}
