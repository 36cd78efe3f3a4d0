package executor

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"

	"github.com/doeshing/gemsearch/internal/domain"
	"github.com/doeshing/gemsearch/internal/ports"
)

// GeminiExecutor runs web searches through the Gemini CLI.
type GeminiExecutor struct {
	binary string
}

// NewGeminiExecutor builds a new executor, binary defaults to "gemini" resolved via PATH.
func NewGeminiExecutor(binary string) *GeminiExecutor {
	if binary == "" {
		binary = domain.DefaultGeminiBinary
	}
	return &GeminiExecutor{binary: binary}
}

// Binary returns the configured executable name or path.
func (e *GeminiExecutor) Binary() string {
	return e.binary
}

// Locate resolves the executable the way Invoke would.
func (e *GeminiExecutor) Locate() (string, error) {
	return exec.LookPath(e.binary)
}

// Invoke implements ports.SearchExecutor.
//
// The child gets no timeout and cannot be cancelled; the call returns once the
// process exits.
func (e *GeminiExecutor) Invoke(query string) (string, error) {
	c := exec.Command(e.binary, "-p", domain.SearchPromptPrefix+query)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	if err == nil {
		return stdout.String(), nil
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		return "", domain.NewSearchError(domain.KindGeminiExec, stderr.String(), err)
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return "", domain.NewSearchError(domain.KindGeminiNotFound,
			fmt.Sprintf("%s executable not found; is the Gemini CLI installed and on PATH?", e.binary), err)
	default:
		return "", domain.NewSearchError(domain.KindUnexpected, err.Error(), err)
	}
}

var _ ports.SearchExecutor = (*GeminiExecutor)(nil)
