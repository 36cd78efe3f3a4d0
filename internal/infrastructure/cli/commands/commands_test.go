package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/doeshing/gemsearch/internal/app"
	"github.com/doeshing/gemsearch/internal/domain"
	"github.com/doeshing/gemsearch/internal/infrastructure/executor"
)

// newTestContainer builds a container whose gemini binary is a shell script stub.
func newTestContainer(t *testing.T, script string) *app.Container {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stubs require a POSIX shell")
	}
	t.Setenv("GEMSEARCH_GEMINI_BINARY", "")
	t.Setenv("GEMSEARCH_CACHE_TTL", "")
	t.Setenv("GEMSEARCH_HISTORY_MAX", "")
	t.Setenv("GEMSEARCH_HTTP_ADDR", "")

	dir := t.TempDir()
	bin := filepath.Join(dir, "gemini")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	cfgPath := filepath.Join(dir, "config.yaml")
	raw := "gemini:\n  binary: " + bin + "\ncache:\n  ttl: 30m\n"
	if err := os.WriteFile(cfgPath, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	container, err := app.BuildContainer(context.Background(), cfgPath, false)
	if err != nil {
		t.Fatalf("BuildContainer error: %v", err)
	}
	return container
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestSearchCommandPrintsResult(t *testing.T) {
	container := newTestContainer(t, `printf 'results for %s\n' "$2"`)

	out, _, err := run(t, NewSearchCommand(container), "go", "generics")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if out != "results for WebSearch: go generics\n" {
		t.Fatalf("output = %q", out)
	}
	if container.Cache.Len() != 1 {
		t.Fatalf("cache entries = %d; want 1", container.Cache.Len())
	}

	_, _, err = run(t, NewSearchCommand(container), "--no-cache", "other")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if container.Cache.Len() != 1 {
		t.Fatal("--no-cache must not store results")
	}
}

func TestSearchCommandReportsFailure(t *testing.T) {
	container := newTestContainer(t, "printf 'not authenticated' >&2\nexit 1\n")

	_, errOut, err := run(t, NewSearchCommand(container), "anything")
	if !errors.Is(err, domain.ErrGeminiExec) {
		t.Fatalf("err = %v; want GeminiExecutionError", err)
	}
	var reported *ReportedError
	if !errors.As(err, &reported) {
		t.Fatalf("err = %T; want *ReportedError so the message is printed once", err)
	}
	if n := strings.Count(errOut, "not authenticated"); n != 1 {
		t.Fatalf("stderr mentions the failure %d times: %q", n, errOut)
	}
	if !strings.Contains(errOut, "GeminiExecutionError: not authenticated") {
		t.Fatalf("stderr = %q", errOut)
	}
	if !strings.Contains(errOut, domain.Hint(domain.KindGeminiExec)) {
		t.Fatalf("stderr missing hint: %q", errOut)
	}
	if recs := container.SearchService.RecentHistory(0, true); len(recs) != 1 || recs[0].Success {
		t.Fatalf("history = %+v; want one failed record", recs)
	}
}

func TestSearchCommandJSON(t *testing.T) {
	container := newTestContainer(t, "printf 'ok'")

	out, _, err := run(t, NewSearchCommand(container), "--json", "q")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	var payload searchOutput
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Query != "q" || payload.Result != "ok" || payload.Kind != "" {
		t.Fatalf("payload = %+v", payload)
	}

	out, _, err = run(t, NewSearchCommand(container), "--json", "   ")
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("err = %v; want InvalidQuery", err)
	}
	var reported *ReportedError
	if !errors.As(err, &reported) {
		t.Fatalf("err = %T; want *ReportedError", err)
	}
	payload = searchOutput{}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Kind != string(domain.KindInvalidQuery) || payload.Hint == "" {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestSearchCommandExportsHistory(t *testing.T) {
	container := newTestContainer(t, "printf 'ok'")
	dest := filepath.Join(t.TempDir(), "out", "history.jsonl")

	if _, _, err := run(t, NewSearchCommand(container), "--export-history", dest, "q"); err != nil {
		t.Fatalf("search error: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var rec domain.HistoryRecord
	if err := json.Unmarshal(bytes.TrimSpace(data), &rec); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if rec.Query != "q" || !rec.Success {
		t.Fatalf("record = %+v", rec)
	}

	dbPath := filepath.Join(t.TempDir(), "history.db")
	if _, _, err := run(t, NewSearchCommand(container), "--export-history", dbPath, "q"); err != nil {
		t.Fatalf("search error: %v", err)
	}
	if info, err := os.Stat(dbPath); err != nil || info.Size() == 0 {
		t.Fatalf("sqlite export missing: %v", err)
	}
}

func TestConfigCommands(t *testing.T) {
	container := newTestContainer(t, "printf 'ok'")

	out, _, err := run(t, NewConfigCommand(container), "show")
	if err != nil {
		t.Fatalf("config show error: %v", err)
	}
	if !strings.Contains(out, "ttl: 30m") {
		t.Fatalf("config show = %q", out)
	}

	out, _, err = run(t, NewConfigCommand(container), "get", "--key", "cache.ttl")
	if err != nil {
		t.Fatalf("config get error: %v", err)
	}
	if strings.TrimSpace(out) != "30m" {
		t.Fatalf("config get = %q", out)
	}

	if _, _, err := run(t, NewConfigCommand(container), "get", "--key", "cache.missing"); err == nil {
		t.Fatal("expected unknown key error")
	}
	if _, _, err := run(t, NewConfigCommand(container), "get"); err == nil || err.Error() != ErrKeyRequired {
		t.Fatalf("err = %v; want %q", err, ErrKeyRequired)
	}

	out, _, err = run(t, NewConfigCommand(container), "validate")
	if err != nil {
		t.Fatalf("config validate error: %v", err)
	}
	if strings.TrimSpace(out) != MsgConfigurationValid {
		t.Fatalf("config validate = %q", out)
	}

	out, _, err = run(t, NewConfigCommand(container), "diff")
	if err != nil {
		t.Fatalf("config diff error: %v", err)
	}
	if !strings.Contains(out, "30m") || strings.Contains(out, MsgNoDifferencesFromDefault) {
		t.Fatalf("config diff = %q", out)
	}

	out, _, err = run(t, NewConfigCommand(container), "path")
	if err != nil {
		t.Fatalf("config path error: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "config.yaml") {
		t.Fatalf("config path = %q", out)
	}
}

func TestDoctorCommand(t *testing.T) {
	container := newTestContainer(t, "printf 'ok'")

	out, _, err := run(t, NewDoctorCommand(container))
	if err != nil {
		t.Fatalf("doctor error: %v\n%s", err, out)
	}
	if !strings.HasPrefix(out, "ok ") || !strings.Contains(out, "0 failures") {
		t.Fatalf("doctor output = %q", out)
	}

	if _, _, err := run(t, NewDoctorCommand(&app.Container{})); err == nil || err.Error() != ErrDoctorServiceUnavailable {
		t.Fatalf("err = %v; want %q", err, ErrDoctorServiceUnavailable)
	}
}

func TestVersionCommand(t *testing.T) {
	container := &app.Container{Config: domain.Config{Server: domain.ServerSettings{Name: "web-search"}}}

	out, _, err := run(t, NewVersionCommand(container))
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(out, "gemsearch ") {
		t.Fatalf("version output = %q", out)
	}
	if !strings.Contains(out, "mcp server: web-search ") {
		t.Fatalf("version output missing server name: %q", out)
	}
	if !strings.Contains(out, `gemini -p "WebSearch: <query>"`) {
		t.Fatalf("version output missing default backend: %q", out)
	}
}

func TestDoctorCommandFailingBinary(t *testing.T) {
	container := newTestContainer(t, "printf 'ok'")
	container.DoctorService.Locator = executor.NewGeminiExecutor(filepath.Join(t.TempDir(), "missing"))

	out, _, err := run(t, NewDoctorCommand(container))
	var reported *ReportedError
	if !errors.As(err, &reported) {
		t.Fatalf("err = %v; want *ReportedError", err)
	}
	if !strings.Contains(out, "FAIL") || !strings.Contains(out, "1 failures") {
		t.Fatalf("doctor output = %q", out)
	}
}

func TestConfigInitWritesTemplate(t *testing.T) {
	container := newTestContainer(t, "printf 'ok'")
	cfgPath := container.ConfigLoader.Path()

	if _, _, err := run(t, NewConfigCommand(container), "init"); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}
	if _, _, err := run(t, NewConfigCommand(container), "init", "--force"); err != nil {
		t.Fatalf("config init error: %v", err)
	}

	cfg, err := container.ConfigLoader.Load(context.Background())
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if cfg.Gemini.Binary != domain.DefaultGeminiBinary || cfg.Cache.TTL != "1h" || cfg.History.MaxRecords != domain.MaxHistory {
		t.Fatalf("template config = %+v", cfg)
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Fatalf("stat config: %v", err)
	}
}
