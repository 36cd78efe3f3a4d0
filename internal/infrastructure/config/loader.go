package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/gemsearch/internal/domain"
	"github.com/doeshing/gemsearch/internal/pkg/filesystem"
	"github.com/doeshing/gemsearch/internal/ports"
)

// Environment variables consulted by the loader.
const (
	EnvConfigPath   = "GEMSEARCH_CONFIG"
	EnvGeminiBinary = "GEMSEARCH_GEMINI_BINARY"
	EnvCacheTTL     = "GEMSEARCH_CACHE_TTL"
	EnvHistoryMax   = "GEMSEARCH_HISTORY_MAX"
	EnvHTTPAddr     = "GEMSEARCH_HTTP_ADDR"
)

// FileLoader loads YAML configuration from ~/.gemsearch/config.yaml (overridable via GEMSEARCH_CONFIG).
// A .env file in the working directory is read first so it can supply the overrides.
type FileLoader struct {
	overridePath string
	envFiles     []string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string, envFiles ...string) *FileLoader {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	return &FileLoader{overridePath: path, envFiles: envFiles}
}

// Load implements ports.ConfigProvider. A missing file yields the defaults.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	l.loadEnvFiles()

	cfg := DefaultConfig()
	data, err := os.ReadFile(l.Path())
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, err
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return domain.Config{}, err
	}

	applyEnvOverrides(&cfg)
	return hydrateDefaults(cfg), nil
}

// Path returns the config file location that Load reads.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".gemsearch", "config.yaml")
}

// Marshal renders cfg as YAML.
func Marshal(cfg domain.Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// loadEnvFiles populates unset variables; values already in the environment win.
func (l *FileLoader) loadEnvFiles() {
	var existing []string
	for _, f := range l.envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		_ = godotenv.Load(existing...)
	}
}

func applyEnvOverrides(cfg *domain.Config) {
	if v := os.Getenv(EnvGeminiBinary); v != "" {
		cfg.Gemini.Binary = v
	}
	if v := os.Getenv(EnvCacheTTL); v != "" {
		cfg.Cache.TTL = v
	}
	if v := os.Getenv(EnvHistoryMax); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.History.MaxRecords = n
		}
	}
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		cfg.Server.HTTPAddr = v
	}
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Gemini: domain.GeminiSettings{
			Binary: domain.DefaultGeminiBinary,
		},
		Cache: domain.CacheSettings{
			TTL: domain.DefaultCacheTTL.String(),
		},
		History: domain.HistorySettings{
			MaxRecords: domain.MaxHistory,
		},
		Server: domain.ServerSettings{
			Name:     domain.DefaultServerName,
			HTTPAddr: domain.DefaultHTTPAddr,
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Gemini.Binary == "" {
		cfg.Gemini.Binary = domain.DefaultGeminiBinary
	}
	if cfg.Cache.TTL == "" {
		cfg.Cache.TTL = domain.DefaultCacheTTL.String()
	}
	if cfg.History.MaxRecords == 0 {
		cfg.History.MaxRecords = domain.MaxHistory
	}
	if cfg.Server.Name == "" {
		cfg.Server.Name = domain.DefaultServerName
	}
	if cfg.Server.HTTPAddr == "" {
		cfg.Server.HTTPAddr = domain.DefaultHTTPAddr
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
