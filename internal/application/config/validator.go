package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doeshing/gemsearch/internal/domain"
)

// Validate ensures config structure is consistent. All problems are reported together.
func Validate(cfg domain.Config) error {
	return errors.Join(
		validateGemini(cfg.Gemini),
		validateCache(cfg.Cache),
		validateHistory(cfg.History),
		validateServer(cfg.Server),
	)
}

func validateGemini(g domain.GeminiSettings) error {
	if strings.TrimSpace(g.Binary) == "" {
		return fmt.Errorf("gemini.binary must be set")
	}
	return nil
}

func validateCache(cache domain.CacheSettings) error {
	if cache.TTL == "" {
		return nil
	}
	d, err := time.ParseDuration(cache.TTL)
	if err != nil {
		return fmt.Errorf("cache.ttl invalid: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("cache.ttl must be > 0")
	}
	return nil
}

func validateHistory(history domain.HistorySettings) error {
	if history.MaxRecords < 0 || history.MaxRecords > domain.MaxHistory {
		return fmt.Errorf("history.max_records must be between 0 and %d, got %d", domain.MaxHistory, history.MaxRecords)
	}
	return nil
}

func validateServer(server domain.ServerSettings) error {
	if server.HTTPAddr != "" && !strings.Contains(server.HTTPAddr, ":") {
		return fmt.Errorf("server.http_addr must be host:port, got %s", server.HTTPAddr)
	}
	return nil
}
