package doctor

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	appconfig "github.com/doeshing/gemsearch/internal/application/config"
	"github.com/doeshing/gemsearch/internal/domain"
	"github.com/doeshing/gemsearch/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Locator        ports.BinaryLocator
	Search         domain.SearchService
}

// Run executes checks and returns a report. The error is non-nil when any check failed.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := appconfig.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("format version %s", cfg.ConfigFormatVersion)))
	}

	checks = append(checks, s.binaryCheck())

	if s.Search != nil {
		checks = append(checks, cacheCheck(s.Search.CacheStatus()), historyCheck(s.Search.HistoryStats()))
	} else {
		checks = append(checks, warn("Search service", "not initialized"))
	}

	report := domain.HealthReport{Checks: checks}
	if report.Failed() {
		return report, fmt.Errorf("one or more checks failed")
	}
	return report, nil
}

func (s *Service) binaryCheck() domain.HealthCheck {
	if s.Locator == nil {
		return warn("Gemini CLI", "executor not initialized")
	}
	path, err := s.Locator.Locate()
	if err != nil {
		return fail("Gemini CLI", fmt.Sprintf("%s not found: %v. %s", s.Locator.Binary(), err, domain.Hint(domain.KindGeminiNotFound)))
	}
	return ok("Gemini CLI", path)
}

func cacheCheck(status domain.CacheStatus) domain.HealthCheck {
	if status.TotalEntries == 0 {
		return ok("Result cache", fmt.Sprintf("empty, ttl %.0f minutes", status.TTLMinutes))
	}
	oldest := status.Entries[0]
	return ok("Result cache", fmt.Sprintf("%d entries, ttl %.0f minutes, oldest stored %s",
		status.TotalEntries, status.TTLMinutes, humanize.Time(oldest.Timestamp)))
}

func historyCheck(stats domain.HistoryStats) domain.HealthCheck {
	details := fmt.Sprintf("%d records (%d ok, %d failed, %d cache hits)",
		stats.Total, stats.Succeeded, stats.Failed, stats.CacheHits)
	if stats.Total > 0 && stats.Failed == stats.Total {
		return warn("History", details)
	}
	return ok("History", details)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
