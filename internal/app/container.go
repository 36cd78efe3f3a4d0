package app

import (
	"context"

	appconfig "github.com/doeshing/gemsearch/internal/application/config"
	"github.com/doeshing/gemsearch/internal/application/doctor"
	"github.com/doeshing/gemsearch/internal/application/search"
	"github.com/doeshing/gemsearch/internal/domain"
	"github.com/doeshing/gemsearch/internal/infrastructure/cache"
	"github.com/doeshing/gemsearch/internal/infrastructure/config"
	"github.com/doeshing/gemsearch/internal/infrastructure/executor"
	"github.com/doeshing/gemsearch/internal/infrastructure/history"
	"github.com/doeshing/gemsearch/internal/pkg/logger"
	"github.com/doeshing/gemsearch/internal/ports"
)

// Container wires up application services with infrastructure adapters.
// It is built once per process; the cache and history it owns live exactly as long.
type Container struct {
	Config        domain.Config
	ConfigLoader  *config.FileLoader
	SearchService *search.Service
	DoctorService *doctor.Service
	Cache         *cache.MemoryCache
	History       *history.Ledger
	Executor      *executor.GeminiExecutor
	Logger        ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, configPath string, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader(configPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	return assemble(cfg, cfgLoader, log), nil
}

// assemble never fails on a bad config: invalid values fall back to defaults with a
// warning so that doctor and config validate can still run and report them.
func assemble(cfg domain.Config, cfgLoader *config.FileLoader, log ports.Logger) *Container {
	if err := appconfig.Validate(cfg); err != nil {
		log.Warn("invalid configuration, using defaults for rejected values", map[string]interface{}{
			"error": err.Error(),
		})
	}

	resultCache := cache.NewMemoryCache(cache.ParseTTL(cfg.Cache.TTL))
	ledger := history.NewLedger(cfg.History.MaxRecords)
	gemini := executor.NewGeminiExecutor(cfg.Gemini.Binary)

	searchService := &search.Service{
		Cache:    resultCache,
		History:  ledger,
		Executor: gemini,
		Logger:   log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Locator:        gemini,
		Search:         searchService,
	}

	log.Debug("container ready", map[string]interface{}{
		"gemini":      gemini.Binary(),
		"cache_ttl":   resultCache.TTL().String(),
		"history_max": ledger.Max(),
	})

	return &Container{
		Config:        cfg,
		ConfigLoader:  cfgLoader,
		SearchService: searchService,
		DoctorService: doctorService,
		Cache:         resultCache,
		History:       ledger,
		Executor:      gemini,
		Logger:        log,
	}
}
