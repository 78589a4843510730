package di

import (
	"fmt"

	"github.com/aristath/folio/internal/config"
	"github.com/aristath/folio/internal/events"
	"github.com/aristath/folio/internal/fixtures"
	"github.com/aristath/folio/internal/modules/holdings"
	"github.com/aristath/folio/internal/modules/intelligence"
	"github.com/rs/zerolog"
)

// Wire initializes all dependencies and returns a fully configured container.
// Order of operations:
// 1. Load the seed (built-in fixtures or FOLIO_SEED_FILE)
// 2. Initialize the event bus and stores
// 3. Initialize services
// 4. Register handlers and jobs
func Wire(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	seed, err := loadSeed(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed: %w", err)
	}

	container := &Container{Config: cfg, Seed: seed}

	if err := InitializeStores(container, log); err != nil {
		return nil, fmt.Errorf("failed to initialize stores: %w", err)
	}

	if err := InitializeServices(container, cfg, log); err != nil {
		container.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	InitializeHandlers(container, log)

	if err := RegisterJobs(container, cfg, log); err != nil {
		container.Close()
		return nil, fmt.Errorf("failed to register jobs: %w", err)
	}

	log.Info().
		Int("assets", container.HoldingsStore.Len()).
		Int("news", container.NewsRepository.Len()).
		Msg("Dependency injection wiring completed successfully")

	return container, nil
}

func loadSeed(cfg *config.Config, log zerolog.Logger) (fixtures.Seed, error) {
	if cfg.SeedFile == "" {
		log.Debug().Msg("Using built-in fixtures")
		return fixtures.Default(), nil
	}

	seed, err := fixtures.LoadFile(cfg.SeedFile)
	if err != nil {
		return fixtures.Seed{}, err
	}
	log.Info().Str("path", cfg.SeedFile).Msg("Loaded seed file")
	return seed, nil
}

// InitializeStores creates the event bus and the in-memory stores and loads the seed
func InitializeStores(container *Container, log zerolog.Logger) error {
	container.EventBus = events.NewBus()
	container.EventManager = events.NewManager(container.EventBus, log)

	container.HoldingsStore = holdings.NewStore(container.EventManager, log)
	if err := container.HoldingsStore.Load(container.Seed.Assets); err != nil {
		return fmt.Errorf("failed to load holdings: %w", err)
	}

	container.NewsRepository = intelligence.NewNewsRepository(log)
	container.NewsRepository.Replace(container.Seed.News)

	return nil
}
