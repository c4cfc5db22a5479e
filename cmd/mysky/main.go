// Command mysky is the entry point. It wires the driven adapters into
// the core services and hands them to the CLI. Every adapter is
// optional: a missing chart file, ephemeris file or database degrades
// the reading rather than blocking it.
package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	chartfile "github.com/brittanydani/mysky-sub002/internal/adapters/driven/chart/file"
	configfile "github.com/brittanydani/mysky-sub002/internal/adapters/driven/config/file"
	contentfile "github.com/brittanydani/mysky-sub002/internal/adapters/driven/content/file"
	"github.com/brittanydani/mysky-sub002/internal/adapters/driven/ephemeris/fixed"
	"github.com/brittanydani/mysky-sub002/internal/adapters/driven/moonphase/arith"
	"github.com/brittanydani/mysky-sub002/internal/adapters/driven/patterns/simple"
	"github.com/brittanydani/mysky-sub002/internal/adapters/driven/storage/memory"
	"github.com/brittanydani/mysky-sub002/internal/adapters/driven/storage/sqlite"
	"github.com/brittanydani/mysky-sub002/internal/adapters/driving/cli"
	"github.com/brittanydani/mysky-sub002/internal/core/domain"
	"github.com/brittanydani/mysky-sub002/internal/core/ports/driven"
	"github.com/brittanydani/mysky-sub002/internal/core/services"
	"github.com/brittanydani/mysky-sub002/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)

	config, err := configfile.NewConfigStore("")
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
	}

	shown, journalStore, schedStore := openStores(config)
	pools := loadPools(config)
	ephemeris := openEphemeris(config)

	transits := services.NewTransitService()
	activation := services.NewActivationService(simple.New(), arith.New())
	selection := services.NewSelectionService(shown)
	journal := services.NewJournalService(journalStore)

	reading := services.NewReadingService(ephemeris, transits, activation, selection, pools)
	reading.SetJournalService(journal)

	scheduler := services.NewScheduler(
		schedulerConfig(config),
		schedStore,
		shown,
		func(ctx context.Context) error { return refreshToday(ctx, reading) },
	)

	cli.SetServices(reading, journal)
	cli.SetScheduler(scheduler)
	cli.Execute()
}

// openStores opens the sqlite store, falling back to in-memory stores
// when the database cannot be opened.
func openStores(config *configfile.ConfigStore) (driven.ShownStore, driven.JournalStore, driven.SchedulerStore) {
	dataDir := ""
	if config != nil {
		dataDir = config.GetString("storage.dir")
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		logger.Warn("sqlite unavailable, selections will not persist: %v", err)
		return memory.NewShownStore(), memory.NewJournalStore(), nil
	}
	return store.ShownStore(), store.JournalStore(), store.SchedulerStore()
}

// loadPools loads the four content pools. A pool that fails to load is
// simply absent; selection reports the empty pool.
func loadPools(config *configfile.ConfigStore) map[domain.PoolKind]domain.ContentPool {
	corpusDir := ""
	if config != nil {
		corpusDir = config.GetString("content.dir")
	}
	source := contentfile.NewContentSource(corpusDir)

	kinds := []domain.PoolKind{
		domain.PoolQuotes, domain.PoolGuidance,
		domain.PoolPrompts, domain.PoolClosings,
	}
	pools := make(map[domain.PoolKind]domain.ContentPool, len(kinds))
	for _, kind := range kinds {
		pool, err := source.LoadPool(context.Background(), kind)
		if err != nil {
			logger.Warn("content pool %s unavailable: %v", kind, err)
			continue
		}
		pools[kind] = pool
	}
	return pools
}

// openEphemeris loads the fixed ephemeris file. A missing file leaves
// the ephemeris nil; readings degrade to no transit signals.
func openEphemeris(config *configfile.ConfigStore) driven.Ephemeris {
	path := ""
	if config != nil {
		path = config.GetString("ephemeris.file")
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".mysky", "ephemeris.toml")
	}

	ephemeris, err := fixed.Load(path)
	if err != nil {
		logger.Debug("ephemeris unavailable: %v", err)
		return nil
	}
	return ephemeris
}

// schedulerConfig reads per-task cron overrides from config.
func schedulerConfig(config *configfile.ConfigStore) domain.SchedulerConfig {
	tasks := make(map[string]domain.TaskConfig)
	if config != nil {
		for _, id := range []string{domain.TaskIDDailyRefresh, domain.TaskIDStorePrune} {
			spec := config.GetString("scheduler." + id + ".cron")
			if spec == "" {
				continue
			}
			tasks[id] = domain.TaskConfig{CronSpec: spec, Enabled: true}
		}
	}
	return domain.SchedulerConfig{Tasks: tasks}
}

// refreshToday precomputes today's reading so the shown-item records
// exist before the app is opened.
func refreshToday(ctx context.Context, reading *services.ReadingService) error {
	path, err := chartfile.DefaultPath()
	if err != nil {
		return err
	}
	chart, err := chartfile.Load(path)
	if err != nil {
		return err
	}
	_, err = reading.DailyReading(ctx, chart, time.Now())
	return err
}
