package services

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
	"github.com/brittanydani/mysky-sub002/internal/core/ports/driven"
	"github.com/brittanydani/mysky-sub002/internal/core/ports/driving"
	"github.com/brittanydani/mysky-sub002/internal/logger"
)

// Ensure Scheduler implements the interface.
var _ driving.Scheduler = (*Scheduler)(nil)

// cronParser parses standard five-field cron specs plus descriptors
// like "@daily".
var cronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// RefreshFunc precomputes a reading; wired by the composition root so
// the scheduler doesn't depend on a chart being loaded.
type RefreshFunc func(ctx context.Context) error

// Scheduler manages background task execution: the post-midnight
// reading refresh and shown-record pruning. Task state and run history
// are persisted for crash recovery.
type Scheduler struct {
	config  domain.SchedulerConfig
	store   driven.SchedulerStore
	shown   driven.ShownStore
	refresh RefreshFunc

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewScheduler creates a scheduler with configuration. The refresh
// function and shown store may be nil; their tasks become no-ops. The
// scheduler store is required; Start fails without it.
func NewScheduler(
	config domain.SchedulerConfig,
	store driven.SchedulerStore,
	shown driven.ShownStore,
	refresh RefreshFunc,
) *Scheduler {
	return &Scheduler{
		config:  config,
		store:   store,
		shown:   shown,
		refresh: refresh,
	}
}

// Start begins the scheduler loop. This method blocks until Stop is
// called.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.store == nil {
		return domain.ErrStoreUnavailable
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil // Already running
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.mu.Unlock()

	if err := s.initialiseTasks(ctx); err != nil {
		logger.Warn("scheduler: failed to initialise tasks: %v", err)
	}

	return s.run(ctx)
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	// Wait for running tasks to complete
	s.wg.Wait()

	return nil
}

// initialiseTasks ensures all configured tasks exist in the store.
func (s *Scheduler) initialiseTasks(ctx context.Context) error {
	if taskCfg := s.config.GetTaskConfig(domain.TaskIDDailyRefresh); taskCfg.Enabled {
		if err := s.ensureTask(ctx, domain.TaskIDDailyRefresh, "Daily Reading Refresh", taskCfg); err != nil {
			return err
		}
	}
	if taskCfg := s.config.GetTaskConfig(domain.TaskIDStorePrune); taskCfg.Enabled {
		if err := s.ensureTask(ctx, domain.TaskIDStorePrune, "Shown Record Prune", taskCfg); err != nil {
			return err
		}
	}
	return nil
}

// ensureTask creates or updates a task in the store.
func (s *Scheduler) ensureTask(ctx context.Context, id, name string, cfg domain.TaskConfig) error {
	task, err := s.store.GetTask(ctx, id)
	if err != nil {
		return err
	}

	if task == nil {
		task = &domain.ScheduledTask{
			ID:       id,
			Name:     name,
			CronSpec: cfg.CronSpec,
			Enabled:  cfg.Enabled,
			NextRun:  nextRunAfter(cfg.CronSpec, time.Now()),
		}
	} else {
		if task.CronSpec != cfg.CronSpec {
			task.CronSpec = cfg.CronSpec
			task.NextRun = nextRunAfter(cfg.CronSpec, time.Now())
		}
		task.Enabled = cfg.Enabled
	}

	return s.store.SaveTask(ctx, task)
}

// nextRunAfter computes a cron spec's next firing after t. An
// unparseable spec falls back to the same time tomorrow.
func nextRunAfter(spec string, t time.Time) time.Time {
	sched, err := cronParser.Parse(spec)
	if err != nil {
		logger.Warn("scheduler: bad cron spec %q: %v (defaulting to daily)", spec, err)
		return t.AddDate(0, 0, 1)
	}
	return sched.Next(t)
}

// run is the main scheduler loop.
func (s *Scheduler) run(ctx context.Context) error {
	// Check for due tasks immediately on startup: the machine may
	// have slept through a scheduled firing.
	s.checkAndRunDueTasks(ctx)

	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.checkAndRunDueTasks(ctx)
		}
	}
}

// checkAndRunDueTasks finds and executes tasks that are due.
func (s *Scheduler) checkAndRunDueTasks(ctx context.Context) {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		logger.Warn("scheduler: failed to list tasks: %v", err)
		return
	}

	now := time.Now()
	for i := range tasks {
		task := &tasks[i]
		if !task.Enabled {
			continue
		}
		if task.NextRun.IsZero() || !task.NextRun.After(now) {
			s.runTask(ctx, task)
		}
	}
}

// runTask executes a single task.
func (s *Scheduler) runTask(ctx context.Context, task *domain.ScheduledTask) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		result := &domain.TaskResult{
			TaskID:    task.ID,
			StartedAt: time.Now(),
		}

		var err error
		switch task.ID {
		case domain.TaskIDDailyRefresh:
			err = s.runDailyRefresh(ctx)
		case domain.TaskIDStorePrune:
			result.ItemsProcessed, err = s.runStorePrune(ctx)
		default:
			logger.Warn("scheduler: unknown task ID: %s", task.ID)
			return
		}

		result.EndedAt = time.Now()
		if err != nil {
			result.Success = false
			result.Error = err.Error()
			task.LastError = err.Error()
		} else {
			result.Success = true
			task.LastError = ""
			task.LastSuccess = result.EndedAt
		}

		task.LastRun = result.StartedAt
		task.NextRun = nextRunAfter(task.CronSpec, result.EndedAt)

		if saveErr := s.store.SaveTask(ctx, task); saveErr != nil {
			logger.Warn("scheduler: failed to save task %s: %v", task.ID, saveErr)
		}

		if recordErr := s.store.RecordResult(ctx, result); recordErr != nil {
			logger.Warn("scheduler: failed to record result for %s: %v", task.ID, recordErr)
		}

		// Prune old history (keep last 100 results per task)
		if pruneErr := s.store.PruneHistory(ctx, 100); pruneErr != nil {
			logger.Warn("scheduler: failed to prune history: %v", pruneErr)
		}
	}()
}

// runDailyRefresh precomputes today's reading.
func (s *Scheduler) runDailyRefresh(ctx context.Context) error {
	if s.refresh == nil {
		return nil
	}
	return s.refresh(ctx)
}

// runStorePrune removes expired shown records.
func (s *Scheduler) runStorePrune(ctx context.Context) (int, error) {
	if s.shown == nil {
		return 0, nil
	}
	return s.shown.Prune(ctx, time.Now(), domain.ShownRetentionDays)
}
