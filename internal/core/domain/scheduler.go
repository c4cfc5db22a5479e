package domain

import "time"

// Well-known scheduler task IDs.
const (
	// TaskIDDailyRefresh precomputes today's reading shortly after
	// midnight so the first app open of the day is instant.
	TaskIDDailyRefresh = "daily_refresh"

	// TaskIDStorePrune removes expired shown-item records.
	TaskIDStorePrune = "store_prune"
)

// ScheduledTask represents a recurring background task.
type ScheduledTask struct {
	// ID is the unique identifier for the task.
	ID string

	// Name is a human-readable name for the task.
	Name string

	// CronSpec is the task's schedule in cron syntax, e.g.
	// "5 0 * * *" for five past midnight.
	CronSpec string

	// LastRun is when the task last ran.
	LastRun time.Time

	// NextRun is when the task should run next.
	NextRun time.Time

	// LastError contains the last error message, if any.
	LastError string

	// LastSuccess is when the task last completed successfully.
	LastSuccess time.Time

	// Enabled indicates whether the task is active.
	Enabled bool
}

// TaskResult represents the outcome of a task execution.
type TaskResult struct {
	// TaskID identifies which task was run.
	TaskID string

	// StartedAt is when the task started.
	StartedAt time.Time

	// EndedAt is when the task completed.
	EndedAt time.Time

	// Success indicates whether the task completed without error.
	Success bool

	// Error contains the error message if Success is false.
	Error string

	// ItemsProcessed is a count of items handled (e.g., records
	// pruned).
	ItemsProcessed int
}

// TaskConfig is the per-task configuration block.
type TaskConfig struct {
	// CronSpec overrides the task's default schedule.
	CronSpec string

	// Enabled toggles the task.
	Enabled bool
}

// SchedulerConfig configures the background scheduler.
type SchedulerConfig struct {
	// Tasks maps task IDs to their configuration.
	Tasks map[string]TaskConfig
}

// GetTaskConfig returns a task's configuration, falling back to an
// enabled daily default when the task is not configured.
func (c SchedulerConfig) GetTaskConfig(taskID string) TaskConfig {
	if cfg, ok := c.Tasks[taskID]; ok {
		return cfg
	}
	return TaskConfig{CronSpec: "5 0 * * *", Enabled: true}
}
