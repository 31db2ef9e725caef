package worker

import (
	"fmt"

	"calendar-sync-api/core/config"
	"calendar-sync-api/core/logger"

	"github.com/hibiken/asynq"
)

// RedisOpt builds the asynq connection options from the shared Redis config.
func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// Run starts the background task server. register is called with the mux so
// modules can attach their handlers before the server starts.
func Run(cfg config.RedisConfig, register func(mux *asynq.ServeMux)) error {
	srv := asynq.NewServer(RedisOpt(cfg), asynq.Config{
		Concurrency: 5,
	})

	mux := asynq.NewServeMux()
	register(mux)

	logger.Info("Worker started")
	return srv.Run(mux)
}

// PeriodicTask is one scheduler entry.
type PeriodicTask struct {
	Cronspec string
	Task     *asynq.Task
}

// RunScheduler enqueues the given tasks on their cron schedules.
func RunScheduler(cfg config.RedisConfig, tasks []PeriodicTask) error {
	scheduler := asynq.NewScheduler(RedisOpt(cfg), nil)

	for _, t := range tasks {
		if _, err := scheduler.Register(t.Cronspec, t.Task); err != nil {
			return fmt.Errorf("failed to register periodic task %s: %w", t.Task.Type(), err)
		}
	}

	logger.Info("Scheduler started", "tasks", len(tasks))
	return scheduler.Run()
}
