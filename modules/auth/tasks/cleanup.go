package tasks

import (
	"context"

	"calendar-sync-api/core/constants"
	"calendar-sync-api/core/database"
	"calendar-sync-api/core/logger"
	"calendar-sync-api/modules/auth/repository"

	"github.com/hibiken/asynq"
)

// NewCleanupOAuthStatesTask builds the periodic task that sweeps expired
// oauth_states rows.
func NewCleanupOAuthStatesTask() *asynq.Task {
	return asynq.NewTask(constants.TaskCleanupOAuthStates, nil)
}

// Register attaches the auth module's task handlers to the worker mux.
func Register(mux *asynq.ServeMux, db database.Database) {
	repo := repository.NewAuthRepository(db)
	mux.HandleFunc(constants.TaskCleanupOAuthStates, func(ctx context.Context, _ *asynq.Task) error {
		deleted, err := repo.CleanupExpiredOAuthStates(ctx)
		if err != nil {
			logger.Error("Tasks:CleanupOAuthStates", "error", err)
			return err
		}
		if deleted > 0 {
			logger.Info("Tasks:CleanupOAuthStates", "deleted", deleted)
		}
		return nil
	})
}
