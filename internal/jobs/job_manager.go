// Package jobs provides scheduled background tasks for the delivery system,
// implemented with github.com/robfig/cron/v3. The only job today is the
// session auto-close sweep that force-closes sessions outliving the daily
// shift window.
package jobs

import (
	"fmt"
	"log/slog"

	"delivery/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sessionAutoCloseJob *SessionAutoCloseJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	autoCloseHandler commands.AutoCloseSessionsCommandHandler,
	cronSpec string,
	window ShiftWindow,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sessionAutoCloseJob: NewSessionAutoCloseJob(autoCloseHandler, cronSpec, window, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionAutoCloseJob.Start(); err != nil {
		return fmt.Errorf("failed to start session auto-close job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionAutoCloseJob.Stop()
}
