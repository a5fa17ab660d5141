package jobs

import (
	"context"
	"log/slog"
	"time"

	"delivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ShiftWindow bounds the daily working window the auto-close sweep covers.
// Hours are local to the scheduler's clock.
type ShiftWindow struct {
	StartHour int
	EndHour   int
}

// SessionAutoCloseJob force-closes delivery sessions that outlived the
// daily shift window. The sweep runs on a cron schedule (by default once,
// after the shift ends) and completes each overdue session independently,
// so one broken session never blocks the rest.
type SessionAutoCloseJob struct {
	handler  commands.AutoCloseSessionsCommandHandler
	cronSpec string
	window   ShiftWindow
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionAutoCloseJob creates the auto-close job. The cron spec uses the
// six-field format with seconds, e.g. "0 0 20 * * *" for 20:00 daily.
func NewSessionAutoCloseJob(
	handler commands.AutoCloseSessionsCommandHandler,
	cronSpec string,
	window ShiftWindow,
	logger *slog.Logger,
) *SessionAutoCloseJob {
	return &SessionAutoCloseJob{
		handler:  handler,
		cronSpec: cronSpec,
		window:   window,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_auto_close_job"),
	}
}

// Start schedules the auto-close sweep.
func (j *SessionAutoCloseJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session auto-close job started",
		"cron", j.cronSpec,
		"shiftStartHour", j.window.StartHour,
		"shiftEndHour", j.window.EndHour)
	return nil
}

// Stop stops the auto-close job.
func (j *SessionAutoCloseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session auto-close job stopped")
}

// sweep closes every open session that started within today's shift window.
// The sweep always runs to completion; per-session failures are logged by
// the handler and skipped.
func (j *SessionAutoCloseJob) sweep() {
	ctx := context.Background()
	from, to := j.todayWindow(time.Now())

	cmd, err := commands.NewAutoCloseSessionsCommand(from, to)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session auto-close sweep misconfigured", "error", err)
		return
	}

	closed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session auto-close sweep failed", "error", err)
		return
	}

	if closed > 0 {
		j.logger.InfoContext(ctx, "Session auto-close sweep finished", "closed", closed)
	}
}

// todayWindow anchors the configured shift hours on the given day.
func (j *SessionAutoCloseJob) todayWindow(now time.Time) (time.Time, time.Time) {
	year, month, day := now.Date()
	from := time.Date(year, month, day, j.window.StartHour, 0, 0, 0, now.Location())
	to := time.Date(year, month, day, j.window.EndHour, 0, 0, 0, now.Location())
	return from, to
}
