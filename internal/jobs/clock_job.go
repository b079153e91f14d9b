package jobs

import (
	"context"
	"log/slog"

	"showcase/internal/core/domain/calendar"
	"showcase/internal/pkg/journal"

	"github.com/robfig/cron/v3"
	"github.com/zoobzio/clockz"
)

// DefaultClockSchedule fires at the start of every minute.
const DefaultClockSchedule = "0 * * * * *"

// ClockJob periodically records the current date and time in the journal.
type ClockJob struct {
	clock    clockz.Clock
	journal  *journal.Journal
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewClockJob creates a job running on a six-field cron schedule (seconds first).
// An empty schedule falls back to DefaultClockSchedule.
func NewClockJob(clock clockz.Clock, j *journal.Journal, schedule string, logger *slog.Logger) *ClockJob {
	if schedule == "" {
		schedule = DefaultClockSchedule
	}
	return &ClockJob{
		clock:    clock,
		journal:  j,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "clock_job"),
	}
}

// Tick records one entry. Start schedules it; tests call it directly.
func (j *ClockJob) Tick(ctx context.Context) string {
	now := calendar.FormatNow(j.clock)
	j.journal.Log("Текущая дата и время: " + now)
	j.logger.DebugContext(ctx, "Clock tick recorded", "now", now)
	return now
}

// Start registers the job with its schedule and starts the scheduler.
func (j *ClockJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Tick(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Clock job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running tick to finish.
func (j *ClockJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Clock job stopped")
}
