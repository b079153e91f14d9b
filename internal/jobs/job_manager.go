package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	clockJob *ClockJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(clockJob *ClockJob) *JobManager {
	return &JobManager{
		clockJob: clockJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.clockJob.Start(); err != nil {
		return fmt.Errorf("failed to start clock job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.clockJob.Stop()
}
