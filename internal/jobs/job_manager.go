package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
	outboxPurgeJob *OutboxPurgeJob
}

// NewJobManager creates a job manager for already constructed jobs.
func NewJobManager(outboxRelayJob *OutboxRelayJob, outboxPurgeJob *OutboxPurgeJob) *JobManager {
	return &JobManager{
		outboxRelayJob: outboxRelayJob,
		outboxPurgeJob: outboxPurgeJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.outboxPurgeJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start outbox purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxPurgeJob.Stop()
	jm.outboxRelayJob.Stop()
}
