package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	databaseHealthJob *DatabaseHealthJob
}

func NewJobManager(pinger Pinger, healthSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		databaseHealthJob: NewDatabaseHealthJob(pinger, healthSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.databaseHealthJob.Start(); err != nil {
		return fmt.Errorf("failed to start database health job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.databaseHealthJob.Stop()
}

// Health exposes the database probe for the health endpoint.
func (jm *JobManager) Health() *DatabaseHealthJob {
	return jm.databaseHealthJob
}
