package jobs

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultHealthSchedule probes the database every five seconds.
const DefaultHealthSchedule = "*/5 * * * * *"

const probeTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// DatabaseHealthJob periodically pings the database and remembers the
// outcome of the latest probe for the health endpoint.
type DatabaseHealthJob struct {
	pinger   Pinger
	schedule string
	cron     *cron.Cron
	healthy  atomic.Bool
	logger   *slog.Logger
}

func NewDatabaseHealthJob(pinger Pinger, schedule string, logger *slog.Logger) *DatabaseHealthJob {
	if schedule == "" {
		schedule = DefaultHealthSchedule
	}
	return &DatabaseHealthJob{
		pinger:   pinger,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "database_health_job"),
	}
}

// Start runs one probe synchronously, so the first health check after boot
// is already meaningful, then schedules the rest.
func (j *DatabaseHealthJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Probe); err != nil {
		return err
	}

	j.Probe()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Database health job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running probe to finish.
func (j *DatabaseHealthJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Database health job stopped")
}

func (j *DatabaseHealthJob) Probe() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	err := j.pinger.PingContext(ctx)
	healthy := err == nil
	if previous := j.healthy.Swap(healthy); previous != healthy {
		if healthy {
			j.logger.InfoContext(ctx, "Database is reachable")
		} else {
			j.logger.ErrorContext(ctx, "Database probe failed", "error", err)
		}
	}
}

// Healthy reports the result of the latest probe. It is false before the
// first probe.
func (j *DatabaseHealthJob) Healthy() bool {
	return j.healthy.Load()
}
