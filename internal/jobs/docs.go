// Package jobs provides scheduled background tasks for the laundry service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds precision) and are
// managed through JobManager:
//
//	jobManager := jobs.NewJobManager(sqlDB, cfg.HealthSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// DatabaseHealthJob pings the database on a schedule (DefaultHealthSchedule
// unless configured) and keeps the latest result for GET /health, which
// answers 200 "Healthy" or 503 "Unhealthy".
//
// A failed probe is logged once when the state flips, not on every tick.
package jobs
