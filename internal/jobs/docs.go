// Package jobs runs scheduled background tasks with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// TrackingSummaryJob logs the number of trackers per step on a configurable
// schedule ("@every 5m" by default). It never moves a tracker: steps only
// change through seller actions.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(stepSummaryHandler, "@every 1m", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Schedules use the standard five-field cron syntax or descriptors such as
// "@hourly" and "@every 30s".
package jobs
