// Package jobs provides scheduled background tasks for the burger counter.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the cash register.
//
// # Available Jobs
//
// 1. RegisterSummaryJob - Runs at midnight UTC to log the closed day's register totals
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reportHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The summary job uses the cron expression "0 0 0 * * *", firing once a day
// right after the UTC day rolls over, so the summary covers a complete day.
//
// # Error Handling
//
// The summary job logs failures and retries on the next tick; a missed
// summary never blocks the API.
package jobs
