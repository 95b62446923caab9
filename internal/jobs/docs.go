// Package jobs provides scheduled background tasks for the fulfillment
// autopilot.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// AutopilotJob - Runs the autopilot sweep on a fixed interval (minutes),
// plus one immediate run at startup.
//
// # Usage
//
//	job := jobs.NewAutopilotJob(runHandler, 3, true, false, logger)
//	if !job.Start() {
//		log.Println("autopilot job already running")
//	}
//	defer job.Stop()
//
// # Error Handling
//
// Runs skipped because another sweep is in flight are silent; all other
// outcomes are logged with their counters. A run that fails to load its
// working set is logged as an error and retried on the next tick.
package jobs
