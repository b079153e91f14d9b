// Package jobs provides scheduled background tasks for the showcase service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ClockJob - records the current date and time (dd-MM-yyyy HH:mm:ss) in the
// shared journal on a configurable schedule
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	clockJob := jobs.NewClockJob(clockz.RealClock, journal, "0 * * * * *", logger)
//	jobManager := jobs.NewJobManager(clockJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules have six fields, seconds first. The default "0 * * * * *" fires
// once a minute. An unparsable schedule makes Start fail.
package jobs
