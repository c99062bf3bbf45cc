// Package jobs provides scheduled background tasks for the grubdash service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager, which offers a unified StartAll/StopAll lifecycle:
//
//	jobManager := jobs.NewJobManager(dishRepo, orderRepo, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is CollectionStatsJob, which logs dish and order
// collection sizes once a minute.
package jobs
