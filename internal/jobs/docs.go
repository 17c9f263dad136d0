// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(remindPendingOffersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OfferReminderJob runs hourly and reminds composers of orders sitting in
// PENDING or OFFER_PENDING through the notification dispatcher. Requests
// never expire on their own; the reminder is the only background activity,
// and it performs no state changes.
package jobs
