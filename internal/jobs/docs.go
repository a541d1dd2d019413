// Package jobs provides scheduled background tasks for the order sync service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with seconds).
//
// # Available Jobs
//
// 1. OutboxRelayJob - publishes committed order events from the outbox to Kafka (every second by default)
// 2. OutboxPurgeJob - deletes relayed outbox messages older than the retention period (hourly by default)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewOutboxRelayJob(relayHandler, relayCmd, "", logger),
//		jobs.NewOutboxPurgeJob(purgeHandler, purgeCmd, "", logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Job failures are logged and retried on the next tick
// - A relay tick is skipped while the previous one is still running
// - Failed job starts will stop any already running jobs
package jobs
