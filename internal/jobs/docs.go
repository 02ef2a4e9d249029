// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. FulfillmentProgressionJob - Runs every minute to advance in-flight orders one fulfillment stage forward
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceFulfillmentHandler, logger)
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
// The fulfillment job uses the cron expression "0 * * * * *" which means it
// runs once a minute. Each tick moves every order in fulfillment a single
// stage (Processing -> Shipped -> Out for Delivery -> Delivered), assigns
// tracking details when an order ships, and publishes status change
// notifications.
//
// # Error Handling
//
// - Orders updated concurrently by a customer request are skipped on the
//   current tick and picked up on the next one
// - All other failures are logged as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
