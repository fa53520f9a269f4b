// Package jobs provides scheduled background tasks for the laundry shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field format with seconds.
//
// # Available Jobs
//
// 1. StaleOrderJob - cancels customer orders still pending after STALE_ORDER_HOURS
// 2. FinanceReportJob - writes the previous day's finance workbook to REPORT_DIR
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewStaleOrderJob(cancelStaleOrdersHandler, 48*time.Hour, "0 */15 * * * *", logger),
//		jobs.NewFinanceReportJob(financeSummaryHandler, reports.NewFinanceWorkbook(), "reports", "0 5 0 * * *", logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Failed job starts stop any
// already running jobs.
package jobs
