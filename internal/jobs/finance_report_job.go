package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"laundry/internal/adapters/out/reports"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/finance"

	"github.com/robfig/cron/v3"
)

// FinanceSummaryReader builds the finance summary of a period.
type FinanceSummaryReader interface {
	Handle(ctx context.Context, query queries.GetFinanceSummaryQuery) (finance.Summary, error)
}

// FinanceReportJob writes the previous day's finance workbook to a directory.
type FinanceReportJob struct {
	handler  FinanceSummaryReader
	workbook reports.FinanceWorkbook
	dir      string
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewFinanceReportJob(
	handler FinanceSummaryReader,
	workbook reports.FinanceWorkbook,
	dir string,
	schedule string,
	logger *slog.Logger,
) *FinanceReportJob {
	return &FinanceReportJob{
		handler:  handler,
		workbook: workbook,
		dir:      dir,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "finance_report_job"),
	}
}

// Start schedules the job.
func (j *FinanceReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Finance report job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Finance report job started", "schedule", j.schedule, "dir", j.dir)
	return nil
}

// Run writes the report for the day before now and returns its path.
func (j *FinanceReportJob) Run(ctx context.Context) (string, error) {
	day := finance.Day(j.now()).AddDate(0, 0, -1)

	query, err := queries.NewGetFinanceSummaryQuery(day, day)
	if err != nil {
		return "", err
	}

	summary, err := j.handler.Handle(ctx, query)
	if err != nil {
		return "", err
	}

	data, err := j.workbook.Generate(summary)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(j.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report dir: %w", err)
	}

	path := filepath.Join(j.dir, fmt.Sprintf("finance-%s.xlsx", day.Format(finance.DateLayout)))
	if err = os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // reports are shared with staff
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	j.logger.InfoContext(ctx, "Finance report written", "path", path, "net", summary.Totals.Net.StringFixed(2))
	return path, nil
}

// Stop stops the finance report job.
func (j *FinanceReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Finance report job stopped")
}
