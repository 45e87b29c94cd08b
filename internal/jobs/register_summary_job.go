package jobs

import (
	"context"
	"log/slog"
	"time"

	"burgercounter/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// RegisterSummaryJob logs the register totals of the day that just closed.
// Runs at midnight UTC so each summary covers a complete day.
type RegisterSummaryJob struct {
	handler queries.GetRegisterReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRegisterSummaryJob creates a new job for the daily register summary.
// Uses GetRegisterReportQueryHandler to compute the closed day's totals.
func NewRegisterSummaryJob(handler queries.GetRegisterReportQueryHandler, logger *slog.Logger) *RegisterSummaryJob {
	return &RegisterSummaryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "register_summary_job"),
	}
}

// Start schedules the summary job at midnight UTC.
func (j *RegisterSummaryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 0 * * *", func() {
		ctx := context.Background()

		dayEnd := time.Now().UTC().Truncate(24 * time.Hour).Add(-time.Nanosecond)
		dayStart := time.Now().UTC().Truncate(24 * time.Hour).Add(-24 * time.Hour)

		query, err := queries.NewGetRegisterReportQuery(dayStart, dayEnd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Register summary job failed to build query", "error", err)
			return
		}

		report, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Register summary job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Daily register summary",
			"day", dayStart.Format(time.DateOnly),
			"entries", report.Entries.String(),
			"exits", report.Exits.String(),
			"credits", report.Credits.String(),
			"balance", report.Balance.String(),
			"orders", report.OrderCount,
			"average_ticket", report.AverageTicket.String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Register summary job started (running at midnight UTC)")
	return nil
}

// Stop stops the register summary job.
func (j *RegisterSummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Register summary job stopped")
}
