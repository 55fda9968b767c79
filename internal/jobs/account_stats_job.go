package jobs

import (
	"context"
	"log/slog"

	"courieraccounts/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// AccountStatsJob periodically reports the number of registered courier accounts.
// Runs every minute and writes the current count to the structured log.
type AccountStatsJob struct {
	handler queries.GetActiveAccountsCountQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAccountStatsJob creates a new job for reporting account statistics.
// Uses GetActiveAccountsCountQueryHandler to read the count every minute.
func NewAccountStatsJob(handler queries.GetActiveAccountsCountQueryHandler, logger *slog.Logger) *AccountStatsJob {
	return &AccountStatsJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "account_stats_job"),
	}
}

// Start begins the account stats job to run every minute.
func (j *AccountStatsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetActiveAccountsCountQuery()

		count, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Account stats job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Registered courier accounts", "count", count)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Account stats job started (running every minute)")
	return nil
}

// Stop stops the account stats job.
func (j *AccountStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Account stats job stopped")
}
