package jobs

import (
	"context"

	"github.com/wonny/techscreener/pkg/logger"
)

// RefreshJobName identifies the refresh job in the scheduler
const RefreshJobName = "screener_refresh"

// Refresher reloads screener data from the backend
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshJob periodically reloads stats, sectors and the stock list
type RefreshJob struct {
	session  Refresher
	schedule string
	logger   *logger.Logger
}

// NewRefreshJob creates a new refresh job
func NewRefreshJob(session Refresher, schedule string, log *logger.Logger) *RefreshJob {
	return &RefreshJob{
		session:  session,
		schedule: schedule,
		logger:   log,
	}
}

// Name returns the job name
func (j *RefreshJob) Name() string {
	return RefreshJobName
}

// Schedule returns the configured cron schedule
func (j *RefreshJob) Schedule() string {
	return j.schedule
}

// Run executes one refresh
func (j *RefreshJob) Run(ctx context.Context) error {
	j.logger.Debug("Starting scheduled screener refresh")
	return j.session.Refresh(ctx)
}
