package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/techscreener/internal/render"
	"github.com/wonny/techscreener/internal/scheduler"
	"github.com/wonny/techscreener/internal/scheduler/jobs"
)

// defaultRefreshSchedule registers the job when REFRESH_SCHEDULE is unset.
// The refresh command never starts the cron loop, so it only labels the job.
const defaultRefreshSchedule = "@every 5m"

// refreshCmd represents the refresh command
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "갱신 작업 1회 실행",
	Long: `백그라운드 갱신 작업(stats, sectors, stocks 병렬 로드)을 즉시 1회 실행합니다.

serve가 REFRESH_SCHEDULE로 돌리는 작업과 같은 경로를 탑니다.
백엔드 연결 확인과 소요 시간 측정에 사용합니다.

Example:
  go run ./cmd/screener refresh`,
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

// newRefreshScheduler registers the refresh job on a new scheduler
func newRefreshScheduler(a *app, schedule string) (*scheduler.Scheduler, error) {
	sched := scheduler.New(a.log).WithTimeout(a.cfg.ScreenerAPI.Timeout * 3)
	if err := sched.AddJob(jobs.NewRefreshJob(a.session, schedule, a.log)); err != nil {
		return nil, fmt.Errorf("schedule refresh: %w", err)
	}
	return sched, nil
}

func runRefresh(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	schedule := a.cfg.RefreshSchedule
	if schedule == "" {
		schedule = defaultRefreshSchedule
	}
	sched, err := newRefreshScheduler(a, schedule)
	if err != nil {
		return err
	}

	result, err := sched.RunJob(jobs.RefreshJobName)
	if err != nil {
		return err
	}

	PrintHeader("Screener Refresh")
	PrintKeyValue("Job", result.JobName, 12)
	PrintKeyValue("Schedule", schedule, 12)
	PrintKeyValue("Duration", result.Duration.String(), 12)

	stats := sched.GetJobStats()[jobs.RefreshJobName]
	PrintKeyValue("Success", fmt.Sprintf("%d/%d", stats.SuccessCount, stats.TotalRuns), 12)

	if !result.Success {
		PrintError("Refresh failed: " + result.Error)
		return fmt.Errorf("refresh failed: %s", result.Error)
	}

	snap := a.session.Snapshot()
	view := render.BuildStats(snap.Stats)
	PrintSeparator()
	PrintKeyValue("Stocks", fmt.Sprintf("%d", len(snap.Working)), 12)
	PrintKeyValue("Sectors", fmt.Sprintf("%d", len(snap.Sectors)), 12)
	PrintKeyValue("Avg P/E", view.AveragePE, 12)
	PrintSuccess("Refresh completed")
	return nil
}
