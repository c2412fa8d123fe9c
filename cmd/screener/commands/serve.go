package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/techscreener/internal/api"
	"github.com/wonny/techscreener/internal/api/handlers"
	"github.com/wonny/techscreener/internal/render"
	"github.com/wonny/techscreener/internal/scheduler"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "웹 UI 서버 시작",
	Long: `스크리너 웹 UI 서버를 시작합니다.

이 명령어는:
- 시작 시 stats → stocks → sectors 로드
- HTML UI와 웹소켓 변경 피드 제공
- REFRESH_SCHEDULE 설정 시 주기적 갱신

Endpoints:
  GET  /                          - 스크리너 화면
  POST /filters                   - 필터 적용
  POST /filters/reset             - 필터 초기화
  POST /filters/preset            - 프리셋 적용
  POST /stocks/{ticker}           - 종목 상세 열기
  POST /watchlist                 - 관심종목 열기
  POST /watchlist/{ticker}/view   - 관심종목에서 상세로 이동
  POST /watchlist/{ticker}/toggle - 관심종목 추가/제거
  POST /theme/toggle              - 다크 모드 전환
  GET  /export.csv                - CSV 내보내기
  GET  /ws                        - 변경 피드
  GET  /health                    - Health check

Example:
  go run ./cmd/screener serve
  go run ./cmd/screener serve --port 8090`,
	RunE: runServe,
}

var (
	servePort string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	// Flags
	serveCmd.Flags().StringVar(&servePort, "port", "", "웹 서버 포트 (default PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Println("=== NASDAQ Tech Screener ===")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Wire config, storage and session
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if servePort != "" {
		a.cfg.Port = servePort
	}
	if a.cfg.RefreshSchedule != "" {
		if err := scheduler.ValidateSchedule(a.cfg.RefreshSchedule); err != nil {
			return fmt.Errorf("REFRESH_SCHEDULE: %w", err)
		}
	}

	// 2. Initial load; failures degrade the UI instead of aborting
	if err := a.session.LoadAll(ctx); err != nil {
		a.log.WithError(err).Warn("Initial load incomplete")
	}

	// 3. Change feed and templates
	hub := api.NewHub(a.session, a.log)
	go hub.Run(ctx)

	html, err := render.NewHTML()
	if err != nil {
		return err
	}

	// 4. Background refresh
	handlerSet := api.Handlers{
		Screen:     handlers.NewScreenHandler(a.session, html, a.log),
		Preference: handlers.NewPreferenceHandler(a.session, a.log),
		Export:     handlers.NewExportHandler(a.session, a.log),
		Hub:        hub,
	}
	if a.cfg.RefreshSchedule != "" {
		sched, err := newRefreshScheduler(a, a.cfg.RefreshSchedule)
		if err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()
		handlerSet.Jobs = sched
	}

	// 5. Router and server
	server := api.New(a.cfg, a.log, api.NewRouter(handlerSet, a.log))

	// 6. Start server with graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	fmt.Printf("\n✅ Server running on http://localhost:%s\n", a.cfg.Port)
	fmt.Println("\nPress Ctrl+C to stop")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	a.log.Info("Server stopped")
	return nil
}
