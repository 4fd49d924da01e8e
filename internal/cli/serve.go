package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	appLog "notecal/internal/log"
	"notecal/internal/web"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve extracted events over HTTP",
	Long: `serve runs the HTTP API (/api/events, /calendar.ics, /api/preview,
/health), rescanning the vault on the configured cron schedule and on
filesystem changes.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "HTTP listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	conf, v, err := loadSetup()
	if err != nil {
		return err
	}
	if serveListen != "" {
		conf.Listen = serveListen
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := web.NewServer(conf, v)
	srv.Refresh()

	// Periodic rescan on the configured schedule.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(conf.RefreshCron, srv.Refresh); err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Rescan on filesystem changes too, debounced.
	go func() {
		if err := v.Watch(ctx, 500*time.Millisecond, srv.Refresh); err != nil {
			appLog.Error("vault watch stopped", err)
		}
	}()

	httpSrv := &http.Server{
		Addr:    conf.Listen,
		Handler: srv.Handler(),
	}
	go func() {
		<-ctx.Done()
		appLog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	appLog.Info("notecal serving",
		"listen", "http://"+conf.Listen,
		"vault", conf.Vault,
		"refresh", conf.RefreshCron,
	)
	if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
