// envcheck is a preflight binary: it loads the configuration, starts the
// configured browser, opens the login page and verifies the page title.
// Run it before a suite to catch environment problems without a test run.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"opencartqa/internal/browser"
	"opencartqa/internal/config"
	"opencartqa/internal/elements"
	"opencartqa/internal/logger"
	"opencartqa/internal/migrations"
	"opencartqa/internal/pages"
	"opencartqa/internal/report"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "envcheck: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logger.Env, cfg.Logger.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	log.Info("environment check starting",
		zap.String("env", cfg.Env),
		zap.String("browser", cfg.Browser),
		zap.String("login_url", cfg.LoginURL))

	kind, err := browser.ParseKind(cfg.Browser)
	if err != nil {
		return err
	}

	factory := browser.NewFactory(cfg, log)
	sess, err := factory.NewSession(context.Background(), kind, false, "", "envcheck")
	if err != nil {
		return fmt.Errorf("start browser: %w", err)
	}
	defer func() {
		if err := sess.Close(); err != nil {
			log.Warn("session teardown", zap.Error(err))
		}
	}()

	e := elements.New(sess.Page(), cfg.Flash, log)
	lp, err := pages.NewLoginPage(e, cfg, log)
	if err != nil {
		return fmt.Errorf("open login page: %w", err)
	}

	title, err := lp.Title()
	if err != nil {
		return fmt.Errorf("read page title: %w", err)
	}
	if title != pages.LoginPageTitle {
		return fmt.Errorf("unexpected login page title %q, want %q", title, pages.LoginPageTitle)
	}

	log.Info("environment check passed", zap.String("title", title))

	historySummary(cfg, log)
	return nil
}

// historySummary logs the most recent runs when a history DSN is
// configured, so a preflight also confirms the store is reachable.
func historySummary(cfg *config.Config, log *zap.Logger) {
	dsn := cfg.Report.HistoryDSN
	if dsn == "" {
		return
	}
	if err := migrations.Run("file://"+cfg.Resolve(cfg.Report.Migrations), dsn, log); err != nil {
		log.Warn("run-history migrations failed", zap.Error(err))
		return
	}
	store, err := report.NewStore(dsn, log)
	if err != nil {
		log.Warn("run-history store unavailable", zap.Error(err))
		return
	}
	runs, err := store.Runs(5)
	if err != nil {
		log.Warn("run-history query failed", zap.Error(err))
		return
	}
	for _, r := range runs {
		log.Info("previous run",
			zap.String("id", r.ID),
			zap.String("env", r.Env),
			zap.String("browser", r.Browser),
			zap.Time("started_at", r.StartedAt),
			zap.Int("total", r.Total),
			zap.Int("failed", r.Failed))
	}
}
