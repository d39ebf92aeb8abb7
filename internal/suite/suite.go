// Package suite wires the shared test fixtures: configuration, logging,
// browser sessions, page objects and reporting. Each top-level Test function
// gets its own browser session through New; the config, logger, factory and
// reporter are built once for the whole binary.
package suite

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"opencartqa/internal/browser"
	"opencartqa/internal/config"
	"opencartqa/internal/elements"
	"opencartqa/internal/logger"
	"opencartqa/internal/migrations"
	"opencartqa/internal/pages"
	"opencartqa/internal/report"
)

var (
	flagBrowser        = flag.String("browser", "", "browser to run against (chrome, firefox, edge); empty uses the config value")
	flagBrowserVersion = flag.String("browser-version", "latest", "browser version for remote execution")
	flagRemote         = flag.Bool("remote", false, "run against the remote grid instead of a local browser")
	flagE2E            = flag.Bool("e2e", false, "run browser end-to-end tests")
)

var (
	initOnce sync.Once
	initErr  error

	cfg      *config.Config
	log      *zap.Logger
	factory  *browser.Factory
	reporter report.Reporter = report.Noop{}
	kind     browser.Kind
)

// Main is the TestMain body for e2e packages: run the tests, then flush the
// reporter. Use as os.Exit(suite.Main(m)).
func Main(m *testing.M) int {
	flag.Parse()
	code := m.Run()
	if err := reporter.Finish(); err != nil {
		fmt.Fprintf(os.Stderr, "finish report: %v\n", err)
		if code == 0 {
			code = 1
		}
	}
	return code
}

func initialize() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	log, err = logger.New(cfg.Logger.Env, cfg.Logger.Level)
	if err != nil {
		return err
	}

	name := cfg.Browser
	if *flagBrowser != "" {
		name = *flagBrowser
	}
	kind, err = browser.ParseKind(name)
	if err != nil {
		return err
	}

	factory = browser.NewFactory(cfg, log)

	reporter = buildReporter()
	reporter.StartRun(report.Run{
		ID:        uuid.NewString(),
		Env:       cfg.Env,
		Browser:   string(kind),
		StartedAt: time.Now(),
	})
	return nil
}

func buildReporter() report.Reporter {
	var reporters report.Multi

	if cfg.Report.Dir != "" {
		reporters = append(reporters, report.NewHTMLReporter(cfg.Resolve(cfg.Report.Dir)))
	}

	if dsn := cfg.Report.HistoryDSN; dsn != "" {
		if err := migrations.Run("file://"+cfg.Resolve(cfg.Report.Migrations), dsn, log); err != nil {
			log.Warn("run-history migrations failed, history disabled", zap.Error(err))
		} else if store, err := report.NewStore(dsn, log); err != nil {
			log.Warn("run-history store unavailable, history disabled", zap.Error(err))
		} else {
			reporters = append(reporters, store)
		}
	}

	if len(reporters) == 0 {
		return report.Noop{}
	}
	return reporters
}

// S bundles everything one test needs: the config, logger, a dedicated
// browser session and the element utility bound to it.
type S struct {
	Cfg      *config.Config
	Log      *zap.Logger
	Session  *browser.Session
	Elements *elements.Elements

	t          *testing.T
	components *pages.Components
}

// New starts a browser session for the calling test and registers teardown.
// Tests are skipped unless -e2e or E2E=1 is set, so unit test runs never
// need a browser.
func New(t *testing.T) *S {
	t.Helper()
	if !*flagE2E && os.Getenv("E2E") != "1" {
		t.Skip("e2e tests disabled; pass -e2e or set E2E=1")
	}

	initOnce.Do(func() { initErr = initialize() })
	if initErr != nil {
		t.Fatalf("suite init: %v", initErr)
	}

	started := time.Now()
	sess, err := factory.NewSession(context.Background(), kind, *flagRemote, *flagBrowserVersion, t.Name())
	if err != nil {
		t.Fatalf("start browser session: %v", err)
	}

	testLog := log.With(zap.String("test", t.Name()))
	s := &S{
		Cfg:      cfg,
		Log:      testLog,
		Session:  sess,
		Elements: elements.New(sess.Page(), cfg.Flash, testLog),
		t:        t,
	}

	t.Cleanup(func() {
		result := report.Result{
			Name:       t.Name(),
			Passed:     !t.Failed(),
			Duration:   time.Since(started),
			FinishedAt: time.Now(),
		}
		if t.Failed() {
			result.Error = "test failed; see test log output"
			if shot, err := sess.Screenshot(); err == nil {
				result.Screenshot = shot
			} else {
				s.Log.Warn("failure screenshot unavailable", zap.Error(err))
			}
		}
		reporter.Record(result)

		if err := sess.Close(); err != nil {
			s.Log.Warn("session teardown", zap.Error(err))
		}
	})
	return s
}

// LoginPage navigates the session to the login page.
func (s *S) LoginPage(t *testing.T) *pages.LoginPage {
	t.Helper()
	lp, err := pages.NewLoginPage(s.Elements, s.Cfg, s.Log)
	if err != nil {
		t.Fatalf("open login page: %v", err)
	}
	return lp
}

// AccountPage logs in with the configured credentials and returns the
// account page.
func (s *S) AccountPage(t *testing.T) *pages.AccountPage {
	t.Helper()
	lp := s.LoginPage(t)
	ap, err := lp.Login(s.Cfg.Credentials.Email, s.Cfg.Credentials.Password)
	if err != nil {
		t.Fatalf("log in: %v", err)
	}
	return ap
}

// RegistrationPage opens the login page and follows the Register link.
func (s *S) RegistrationPage(t *testing.T) *pages.RegistrationPage {
	t.Helper()
	lp := s.LoginPage(t)
	rp, err := lp.GoToRegistration()
	if err != nil {
		t.Fatalf("open registration page: %v", err)
	}
	return rp
}

// Components returns the shared page components bound to this session.
func (s *S) Components() *pages.Components {
	if s.components == nil {
		s.components = pages.NewComponents(s.Elements, s.Log)
	}
	return s.components
}
