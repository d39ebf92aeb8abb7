// Package browser owns browser session creation: per-kind launch options,
// local and remote startup, and session teardown.
package browser

import (
	"context"
	"fmt"
	"net/url"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"opencartqa/internal/config"
)

const remoteSessionTimeout = "60m"

// Factory turns the configuration surface (kind, remote flag, version,
// session name) into live sessions.
type Factory struct {
	cfg *config.Config
	log *zap.Logger
}

func NewFactory(cfg *config.Config, log *zap.Logger) *Factory {
	return &Factory{cfg: cfg, log: log}
}

// NewSession starts a browser and returns it maximized with all cookies
// cleared. sessionName is used for remote video/session naming only.
func (f *Factory) NewSession(ctx context.Context, kind Kind, remote bool, version, sessionName string) (*Session, error) {
	f.log.Info("starting browser session",
		zap.String("browser", string(kind)),
		zap.Bool("remote", remote),
		zap.String("version", version),
		zap.String("session", sessionName))

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	b, err := f.launch(pw, kind, remote, version, sessionName)
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}

	bctx, err := b.NewContext(playwright.BrowserNewContextOptions{
		// launch args maximize the window; playwright must not pin a viewport
		NoViewport: playwright.Bool(true),
	})
	if err != nil {
		_ = b.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("new browser context: %w", err)
	}

	if err := bctx.ClearCookies(); err != nil {
		f.log.Warn("clear cookies failed", zap.Error(err))
	}

	page, err := bctx.NewPage()
	if err != nil {
		_ = bctx.Close()
		_ = b.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("new page: %w", err)
	}

	f.log.Debug("browser session ready", zap.String("browser", string(kind)))
	return &Session{
		pw:      pw,
		browser: b,
		context: bctx,
		page:    page,
		kind:    kind,
		name:    sessionName,
		log:     f.log,
	}, nil
}

func (f *Factory) launch(pw *playwright.Playwright, kind Kind, remote bool, version, sessionName string) (playwright.Browser, error) {
	browserType := f.browserType(pw, kind)

	if remote {
		endpoint, err := RemoteEndpoint(f.cfg.Remote.URL, kind, version, sessionName)
		if err != nil {
			return nil, err
		}
		f.log.Info("connecting to remote browser", zap.String("endpoint", endpoint))
		b, err := browserType.Connect(endpoint)
		if err != nil {
			return nil, fmt.Errorf("connect remote %s: %w", kind, err)
		}
		return b, nil
	}

	opts := f.launchOptions(kind)
	b, err := browserType.Launch(opts)
	if err != nil {
		return nil, fmt.Errorf("launch %s: %w", kind, err)
	}
	return b, nil
}

func (f *Factory) browserType(pw *playwright.Playwright, kind Kind) playwright.BrowserType {
	if kind == Firefox {
		return pw.Firefox
	}
	// chrome and edge are both chromium; edge selects the msedge channel
	return pw.Chromium
}

func (f *Factory) launchOptions(kind Kind) playwright.BrowserTypeLaunchOptions {
	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(f.cfg.Headless),
		Args:     launchArgs(kind, f.cfg.Incognito),
	}
	if kind == Edge {
		opts.Channel = playwright.String("msedge")
	}
	return opts
}

// launchArgs builds the per-kind argument list. The private-browsing flag is
// spelled differently by every vendor.
func launchArgs(kind Kind, incognito bool) []string {
	args := []string{"--no-sandbox"}
	if kind != Firefox {
		args = append(args, "--start-maximized")
	}
	if incognito {
		switch kind {
		case Firefox:
			args = append(args, "-private-window")
		case Edge:
			args = append(args, "-inprivate")
		default:
			args = append(args, "--incognito")
		}
	}
	return args
}

// RemoteEndpoint builds the websocket URL for a grid session. Capability
// metadata (VNC, video recording, session name, timeout) travels as query
// parameters, the playwright equivalent of Selenoid capability blocks.
func RemoteEndpoint(base string, kind Kind, version, sessionName string) (string, error) {
	if base == "" {
		return "", fmt.Errorf("remote execution requested but remote_url is not configured")
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse remote_url %q: %w", base, err)
	}

	q := u.Query()
	q.Set("browserName", string(kind))
	if v := NormalizeVersion(version); v != "" {
		q.Set("browserVersion", v)
	}
	q.Set("enableVNC", "true")
	q.Set("enableVideo", "true")
	q.Set("videoName", sessionName+"_video.mp4")
	q.Set("name", sessionName)
	q.Set("sessionTimeout", remoteSessionTimeout)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
