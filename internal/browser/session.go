package browser

import (
	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// Session is one live browser plus its automation connection. It is owned
// exclusively by the test scope that created it and must be closed at scope
// exit; page objects built on it must not outlive it.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	kind    Kind
	name    string
	log     *zap.Logger
}

func (s *Session) Page() playwright.Page {
	return s.page
}

func (s *Session) Kind() Kind {
	return s.kind
}

func (s *Session) Name() string {
	return s.name
}

// Screenshot captures the current page as PNG, for failure reports.
func (s *Session) Screenshot() ([]byte, error) {
	return s.page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(true),
	})
}

// Close tears down page, context, browser and the playwright driver in
// order. The first error is returned but teardown continues regardless.
func (s *Session) Close() error {
	s.log.Debug("closing browser session", zap.String("session", s.name))

	var first error
	if s.context != nil {
		if err := s.context.Close(); err != nil && first == nil {
			first = err
		}
	}
	if s.browser != nil {
		if err := s.browser.Close(); err != nil && first == nil {
			first = err
		}
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
