package pages

import (
	"go.uber.org/zap"

	"opencartqa/internal/elements"
)

var (
	accountHeaderLocator = elements.ByCSS("#content h2")
	accountLogoutLink    = elements.ByLinkText("Logout")
)

// AccountPage is the dashboard shown after login. Construction assumes the
// session already sits on it.
type AccountPage struct {
	e   *elements.Elements
	log *zap.Logger
}

func NewAccountPage(e *elements.Elements, log *zap.Logger) *AccountPage {
	log.Debug("account page bound", zap.String("url", e.URL()))
	return &AccountPage{e: e, log: log}
}

func (p *AccountPage) Title() (string, error) {
	return p.e.Title()
}

func (p *AccountPage) URL() string {
	return p.e.URL()
}

// Headers returns the section headers on the dashboard.
func (p *AccountPage) Headers() ([]string, error) {
	return p.e.TextsOf(accountHeaderLocator)
}

// HasLogoutLink is the standard "am I logged in" check.
func (p *AccountPage) HasLogoutLink() bool {
	return p.e.IsDisplayed(accountLogoutLink)
}
