// Package pages holds the page objects for the OpenCart demo store. Each
// page object binds to one live browser session through the element
// utility; construction either navigates (LoginPage) or assumes the session
// is already positioned on the page.
package pages

import (
	"go.uber.org/zap"

	"opencartqa/internal/config"
	"opencartqa/internal/elements"
)

var (
	loginEmailField       = elements.ByID("input-email")
	loginPasswordField    = elements.ByID("input-password")
	loginButton           = elements.ByCSS(`input[value="Login"]`)
	forgotPasswordLink    = elements.ByLinkText("Forgotten Password")
	loginRegistrationLink = elements.ByLinkText("Register")
)

type LoginPage struct {
	e   *elements.Elements
	log *zap.Logger
}

// NewLoginPage navigates the session to the configured login URL.
func NewLoginPage(e *elements.Elements, cfg *config.Config, log *zap.Logger) (*LoginPage, error) {
	log.Info("opening login page", zap.String("url", cfg.LoginURL))
	if err := e.Navigate(cfg.LoginURL); err != nil {
		return nil, err
	}
	return &LoginPage{e: e, log: log}, nil
}

func (p *LoginPage) Title() (string, error) {
	return p.e.Title()
}

func (p *LoginPage) URL() string {
	return p.e.URL()
}

func (p *LoginPage) HasForgotPasswordLink() bool {
	return p.e.IsDisplayed(forgotPasswordLink)
}

// Login submits the credentials and hands over to the account page.
func (p *LoginPage) Login(email, password string) (*AccountPage, error) {
	p.log.Info("logging in", zap.String("email", email))
	if err := p.e.EnterText(loginEmailField, email); err != nil {
		return nil, err
	}
	if err := p.e.EnterText(loginPasswordField, password); err != nil {
		return nil, err
	}
	if err := p.e.Click(loginButton); err != nil {
		return nil, err
	}
	return NewAccountPage(p.e, p.log), nil
}

// GoToRegistration follows the Register link.
func (p *LoginPage) GoToRegistration() (*RegistrationPage, error) {
	p.log.Info("navigating to registration page")
	if err := p.e.Click(loginRegistrationLink); err != nil {
		return nil, err
	}
	return NewRegistrationPage(p.e, p.log), nil
}
