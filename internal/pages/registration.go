package pages

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"opencartqa/internal/elements"
	"opencartqa/internal/testdata"
)

var (
	registrationHeader    = elements.ByCSS("#content h1")
	regFirstNameField     = elements.ByID("input-firstname")
	regLastNameField      = elements.ByID("input-lastname")
	regEmailField         = elements.ByID("input-email")
	regTelephoneField     = elements.ByID("input-telephone")
	regPasswordField      = elements.ByID("input-password")
	regConfirmField       = elements.ByID("input-confirm")
	regAgreeCheckbox      = elements.ByName("agree")
	regContinueButton     = elements.ByXPath(`//input[@type='submit' and @value='Continue']`)
	regSuccessMessage     = elements.ByCSS("div#content h1")
	regLogoutLink         = elements.ByLinkText("Logout")
	regRegisterLink       = elements.ByLinkText("Register")
	regSubscribeRadioTmpl = `(//label[@class='radio-inline'])[position()=%d]/input[@type='radio']`
)

// RegistrationPage drives the new-account form. One instance is reused
// across data-driven iterations: a successful registration logs out and
// returns to the form, so the next row can run in the same session.
type RegistrationPage struct {
	e   *elements.Elements
	log *zap.Logger
}

func NewRegistrationPage(e *elements.Elements, log *zap.Logger) *RegistrationPage {
	log.Debug("registration page bound", zap.String("url", e.URL()))
	return &RegistrationPage{e: e, log: log}
}

func (p *RegistrationPage) Title() (string, error) {
	return p.e.Title()
}

func (p *RegistrationPage) Header() (string, error) {
	return p.e.TextOf(registrationHeader)
}

// Register fills and submits the form. It returns true when the post-submit
// header equals the expected success text exactly; a mismatch returns false
// without an error. On success the flow logs out and re-opens the form.
func (p *RegistrationPage) Register(ctx context.Context, rec testdata.RegistrationData, email string) (bool, error) {
	p.log.Info("registering user",
		zap.String("first_name", rec.FirstName),
		zap.String("last_name", rec.LastName),
		zap.String("email", email),
		zap.String("subscribe", rec.Subscribe))

	subscribePos := 2 // "No" radio
	if strings.EqualFold(strings.TrimSpace(rec.Subscribe), "yes") {
		subscribePos = 1
	}
	subscribeRadio := elements.ByXPath(fmt.Sprintf(regSubscribeRadioTmpl, subscribePos))

	first, err := p.e.WaitUntilVisible(ctx, regFirstNameField, ShortWait)
	if err != nil {
		return false, err
	}
	if err := p.e.EnterTextInto(first, rec.FirstName); err != nil {
		return false, err
	}
	if err := p.e.EnterText(regLastNameField, rec.LastName); err != nil {
		return false, err
	}
	if err := p.e.EnterText(regEmailField, email); err != nil {
		return false, err
	}
	if err := p.e.EnterText(regTelephoneField, rec.Telephone); err != nil {
		return false, err
	}
	if err := p.e.EnterText(regPasswordField, rec.Password); err != nil {
		return false, err
	}
	if err := p.e.EnterText(regConfirmField, rec.Password); err != nil {
		return false, err
	}
	if err := p.e.Click(subscribeRadio); err != nil {
		return false, err
	}
	if err := p.e.Click(regAgreeCheckbox); err != nil {
		return false, err
	}
	if err := p.e.Click(regContinueButton); err != nil {
		return false, err
	}

	messageHandle, err := p.e.WaitUntilVisible(ctx, regSuccessMessage, ShortWait)
	if err != nil {
		return false, err
	}
	message, err := messageHandle.InnerText()
	if err != nil {
		return false, err
	}
	message = strings.TrimSpace(message)

	if message != RegisterSuccessMessage {
		p.log.Warn("registration failed",
			zap.String("email", email), zap.String("message", message))
		return false, nil
	}

	p.log.Info("registration successful", zap.String("email", email))

	// Reset for the next data-driven iteration: log out, back to the form.
	if err := p.e.Click(regLogoutLink); err != nil {
		return false, err
	}
	if err := p.e.Click(regRegisterLink); err != nil {
		return false, err
	}
	if _, err := p.e.WaitUntilVisible(ctx, regFirstNameField, ShortWait); err != nil {
		return false, err
	}
	return true, nil
}
