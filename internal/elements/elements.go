// Package elements is the single choke-point for DOM interaction. Every
// page object resolves, reads and drives elements through it, so waiting,
// logging and the debug highlight live in one place.
package elements

import (
	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"opencartqa/internal/fwerr"
)

// Elements wraps one page of a live browser session. The zero frame means
// lookups resolve against the document root; EnterFrame narrows the scope.
type Elements struct {
	page  playwright.Page
	frame playwright.Frame
	flash bool
	log   *zap.Logger
}

func New(page playwright.Page, flash bool, log *zap.Logger) *Elements {
	return &Elements{page: page, flash: flash, log: log}
}

// query resolves a selector against the active scope (frame or page).
func (e *Elements) query(selector string) (playwright.ElementHandle, error) {
	if e.frame != nil {
		return e.frame.QuerySelector(selector)
	}
	return e.page.QuerySelector(selector)
}

func (e *Elements) queryAll(selector string) ([]playwright.ElementHandle, error) {
	if e.frame != nil {
		return e.frame.QuerySelectorAll(selector)
	}
	return e.page.QuerySelectorAll(selector)
}

// Navigate loads the given URL and resets the frame scope to the root.
func (e *Elements) Navigate(url string) error {
	if url == "" {
		return fwerr.New(fwerr.InvalidArgument, "elements.Navigate", "URL cannot be empty")
	}
	e.log.Info("navigating", zap.String("url", url))
	e.frame = nil
	if _, err := e.page.Goto(url); err != nil {
		return err
	}
	return nil
}

// Title returns the current page title.
func (e *Elements) Title() (string, error) {
	return e.page.Title()
}

// URL returns the current page URL.
func (e *Elements) URL() string {
	return e.page.URL()
}

// Find resolves exactly one element. Zero matches is an error; callers that
// expect absence should use FindAll or IsDisplayed.
func (e *Elements) Find(loc Locator) (playwright.ElementHandle, error) {
	e.log.Debug("finding element", zap.Stringer("locator", loc))
	handle, err := e.query(loc.Selector())
	if err != nil {
		return nil, fwerr.Wrap(fwerr.NotFound, "elements.Find", "element lookup failed", err).WithSelector(loc.String())
	}
	if handle == nil {
		return nil, fwerr.New(fwerr.NotFound, "elements.Find", "no element matches").WithSelector(loc.String())
	}
	e.flashHandle(handle)
	return handle, nil
}

// FindAll resolves every match. No matches yields an empty slice, not an
// error.
func (e *Elements) FindAll(loc Locator) ([]playwright.ElementHandle, error) {
	e.log.Debug("finding elements", zap.Stringer("locator", loc))
	handles, err := e.queryAll(loc.Selector())
	if err != nil {
		return nil, fwerr.Wrap(fwerr.NotFound, "elements.FindAll", "element lookup failed", err).WithSelector(loc.String())
	}
	e.log.Debug("elements found", zap.Stringer("locator", loc), zap.Int("count", len(handles)))
	return handles, nil
}

// Count reports how many elements the locator matches.
func (e *Elements) Count(loc Locator) (int, error) {
	handles, err := e.FindAll(loc)
	if err != nil {
		return 0, err
	}
	return len(handles), nil
}

// CountEquals reports whether exactly n elements match.
func (e *Elements) CountEquals(loc Locator, n int) (bool, error) {
	count, err := e.Count(loc)
	if err != nil {
		return false, err
	}
	return count == n, nil
}

// TextOf returns the visible text of one element.
func (e *Elements) TextOf(loc Locator) (string, error) {
	handle, err := e.Find(loc)
	if err != nil {
		return "", err
	}
	return handle.InnerText()
}

// TextsOf returns the visible text of every matching element.
func (e *Elements) TextsOf(loc Locator) ([]string, error) {
	handles, err := e.FindAll(loc)
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(handles))
	for _, h := range handles {
		text, err := h.InnerText()
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// AttributeOf returns a DOM attribute value.
func (e *Elements) AttributeOf(loc Locator, attribute string) (string, error) {
	handle, err := e.Find(loc)
	if err != nil {
		return "", err
	}
	return handle.GetAttribute(attribute)
}

// PropertyOf returns a live JS property value (e.g. "value", "checked"),
// which for form controls can differ from the attribute.
func (e *Elements) PropertyOf(loc Locator, property string) (interface{}, error) {
	handle, err := e.Find(loc)
	if err != nil {
		return nil, err
	}
	return handle.Evaluate("(el, name) => el[name]", property)
}

// EnterText clears the field and types the value. An empty value is a
// caller bug, not a request to clear.
func (e *Elements) EnterText(loc Locator, value string) error {
	if value == "" {
		return fwerr.New(fwerr.InvalidArgument, "elements.EnterText",
			"value cannot be empty for entering text").WithSelector(loc.String())
	}
	handle, err := e.Find(loc)
	if err != nil {
		return err
	}
	return e.EnterTextInto(handle, value)
}

// EnterTextInto types into an already-resolved handle.
func (e *Elements) EnterTextInto(handle playwright.ElementHandle, value string) error {
	if value == "" {
		return fwerr.New(fwerr.InvalidArgument, "elements.EnterTextInto",
			"value cannot be empty for entering text")
	}
	e.log.Debug("entering text", zap.Int("length", len(value)))
	// Fill clears the field before inserting, matching clear-then-type.
	return handle.Fill(value)
}

// Click resolves and clicks one element.
func (e *Elements) Click(loc Locator) error {
	e.log.Info("clicking element", zap.Stringer("locator", loc))
	handle, err := e.Find(loc)
	if err != nil {
		return err
	}
	return handle.Click()
}

// ClickMatching clicks the first handle whose visible text equals value.
func (e *Elements) ClickMatching(handles []playwright.ElementHandle, value string) error {
	e.log.Info("clicking element by text", zap.String("text", value), zap.Int("candidates", len(handles)))
	for _, h := range handles {
		text, err := h.InnerText()
		if err != nil {
			continue
		}
		if text == value {
			return h.Click()
		}
	}
	return fwerr.New(fwerr.NotFound, "elements.ClickMatching",
		"no element with text "+value+" in the provided elements")
}

// IsDisplayed reports element visibility. It never returns an error:
// "not found" and "stale handle" are normal negative results here because
// visibility checks are used as boolean assertions.
func (e *Elements) IsDisplayed(loc Locator) bool {
	handle, err := e.query(loc.Selector())
	if err != nil || handle == nil {
		e.log.Debug("element not displayed", zap.Stringer("locator", loc))
		return false
	}
	return e.IsHandleDisplayed(handle)
}

// IsHandleDisplayed is IsDisplayed for an already-resolved handle.
func (e *Elements) IsHandleDisplayed(handle playwright.ElementHandle) bool {
	visible, err := handle.IsVisible()
	if err != nil {
		return false
	}
	return visible
}

// DisplayedCount reports how many of the matching elements are visible.
func (e *Elements) DisplayedCount(loc Locator) (int, error) {
	handles, err := e.FindAll(loc)
	if err != nil {
		return 0, err
	}
	displayed := 0
	for _, h := range handles {
		if e.IsHandleDisplayed(h) {
			displayed++
		}
	}
	return displayed, nil
}
