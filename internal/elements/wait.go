package elements

import (
	"context"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"opencartqa/internal/fwerr"
)

// pollInterval is the step of every explicit-wait loop. Waits here are
// plain polling, bounded by the per-call budget; there is no cancellation
// beyond the timeout and the caller's ctx.
const pollInterval = 100 * time.Millisecond

// WaitUntilVisible polls until the element is present and visible, or the
// budget elapses. The timeout error carries the locator and the budget.
func (e *Elements) WaitUntilVisible(ctx context.Context, loc Locator, timeout time.Duration) (playwright.ElementHandle, error) {
	e.log.Info("waiting for element to be visible",
		zap.Stringer("locator", loc), zap.Duration("timeout", timeout))

	deadline := time.Now().Add(timeout)
	for {
		handle, err := e.query(loc.Selector())
		if err == nil && handle != nil {
			if visible, verr := handle.IsVisible(); verr == nil && visible {
				e.flashHandle(handle)
				return handle, nil
			}
		}

		if time.Now().After(deadline) {
			return nil, fwerr.New(fwerr.Timeout, "elements.WaitUntilVisible",
				"element not visible within budget").WithSelector(loc.String()).WithBudget(timeout)
		}
		select {
		case <-ctx.Done():
			return nil, fwerr.Wrap(fwerr.Timeout, "elements.WaitUntilVisible",
				"wait cancelled", ctx.Err()).WithSelector(loc.String()).WithBudget(timeout)
		case <-time.After(pollInterval):
		}
	}
}

// WaitUntilTitleContains polls the page title for the fragment. It is a
// soft check: on timeout it reports absence instead of failing, so callers
// can treat it as advisory.
func (e *Elements) WaitUntilTitleContains(ctx context.Context, fragment string, timeout time.Duration) (string, bool) {
	e.log.Info("waiting for title fragment",
		zap.String("fragment", fragment), zap.Duration("timeout", timeout))

	deadline := time.Now().Add(timeout)
	for {
		if title, err := e.page.Title(); err == nil && strings.Contains(title, fragment) {
			return title, true
		}

		if time.Now().After(deadline) {
			e.log.Warn("title fragment not seen within budget",
				zap.String("fragment", fragment), zap.Duration("timeout", timeout))
			return "", false
		}
		select {
		case <-ctx.Done():
			return "", false
		case <-time.After(pollInterval):
		}
	}
}
