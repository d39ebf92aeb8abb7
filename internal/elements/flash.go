package elements

import (
	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// flashScript briefly toggles the element's background so a human watching
// a debug run can see what the framework touched. Runs asynchronously in
// the page; interaction results are never affected.
const flashScript = `el => {
	const original = el.style.backgroundColor;
	let ticks = 0;
	const id = setInterval(() => {
		el.style.backgroundColor = ticks % 2 === 0 ? 'lightgreen' : original;
		ticks++;
		if (ticks >= 6) {
			clearInterval(id);
			el.style.backgroundColor = original;
		}
	}, 50);
}`

func (e *Elements) flashHandle(handle playwright.ElementHandle) {
	if !e.flash {
		return
	}
	if _, err := handle.Evaluate(flashScript); err != nil {
		e.log.Debug("flash highlight failed", zap.Error(err))
	}
}
