package elements

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"opencartqa/internal/fwerr"
)

// SelectByText selects an option of a native <select> by its visible label.
func (e *Elements) SelectByText(loc Locator, text string) error {
	e.log.Info("selecting option by text", zap.Stringer("locator", loc), zap.String("text", text))
	handle, err := e.Find(loc)
	if err != nil {
		return err
	}
	_, err = handle.SelectOption(playwright.SelectOptionValues{Labels: &[]string{text}})
	return err
}

// SelectByIndex selects a native <select> option by zero-based index.
func (e *Elements) SelectByIndex(loc Locator, index int) error {
	e.log.Info("selecting option by index", zap.Stringer("locator", loc), zap.Int("index", index))
	handle, err := e.Find(loc)
	if err != nil {
		return err
	}
	_, err = handle.SelectOption(playwright.SelectOptionValues{Indexes: &[]int{index}})
	return err
}

// SelectByValue selects a native <select> option by its value attribute.
func (e *Elements) SelectByValue(loc Locator, value string) error {
	e.log.Info("selecting option by value", zap.Stringer("locator", loc), zap.String("value", value))
	handle, err := e.Find(loc)
	if err != nil {
		return err
	}
	_, err = handle.SelectOption(playwright.SelectOptionValues{Values: &[]string{value}})
	return err
}

// OptionTexts returns the visible text of every option in a <select>.
func (e *Elements) OptionTexts(loc Locator) ([]string, error) {
	handle, err := e.Find(loc)
	if err != nil {
		return nil, err
	}
	options, err := handle.QuerySelectorAll("option")
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(options))
	for _, o := range options {
		text, err := o.InnerText()
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// SelectOption emulates selection by clicking the option whose text equals
// value, for controls where native selection misbehaves.
func (e *Elements) SelectOption(loc Locator, value string) error {
	e.log.Info("selecting option by click", zap.Stringer("locator", loc), zap.String("value", value))
	handle, err := e.Find(loc)
	if err != nil {
		return err
	}
	options, err := handle.QuerySelectorAll("option")
	if err != nil {
		return err
	}
	for _, o := range options {
		text, err := o.InnerText()
		if err != nil {
			continue
		}
		// exact match, no trimming: option text is compared as rendered
		if text == value {
			return o.Click()
		}
	}
	return fwerr.New(fwerr.NotFound, "elements.SelectOption",
		fmt.Sprintf("option with text %q not found in the dropdown", value)).WithSelector(loc.String())
}

// SelectMany opens a custom dropdown and clicks every choice whose text is
// in values. Selecting fewer options than requested is an error.
func (e *Elements) SelectMany(dropdown, choices Locator, values ...string) error {
	e.log.Info("selecting multiple options",
		zap.Stringer("dropdown", dropdown), zap.Strings("values", values))
	if err := e.Click(dropdown); err != nil {
		return err
	}
	handles, err := e.FindAll(choices)
	if err != nil {
		return err
	}

	wanted := make(map[string]bool, len(values))
	for _, v := range values {
		wanted[v] = true
	}

	selected := 0
	for _, h := range handles {
		text, err := h.InnerText()
		if err != nil {
			continue
		}
		if wanted[strings.TrimSpace(text)] {
			if err := h.Click(); err != nil {
				return err
			}
			selected++
		}
	}

	if selected != len(values) {
		return fwerr.New(fwerr.PartialSelection, "elements.SelectMany",
			fmt.Sprintf("not all options were selected: expected %d, selected %d", len(values), selected)).
			WithSelector(choices.String())
	}
	return nil
}

// SelectAll opens a custom dropdown and clicks every not-yet-selected choice.
func (e *Elements) SelectAll(dropdown, choices Locator) error {
	e.log.Info("selecting all options", zap.Stringer("dropdown", dropdown))
	if err := e.Click(dropdown); err != nil {
		return err
	}
	handles, err := e.FindAll(choices)
	if err != nil {
		return err
	}

	selected := 0
	for _, h := range handles {
		if isOptionSelected(h) {
			continue
		}
		if err := h.Click(); err != nil {
			return err
		}
		selected++
	}
	e.log.Debug("options selected", zap.Int("selected", selected), zap.Int("total", len(handles)))
	return nil
}

func isOptionSelected(handle playwright.ElementHandle) bool {
	result, err := handle.Evaluate("el => !!el.selected")
	if err != nil {
		return false
	}
	selected, ok := result.(bool)
	return ok && selected
}
