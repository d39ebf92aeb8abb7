package pages

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"opencartqa/internal/elements"
)

var (
	footerSectionLocator = elements.ByXPath("//footer//h5")
	footerSectionLinks   = ".//following-sibling::ul//a"
	rightColumnLinks     = elements.ByCSS("#column-right a")
	searchField          = elements.ByName("search")
	searchButton         = elements.ByCSS(`input[name='search']+span>button`)
)

// Components owns the shared widgets that appear on every store page.
// Sub-components are built behind get-or-create accessors and share one
// element utility.
type Components struct {
	e   *elements.Elements
	log *zap.Logger

	footer      *Footer
	rightColumn *RightColumnLinks
	search      *Search
}

func NewComponents(e *elements.Elements, log *zap.Logger) *Components {
	return &Components{e: e, log: log}
}

func (c *Components) Footer() *Footer {
	if c.footer == nil {
		c.footer = &Footer{e: c.e, log: c.log}
	}
	return c.footer
}

func (c *Components) RightColumn() *RightColumnLinks {
	if c.rightColumn == nil {
		c.rightColumn = &RightColumnLinks{e: c.e, log: c.log}
	}
	return c.rightColumn
}

func (c *Components) Search() *Search {
	if c.search == nil {
		c.search = &Search{e: c.e, log: c.log}
	}
	return c.search
}

// Footer exposes the footer sections and their links.
type Footer struct {
	e   *elements.Elements
	log *zap.Logger
}

func (f *Footer) SectionTitles() ([]string, error) {
	return f.e.TextsOf(footerSectionLocator)
}

// AllLinkTexts walks every section and collects its link texts in order.
func (f *Footer) AllLinkTexts() ([]string, error) {
	sections, err := f.e.FindAll(footerSectionLocator)
	if err != nil {
		return nil, err
	}
	var texts []string
	for _, section := range sections {
		links, err := section.QuerySelectorAll("xpath=" + footerSectionLinks)
		if err != nil {
			return nil, err
		}
		for _, link := range links {
			text, err := link.InnerText()
			if err != nil {
				return nil, err
			}
			texts = append(texts, text)
		}
	}
	return texts, nil
}

// SectionLinkTexts returns the links under one named footer section.
func (f *Footer) SectionLinkTexts(section string) ([]string, error) {
	loc := elements.ByXPath(fmt.Sprintf("//footer//h5[text()='%s']/following-sibling::ul//a", section))
	return f.e.TextsOf(loc)
}

// RightColumnLinks is the account-navigation sidebar.
type RightColumnLinks struct {
	e   *elements.Elements
	log *zap.Logger
}

func (r *RightColumnLinks) LinkTexts() ([]string, error) {
	return r.e.TextsOf(rightColumnLinks)
}

// Search is the store-wide product search box.
type Search struct {
	e   *elements.Elements
	log *zap.Logger
}

func (s *Search) IsFieldDisplayed() bool {
	return s.e.IsDisplayed(searchField)
}

// SearchProduct runs a search and returns the result page.
func (s *Search) SearchProduct(ctx context.Context, term string) (*SearchResultPage, error) {
	s.log.Info("searching for product", zap.String("term", term))
	field, err := s.e.WaitUntilVisible(ctx, searchField, ShortWait)
	if err != nil {
		return nil, err
	}
	if err := s.e.EnterTextInto(field, term); err != nil {
		return nil, err
	}
	if err := s.e.Click(searchButton); err != nil {
		return nil, err
	}
	return NewSearchResultPage(s.e, s.log), nil
}
