package pages

import (
	"context"

	"go.uber.org/zap"

	"opencartqa/internal/elements"
)

var (
	searchResultHeader = elements.ByCSS("#content h1")
	searchResultThumbs = elements.ByCSS(`div[class='row'] div[class='product-thumb']`)
)

// SearchResultPage lists products matching a search term.
type SearchResultPage struct {
	e   *elements.Elements
	log *zap.Logger
}

func NewSearchResultPage(e *elements.Elements, log *zap.Logger) *SearchResultPage {
	log.Debug("search result page bound", zap.String("url", e.URL()))
	return &SearchResultPage{e: e, log: log}
}

func (p *SearchResultPage) Header() (string, error) {
	return p.e.TextOf(searchResultHeader)
}

// ResultCount counts the product thumbnails on the page.
func (p *SearchResultPage) ResultCount() (int, error) {
	return p.e.Count(searchResultThumbs)
}

// SelectProduct clicks the product link with the exact name and hands over
// to its detail page.
func (p *SearchResultPage) SelectProduct(ctx context.Context, name string) (*ProductPage, error) {
	p.log.Info("selecting product", zap.String("product", name))
	link := elements.ByLinkText(name)
	handle, err := p.e.WaitUntilVisible(ctx, link, ShortWait)
	if err != nil {
		return nil, err
	}
	if err := handle.Click(); err != nil {
		return nil, err
	}
	return NewProductPage(p.e, p.log), nil
}
