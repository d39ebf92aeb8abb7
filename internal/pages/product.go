package pages

import (
	"strings"

	"go.uber.org/zap"

	"opencartqa/internal/elements"
)

var (
	productHeaderLocator = elements.ByCSS("#content h1")
	productImages        = elements.ByCSS(".thumbnails a > img")
	productMetaData      = elements.ByCSS(".col-sm-4 > ul:nth-of-type(1) > li")
	productPriceData     = elements.ByCSS(".col-sm-4 > ul:nth-of-type(2) > li")
)

// ProductPage is the product detail view. The extracted info map is the
// page object's only mutable state; it holds strings, never handles, so it
// survives the elements it was read from.
type ProductPage struct {
	e    *elements.Elements
	log  *zap.Logger
	info map[string]string
}

func NewProductPage(e *elements.Elements, log *zap.Logger) *ProductPage {
	log.Debug("product page bound", zap.String("url", e.URL()))
	return &ProductPage{e: e, log: log}
}

func (p *ProductPage) Title() (string, error) {
	return p.e.Title()
}

func (p *ProductPage) ImageCount() (int, error) {
	return p.e.Count(productImages)
}

// ImagesDisplayed reports whether every product image is visible.
func (p *ProductPage) ImagesDisplayed() (bool, error) {
	total, err := p.e.Count(productImages)
	if err != nil {
		return false, err
	}
	displayed, err := p.e.DisplayedCount(productImages)
	if err != nil {
		return false, err
	}
	return total > 0 && displayed == total, nil
}

// Info extracts the complete product information: header, the "label:
// value" metadata lines, and pricing. The result is memoized.
func (p *ProductPage) Info() (map[string]string, error) {
	if p.info != nil {
		return p.info, nil
	}

	info := make(map[string]string)

	header, err := p.e.TextOf(productHeaderLocator)
	if err != nil {
		return nil, err
	}
	info["productHeader"] = header

	meta, err := p.e.TextsOf(productMetaData)
	if err != nil {
		return nil, err
	}
	p.parseInfoLines(meta, info)

	prices, err := p.e.TextsOf(productPriceData)
	if err != nil {
		return nil, err
	}
	if len(prices) > 0 {
		info["price"] = strings.TrimSpace(prices[0])
		if len(prices) > 1 {
			p.parseInfoLines(prices[1:2], info)
		}
	} else {
		p.log.Warn("no price data found on product page")
	}

	p.log.Info("product info extracted", zap.Int("fields", len(info)))
	p.info = info
	return info, nil
}

// parseInfoLines splits "label: value" lines into the map. The page renders
// a few free-form nodes in the same list; lines that do not split on ":"
// into exactly two parts are skipped.
func (p *ProductPage) parseInfoLines(lines []string, into map[string]string) {
	for _, line := range lines {
		parts := strings.Split(line, ":")
		if len(parts) != 2 {
			p.log.Debug("skipping malformed info line", zap.String("line", line))
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		into[key] = value
	}
}
