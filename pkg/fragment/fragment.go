// Package fragment extracts the content-derived fallback layer from a
// previously rendered comparison block. Only the pieces the model builder
// consults are collected:
//
//  1. the first heading and first paragraph
//  2. images in document order
//  3. the first table, or list items when there is no table
//  4. an embedded JSON document and individually keyed authored fields
package fragment

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/goliatone/go-compare/pkg/model"
)

const (
	headingSelector  = "h1,h2,h3,h4,h5,h6"
	documentSelector = `script[type="application/json"]`
	fieldSelector    = "[data-model-key]"
	fieldAttribute   = "data-model-key"
)

// Option configures a Parser.
type Option func(*Parser)

// WithLogger reports malformed embedded documents at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Parser turns rendered block markup into a model.Fallback.
type Parser struct {
	logger *zap.Logger
}

// New constructs a Parser.
func New(options ...Option) *Parser {
	p := &Parser{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Parse parses html with a parser that does not log.
func Parse(html string) (model.Fallback, error) {
	return New().Parse(html)
}

// Parse extracts the fallback layer from html.
func (p *Parser) Parse(html string) (model.Fallback, error) {
	return p.ParseReader(strings.NewReader(html))
}

// ParseReader extracts the fallback layer from r. Only unreadable input is an
// error; missing pieces leave the corresponding fields empty.
func (p *Parser) ParseReader(r io.Reader) (model.Fallback, error) {
	if p == nil {
		p = New()
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return model.Fallback{}, fmt.Errorf("fragment: parsing HTML: %w", err)
	}

	var fallback model.Fallback
	fallback.Document = p.document(doc.Selection)
	fallback.Fields = fields(doc.Selection)

	fallback.Heading = strings.TrimSpace(doc.Find(headingSelector).First().Text())
	if para := doc.Find("p").First(); para.Length() > 0 {
		inner, err := para.Html()
		if err != nil {
			return model.Fallback{}, fmt.Errorf("fragment: serializing paragraph: %w", err)
		}
		fallback.DescriptionHTML = strings.TrimSpace(inner)
	}

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := strings.TrimSpace(img.AttrOr("src", ""))
		if src == "" {
			return
		}
		fallback.Images = append(fallback.Images, model.FallbackImage{
			Src: src,
			Alt: strings.TrimSpace(img.AttrOr("alt", "")),
		})
	})

	if table := doc.Find("table").First(); table.Length() > 0 {
		fallback.Rows = rows(table)
	} else {
		doc.Find("li").Each(func(_ int, item *goquery.Selection) {
			if line := strings.TrimSpace(item.Text()); line != "" {
				fallback.Lines = append(fallback.Lines, line)
			}
		})
	}
	return fallback, nil
}

func (p *Parser) document(root *goquery.Selection) map[string]any {
	script := root.Find(documentSelector).First()
	if script.Length() == 0 {
		return nil
	}
	payload := strings.TrimSpace(script.Text())
	if payload == "" {
		return nil
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		p.logger.Debug("malformed embedded document", zap.Error(err))
		return nil
	}
	return doc
}

// fields collects [data-model-key] values. An element wrapping an image
// contributes the image source; others contribute their text. The first
// occurrence of a key wins.
func fields(root *goquery.Selection) map[string]any {
	var out map[string]any
	root.Find(fieldSelector).Each(func(_ int, el *goquery.Selection) {
		key := strings.TrimSpace(el.AttrOr(fieldAttribute, ""))
		if key == "" {
			return
		}
		if _, seen := out[key]; seen {
			return
		}
		var value string
		if img := el.Filter("img").AddSelection(el.Find("img")).First(); img.Length() > 0 {
			value = strings.TrimSpace(img.AttrOr("src", ""))
		} else {
			value = strings.TrimSpace(el.Text())
		}
		if value == "" {
			return
		}
		if out == nil {
			out = make(map[string]any)
		}
		out[key] = value
	})
	return out
}

func rows(table *goquery.Selection) [][]string {
	var out [][]string
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("td,th")
		if cells.Length() == 0 {
			return
		}
		texts := make([]string, 0, cells.Length())
		cells.Each(func(_ int, cell *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(cell.Text()))
		})
		out = append(out, texts)
	})
	return out
}
