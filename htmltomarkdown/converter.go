// Package htmltomarkdown implements webscrape.Converter with
// JohannesKaufmann/html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/webscrape"
)

// Ensure Converter implements webscrape.Converter at compile time.
var _ webscrape.Converter = (*Converter)(nil)

// Converter renders scraped HTML fragments as Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter with CommonMark, table and
// strikethrough support.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
			strikethrough.NewStrikethroughPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms html into Markdown. When baseURL is set, relative
// link and image destinations are rewritten against it.
func (c *Converter) Convert(html, baseURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", webscrape.Errorf(webscrape.EINVALID, "empty HTML input")
	}

	var md string
	var err error
	if baseURL != "" {
		md, err = c.conv.ConvertString(html, converter.WithDomain(baseURL))
	} else {
		md, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", webscrape.Errorf(webscrape.EEXTRACT, "markdown conversion: %v", err)
	}
	return md, nil
}
