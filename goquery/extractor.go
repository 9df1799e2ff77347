// Package goquery implements webscrape.Extractor on top of goquery's
// CSS-selector queries over the golang.org/x/net/html node tree.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/webscrape"
)

// Default labels for entries whose element has no usable text.
const (
	NoLinkText = "No text"
	NoAltText  = "No alt text"
)

// chromeSelector matches page furniture removed before whole-page text extraction.
const chromeSelector = "script, style, nav, footer, header"

// Ensure Extractor implements webscrape.Extractor at compile time.
var _ webscrape.Extractor = (*Extractor)(nil)

// Extractor extracts content facets from HTML documents.
type Extractor struct {
	converter webscrape.Converter
}

// NewExtractor creates a new Extractor. The converter backs the markdown
// facet and may be nil, in which case that facet is unsupported.
func NewExtractor(converter webscrape.Converter) *Extractor {
	return &Extractor{converter: converter}
}

// Extract parses html and returns the requested facet.
func (e *Extractor) Extract(html string, baseURL string, facet webscrape.Facet, selector string) (*webscrape.ExtractionResult, error) {
	switch facet {
	case webscrape.FacetText, webscrape.FacetLinks, webscrape.FacetImages, webscrape.FacetVideos:
	case webscrape.FacetMarkdown:
		if e.converter == nil {
			return nil, webscrape.Errorf(webscrape.EUNSUPPORTED, "markdown conversion not configured")
		}
	default:
		return nil, webscrape.Errorf(webscrape.EUNSUPPORTED, "unsupported content type %q", facet)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, webscrape.Errorf(webscrape.EEXTRACT, "failed to parse HTML: %v", err)
	}

	result := &webscrape.ExtractionResult{Facet: facet}
	switch facet {
	case webscrape.FacetText:
		result.Text, err = extractText(doc, selector)
	case webscrape.FacetMarkdown:
		result.Text, err = e.extractMarkdown(doc, baseURL, selector)
	case webscrape.FacetLinks:
		result.Links = extractLinks(doc, baseURL)
	case webscrape.FacetImages:
		result.Images = extractImages(doc, baseURL)
	case webscrape.FacetVideos:
		result.Videos = extractVideos(doc, baseURL)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// extractText returns the markup of every element matching selector, or the
// visible text of the page when no selector is given.
func extractText(doc *goquery.Document, selector string) (string, error) {
	if selector == "" {
		doc.Find(chromeSelector).Remove()
		return VisibleText(doc.Nodes...), nil
	}
	return selectedMarkup(doc, selector, "\n\n")
}

func (e *Extractor) extractMarkdown(doc *goquery.Document, baseURL, selector string) (string, error) {
	var html string
	if selector == "" {
		doc.Find(chromeSelector).Remove()
		body, err := doc.Find("body").Html()
		if err != nil {
			return "", webscrape.Errorf(webscrape.EEXTRACT, "failed to render body: %v", err)
		}
		html = body
	} else {
		markup, err := selectedMarkup(doc, selector, "\n")
		if err != nil {
			return "", err
		}
		html = markup
	}

	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	md, err := e.converter.Convert(html, baseURL)
	if err != nil {
		return "", webscrape.Errorf(webscrape.EEXTRACT, "failed to convert to markdown: %v", err)
	}
	return strings.TrimSpace(md), nil
}

// selectedMarkup joins the outer HTML of the matches in document order.
// A selector matching nothing yields an empty string.
func selectedMarkup(doc *goquery.Document, selector string, sep string) (string, error) {
	if _, err := cascadia.ParseGroup(selector); err != nil {
		return "", webscrape.Errorf(webscrape.EEXTRACT, "invalid selector %q: %v", selector, err)
	}

	var parts []string
	var renderErr error
	doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		html, err := goquery.OuterHtml(sel)
		if err != nil {
			renderErr = err
			return false
		}
		parts = append(parts, html)
		return true
	})
	if renderErr != nil {
		return "", webscrape.Errorf(webscrape.EEXTRACT, "failed to render selection: %v", renderErr)
	}
	return strings.Join(parts, sep), nil
}

func extractLinks(doc *goquery.Document, baseURL string) []webscrape.LinkEntry {
	links := []webscrape.LinkEntry{}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" || isNonNavigableLink(href) {
			return
		}

		resolved, err := webscrape.Resolve(baseURL, href)
		if err != nil {
			return
		}

		text := InlineText(sel.Nodes...)
		if text == "" {
			text = NoLinkText
		}

		links = append(links, webscrape.LinkEntry{
			URL:      resolved,
			Text:     text,
			External: !webscrape.SameOrigin(resolved, baseURL),
		})
	})
	return links
}

func extractImages(doc *goquery.Document, baseURL string) []webscrape.ImageEntry {
	images := []webscrape.ImageEntry{}
	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src := strings.TrimSpace(sel.AttrOr("src", ""))
		if src == "" {
			return
		}

		resolved, err := webscrape.Resolve(baseURL, src)
		if err != nil {
			return
		}

		// Present-but-empty alt is kept as written.
		alt, ok := sel.Attr("alt")
		if !ok {
			alt = NoAltText
		}

		images = append(images, webscrape.ImageEntry{
			URL:   resolved,
			Alt:   alt,
			Title: sel.AttrOr("title", ""),
		})
	})
	return images
}

// extractVideos scans video elements first, then iframes.
func extractVideos(doc *goquery.Document, baseURL string) []webscrape.VideoEntry {
	videos := []webscrape.VideoEntry{}

	doc.Find("video").Each(func(_ int, sel *goquery.Selection) {
		src := strings.TrimSpace(sel.AttrOr("src", ""))
		if src == "" {
			src = strings.TrimSpace(sel.Find("source").First().AttrOr("src", ""))
		}
		if src == "" {
			return
		}

		resolved, err := webscrape.Resolve(baseURL, src)
		if err != nil {
			return
		}
		videos = append(videos, webscrape.VideoEntry{
			URL:    resolved,
			Kind:   webscrape.VideoKindVideo,
			Source: webscrape.VideoSourceTag,
		})
	})

	doc.Find("iframe[src]").Each(func(_ int, sel *goquery.Selection) {
		src := strings.TrimSpace(sel.AttrOr("src", ""))
		if src == "" {
			return
		}

		if kind, ok := embedKind(src); ok {
			videos = append(videos, webscrape.VideoEntry{
				URL:    embedURL(baseURL, src),
				Kind:   kind,
				Source: webscrape.VideoSourceIframe,
			})
			return
		}

		resolved, err := webscrape.Resolve(baseURL, src)
		if err != nil {
			return
		}
		videos = append(videos, webscrape.VideoEntry{
			URL:    resolved,
			Kind:   webscrape.VideoKindVideo,
			Source: webscrape.VideoSourceIframe,
		})
	})

	return videos
}

// embedKind recognizes YouTube and Vimeo embed players.
func embedKind(src string) (webscrape.VideoKind, bool) {
	switch {
	case strings.Contains(src, "youtube.com/embed/"), strings.Contains(src, "youtu.be/"):
		return webscrape.VideoKindYouTube, true
	case strings.Contains(src, "vimeo.com/video/"):
		return webscrape.VideoKindVimeo, true
	}
	return "", false
}

// embedURL keeps embed URLs exactly as written, except protocol-relative
// ones ("//www.youtube.com/embed/x"), which take the page's scheme.
func embedURL(baseURL, src string) string {
	if !strings.HasPrefix(src, "//") {
		return src
	}
	if resolved, err := webscrape.Resolve(baseURL, src); err == nil {
		return resolved
	}
	return src
}

// isNonNavigableLink reports hrefs that don't point at another document.
func isNonNavigableLink(href string) bool {
	href = strings.ToLower(href)
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "#")
}
