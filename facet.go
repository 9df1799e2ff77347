package webscrape

import "strings"

// Facet selects which kind of content is extracted from a page.
type Facet string

// Supported facets.
const (
	FacetText     Facet = "text"
	FacetLinks    Facet = "links"
	FacetImages   Facet = "images"
	FacetVideos   Facet = "videos"
	FacetMarkdown Facet = "markdown"
)

// ParseFacet converts user input into a Facet. Empty input selects
// FacetText. Returns EUNSUPPORTED for anything else unrecognized.
func ParseFacet(s string) (Facet, error) {
	switch f := Facet(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FacetText, nil
	case FacetText, FacetLinks, FacetImages, FacetVideos, FacetMarkdown:
		return f, nil
	default:
		return "", Errorf(EUNSUPPORTED, "unsupported content type %q", s)
	}
}

// LinkEntry is an anchor found on a page.
type LinkEntry struct {
	URL  string `json:"url"`
	Text string `json:"text"`

	// External is true when URL has a different origin than the page.
	External bool `json:"external"`
}

// ImageEntry is an img element found on a page.
type ImageEntry struct {
	URL   string `json:"url"`
	Alt   string `json:"alt"`
	Title string `json:"title"`
}

// VideoKind classifies a discovered video reference.
type VideoKind string

// Video kinds.
const (
	VideoKindVideo   VideoKind = "video"
	VideoKindYouTube VideoKind = "youtube"
	VideoKindVimeo   VideoKind = "vimeo"
)

// VideoSource names the element a video reference was found in.
type VideoSource string

// Video sources.
const (
	VideoSourceTag    VideoSource = "video_tag"
	VideoSourceIframe VideoSource = "iframe"
)

// VideoEntry is a video reference found on a page. Embed URLs recognized as
// YouTube or Vimeo are kept exactly as written in the page.
type VideoEntry struct {
	URL    string      `json:"url"`
	Kind   VideoKind   `json:"type"`
	Source VideoSource `json:"source"`
}

// ExtractionResult holds the content of exactly one facet. Facet tells
// which field is populated: Text for FacetText and FacetMarkdown, otherwise
// the matching slice.
type ExtractionResult struct {
	Facet  Facet
	Text   string
	Links  []LinkEntry
	Images []ImageEntry
	Videos []VideoEntry
}

// Content returns the populated variant, suitable for JSON encoding.
// List facets always return a non-nil slice.
func (r *ExtractionResult) Content() any {
	switch r.Facet {
	case FacetLinks:
		if r.Links == nil {
			return []LinkEntry{}
		}
		return r.Links
	case FacetImages:
		if r.Images == nil {
			return []ImageEntry{}
		}
		return r.Images
	case FacetVideos:
		if r.Videos == nil {
			return []VideoEntry{}
		}
		return r.Videos
	default:
		return r.Text
	}
}

// Extractor extracts one facet of content from an HTML document.
type Extractor interface {
	// Extract parses html and returns the requested facet. References are
	// resolved against baseURL. The selector, when non-empty, narrows the
	// text and markdown facets to the matching elements.
	// Returns EUNSUPPORTED for an unknown facet and EEXTRACT when the
	// document or selector cannot be processed.
	Extract(html string, baseURL string, facet Facet, selector string) (*ExtractionResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. Relative link and
	// image references are made absolute against baseURL when it is set.
	Convert(html string, baseURL string) (string, error)
}
