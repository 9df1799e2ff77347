package webscrape_test

import (
	"testing"

	"github.com/fwojciec/webscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFacet(t *testing.T) {
	t.Parallel()

	t.Run("accepts known facets case-insensitively", func(t *testing.T) {
		t.Parallel()

		f, err := webscrape.ParseFacet(" Links ")
		require.NoError(t, err)
		assert.Equal(t, webscrape.FacetLinks, f)

		f, err = webscrape.ParseFacet("markdown")
		require.NoError(t, err)
		assert.Equal(t, webscrape.FacetMarkdown, f)
	})

	t.Run("defaults to text", func(t *testing.T) {
		t.Parallel()

		f, err := webscrape.ParseFacet("")
		require.NoError(t, err)
		assert.Equal(t, webscrape.FacetText, f)
	})

	t.Run("rejects unknown facet", func(t *testing.T) {
		t.Parallel()

		_, err := webscrape.ParseFacet("audio")
		require.Error(t, err)
		assert.Equal(t, webscrape.EUNSUPPORTED, webscrape.ErrorCode(err))
	})
}

func TestExtractionResult_Content(t *testing.T) {
	t.Parallel()

	t.Run("text facet returns string", func(t *testing.T) {
		t.Parallel()

		r := &webscrape.ExtractionResult{Facet: webscrape.FacetText, Text: "hello"}
		assert.Equal(t, "hello", r.Content())
	})

	t.Run("list facets never return nil slices", func(t *testing.T) {
		t.Parallel()

		links := (&webscrape.ExtractionResult{Facet: webscrape.FacetLinks}).Content()
		assert.Equal(t, []webscrape.LinkEntry{}, links)

		images := (&webscrape.ExtractionResult{Facet: webscrape.FacetImages}).Content()
		assert.Equal(t, []webscrape.ImageEntry{}, images)

		videos := (&webscrape.ExtractionResult{Facet: webscrape.FacetVideos}).Content()
		assert.Equal(t, []webscrape.VideoEntry{}, videos)
	})
}
