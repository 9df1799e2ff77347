package main

import (
	"encoding/json"

	"github.com/fwojciec/webscrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	resp := deps.Scraper.Scrape(deps.Ctx, webscrape.ScrapeRequest{
		URL:      c.URL,
		Selector: c.Selector,
		Facet:    c.Facet,
		Prompt:   c.Prompt,
	})

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return err
	}

	if !resp.Success {
		return webscrape.Errorf(resp.Code, "%s", resp.Error)
	}
	return nil
}
