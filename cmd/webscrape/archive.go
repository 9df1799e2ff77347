package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/webscrape"
	wsgin "github.com/fwojciec/webscrape/gin"
	"github.com/fwojciec/webscrape/zip"
)

// Run executes the archive command.
func (c *ArchiveCmd) Run(deps *Dependencies) error {
	if c.Concurrency > 0 {
		deps.Archives.Concurrency = c.Concurrency
	}
	deps.Archives.RequestsPerSecond = c.Rate

	archive, err := deps.Archives.BuildArchive(deps.Ctx, c.URLs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webscrape.ErrorMessage(err))
		return err
	}

	output := c.Output
	if output == "" {
		output = wsgin.ArchiveFilename(c.ContentType, deps.Now())
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", output, err)
	}
	if err := zip.Write(f, archive); err != nil {
		_ = f.Close()
		_ = os.Remove(output)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Archived %d of %d URLs (%s) to %s\n",
		len(archive.Members), len(c.URLs), formatBytes(archiveSize(archive)), output)
	return nil
}
