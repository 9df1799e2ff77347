package main

import (
	"fmt"

	"github.com/fwojciec/webscrape"
)

// formatBytes renders a byte count for terminal output.
func formatBytes(n int) string {
	const (
		kb = 1024
		mb = kb * 1024
	)
	switch {
	case n >= mb:
		return fmt.Sprintf("%.1f MB", float64(n)/mb)
	case n >= kb:
		return fmt.Sprintf("%.1f KB", float64(n)/kb)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// archiveSize sums member body sizes.
func archiveSize(archive *webscrape.Archive) int {
	total := 0
	for _, m := range archive.Members {
		total += len(m.Body)
	}
	return total
}
