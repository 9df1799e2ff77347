// Package webscrape fetches a single web page, extracts one facet of its
// content (text, links, images, videos or markdown) and optionally packages
// a batch of discovered resource URLs into a downloadable archive.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, gin/).
package webscrape
