package webscrape

import "context"

// ArchiveMember is one named entry in an Archive.
type ArchiveMember struct {
	Name        string
	URL         string
	ContentType string
	Checksum    string
	Body        []byte
}

// Archive is an ordered set of downloaded resources. Members appear in the
// order their downloads succeeded.
type Archive struct {
	Members []*ArchiveMember
}

// ArchiveBuilder downloads resources and assembles them into an Archive.
type ArchiveBuilder interface {
	// BuildArchive downloads every URL and returns the ones that succeeded.
	// Individual download failures are skipped, never returned.
	// Returns ENOURLS when urls is empty.
	BuildArchive(ctx context.Context, urls []string) (*Archive, error)
}
