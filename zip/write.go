package zip

import (
	"archive/zip"
	"io"
	"time"

	"github.com/fwojciec/webscrape"
)

// Write serializes archive as a deflated zip file, one entry per member in
// member order. Each entry's comment carries the member checksum.
func Write(w io.Writer, archive *webscrape.Archive) error {
	zw := zip.NewWriter(w)
	now := time.Now()

	for _, m := range archive.Members {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     m.Name,
			Comment:  m.Checksum,
			Method:   zip.Deflate,
			Modified: now,
		})
		if err != nil {
			return err
		}
		if _, err := fw.Write(m.Body); err != nil {
			return err
		}
	}

	return zw.Close()
}
