package gin

import (
	"bytes"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/webscrape"
	"github.com/fwojciec/webscrape/zip"
	"github.com/gin-gonic/gin"
)

// archiveTimeLayout formats the timestamp in archive download names.
const archiveTimeLayout = "20060102_150405"

// defaultArchiveLabel names archives requested without a content type.
const defaultArchiveLabel = "files"

var unsafeLabelChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// scrapeBody accepts "type" as an alias for "facet".
type scrapeBody struct {
	webscrape.ScrapeRequest
	Type string `json:"type" form:"type"`
}

// downloadBody is the payload of POST /download.
type downloadBody struct {
	URLs        []string `json:"urls" form:"urls"`
	ContentType string   `json:"contentType" form:"contentType"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleScrape(c *gin.Context) {
	var body scrapeBody
	if err := c.ShouldBind(&body); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, &webscrape.ScrapeResponse{
			Error: "Invalid request: " + err.Error(),
		})
		return
	}

	req := body.ScrapeRequest
	if strings.TrimSpace(req.Facet) == "" {
		req.Facet = body.Type
	}

	resp := s.Scraper.Scrape(c.Request.Context(), req)

	status := http.StatusOK
	if resp.Code == webscrape.ESUMMARIZE {
		status = http.StatusBadGateway
	}
	c.JSON(status, resp)
}

func (s *Server) handleDownload(c *gin.Context) {
	var body downloadBody
	if err := c.ShouldBind(&body); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	urls := make([]string, 0, len(body.URLs))
	for _, u := range body.URLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}

	archive, err := s.Archives.BuildArchive(c.Request.Context(), urls)
	if err != nil {
		_ = c.Error(err)
		status := http.StatusInternalServerError
		msg := webscrape.ErrorMessage(err)
		if webscrape.ErrorCode(err) == webscrape.ENOURLS {
			status = http.StatusBadRequest
			msg = "No URLs provided"
		}
		c.JSON(status, gin.H{"success": false, "error": msg})
		return
	}

	var buf bytes.Buffer
	if err := zip.Write(&buf, archive); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": webscrape.ErrorMessage(err)})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, ArchiveFilename(body.ContentType, s.Now())))
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

// ArchiveFilename names a download as scraped_<label>_<YYYYMMDD_HHMMSS>.zip.
// Characters outside [A-Za-z0-9_-] are replaced in the label.
func ArchiveFilename(contentType string, t time.Time) string {
	label := unsafeLabelChars.ReplaceAllString(strings.TrimSpace(contentType), "_")
	if strings.Trim(label, "_") == "" {
		label = defaultArchiveLabel
	}
	return fmt.Sprintf("scraped_%s_%s.zip", label, t.Format(archiveTimeLayout))
}
