// Package pdfdoc wraps the external PDF engines: ledongthuc/pdf for page
// text and pdfcpu for structure (outline, document info, page operations).
package pdfdoc

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/nfujimoto/pdfsift/internal/section"
)

// Metadata holds the document information fields surfaced to clients.
type Metadata struct {
	Title        string `json:"title,omitempty"`
	Author       string `json:"author,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Keywords     string `json:"keywords,omitempty"`
	Creator      string `json:"creator,omitempty"`
	Producer     string `json:"producer,omitempty"`
	CreationDate string `json:"creation_date,omitempty"`
	ModDate      string `json:"mod_date,omitempty"`
}

// Document is the extracted view of one PDF file.
type Document struct {
	Path      string
	PageCount int
	PageTexts []string // index 0 = page 1
	Outline   []section.OutlineEntry
	Meta      Metadata
}

// Validate runs a structural check on the PDF before extraction.
func Validate(path string) error {
	if err := api.ValidateFile(path, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("validate pdf: %w", err)
	}
	return nil
}

// Extract reads page texts, outline and metadata from the PDF at path.
func Extract(path string) (*Document, error) {
	texts, err := extractPageTexts(path)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()

	count, err := api.PageCount(f, conf)
	if err != nil {
		return nil, fmt.Errorf("page count: %w", err)
	}

	// Outline and metadata are best effort: documents without bookmarks
	// or an info dictionary are common and still useful.
	outline := readOutline(f, conf)
	meta := readMetadata(f, path, conf)

	return &Document{
		Path:      path,
		PageCount: count,
		PageTexts: texts,
		Outline:   outline,
		Meta:      meta,
	}, nil
}

// ExtractPages writes one single-page PDF per selected page into dir.
func ExtractPages(path, dir string, pages []int) error {
	sel := make([]string, len(pages))
	for i, p := range pages {
		sel[i] = strconv.Itoa(p)
	}
	if err := api.ExtractPagesFile(path, dir, sel, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("extract pages: %w", err)
	}
	return nil
}

func readOutline(rs io.ReadSeeker, conf *model.Configuration) []section.OutlineEntry {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil
	}
	bms, err := api.Bookmarks(rs, conf)
	if err != nil {
		return nil
	}
	var entries []section.OutlineEntry
	flattenBookmarks(bms, 1, &entries)
	return entries
}

// flattenBookmarks turns pdfcpu's bookmark tree into a flat outline where
// level is the nesting depth, root entries at level 1.
func flattenBookmarks(bms []pdfcpu.Bookmark, level int, out *[]section.OutlineEntry) {
	for _, bm := range bms {
		*out = append(*out, section.OutlineEntry{
			Level: level,
			Title: bm.Title,
			Page:  bm.PageFrom,
		})
		flattenBookmarks(bm.Kids, level+1, out)
	}
}

func readMetadata(rs io.ReadSeeker, fileName string, conf *model.Configuration) Metadata {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return Metadata{}
	}
	info, err := api.PDFInfo(rs, fileName, nil, conf)
	if err != nil || info == nil {
		return Metadata{}
	}
	return Metadata{
		Title:        info.Title,
		Author:       info.Author,
		Subject:      info.Subject,
		Keywords:     strings.Join(info.Keywords, ", "),
		Creator:      info.Creator,
		Producer:     info.Producer,
		CreationDate: info.CreationDate,
		ModDate:      info.ModificationDate,
	}
}
