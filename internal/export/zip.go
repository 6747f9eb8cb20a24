// Package export packages per-page extracts of a document for download.
package export

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nfujimoto/pdfsift/internal/pdfdoc"
)

// PageBundle writes a zip archive to w containing one single-page PDF per
// page of the document at pdfPath.
func PageBundle(w io.Writer, pdfPath string, pageCount int) error {
	if pageCount < 1 {
		return fmt.Errorf("document has no pages")
	}

	dir, err := os.MkdirTemp("", "pdfsift-export-*")
	if err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	defer os.RemoveAll(dir)

	pages := make([]int, pageCount)
	for i := range pages {
		pages[i] = i + 1
	}
	if err := pdfdoc.ExtractPages(pdfPath, dir, pages); err != nil {
		return err
	}

	return writeZip(w, dir)
}

// writeZip zips every PDF in dir, ordered and named by page number. The
// extractor names files after the source with a trailing page number.
func writeZip(w io.Writer, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read export dir: %w", err)
	}

	type pageFile struct {
		name string
		page int
	}
	var files []pageFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".pdf") {
			continue
		}
		files = append(files, pageFile{name: e.Name(), page: trailingNumber(e.Name())})
	}
	if len(files) == 0 {
		return fmt.Errorf("no pages extracted")
	}
	sort.Slice(files, func(i, j int) bool { return files[i].page < files[j].page })

	zw := zip.NewWriter(w)
	for _, pf := range files {
		src, err := os.Open(filepath.Join(dir, pf.name))
		if err != nil {
			zw.Close()
			return fmt.Errorf("open page extract: %w", err)
		}
		dst, err := zw.Create(fmt.Sprintf("page_%03d.pdf", pf.page))
		if err != nil {
			src.Close()
			zw.Close()
			return fmt.Errorf("create zip entry: %w", err)
		}
		if _, err := io.Copy(dst, src); err != nil {
			src.Close()
			zw.Close()
			return fmt.Errorf("write zip entry: %w", err)
		}
		src.Close()
	}
	return zw.Close()
}

// trailingNumber parses the last run of digits in a file name, 0 if none.
func trailingNumber(name string) int {
	name = strings.TrimSuffix(name, ".pdf")
	end := len(name)
	for end > 0 && name[end-1] >= '0' && name[end-1] <= '9' {
		end--
	}
	n := 0
	for _, c := range name[end:] {
		n = n*10 + int(c-'0')
	}
	return n
}
