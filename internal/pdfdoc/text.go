package pdfdoc

import (
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// extractPageTexts reads per-page plain text. Pages that fail to decode
// yield an empty string so page numbering stays aligned.
func extractPageTexts(path string) ([]string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := reader.NumPage()
	texts := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			texts = append(texts, "")
			continue
		}
		texts = append(texts, pageText(page))
	}
	return texts, nil
}

// pageText reconstructs line-structured text for one page. Row-based
// extraction keeps heading lines intact; GetPlainText collapses them.
func pageText(page pdflib.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil {
		text, err := page.GetPlainText(nil)
		if err != nil {
			return ""
		}
		return text
	}

	// PDF Y grows upward, so higher positions come first.
	sorted := make([]*pdflib.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sorted = append(sorted, row)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position > sorted[j].Position
	})

	lines := make([]string, 0, len(sorted))
	for _, row := range sorted {
		if line := rowLine(row.Content); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// rowLine joins the text fragments of a row left to right, inserting a
// space where the horizontal gap between fragments is wider than glyph
// kerning would explain.
func rowLine(content []pdflib.Text) string {
	frags := make([]pdflib.Text, len(content))
	copy(frags, content)
	sort.SliceStable(frags, func(i, j int) bool {
		return frags[i].X < frags[j].X
	})

	var b strings.Builder
	for i, t := range frags {
		b.WriteString(t.S)
		if i+1 < len(frags) {
			gap := frags[i+1].X - (t.X + t.W)
			if gap > 1.0 && !strings.HasSuffix(t.S, " ") {
				b.WriteByte(' ')
			}
		}
	}
	return strings.TrimSpace(b.String())
}
