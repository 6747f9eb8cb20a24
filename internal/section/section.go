package section

// OutlineEntry is one entry of a PDF's embedded outline (table of contents),
// as reported by the PDF library.
type OutlineEntry struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Page  int    `json:"page"` // 1-based
}

// Section is a detected document section. It comes either from the embedded
// outline or from the keyword heuristic applied to page text.
type Section struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Page  int    `json:"page"` // 1-based
}
