package section

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultKeywords are heading words that mark a page-leading line as a
// likely section title. Covers common Japanese and English headings.
var DefaultKeywords = []string{
	"概要",
	"結論",
	"はじめに",
	"序論",
	"結果",
	"考察",
	"謝辞",
	"付録",
	"Overview",
	"Introduction",
	"Conclusion",
	"Results",
	"Discussion",
	"Acknowledgements",
	"Appendix",
}

// Config controls heuristic section detection.
type Config struct {
	Keywords    []string // heading words to search for in leading lines
	HeadLines   int      // leading lines inspected per page
	MaxTitleLen int      // lines at or above this many runes are never titles
}

// DefaultConfig returns the detection defaults.
func DefaultConfig() Config {
	return Config{
		Keywords:    DefaultKeywords,
		HeadLines:   5,
		MaxTitleLen: 80,
	}
}

// Detect merges a document's embedded outline with heuristically detected
// sections from page text, using the default configuration.
func Detect(outline []OutlineEntry, pageTexts []string) []Section {
	return DetectWithConfig(outline, pageTexts, DefaultConfig())
}

// DetectWithConfig combines outline entries with keyword-based candidates
// found in the leading lines of each page.
//
// A page contributes at most one heuristic candidate (first matching line
// wins), and pages already covered by an outline entry are skipped. Outline
// entries keep their level; heuristic entries get level 1. The merged list
// is de-duplicated by (title, page) with outline entries taking precedence,
// then stably sorted by page.
func DetectWithConfig(outline []OutlineEntry, pageTexts []string, cfg Config) []Section {
	if len(cfg.Keywords) == 0 {
		cfg.Keywords = DefaultKeywords
	}
	if cfg.HeadLines <= 0 {
		cfg.HeadLines = 5
	}
	if cfg.MaxTitleLen <= 0 {
		cfg.MaxTitleLen = 80
	}

	outlinePages := make(map[int]bool, len(outline))
	for _, e := range outline {
		outlinePages[e.Page] = true
	}

	var heuristic []Section
	for i, text := range pageTexts {
		page := i + 1
		if outlinePages[page] {
			continue
		}
		lines := strings.Split(text, "\n")
		if len(lines) > cfg.HeadLines {
			lines = lines[:cfg.HeadLines]
		}
		for _, line := range lines {
			if utf8.RuneCountInString(line) >= cfg.MaxTitleLen {
				continue
			}
			if !containsKeyword(line, cfg.Keywords) {
				continue
			}
			heuristic = append(heuristic, Section{
				Level: 1,
				Title: strings.TrimSpace(line),
				Page:  page,
			})
			break
		}
	}

	sections := make([]Section, 0, len(outline)+len(heuristic))
	for _, e := range outline {
		if e.Page > 0 {
			sections = append(sections, Section{Level: e.Level, Title: e.Title, Page: e.Page})
		}
	}
	for _, h := range heuristic {
		if !contains(sections, h.Title, h.Page) {
			sections = append(sections, h)
		}
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Page < sections[j].Page
	})

	return sections
}

func containsKeyword(line string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

func contains(sections []Section, title string, page int) bool {
	for _, s := range sections {
		if s.Title == title && s.Page == page {
			return true
		}
	}
	return false
}
