// Package report renders extraction results for human consumption.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/nfujimoto/pdfsift/internal/pdfdoc"
	"github.com/nfujimoto/pdfsift/internal/section"
)

type metaField struct {
	label string
	value string
}

func metaFields(meta pdfdoc.Metadata) []metaField {
	return []metaField{
		{"Title", meta.Title},
		{"Author", meta.Author},
		{"Subject", meta.Subject},
		{"Keywords", meta.Keywords},
		{"Creator", meta.Creator},
		{"Producer", meta.Producer},
		{"Created", meta.CreationDate},
		{"Modified", meta.ModDate},
	}
}

// Markdown builds a report of document metadata and detected sections.
func Markdown(meta pdfdoc.Metadata, sections []section.Section) string {
	var b strings.Builder

	b.WriteString("## Document metadata\n\n")
	wrote := false
	for _, f := range metaFields(meta) {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", f.label, f.value)
		wrote = true
	}
	if !wrote {
		b.WriteString("_No metadata present._\n")
	}

	b.WriteString("\n## Sections\n\n")
	if len(sections) == 0 {
		b.WriteString("_No sections detected._\n")
	} else {
		b.WriteString("```\n")
		b.WriteString(section.FormatText(sections))
		b.WriteString("\n```\n")
	}

	return b.String()
}

// HTML renders the markdown report to an HTML fragment.
func HTML(meta pdfdoc.Metadata, sections []section.Section) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(meta, sections)), &buf); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}

// Structure is the combined metadata + sections record, the JSON
// counterpart of the markdown report.
type Structure struct {
	Metadata pdfdoc.Metadata   `json:"metadata"`
	Sections []section.Section `json:"sections"`
}

// JSON renders the full structure as indented JSON.
func JSON(meta pdfdoc.Metadata, sections []section.Section) (string, error) {
	if sections == nil {
		sections = []section.Section{}
	}
	data, err := json.MarshalIndent(Structure{Metadata: meta, Sections: sections}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal structure: %w", err)
	}
	return string(data), nil
}
