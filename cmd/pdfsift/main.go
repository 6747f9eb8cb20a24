// Command pdfsift inspects a local PDF without running the server: it
// prints detected sections, metadata or filtered page text.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/nfujimoto/pdfsift/internal/pdfdoc"
	"github.com/nfujimoto/pdfsift/internal/report"
	"github.com/nfujimoto/pdfsift/internal/section"
	"github.com/nfujimoto/pdfsift/internal/textfilter"
)

type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	var (
		showMeta = flag.Bool("metadata", false, "print document metadata")
		asJSON   = flag.Bool("json", false, "print metadata and sections as JSON")
		pageNum  = flag.Int("page", 0, "print text of the given page (1-based)")
		noColor  = flag.Bool("no-color", false, "disable colored output")
		excludes stringList
	)
	flag.Var(&excludes, "exclude", "regex for lines to drop from page text (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file.pdf\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *noColor {
		color.NoColor = true
	}

	path := flag.Arg(0)
	if err := pdfdoc.Validate(path); err != nil {
		fatal("invalid pdf: %v", err)
	}
	doc, err := pdfdoc.Extract(path)
	if err != nil {
		fatal("extraction failed: %v", err)
	}
	sections := section.Detect(doc.Outline, doc.PageTexts)

	switch {
	case *asJSON:
		out, err := report.JSON(doc.Meta, sections)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(out)

	case *pageNum > 0:
		if *pageNum > doc.PageCount {
			fatal("page %d out of range (document has %d pages)", *pageNum, doc.PageCount)
		}
		text, applied := textfilter.Apply(doc.PageTexts[*pageNum-1], excludes)
		if len(excludes) > 0 && !applied {
			color.Yellow("warning: exclude patterns not applied (empty or invalid)")
		}
		fmt.Println(text)

	case *showMeta:
		printMetadata(doc.Meta)

	default:
		printSections(doc, sections)
	}
}

func printMetadata(meta pdfdoc.Metadata) {
	label := color.New(color.FgCyan)
	fields := []struct {
		name  string
		value string
	}{
		{"Title", meta.Title},
		{"Author", meta.Author},
		{"Subject", meta.Subject},
		{"Keywords", meta.Keywords},
		{"Creator", meta.Creator},
		{"Producer", meta.Producer},
		{"Created", meta.CreationDate},
		{"Modified", meta.ModDate},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		label.Printf("%s: ", f.name)
		fmt.Println(f.value)
	}
}

func printSections(doc *pdfdoc.Document, sections []section.Section) {
	header := color.New(color.FgWhite, color.Bold)
	header.Printf("%s (%d pages)\n\n", doc.Path, doc.PageCount)

	if len(sections) == 0 {
		color.Yellow("no sections detected")
		return
	}

	levelColors := []*color.Color{
		color.New(color.FgCyan, color.Bold),
		color.New(color.FgCyan),
		color.New(color.FgWhite),
	}
	for _, sec := range sections {
		c := levelColors[len(levelColors)-1]
		if sec.Level >= 1 && sec.Level <= len(levelColors) {
			c = levelColors[sec.Level-1]
		}
		c.Println(section.FormatText([]section.Section{sec}))
	}
}

func fatal(format string, args ...any) {
	color.Red(format, args...)
	os.Exit(1)
}
