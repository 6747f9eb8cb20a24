// Package textfilter removes unwanted lines (page numbers, running headers
// and footers) from extracted page text using user-supplied regular
// expressions.
package textfilter

import (
	"regexp"
	"strings"
)

// FilterLines drops every line of text that matches any of the given
// patterns and rejoins the remainder with newlines.
//
// Patterns are trimmed and blank entries ignored. Matching uses search
// semantics: a pattern matches a line if it matches anywhere within it.
// If any pattern fails to compile, the text is returned unfiltered rather
// than half-filtered. Callers that need to know whether filtering actually
// ran should use Apply.
func FilterLines(text string, patterns []string) string {
	out, _ := Apply(text, patterns)
	return out
}

// Apply behaves like FilterLines and additionally reports whether the
// patterns were applied. It returns (text, false) when the pattern list is
// empty, contains only blank entries, or contains an invalid pattern.
func Apply(text string, patterns []string) (string, bool) {
	if len(patterns) == 0 {
		return text, false
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		re, err := regexp.Compile(p)
		if err != nil {
			// One bad pattern aborts the whole set.
			return text, false
		}
		compiled = append(compiled, re)
	}
	if len(compiled) == 0 {
		return text, false
	}

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if matchesAny(line, compiled) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n"), true
}

func matchesAny(line string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
