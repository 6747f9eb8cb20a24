package textfilter

import "testing"

func TestFilterLines_EmptyPatternsIsIdentity(t *testing.T) {
	text := "a\nb\nc"
	if got := FilterLines(text, nil); got != text {
		t.Errorf("expected identity, got %q", got)
	}
	if got := FilterLines(text, []string{}); got != text {
		t.Errorf("expected identity for empty slice, got %q", got)
	}
}

func TestFilterLines_DropsMatchingLines(t *testing.T) {
	text := "keep\nPage 3\nalso keep"
	got := FilterLines(text, []string{`^\s*Page\s+\d+\s*$`})
	if got != "keep\nalso keep" {
		t.Errorf("expected page line removed, got %q", got)
	}
}

func TestFilterLines_SearchSemantics(t *testing.T) {
	// The pattern matches anywhere within the line, not the whole line.
	got := FilterLines("prefix CONFIDENTIAL suffix\nclean", []string{"CONFIDENTIAL"})
	if got != "clean" {
		t.Errorf("expected substring match to drop the line, got %q", got)
	}
}

func TestFilterLines_InvalidPatternFailsOpen(t *testing.T) {
	text := "keep\nPage 3\nalso keep"
	got := FilterLines(text, []string{"onlyinvalid("})
	if got != text {
		t.Errorf("invalid pattern must return text unchanged, got %q", got)
	}
}

func TestFilterLines_OneInvalidPatternDisablesAll(t *testing.T) {
	text := "keep\nPage 3\nalso keep"
	got := FilterLines(text, []string{`Page \d+`, "broken("})
	if got != text {
		t.Errorf("a single invalid pattern must disable the valid ones too, got %q", got)
	}
}

func TestFilterLines_WhitespaceOnlyPatternsIgnored(t *testing.T) {
	text := "a\nb"
	if got := FilterLines(text, []string{"  ", "\t", ""}); got != text {
		t.Errorf("whitespace-only patterns must behave as no patterns, got %q", got)
	}
}

func TestFilterLines_PatternsAreTrimmed(t *testing.T) {
	got := FilterLines("keep\nPage 3", []string{"  ^Page  "})
	if got != "keep" {
		t.Errorf("expected trimmed pattern to apply, got %q", got)
	}
}

func TestFilterLines_LineMatchingMultiplePatternsExcludedOnce(t *testing.T) {
	got := FilterLines("both match here\nkeep", []string{"both", "match"})
	if got != "keep" {
		t.Errorf("expected single exclusion, got %q", got)
	}
}

func TestFilterLines_BlankLinesPreservedUnlessMatched(t *testing.T) {
	text := "\nbody\n"
	got := FilterLines(text, []string{"nothing-matches"})
	if got != text {
		t.Errorf("unmatched blank lines must survive, got %q", got)
	}

	got = FilterLines("\nbody\n", []string{"^$"})
	if got != "body" {
		t.Errorf("^$ should remove blank lines, got %q", got)
	}
}

func TestApply_ReportsWhetherFilteringRan(t *testing.T) {
	tests := []struct {
		name        string
		patterns    []string
		wantApplied bool
	}{
		{"no patterns", nil, false},
		{"blank patterns", []string{" ", ""}, false},
		{"invalid pattern", []string{"("}, false},
		{"valid pattern", []string{"x"}, true},
		{"valid pattern no matches", []string{"zzz"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, applied := Apply("some\ntext", tt.patterns)
			if applied != tt.wantApplied {
				t.Errorf("applied = %v, want %v", applied, tt.wantApplied)
			}
		})
	}
}
