package section

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFormatText_IndentationAndShape(t *testing.T) {
	sections := []Section{
		{Level: 1, Title: "Introduction", Page: 1},
		{Level: 2, Title: "Background", Page: 2},
		{Level: 3, Title: "Prior Work", Page: 2},
	}

	got := FormatText(sections)
	lines := strings.Split(got, "\n")

	want := []string{
		"[1]： Introduction ... (P.1)",
		"  [2]： Background ... (P.2)",
		"    [3]： Prior Work ... (P.2)",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), got)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestFormatText_NonPositiveLevel(t *testing.T) {
	got := FormatText([]Section{{Level: 0, Title: "Odd", Page: 5}})
	if !strings.HasPrefix(got, "[?] ") {
		t.Errorf("expected [?] marker for level 0, got %q", got)
	}
	if strings.HasPrefix(got, " ") {
		t.Errorf("level 0 must not be indented, got %q", got)
	}
}

func TestFormatText_Empty(t *testing.T) {
	if got := FormatText(nil); got != "no sections detected" {
		t.Errorf("unexpected empty rendering %q", got)
	}
}

func TestFormatJSON(t *testing.T) {
	out, err := FormatJSON([]Section{{Level: 1, Title: "Intro", Page: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var back []Section
	if err := json.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(back) != 1 || back[0].Title != "Intro" {
		t.Errorf("round trip mismatch: %v", back)
	}
}

func TestFormatJSON_NilIsEmptyArray(t *testing.T) {
	out, err := FormatJSON(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("expected empty array, got %q", out)
	}
}
