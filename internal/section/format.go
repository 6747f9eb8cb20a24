package section

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatText renders sections as an indented listing, one per line:
//
//	[1]： Introduction ... (P.1)
//	  [2]： Background ... (P.2)
//
// Nesting depth follows the section level.
func FormatText(sections []Section) string {
	if len(sections) == 0 {
		return "no sections detected"
	}

	var b strings.Builder
	for i, sec := range sections {
		if i > 0 {
			b.WriteByte('\n')
		}
		indent := 0
		if sec.Level > 1 {
			indent = sec.Level - 1
		}
		marker := fmt.Sprintf("[%d]", sec.Level)
		if sec.Level <= 0 {
			marker = "[?] "
		}
		fmt.Fprintf(&b, "%s%s： %s ... (P.%d)", strings.Repeat("  ", indent), marker, sec.Title, sec.Page)
	}
	return b.String()
}

// FormatJSON renders sections as indented JSON.
func FormatJSON(sections []Section) (string, error) {
	if sections == nil {
		sections = []Section{}
	}
	data, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal sections: %w", err)
	}
	return string(data), nil
}
