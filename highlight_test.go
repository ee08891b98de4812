package swiftguide

import (
	"strings"
	"testing"
)

func joinSpans(lines [][]span) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, sp := range line {
			b.WriteString(sp.Text)
		}
	}
	return b.String()
}

func TestHighlighterRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{
			name:   "single line",
			source: `let x = 1`,
		},
		{
			name: "multi line function",
			source: `func greet(person: String) -> String {
    return "Hello, \(person)!"
}`,
		},
		{
			name:   "blank lines preserved",
			source: "let a = 1\n\nlet b = 2",
		},
		{
			name:   "trailing spaces preserved",
			source: "let a = 1  \nlet b = 2",
		},
		{
			name:   "comment only",
			source: "// just a comment",
		},
	}

	h := newHighlighter("github")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := h.lines(tt.source)
			if err != nil {
				t.Fatalf("lines() error = %v", err)
			}
			if got := joinSpans(lines); got != tt.source {
				t.Errorf("round trip mismatch:\ngot  %q\nwant %q", got, tt.source)
			}
			if want := len(strings.Split(tt.source, "\n")); len(lines) != want {
				t.Errorf("line count = %d, want %d", len(lines), want)
			}
		})
	}
}

func TestHighlighterColors(t *testing.T) {
	h := newHighlighter("github")
	lines, err := h.lines(`func add(a: Int, b: Int) -> Int { return a + b }`)
	if err != nil {
		t.Fatalf("lines() error = %v", err)
	}

	colored := false
	for _, sp := range lines[0] {
		if sp.Color != colorBlack {
			colored = true
			break
		}
	}
	if !colored {
		t.Error("expected at least one non-default colored span for keyword-rich code")
	}
}

func TestHighlighterUnknownStyle(t *testing.T) {
	h := newHighlighter("definitely-not-a-style")
	lines, err := h.lines("let x = 1")
	if err != nil {
		t.Fatalf("lines() error = %v", err)
	}
	if joinSpans(lines) != "let x = 1" {
		t.Error("fallback style must still round-trip the source")
	}
}
