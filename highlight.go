package swiftguide

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// span is a run of code text rendered in one color.
type span struct {
	Text  string
	Color RGB
}

// highlighter tokenises Swift source and maps token types to colors
// from a chroma style.
type highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// newHighlighter builds a highlighter for the named chroma style.
// Unknown style names fall back to the chroma default.
func newHighlighter(styleName string) *highlighter {
	lexer := lexers.Get("swift")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &highlighter{lexer: chroma.Coalesce(lexer), style: style}
}

// lines tokenises source and splits the token stream on line breaks.
// Concatenating the span texts of all lines, joined by "\n",
// reproduces source exactly: highlighting never alters the code text.
func (h *highlighter) lines(source string) ([][]span, error) {
	it, err := h.lexer.Tokenise(nil, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var out [][]span
	current := []span{}
	for _, tok := range it.Tokens() {
		color := h.colorFor(tok.Type)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				out = append(out, current)
				current = []span{}
			}
			if part != "" {
				current = append(current, span{Text: part, Color: color})
			}
		}
	}
	out = append(out, current)

	// Lexers normalize input to end with a newline; drop any trailing
	// lines the source itself does not have.
	want := len(strings.Split(source, "\n"))
	for len(out) > want {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (h *highlighter) colorFor(t chroma.TokenType) RGB {
	entry := h.style.Get(t)
	if entry.Colour.IsSet() {
		return RGB{int(entry.Colour.Red()), int(entry.Colour.Green()), int(entry.Colour.Blue())}
	}
	return colorBlack
}
