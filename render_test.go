package swiftguide

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderValidation(t *testing.T) {
	t.Run("unknown style role fails before output", func(t *testing.T) {
		a := New()
		a.AppendParagraph("text", "no-such-role")

		var buf bytes.Buffer
		err := a.Render(&buf)
		if !errors.Is(err, ErrUnknownStyle) {
			t.Errorf("error = %v, want ErrUnknownStyle", err)
		}
		if buf.Len() != 0 {
			t.Errorf("wrote %d bytes despite validation failure", buf.Len())
		}
	})

	t.Run("invalid page size", func(t *testing.T) {
		a := New(WithPageSize("tabloid"))
		if err := a.Render(&bytes.Buffer{}); !errors.Is(err, ErrInvalidPageSize) {
			t.Errorf("error = %v, want ErrInvalidPageSize", err)
		}
	})

	t.Run("margin out of bounds", func(t *testing.T) {
		a := New(WithMargin(500))
		if err := a.Render(&bytes.Buffer{}); !errors.Is(err, ErrInvalidMargin) {
			t.Errorf("error = %v, want ErrInvalidMargin", err)
		}
	})

	t.Run("empty table", func(t *testing.T) {
		a := New()
		a.AppendTable(nil, nil, RoleTOC)
		if err := a.Render(&bytes.Buffer{}); !errors.Is(err, ErrEmptyTable) {
			t.Errorf("error = %v, want ErrEmptyTable", err)
		}
	})

	t.Run("more cells than column widths", func(t *testing.T) {
		a := New()
		a.AppendTable([]TableRow{{Cells: []string{"a", "b", "c"}}}, []float64{100, 50}, RoleTOC)
		if err := a.Render(&bytes.Buffer{}); !errors.Is(err, ErrColumnWidthMismatch) {
			t.Errorf("error = %v, want ErrColumnWidthMismatch", err)
		}
	})
}

func TestRenderDeterministic(t *testing.T) {
	build := func() *Assembler {
		a := New(WithClock(fixedClock()))
		a.AppendTitlePage(TitlePage{Title: "Guide", Subtitle: "Sub", Description: "Desc"})
		a.AppendParagraph("Body text", RoleBody)
		a.AppendPreformatted("let x = 1\nlet y = 2", RoleCode)
		return a
	}

	var first, second bytes.Buffer
	if err := build().Render(&first); err != nil {
		t.Fatalf("first Render() error = %v", err)
	}
	if err := build().Render(&second); err != nil {
		t.Fatalf("second Render() error = %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("identical inputs with a pinned clock must produce identical bytes")
	}
}

func TestRenderAppendOrder(t *testing.T) {
	a := New(WithCompression(false), WithClock(fixedClock()))
	a.AppendParagraph("AlphaMarker", RoleBody)
	a.AppendParagraph("BetaMarker", RoleBody)
	a.AppendParagraph("GammaMarker", RoleBody)

	var buf bytes.Buffer
	if err := a.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.Bytes()
	alpha := bytes.Index(out, []byte("AlphaMarker"))
	beta := bytes.Index(out, []byte("BetaMarker"))
	gamma := bytes.Index(out, []byte("GammaMarker"))
	if alpha < 0 || beta < 0 || gamma < 0 {
		t.Fatalf("markers missing from uncompressed output (%d, %d, %d)", alpha, beta, gamma)
	}
	if !(alpha < beta && beta < gamma) {
		t.Errorf("markers out of order: %d, %d, %d", alpha, beta, gamma)
	}
}

func TestRenderTitlePagePlacement(t *testing.T) {
	a := New(WithCompression(false), WithClock(fixedClock()))
	a.AppendTitlePage(TitlePage{
		Title:       "HeadlineMarker",
		Subtitle:    "SubtitleMarker",
		Description: "SynopsisMarker",
	})

	var buf bytes.Buffer
	if err := a.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// Content streams are written in page order, so everything before
	// the first endstream belongs to page one.
	out := buf.Bytes()
	firstPageEnd := bytes.Index(out, []byte("endstream"))
	if firstPageEnd < 0 {
		t.Fatal("no content stream in output")
	}
	for _, marker := range []string{"HeadlineMarker", "SubtitleMarker", "SynopsisMarker"} {
		if n := bytes.Count(out, []byte(marker)); n != 1 {
			t.Errorf("%q occurs %d times, want exactly once", marker, n)
		}
		if idx := bytes.Index(out, []byte(marker)); idx > firstPageEnd {
			t.Errorf("%q at offset %d, after the first page's stream (%d)", marker, idx, firstPageEnd)
		}
	}
}

func TestRenderSinglePage(t *testing.T) {
	a := New(WithCompression(false), WithClock(fixedClock()))
	a.AppendParagraph("just one page", RoleBody)

	var buf bytes.Buffer
	if err := a.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("/Count 1")) {
		t.Error("expected a single-page document")
	}
}

func TestRenderPageBreak(t *testing.T) {
	a := New(WithCompression(false), WithClock(fixedClock()))
	a.AppendParagraph("first", RoleBody)
	a.AppendPageBreak()
	a.AppendParagraph("second", RoleBody)

	var buf bytes.Buffer
	if err := a.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("/Count 2")) {
		t.Error("expected two pages after an explicit page break")
	}
}

func TestRenderHighlightedCode(t *testing.T) {
	src := "func greet(name: String) -> String {\n    return name\n}"

	a := New(WithCompression(false), WithClock(fixedClock()), WithHighlighting(true))
	a.AppendPreformatted(src, RoleCode)

	var buf bytes.Buffer
	if err := a.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	// Tokens are drawn as separate cells but the text itself survives.
	for _, want := range []string{"func", "greet", "String", "return"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("highlighted output missing %q", want)
		}
	}
}

func TestRenderTableOfContents(t *testing.T) {
	a := New(WithCompression(false), WithClock(fixedClock()))
	a.AppendTableOfContents([]TOCEntry{
		{Label: "PART I: FUNDAMENTALS", SectionHeader: true},
		{Label: "Chapter 1: Basics"},
	})

	var buf bytes.Buffer
	if err := a.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, want := range []string{"Table of Contents", "PART I: FUNDAMENTALS", "Chapter 1: Basics"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderTableBoldKeepsItalic(t *testing.T) {
	a := New(WithCompression(false), WithClock(fixedClock()))
	err := a.DefineStyle("contents-italic", StyleDefinition{
		FontFamily: "Helvetica",
		FontStyle:  "I",
		Size:       10,
	})
	if err != nil {
		t.Fatalf("DefineStyle() error = %v", err)
	}
	a.AppendTable([]TableRow{{Cells: []string{"heading"}, Bold: true}}, nil, "contents-italic")

	var buf bytes.Buffer
	if err := a.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Helvetica-BoldOblique")) {
		t.Error("bold row in an italic style must keep the italic component")
	}
}

func TestRenderReusable(t *testing.T) {
	a := New(WithClock(fixedClock()))
	a.AppendParagraph("one", RoleBody)

	if err := a.Render(&bytes.Buffer{}); err != nil {
		t.Fatalf("first Render() error = %v", err)
	}
	if got := a.Len(); got != 1 {
		t.Fatalf("Len() after render = %d, want 1 (render must not consume elements)", got)
	}

	a.AppendParagraph("two", RoleBody)
	var buf bytes.Buffer
	if err := a.Render(&buf); err != nil {
		t.Fatalf("second Render() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("second render produced no output")
	}
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")

	a := New(WithClock(fixedClock()))
	a.AppendParagraph("file output", RoleBody)
	if err := a.RenderFile(path); err != nil {
		t.Fatalf("RenderFile() error = %v", err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- test-controlled path
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestRenderMetadata(t *testing.T) {
	a := New(
		WithCompression(false),
		WithClock(fixedClock()),
		WithMetadata("Swift Guide", "The Authors"),
	)
	a.AppendParagraph("body", RoleBody)

	var buf bytes.Buffer
	if err := a.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Swift Guide")) {
		t.Error("metadata title missing from output")
	}
	if !bytes.Contains(buf.Bytes(), []byte("The Authors")) {
		t.Error("metadata author missing from output")
	}
}

func TestRenderPageNumbers(t *testing.T) {
	a := New(WithCompression(false), WithClock(fixedClock()), WithPageNumbers(true))
	a.AppendParagraph("numbered", RoleBody)

	var buf bytes.Buffer
	if err := a.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Page 1 of")) {
		t.Error("page number footer missing")
	}
}
