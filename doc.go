// Package swiftguide assembles and renders the Comprehensive Swift
// Programming Guide PDF.
//
// # Quick Start
//
// Create an assembler, append content, and render:
//
//	asm := swiftguide.New()
//	asm.AppendTitlePage(swiftguide.TitlePage{
//	    Title:       "My Guide",
//	    Subtitle:    "A subtitle",
//	    Description: "What this document covers",
//	})
//	asm.AppendChapterTitle("Chapter 1: Basics")
//	asm.AppendTopic(swiftguide.Topic{
//	    Title:       "1.1 Variables",
//	    Description: "How variables work.",
//	    Code:        "var x = 1",
//	    KeyPoints:   []string{"Prefer constants"},
//	})
//	err := asm.RenderFile("guide.pdf")
//
// # Document Model
//
// The assembler owns an ordered, append-only sequence of layout
// elements (spacers, page breaks, paragraphs, preformatted blocks,
// tables) and a registry of named styles. Append operations only grow
// the sequence; Render walks it once, front to back, and delegates
// pagination to gofpdf. Styles are resolved at render time, so the
// last DefineStyle call for a role wins.
//
// Rendering fails fast: an element referencing a style role that was
// never defined aborts the render with ErrUnknownStyle. There is no
// partial output and no recovery.
//
// # Configuration
//
// Use functional options to customize the assembler:
//
//	asm := swiftguide.New(
//	    swiftguide.WithPageSize("Letter"),
//	    swiftguide.WithHighlighting(true),
//	    swiftguide.WithClock(func() time.Time { return fixed }),
//	)
//
// WithClock pins the generated-on date and the PDF creation date,
// making two renders of the same content byte-identical.
//
// # Syntax Highlighting
//
// With WithHighlighting(true), code blocks are tokenised as Swift via
// chroma and rendered with per-token color. Token concatenation always
// reproduces the input verbatim, so the code text in the PDF is
// unchanged either way.
package swiftguide
