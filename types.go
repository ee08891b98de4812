package swiftguide

import (
	"fmt"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeA4     = "A4"
	PageSizeLetter = "Letter"
	PageSizeLegal  = "Legal"
)

// Margin bounds in points.
const (
	MinMargin     = 18.0
	MaxMargin     = 216.0
	DefaultMargin = 72.0
)

// TitlePage describes the first page of the document.
type TitlePage struct {
	Title       string
	Subtitle    string
	Description string
	Date        string // empty means "today" per the assembler clock
}

// TOCEntry is one row of the table of contents. SectionHeader rows
// render in bold. Page is a placeholder column; the original document
// never fills it in.
type TOCEntry struct {
	Label         string
	Page          string
	SectionHeader bool
}

// Topic is the recurring unit of content: a heading plus optional
// description, code sample, bullet points, and note. Empty optional
// fields are omitted from the output entirely.
type Topic struct {
	Title       string
	Description string
	Code        string
	KeyPoints   []string
	Notes       string
}

// Option configures an Assembler.
type Option func(*Assembler)

// assemblerConfig holds internal configuration for Assembler.
type assemblerConfig struct {
	pageSize    string
	margin      float64
	compress    bool
	highlight   bool
	codeStyle   string
	pageNumbers bool
	title       string
	author      string
	now         func() time.Time
}

// WithPageSize sets the page size: A4 (default), Letter, or Legal.
// Matching is case-insensitive.
func WithPageSize(size string) Option {
	return func(a *Assembler) {
		a.cfg.pageSize = size
	}
}

// WithMargin sets the page margin in points, applied to all sides.
func WithMargin(margin float64) Option {
	return func(a *Assembler) {
		a.cfg.margin = margin
	}
}

// WithCompression toggles PDF stream compression. On by default;
// turning it off produces larger files whose content streams are
// plain text, which the tests rely on.
func WithCompression(enabled bool) Option {
	return func(a *Assembler) {
		a.cfg.compress = enabled
	}
}

// WithHighlighting toggles chroma syntax coloring for code blocks.
func WithHighlighting(enabled bool) Option {
	return func(a *Assembler) {
		a.cfg.highlight = enabled
	}
}

// WithCodeStyle selects the chroma style used when highlighting is
// enabled. Unknown names fall back to the chroma default.
func WithCodeStyle(name string) Option {
	return func(a *Assembler) {
		a.cfg.codeStyle = name
	}
}

// WithPageNumbers adds a "Page N of M" footer to every page.
func WithPageNumbers(enabled bool) Option {
	return func(a *Assembler) {
		a.cfg.pageNumbers = enabled
	}
}

// WithMetadata sets the PDF document title and author.
func WithMetadata(title, author string) Option {
	return func(a *Assembler) {
		a.cfg.title = title
		a.cfg.author = author
	}
}

// WithClock overrides the time source used for the generated-on date
// and the PDF creation date. Pinning the clock makes renders of the
// same content byte-identical. Panics if now is nil (programmer
// error, similar to time.NewTicker).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("swiftguide: WithClock time source must not be nil")
	}
	return func(a *Assembler) {
		a.cfg.now = now
	}
}

// validatePageSize checks that size names a supported page format.
func validatePageSize(size string) error {
	switch strings.ToLower(size) {
	case "a4", "letter", "legal":
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidPageSize, size)
}

// validateMargin checks that the margin is within bounds.
func validateMargin(margin float64) error {
	if margin < MinMargin || margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f points)", ErrInvalidMargin, margin, MinMargin, MaxMargin)
	}
	return nil
}
