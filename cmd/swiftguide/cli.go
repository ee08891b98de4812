package main

import (
	"fmt"
	"io"
	"strings"

	swiftguide "github.com/alnah/go-swiftguide"
	"github.com/alnah/go-swiftguide/internal/config"
	"github.com/alnah/go-swiftguide/internal/content"
)

// run builds the complete guide and writes the PDF. Flag values win
// over config file values, which win over built-in defaults.
func run(flags *guideFlags, out io.Writer) error {
	if flags.version {
		fmt.Fprintf(out, "swiftguide %s\n", Version)
		return nil
	}

	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	a := swiftguide.New(buildOptions(flags, cfg)...)
	if err := applyStyleOverrides(a, cfg.Styles); err != nil {
		return err
	}

	title := content.TitlePage()
	if cfg.Document.Date != "" {
		title.Date = cfg.Document.Date
	}
	if flags.document.date != "" {
		title.Date = flags.document.date
	}

	if !flags.common.quiet {
		fmt.Fprintln(out, "Starting comprehensive Swift guide PDF generation...")
	}

	content.Build(a, title)

	if flags.common.verbose {
		parts, chapters, topics := content.Stats()
		fmt.Fprintf(out, "Assembled %d elements (%d parts, %d chapters, %d topics)\n",
			a.Len(), parts, chapters, topics)
	}

	output := flags.output
	if output == "" {
		output = cfg.Output.File
	}
	if output == "" {
		output = content.DefaultOutputFile
	}

	if err := a.RenderFile(output); err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(out, "Created %s\n", output)
	}
	return nil
}

// buildOptions merges flag and config values into assembler options.
func buildOptions(flags *guideFlags, cfg *config.Config) []swiftguide.Option {
	var opts []swiftguide.Option

	pageSize := cfg.Page.Size
	if flags.page.size != "" {
		pageSize = flags.page.size
	}
	if pageSize != "" {
		opts = append(opts, swiftguide.WithPageSize(pageSize))
	}

	margin := cfg.Page.Margin
	if flags.page.margin != 0 {
		margin = flags.page.margin
	}
	if margin != 0 {
		opts = append(opts, swiftguide.WithMargin(margin))
	}

	highlight := cfg.Code.Highlight
	if flags.code.noHighlight {
		highlight = false
	}
	opts = append(opts, swiftguide.WithHighlighting(highlight))

	codeStyle := cfg.Code.Style
	if flags.code.style != "" {
		codeStyle = flags.code.style
	}
	if codeStyle != "" {
		opts = append(opts, swiftguide.WithCodeStyle(codeStyle))
	}

	title := cfg.Document.Title
	if flags.document.title != "" {
		title = flags.document.title
	}
	author := cfg.Document.Author
	if flags.document.author != "" {
		author = flags.document.author
	}
	if title != "" || author != "" {
		opts = append(opts, swiftguide.WithMetadata(title, author))
	}

	if flags.pageNumbers || cfg.Footer.PageNumbers {
		opts = append(opts, swiftguide.WithPageNumbers(true))
	}
	if flags.uncompressed {
		opts = append(opts, swiftguide.WithCompression(false))
	}

	return opts
}

// applyStyleOverrides merges config style entries over the built-in
// role definitions. Zero-valued fields keep the built-in value.
func applyStyleOverrides(a *swiftguide.Assembler, styles map[string]config.StyleConfig) error {
	for role, sc := range styles {
		def, ok := a.Style(role)
		if !ok {
			def = swiftguide.StyleDefinition{FontFamily: "Helvetica", Size: 10}
		}

		if sc.Font != "" {
			def.FontFamily = sc.Font
		}
		if sc.Style != "" {
			def.FontStyle = sc.Style
		}
		if sc.Size != 0 {
			def.Size = sc.Size
		}
		if sc.Leading != 0 {
			def.Leading = sc.Leading
		}
		if sc.Color != "" {
			r, g, b, err := config.ParseHexColor(sc.Color)
			if err != nil {
				return err
			}
			def.Color = swiftguide.RGB{R: r, G: g, B: b}
		}
		if sc.Background != "" {
			r, g, b, err := config.ParseHexColor(sc.Background)
			if err != nil {
				return err
			}
			def.Background = &swiftguide.RGB{R: r, G: g, B: b}
		}
		if sc.SpaceBefore != 0 {
			def.SpaceBefore = sc.SpaceBefore
		}
		if sc.SpaceAfter != 0 {
			def.SpaceAfter = sc.SpaceAfter
		}
		if sc.Alignment != "" {
			def.Alignment = alignmentCode(sc.Alignment)
		}
		if sc.Indent != 0 {
			def.Indent = sc.Indent
		}

		if err := a.DefineStyle(role, def); err != nil {
			return err
		}
	}
	return nil
}

// alignmentCode maps the config file's word-form alignments onto the
// single-letter codes the style definitions use. Letter forms pass
// through, and unrecognized values are left for DefineStyle to reject.
func alignmentCode(s string) string {
	switch strings.ToLower(s) {
	case "left":
		return "L"
	case "center":
		return "C"
	case "right":
		return "R"
	case "justify":
		return "J"
	}
	return s
}

// printUsage writes usage information.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, `swiftguide - generate the Comprehensive Swift Programming Guide PDF

Usage:
  swiftguide [flags]

Flags:
  -o, --output string     output PDF file path (default: Comprehensive_Swift_Programming_Guide.pdf)
  -c, --config string     config file name or path
  -p, --page-size string  page size: a4, letter, legal (default: a4)
      --margin float      page margin in points (18-216, default: 72)
      --no-highlight      disable syntax highlighting of code examples
      --code-style string highlighting style name (default: github)
      --date string       title page date ("" = today)
      --doc-title string  PDF metadata title
      --doc-author string PDF metadata author
      --page-numbers      add page number footer
      --uncompressed      disable PDF stream compression
  -q, --quiet             only show errors
  -v, --verbose           show detailed progress
      --version           print version and exit`)
}
