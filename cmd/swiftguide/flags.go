package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across concerns.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds document metadata flags.
type documentFlags struct {
	title  string
	author string
	date   string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size   string
	margin float64
}

// codeFlags holds syntax highlighting flags.
type codeFlags struct {
	noHighlight bool
	style       string
}

// guideFlags holds all flags for the generator.
type guideFlags struct {
	common       commonFlags
	output       string
	pageNumbers  bool
	uncompressed bool
	version      bool
	document     documentFlags
	page         pageFlags
	code         codeFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addDocumentFlags adds document metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "doc-title", "", "PDF metadata title")
	fs.StringVar(&f.author, "doc-author", "", "PDF metadata author")
	fs.StringVar(&f.date, "date", "", "title page date (\"\" = today)")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a4, letter, legal")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in points (18-216)")
}

// addCodeFlags adds syntax highlighting flags to a FlagSet.
func addCodeFlags(fs *flag.FlagSet, f *codeFlags) {
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable syntax highlighting")
	fs.StringVar(&f.style, "code-style", "", "highlighting style name")
}

// parseFlags parses command-line flags.
func parseFlags(args []string) (*guideFlags, error) {
	fs := flag.NewFlagSet("swiftguide", flag.ContinueOnError)
	f := &guideFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF file path")
	fs.BoolVar(&f.pageNumbers, "page-numbers", false, "add page number footer")
	fs.BoolVar(&f.uncompressed, "uncompressed", false, "disable PDF stream compression")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addPageFlags(fs, &f.page)
	addCodeFlags(fs, &f.code)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}
