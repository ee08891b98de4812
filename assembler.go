package swiftguide

import "time"

// Spacing constants for the composed appends, in points.
const (
	titleTopSpacer      = 144 // 2 inches above the main title
	titleBlockSpacer    = 36  // between title page blocks
	titleDateSpacer     = 21.6
	chapterTitleSpacer  = 20
	topicTrailingSpacer = 15
	descriptionSpacer   = 8
	keyPointsSpacer     = 8
)

// tocColWidths are the label and page-placeholder column widths of
// the table of contents, in points (4.5in and 0.5in).
var tocColWidths = []float64{324, 36}

// Assembler accumulates an ordered list of layout elements and named
// styles, then materializes them into a single paginated PDF. It is
// not safe for concurrent use; the intended caller is a single
// goroutine appending top to bottom and rendering once.
type Assembler struct {
	cfg      assemblerConfig
	styles   map[string]StyleDefinition
	elements []element
}

// New creates an Assembler with the built-in style sheet and default
// configuration (A4, one-inch margins, compressed output).
func New(opts ...Option) *Assembler {
	a := &Assembler{
		cfg: assemblerConfig{
			pageSize:  PageSizeA4,
			margin:    DefaultMargin,
			compress:  true,
			codeStyle: "github",
			now:       time.Now,
		},
		styles: defaultStyles(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Len returns the number of elements appended so far.
func (a *Assembler) Len() int {
	return len(a.elements)
}

// AppendSpacer appends a vertical gap of height points.
func (a *Assembler) AppendSpacer(height float64) {
	a.elements = append(a.elements, spacerElement{Height: height})
}

// AppendPageBreak forces the following content onto a new page.
func (a *Assembler) AppendPageBreak() {
	a.elements = append(a.elements, pageBreakElement{})
}

// AppendParagraph appends wrapped text in the named style.
func (a *Assembler) AppendParagraph(text, role string) {
	a.elements = append(a.elements, paragraphElement{Text: text, Role: role})
}

// AppendPreformatted appends verbatim text in the named style.
// Whitespace and line breaks are preserved exactly.
func (a *Assembler) AppendPreformatted(text, role string) {
	a.elements = append(a.elements, preformattedElement{Text: text, Role: role})
}

// AppendTable appends a table with the given rows. colWidths is in
// points; nil splits the content width evenly.
func (a *Assembler) AppendTable(rows []TableRow, colWidths []float64, role string) {
	a.elements = append(a.elements, tableElement{Rows: rows, ColWidths: colWidths, Role: role})
}

// AppendTitlePage appends the fixed title-page sequence: top spacer,
// title, subtitle, description, generated-on date, page break. An
// empty Date uses the assembler clock.
func (a *Assembler) AppendTitlePage(tp TitlePage) {
	date := tp.Date
	if date == "" {
		date = a.cfg.now().Format("January 02, 2006")
	}

	a.AppendSpacer(titleTopSpacer)
	a.AppendParagraph(tp.Title, RoleMainTitle)
	a.AppendSpacer(titleBlockSpacer)
	a.AppendParagraph(tp.Subtitle, RoleSubtitle)
	a.AppendSpacer(titleBlockSpacer)
	a.AppendParagraph(tp.Description, RoleBody)
	a.AppendSpacer(titleDateSpacer)
	a.AppendParagraph("Generated on: "+date, RoleBody)
	a.AppendPageBreak()
}

// AppendTableOfContents appends a "Table of Contents" heading and a
// two-column table of the entries. Entries flagged SectionHeader
// render bold. Entries with an empty label act as separator rows.
func (a *Assembler) AppendTableOfContents(entries []TOCEntry) {
	rows := make([]TableRow, len(entries))
	for i, e := range entries {
		rows[i] = TableRow{
			Cells: []string{e.Label, e.Page},
			Bold:  e.SectionHeader,
		}
	}

	a.AppendParagraph("Table of Contents", RoleChapterTitle)
	a.AppendTable(rows, tocColWidths, RoleTOC)
	a.AppendPageBreak()
}

// AppendChapterTitle appends a page break followed by a heading in
// the chapter style.
func (a *Assembler) AppendChapterTitle(title string) {
	a.AppendPageBreak()
	a.AppendParagraph(title, RoleChapterTitle)
	a.AppendSpacer(chapterTitleSpacer)
}

// AppendTopic appends a topic: heading, then for each optional field
// that is present, its sub-heading and content. Empty fields produce
// no output at all, not empty headers.
func (a *Assembler) AppendTopic(t Topic) {
	a.AppendParagraph(t.Title, RoleTopicTitle)

	if t.Description != "" {
		a.AppendParagraph(t.Description, RoleBody)
		a.AppendSpacer(descriptionSpacer)
	}

	if t.Code != "" {
		a.AppendParagraph("Code Example:", RoleSectionHeader)
		a.AppendPreformatted(t.Code, RoleCode)
	}

	if len(t.KeyPoints) > 0 {
		a.AppendParagraph("Key Points:", RoleSectionHeader)
		for _, point := range t.KeyPoints {
			a.AppendParagraph("• "+point, RoleKeyPoint)
		}
		a.AppendSpacer(keyPointsSpacer)
	}

	if t.Notes != "" {
		a.AppendParagraph("Notes:", RoleSectionHeader)
		a.AppendParagraph(t.Notes, RoleNote)
	}

	a.AppendSpacer(topicTrailingSpacer)
}
