package swiftguide

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// tableCellPadding is the extra row height beyond the line height, in
// points.
const tableCellPadding = 4

// Render walks the accumulated element sequence exactly once, in
// order, and writes the paginated PDF to w. Every style role
// referenced by the sequence must resolve; otherwise the render fails
// with ErrUnknownStyle before any output is produced. Render does not
// mutate the assembler, so appending and rendering again is allowed.
func (a *Assembler) Render(w io.Writer) error {
	if err := validatePageSize(a.cfg.pageSize); err != nil {
		return err
	}
	if err := validateMargin(a.cfg.margin); err != nil {
		return err
	}
	if err := a.validateElements(); err != nil {
		return err
	}

	pdf := gofpdf.New("P", "pt", a.cfg.pageSize, "")
	pdf.SetMargins(a.cfg.margin, a.cfg.margin, a.cfg.margin)
	pdf.SetAutoPageBreak(true, a.cfg.margin)
	pdf.SetCompression(a.cfg.compress)
	pdf.SetCreationDate(a.cfg.now())
	pdf.SetCreator("go-swiftguide", false)
	if a.cfg.title != "" {
		pdf.SetTitle(a.cfg.title, false)
	}
	if a.cfg.author != "" {
		pdf.SetAuthor(a.cfg.author, false)
	}

	if a.cfg.pageNumbers {
		pdf.AliasNbPages("")
		pdf.SetFooterFunc(func() {
			pdf.SetY(-30)
			pdf.SetFont("Helvetica", "I", 8)
			pdf.SetTextColor(128, 128, 128)
			pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		})
	}

	pageW, pageH := pdf.GetPageSize()
	r := &renderer{
		pdf:      pdf,
		styles:   a.styles,
		leftM:    a.cfg.margin,
		contentW: pageW - 2*a.cfg.margin,
		pageH:    pageH,
		bottomM:  a.cfg.margin,
		// Core fonts expect cp1252; translate UTF-8 input (bullets,
		// accented characters) instead of emitting mojibake.
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
	if a.cfg.highlight {
		r.highlighter = newHighlighter(a.cfg.codeStyle)
	}

	pdf.AddPage()
	for _, el := range a.elements {
		if err := r.renderElement(el); err != nil {
			return err
		}
	}

	if pdf.Err() {
		return fmt.Errorf("%w: %v", ErrRender, pdf.Error())
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}

// RenderFile renders the document to a file at path.
func (a *Assembler) RenderFile(path string) error {
	f, err := os.Create(path) // #nosec G304 -- output path is caller-provided
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := a.Render(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// validateElements checks that every style role referenced by the
// element sequence is defined and that tables are well-formed, before
// any page is produced.
func (a *Assembler) validateElements() error {
	for _, el := range a.elements {
		var role string
		switch el := el.(type) {
		case paragraphElement:
			role = el.Role
		case preformattedElement:
			role = el.Role
		case tableElement:
			if len(el.Rows) == 0 {
				return ErrEmptyTable
			}
			if len(el.ColWidths) > 0 {
				for _, row := range el.Rows {
					if len(row.Cells) > len(el.ColWidths) {
						return fmt.Errorf("%w: row has %d cells, %d widths",
							ErrColumnWidthMismatch, len(row.Cells), len(el.ColWidths))
					}
				}
			}
			role = el.Role
		default:
			continue
		}
		if _, ok := a.styles[role]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownStyle, role)
		}
	}
	return nil
}

// renderer holds per-render state: the open PDF document and the page
// geometry derived from the assembler configuration.
type renderer struct {
	pdf         *gofpdf.Fpdf
	styles      map[string]StyleDefinition
	highlighter *highlighter
	tr          func(string) string
	leftM       float64
	contentW    float64
	pageH       float64
	bottomM     float64
}

func (r *renderer) renderElement(el element) error {
	switch el := el.(type) {
	case spacerElement:
		r.pdf.Ln(el.Height)
	case pageBreakElement:
		r.pdf.AddPage()
	case paragraphElement:
		r.renderParagraph(el)
	case preformattedElement:
		return r.renderPreformatted(el)
	case tableElement:
		r.renderTable(el)
	default:
		return fmt.Errorf("%w: unknown element %T", ErrRender, el)
	}
	return nil
}

func (r *renderer) renderParagraph(el paragraphElement) {
	st := r.styles[el.Role]

	if st.SpaceBefore > 0 {
		r.pdf.Ln(st.SpaceBefore)
	}

	r.pdf.SetFont(st.FontFamily, st.FontStyle, st.Size)
	r.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)

	// Indented paragraphs shift the left margin so wrapped lines keep
	// the indent, then restore it.
	if st.Indent > 0 {
		r.pdf.SetLeftMargin(r.leftM + st.Indent)
		r.pdf.SetX(r.leftM + st.Indent)
	}
	r.pdf.MultiCell(r.contentW-st.Indent, st.leading(), r.tr(el.Text), "", st.align(), false)
	if st.Indent > 0 {
		r.pdf.SetLeftMargin(r.leftM)
	}

	if st.SpaceAfter > 0 {
		r.pdf.Ln(st.SpaceAfter)
	}
	r.pdf.SetTextColor(0, 0, 0)
}

func (r *renderer) renderPreformatted(el preformattedElement) error {
	st := r.styles[el.Role]
	lineH := st.leading()
	width := r.contentW - st.Indent

	if st.SpaceBefore > 0 {
		r.pdf.Ln(st.SpaceBefore)
	}

	r.pdf.SetFont(st.FontFamily, st.FontStyle, st.Size)
	r.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)

	fill := st.Background != nil
	if fill {
		r.pdf.SetFillColor(st.Background.R, st.Background.G, st.Background.B)
	}

	lines := strings.Split(el.Text, "\n")
	if r.highlighter != nil {
		spanLines, err := r.highlighter.lines(el.Text)
		if err != nil {
			return err
		}
		r.renderHighlightedLines(spanLines, st, width, lineH, fill)
	} else {
		for _, line := range lines {
			r.pdf.SetX(r.leftM + st.Indent)
			r.pdf.CellFormat(width, lineH, r.tr(line), "", 1, "L", fill, 0, "")
		}
	}

	if st.SpaceAfter > 0 {
		r.pdf.Ln(st.SpaceAfter)
	}
	r.pdf.SetTextColor(0, 0, 0)
	return nil
}

// renderHighlightedLines draws each code line as a filled band plus a
// run of colored token cells. Page breaks are handled manually since
// the background rect and the text must stay together.
func (r *renderer) renderHighlightedLines(spanLines [][]span, st StyleDefinition, width, lineH float64, fill bool) {
	x := r.leftM + st.Indent
	for _, line := range spanLines {
		if r.pdf.GetY()+lineH > r.pageH-r.bottomM {
			r.pdf.AddPage()
		}
		y := r.pdf.GetY()
		if fill {
			r.pdf.Rect(x, y, width, lineH, "F")
		}
		r.pdf.SetXY(x, y)
		for _, sp := range line {
			if sp.Text == "" {
				continue
			}
			text := r.tr(sp.Text)
			r.pdf.SetTextColor(sp.Color.R, sp.Color.G, sp.Color.B)
			r.pdf.CellFormat(r.pdf.GetStringWidth(text), lineH, text, "", 0, "L", false, 0, "")
		}
		r.pdf.SetXY(x, y+lineH)
	}
	r.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
}

func (r *renderer) renderTable(el tableElement) {
	st := r.styles[el.Role]
	rowH := st.leading() + tableCellPadding

	widths := el.ColWidths
	if len(widths) == 0 {
		cols := 1
		if len(el.Rows) > 0 {
			cols = len(el.Rows[0].Cells)
		}
		w := r.contentW / float64(cols)
		widths = make([]float64, cols)
		for i := range widths {
			widths[i] = w
		}
	}

	r.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
	for _, row := range el.Rows {
		style := st.FontStyle
		if row.Bold && !strings.Contains(style, "B") {
			style += "B"
		}
		r.pdf.SetFont(st.FontFamily, style, st.Size)
		for i, cell := range row.Cells {
			w := r.contentW
			if i < len(widths) {
				w = widths[i]
			}
			r.pdf.CellFormat(w, rowH, r.tr(cell), "", 0, "L", false, 0, "")
		}
		r.pdf.Ln(rowH)
	}
	r.pdf.SetTextColor(0, 0, 0)
}
