package swiftguide

// element is the tagged variant over every layout instruction the
// assembler can hold. The render step performs a single exhaustive
// dispatch over these types; nothing else consumes the sequence.
type element interface {
	element()
}

// spacerElement advances the cursor by a fixed vertical distance.
type spacerElement struct {
	Height float64 // points
}

// pageBreakElement forces the next element onto a fresh page.
type pageBreakElement struct{}

// paragraphElement is a block of wrapped text in a named style.
type paragraphElement struct {
	Text string
	Role string
}

// preformattedElement is verbatim text: no wrapping, no reflow, line
// breaks preserved exactly as given.
type preformattedElement struct {
	Text string
	Role string
}

// tableElement is a grid of text cells with fixed column widths.
type tableElement struct {
	Rows      []TableRow
	ColWidths []float64 // points; nil means equal split of content width
	Role      string
}

func (spacerElement) element()       {}
func (pageBreakElement) element()    {}
func (paragraphElement) element()    {}
func (preformattedElement) element() {}
func (tableElement) element()        {}

// TableRow is one row of a table element. Bold rows render with a bold
// variant of the table style; the flag is set explicitly at
// construction time rather than inferred from row position.
type TableRow struct {
	Cells []string
	Bold  bool
}
