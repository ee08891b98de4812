package swiftguide

import "fmt"

// Style role names. Every append operation references one of these
// (or a custom role registered via DefineStyle).
const (
	RoleMainTitle     = "main-title"
	RoleSubtitle      = "subtitle"
	RoleBody          = "body"
	RoleChapterTitle  = "chapter-title"
	RoleTopicTitle    = "topic-title"
	RoleSectionHeader = "section-header"
	RoleCode          = "code"
	RoleNote          = "note"
	RoleKeyPoint      = "key-point"
	RoleTOC           = "toc"
)

// RGB is a color in 0-255 component form.
type RGB struct {
	R, G, B int
}

// Named colors used by the default style sheet.
var (
	colorBlack     = RGB{0, 0, 0}
	colorDarkBlue  = RGB{0, 0, 139}
	colorDarkGreen = RGB{0, 100, 0}
	colorDarkRed   = RGB{139, 0, 0}
	colorPurple    = RGB{128, 0, 128}
	colorBlue      = RGB{0, 0, 255}
	colorLightGrey = RGB{211, 211, 211}
)

// StyleDefinition is a named set of visual attributes. All dimensions
// are in points.
type StyleDefinition struct {
	FontFamily  string  // "Helvetica", "Courier", "Times"
	FontStyle   string  // "" (regular), "B", "I", "BI"
	Size        float64 // font size
	Leading     float64 // line height; 0 means Size * 1.25
	Color       RGB
	Background  *RGB // fill behind each line (preformatted blocks)
	SpaceBefore float64
	SpaceAfter  float64
	Alignment   string  // "L", "C", "R", "J"; "" means "L"
	Indent      float64 // left indent
}

// Validate checks that the definition is well-formed.
func (s StyleDefinition) Validate() error {
	if s.Size <= 0 {
		return fmt.Errorf("%w: %.2f (must be positive)", ErrInvalidFontSize, s.Size)
	}
	switch s.Alignment {
	case "", "L", "C", "R", "J":
	default:
		return fmt.Errorf("%w: %q (must be L, C, R, or J)", ErrInvalidAlignment, s.Alignment)
	}
	if s.Indent < 0 {
		return fmt.Errorf("%w: %.2f (must be non-negative)", ErrInvalidIndent, s.Indent)
	}
	return nil
}

// leading returns the effective line height.
func (s StyleDefinition) leading() float64 {
	if s.Leading > 0 {
		return s.Leading
	}
	return s.Size * 1.25
}

// align returns the effective alignment.
func (s StyleDefinition) align() string {
	if s.Alignment == "" {
		return "L"
	}
	return s.Alignment
}

// defaultStyles returns the built-in style sheet for the guide.
func defaultStyles() map[string]StyleDefinition {
	codeBG := colorLightGrey
	return map[string]StyleDefinition{
		RoleMainTitle: {
			FontFamily: "Helvetica",
			FontStyle:  "B",
			Size:       28,
			Color:      colorDarkBlue,
			SpaceAfter: 30,
			Alignment:  "C",
		},
		RoleSubtitle: {
			FontFamily: "Helvetica",
			FontStyle:  "B",
			Size:       14,
			Color:      colorBlack,
			SpaceAfter: 6,
		},
		RoleBody: {
			FontFamily: "Helvetica",
			Size:       10,
			Leading:    12,
			Color:      colorBlack,
			SpaceAfter: 6,
		},
		RoleChapterTitle: {
			FontFamily:  "Helvetica",
			FontStyle:   "B",
			Size:        20,
			Color:       colorDarkGreen,
			SpaceBefore: 30,
			SpaceAfter:  20,
			Alignment:   "C",
		},
		RoleTopicTitle: {
			FontFamily:  "Helvetica",
			FontStyle:   "B",
			Size:        16,
			Color:       colorDarkRed,
			SpaceBefore: 20,
			SpaceAfter:  12,
		},
		RoleSectionHeader: {
			FontFamily:  "Helvetica",
			FontStyle:   "B",
			Size:        14,
			Color:       colorPurple,
			SpaceBefore: 12,
			SpaceAfter:  8,
		},
		RoleCode: {
			FontFamily:  "Courier",
			Size:        9,
			Leading:     12,
			Color:       colorBlack,
			Background:  &codeBG,
			SpaceBefore: 6,
			SpaceAfter:  12,
			Indent:      20,
		},
		RoleNote: {
			FontFamily: "Helvetica",
			FontStyle:  "I",
			Size:       11,
			Color:      colorBlue,
			SpaceAfter: 8,
			Indent:     20,
		},
		RoleKeyPoint: {
			FontFamily: "Helvetica",
			FontStyle:  "B",
			Size:       11,
			Color:      colorDarkRed,
		},
		RoleTOC: {
			FontFamily: "Helvetica",
			Size:       10,
			Leading:    12,
			Color:      colorBlack,
		},
	}
}

// DefineStyle registers or overwrites a named style. Overwriting an
// existing role is allowed; the definition in place at render time is
// the one used (last write wins).
func (a *Assembler) DefineStyle(role string, def StyleDefinition) error {
	if role == "" {
		return ErrEmptyRole
	}
	if err := def.Validate(); err != nil {
		return fmt.Errorf("style %q: %w", role, err)
	}
	a.styles[role] = def
	return nil
}

// Style returns the definition registered under role.
func (a *Assembler) Style(role string) (StyleDefinition, bool) {
	def, ok := a.styles[role]
	return def, ok
}
