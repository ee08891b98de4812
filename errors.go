package swiftguide

import "errors"

// Sentinel errors for assembler and render operations.
var (
	ErrUnknownStyle = errors.New("style role is not defined")
	ErrEmptyRole    = errors.New("style role cannot be empty")
	ErrRender       = errors.New("PDF rendering failed")
	ErrHighlight    = errors.New("code highlighting failed")

	// Style validation errors.
	ErrInvalidFontSize  = errors.New("invalid font size")
	ErrInvalidAlignment = errors.New("invalid alignment")
	ErrInvalidIndent    = errors.New("invalid indent")

	// Page settings validation errors.
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")

	// Table validation errors.
	ErrEmptyTable         = errors.New("table must have at least one row")
	ErrColumnWidthMismatch = errors.New("column widths do not match row cells")
)
