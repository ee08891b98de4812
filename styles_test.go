package swiftguide

import (
	"errors"
	"testing"
)

func TestDefineStyle(t *testing.T) {
	t.Run("registers a custom role", func(t *testing.T) {
		a := New()
		def := StyleDefinition{FontFamily: "Times", Size: 13}
		if err := a.DefineStyle("sidebar", def); err != nil {
			t.Fatalf("DefineStyle() error = %v", err)
		}
		got, ok := a.Style("sidebar")
		if !ok {
			t.Fatal("Style(sidebar) not found after DefineStyle")
		}
		if got.FontFamily != "Times" || got.Size != 13 {
			t.Errorf("got %+v, want Times/13", got)
		}
	})

	t.Run("last write wins on redefinition", func(t *testing.T) {
		a := New()
		if err := a.DefineStyle(RoleBody, StyleDefinition{FontFamily: "Times", Size: 11}); err != nil {
			t.Fatalf("DefineStyle() error = %v", err)
		}
		if err := a.DefineStyle(RoleBody, StyleDefinition{FontFamily: "Courier", Size: 12}); err != nil {
			t.Fatalf("DefineStyle() error = %v", err)
		}
		got, _ := a.Style(RoleBody)
		if got.FontFamily != "Courier" || got.Size != 12 {
			t.Errorf("got %+v, want the second definition", got)
		}
	})

	t.Run("empty role returns ErrEmptyRole", func(t *testing.T) {
		a := New()
		err := a.DefineStyle("", StyleDefinition{FontFamily: "Helvetica", Size: 10})
		if !errors.Is(err, ErrEmptyRole) {
			t.Errorf("error = %v, want ErrEmptyRole", err)
		}
	})

	t.Run("invalid definition is rejected and not stored", func(t *testing.T) {
		a := New()
		before, _ := a.Style(RoleBody)
		err := a.DefineStyle(RoleBody, StyleDefinition{FontFamily: "Helvetica", Size: -1})
		if !errors.Is(err, ErrInvalidFontSize) {
			t.Errorf("error = %v, want ErrInvalidFontSize", err)
		}
		after, _ := a.Style(RoleBody)
		if after != before {
			t.Error("failed DefineStyle must not modify the registry")
		}
	})
}

func TestStyleDefinitionValidate(t *testing.T) {
	tests := []struct {
		name    string
		def     StyleDefinition
		wantErr error
	}{
		{
			name: "valid minimal",
			def:  StyleDefinition{FontFamily: "Helvetica", Size: 10},
		},
		{
			name: "valid with all alignments",
			def:  StyleDefinition{FontFamily: "Helvetica", Size: 10, Alignment: "C"},
		},
		{
			name:    "zero size",
			def:     StyleDefinition{FontFamily: "Helvetica"},
			wantErr: ErrInvalidFontSize,
		},
		{
			name:    "negative size",
			def:     StyleDefinition{FontFamily: "Helvetica", Size: -4},
			wantErr: ErrInvalidFontSize,
		},
		{
			name:    "unknown alignment",
			def:     StyleDefinition{FontFamily: "Helvetica", Size: 10, Alignment: "X"},
			wantErr: ErrInvalidAlignment,
		},
		{
			name:    "negative indent",
			def:     StyleDefinition{FontFamily: "Helvetica", Size: 10, Indent: -5},
			wantErr: ErrInvalidIndent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultStyles(t *testing.T) {
	a := New()

	roles := []string{
		RoleMainTitle, RoleSubtitle, RoleBody, RoleChapterTitle,
		RoleTopicTitle, RoleSectionHeader, RoleCode, RoleNote,
		RoleKeyPoint, RoleTOC,
	}
	for _, role := range roles {
		def, ok := a.Style(role)
		if !ok {
			t.Errorf("built-in role %q missing", role)
			continue
		}
		if err := def.Validate(); err != nil {
			t.Errorf("built-in role %q invalid: %v", role, err)
		}
	}

	code, _ := a.Style(RoleCode)
	if code.FontFamily != "Courier" {
		t.Errorf("code font = %q, want Courier", code.FontFamily)
	}
	if code.Background == nil {
		t.Error("code style must carry a background fill")
	}

	note, _ := a.Style(RoleNote)
	if note.FontStyle != "I" {
		t.Errorf("note font style = %q, want italic", note.FontStyle)
	}
}

func TestStyleDefinitionDefaults(t *testing.T) {
	t.Run("leading defaults to 1.25x size", func(t *testing.T) {
		s := StyleDefinition{Size: 10}
		if got := s.leading(); got != 12.5 {
			t.Errorf("leading() = %v, want 12.5", got)
		}
	})

	t.Run("explicit leading wins", func(t *testing.T) {
		s := StyleDefinition{Size: 10, Leading: 14}
		if got := s.leading(); got != 14 {
			t.Errorf("leading() = %v, want 14", got)
		}
	})

	t.Run("alignment defaults to left", func(t *testing.T) {
		s := StyleDefinition{Size: 10}
		if got := s.align(); got != "L" {
			t.Errorf("align() = %q, want L", got)
		}
	})
}
