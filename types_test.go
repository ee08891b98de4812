package swiftguide

import (
	"errors"
	"testing"
	"time"
)

func TestValidatePageSize(t *testing.T) {
	tests := []struct {
		name    string
		size    string
		wantErr bool
	}{
		{name: "a4 lowercase", size: "a4"},
		{name: "A4 uppercase", size: "A4"},
		{name: "letter", size: "Letter"},
		{name: "legal", size: "legal"},
		{name: "empty", size: "", wantErr: true},
		{name: "unsupported", size: "tabloid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePageSize(tt.size)
			if tt.wantErr && !errors.Is(err, ErrInvalidPageSize) {
				t.Errorf("error = %v, want ErrInvalidPageSize", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("error = %v, want nil", err)
			}
		})
	}
}

func TestValidateMargin(t *testing.T) {
	tests := []struct {
		name    string
		margin  float64
		wantErr bool
	}{
		{name: "default", margin: DefaultMargin},
		{name: "lower bound", margin: MinMargin},
		{name: "upper bound", margin: MaxMargin},
		{name: "below bound", margin: 10, wantErr: true},
		{name: "above bound", margin: 300, wantErr: true},
		{name: "zero", margin: 0, wantErr: true},
		{name: "negative", margin: -72, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateMargin(tt.margin)
			if tt.wantErr && !errors.Is(err, ErrInvalidMargin) {
				t.Errorf("error = %v, want ErrInvalidMargin", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("error = %v, want nil", err)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	a := New()
	if a.cfg.pageSize != PageSizeA4 {
		t.Errorf("pageSize = %q, want A4", a.cfg.pageSize)
	}
	if a.cfg.margin != DefaultMargin {
		t.Errorf("margin = %v, want %v", a.cfg.margin, DefaultMargin)
	}
	if !a.cfg.compress {
		t.Error("compression must default to on")
	}
	if a.cfg.highlight {
		t.Error("highlighting must default to off in the library")
	}
	if a.cfg.codeStyle != "github" {
		t.Errorf("codeStyle = %q, want github", a.cfg.codeStyle)
	}
	if a.cfg.now == nil {
		t.Error("clock must default to time.Now")
	}
}

func TestOptions(t *testing.T) {
	a := New(
		WithPageSize(PageSizeLetter),
		WithMargin(36),
		WithCompression(false),
		WithHighlighting(true),
		WithCodeStyle("monokai"),
		WithPageNumbers(true),
		WithMetadata("Title", "Author"),
	)
	if a.cfg.pageSize != PageSizeLetter || a.cfg.margin != 36 || a.cfg.compress ||
		!a.cfg.highlight || a.cfg.codeStyle != "monokai" || !a.cfg.pageNumbers ||
		a.cfg.title != "Title" || a.cfg.author != "Author" {
		t.Errorf("options not applied: %+v", a.cfg)
	}
}

func TestWithClock(t *testing.T) {
	t.Run("pins the time source", func(t *testing.T) {
		want := time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC)
		a := New(WithClock(func() time.Time { return want }))
		if got := a.cfg.now(); !got.Equal(want) {
			t.Errorf("now() = %v, want %v", got, want)
		}
	})

	t.Run("nil time source panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("WithClock(nil) must panic")
			}
		}()
		WithClock(nil)
	})
}
