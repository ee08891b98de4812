package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type target struct {
	Name string `yaml:"name"`
	Size int    `yaml:"size"`
}

func TestUnmarshal(t *testing.T) {
	t.Run("parses valid YAML", func(t *testing.T) {
		var v target
		if err := Unmarshal([]byte("name: code\nsize: 9\n"), &v); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if v.Name != "code" || v.Size != 9 {
			t.Errorf("got %+v, want {code 9}", v)
		}
	})

	t.Run("empty data returns ErrNilData", func(t *testing.T) {
		var v target
		if err := Unmarshal(nil, &v); !errors.Is(err, ErrNilData) {
			t.Errorf("error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination returns ErrNilDestination", func(t *testing.T) {
		if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input returns ErrInputTooLarge", func(t *testing.T) {
		var v target
		data := []byte("name: " + strings.Repeat("x", MaxInputSize))
		if err := Unmarshal(data, &v); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})
}

func TestUnmarshalStrict(t *testing.T) {
	t.Run("accepts known fields", func(t *testing.T) {
		var v target
		if err := UnmarshalStrict([]byte("name: note\n"), &v); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		var v target
		if err := UnmarshalStrict([]byte("name: x\nbogus: 1\n"), &v); err == nil {
			t.Error("UnmarshalStrict() = nil, want error for unknown field")
		}
	})
}
