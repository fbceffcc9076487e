package services

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("boom")
	err := Wrap(ErrValidation, "pathbuild", "depth check", "too deep", base)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation marker, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	want := "validation error: pathbuild: depth check: too deep: boom"
	if err.Error() != want {
		t.Fatalf("unexpected message: got %q want %q", err.Error(), want)
	}
}

func TestWrapNilMarkerDefaultsTransient(t *testing.T) {
	err := Wrap(nil, "classify", "", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
}

func TestWrapEmptyDetail(t *testing.T) {
	err := Wrap(ErrExternalTool, "", "", "", nil)
	want := fmt.Sprintf("%s: service failure", ErrExternalTool)
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"validation", Wrap(ErrValidation, "a", "b", "c", nil), true},
		{"configuration", Wrap(ErrConfiguration, "a", "b", "c", nil), true},
		{"taxonomy", Wrap(ErrTaxonomy, "a", "b", "c", nil), true},
		{"transient", Wrap(ErrTransient, "a", "b", "c", nil), false},
		{"external", Wrap(ErrExternalTool, "a", "b", "c", nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFatal(tt.err); got != tt.want {
				t.Errorf("IsFatal() = %v, want %v", got, tt.want)
			}
		})
	}
}
