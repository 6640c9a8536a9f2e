package diagram

import (
	"testing"

	"github.com/matzehuels/archdiagram/pkg/errors"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"", LeftToRight, false},
		{"LR", LeftToRight, false},
		{"lr", LeftToRight, false},
		{"TB", TopToBottom, false},
		{" tb ", TopToBottom, false},
		{"top-to-bottom", TopToBottom, false},
		{"left-to-right", LeftToRight, false},
		{"RL", "", true},
		{"sideways", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidDirection) {
					t.Errorf("err = %v, want INVALID_DIRECTION", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := map[string]Category{
		"compute":  CategoryCompute,
		"Database": CategoryDatabase,
		" cdn ":    CategoryCDN,
		"":         CategoryGeneric,
		"react":    CategoryGeneric,
	}
	for in, want := range tests {
		if got := ParseCategory(in); got != want {
			t.Errorf("ParseCategory(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCategoriesSorted(t *testing.T) {
	cats := Categories()
	if len(cats) != len(knownCategories) {
		t.Fatalf("len = %d, want %d", len(cats), len(knownCategories))
	}
	for i := 1; i < len(cats); i++ {
		if cats[i-1] >= cats[i] {
			t.Errorf("not sorted at %d: %q >= %q", i, cats[i-1], cats[i])
		}
	}
}

func TestDefaultFilename(t *testing.T) {
	tests := []struct {
		title, want string
	}{
		{"Project Libraries and Interactions", "project_libraries_and_interactions"},
		{"  Spaced   Out ", "spaced_out"},
		{"single", "single"},
		{"", "diagrams_image"},
		{"   ", "diagrams_image"},
	}
	for _, tt := range tests {
		if got := DefaultFilename(tt.title); got != tt.want {
			t.Errorf("DefaultFilename(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestDisplayLabel(t *testing.T) {
	if got := (Node{ID: "id"}).DisplayLabel(); got != "id" {
		t.Errorf("node fallback = %q", got)
	}
	if got := (Node{ID: "id", Label: "Nice"}).DisplayLabel(); got != "Nice" {
		t.Errorf("node label = %q", got)
	}
	if got := (Cluster{ID: "c"}).DisplayLabel(); got != "c" {
		t.Errorf("cluster fallback = %q", got)
	}
}
