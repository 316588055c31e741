package catalog

import (
	"strings"
	"testing"

	"github.com/san-kum/zplot/internal/grid"
)

func TestCatalogIntegrity(t *testing.T) {
	names := map[string]bool{}
	files := map[string]bool{}

	for _, f := range All() {
		if f.Name == "" || f.File == "" {
			t.Fatalf("figure with empty name or file: %+v", f)
		}
		if !strings.HasSuffix(f.File, ".png") {
			t.Errorf("%s: file %q lacks .png suffix", f.Name, f.File)
		}
		if names[f.Name] {
			t.Errorf("duplicate figure name %q", f.Name)
		}
		if files[f.File] {
			t.Errorf("duplicate output file %q", f.File)
		}
		names[f.Name] = true
		files[f.File] = true

		if f.XMax <= f.XMin || f.YMax <= f.YMin {
			t.Errorf("%s: degenerate range (%g,%g)x(%g,%g)", f.Name, f.XMin, f.XMax, f.YMin, f.YMax)
		}
		if f.F == nil {
			t.Errorf("%s: nil function", f.Name)
		}
	}
}

func TestEveryFigureEvaluates(t *testing.T) {
	mesh := grid.Mesh(-0.8, 0.9, 5, -0.7, 0.6, 4)

	for _, f := range All() {
		out := f.F(mesh)
		if !out.SameShape(mesh) {
			t.Errorf("%s: output shape %v, want %v", f.Name, out.Shape, mesh.Shape)
		}
	}
}

func TestGet(t *testing.T) {
	f, err := Get("zeta")
	if err != nil {
		t.Fatalf("Get(zeta): %v", err)
	}
	if f.File != "zeta.png" {
		t.Errorf("zeta file = %q", f.File)
	}

	if _, err := Get("no-such-figure"); err == nil {
		t.Error("expected error for unknown figure")
	}
}

func TestNamesOrdered(t *testing.T) {
	names := Names()
	if len(names) != len(All()) {
		t.Fatal("Names and All disagree on length")
	}
	if names[0] != "z1" {
		t.Errorf("first figure should be z1, got %s", names[0])
	}
}
