package figures

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestWritePNGFailsOnMissingDirectory(t *testing.T) {
	ds, spec := coreRelativeSpeed()
	p, err := NewBarFigure(DefaultTheme(), ds, spec)
	if err != nil {
		t.Fatalf("build figure: %v", err)
	}
	path := filepath.Join(t.TempDir(), "no-such-dir", "out.png")
	if err := WritePNG(p, 4*vg.Inch, 2*vg.Inch, path); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

func TestWritePNGOverwrites(t *testing.T) {
	ds, spec := coreRelativeSpeed()
	p, err := NewBarFigure(DefaultTheme(), ds, spec)
	if err != nil {
		t.Fatalf("build figure: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.png")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seed stale file: %v", err)
	}
	if err := WritePNG(p, 4*vg.Inch, 2*vg.Inch, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(b) < 8 || string(b[1:4]) != "PNG" {
		t.Fatalf("output is not a PNG, got %d bytes", len(b))
	}
}
