package figures

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestReportDatasetsAreWellFormed(t *testing.T) {
	for _, fig := range reportFigures() {
		ds, spec := fig.build()
		if err := ds.Validate(); err != nil {
			t.Fatalf("%s: %v", fig.name, err)
		}
		if spec.File == "" {
			t.Fatalf("%s: no output file name", fig.name)
		}
		if spec.Width <= 0 || spec.Height <= 0 {
			t.Fatalf("%s: degenerate figure size", fig.name)
		}
	}
}

func TestCoreRelativeSpeedShape(t *testing.T) {
	ds, spec := coreRelativeSpeed()
	if len(ds.Labels) != 7 || len(ds.Series) != 1 {
		t.Fatalf("expected 7 categories and 1 series, got %d/%d", len(ds.Labels), len(ds.Series))
	}
	if !spec.HasParity || spec.Parity != 1.0 {
		t.Fatalf("expected parity line at 1.0")
	}
	if spec.Precision != 2 {
		t.Fatalf("expected 2-decimal annotations, got %d", spec.Precision)
	}
}

func TestAsyncEchoMediansSeriesColorsDistinct(t *testing.T) {
	ds, _ := asyncEchoMedians()
	if len(ds.Series) != 3 {
		t.Fatalf("expected 3 series, got %d", len(ds.Series))
	}
	for i := range ds.Series {
		for j := i + 1; j < len(ds.Series); j++ {
			if ds.Series[i].Color == ds.Series[j].Color {
				t.Fatalf("series %q and %q share a color; legend would be ambiguous",
					ds.Series[i].Name, ds.Series[j].Name)
			}
		}
	}
}

func TestAsyncPairedRatioAnnotationSides(t *testing.T) {
	ds, spec := asyncPairedRatio()
	if !ds.Series[0].LabelBelow || ds.Series[1].LabelBelow {
		t.Fatalf("expected epoll labels below and io_uring labels above")
	}
	if !spec.HasParity || spec.Parity != 1.0 {
		t.Fatalf("expected parity line at 1.0")
	}
	if spec.Precision != 3 {
		t.Fatalf("expected 3-decimal annotations, got %d", spec.Precision)
	}
}

func TestGenerateAllWritesThreeFigures(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateAll(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"perf-core-relative-speed.png",
		"perf-async-echo-medians-ms.png",
		"perf-async-paired-ratio.png",
	}
	for _, name := range want {
		fi, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("missing figure %s: %v", name, err)
		}
		if fi.Size() == 0 {
			t.Fatalf("figure %s is empty", name)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != len(want) {
		t.Fatalf("expected exactly %d artifacts, found %d", len(want), len(entries))
	}
}

func TestGenerateAllIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateAll(dir); err != nil {
		t.Fatalf("first run: %v", err)
	}
	name := filepath.Join(dir, "perf-async-paired-ratio.png")
	first, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read first run output: %v", err)
	}
	if err := GenerateAll(dir); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read second run output: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("re-running produced different bytes for %s", name)
	}
}

func TestGenerateAllCreatesMissingParents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs", "usage", "figures")
	if err := GenerateAll(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "perf-core-relative-speed.png")); err != nil {
		t.Fatalf("missing figure under nested dir: %v", err)
	}
}
