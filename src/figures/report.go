package figures

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// DefaultOutputDir is where the README figures live, relative to the repo root.
const DefaultOutputDir = "docs/usage/figures"

var (
	colorBlue   = mustColor("#0969da")
	colorGreen  = mustColor("#2da44e")
	colorPurple = mustColor("#8250df")
)

// coreRelativeSpeed compares median libsimplenet/Boost.Asio run times across
// the core benchmark scenarios, as a speed ratio.
func coreRelativeSpeed() (Dataset, ChartSpec) {
	ds := Dataset{
		Labels: []string{"idle_wait", "echo_64", "echo_1024", "echo_16384", "churn_16", "churn_32", "churn_64"},
		Series: []Series{
			{
				Name:   "libsimplenet / Boost.Asio",
				Color:  colorBlue,
				Values: []float64{1.14, 1.01, 1.00, 1.01, 1.12, 1.13, 1.14},
			},
		},
	}
	spec := ChartSpec{
		Title:         "Relative Speed From Median Runs (libsimplenet / Boost.Asio)",
		YLabel:        "Speed Ratio (higher favors libsimplenet)",
		FixedBounds:   true,
		YMin:          0.95,
		YMax:          1.18,
		HasParity:     true,
		Parity:        1.0,
		Precision:     2,
		XTickRotation: 20 * math.Pi / 180,
		LegendTop:     true,
		LegendLeft:    true,
		Width:         11.8 * vg.Inch,
		Height:        4.8 * vg.Inch,
		File:          "perf-core-relative-speed.png",
	}
	return ds, spec
}

// asyncEchoMedians compares median total time of the async echo benchmark per
// payload size across the three backend configurations.
func asyncEchoMedians() (Dataset, ChartSpec) {
	ds := Dataset{
		Labels: []string{"64B", "1KiB", "16KiB"},
		Series: []Series{
			{
				Name:   "libsimplenet (epoll)",
				Color:  colorBlue,
				Values: []float64{82.739, 85.042, 109.326},
			},
			{
				Name:   "libsimplenet (io_uring)",
				Color:  colorGreen,
				Values: []float64{83.655, 81.731, 108.340},
			},
			{
				Name:   "Boost.Asio (epoll)",
				Color:  colorPurple,
				Values: []float64{76.742, 74.517, 107.950},
			},
		},
	}
	spec := ChartSpec{
		Title:      "Async Echo Median Total Time",
		YLabel:     "Median total time (ms, lower is better)",
		LegendTop:  true,
		LegendLeft: true,
		Width:      9.6 * vg.Inch,
		Height:     5.2 * vg.Inch,
		File:       "perf-async-echo-medians-ms.png",
	}
	return ds, spec
}

// asyncPairedRatio compares the per-payload boost_over_libs ratio of the two
// libsimplenet backends. The epoll series carries its annotations below the
// points and the io_uring series above, so the two label rows never collide.
func asyncPairedRatio() (Dataset, ChartSpec) {
	ds := Dataset{
		Labels: []string{"64B", "1KiB", "16KiB"},
		Series: []Series{
			{
				Name:       "boost_over_libs(epoll)",
				Color:      colorBlue,
				Values:     []float64{0.897905, 0.884594, 0.969676},
				LabelBelow: true,
			},
			{
				Name:   "boost_over_libs(io_uring)",
				Color:  colorGreen,
				Values: []float64{0.935181, 0.925209, 1.002933},
			},
		},
	}
	spec := ChartSpec{
		Title:       "Async Paired Ratio (boost_over_libs)",
		YLabel:      "Paired ratio (higher means smaller gap)",
		FixedBounds: true,
		YMin:        0.87,
		YMax:        1.03,
		HasParity:   true,
		Parity:      1.0,
		Precision:   3,
		Width:       9.6 * vg.Inch,
		Height:      4.8 * vg.Inch,
		File:        "perf-async-paired-ratio.png",
	}
	return ds, spec
}

type reportFigure struct {
	name   string
	build  func() (Dataset, ChartSpec)
	render func(Theme, Dataset, ChartSpec) (*plot.Plot, error)
}

func reportFigures() []reportFigure {
	return []reportFigure{
		{"core relative speed", coreRelativeSpeed, NewBarFigure},
		{"async echo medians", asyncEchoMedians, NewGroupedBarFigure},
		{"async paired ratio", asyncPairedRatio, NewPairedRatioFigure},
	}
}

// GenerateAll renders the full README figure set into outDir, creating the
// directory if needed. It stops at the first failure; files already written
// stay on disk, and a re-run overwrites them.
func GenerateAll(outDir string) error {
	defer TimeTrack(time.Now(), "figure generation")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	th := DefaultTheme()
	for _, fig := range reportFigures() {
		ds, spec := fig.build()
		p, err := fig.render(th, ds, spec)
		if err != nil {
			return fmt.Errorf("%s: %w", fig.name, err)
		}
		outPath := filepath.Join(outDir, spec.File)
		if err := WritePNG(p, spec.Width, spec.Height, outPath); err != nil {
			return fmt.Errorf("%s: %w", fig.name, err)
		}
		Infof("wrote %s", outPath)
	}
	return nil
}
