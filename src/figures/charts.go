package figures

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ChartSpec describes how one dataset is presented: shape-independent
// configuration such as titles, fixed axis bounds, the parity reference line,
// annotation precision and the output file. A spec is built fresh per figure
// and never mutated.
type ChartSpec struct {
	Title  string
	YLabel string

	// FixedBounds pins the y axis to [YMin, YMax]. The ratio figures use
	// this so small differences between near-1.0 values stay legible;
	// autoscaling would compress the interesting range.
	FixedBounds bool
	YMin, YMax  float64

	// HasParity draws a dashed horizontal reference line at Parity.
	HasParity bool
	Parity    float64

	// Precision is the decimal precision of point/bar annotations.
	Precision int

	// XTickRotation rotates category labels, in radians.
	XTickRotation float64

	LegendTop, LegendLeft bool

	Width, Height vg.Length
	File          string
}

var (
	singleBarWidth  = vg.Points(34)
	groupedBarWidth = vg.Points(26)
	barEdgeWidth    = vg.Points(0.6)
	parityLineWidth = vg.Points(1.4)
	lineSeriesWidth = vg.Points(2.1)
	markerRadius    = vg.Points(3)

	// Annotation offsets in data units, tuned for ratio-scaled axes.
	annotationRise = 0.004
	annotationDrop = 0.008
)

var parityColor = mustColor("#cf222e")

// formatValue renders an annotation value at the given decimal precision.
func formatValue(v float64, precision int) string {
	return fmt.Sprintf("%.*f", precision, v)
}

// groupOffsets returns the horizontal bar offset per series so that k bars of
// the given width sit side by side, centered on the category tick:
// offset_i = (i - (k-1)/2) * width.
func groupOffsets(k int, width vg.Length) []vg.Length {
	offs := make([]vg.Length, k)
	for i := range offs {
		offs[i] = vg.Length(float64(i)-float64(k-1)/2) * width
	}
	return offs
}

// NewBarFigure renders a single-series bar comparison: one fixed-color bar
// per label, each annotated with its value, plus the parity reference line.
func NewBarFigure(th Theme, ds Dataset, spec ChartSpec) (*plot.Plot, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if len(ds.Series) != 1 {
		return nil, fmt.Errorf("bar figure wants exactly one series, got %d", len(ds.Series))
	}
	s := ds.Series[0]

	p := plot.New()
	th.Apply(p)
	p.Title.Text = spec.Title
	p.Y.Label.Text = spec.YLabel
	if g := th.grid(); g != nil {
		p.Add(g)
	}

	bars, err := plotter.NewBarChart(plotter.Values(s.Values), singleBarWidth)
	if err != nil {
		return nil, fmt.Errorf("bar series: %w", err)
	}
	bars.Color = s.Color
	bars.LineStyle = draw.LineStyle{Color: th.TextColor, Width: barEdgeWidth}
	p.Add(bars)
	p.NominalX(ds.Labels...)

	if spec.XTickRotation != 0 {
		p.X.Tick.Label.Rotation = spec.XTickRotation
		p.X.Tick.Label.XAlign = text.XRight
		p.X.Tick.Label.YAlign = text.YCenter
	}

	if spec.HasParity {
		if err := addParityLine(p, spec.Parity, len(ds.Labels)); err != nil {
			return nil, err
		}
	}

	xs := make([]float64, len(s.Values))
	ys := make([]float64, len(s.Values))
	for i, v := range s.Values {
		xs[i] = float64(i)
		ys[i] = v + annotationRise
	}
	labels, err := valueLabels(th, xs, ys, s.Values, spec.Precision, false)
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	applyBounds(p, spec)
	p.Legend.Top = spec.LegendTop
	p.Legend.Left = spec.LegendLeft
	return p, nil
}

// NewGroupedBarFigure renders k bars per category, side by side and centered
// on the category tick, one legend entry per series. The y axis is anchored
// at zero with a nice upper bound.
func NewGroupedBarFigure(th Theme, ds Dataset, spec ChartSpec) (*plot.Plot, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if len(ds.Series) < 2 {
		return nil, fmt.Errorf("grouped bar figure wants at least two series, got %d", len(ds.Series))
	}

	p := plot.New()
	th.Apply(p)
	p.Title.Text = spec.Title
	p.Y.Label.Text = spec.YLabel
	if g := th.grid(); g != nil {
		p.Add(g)
	}

	offs := groupOffsets(len(ds.Series), groupedBarWidth)
	maxVal := 0.0
	for k, s := range ds.Series {
		bars, err := plotter.NewBarChart(plotter.Values(s.Values), groupedBarWidth)
		if err != nil {
			return nil, fmt.Errorf("bar series %q: %w", s.Name, err)
		}
		bars.Color = s.Color
		bars.LineStyle = draw.LineStyle{Color: th.TextColor, Width: barEdgeWidth}
		bars.Offset = offs[k]
		p.Add(bars)
		p.Legend.Add(s.Name, bars)
		for _, v := range s.Values {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	p.NominalX(ds.Labels...)

	yMax := zeroAnchoredMax(maxVal)
	p.Y.Min, p.Y.Max = 0, yMax
	p.Y.Tick.Marker = plot.ConstantTicks(niceTicks(0, yMax, 6))
	p.Legend.Top = spec.LegendTop
	p.Legend.Left = spec.LegendLeft
	return p, nil
}

// NewPairedRatioFigure renders each series as a connected line with marker
// points, every point annotated with its value. Annotations sit below or
// above their points according to the series' LabelBelow flag, a fixed
// per-series direction chosen at dataset construction.
func NewPairedRatioFigure(th Theme, ds Dataset, spec ChartSpec) (*plot.Plot, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if len(ds.Series) < 2 {
		return nil, fmt.Errorf("paired ratio figure wants at least two series, got %d", len(ds.Series))
	}

	p := plot.New()
	th.Apply(p)
	p.Title.Text = spec.Title
	p.Y.Label.Text = spec.YLabel
	if g := th.grid(); g != nil {
		p.Add(g)
	}

	for _, s := range ds.Series {
		pts := make(plotter.XYs, len(s.Values))
		for i, v := range s.Values {
			pts[i].X = float64(i)
			pts[i].Y = v
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("line series %q: %w", s.Name, err)
		}
		line.Color = s.Color
		line.Width = lineSeriesWidth
		points.GlyphStyle = draw.GlyphStyle{Color: s.Color, Radius: markerRadius, Shape: draw.CircleGlyph{}}
		p.Add(line, points)
		p.Legend.Add(s.Name, line, points)

		xs := make([]float64, len(s.Values))
		ys := make([]float64, len(s.Values))
		for i, v := range s.Values {
			xs[i] = float64(i)
			if s.LabelBelow {
				ys[i] = v - annotationDrop
			} else {
				ys[i] = v + annotationRise
			}
		}
		labels, err := valueLabels(th, xs, ys, s.Values, spec.Precision, s.LabelBelow)
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}

	if spec.HasParity {
		if err := addParityLine(p, spec.Parity, len(ds.Labels)); err != nil {
			return nil, err
		}
	}

	ticks := make([]plot.Tick, len(ds.Labels))
	for i, l := range ds.Labels {
		ticks[i] = plot.Tick{Value: float64(i), Label: l}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	applyBounds(p, spec)
	p.Legend.Top = spec.LegendTop
	p.Legend.Left = spec.LegendLeft
	return p, nil
}

// addParityLine draws the dashed reference line across all n categories and
// legends it as "Parity (x.xx)".
func addParityLine(p *plot.Plot, value float64, n int) error {
	line, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: value},
		{X: float64(n) - 0.5, Y: value},
	})
	if err != nil {
		return fmt.Errorf("parity line: %w", err)
	}
	line.Color = parityColor
	line.Width = parityLineWidth
	line.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("Parity (%s)", formatValue(value, 2)), line)
	return nil
}

// valueLabels annotates the given anchor points with their values, centered
// horizontally. below selects whether text hangs under the anchor.
func valueLabels(th Theme, xs, ys, values []float64, precision int, below bool) (*plotter.Labels, error) {
	pts := make(plotter.XYs, len(xs))
	texts := make([]string, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
		texts[i] = formatValue(values[i], precision)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: texts})
	if err != nil {
		return nil, fmt.Errorf("value labels: %w", err)
	}
	for i := range labels.TextStyle {
		st := &labels.TextStyle[i]
		st.Color = th.TextColor
		st.Font.Size = th.TickFontSize
		st.XAlign = text.XCenter
		if below {
			st.YAlign = text.YTop
		} else {
			st.YAlign = text.YBottom
		}
	}
	return labels, nil
}

func applyBounds(p *plot.Plot, spec ChartSpec) {
	if spec.FixedBounds {
		p.Y.Min, p.Y.Max = spec.YMin, spec.YMax
	}
}
