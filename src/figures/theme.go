package figures

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Theme holds the visual style shared by every report figure. It is a plain
// value passed to each figure constructor rather than process-global state,
// so figures can be built and tested independently.
type Theme struct {
	TitleFontSize  font.Length
	LabelFontSize  font.Length
	TickFontSize   font.Length
	LegendFontSize font.Length

	AxisColor     color.Color
	AxisLineWidth vg.Length

	ShowGrid      bool
	GridColor     color.Color
	GridAlpha     float64
	GridLineWidth vg.Length

	Background color.Color
	TextColor  color.Color
}

// DefaultTheme is the GitHub-docs palette used by all README figures.
func DefaultTheme() Theme {
	return Theme{
		TitleFontSize:  vg.Points(13),
		LabelFontSize:  vg.Points(11),
		TickFontSize:   vg.Points(10),
		LegendFontSize: vg.Points(10),
		AxisColor:      mustColor("#57606a"),
		AxisLineWidth:  vg.Points(1),
		ShowGrid:       true,
		GridColor:      mustColor("#d0d7de"),
		GridAlpha:      0.75,
		GridLineWidth:  vg.Points(0.8),
		Background:     mustColor("#f6f8fa"),
		TextColor:      mustColor("#1f2328"),
	}
}

// Apply styles a plot in place. Applying the same theme twice leaves the plot
// in the same state.
func (th Theme) Apply(p *plot.Plot) {
	p.BackgroundColor = th.Background
	p.Title.TextStyle.Font.Size = th.TitleFontSize
	p.Title.TextStyle.Color = th.TextColor
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Color = th.AxisColor
		ax.Width = th.AxisLineWidth
		ax.Label.TextStyle.Font.Size = th.LabelFontSize
		ax.Label.TextStyle.Color = th.TextColor
		ax.Tick.Color = th.AxisColor
		ax.Tick.Label.Font.Size = th.TickFontSize
		ax.Tick.Label.Color = th.TextColor
	}
	p.Legend.TextStyle.Font.Size = th.LegendFontSize
	p.Legend.TextStyle.Color = th.TextColor
	p.Legend.Padding = vg.Points(2)
}

// grid returns the background grid plotter, or nil when the theme disables it.
// The grid is added before any data plotter so series draw on top of it.
func (th Theme) grid() *plotter.Grid {
	if !th.ShowGrid {
		return nil
	}
	g := plotter.NewGrid()
	c := withAlpha(th.GridColor, th.GridAlpha)
	g.Vertical.Color = c
	g.Vertical.Width = th.GridLineWidth
	g.Horizontal.Color = c
	g.Horizontal.Width = th.GridLineWidth
	return g
}

func withAlpha(c color.Color, alpha float64) color.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*alpha + 0.5)
	return n
}

// ParseHexColor parses a "#rrggbb" color string.
func ParseHexColor(s string) (color.NRGBA, error) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func mustColor(s string) color.NRGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
