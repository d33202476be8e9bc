package figures

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// niceStep picks a step from the 1, 2, 2.5, 5, 10 ladder (scaled by power of
// ten) so that roughly n steps cover span.
func niceStep(span float64, n int) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	return bestStep
}

// zeroAnchoredMax returns a nice upper bound for a bar axis anchored at zero:
// the data max plus a 5% margin, rounded up to the next nice tick step.
func zeroAnchoredMax(max float64) float64 {
	if math.IsNaN(max) || max <= 0 {
		max = 1
	}
	step := niceStep(max, 6)
	return math.Ceil(max*1.05/step) * step
}

// niceTicks generates up to n desired tick marks between [min, max] using
// nice increments.
func niceTicks(min, max float64, n int) []plot.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	step := niceStep(max-min, n)
	start := math.Floor(min/step) * step
	end := math.Ceil(max/step) * step
	ticks := []plot.Tick{}
	for v := start; v <= end+step/2; v += step {
		ticks = append(ticks, plot.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
