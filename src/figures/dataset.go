package figures

import (
	"errors"
	"fmt"
	"image/color"
)

// Series is one named run of measurements across all categories.
type Series struct {
	Name   string
	Color  color.Color
	Values []float64

	// LabelBelow places this series' point annotations under the points
	// instead of above them, so annotations of nearby series do not collide.
	LabelBelow bool
}

// Dataset pairs ordered category labels with one or more parallel series.
// Labels are displayed in the given order.
type Dataset struct {
	Labels []string
	Series []Series
}

// Validate checks that every series carries exactly one value per label.
func (d Dataset) Validate() error {
	if len(d.Labels) == 0 {
		return errors.New("dataset has no category labels")
	}
	if len(d.Series) == 0 {
		return errors.New("dataset has no series")
	}
	for i, s := range d.Series {
		if s.Name == "" {
			return fmt.Errorf("series %d has no name", i)
		}
		if len(s.Values) != len(d.Labels) {
			return fmt.Errorf("series %q has %d values for %d labels", s.Name, len(s.Values), len(d.Labels))
		}
	}
	return nil
}
