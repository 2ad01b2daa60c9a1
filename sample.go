package plotfn

import (
	"math"

	"github.com/pkg/errors"
)

// MaxSamples is the largest number of points a Window may describe.
const MaxSamples = 1 << 20

// Point is a sampled point of an expression.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a run of consecutive sample points with no domain failure
// between them. A plotter draws each segment as one connected curve.
type Segment []Point

// Window is a closed range of x values sampled at a fixed step.
type Window struct {
	Min  float64 `toml:"min" json:"min"`
	Max  float64 `toml:"max" json:"max"`
	Step float64 `toml:"step" json:"step"`
}

// Len returns the number of points in the window. Max counts as a point when
// it is a whole number of steps from Min up to rounding.
func (w Window) Len() int {
	return int(math.Floor((w.Max-w.Min)/w.Step+1e-9)) + 1
}

// Validate checks that the window is a finite, non-empty range with a
// positive step and at most MaxSamples points.
func (w Window) Validate() error {
	switch {
	case !isFinite(w.Min) || !isFinite(w.Max):
		return errors.New("plotfn: window bounds must be finite")
	case w.Min >= w.Max:
		return errors.Errorf("plotfn: window min %g must be less than max %g", w.Min, w.Max)
	case !(w.Step > 0) || !isFinite(w.Step):
		return errors.Errorf("plotfn: window step %g must be positive", w.Step)
	case (w.Max-w.Min)/w.Step >= MaxSamples:
		return errors.Errorf("plotfn: window has more than %d points", MaxSamples)
	}
	return nil
}

// Sample evaluates the expression at each point of the window. Points where
// the expression is undefined or not finite split the result into separate
// segments. No segment is empty.
func (e *Expr) Sample(w Window) ([]Segment, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	var (
		segs []Segment
		cur  Segment
	)
	n := w.Len()
	for i := 0; i < n; i++ {
		// Multiply rather than accumulate so that error doesn't build up.
		x := w.Min + float64(i)*w.Step
		y, err := e.Eval(x)
		if err != nil || !isFinite(y) {
			if len(cur) != 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, Point{X: x, Y: y})
	}
	if len(cur) != 0 {
		segs = append(segs, cur)
	}
	return segs, nil
}
