// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	// DefaultBandwidth scales Scott's rule; below 1 gives a tighter curve.
	DefaultBandwidth = 0.5

	gridSize = 200
	// cut extends the grid this many bandwidths past the extreme scores.
	cut = 3.0
)

// ErrNoScores is returned when a density is requested for no scores.
var ErrNoScores = errors.New("no scores to estimate a density from")

// Point is one sample of an estimated density curve.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Density returns a Gaussian kernel density estimate of scores sampled on a
// regular grid. The bandwidth is Scott's rule (sample standard deviation
// times n^-1/5) multiplied by adjust; adjust <= 0 selects DefaultBandwidth.
// When every score is equal the base bandwidth is 1.
func Density(scores []int, adjust float64) ([]Point, error) {
	if len(scores) == 0 {
		return nil, ErrNoScores
	}
	if adjust <= 0 {
		adjust = DefaultBandwidth
	}

	xs := make([]float64, len(scores))
	for i, s := range scores {
		xs[i] = float64(s)
	}
	n := float64(len(xs))

	base := 0.0
	if len(xs) > 1 {
		base = stat.StdDev(xs, nil) * math.Pow(n, -0.2)
	}
	if base == 0 || math.IsNaN(base) {
		base = 1
	}
	bw := base * adjust

	kernel := distuv.Normal{Mu: 0, Sigma: bw}
	lo := floats.Min(xs) - cut*bw
	hi := floats.Max(xs) + cut*bw
	step := (hi - lo) / (gridSize - 1)

	points := make([]Point, gridSize)
	for i := range points {
		x := lo + float64(i)*step
		sum := 0.0
		for _, v := range xs {
			sum += kernel.Prob(x - v)
		}
		points[i] = Point{X: x, Y: sum / n}
	}
	return points, nil
}

var skyBlue = color.NRGBA{R: 135, G: 206, B: 235, A: 255}

// Plot renders a density curve to path. The file extension selects the
// image format (.png, .svg, .pdf, .jpg, ...).
func Plot(points []Point, path string) error {
	if len(points) == 0 {
		return ErrNoScores
	}

	p := plot.New()
	p.Title.Text = "Density Plot of BibTeX Entry Scores"
	p.X.Label.Text = "Score"
	p.Y.Label.Text = "Density"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("building density line: %w", err)
	}
	line.LineStyle.Color = skyBlue
	line.LineStyle.Width = vg.Points(1.5)
	line.FillColor = color.NRGBA{R: skyBlue.R, G: skyBlue.G, B: skyBlue.B, A: 110}
	p.Add(line)

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("saving density plot %s: %w", path, err)
	}
	return nil
}
