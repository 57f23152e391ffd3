//Package ffplot draws simple diagnostics of a collected parameter set.
package ffplot

import (
	"fmt"

	"github.com/falagara/forcebalance/forcefield"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//values extracts the raw starting values from a parameter set.
func values(F *forcefield.FF) []float64 {
	v := F.Pvals()
	raw := make([]float64, v.Len())
	for i := range raw {
		raw[i] = v.AtVec(i)
	}
	return raw
}

// ParamPlot writes a scatter plot of the starting parameter values, by
// slot index, to a PNG (or whatever format the filename extension says).
// Useful for eyeballing the spread of a parameter set before rescaling.
func ParamPlot(F *forcefield.FF, filename string) error {
	raw := values(F)
	if len(raw) == 0 {
		return fmt.Errorf("ffplot.ParamPlot: empty parameter set")
	}
	pts := make(plotter.XYs, len(raw))
	for i, v := range raw {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	p := plot.New()
	p.Title.Text = "Starting parameter values"
	p.X.Label.Text = "Parameter index"
	p.Y.Label.Text = "Value"
	p.Add(plotter.NewGrid())
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(s)
	return p.Save(4*vg.Inch, 4*vg.Inch, filename)
}

// Summary returns the mean and standard deviation of the starting
// parameter values. Both are zero for an empty set.
func Summary(F *forcefield.FF) (mean, stdev float64) {
	raw := values(F)
	if len(raw) == 0 {
		return 0, 0
	}
	return stat.Mean(raw, nil), stat.StdDev(raw, nil)
}
