package sim

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// NewSeriesPlot creates new plot of a filtering run from the three series:
// truth:    latent model values
// observed: measurement values
// filtered: filtered mean values
// It returns error if either of the supplied series is nil or if their
// lengths differ.
func NewSeriesPlot(truth, observed, filtered []float64) (*plot.Plot, error) {
	if truth == nil || observed == nil || filtered == nil {
		return nil, fmt.Errorf("invalid data supplied")
	}

	if len(observed) != len(truth) || len(filtered) != len(truth) {
		return nil, fmt.Errorf("invalid data dimensions")
	}

	p := plot.New()

	p.Title.Text = "Filtering"
	p.X.Label.Text = "t"
	p.Y.Label.Text = "y"

	legend := plot.NewLegend()
	legend.Top = true
	p.Legend = legend

	// Make a line plotter for the latent truth
	truthLine, err := plotter.NewLine(makePoints(truth))
	if err != nil {
		return nil, err
	}
	truthLine.Color = color.RGBA{R: 255, B: 128, A: 255}

	p.Add(truthLine)
	p.Legend.Add("truth", truthLine)

	// Make a scatter plotter for measurement data
	measScatter, err := plotter.NewScatter(makePoints(observed))
	if err != nil {
		return nil, err
	}
	measScatter.GlyphStyle.Color = color.RGBA{G: 255, A: 128}
	measScatter.GlyphStyle.Radius = vg.Points(2)

	p.Add(measScatter)
	p.Legend.Add("measurement", measScatter)

	// Make a scatter plotter for filtered data
	filterScatter, err := plotter.NewScatter(makePoints(filtered))
	if err != nil {
		return nil, fmt.Errorf("failed to create scatter: %v", err)
	}
	filterScatter.GlyphStyle.Color = color.RGBA{R: 169, G: 169, B: 169}
	filterScatter.Shape = draw.CrossGlyph{}
	filterScatter.GlyphStyle.Radius = vg.Points(2)

	p.Add(filterScatter)
	p.Legend.Add("filtered", filterScatter)

	return p, nil
}

func makePoints(xs []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i, v := range xs {
		pts[i].X = float64(i)
		pts[i].Y = v
	}

	return pts
}
