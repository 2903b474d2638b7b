package reporting

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotSample draws the retained sample as a scatter of reservoir weight against the KDE each record saw on arrival, saving it as a PNG
func PlotSample(weights, kdes []float64, fileName string) error {
	samplePlot, err := plot.New()
	if err != nil {
		return err
	}
	samplePlot.Title.Text = "retained sample"
	samplePlot.X.Label.Text = "KDE at arrival"
	samplePlot.Y.Label.Text = "reservoir weight"

	points := make(plotter.XYs, len(weights))
	for i := range points {
		points[i].X = kdes[i]
		points[i].Y = weights[i]
	}
	if err := plotutil.AddScatters(samplePlot, "records", points); err != nil {
		return err
	}
	return samplePlot.Save(8*vg.Inch, 8*vg.Inch, fileName)
}
