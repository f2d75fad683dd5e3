package report

import (
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotEpisodeReturns draws the per-episode returns as a line plot and
// saves it as a PNG
func PlotEpisodeReturns(savePath, name string, returns []float64) error {
	if err := os.MkdirAll(filepath.Dir(savePath), 0755); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Episode returns"
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = "Return"

	points := make(plotter.XYs, len(returns))
	for i, r := range returns {
		points[i] = plotter.XY{
			X: float64(i),
			Y: r,
		}
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(0)
	p.Add(line)
	p.Legend.Add(name, line)

	return p.Save(8*vg.Inch, 8*vg.Inch, savePath)
}
