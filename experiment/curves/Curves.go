// Package curves plots learning curves from the episodic returns
// recorded by tabular learners
package curves

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/samuelfneumann/gotabular/experiment/trackers"
)

// Series is a single named learning curve
type Series struct {
	Name    string
	Samples []trackers.Sample
}

// Mean returns the series whose reward at each recorded episode is the
// mean reward over all histories at that episode. All histories must
// have been recorded at the same episodes.
func Mean(name string, histories ...[]trackers.Sample) (Series, error) {
	if len(histories) == 0 {
		return Series{}, fmt.Errorf("mean: no histories")
	}

	samples := make([]trackers.Sample, len(histories[0]))
	for i := range samples {
		samples[i].Episode = histories[0][i].Episode
	}

	for h, history := range histories {
		if len(history) != len(samples) {
			return Series{}, fmt.Errorf("mean: history %d has %d samples, "+
				"want %d", h, len(history), len(samples))
		}
		for i, sample := range history {
			if sample.Episode != samples[i].Episode {
				return Series{}, fmt.Errorf("mean: history %d sample %d at "+
					"episode %d, want %d", h, i, sample.Episode,
					samples[i].Episode)
			}
			samples[i].Reward += sample.Reward / float64(len(histories))
		}
	}
	return Series{Name: name, Samples: samples}, nil
}

// Plot returns a plot of the learning curves in series, with episodes on
// the x-axis and episodic return on the y-axis
func Plot(title string, series ...Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = "Return"

	for i, s := range series {
		points := make(plotter.XYs, len(s.Samples))
		for j, sample := range s.Samples {
			points[j] = plotter.XY{
				X: float64(sample.Episode),
				Y: sample.Reward,
			}
		}

		line, err := plotter.NewLine(points)
		if err != nil {
			return nil, fmt.Errorf("plot: %v: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}
	return p, nil
}

// Save plots the learning curves in series and saves the plot to
// filename. The image format is determined by the file extension.
func Save(filename, title string, series ...Series) error {
	p, err := Plot(title, series...)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := p.Save(8*vg.Inch, 5*vg.Inch, filename); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
