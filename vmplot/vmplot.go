// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package vmplot renders the V_m and I_net series of a neuron history as a
PNG line plot with a legend.
*/
package vmplot

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/emer/etable/minmax"
	"github.com/emer/lif/lif"
	"github.com/goki/kigen/ordmap"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// LightBlue is the I_net line color
var LightBlue = drawing.Color{R: 173, G: 216, B: 230, A: 255}

// Style is how one series is drawn
type Style struct {
	Color drawing.Color
	Width float64
}

// Plot holds the plot params and the ordered set of series to draw
type Plot struct {

	// title drawn above the plot
	Title string

	// pixel size of the rendered image
	Width  int
	Height int

	// series drawn, in legend order
	Series *ordmap.Map[lif.SeriesType, Style]
}

// NewPlot returns a plot of both series with default styles
func NewPlot() *Plot {
	pl := &Plot{}
	pl.Defaults()
	return pl
}

func (pl *Plot) Defaults() {
	pl.Title = "graph"
	pl.Width = 1024
	pl.Height = 512
	pl.Series = ordmap.New[lif.SeriesType, Style]()
	pl.Series.Add(lif.SeriesVm, Style{Color: chart.ColorBlue, Width: 2})
	pl.Series.Add(lif.SeriesInet, Style{Color: LightBlue, Width: 2})
}

// Range returns the y range spanned by all plotted series. An empty
// history spans just the resting potential. A NaN or infinite value in
// any series is an error wrapping lif.ErrNonFinite.
func (pl *Plot) Range(hs *lif.History) (minmax.F64, error) {
	rng := minmax.F64{}
	rng.SetInfinity()
	for _, kv := range pl.Series.Order {
		for _, pt := range hs.Series(kv.Key) {
			if math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
				return rng, fmt.Errorf("vmplot: %s = %v at tick %v: %w", kv.Key.Label(), pt.Y, pt.X, lif.ErrNonFinite)
			}
			rng.FitValInRange(pt.Y)
		}
	}
	if hs.Len() == 0 {
		rng.Min, rng.Max = lif.RestVm, lif.RestVm
	}
	if rng.Min == rng.Max {
		rng.Min--
		rng.Max++
	}
	return rng, nil
}

// Chart builds the go-chart chart of the history. The history is only
// read, through copies of its series.
func (pl *Plot) Chart(hs *lif.History) (*chart.Chart, error) {
	rng, err := pl.Range(hs)
	if err != nil {
		return nil, err
	}
	series := make([]chart.Series, 0, pl.Series.Len())
	for _, kv := range pl.Series.Order {
		pts := hs.Series(kv.Key)
		if len(pts) == 0 {
			pts = []lif.Point{{X: 0, Y: lif.RestVm}}
		}
		if len(pts) == 1 {
			// go-chart needs two points to draw a line
			pts = append(pts, lif.Point{X: pts[0].X + 1, Y: pts[0].Y})
		}
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for i, pt := range pts {
			xs[i], ys[i] = pt.X, pt.Y
		}
		series = append(series, chart.ContinuousSeries{
			Name:    kv.Key.Label(),
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: kv.Val.Color, StrokeWidth: kv.Val.Width},
		})
	}
	graph := &chart.Chart{
		Title:  pl.Title,
		Width:  pl.Width,
		Height: pl.Height,
		XAxis: chart.XAxis{
			Name:  "Tick",
			Style: chart.Style{FontSize: 10.0},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: rng.Min, Max: rng.Max},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(graph)}
	return graph, nil
}

// Render writes the plot of the history as a PNG image
func (pl *Plot) Render(w io.Writer, hs *lif.History) error {
	graph, err := pl.Chart(hs)
	if err != nil {
		return err
	}
	return graph.Render(chart.PNG, w)
}

// SavePNG renders the plot of the history to the named file. The image is
// rendered in memory first, so a failed render leaves no file behind.
func (pl *Plot) SavePNG(fn string, hs *lif.History) error {
	var b bytes.Buffer
	if err := pl.Render(&b, hs); err != nil {
		return fmt.Errorf("vmplot: rendering %s: %w", fn, err)
	}
	if err := os.WriteFile(fn, b.Bytes(), 0644); err != nil {
		return fmt.Errorf("vmplot: %w", err)
	}
	return nil
}
