/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package chart renders histograms next to the theoretical density
// functions they approximate.
package chart

import (
	"os"

	"github.com/fentec-project/gosample/data"
	"github.com/fentec-project/gosample/histogram"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Legend labels of the plotted lines.
const (
	HistogramLabel = "Histogram"
	DensityLabel   = "Probability density"
)

// NewPlot returns a plot of histogram h drawn as a line through the
// bin centers. If density is not nil, it is evaluated at the bin
// centers and overlaid for comparison.
func NewPlot(title string, h *histogram.Histogram, density func(float64) float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "ρ"

	hist, err := plotter.NewLine(h)
	if err != nil {
		return nil, errors.Wrap(err, "cannot plot histogram")
	}
	hist.Color = plotutil.Color(0)
	p.Add(hist)
	p.Legend.Add(HistogramLabel, hist)

	if density != nil {
		ys := data.Vector(h.Centers).Apply(density)
		xys := make(plotter.XYs, h.Len())
		for i, x := range h.Centers {
			xys[i].X = x
			xys[i].Y = ys[i]
		}
		dens, err := plotter.NewLine(xys)
		if err != nil {
			return nil, errors.Wrap(err, "cannot plot density")
		}
		dens.Color = plotutil.Color(1)
		p.Add(dens)
		p.Legend.Add(DensityLabel, dens)
	}

	p.Y.Min = 0

	return p, nil
}

// Save draws plots side by side on a single canvas of the given size
// and writes it to path as a PNG image.
func Save(path string, width, height vg.Length, plots ...*plot.Plot) error {
	if len(plots) == 0 {
		return errors.New("nothing to save")
	}

	img := vgimg.New(width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(plots),
		PadX: vg.Millimeter,
	}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "cannot create image file")
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrap(err, "cannot write image")
	}

	return f.Close()
}
