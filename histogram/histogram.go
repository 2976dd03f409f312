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

// Package histogram bins samples into a fixed-width partition of an
// interval and optionally normalizes the counts to a probability
// density, so that they can be compared with a theoretical density
// function.
package histogram

import (
	"math"

	"github.com/fentec-project/gosample/data"
	"github.com/fentec-project/gosample/internal"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// DefaultBins is the number of bins used when the caller does not
// have a better choice.
const DefaultBins = 100

// Histogram holds the bins of an empirical distribution.
// Centers[i] is the middle of bin i and Values[i] its count, or its
// density if Normalized is set.
type Histogram struct {
	Centers []float64
	Values  []float64

	// BinWidth is (Max - Min) / len(Values).
	BinWidth float64
	Min      float64
	Max      float64

	// Total is the number of samples the histogram was built from,
	// including those falling outside [Min, Max).
	Total int
	// Dropped is the number of samples outside [Min, Max).
	Dropped    int
	Normalized bool
}

// New bins samples into numBins bins of equal width covering [min, max).
// Samples outside of the half-open interval are not counted in any
// bin, only in Dropped.
//
// If normalize is true, each value is divided by BinWidth * len(samples),
// i.e. by the number of all samples, including the dropped ones. The
// area under the histogram is then 1 only if nothing was dropped.
//
// It returns an error if numBins is not positive or if [min, max) is
// not a proper finite interval.
func New(samples []float64, min, max float64, numBins int, normalize bool) (*Histogram, error) {
	if numBins <= 0 {
		return nil, errors.Wrapf(internal.ErrInvalidBins, "got %d", numBins)
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, errors.Wrapf(internal.ErrInvalidRange, "bounds [%v, %v) should be finite", min, max)
	}
	if min >= max {
		return nil, errors.Wrapf(internal.ErrInvalidRange, "lower bound %v should be smaller than upper bound %v", min, max)
	}

	width := (max - min) / float64(numBins)
	if width == 0 || math.IsInf(width, 0) {
		return nil, errors.Wrapf(internal.ErrInvalidRange, "bin width of [%v, %v) split into %d bins is degenerate", min, max, numBins)
	}

	values := make([]float64, numBins)
	dropped := 0
	for _, d := range samples {
		if !(min <= d && d < max) {
			dropped++
			continue
		}
		index := int((d - min) / width)
		// rounding can push samples just below max out of the last bin
		if index >= numBins {
			index = numBins - 1
		}
		values[index]++
	}

	centers := make([]float64, numBins)
	for i := range centers {
		centers[i] = min + width*(float64(i)+0.5)
	}

	if normalize && len(samples) > 0 {
		floats.Scale(1/(width*float64(len(samples))), values)
	}

	return &Histogram{
		Centers:    centers,
		Values:     values,
		BinWidth:   width,
		Min:        min,
		Max:        max,
		Total:      len(samples),
		Dropped:    dropped,
		Normalized: normalize,
	}, nil
}

// NewAuto works as New, but takes the range of the histogram from the
// smallest and the largest sample. Since the range is half-open, the
// largest sample itself is dropped.
// It returns an error if samples is empty or all samples are equal.
func NewAuto(samples []float64, numBins int, normalize bool) (*Histogram, error) {
	min, max, err := data.Vector(samples).MinMax()
	if err != nil {
		return nil, err
	}

	return New(samples, min, max, numBins, normalize)
}

// Len returns the number of bins.
func (h *Histogram) Len() int {
	return len(h.Values)
}

// XY returns the center and the value of bin i.
func (h *Histogram) XY(i int) (float64, float64) {
	return h.Centers[i], h.Values[i]
}

// Integral returns the Riemann sum of the values over the bin width.
// For a normalized histogram with nothing dropped, it is 1.
func (h *Histogram) Integral() float64 {
	return floats.Sum(h.Values) * h.BinWidth
}

// Counts returns the number of samples in each bin, undoing the
// normalization if needed.
func (h *Histogram) Counts() []float64 {
	counts := make([]float64, len(h.Values))
	copy(counts, h.Values)
	if h.Normalized {
		floats.Scale(h.BinWidth*float64(h.Total), counts)
	}

	return counts
}
