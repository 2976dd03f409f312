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

// Package experiment holds ready made sampling experiments which
// compare the histogram of generated samples with the density of the
// distribution they are drawn from.
package experiment

import (
	"github.com/fentec-project/gosample/data"
	"github.com/fentec-project/gosample/histogram"
	"github.com/fentec-project/gosample/sample"
	"github.com/pkg/errors"
)

// Default parameters of the experiments.
const (
	CauchySamples   = 100000
	CauchyMin       = -10.0
	CauchyMax       = 10.0
	CauchyBins      = 500
	GaussianSamples = 10000
)

// Result is the outcome of a single experiment.
type Result struct {
	Title     string
	Samples   data.Vector
	Histogram *histogram.Histogram
	// Density is the theoretical density the histogram approximates.
	Density func(float64) float64
}

// Cauchy samples n values from the Cauchy distribution by the inverse
// transform method and bins them in [-10, 10). Values of n <= 0
// select CauchySamples.
func Cauchy(src sample.Source, n int) (*Result, error) {
	if n <= 0 {
		n = CauchySamples
	}

	samples, err := sample.NewCauchy(src).SampleN(n)
	if err != nil {
		return nil, errors.Wrap(err, "cauchy sampling failed")
	}
	h, err := histogram.New(samples, CauchyMin, CauchyMax, CauchyBins, true)
	if err != nil {
		return nil, err
	}

	return &Result{
		Title:     "Cauchy distribution",
		Samples:   data.NewVector(samples),
		Histogram: h,
		Density:   sample.CauchyDensity,
	}, nil
}

// GaussianHitMiss samples n values from the Normal distribution with
// the hit-and-miss method, giving up on a single value after
// maxAttempts candidates (sample.Unbounded disables the limit).
// Values of n <= 0 select GaussianSamples.
func GaussianHitMiss(src sample.Source, n, maxAttempts int) (*Result, error) {
	sampler, err := sample.NewNormalHitMiss(src, maxAttempts)
	if err != nil {
		return nil, err
	}

	return gaussian("Gaussian distribution (hit-and-miss)", sampler, n)
}

// GaussianCLT samples n values approximately distributed by the Normal
// distribution as sums of 12 uniform values.
// Values of n <= 0 select GaussianSamples.
func GaussianCLT(src sample.Source, n int) (*Result, error) {
	return gaussian("Gaussian distribution (CLT, sum of 12)", sample.NewNormalCLT(src), n)
}

func gaussian(title string, sampler sample.Sampler, n int) (*Result, error) {
	if n <= 0 {
		n = GaussianSamples
	}

	samples, err := data.NewRandomVector(n, sampler)
	if err != nil {
		return nil, errors.Wrap(err, "gaussian sampling failed")
	}
	h, err := histogram.NewAuto(samples, histogram.DefaultBins, true)
	if err != nil {
		return nil, err
	}

	return &Result{
		Title:     title,
		Samples:   samples,
		Histogram: h,
		Density:   sample.NormalDensity,
	}, nil
}
