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

package sample

import (
	"github.com/fentec-project/gosample/internal"
	"github.com/pkg/errors"
)

// DefaultMaxAttempts is the number of candidates NormalHitMiss draws
// before giving up. With an acceptance rate of roughly 0.21 it is
// never reached in practice.
const DefaultMaxAttempts = 1000000

// Unbounded disables the attempt limit of NormalHitMiss, so that
// Sample loops until a candidate is accepted.
const Unbounded = 0

// Bounding rectangle [-hitMissHalfWidth, hitMissHalfWidth) x [0, hitMissHeight)
// of the hit-and-miss method. hitMissHeight is just above the peak
// 1/sqrt(2*pi) of the standard normal density.
const (
	hitMissHalfWidth = 6.0
	hitMissHeight    = 0.4
)

// NormalHitMiss samples random values from the standard Normal
// (Gaussian) distribution, truncated to [-6, 6), with the hit-and-miss
// method: a point is drawn uniformly from the bounding rectangle and
// its x coordinate is accepted if the point lies under the density.
type NormalHitMiss struct {
	src         Source
	maxAttempts int
	// counters for the observed acceptance rate
	attempts uint64
	accepted uint64
}

// NewNormalHitMiss returns an instance of NormalHitMiss sampler.
// maxAttempts bounds the number of candidates drawn per sample,
// Unbounded removes the bound. It returns an error if maxAttempts
// is negative.
func NewNormalHitMiss(src Source, maxAttempts int) (*NormalHitMiss, error) {
	if maxAttempts < 0 {
		return nil, errors.Errorf("maximum number of attempts should be non-negative, got %d", maxAttempts)
	}

	return &NormalHitMiss{
		src:         src,
		maxAttempts: maxAttempts,
	}, nil
}

// Sample samples a value based on hit-and-miss (rejection) sampling.
// If no candidate is accepted within the attempt limit, an error
// wrapping internal.ErrRejectionLimit is returned.
func (c *NormalHitMiss) Sample() (float64, error) {
	for i := 0; c.maxAttempts == Unbounded || i < c.maxAttempts; i++ {
		u, err := c.src.Float64()
		if err != nil {
			return 0, errors.Wrap(err, "error while sampling")
		}
		x := 2*hitMissHalfWidth*u - hitMissHalfWidth

		// sample again to decide if we accept the sampled value
		v, err := c.src.Float64()
		if err != nil {
			return 0, errors.Wrap(err, "error while sampling")
		}
		y := hitMissHeight * v

		c.attempts++
		if y < NormalDensity(x) {
			c.accepted++
			return x, nil
		}
	}

	return 0, errors.Wrapf(internal.ErrRejectionLimit, "no candidate accepted in %d attempts", c.maxAttempts)
}

// AcceptanceRate returns the fraction of candidates accepted so far,
// or 0 if nothing was sampled yet.
func (c *NormalHitMiss) AcceptanceRate() float64 {
	if c.attempts == 0 {
		return 0
	}

	return float64(c.accepted) / float64(c.attempts)
}
