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
	"math"

	"github.com/fentec-project/gosample/internal"
	"github.com/pkg/errors"
)

// Cauchy samples random values from the standard Cauchy
// distribution (location 0, scale 1) using the inverse transform
// method: a uniform value u from [0, 1) is mapped through the
// inverse CDF tan(pi/2 * (2u - 1)).
type Cauchy struct {
	src Source
}

// NewCauchy returns an instance of the Cauchy sampler.
func NewCauchy(src Source) *Cauchy {
	return &Cauchy{
		src: src,
	}
}

// Sample samples a single value from the Cauchy distribution.
func (c *Cauchy) Sample() (float64, error) {
	u, err := c.src.Float64()
	if err != nil {
		return 0, err
	}

	return cauchyQuantile(u), nil
}

// SampleN samples n values at once. It returns an empty slice
// for n = 0 and an error for negative n.
func (c *Cauchy) SampleN(n int) ([]float64, error) {
	if n < 0 {
		return nil, errors.Wrapf(internal.ErrInvalidCount, "cannot sample %d values", n)
	}

	res := make([]float64, n)
	for i := range res {
		u, err := c.src.Float64()
		if err != nil {
			return nil, err
		}
		res[i] = cauchyQuantile(u)
	}

	return res, nil
}

func cauchyQuantile(u float64) float64 {
	return math.Tan(math.Pi / 2 * (2*u - 1))
}
