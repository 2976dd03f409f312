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

// cltTerms is the number of uniform values summed per sample.
// A uniform value from [0, 1) has variance 1/12, so the sum
// of twelve has variance 1.
const cltTerms = 12

// NormalCLT samples random values approximately distributed as the
// standard Normal (Gaussian) distribution, relying on the central
// limit theorem: it sums cltTerms uniform values and subtracts
// their mean, cltTerms/2.
// The samples are bounded to [-6, 6) and their tails are lighter
// than the Normal ones.
type NormalCLT struct {
	src Source
}

// NewNormalCLT returns an instance of NormalCLT sampler.
func NewNormalCLT(src Source) *NormalCLT {
	return &NormalCLT{
		src: src,
	}
}

// Sample samples a single approximately Normal value.
func (c *NormalCLT) Sample() (float64, error) {
	sum := 0.0
	for i := 0; i < cltTerms; i++ {
		u, err := c.src.Float64()
		if err != nil {
			return 0, err
		}
		sum += u
	}

	return sum - cltTerms/2, nil
}
