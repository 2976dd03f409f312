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

// Source supplies uniformly distributed values from the
// interval [0, 1).
type Source interface {
	Float64() (float64, error)
}

// Sampler samples a single random value from some
// probability distribution.
type Sampler interface {
	Sample() (float64, error)
}

// toUnit maps the top 53 bits of r to a float64 from [0, 1).
func toUnit(r uint64) float64 {
	return float64(r>>11) / (1 << 53)
}
