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

	"gonum.org/v1/gonum/stat/distuv"
)

// CauchyDensity is the probability density function of the
// standard Cauchy distribution, 1 / (pi * (1 + x^2)).
func CauchyDensity(x float64) float64 {
	return 1 / (math.Pi * (1 + x*x))
}

// NormalDensity is the probability density function of the
// standard Normal (Gaussian) distribution, exp(-x^2/2) / sqrt(2*pi).
func NormalDensity(x float64) float64 {
	return distuv.UnitNormal.Prob(x)
}
