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
	"crypto/rand"
	"encoding/binary"

	"github.com/pkg/errors"
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// cryptoSource draws uniform values from crypto/rand.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by the operating
// system's cryptographically secure generator. Its values
// cannot be reproduced.
func NewCryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Float64() (float64, error) {
	var randBytes [8]byte
	if _, err := rand.Read(randBytes[:]); err != nil {
		return 0, errors.Wrap(err, "error while sampling")
	}

	return toUnit(binary.LittleEndian.Uint64(randBytes[:])), nil
}

// seededSource draws uniform values from a seeded
// pseudo-random generator.
type seededSource struct {
	dist distuv.Uniform
}

// NewSeededSource returns a Source whose sequence of values is
// fully determined by seed.
func NewSeededSource(seed uint64) Source {
	return &seededSource{
		dist: distuv.Uniform{
			Min: 0,
			Max: 1,
			Src: xrand.NewSource(seed),
		},
	}
}

func (s *seededSource) Float64() (float64, error) {
	return s.dist.Rand(), nil
}

// UniformRange samples random values from the interval [min, max).
type UniformRange struct {
	src Source
	min float64
	max float64
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values.
func NewUniformRange(src Source, min, max float64) *UniformRange {
	return &UniformRange{
		src: src,
		min: min,
		max: max,
	}
}

// Sample samples random values from the interval [min, max).
func (u *UniformRange) Sample() (float64, error) {
	r, err := u.src.Float64()
	if err != nil {
		return 0, err
	}

	return u.min + r*(u.max-u.min), nil
}
