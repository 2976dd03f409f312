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

package sample_test

import (
	"errors"
	"math"
	"testing"

	"github.com/fentec-project/gosample/internal"
	"github.com/fentec-project/gosample/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constSource always returns the same value.
type constSource float64

func (c constSource) Float64() (float64, error) {
	return float64(c), nil
}

// exhaustedSource fails after left values.
type exhaustedSource struct {
	left int
}

func (e *exhaustedSource) Float64() (float64, error) {
	if e.left == 0 {
		return 0, errors.New("source exhausted")
	}
	e.left--
	return 0.5, nil
}

func TestNormalHitMiss(t *testing.T) {
	var tests = []struct {
		name        string
		maxAttempts int
		expect      paramBounds
	}{
		{
			name:        "Default limit",
			maxAttempts: sample.DefaultMaxAttempts,
			expect: paramBounds{
				meanLow:  -0.05,
				meanHigh: 0.05,
				varLow:   0.9,
				varHigh:  1.1,
			},
		},
		{
			name:        "Unbounded",
			maxAttempts: sample.Unbounded,
			expect: paramBounds{
				meanLow:  -0.05,
				meanHigh: 0.05,
				varLow:   0.9,
				varHigh:  1.1,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sampler, err := sample.NewNormalHitMiss(sample.NewSeededSource(11), test.maxAttempts)
			require.NoError(t, err)

			vec := testNormalSampler(t, sampler, 10000, test.expect)
			for _, v := range vec {
				assert.True(t, v >= -6 && v < 6, "sample %v out of [-6, 6)", v)
			}

			// the rectangle has area 12 * 0.4 and the density integrates to ~1
			assert.InDelta(t, 1/(12*0.4), sampler.AcceptanceRate(), 0.01)
		})
	}
}

func TestNormalHitMiss_RejectionLimit(t *testing.T) {
	// x = 12*0.99 - 6 lies deep in the tail, y = 0.4*0.99 is far above it
	sampler, err := sample.NewNormalHitMiss(constSource(0.99), 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sampler.AcceptanceRate())

	_, err = sampler.Sample()
	assert.True(t, errors.Is(err, internal.ErrRejectionLimit), "unexpected error %v", err)
	assert.Equal(t, 0.0, sampler.AcceptanceRate())
}

func TestNormalHitMiss_Accept(t *testing.T) {
	// x = 0, y = 0.2 lies under the peak and is accepted on the first attempt
	sampler, err := sample.NewNormalHitMiss(constSource(0.5), 1)
	require.NoError(t, err)

	x, err := sampler.Sample()
	require.NoError(t, err)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 1.0, sampler.AcceptanceRate())
}

func TestNewNormalHitMiss(t *testing.T) {
	_, err := sample.NewNormalHitMiss(sample.NewSeededSource(1), -1)
	assert.Error(t, err)

	sampler, err := sample.NewNormalHitMiss(&exhaustedSource{left: 1}, sample.DefaultMaxAttempts)
	require.NoError(t, err)
	_, err = sampler.Sample()
	assert.Error(t, err)
	assert.False(t, errors.Is(err, internal.ErrRejectionLimit))
	assert.False(t, math.IsNaN(sampler.AcceptanceRate()))
}
