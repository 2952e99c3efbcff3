/*
 * Copyright (c) 2026 The propfloat developers
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
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"math"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/propfloat-project/propfloat/floatbits"
	"github.com/propfloat-project/propfloat/rng"
	"github.com/propfloat-project/propfloat/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func seed(b byte) [rng.SeedSize]byte {
	var s [rng.SeedSize]byte
	s[0] = b
	return s
}

func draws64(t *testing.T, u *sample.UniformF64, r io.Reader, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		v, err := u.Sample(r)
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func draws32(t *testing.T, u *sample.UniformF32, r io.Reader, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		v, err := u.Sample(r)
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func TestUniformHalfOpenRange(t *testing.T) {
	g := rng.NewDeterministic(seed(20))
	for _, v := range draws64(t, sample.NewUniformF64(-1, 10), g, 100) {
		assert.True(t, -1 <= v && v < 10, "sample %g out of [-1, 10)", v)
	}
	for _, v := range draws32(t, sample.NewUniformF32(-1, 10), g, 100) {
		assert.True(t, -1 <= v && v < 10, "sample %g out of [-1, 10)", v)
	}
}

func TestUniformInclusiveRange(t *testing.T) {
	g := rng.NewDeterministic(seed(21))
	for _, v := range draws64(t, sample.NewUniformF64Inclusive(-1, 10), g, 100) {
		assert.True(t, -1 <= v && v <= 10, "sample %g out of [-1, 10]", v)
	}
	for _, v := range draws32(t, sample.NewUniformF32Inclusive(-1, 10), g, 100) {
		assert.True(t, -1 <= v && v <= 10, "sample %g out of [-1, 10]", v)
	}
}

// With high the immediate successor of low, the half-open interval contains
// a single representable value.
func TestUniformHalfOpenEndBound(t *testing.T) {
	g := rng.NewDeterministic(seed(22))

	u := sample.NewUniformF64(1, 1+0x1p-52)
	for _, v := range draws64(t, u, g, 100) {
		assert.Equal(t, 1.0, v)
	}

	u32 := sample.NewUniformF32(1, 1+0x1p-23)
	for _, v := range draws32(t, u32, g, 100) {
		assert.Equal(t, float32(1), v)
	}
}

func TestUniformInclusiveEndBound(t *testing.T) {
	g := rng.NewDeterministic(seed(23))

	samples := draws64(t, sample.NewUniformF64Inclusive(1, 1+0x1p-52), g, 100)
	assert.True(t, slices.Contains(samples, 1+0x1p-52), "upper bound never drawn")

	samples32 := draws32(t, sample.NewUniformF32Inclusive(1, 1+0x1p-23), g, 100)
	assert.True(t, slices.Contains(samples32, 1+0x1p-23), "upper bound never drawn")
}

// Every representable value in [pred(1), succ(1)] is a lattice point: the
// two around the binade boundary share the coarse step, and the final gap
// shrinks to the finer spacing below 1.
func TestUniformAllValuesNearOneReachable(t *testing.T) {
	g := rng.NewDeterministic(seed(24))

	eps := 0x1p-52
	samples := draws64(t, sample.NewUniformF64Inclusive(1-eps/2, 1+eps), g, 100)
	for _, want := range []float64{1 - eps/2, 1, 1 + eps} {
		assert.True(t, slices.Contains(samples, want), "value %g never drawn", want)
	}

	eps32 := float32(0x1p-23)
	samples32 := draws32(t, sample.NewUniformF32Inclusive(1-eps32/2, 1+eps32), g, 100)
	for _, want := range []float32{1 - eps32/2, 1, 1 + eps32} {
		assert.True(t, slices.Contains(samples32, want), "value %g never drawn", want)
	}
}

// An interval up to half the precise-integer bound has step 1/2 and more
// lattice points than integers convert exactly to the precision; fractional
// draws prove the split-index formula holds past that bound.
func TestUniformFractionalBeyondPreciseInt(t *testing.T) {
	g := rng.NewDeterministic(seed(25))

	u := sample.NewUniformF64Inclusive(0, float64(floatbits.MaxPreciseInt[float64]()/2))
	fractional := false
	for _, v := range draws64(t, u, g, 100) {
		if _, frac := math.Modf(v); frac != 0 {
			fractional = true
		}
	}
	assert.True(t, fractional, "no fractional value drawn")

	u32 := sample.NewUniformF32Inclusive(0, float32(floatbits.MaxPreciseInt[float32]()/2))
	fractional = false
	for _, v := range draws32(t, u32, g, 100) {
		if _, frac := math.Modf(float64(v)); frac != 0 {
			fractional = true
		}
	}
	assert.True(t, fractional, "no fractional value drawn")
}

func TestUniformSinglePoint(t *testing.T) {
	g := rng.NewDeterministic(seed(26))
	for _, v := range draws64(t, sample.NewUniformF64Inclusive(3.25, 3.25), g, 10) {
		assert.Equal(t, 3.25, v)
	}
}

// Samples stay in range for arbitrary finite bounds, including subnormal
// and extreme-exponent ones.
func TestUniformArbitraryBounds(t *testing.T) {
	g := rng.NewDeterministic(seed(27))
	var buf [8]byte
	finite := func() float64 {
		for {
			_, err := io.ReadFull(g, buf[:])
			require.NoError(t, err)
			v := math.Float64frombits(binary.BigEndian.Uint64(buf[:]))
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				return v
			}
		}
	}
	for i := 0; i < 200; i++ {
		low, high := finite(), finite()
		if low > high {
			low, high = high, low
		}
		u := sample.NewFloatUniformInclusive(low, high)
		for j := 0; j < 5; j++ {
			v, err := u.Sample(g)
			require.NoError(t, err)
			assert.True(t, low <= v && v <= high, "sample %g out of [%g, %g]", v, low, high)
		}
	}
}

// Any io.Reader works as the randomness source.
func TestUniformCryptoRand(t *testing.T) {
	u := sample.NewUniformF64(0, 1)
	for i := 0; i < 20; i++ {
		v, err := u.Sample(crand.Reader)
		require.NoError(t, err)
		assert.True(t, 0 <= v && v < 1, "sample %g out of [0, 1)", v)
	}
}

// A sampler is immutable after construction; concurrent use only needs a
// serialized source.
func TestUniformSharedSource(t *testing.T) {
	src := rng.NewLockedReader(rng.NewDeterministic(seed(28)))
	u := sample.NewUniformF64(-1, 10)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v, err := u.Sample(src)
				if err != nil {
					errs <- err
					return
				}
				if v < -1 || v >= 10 {
					errs <- errors.Errorf("sample %g out of [-1, 10)", v)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestUniformContract(t *testing.T) {
	// The half-open form needs a non-empty interval.
	assert.Panics(t, func() { sample.NewUniformF64(1, 1) })
	assert.Panics(t, func() { sample.NewUniformF64Inclusive(2, 1) })
	assert.Panics(t, func() { sample.NewUniformF64(0, math.Inf(1)) })
	assert.Panics(t, func() { sample.NewUniformF64Inclusive(math.NaN(), 1) })
}
