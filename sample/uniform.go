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

package sample

import (
	"io"

	"github.com/propfloat-project/propfloat/floatbits"
)

// FloatUniform samples uniformly from the representable values of a bounded
// floating-point interval. It couples one value lattice with one integer
// uniform over the lattice indices; a draw is one index sample and one O(1)
// lattice lookup.
type FloatUniform[F floatbits.Float] struct {
	values lattice[F]
	index  *UniformIndex
}

// NewFloatUniform returns a sampler over the half-open interval [low, high):
// the sampled set is exactly the lattice over [low, NextDown(high)]. Bounds
// must be finite with low < high.
func NewFloatUniform[F floatbits.Float](low, high F) *FloatUniform[F] {
	return newFloatUniform(newLattice(low, floatbits.NextDown(high)))
}

// NewFloatUniformInclusive returns a sampler over the closed interval
// [low, high]. Bounds must be finite with low <= high; equal bounds yield a
// single-point lattice, and every draw returns that value.
func NewFloatUniformInclusive[F floatbits.Float](low, high F) *FloatUniform[F] {
	return newFloatUniform(newLattice(low, high))
}

func newFloatUniform[F floatbits.Float](values lattice[F]) *FloatUniform[F] {
	return &FloatUniform[F]{
		values: values,
		index:  NewUniformIndex(values.count),
	}
}

// Sample draws one value from the interval, consuming randomness from r.
func (u *FloatUniform[F]) Sample(r io.Reader) (F, error) {
	i, err := u.index.Sample(r)
	if err != nil {
		return 0, err
	}
	return u.values.get(i), nil
}
