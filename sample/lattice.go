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
	"fmt"
	"math"

	"github.com/propfloat-project/propfloat/floatbits"
)

// lattice describes the ordered, evenly spaced set of representable values
// covering [low, high] inclusive. start is the bound with the larger
// magnitude (ties go to low), step has the magnitude of that bound's ULP
// and points from start towards end, and count is the number of distinct
// points. Anchoring the spacing on the larger-magnitude bound keeps every
// point exactly representable; the final gap onto end may be shorter than
// step.
type lattice[F floatbits.Float] struct {
	start F
	end   F
	step  F
	count uint64
}

// newLattice builds the lattice over [low, high] inclusive. Bounds must be
// finite and in non-decreasing order. Negative and positive zero count as
// the same point, so a lattice over [-0, 0] has a single point with value 0.
func newLattice[F floatbits.Float](low, high F) lattice[F] {
	if math.IsNaN(float64(low)) || math.IsInf(float64(low), 0) {
		panic("sample: lattice low bound must be finite")
	}
	if math.IsNaN(float64(high)) || math.IsInf(float64(high), 0) {
		panic("sample: lattice high bound must be finite")
	}
	if !(high-low >= 0) {
		panic("sample: lattice bounds out of order")
	}

	lowAbs, highAbs := abs(low), abs(high)
	minAbs, maxAbs := lowAbs, highAbs
	if minAbs > maxAbs {
		minAbs, maxAbs = maxAbs, minAbs
	}
	gap := floatbits.ULP(maxAbs)

	var l lattice[F]
	if lowAbs < highAbs {
		l.start, l.end, l.step = high, low, -gap
	} else {
		l.start, l.end, l.step = low, high, gap
	}

	// A finite float's distance from zero, measured in its own ULP, is the
	// integer formed by its mantissa; maxGaps must therefore be exact.
	minGaps := minAbs / gap
	maxGaps := maxAbs / gap
	if F(math.Floor(float64(maxGaps))) != maxGaps {
		panic(fmt.Sprintf("sample: inconsistent lattice spacing for bounds [%v, %v]", low, high))
	}

	if (low >= 0) == (high >= 0) {
		l.count = uint64(maxGaps) - uint64(math.Floor(float64(minGaps))) + 1
	} else {
		// The bounds straddle zero. Rounding the near-zero side up
		// over-covers rather than under-covers the smaller bound.
		l.count = uint64(maxGaps) + uint64(math.Ceil(float64(minGaps))) + 1
	}
	if l.count-1 > 2*floatbits.MaxPreciseInt[F]() {
		panic("sample: lattice count exceeds the precise indexing range")
	}
	return l
}

// get maps an index in [0, count) to its lattice value. The last index
// returns end bit-exactly, whatever drift repeated stepping would have
// accumulated. Converting index straight to F would round once it exceeds
// MaxPreciseInt; splitting it keeps both the quotient and the halved
// multiply inside the exact range for every valid count.
func (l lattice[F]) get(index uint64) F {
	if index >= l.count {
		panic("sample: lattice index out of range")
	}
	if index == l.count-1 {
		return l.end
	}
	addend := F(index%2)*l.step + l.start
	return fma(F(index/2), 2*l.step, addend)
}

// fma computes x*y + z with a single rounding. math.FMA works on float64;
// the round-trip stays exact for the float32 instantiation because every
// value reaching here is an integer multiple of the lattice step with a
// mantissa short enough to survive both conversions.
func fma[F floatbits.Float](x, y, z F) F {
	return F(math.FMA(float64(x), float64(y), float64(z)))
}

func abs[F floatbits.Float](a F) F {
	return F(math.Abs(float64(a)))
}
