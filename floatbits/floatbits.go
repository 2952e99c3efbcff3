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

// Package floatbits provides bit-level primitives on IEEE-754 values.
//
// Within one sign, float bit patterns interpreted as unsigned integers are
// monotonic with value, so stepping to an adjacent representable value is a
// matter of adjusting the reinterpreted bits by one. No floating-point
// rounding mode is involved.
package floatbits

import "math"

// Float constrains the two supported precisions. The type set carries no
// tilde on purpose: the reinterpretation below depends on the exact memory
// layout of the argument.
type Float interface {
	float32 | float64
}

// NextDown returns the greatest representable value strictly smaller than a.
// Both zeros are treated as the same point, so NextDown of either zero is
// the negation of the smallest positive subnormal. The argument must be
// finite and greater than the most negative finite value of its precision;
// anything else is a caller contract violation and panics.
func NextDown[F Float](a F) F {
	switch v := any(a).(type) {
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) || v <= -math.MaxFloat32 {
			panic("floatbits: NextDown of non-finite or minimum float32")
		}
		switch {
		case v == 0:
			return F(-math.Float32frombits(1))
		case v < 0:
			return F(math.Float32frombits(math.Float32bits(v) + 1))
		default:
			return F(math.Float32frombits(math.Float32bits(v) - 1))
		}
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= -math.MaxFloat64 {
			panic("floatbits: NextDown of non-finite or minimum float64")
		}
		switch {
		case v == 0:
			return F(-math.Float64frombits(1))
		case v < 0:
			return F(math.Float64frombits(math.Float64bits(v) + 1))
		default:
			return F(math.Float64frombits(math.Float64bits(v) - 1))
		}
	default:
		panic("floatbits: unsupported precision")
	}
}

// ULP returns the unit in the last place at the magnitude of a, following
// Harrison's definition |a| - NextDown(|a|): the gap between |a| and its
// closest smaller neighbour. It doubles across every power-of-two boundary;
// ULP(1) is half the machine epsilon of the precision. The argument must be
// finite.
func ULP[F Float](a F) F {
	abs := a
	if abs < 0 {
		abs = -abs
	}
	return abs - NextDown(abs)
}

// MaxPreciseInt returns 2^m for a precision with m mantissa digits, the
// bound up to which every unsigned integer converts to F without rounding.
func MaxPreciseInt[F Float]() uint64 {
	switch any(F(0)).(type) {
	case float32:
		return 1 << 24
	default:
		return 1 << 53
	}
}
