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
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// UniformIndex draws integers uniformly from [0, n). Draws are unbiased by
// rejection sampling: a 64-bit word falling in the incomplete final cycle of
// n is discarded, so the reduction below cannot skew the distribution.
type UniformIndex struct {
	n uint64
	// reject is 2^64 mod n, the number of words discarded at the top.
	reject uint64
}

// NewUniformIndex returns a sampler over [0, n). n must be positive.
func NewUniformIndex(n uint64) *UniformIndex {
	if n == 0 {
		panic("sample: uniform index range must not be empty")
	}
	return &UniformIndex{n: n, reject: -n % n}
}

// Sample reads big-endian 64-bit words from r until one is accepted and
// reduces it to [0, n). Fewer than two reads are needed on average for any
// n. The only failure mode is a failing reader.
func (u *UniformIndex) Sample(r io.Reader) (uint64, error) {
	var buf [8]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, errors.Wrap(err, "cannot read random bytes")
		}
		x := binary.BigEndian.Uint64(buf[:])
		if x <= math.MaxUint64-u.reject {
			return x % u.n, nil
		}
	}
}
