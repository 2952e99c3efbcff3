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

// Package sample provides samplers for choosing uniformly random
// floating-point values from bounded intervals.
//
// The naive construction low + (high-low)*u overflows to infinity for wide
// ranges and its multiply skews the distribution near the bound edges. The
// samplers here instead select an index uniformly and map it through a
// lattice of exactly representable values spaced by the ULP of the
// larger-magnitude bound, so every draw is free of arithmetic rounding and
// the interval bounds are reproduced bit-for-bit. Selection is slightly
// biased towards the bounds: near the smaller-magnitude bound the lattice
// is coarser than the native float resolution.
//
// Samplers are immutable after construction and may be shared between
// goroutines, provided each call supplies its own random-byte source or a
// shared source wrapped by rng.NewLockedReader.
package sample
