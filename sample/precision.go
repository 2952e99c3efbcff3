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

// UniformF32 samples single-precision values. It pins the generic sampler
// to a concrete type so callers dispatching distributions by precision have
// a stable name to hold.
type UniformF32 struct {
	FloatUniform[float32]
}

// NewUniformF32 returns a single-precision sampler over [low, high).
func NewUniformF32(low, high float32) *UniformF32 {
	return &UniformF32{*NewFloatUniform(low, high)}
}

// NewUniformF32Inclusive returns a single-precision sampler over [low, high].
func NewUniformF32Inclusive(low, high float32) *UniformF32 {
	return &UniformF32{*NewFloatUniformInclusive(low, high)}
}

// UniformF64 samples double-precision values.
type UniformF64 struct {
	FloatUniform[float64]
}

// NewUniformF64 returns a double-precision sampler over [low, high).
func NewUniformF64(low, high float64) *UniformF64 {
	return &UniformF64{*NewFloatUniform(low, high)}
}

// NewUniformF64Inclusive returns a double-precision sampler over [low, high].
func NewUniformF64Inclusive(low, high float64) *UniformF64 {
	return &UniformF64{*NewFloatUniformInclusive(low, high)}
}
