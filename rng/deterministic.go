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

// Package rng provides random-byte sources for driving samplers: a
// deterministic keystream source for reproducible runs and a locking
// wrapper for sharing one source across goroutines. Callers wanting real
// entropy can pass crypto/rand.Reader to a sampler directly.
package rng

import "golang.org/x/crypto/chacha20"

// SeedSize is the number of seed bytes a Deterministic source consumes.
const SeedSize = chacha20.KeySize

// Deterministic is an io.Reader yielding the ChaCha20 keystream for a fixed
// seed. Two sources built from the same seed produce identical bytes, which
// makes every sampler draw driven by one reproducible.
//
// A Deterministic source is not safe for concurrent use; wrap it with
// NewLockedReader to share it.
type Deterministic struct {
	stream *chacha20.Cipher
}

// NewDeterministic returns a reproducible random-byte source for the seed.
func NewDeterministic(seed [SeedSize]byte) *Deterministic {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// Key and nonce lengths are fixed above.
		panic(err)
	}
	return &Deterministic{stream: c}
}

// Read fills p with the next keystream bytes. It never fails; the stream is
// long enough (2^38 bytes) that exhaustion is not handled.
func (g *Deterministic) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	g.stream.XORKeyStream(p, p)
	return len(p), nil
}
