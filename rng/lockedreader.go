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

package rng

import (
	"io"
	"sync"
)

// lockedReader serializes Read calls on a shared source with a mutex.
type lockedReader struct {
	r  io.Reader
	mu sync.Mutex
}

func (lr *lockedReader) Read(p []byte) (int, error) {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.r.Read(p)
}

// NewLockedReader returns a reader safe for concurrent use. Samplers take
// no locks of their own, so one source shared between goroutines must be
// wrapped. An already wrapped reader is returned as-is.
func NewLockedReader(r io.Reader) io.Reader {
	if _, ok := r.(*lockedReader); ok {
		return r
	}
	return &lockedReader{r: r}
}
