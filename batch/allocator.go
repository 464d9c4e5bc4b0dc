// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package batch

import (
	"sync"

	"github.com/ajroetker/seqsim/kernel"
	"github.com/ajroetker/seqsim/simdkernel"
)

// pairScratch bundles one scalar and one vectorized Scratch block so a
// single Allocator acquisition covers whichever tier a call resolves to,
// without the allocator needing to know the tier in advance.
type pairScratch struct {
	scalar *kernel.Scratch
	vector *simdkernel.Scratch
}

// Allocator supplies and reclaims the scratch buffers a batch computation
// needs. Injecting a custom Allocator lets tests exercise
// StatusAllocationFailed deterministically, the way tape.NewBounded
// exercises tape.ErrAllocationFailed.
type Allocator interface {
	Acquire() (*pairScratch, error)
	Release(*pairScratch)
}

// poolAllocator is the default Allocator: a sync.Pool of scratch buffers,
// shared across whichever goroutines the configured Executor happens to
// run on, never failing.
type poolAllocator struct {
	pool sync.Pool
}

// NewPoolAllocator returns an Allocator backed by a sync.Pool, which never
// fails and reuses scratch buffers across pairs and across workers.
func NewPoolAllocator() Allocator {
	return &poolAllocator{
		pool: sync.Pool{New: func() any {
			return &pairScratch{scalar: kernel.NewScratch(), vector: simdkernel.NewScratch()}
		}},
	}
}

func (a *poolAllocator) Acquire() (*pairScratch, error) {
	return a.pool.Get().(*pairScratch), nil
}

func (a *poolAllocator) Release(s *pairScratch) {
	a.pool.Put(s)
}
