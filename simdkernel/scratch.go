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

// Package simdkernel re-expresses kernel's anti-diagonal walker so that
// interior cells of each diagonal are computed lanes-at-a-time through the
// hwy package's portable Vec/Mask primitives, instead of one cell at a
// time. Border cells are written by scalar code before the vector pass,
// and trailing cells that don't fill a whole vector are handled by scalar
// code after it, through hwy.ProcessWithTail's tail function — the diagonal walk
// itself, and its istart/iend bookkeeping, is shared with kernel via the
// exported DiagRange/DiagRangeStart helpers so the two tiers can never
// drift apart on indexing.
package simdkernel

import "github.com/ajroetker/seqsim/hwy"

// Scratch holds the rolling-diagonal buffers a vectorized kernel call
// needs, structurally the same shape as kernel.Scratch (three diagonals
// for linear gaps, plus insert/delete tracks for affine gaps) plus one
// reusable substitution-cost lane buffer. Kept as its own type, rather
// than reusing kernel.Scratch, so each tier can grow its buffers
// independently (e.g. padding to a vector-width multiple) without the
// other tier knowing about it.
type Scratch struct {
	width            int
	prev, curr, next []int32
	insCurr, insNext []int32
	delCurr, delNext []int32
	subBuf           []int32
}

// NewScratch returns an empty Scratch that grows lazily on first use.
func NewScratch() *Scratch {
	return &Scratch{}
}

// ensure grows the scratch's buffers to cover sequences of length n and m.
// Buffers are padded by a full vector width beyond the largest valid index
// so that a vector load starting at the last in-range cell never needs to
// silently truncate (hwy.Load clamps to the source slice's length rather
// than panicking, and a truncated load would desync the vector width from
// its sibling loads in the same lane group).
func (s *Scratch) ensure(n, m int) {
	base := n
	if m > base {
		base = m
	}
	base += 2
	lanes := hwy.MaxLanes[int32]()
	width := base + lanes
	if s.width >= width {
		return
	}
	s.width = width
	mk := func() []int32 { return make([]int32, width) }
	s.prev, s.curr, s.next = mk(), mk(), mk()
	s.insCurr, s.insNext = mk(), mk()
	s.delCurr, s.delNext = mk(), mk()
	if lanes > len(s.subBuf) {
		s.subBuf = make([]int32, lanes)
	}
}
