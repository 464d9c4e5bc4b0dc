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

// Package kernel implements the scalar pairwise dynamic-programming
// kernels — Levenshtein, Needleman-Wunsch, Smith-Waterman, and their
// Gotoh affine-gap variants — using an anti-diagonal evaluation order
// that keeps only a handful of rolling diagonals resident instead of
// materializing the full (|a|+1)x(|b|+1) matrix.
package kernel

// Scratch holds the rolling-diagonal buffers a kernel call needs, sized
// to the largest pair seen so far. Reusing a Scratch across many pairs
// (as batch's pooling Allocator does) avoids an allocation per
// pair; a nil or zero-value Scratch works too, it just grows on first use.
type Scratch struct {
	width            int
	prev, curr, next []int32
	insCurr, insNext []int32
	delCurr, delNext []int32
}

// NewScratch returns an empty Scratch that grows lazily on first use.
func NewScratch() *Scratch {
	return &Scratch{}
}

// ensure grows the scratch's buffers, if needed, to cover sequences of
// length n and m. Buffers only ever grow; ensure never shrinks them.
func (s *Scratch) ensure(n, m int) {
	width := n
	if m > width {
		width = m
	}
	width += 2
	if s.width >= width {
		return
	}
	s.width = width
	mk := func() []int32 { return make([]int32, width) }
	s.prev, s.curr, s.next = mk(), mk(), mk()
	s.insCurr, s.insNext = mk(), mk()
	s.delCurr, s.delNext = mk(), mk()
}

// diagRange returns the inclusive range of row indices i (into sequence a)
// that lie on anti-diagonal d of an (n+1)x(m+1) DP matrix, where column
// j = d - i. Diagonal d grows while d <= min(n, m), then shrinks.
func diagRange(d, n, m int) (istart, iend int) {
	istart = d - m
	if istart < 0 {
		istart = 0
	}
	iend = d
	if iend > n {
		iend = n
	}
	return istart, iend
}

// diagRangeStart is diagRange's istart alone, tolerant of negative d (which
// arises when looking back from the first one or two diagonals).
func diagRangeStart(d, n, m int) int {
	if d < 0 {
		return 0
	}
	istart, _ := diagRange(d, n, m)
	return istart
}

// DiagRange exposes diagRange for simdkernel, which walks the same
// anti-diagonal indexing scheme with vectorized interior cells and needs
// the identical istart/iend arithmetic to stay bit-compatible with this
// package's scalar walk.
func DiagRange(d, n, m int) (istart, iend int) { return diagRange(d, n, m) }

// DiagRangeStart exposes diagRangeStart for simdkernel; see DiagRange.
func DiagRangeStart(d, n, m int) int { return diagRangeStart(d, n, m) }

// combine2 returns max(x, y) if useMax, else min(x, y).
func combine2(x, y int32, useMax bool) int32 {
	if useMax {
		if x > y {
			return x
		}
		return y
	}
	if x < y {
		return x
	}
	return y
}

// combine3 folds combine2 over three candidates.
func combine3(x, y, z int32, useMax bool) int32 {
	return combine2(combine2(x, y, useMax), z, useMax)
}

// runLinearGap walks the DP matrix for sequences of length n and m using a
// linear gap cost, combining candidates with max (score kernels) or min
// (distance kernels). subCost(i, j) is the substitution cost for aligning
// a[i-1] with b[j-1]. Returns the value at cell (n, m).
func runLinearGap(s *Scratch, n, m int, subCost func(i, j int) int32, gap int32, useMax bool) int32 {
	s.ensure(n, m)
	prev, curr, next := s.prev, s.curr, s.next

	for diag := 0; diag <= n+m; diag++ {
		istart, iend := diagRange(diag, n, m)
		currIstart := diagRangeStart(diag-1, n, m)
		prevIstart := diagRangeStart(diag-2, n, m)

		for i := istart; i <= iend; i++ {
			j := diag - i
			k := i - istart

			var val int32
			switch {
			case i == 0 && j == 0:
				val = 0
			case i == 0:
				val = int32(j) * gap
			case j == 0:
				val = int32(i) * gap
			default:
				diagVal := prev[i-1-prevIstart]
				upVal := curr[i-1-currIstart]
				leftVal := curr[i-currIstart]
				val = combine3(diagVal+subCost(i, j), upVal+gap, leftVal+gap, useMax)
			}
			next[k] = val
		}
		prev, curr, next = curr, next, prev
	}

	finalIstart := diagRangeStart(n+m, n, m)
	return curr[n-finalIstart]
}

// runLinearGapFloored is runLinearGap specialized for Smith-Waterman: every
// cell is lower-bounded by 0, borders are 0, and the result is the maximum
// cell ever written rather than the bottom-right corner.
func runLinearGapFloored(s *Scratch, n, m int, subCost func(i, j int) int32, gap int32) int32 {
	s.ensure(n, m)
	prev, curr, next := s.prev, s.curr, s.next
	var best int32

	for diag := 0; diag <= n+m; diag++ {
		istart, iend := diagRange(diag, n, m)
		currIstart := diagRangeStart(diag-1, n, m)
		prevIstart := diagRangeStart(diag-2, n, m)

		for i := istart; i <= iend; i++ {
			j := diag - i
			k := i - istart

			var val int32
			if i == 0 || j == 0 {
				val = 0
			} else {
				diagVal := prev[i-1-prevIstart]
				upVal := curr[i-1-currIstart]
				leftVal := curr[i-currIstart]
				val = combine3(diagVal+subCost(i, j), upVal+gap, leftVal+gap, true)
				if val < 0 {
					val = 0
				}
			}
			next[k] = val
			if val > best {
				best = val
			}
		}
		prev, curr, next = curr, next, prev
	}

	return best
}
