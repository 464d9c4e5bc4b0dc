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

package simdkernel

import (
	"github.com/ajroetker/seqsim/hwy"
	"github.com/ajroetker/seqsim/kernel"
)

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

func combine3(x, y, z int32, useMax bool) int32 {
	return combine2(combine2(x, y, useMax), z, useMax)
}

func combineVec(x, y, z hwy.Vec[int32], useMax bool) hwy.Vec[int32] {
	if useMax {
		return hwy.Max(hwy.Max(x, y), z)
	}
	return hwy.Min(hwy.Min(x, y), z)
}

// runLinearGap walks the DP matrix for sequences of length n and m with a
// linear gap cost, processing every diagonal's interior in hwy.MaxLanes
// chunks and scalar-patching borders and any sub-vector-width remainder.
// sub supplies both the scalar and vectorized substitution cost; the
// recurrence itself is identical to kernel.runLinearGap cell for cell.
func runLinearGap(s *Scratch, n, m int, sub substitution, gap int32, useMax bool) int32 {
	s.ensure(n, m)
	prev, curr, next := s.prev, s.curr, s.next
	lanes := hwy.MaxLanes[int32]()
	gapVec := hwy.Set(gap)

	for diag := 0; diag <= n+m; diag++ {
		istart, iend := kernel.DiagRange(diag, n, m)
		currIstart := kernel.DiagRangeStart(diag-1, n, m)
		prevIstart := kernel.DiagRangeStart(diag-2, n, m)

		// Borders: at most the first and last cell of a diagonal can have
		// i==0 or j==0; every other cell is strictly interior.
		for _, i := range [2]int{istart, iend} {
			j := diag - i
			switch {
			case i == 0 && j == 0:
				next[0] = 0
			case i == 0:
				next[i-istart] = int32(j) * gap
			case j == 0:
				next[i-istart] = int32(i) * gap
			}
		}

		loI, hiI := istart, iend
		if loI < 1 {
			loI = 1
		}
		if diag-hiI < 1 {
			hiI = diag - 1
		}
		if hiI >= loI {
			count := hiI - loI + 1
			hwy.ProcessWithTail[int32](count,
				func(offset int) {
					i0 := loI + offset
					sub.fillVec(i0, diag, lanes, s.subBuf)
					subVec := hwy.Load(s.subBuf[:lanes])
					diagVec := hwy.Load(prev[i0-1-prevIstart:])
					upVec := hwy.Load(curr[i0-1-currIstart:])
					leftVec := hwy.Load(curr[i0-currIstart:])
					cand1 := hwy.Add(diagVec, subVec)
					cand2 := hwy.Add(upVec, gapVec)
					cand3 := hwy.Add(leftVec, gapVec)
					combineVec(cand1, cand2, cand3, useMax).Store(next[i0-istart:])
				},
				func(offset, cnt int) {
					for k := 0; k < cnt; k++ {
						i := loI + offset + k
						j := diag - i
						diagVal := prev[i-1-prevIstart]
						upVal := curr[i-1-currIstart]
						leftVal := curr[i-currIstart]
						val := combine3(diagVal+sub.scalar(i, j), upVal+gap, leftVal+gap, useMax)
						next[i-istart] = val
					}
				},
			)
		}
		prev, curr, next = curr, next, prev
	}

	finalIstart := kernel.DiagRangeStart(n+m, n, m)
	return curr[n-finalIstart]
}

// runLinearGapFloored is runLinearGap specialized for Smith-Waterman:
// every cell is lower-bounded by 0, borders are 0, and the result is the
// maximum cell ever written rather than the bottom-right corner.
func runLinearGapFloored(s *Scratch, n, m int, sub substitution, gap int32) int32 {
	s.ensure(n, m)
	prev, curr, next := s.prev, s.curr, s.next
	lanes := hwy.MaxLanes[int32]()
	gapVec := hwy.Set(gap)
	var best int32

	for diag := 0; diag <= n+m; diag++ {
		istart, iend := kernel.DiagRange(diag, n, m)
		currIstart := kernel.DiagRangeStart(diag-1, n, m)
		prevIstart := kernel.DiagRangeStart(diag-2, n, m)

		for _, i := range [2]int{istart, iend} {
			j := diag - i
			if i == 0 || j == 0 {
				next[i-istart] = 0
			}
		}

		loI, hiI := istart, iend
		if loI < 1 {
			loI = 1
		}
		if diag-hiI < 1 {
			hiI = diag - 1
		}
		if hiI >= loI {
			count := hiI - loI + 1
			hwy.ProcessWithTail[int32](count,
				func(offset int) {
					i0 := loI + offset
					sub.fillVec(i0, diag, lanes, s.subBuf)
					subVec := hwy.Load(s.subBuf[:lanes])
					diagVec := hwy.Load(prev[i0-1-prevIstart:])
					upVec := hwy.Load(curr[i0-1-currIstart:])
					leftVec := hwy.Load(curr[i0-currIstart:])
					cand1 := hwy.Add(diagVec, subVec)
					cand2 := hwy.Add(upVec, gapVec)
					cand3 := hwy.Add(leftVec, gapVec)
					combined := hwy.ZeroIfNegative(combineVec(cand1, cand2, cand3, true))
					combined.Store(next[i0-istart:])
					if peak := hwy.ReduceMax(combined); peak > best {
						best = peak
					}
				},
				func(offset, cnt int) {
					for k := 0; k < cnt; k++ {
						i := loI + offset + k
						j := diag - i
						diagVal := prev[i-1-prevIstart]
						upVal := curr[i-1-currIstart]
						leftVal := curr[i-currIstart]
						val := combine3(diagVal+sub.scalar(i, j), upVal+gap, leftVal+gap, true)
						if val < 0 {
							val = 0
						}
						next[i-istart] = val
						if val > best {
							best = val
						}
					}
				},
			)
		}
		prev, curr, next = curr, next, prev
	}

	return best
}
