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

package kernel

// runAffineGap walks the DP matrix under a Gotoh affine gap cost, tracking
// three rolling diagonal families: Main (best score ending in a match or
// mismatch), Ins (best score ending in a gap along b), and Del (best score
// ending in a gap along a). Main reads the two preceding diagonals; Ins
// and Del only ever reference the immediately preceding diagonal.
//
// When floor is true (Smith-Waterman), borders reset to 0 and the result is
// the largest Main cell ever written instead of the bottom-right corner;
// this mirrors the linear-gap floor and keeps the affine kernel identical
// to its linear counterpart whenever open == extend (the two tracks then
// collapse to the same recurrence).
func runAffineGap(s *Scratch, n, m int, subCost func(i, j int) int32, open, extend int32, useMax, floor bool) int32 {
	s.ensure(n, m)
	mainPrev, mainCurr, mainNext := s.prev, s.curr, s.next
	insCurr, insNext := s.insCurr, s.insNext
	delCurr, delNext := s.delCurr, s.delNext
	var best int32

	for diag := 0; diag <= n+m; diag++ {
		istart, iend := diagRange(diag, n, m)
		currIstart := diagRangeStart(diag-1, n, m)
		prevIstart := diagRangeStart(diag-2, n, m)

		for i := istart; i <= iend; i++ {
			j := diag - i
			k := i - istart

			var mainVal, insVal, delVal int32
			switch {
			case i == 0 && j == 0:
				mainVal, insVal, delVal = 0, 0, 0
			case floor && (i == 0 || j == 0):
				// Smith-Waterman's border resets every track to 0: an
				// alignment may restart at any cell, so no gap run ever
				// carries in from outside the matrix.
				mainVal, insVal, delVal = 0, 0, 0
			case i == 0:
				// Top border: only a horizontal (Ins) run is possible.
				mainVal = open + int32(j-1)*extend
				insVal = mainVal
				delVal = mainVal + open + extend
			case j == 0:
				// Left border: only a vertical (Del) run is possible.
				mainVal = open + int32(i-1)*extend
				delVal = mainVal
				insVal = mainVal + open + extend
			default:
				leftMain := mainCurr[i-currIstart]
				leftIns := insCurr[i-currIstart]
				insVal = combine2(leftMain+open, leftIns+extend, useMax)

				upMain := mainCurr[i-1-currIstart]
				upDel := delCurr[i-1-currIstart]
				delVal = combine2(upMain+open, upDel+extend, useMax)

				diagMain := mainPrev[i-1-prevIstart]
				subVal := diagMain + subCost(i, j)
				mainVal = combine3(subVal, insVal, delVal, useMax)
				if floor && mainVal < 0 {
					mainVal = 0
				}
			}

			mainNext[k] = mainVal
			insNext[k] = insVal
			delNext[k] = delVal
			if floor && mainVal > best {
				best = mainVal
			}
		}
		mainPrev, mainCurr, mainNext = mainCurr, mainNext, mainPrev
		insCurr, insNext = insNext, insCurr
		delCurr, delNext = delNext, delCurr
	}

	if floor {
		return best
	}
	finalIstart := diagRangeStart(n+m, n, m)
	return mainCurr[n-finalIstart]
}
