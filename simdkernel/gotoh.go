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

func combine2Vec(x, y hwy.Vec[int32], useMax bool) hwy.Vec[int32] {
	if useMax {
		return hwy.Max(x, y)
	}
	return hwy.Min(x, y)
}

// runAffineGap is runLinearGap's Gotoh counterpart: it tracks the same
// three diagonal families as kernel.runAffineGap (Main, Ins, Del), but
// fills each diagonal's interior lanes at a time. Borders stay scalar —
// there are at most two border cells per diagonal, never enough to amortize
// a vector op — exactly mirroring kernel.runAffineGap's border arithmetic
// so the two tiers agree bit for bit (Testable Property 7).
func runAffineGap(s *Scratch, n, m int, sub substitution, open, extend int32, useMax, floor bool) int32 {
	s.ensure(n, m)
	mainPrev, mainCurr, mainNext := s.prev, s.curr, s.next
	insCurr, insNext := s.insCurr, s.insNext
	delCurr, delNext := s.delCurr, s.delNext
	lanes := hwy.MaxLanes[int32]()
	openVec, extendVec := hwy.Set(open), hwy.Set(extend)
	var best int32

	for diag := 0; diag <= n+m; diag++ {
		istart, iend := kernel.DiagRange(diag, n, m)
		currIstart := kernel.DiagRangeStart(diag-1, n, m)
		prevIstart := kernel.DiagRangeStart(diag-2, n, m)

		for _, i := range [2]int{istart, iend} {
			j := diag - i
			k := i - istart
			var mainVal, insVal, delVal int32
			switch {
			case i == 0 && j == 0:
				mainVal, insVal, delVal = 0, 0, 0
			case floor && (i == 0 || j == 0):
				mainVal, insVal, delVal = 0, 0, 0
			case i == 0:
				mainVal = open + int32(j-1)*extend
				insVal = mainVal
				delVal = mainVal + open + extend
			case j == 0:
				mainVal = open + int32(i-1)*extend
				delVal = mainVal
				insVal = mainVal + open + extend
			default:
				continue // interior cell within the border slot; handled below
			}
			mainNext[k] = mainVal
			insNext[k] = insVal
			delNext[k] = delVal
			if floor && mainVal > best {
				best = mainVal
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
					leftMain := hwy.Load(mainCurr[i0-currIstart:])
					leftIns := hwy.Load(insCurr[i0-currIstart:])
					insVec := combine2Vec(hwy.Add(leftMain, openVec), hwy.Add(leftIns, extendVec), useMax)

					upMain := hwy.Load(mainCurr[i0-1-currIstart:])
					upDel := hwy.Load(delCurr[i0-1-currIstart:])
					delVec := combine2Vec(hwy.Add(upMain, openVec), hwy.Add(upDel, extendVec), useMax)

					diagMain := hwy.Load(mainPrev[i0-1-prevIstart:])
					sub.fillVec(i0, diag, lanes, s.subBuf)
					subVec := hwy.Load(s.subBuf[:lanes])
					mainVec := combineVec(hwy.Add(diagMain, subVec), insVec, delVec, useMax)
					if floor {
						mainVec = hwy.ZeroIfNegative(mainVec)
						if peak := hwy.ReduceMax(mainVec); peak > best {
							best = peak
						}
					}

					mainVec.Store(mainNext[i0-istart:])
					insVec.Store(insNext[i0-istart:])
					delVec.Store(delNext[i0-istart:])
				},
				func(offset, cnt int) {
					for kk := 0; kk < cnt; kk++ {
						i := loI + offset + kk
						j := diag - i
						k := i - istart

						leftMain := mainCurr[i-currIstart]
						leftIns := insCurr[i-currIstart]
						insVal := combine2(leftMain+open, leftIns+extend, useMax)

						upMain := mainCurr[i-1-currIstart]
						upDel := delCurr[i-1-currIstart]
						delVal := combine2(upMain+open, upDel+extend, useMax)

						diagMain := mainPrev[i-1-prevIstart]
						subVal := diagMain + sub.scalar(i, j)
						mainVal := combine3(subVal, insVal, delVal, useMax)
						if floor && mainVal < 0 {
							mainVal = 0
						}

						mainNext[k] = mainVal
						insNext[k] = insVal
						delNext[k] = delVal
						if floor && mainVal > best {
							best = mainVal
						}
					}
				},
			)
		}

		mainPrev, mainCurr, mainNext = mainCurr, mainNext, mainPrev
		insCurr, insNext = insNext, insCurr
		delCurr, delNext = delNext, delCurr
	}

	if floor {
		return best
	}
	finalIstart := kernel.DiagRangeStart(n+m, n, m)
	return mainCurr[n-finalIstart]
}
