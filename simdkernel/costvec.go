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

import "github.com/ajroetker/seqsim/costmodel"

// substitution supplies a diagonal walker with both a scalar substitution
// cost (used for border and tail cells) and a lane-at-a-time filler used
// for the vectorized interior of a diagonal. a[i-1] is paired with b[j-1]
// for j = diag-i, so as i increases across a lane group, the a side reads
// forward and the b side reads backward; fillVec absorbs that indexing so
// callers only ever think in terms of (i0, diag, lanes).
type substitution struct {
	scalar  func(i, j int) int32
	fillVec func(i0, diag, lanes int, buf []int32)
}

// uniformSub builds a substitution from a flat match/mismatch pair. There
// is no SIMD equality-compare in hwy's portable Lanes API that crosses
// from byte-width comparisons to int32-width cost lanes cleanly, so the
// per-lane branch is evaluated directly into buf; hwy.Load then turns that
// buffer into a vector for the Add/Min/Max that follow. This mirrors a
// true SIMD build's branchless compare-and-select without needing one.
func uniformSub(a, b []byte, sub costmodel.Uniform) substitution {
	return substitution{
		scalar: func(i, j int) int32 { return sub.Cost(a[i-1], b[j-1]) },
		fillVec: func(i0, diag, lanes int, buf []int32) {
			for k := 0; k < lanes; k++ {
				i := i0 + k
				j := diag - i
				if a[i-1] == b[j-1] {
					buf[k] = sub.Match
				} else {
					buf[k] = sub.Mismatch
				}
			}
		},
	}
}

// denseSub builds a substitution from an arbitrary 256x256 table. Every
// lane independently indexes the table — the "gather" the algorithm
// description calls for — since hwy's portable tier has no vector gather
// instruction to batch this with.
func denseSub(a, b []byte, sub costmodel.Dense) substitution {
	return substitution{
		scalar: func(i, j int) int32 { return sub.Cost(a[i-1], b[j-1]) },
		fillVec: func(i0, diag, lanes int, buf []int32) {
			for k := 0; k < lanes; k++ {
				i := i0 + k
				j := diag - i
				buf[k] = sub.Cost(a[i-1], b[j-1])
			}
		},
	}
}
