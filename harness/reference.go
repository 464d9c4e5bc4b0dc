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

// Package harness differentially tests the kernel package's anti-diagonal
// implementations against a deliberately naive, full-matrix oracle over a
// fixed corpus and over randomly fuzzed sequences, persisting any
// mismatches it finds for offline inspection.
package harness

import "github.com/ajroetker/seqsim/costmodel"

// referenceLevenshtein computes the edit distance by filling the full
// (n+1)x(m+1) matrix row by row — the textbook algorithm, independent of
// the anti-diagonal walk kernel.Levenshtein uses.
func referenceLevenshtein(a, b []byte, gap costmodel.LinearGap, sub costmodel.Uniform) uint32 {
	n, m := len(a), len(b)
	prev := make([]int32, m+1)
	curr := make([]int32, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = int32(j) * gap.OpenOrExtend
	}
	for i := 1; i <= n; i++ {
		curr[0] = int32(i) * gap.OpenOrExtend
		for j := 1; j <= m; j++ {
			subVal := prev[j-1] + sub.Cost(a[i-1], b[j-1])
			delVal := prev[j] + gap.OpenOrExtend
			insVal := curr[j-1] + gap.OpenOrExtend
			curr[j] = min3(subVal, delVal, insVal)
		}
		prev, curr = curr, prev
	}
	return uint32(prev[m])
}

// referenceNeedlemanWunsch is the textbook row-by-row global alignment,
// independent of kernel.NeedlemanWunsch's anti-diagonal walk.
func referenceNeedlemanWunsch(a, b []byte, sub costmodel.Dense, gap costmodel.LinearGap) int32 {
	n, m := len(a), len(b)
	prev := make([]int32, m+1)
	curr := make([]int32, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = int32(j) * gap.OpenOrExtend
	}
	for i := 1; i <= n; i++ {
		curr[0] = int32(i) * gap.OpenOrExtend
		for j := 1; j <= m; j++ {
			subVal := prev[j-1] + sub.Cost(a[i-1], b[j-1])
			upVal := prev[j] + gap.OpenOrExtend
			leftVal := curr[j-1] + gap.OpenOrExtend
			curr[j] = max3(subVal, upVal, leftVal)
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

// referenceSmithWaterman is the textbook row-by-row local alignment.
func referenceSmithWaterman(a, b []byte, sub costmodel.Dense, gap costmodel.LinearGap) int32 {
	n, m := len(a), len(b)
	prev := make([]int32, m+1)
	curr := make([]int32, m+1)
	var best int32
	for i := 1; i <= n; i++ {
		curr[0] = 0
		for j := 1; j <= m; j++ {
			subVal := prev[j-1] + sub.Cost(a[i-1], b[j-1])
			upVal := prev[j] + gap.OpenOrExtend
			leftVal := curr[j-1] + gap.OpenOrExtend
			v := max3(subVal, upVal, leftVal)
			if v < 0 {
				v = 0
			}
			curr[j] = v
			if v > best {
				best = v
			}
		}
		prev, curr = curr, prev
	}
	return best
}

func min3(a, b, c int32) int32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c int32) int32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
