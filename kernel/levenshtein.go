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

import "github.com/ajroetker/seqsim/costmodel"

// Levenshtein returns the edit distance between a and b under a uniform
// substitution cost and a linear gap cost, using min as the recurrence's
// combining operator.
func Levenshtein(a, b []byte, gap costmodel.LinearGap, sub costmodel.Uniform) uint32 {
	return LevenshteinScratch(NewScratch(), a, b, gap, sub)
}

// LevenshteinScratch is Levenshtein, but runs against caller-supplied
// scratch buffers instead of allocating its own. Reusing one Scratch
// across many pairs — as batch's pooling Allocator does — avoids
// an allocation per pair.
func LevenshteinScratch(s *Scratch, a, b []byte, gap costmodel.LinearGap, sub costmodel.Uniform) uint32 {
	subCost := func(i, j int) int32 { return sub.Cost(a[i-1], b[j-1]) }
	return uint32(runLinearGap(s, len(a), len(b), subCost, gap.OpenOrExtend, false))
}

// LevenshteinAffine is Levenshtein under a Gotoh affine gap cost: opening a
// run of indels costs gap.Open, every subsequent cell of the same run costs
// gap.Extend. When gap.Open == gap.Extend this returns exactly what
// Levenshtein would with the equivalent LinearGap.
func LevenshteinAffine(a, b []byte, gap costmodel.AffineGap, sub costmodel.Uniform) uint32 {
	subCost := func(i, j int) int32 { return sub.Cost(a[i-1], b[j-1]) }
	return uint32(runAffineGap(NewScratch(), len(a), len(b), subCost, gap.Open, gap.Extend, false, false))
}
