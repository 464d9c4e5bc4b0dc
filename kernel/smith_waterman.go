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

// SmithWaterman returns the best local alignment score between a and b
// under substitution matrix sub and a linear gap cost: every cell is
// floored at 0 and the result is the maximum cell ever written, not the
// bottom-right corner.
func SmithWaterman(a, b []byte, sub costmodel.Dense, gap costmodel.LinearGap) int32 {
	return SmithWatermanScratch(NewScratch(), a, b, sub, gap)
}

// SmithWatermanScratch is SmithWaterman against caller-supplied scratch
// buffers; see LevenshteinScratch.
func SmithWatermanScratch(s *Scratch, a, b []byte, sub costmodel.Dense, gap costmodel.LinearGap) int32 {
	subCost := func(i, j int) int32 { return sub.Cost(a[i-1], b[j-1]) }
	return runLinearGapFloored(s, len(a), len(b), subCost, gap.OpenOrExtend)
}

// SmithWatermanAffine is SmithWaterman under a Gotoh affine gap cost.
func SmithWatermanAffine(a, b []byte, sub costmodel.Dense, gap costmodel.AffineGap) int32 {
	subCost := func(i, j int) int32 { return sub.Cost(a[i-1], b[j-1]) }
	return runAffineGap(NewScratch(), len(a), len(b), subCost, gap.Open, gap.Extend, true, true)
}
