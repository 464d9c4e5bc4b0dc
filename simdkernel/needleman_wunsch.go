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

// NeedlemanWunsch is kernel.NeedlemanWunsch's vectorized-interior
// counterpart: the optimal global alignment score between a and b under
// substitution matrix sub and a linear gap cost.
func NeedlemanWunsch(a, b []byte, sub costmodel.Dense, gap costmodel.LinearGap) int32 {
	return NeedlemanWunschScratch(NewScratch(), a, b, sub, gap)
}

// NeedlemanWunschScratch is NeedlemanWunsch against caller-supplied scratch
// buffers; see LevenshteinScratch.
func NeedlemanWunschScratch(s *Scratch, a, b []byte, sub costmodel.Dense, gap costmodel.LinearGap) int32 {
	return runLinearGap(s, len(a), len(b), denseSub(a, b, sub), gap.OpenOrExtend, true)
}

// NeedlemanWunschAffine is NeedlemanWunsch under a Gotoh affine gap cost.
func NeedlemanWunschAffine(a, b []byte, sub costmodel.Dense, gap costmodel.AffineGap) int32 {
	return runAffineGap(NewScratch(), len(a), len(b), denseSub(a, b, sub), gap.Open, gap.Extend, true, false)
}
