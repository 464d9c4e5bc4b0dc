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

// Levenshtein is kernel.Levenshtein's vectorized-interior counterpart: the
// edit distance between a and b under a uniform substitution cost and a
// linear gap cost. Results are bit-identical to kernel.Levenshtein for
// every input (Testable Property 7).
func Levenshtein(a, b []byte, gap costmodel.LinearGap, sub costmodel.Uniform) uint32 {
	return LevenshteinScratch(NewScratch(), a, b, gap, sub)
}

// LevenshteinScratch is Levenshtein against caller-supplied scratch
// buffers; reusing one Scratch across many pairs avoids an allocation per
// pair, same as kernel.LevenshteinScratch.
func LevenshteinScratch(s *Scratch, a, b []byte, gap costmodel.LinearGap, sub costmodel.Uniform) uint32 {
	return uint32(runLinearGap(s, len(a), len(b), uniformSub(a, b, sub), gap.OpenOrExtend, false))
}

// LevenshteinAffine is Levenshtein under a Gotoh affine gap cost.
func LevenshteinAffine(a, b []byte, gap costmodel.AffineGap, sub costmodel.Uniform) uint32 {
	return uint32(runAffineGap(NewScratch(), len(a), len(b), uniformSub(a, b, sub), gap.Open, gap.Extend, false, false))
}
