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

import (
	"unicode/utf8"

	"github.com/ajroetker/seqsim/costmodel"
)

// LevenshteinUTF8 returns the edit distance between a and b counted in
// Unicode code points rather than bytes. Invalid UTF-8 subsequences decode
// to utf8.RuneError one byte at a time, same as range over a string, so
// malformed input still produces a deterministic distance instead of an
// error.
func LevenshteinUTF8(a, b []byte, gap costmodel.LinearGap, sub costmodel.Uniform) uint32 {
	return LevenshteinUTF8Scratch(NewScratch(), a, b, gap, sub)
}

// LevenshteinUTF8Scratch is LevenshteinUTF8 against caller-supplied scratch
// buffers; see LevenshteinScratch. The rune-decoding step still allocates
// per call — only the DP buffers are reused.
func LevenshteinUTF8Scratch(s *Scratch, a, b []byte, gap costmodel.LinearGap, sub costmodel.Uniform) uint32 {
	ra, rb := decodeRunes(a), decodeRunes(b)
	subCost := func(i, j int) int32 {
		if ra[i-1] == rb[j-1] {
			return sub.Match
		}
		return sub.Mismatch
	}
	return uint32(runLinearGap(s, len(ra), len(rb), subCost, gap.OpenOrExtend, false))
}

// decodeRunes splits b into Unicode code points, in decoding order.
func decodeRunes(b []byte) []rune {
	out := make([]rune, 0, len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		out = append(out, r)
		b = b[size:]
	}
	return out
}
