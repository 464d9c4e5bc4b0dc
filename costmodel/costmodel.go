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

// Package costmodel defines the substitution- and gap-cost variants shared
// by every kernel: uniform match/mismatch, dense and compact substitution
// matrices, and linear/affine gap models.
package costmodel

import "math"

// sentinelUnused marks entries of a decompressed Compact26 matrix that fall
// outside the intended alphabet.
const sentinelUnused = math.MinInt8

// Uniform is a substitution cost expressed as a flat match/mismatch pair,
// used by the Levenshtein family of kernels.
type Uniform struct {
	Match    int32
	Mismatch int32
}

// DefaultUniform returns the conventional distance cost: 0 for a match, 1
// for a mismatch.
func DefaultUniform() Uniform {
	return Uniform{Match: 0, Mismatch: 1}
}

// Cost returns Match if a == b, Mismatch otherwise.
func (u Uniform) Cost(a, b byte) int32 {
	if a == b {
		return u.Match
	}
	return u.Mismatch
}

// Dense is a 256x256 substitution matrix, addressed by byte value, suitable
// for BLOSUM-like scoring over arbitrary alphabets.
type Dense struct {
	table [256][256]int8
}

// NewDense builds a Dense matrix from a row-major 256x256 table.
func NewDense(table [256][256]int8) Dense {
	return Dense{table: table}
}

// Diagonal constructs a Dense matrix with match on the diagonal and
// mismatch everywhere else — the scoring equivalent of Uniform, used to
// express distances as scores (Testable Property 5).
func Diagonal(match, mismatch int8) Dense {
	var d Dense
	for i := range d.table {
		for j := range d.table[i] {
			if i == j {
				d.table[i][j] = match
			} else {
				d.table[i][j] = mismatch
			}
		}
	}
	return d
}

// Cost returns the substitution score for aligning byte a with byte b.
func (d Dense) Cost(a, b byte) int32 {
	return int32(d.table[a][b])
}

// MarshalBinary serializes the matrix as a row-major 256x256 int8 blob, the
// wire format used by offline tooling.
func (d Dense) MarshalBinary() ([]byte, error) {
	out := make([]byte, 256*256)
	for i := range d.table {
		for j := range d.table[i] {
			out[i*256+j] = byte(d.table[i][j])
		}
	}
	return out, nil
}

// Compact26 is a space-saving 26x26 ASCII substitution matrix (e.g. a
// BLOSUM62 table), decompressable to the full 256x256 Dense form.
type Compact26 struct {
	table [26][26]int8
}

// NewCompact26 builds a Compact26 matrix from a 26x26 table indexed by
// case-folded letter (A=0 .. Z=25).
func NewCompact26(table [26][26]int8) Compact26 {
	return Compact26{table: table}
}

// Decompress expands the 26x26 ASCII form into a full 256x256 Dense table,
// mapping ASCII A-Z (case-folded) entries and leaving every other entry at
// a sentinel value not expected to occur for the intended alphabet.
func (c Compact26) Decompress() Dense {
	var d Dense
	for i := range d.table {
		for j := range d.table[i] {
			d.table[i][j] = sentinelUnused
		}
	}
	for i := 0; i < 26; i++ {
		for j := 0; j < 26; j++ {
			upperI, upperJ := byte('A'+i), byte('A'+j)
			lowerI, lowerJ := byte('a'+i), byte('a'+j)
			v := c.table[i][j]
			d.table[upperI][upperJ] = v
			d.table[upperI][lowerJ] = v
			d.table[lowerI][upperJ] = v
			d.table[lowerI][lowerJ] = v
		}
	}
	return d
}

// GapModel is implemented by LinearGap and AffineGap.
type GapModel interface {
	// OpenCost returns the cost of opening a new gap.
	OpenCost() int32
	// ExtendCost returns the cost of extending an already-open gap.
	ExtendCost() int32
	// IsAffine reports whether Open and Extend differ; when they do not,
	// every affine kernel must behave identically to its linear counterpart.
	IsAffine() bool
}

// LinearGap charges the same cost to open or extend a gap.
type LinearGap struct {
	OpenOrExtend int32
}

// NewLinearGap returns a LinearGap cost model.
func NewLinearGap(openOrExtend int32) LinearGap {
	return LinearGap{OpenOrExtend: openOrExtend}
}

// OpenCost implements GapModel.
func (g LinearGap) OpenCost() int32 { return g.OpenOrExtend }

// ExtendCost implements GapModel.
func (g LinearGap) ExtendCost() int32 { return g.OpenOrExtend }

// IsAffine implements GapModel.
func (g LinearGap) IsAffine() bool { return false }

// AffineGap charges Open to start a run of indels and Extend for every
// subsequent cell of the same run.
type AffineGap struct {
	Open   int32
	Extend int32
}

// NewAffineGap returns an AffineGap cost model.
func NewAffineGap(open, extend int32) AffineGap {
	return AffineGap{Open: open, Extend: extend}
}

// OpenCost implements GapModel.
func (g AffineGap) OpenCost() int32 { return g.Open }

// ExtendCost implements GapModel.
func (g AffineGap) ExtendCost() int32 { return g.Extend }

// IsAffine implements GapModel.
func (g AffineGap) IsAffine() bool { return g.Open != g.Extend }
