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
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/seqsim/costmodel"
	"github.com/ajroetker/seqsim/kernel"
)

func randSeq(r *rand.Rand, alphabet string, minLen, maxLen int) []byte {
	n := minLen
	if maxLen > minLen {
		n += r.IntN(maxLen - minLen)
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[r.IntN(len(alphabet))]
	}
	return out
}

// TestTierEquivalenceLevenshtein is Testable Property 7: scalar and
// vectorized kernels must be bit-identical for every input.
func TestTierEquivalenceLevenshtein(t *testing.T) {
	gap := costmodel.NewLinearGap(1)
	sub := costmodel.DefaultUniform()
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 200; i++ {
		a := randSeq(r, "ACGT", 0, 40)
		b := randSeq(r, "ACGT", 0, 40)
		want := kernel.Levenshtein(a, b, gap, sub)
		got := Levenshtein(a, b, gap, sub)
		if got != want {
			t.Fatalf("Levenshtein(%q,%q): simdkernel=%d scalar=%d", a, b, got, want)
		}
	}
}

func TestTierEquivalenceLevenshteinAffine(t *testing.T) {
	gap := costmodel.NewAffineGap(2, 1)
	sub := costmodel.DefaultUniform()
	r := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 200; i++ {
		a := randSeq(r, "ACGT", 0, 40)
		b := randSeq(r, "ACGT", 0, 40)
		want := kernel.LevenshteinAffine(a, b, gap, sub)
		got := LevenshteinAffine(a, b, gap, sub)
		if got != want {
			t.Fatalf("LevenshteinAffine(%q,%q): simdkernel=%d scalar=%d", a, b, got, want)
		}
	}
}

func TestTierEquivalenceNeedlemanWunsch(t *testing.T) {
	sub := costmodel.Diagonal(1, -1)
	gap := costmodel.NewLinearGap(-1)
	r := rand.New(rand.NewPCG(5, 6))

	for i := 0; i < 200; i++ {
		a := randSeq(r, "ACDEFGHIKLMNPQRSTVWY", 0, 50)
		b := randSeq(r, "ACDEFGHIKLMNPQRSTVWY", 0, 50)
		want := kernel.NeedlemanWunsch(a, b, sub, gap)
		got := NeedlemanWunsch(a, b, sub, gap)
		if got != want {
			t.Fatalf("NeedlemanWunsch(%q,%q): simdkernel=%d scalar=%d", a, b, got, want)
		}
	}
}

func TestTierEquivalenceNeedlemanWunschAffine(t *testing.T) {
	sub := costmodel.Diagonal(2, -1)
	gap := costmodel.NewAffineGap(-3, -1)
	r := rand.New(rand.NewPCG(7, 8))

	for i := 0; i < 200; i++ {
		a := randSeq(r, "ACDEFGHIKLMNPQRSTVWY", 0, 50)
		b := randSeq(r, "ACDEFGHIKLMNPQRSTVWY", 0, 50)
		want := kernel.NeedlemanWunschAffine(a, b, sub, gap)
		got := NeedlemanWunschAffine(a, b, sub, gap)
		if got != want {
			t.Fatalf("NeedlemanWunschAffine(%q,%q): simdkernel=%d scalar=%d", a, b, got, want)
		}
	}
}

func TestTierEquivalenceSmithWaterman(t *testing.T) {
	sub := costmodel.Diagonal(2, -1)
	gap := costmodel.NewLinearGap(-2)
	r := rand.New(rand.NewPCG(9, 10))

	for i := 0; i < 200; i++ {
		a := randSeq(r, "ACGT", 0, 60)
		b := randSeq(r, "ACGT", 0, 60)
		want := kernel.SmithWaterman(a, b, sub, gap)
		got := SmithWaterman(a, b, sub, gap)
		if got != want {
			t.Fatalf("SmithWaterman(%q,%q): simdkernel=%d scalar=%d", a, b, got, want)
		}
	}
}

func TestTierEquivalenceSmithWatermanAffine(t *testing.T) {
	sub := costmodel.Diagonal(2, -1)
	gap := costmodel.NewAffineGap(-3, -1)
	r := rand.New(rand.NewPCG(11, 12))

	for i := 0; i < 200; i++ {
		a := randSeq(r, "ACGT", 0, 60)
		b := randSeq(r, "ACGT", 0, 60)
		want := kernel.SmithWatermanAffine(a, b, sub, gap)
		got := SmithWatermanAffine(a, b, sub, gap)
		if got != want {
			t.Fatalf("SmithWatermanAffine(%q,%q): simdkernel=%d scalar=%d", a, b, got, want)
		}
	}
}

func TestLevenshteinScenarios(t *testing.T) {
	gap := costmodel.NewLinearGap(1)
	sub := costmodel.DefaultUniform()

	cases := []struct {
		a, b string
		want uint32
	}{
		{"LISTEN", "SILENT", 4},
		{"ATCA", "CTACTCACCC", 6},
		{"ggbuzgjux{}l", "gbuzgjux{}l", 1},
		{"", "ABC", 3},
	}
	for _, c := range cases {
		got := Levenshtein([]byte(c.a), []byte(c.b), gap, sub)
		if got != c.want {
			t.Errorf("Levenshtein(%q,%q): got %d want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestScratchReuseAcrossGrowingPairs(t *testing.T) {
	gap := costmodel.NewLinearGap(1)
	sub := costmodel.DefaultUniform()
	s := NewScratch()

	pairs := [][2]string{
		{"a", "b"},
		{"kitten", "sitting"},
		{"LISTEN", "SILENT"},
		{"", "shrinking back down across several more lanes than the first pair needed"},
	}
	for _, p := range pairs {
		want := Levenshtein([]byte(p[0]), []byte(p[1]), gap, sub)
		got := LevenshteinScratch(s, []byte(p[0]), []byte(p[1]), gap, sub)
		if got != want {
			t.Errorf("LevenshteinScratch(%q,%q): got %d want %d", p[0], p[1], got, want)
		}
	}
}
