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

package harness

import (
	"fmt"
	"testing"

	"github.com/ajroetker/seqsim/costmodel"
	"github.com/ajroetker/seqsim/kernel"
	"github.com/ajroetker/seqsim/simdkernel"
)

// checkOrRecord compares got against want and, on mismatch, fails the test
// and writes a FailureRecord to t.TempDir() so the artifact's shape can be
// inspected even though the test itself also reports the failure directly.
func checkOrRecord(t *testing.T, name string, idx int, a, b []byte, want, got int64) {
	t.Helper()
	if want == got {
		return
	}
	rec := FailureRecord{
		Name:         name,
		Tokenization: TokenizeLines(),
		TokenIndex:   idx,
		Expected:     fmt.Sprintf("%d (a=%q b=%q)", want, a, b),
		Actual:       fmt.Sprintf("%d", got),
	}
	path, werr := WriteFailure(t.TempDir(), rec)
	if werr != nil {
		t.Errorf("%s[%d]: mismatch want=%d got=%d; additionally failed to write failure record: %v", name, idx, want, got, werr)
		return
	}
	t.Errorf("%s[%d]: mismatch want=%d got=%d (a=%q b=%q); recorded at %s", name, idx, want, got, a, b, path)
}

func fixedAndFuzzedPairs(cfg FuzzConfig) [][2][]byte {
	all := make([][2][]byte, 0, len(fixedCorpus)+cfg.BatchSize)
	all = append(all, fixedCorpus...)
	all = append(all, Pairs(cfg)...)
	return all
}

func TestDifferentialLevenshteinAgainstReference(t *testing.T) {
	gap := costmodel.NewLinearGap(1)
	sub := costmodel.DefaultUniform()
	pairs := fixedAndFuzzedPairs(DefaultFuzzConfig(101))

	for i, p := range pairs {
		want := int64(referenceLevenshtein(p[0], p[1], gap, sub))
		got := int64(kernel.Levenshtein(p[0], p[1], gap, sub))
		checkOrRecord(t, "Levenshtein/kernel-vs-reference", i, p[0], p[1], want, got)
	}
}

func TestDifferentialLevenshteinSIMDAgainstReference(t *testing.T) {
	gap := costmodel.NewLinearGap(1)
	sub := costmodel.DefaultUniform()
	pairs := fixedAndFuzzedPairs(DefaultFuzzConfig(102))

	for i, p := range pairs {
		want := int64(referenceLevenshtein(p[0], p[1], gap, sub))
		got := int64(simdkernel.Levenshtein(p[0], p[1], gap, sub))
		checkOrRecord(t, "Levenshtein/simdkernel-vs-reference", i, p[0], p[1], want, got)
	}
}

func TestDifferentialNeedlemanWunschAgainstReference(t *testing.T) {
	sub := costmodel.Diagonal(1, -1)
	gap := costmodel.NewLinearGap(-1)
	pairs := fixedAndFuzzedPairs(FuzzConfig{Alphabet: "ACDEFGHIKLMNPQRSTVWY", BatchSize: 64, MinLen: 0, MaxLen: 50, Seed: 103})

	for i, p := range pairs {
		want := int64(referenceNeedlemanWunsch(p[0], p[1], sub, gap))
		got := int64(kernel.NeedlemanWunsch(p[0], p[1], sub, gap))
		checkOrRecord(t, "NeedlemanWunsch/kernel-vs-reference", i, p[0], p[1], want, got)
	}
}

func TestDifferentialSmithWatermanAgainstReference(t *testing.T) {
	sub := costmodel.Diagonal(2, -1)
	gap := costmodel.NewLinearGap(-2)
	pairs := fixedAndFuzzedPairs(DefaultFuzzConfig(104))

	for i, p := range pairs {
		want := int64(referenceSmithWaterman(p[0], p[1], sub, gap))
		got := int64(kernel.SmithWaterman(p[0], p[1], sub, gap))
		checkOrRecord(t, "SmithWaterman/kernel-vs-reference", i, p[0], p[1], want, got)
	}
}

// TestDifferentialTierEquivalenceAcrossCorpus exercises the same
// fixed-plus-fuzzed corpus the oracle comparisons above use, but compares
// kernel against simdkernel directly (Testable Property 7), the
// comparison cmd/seqsimbench's --stress flag drives.
func TestDifferentialTierEquivalenceAcrossCorpus(t *testing.T) {
	gap := costmodel.NewAffineGap(2, 1)
	sub := costmodel.DefaultUniform()
	pairs := fixedAndFuzzedPairs(DefaultFuzzConfig(105))

	for i, p := range pairs {
		want := int64(kernel.LevenshteinAffine(p[0], p[1], gap, sub))
		got := int64(simdkernel.LevenshteinAffine(p[0], p[1], gap, sub))
		checkOrRecord(t, "LevenshteinAffine/kernel-vs-simdkernel", i, p[0], p[1], want, got)
	}
}
