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

package batch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/seqsim/costmodel"
	"github.com/ajroetker/seqsim/kernel"
	"github.com/ajroetker/seqsim/tape"
)

func buildView(t *testing.T, seqs ...string) tape.View {
	t.Helper()
	tp := tape.New()
	raw := make([][]byte, len(seqs))
	for i, s := range seqs {
		raw[i] = []byte(s)
	}
	require.NoError(t, tp.TryAssign(raw))
	return tp.View()
}

func TestLevenshteinDistancesInline(t *testing.T) {
	left := buildView(t, "kitten", "flaw", "")
	right := buildView(t, "sitting", "lawn", "abc")

	results, statuses, err := LevenshteinDistances(context.Background(), left, right, costmodel.NewLinearGap(1), costmodel.DefaultUniform(), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []uint32{3, 2, 3}, results)
	for _, s := range statuses {
		assert.Equal(t, StatusSuccess, s)
	}
}

func TestLevenshteinDistancesPoolMatchesInline(t *testing.T) {
	left := buildView(t, "kitten", "flaw", "gumbo", "saturday", "")
	right := buildView(t, "sitting", "lawn", "gambol", "sunday", "xyz")

	gap := costmodel.NewLinearGap(1)
	sub := costmodel.DefaultUniform()

	inline, _, err := LevenshteinDistances(context.Background(), left, right, gap, sub, Options{Executor: InlineExecutor{}})
	require.NoError(t, err)

	pooled, _, err := LevenshteinDistances(context.Background(), left, right, gap, sub, Options{Executor: NewPoolExecutor(4)})
	require.NoError(t, err)

	assert.Equal(t, inline, pooled)
}

func TestLevenshteinDistancesLengthMismatch(t *testing.T) {
	left := buildView(t, "a", "b")
	right := buildView(t, "a")

	_, _, err := LevenshteinDistances(context.Background(), left, right, costmodel.NewLinearGap(1), costmodel.DefaultUniform(), DefaultOptions())
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestNeedlemanWunschScores(t *testing.T) {
	left := buildView(t, "abcdefg")
	right := buildView(t, "abc_efg")

	results, statuses, err := NeedlemanWunschScores(context.Background(), left, right, costmodel.Diagonal(1, 0), costmodel.NewLinearGap(0), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []int32{6}, results)
	assert.Equal(t, []Status{StatusSuccess}, statuses)
}

func TestSmithWatermanScores(t *testing.T) {
	left := buildView(t, "ABCDEFG")
	right := buildView(t, "XXABCDEFGXX")

	results, _, err := SmithWatermanScores(context.Background(), left, right, costmodel.Diagonal(1, 0), costmodel.NewLinearGap(-1), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []int32{7}, results)
}

func TestLevenshteinDistancesUTF8(t *testing.T) {
	left := buildView(t, "αβγδ")
	right := buildView(t, "αγδ")

	results, _, err := LevenshteinDistancesUTF8(context.Background(), left, right, costmodel.NewLinearGap(1), costmodel.DefaultUniform(), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []uint32{1}, results)
}

// failingAllocator always reports allocation failure, to exercise
// StatusAllocationFailed without any real resource pressure.
type failingAllocator struct{}

func (failingAllocator) Acquire() (*pairScratch, error) {
	return nil, errors.New("scratch unavailable")
}
func (failingAllocator) Release(*pairScratch) {}

func TestAllocationFailurePropagatesAsStatus(t *testing.T) {
	left := buildView(t, "a", "b")
	right := buildView(t, "a", "bb")

	results, statuses, err := LevenshteinDistances(context.Background(), left, right, costmodel.NewLinearGap(1), costmodel.DefaultUniform(), Options{Allocator: failingAllocator{}})
	require.NoError(t, err)

	require.Len(t, statuses, 2)
	assert.Equal(t, StatusAllocationFailed, statuses[0])
	assert.Equal(t, StatusAllocationFailed, statuses[1])
	// Results default to the zero value; callers must check Status before
	// trusting a result.
	assert.Equal(t, []uint32{0, 0}, results)
}

func TestContextCancellationStopsEarly(t *testing.T) {
	left := buildView(t, "a", "b", "c")
	right := buildView(t, "a", "b", "c")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := LevenshteinDistances(ctx, left, right, costmodel.NewLinearGap(1), costmodel.DefaultUniform(), DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPoolExecutorVisitsEveryIndex(t *testing.T) {
	n := 50
	seen := boolSlice(make([]bool, n))

	err := NewPoolExecutor(8).Run(context.Background(), n, func(i int) error {
		seen.set(i)
		return nil
	})
	require.NoError(t, err)

	for i, ok := range seen {
		assert.True(t, ok, "index %d never processed", i)
	}
}

type boolSlice []bool

func (b boolSlice) set(i int) { b[i] = true }

func TestLevenshteinDistancesAffineMatchesKernelDirectly(t *testing.T) {
	left := buildView(t, "kitten", "")
	right := buildView(t, "sitting", "abc")
	gap := costmodel.NewAffineGap(2, 1)
	sub := costmodel.DefaultUniform()

	results, _, err := LevenshteinDistances(context.Background(), left, right, gap, sub, DefaultOptions())
	require.NoError(t, err)

	want := []uint32{
		kernel.LevenshteinAffine([]byte("kitten"), []byte("sitting"), gap, sub),
		kernel.LevenshteinAffine([]byte(""), []byte("abc"), gap, sub),
	}
	assert.Equal(t, want, results)
}

func TestLevenshteinDistancesTierScalarMatchesTierSIMD(t *testing.T) {
	left := buildView(t, "kitten", "flaw", "gumbo", "saturday", "")
	right := buildView(t, "sitting", "lawn", "gambol", "sunday", "xyz")

	gap := costmodel.NewLinearGap(1)
	sub := costmodel.DefaultUniform()

	scalar, _, err := LevenshteinDistances(context.Background(), left, right, gap, sub, Options{Tier: TierScalar})
	require.NoError(t, err)

	vector, _, err := LevenshteinDistances(context.Background(), left, right, gap, sub, Options{Tier: TierSIMD})
	require.NoError(t, err)

	assert.Equal(t, scalar, vector)
}

func TestNeedlemanWunschScoresAffineTierScalarMatchesTierSIMD(t *testing.T) {
	left := buildView(t, "GATTACA", "ACGTACGT")
	right := buildView(t, "GCATGCU", "ACGCACGA")

	sub := costmodel.Diagonal(2, -1)
	gap := costmodel.NewAffineGap(-3, -1)

	scalar, _, err := NeedlemanWunschScores(context.Background(), left, right, sub, gap, Options{Tier: TierScalar})
	require.NoError(t, err)

	vector, _, err := NeedlemanWunschScores(context.Background(), left, right, sub, gap, Options{Tier: TierSIMD})
	require.NoError(t, err)

	assert.Equal(t, scalar, vector)
}
