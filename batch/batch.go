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

// Package batch fans a pair of equal-length tapes out across many
// independent kernel invocations, using an injectable Executor and
// Allocator so callers can choose sequential, pooled, or test-double
// concurrency and memory strategies without the kernels themselves
// knowing anything about batching.
package batch

import (
	"context"
	"errors"

	"github.com/ajroetker/seqsim/costmodel"
	"github.com/ajroetker/seqsim/hwy"
	"github.com/ajroetker/seqsim/kernel"
	"github.com/ajroetker/seqsim/simdkernel"
	"github.com/ajroetker/seqsim/tape"
)

// ErrLengthMismatch is returned when the left and right tapes passed to a
// batch function hold different numbers of sequences.
var ErrLengthMismatch = errors.New("batch: left and right batches have different lengths")

// Tier selects which kernel implementation a batch call dispatches to.
type Tier int8

const (
	// TierAuto picks TierSIMD when hwy.HasSIMD() reports hardware
	// acceleration, TierScalar otherwise. The choice is made once per
	// call, not once per pair, so per-pair results never depend on which
	// pair happens to run first (Testable Property 7).
	TierAuto Tier = iota
	// TierScalar forces the kernel package's scalar diagonal walker.
	TierScalar
	// TierSIMD forces the simdkernel package's vectorized-interior walker.
	TierSIMD
)

func (t Tier) resolve() Tier {
	if t != TierAuto {
		return t
	}
	if hwy.HasSIMD() {
		return TierSIMD
	}
	return TierScalar
}

// Options configures how a batch call distributes work, acquires scratch
// space, and which kernel tier it dispatches to. The zero value is valid:
// a nil Executor or Allocator is replaced by an InlineExecutor or a
// pooling Allocator, and the zero Tier is TierAuto.
type Options struct {
	Executor  Executor
	Allocator Allocator
	Tier      Tier
}

// DefaultOptions returns the Options a bare call uses: sequential
// execution, a non-failing pooling allocator, and runtime tier detection.
func DefaultOptions() Options {
	return Options{Executor: InlineExecutor{}, Allocator: NewPoolAllocator(), Tier: TierAuto}
}

func (o Options) withDefaults() Options {
	if o.Executor == nil {
		o.Executor = InlineExecutor{}
	}
	if o.Allocator == nil {
		o.Allocator = NewPoolAllocator()
	}
	return o
}

// runBatch drives n independent units of work through opts' Executor,
// recording one Status per index. A unit of work never aborts the batch:
// allocation failure and recovered panics are captured as a Status instead
// of propagating, so the caller always gets n results and n statuses back.
func runBatch(ctx context.Context, n int, opts Options, compute func(s *kernel.Scratch, v *simdkernel.Scratch, i int)) ([]Status, error) {
	opts = opts.withDefaults()
	statuses := make([]Status, n)

	err := opts.Executor.Run(ctx, n, func(i int) (ferr error) {
		s, aerr := opts.Allocator.Acquire()
		if aerr != nil {
			statuses[i] = StatusAllocationFailed
			return nil
		}
		defer opts.Allocator.Release(s)
		defer func() {
			if r := recover(); r != nil {
				statuses[i] = StatusDeviceError
			}
		}()

		compute(s.scalar, s.vector, i)
		statuses[i] = StatusSuccess
		return nil
	})

	return statuses, err
}

// LevenshteinDistances computes the edit distance between left[i] and
// right[i] for every i, in parallel according to opts. gap may be either
// costmodel.LinearGap or costmodel.AffineGap.
func LevenshteinDistances(ctx context.Context, left, right tape.View, gap costmodel.GapModel, sub costmodel.Uniform, opts Options) ([]uint32, []Status, error) {
	if left.Len() != right.Len() {
		return nil, nil, ErrLengthMismatch
	}
	n := left.Len()
	results := make([]uint32, n)
	tier := opts.Tier.resolve()
	statuses, err := runBatch(ctx, n, opts, func(s *kernel.Scratch, v *simdkernel.Scratch, i int) {
		a, b := left.At(i), right.At(i)
		if affine, ok := gap.(costmodel.AffineGap); ok {
			if tier == TierSIMD {
				results[i] = simdkernel.LevenshteinAffine(a, b, affine, sub)
			} else {
				results[i] = kernel.LevenshteinAffine(a, b, affine, sub)
			}
			return
		}
		linear := costmodel.NewLinearGap(gap.OpenCost())
		if tier == TierSIMD {
			results[i] = simdkernel.LevenshteinScratch(v, a, b, linear, sub)
		} else {
			results[i] = kernel.LevenshteinScratch(s, a, b, linear, sub)
		}
	})
	return results, statuses, err
}

// LevenshteinDistancesUTF8 is LevenshteinDistances counted in Unicode code
// points rather than bytes. The UTF-8 adapter has no vectorized
// counterpart (§C4 operates on decoded runes, not raw bytes), so it always
// runs on the scalar tier regardless of opts.Tier.
func LevenshteinDistancesUTF8(ctx context.Context, left, right tape.View, gap costmodel.LinearGap, sub costmodel.Uniform, opts Options) ([]uint32, []Status, error) {
	if left.Len() != right.Len() {
		return nil, nil, ErrLengthMismatch
	}
	n := left.Len()
	results := make([]uint32, n)
	statuses, err := runBatch(ctx, n, opts, func(s *kernel.Scratch, v *simdkernel.Scratch, i int) {
		results[i] = kernel.LevenshteinUTF8Scratch(s, left.At(i), right.At(i), gap, sub)
	})
	return results, statuses, err
}

// NeedlemanWunschScores computes the optimal global alignment score
// between left[i] and right[i] for every i, in parallel according to opts.
// gap may be either costmodel.LinearGap or costmodel.AffineGap.
func NeedlemanWunschScores(ctx context.Context, left, right tape.View, sub costmodel.Dense, gap costmodel.GapModel, opts Options) ([]int32, []Status, error) {
	if left.Len() != right.Len() {
		return nil, nil, ErrLengthMismatch
	}
	n := left.Len()
	results := make([]int32, n)
	tier := opts.Tier.resolve()
	statuses, err := runBatch(ctx, n, opts, func(s *kernel.Scratch, v *simdkernel.Scratch, i int) {
		a, b := left.At(i), right.At(i)
		if affine, ok := gap.(costmodel.AffineGap); ok {
			if tier == TierSIMD {
				results[i] = simdkernel.NeedlemanWunschAffine(a, b, sub, affine)
			} else {
				results[i] = kernel.NeedlemanWunschAffine(a, b, sub, affine)
			}
			return
		}
		linear := costmodel.NewLinearGap(gap.OpenCost())
		if tier == TierSIMD {
			results[i] = simdkernel.NeedlemanWunschScratch(v, a, b, sub, linear)
		} else {
			results[i] = kernel.NeedlemanWunschScratch(s, a, b, sub, linear)
		}
	})
	return results, statuses, err
}

// SmithWatermanScores computes the best local alignment score between
// left[i] and right[i] for every i, in parallel according to opts. gap may
// be either costmodel.LinearGap or costmodel.AffineGap.
func SmithWatermanScores(ctx context.Context, left, right tape.View, sub costmodel.Dense, gap costmodel.GapModel, opts Options) ([]int32, []Status, error) {
	if left.Len() != right.Len() {
		return nil, nil, ErrLengthMismatch
	}
	n := left.Len()
	results := make([]int32, n)
	tier := opts.Tier.resolve()
	statuses, err := runBatch(ctx, n, opts, func(s *kernel.Scratch, v *simdkernel.Scratch, i int) {
		a, b := left.At(i), right.At(i)
		if affine, ok := gap.(costmodel.AffineGap); ok {
			if tier == TierSIMD {
				results[i] = simdkernel.SmithWatermanAffine(a, b, sub, affine)
			} else {
				results[i] = kernel.SmithWatermanAffine(a, b, sub, affine)
			}
			return
		}
		linear := costmodel.NewLinearGap(gap.OpenCost())
		if tier == TierSIMD {
			results[i] = simdkernel.SmithWatermanScratch(v, a, b, sub, linear)
		} else {
			results[i] = kernel.SmithWatermanScratch(s, a, b, sub, linear)
		}
	})
	return results, statuses, err
}
