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
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ajroetker/seqsim/costmodel"
	"github.com/ajroetker/seqsim/kernel"
	"github.com/ajroetker/seqsim/simdkernel"
)

// backend is one named comparison Run can perform over a corpus: a kernel
// oracle check (does the production kernel agree with the naive reference
// implementation?) and, when StressEnabled, a tier-equivalence check (does
// the vectorized kernel agree with the scalar one?).
type backend struct {
	name      string
	reference func(a, b []byte) int64
	scalar    func(a, b []byte) int64
	vector    func(a, b []byte) int64
}

func backends() []backend {
	levSub := costmodel.DefaultUniform()
	levGap := costmodel.NewLinearGap(1)
	nwSub := costmodel.Diagonal(1, -1)
	nwGap := costmodel.NewLinearGap(-1)
	swSub := costmodel.Diagonal(2, -1)
	swGap := costmodel.NewLinearGap(-2)

	return []backend{
		{
			name:      "Levenshtein",
			reference: func(a, b []byte) int64 { return int64(referenceLevenshtein(a, b, levGap, levSub)) },
			scalar:    func(a, b []byte) int64 { return int64(kernel.Levenshtein(a, b, levGap, levSub)) },
			vector:    func(a, b []byte) int64 { return int64(simdkernel.Levenshtein(a, b, levGap, levSub)) },
		},
		{
			name:      "NeedlemanWunsch",
			reference: func(a, b []byte) int64 { return int64(referenceNeedlemanWunsch(a, b, nwSub, nwGap)) },
			scalar:    func(a, b []byte) int64 { return int64(kernel.NeedlemanWunsch(a, b, nwSub, nwGap)) },
			vector:    func(a, b []byte) int64 { return int64(simdkernel.NeedlemanWunsch(a, b, nwSub, nwGap)) },
		},
		{
			name:      "SmithWaterman",
			reference: func(a, b []byte) int64 { return int64(referenceSmithWaterman(a, b, swSub, swGap)) },
			scalar:    func(a, b []byte) int64 { return int64(kernel.SmithWaterman(a, b, swSub, swGap)) },
			vector:    func(a, b []byte) int64 { return int64(simdkernel.SmithWaterman(a, b, swSub, swGap)) },
		},
	}
}

// Report summarizes one Run: how many pairs were checked, how many
// mismatches were found (and logged), and how long the run took.
type Report struct {
	Checked  int
	Failures int
	Elapsed  time.Duration
}

func (r Report) String() string {
	return fmt.Sprintf("checked=%d failures=%d elapsed=%s", r.Checked, r.Failures, r.Elapsed)
}

// Run executes cfg's configured comparisons over its corpus, returning a
// Report and writing a FailureRecord for every mismatch found. It stops
// early, with a non-nil error, if cfg.DurationSeconds elapses first or if
// cfg.StressLimit failures accumulate.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	var filterRe *regexp.Regexp
	if cfg.Filter != "" {
		re, err := regexp.Compile(cfg.Filter)
		if err != nil {
			return Report{}, fmt.Errorf("harness: invalid --filter: %w", err)
		}
		filterRe = re
	}

	pairs, err := Corpus(cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Seed != 0 {
		pairs = append(append([][2][]byte{}, pairs...), Pairs(DefaultFuzzConfig(cfg.Seed))...)
	}

	deadline := time.Time{}
	if cfg.DurationSeconds > 0 {
		deadline = time.Now().Add(time.Duration(cfg.DurationSeconds) * time.Second)
	}

	rep := Report{}
	start := time.Now()

	for _, b := range backends() {
		if filterRe != nil && !filterRe.MatchString(b.name) {
			continue
		}
		for i, p := range pairs {
			if err := ctx.Err(); err != nil {
				rep.Elapsed = time.Since(start)
				return rep, err
			}
			if !deadline.IsZero() && time.Now().After(deadline) {
				rep.Elapsed = time.Since(start)
				return rep, fmt.Errorf("harness: duration budget exceeded after %s", rep.Elapsed)
			}

			rep.Checked++
			want := b.reference(p[0], p[1])
			got := b.scalar(p[0], p[1])
			if got != want {
				if err := record(cfg, &rep, b.name+"/kernel-vs-reference", i, p, want, got); err != nil {
					return rep, err
				}
				continue
			}

			if cfg.StressEnabled {
				vec := b.vector(p[0], p[1])
				if vec != got {
					if err := record(cfg, &rep, b.name+"/kernel-vs-simdkernel", i, p, got, vec); err != nil {
						return rep, err
					}
				}
			}
		}
	}

	rep.Elapsed = time.Since(start)
	return rep, nil
}

func record(cfg Config, rep *Report, name string, idx int, p [2][]byte, want, got int64) error {
	rep.Failures++
	_, err := WriteFailure(cfg.StressDir, FailureRecord{
		Name:         name,
		DatasetPath:  cfg.DatasetPath,
		Tokenization: cfg.Tokenization,
		Seed:         cfg.Seed,
		TokenIndex:   idx,
		Expected:     fmt.Sprintf("%d (a=%q b=%q)", want, p[0], p[1]),
		Actual:       fmt.Sprintf("%d", got),
	})
	if err != nil {
		return err
	}
	if cfg.StressLimit > 0 && rep.Failures >= cfg.StressLimit {
		return fmt.Errorf("harness: stress limit of %d failures reached (%s)", cfg.StressLimit, strings.Join([]string{name}, ""))
	}
	return nil
}
