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

import "math/rand/v2"

// FuzzConfig parameterizes random corpus generation for the differential
// harness's fuzz passes.
type FuzzConfig struct {
	// Alphabet is the set of bytes fuzzed sequences are drawn from.
	Alphabet string
	// BatchSize is how many sequence pairs a single fuzz round generates.
	BatchSize int
	// MinLen and MaxLen bound generated sequence length in bytes
	// (MaxLen exclusive, following the math/rand/v2 IntN convention).
	MinLen, MaxLen int
	// Seed drives a deterministic generator so a failure can be
	// reproduced from its FailureRecord alone.
	Seed uint64
}

// DefaultFuzzConfig returns a FuzzConfig covering short DNA-like sequences,
// the same alphabet simdkernel's randomized tier-equivalence tests use.
func DefaultFuzzConfig(seed uint64) FuzzConfig {
	return FuzzConfig{
		Alphabet:  "ACGT",
		BatchSize: 64,
		MinLen:    0,
		MaxLen:    80,
		Seed:      seed,
	}
}

// generator produces deterministic pseudo-random byte sequences from a
// FuzzConfig. It is the harness's analogue of simdkernel's test-local
// randSeq helper, promoted to a reusable type because the differential
// tests need to regenerate the exact Nth pair a FailureRecord points to.
type generator struct {
	cfg FuzzConfig
	r   *rand.Rand
}

func newGenerator(cfg FuzzConfig) *generator {
	return &generator{cfg: cfg, r: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))}
}

func (g *generator) next() []byte {
	n := g.cfg.MinLen
	if g.cfg.MaxLen > g.cfg.MinLen {
		n += g.r.IntN(g.cfg.MaxLen - g.cfg.MinLen)
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = g.cfg.Alphabet[g.r.IntN(len(g.cfg.Alphabet))]
	}
	return out
}

// Pairs returns cfg.BatchSize freshly generated (a, b) sequence pairs.
func Pairs(cfg FuzzConfig) [][2][]byte {
	g := newGenerator(cfg)
	out := make([][2][]byte, cfg.BatchSize)
	for i := range out {
		out[i] = [2][]byte{g.next(), g.next()}
	}
	return out
}
