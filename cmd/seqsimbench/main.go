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

// Command seqsimbench runs the differential/benchmark harness against a
// fixed corpus, a user-supplied dataset, or a fuzz generator, optionally
// comparing the scalar and vectorized kernel tiers and logging any
// mismatch as a stress-failure artifact.
//
// Usage:
//
//	seqsimbench --dataset words.txt --tokenize words --stress --seed 7
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/seqsim/harness"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		datasetPath string
		tokenize    string
		duration    int
		stress      bool
		stressDir   string
		stressLimit int
		filter      string
		seed        uint64
	)

	cmd := &cobra.Command{
		Use:   "seqsimbench",
		Short: "Differentially test and benchmark the seqsim kernel tiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := parseTokenize(tokenize)
			if err != nil {
				return err
			}
			cfg := harness.Config{
				DatasetPath:     datasetPath,
				Tokenization:    tok,
				DurationSeconds: duration,
				StressEnabled:   stress,
				StressDir:       stressDir,
				StressLimit:     stressLimit,
				Filter:          filter,
				Seed:            seed,
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			report, err := harness.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.String())
			if report.Failures > 0 {
				return fmt.Errorf("seqsimbench: %d differential failure(s), see %s", report.Failures, cfg.StressDir)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&datasetPath, "dataset", "", "file whose contents seed the corpus (default: fixed in-package corpus)")
	flags.StringVar(&tokenize, "tokenize", "lines", `tokenization mode: "file", "lines", "words", or an integer N ("only tokens of length N")`)
	flags.IntVar(&duration, "duration", 0, "upper bound in seconds on a single run; 0 means run to completion")
	flags.BoolVar(&stress, "stress", false, "compare accelerated (simdkernel) results against the scalar baseline")
	flags.StringVar(&stressDir, "stress-dir", "stress-failures", "directory failure records are written to")
	flags.IntVar(&stressLimit, "stress-limit", 100, "differential failures tolerated before aborting (0 = unlimited)")
	flags.StringVar(&filter, "filter", "", "regular expression over backend names to include")
	flags.Uint64Var(&seed, "seed", 1, "fuzz seed; a non-zero value enables deterministic token generation")

	return cmd
}

// parseTokenize turns the --tokenize flag's string form into a
// harness.Tokenization, accepting both the named modes and a bare integer
// meaning TokenizeLength(N).
func parseTokenize(s string) (harness.Tokenization, error) {
	switch s {
	case "file":
		return harness.TokenizeFile(), nil
	case "lines", "":
		return harness.TokenizeLines(), nil
	case "words":
		return harness.TokenizeWords(), nil
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n <= 0 {
		return harness.Tokenization{}, fmt.Errorf("seqsimbench: invalid --tokenize value %q", s)
	}
	return harness.TokenizeLength(n), nil
}
