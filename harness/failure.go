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
	"os"
	"path/filepath"
	"time"
)

// FailureRecord captures everything needed to reproduce a differential
// mismatch offline: which corpus it came from, how that corpus was
// tokenized, the seed and index that produced the offending pair, and what
// each side computed.
type FailureRecord struct {
	// Name identifies the comparison that failed, e.g.
	// "Levenshtein/kernel-vs-reference".
	Name string
	// DatasetPath is the source file, or "" for an in-package corpus.
	DatasetPath string
	// Tokenization is how DatasetPath (or the fuzz generator) produced
	// tokens.
	Tokenization Tokenization
	// Seed is the Config.Seed of the run that produced the record, whether
	// the failing pair came from the corpus or from the fuzz generator.
	Seed uint64
	// TokenIndex is the position of the failing pair in the run's combined
	// pair list: corpus pairs first, then any fuzzed pairs.
	TokenIndex int
	// Expected and Actual are the two sides' results, formatted for
	// human inspection.
	Expected string
	Actual   string
}

// render formats a FailureRecord as a plain-text stress-log artifact.
func (f FailureRecord) render() string {
	return fmt.Sprintf(
		"name: %s\ndataset_path: %s\ntokenization: %s\nseed: %d\ntoken_index: %d\nexpected: %s\nactual: %s\n",
		f.Name, f.DatasetPath, f.Tokenization, f.Seed, f.TokenIndex, f.Expected, f.Actual,
	)
}

// WriteFailure persists a FailureRecord under dir as
// failed_<unix-nano>_<name>.txt. The write goes to a temp file in the same
// directory and is renamed into place, so a reader never observes a
// partially written artifact even if two failures land concurrently.
func WriteFailure(dir string, rec FailureRecord) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("harness: create stress dir: %w", err)
	}

	safeName := sanitizeName(rec.Name)
	final := filepath.Join(dir, fmt.Sprintf("failed_%d_%s.txt", time.Now().UnixNano(), safeName))

	tmp, err := os.CreateTemp(dir, "failure-*.tmp")
	if err != nil {
		return "", fmt.Errorf("harness: create temp failure file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(rec.render()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("harness: write failure record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("harness: close failure record: %w", err)
	}
	if err := os.Rename(tmpPath, final); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("harness: rename failure record into place: %w", err)
	}
	return final, nil
}

func sanitizeName(name string) string {
	out := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			out[i] = c
		default:
			out[i] = '_'
		}
	}
	return string(out)
}
