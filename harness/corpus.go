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
	"bufio"
	"fmt"
	"os"
	"strings"
)

// fixedCorpus is the in-package fallback corpus used when Config carries no
// DatasetPath: short literal strings chosen to exercise empty sequences,
// single-byte edits, transpositions, and multi-character gaps.
var fixedCorpus = [][2][]byte{
	{[]byte("kitten"), []byte("sitting")},
	{[]byte("LISTEN"), []byte("SILENT")},
	{[]byte(""), []byte("")},
	{[]byte(""), []byte("abc")},
	{[]byte("GATTACA"), []byte("GCATGCU")},
	{[]byte("ACGTACGT"), []byte("ACGCACGA")},
	{[]byte("a"), []byte("a")},
	{[]byte("gumbo"), []byte("gambol")},
	{[]byte("saturday"), []byte("sunday")},
	{[]byte("ATCA"), []byte("CTACTCACCC")},
}

// LoadCorpus reads path and splits it into tokens per tok, pairing
// consecutive tokens (token[2i], token[2i+1]) the way cmd/seqsimbench feeds
// a user-supplied dataset into the batch API. An odd trailing token is
// paired with itself.
func LoadCorpus(path string, tok Tokenization) ([][2][]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("harness: read dataset %s: %w", path, err)
	}

	var tokens [][]byte
	switch tok.Mode {
	case "file":
		tokens = [][]byte{data}
	case "lines":
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimRight(line, "\r")
			if line == "" {
				continue
			}
			tokens = append(tokens, []byte(line))
		}
	case "words":
		sc := bufio.NewScanner(strings.NewReader(string(data)))
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			tokens = append(tokens, []byte(sc.Text()))
		}
	case "length":
		sc := bufio.NewScanner(strings.NewReader(string(data)))
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			if len(sc.Bytes()) == tok.FixedLength {
				tokens = append(tokens, append([]byte(nil), sc.Bytes()...))
			}
		}
	default:
		return nil, fmt.Errorf("%w: unknown tokenization mode %q", ErrBadConfig, tok.Mode)
	}

	pairs := make([][2][]byte, 0, (len(tokens)+1)/2)
	for i := 0; i < len(tokens); i += 2 {
		if i+1 < len(tokens) {
			pairs = append(pairs, [2][]byte{tokens[i], tokens[i+1]})
		} else {
			pairs = append(pairs, [2][]byte{tokens[i], tokens[i]})
		}
	}
	return pairs, nil
}

// Corpus resolves cfg's dataset into sequence pairs, falling back to
// fixedCorpus when no DatasetPath is configured.
func Corpus(cfg Config) ([][2][]byte, error) {
	if cfg.DatasetPath == "" {
		return fixedCorpus, nil
	}
	return LoadCorpus(cfg.DatasetPath, cfg.Tokenization)
}
