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

// Package tape provides a compact, cache-friendly container for large
// batches of variable-length byte sequences: one contiguous payload plus
// a monotonic offset index, in the style of an Arrow string array.
package tape

import "errors"

// ErrAllocationFailed indicates that a tape could not grow to hold the
// requested payload or index entry.
var ErrAllocationFailed = errors.New("tape: allocation failed")

// defaultMaxPayloadBytes is the payload ceiling New gives a Tape; NewBounded
// sets a ceiling past which TryAppend/TryAssign report ErrAllocationFailed.
// Zero means unbounded.
//
// Go's allocator does not expose a recoverable out-of-memory signal the way
// a C++ allocator does, so this ceiling is the idiomatic substitute for
// simulating allocation failure deterministically in tests.
const defaultMaxPayloadBytes = 0

// Tape is an append-only, resettable container holding K concatenated byte
// sequences and an offset index of length K+1 such that sequence i occupies
// payload[offsets[i]:offsets[i+1]]. The tape owns its payload and index
// exclusively; views returned by View remain valid until the tape is Reset
// or re-Assigned.
type Tape struct {
	payload    []byte
	offsets    []int
	maxPayload int
}

// New returns an empty Tape with no payload ceiling.
func New() *Tape {
	return &Tape{offsets: []int{0}, maxPayload: defaultMaxPayloadBytes}
}

// NewBounded returns an empty Tape that fails TryAppend/TryAssign once the
// payload would exceed maxPayloadBytes. Used to exercise ErrAllocationFailed
// deterministically.
func NewBounded(maxPayloadBytes int) *Tape {
	return &Tape{offsets: []int{0}, maxPayload: maxPayloadBytes}
}

// Len returns K, the number of sequences currently stored.
func (t *Tape) Len() int {
	return len(t.offsets) - 1
}

// At returns the i-th sequence as a slice aliasing the tape's payload.
// The returned slice is only valid until the next Reset or Assign.
func (t *Tape) At(i int) []byte {
	return t.payload[t.offsets[i]:t.offsets[i+1]]
}

// Reset discards all stored sequences, retaining the underlying capacity.
func (t *Tape) Reset() {
	t.payload = t.payload[:0]
	t.offsets = t.offsets[:1]
	t.offsets[0] = 0
}

// TryAppend appends one sequence, returning ErrAllocationFailed (and
// leaving the tape in its prior valid state) if the payload ceiling would
// be exceeded.
func (t *Tape) TryAppend(sequence []byte) error {
	if t.maxPayload > 0 && len(t.payload)+len(sequence) > t.maxPayload {
		return ErrAllocationFailed
	}
	t.payload = append(t.payload, sequence...)
	t.offsets = append(t.offsets, len(t.payload))
	return nil
}

// TryAssign is equivalent to Reset followed by TryAppend for each element.
// On failure the tape is left in its prior valid state: the attempt is
// staged against a scratch copy and only committed on full success.
func (t *Tape) TryAssign(sequences [][]byte) error {
	total := 0
	for _, s := range sequences {
		total += len(s)
	}
	if t.maxPayload > 0 && total > t.maxPayload {
		return ErrAllocationFailed
	}

	payload := make([]byte, 0, total)
	offsets := make([]int, 1, len(sequences)+1)
	for _, s := range sequences {
		payload = append(payload, s...)
		offsets = append(offsets, len(payload))
	}

	t.payload = payload
	t.offsets = offsets
	return nil
}

// View returns an O(1) read-only projection of the tape's current contents.
// The view aliases the tape's backing slices and is invalidated by the next
// Reset or Assign.
func (t *Tape) View() View {
	return View{payload: t.payload, offsets: t.offsets}
}

// View is a read-only, non-owning projection of a Tape.
type View struct {
	payload []byte
	offsets []int
}

// Len returns K, the number of sequences in the view.
func (v View) Len() int {
	if len(v.offsets) == 0 {
		return 0
	}
	return len(v.offsets) - 1
}

// At returns the i-th sequence in the view.
func (v View) At(i int) []byte {
	return v.payload[v.offsets[i]:v.offsets[i+1]]
}
