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

// Status reports the outcome of computing a single pair within a batch.
// A failure on one pair never invalidates the rest of the batch: every
// LevenshteinDistances-style call returns one Status per pair alongside
// the result slice, and indices other than the failing one remain valid.
type Status int8

const (
	// StatusSuccess means the result at this index is valid.
	StatusSuccess Status = iota
	// StatusAllocationFailed means the configured Allocator could not
	// produce scratch space for this pair.
	StatusAllocationFailed
	// StatusInvalidArgument means the pair itself was malformed in a way
	// the batch-level length check does not catch (reserved for future
	// per-pair validation; no current kernel produces it).
	StatusInvalidArgument
	// StatusDeviceError means the unit of work panicked or otherwise
	// failed in a way recovered defensively rather than propagated.
	StatusDeviceError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusAllocationFailed:
		return "allocation_failed"
	case StatusInvalidArgument:
		return "invalid_argument"
	case StatusDeviceError:
		return "device_error"
	default:
		return "unknown"
	}
}
