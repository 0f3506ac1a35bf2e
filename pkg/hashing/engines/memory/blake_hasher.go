//
// Copyright 2025 The Sigstore Authors.
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

package memory

import (
	"hash"

	"golang.org/x/crypto/blake2b"
	"lukechampine.com/blake3"

	hashengines "github.com/sigstore/fsdigest/pkg/hashing/engines"
)

const blake3Size = 32

func init() {
	hashengines.MustRegister(hashengines.BLAKE2b, func() (hashengines.StreamingHashEngine, error) {
		return NewBLAKE2Engine(nil)
	})
	hashengines.MustRegister(hashengines.BLAKE3, func() (hashengines.StreamingHashEngine, error) {
		return NewBLAKE3Engine(nil)
	})
}

// NewBLAKE2Engine creates an unkeyed BLAKE2b-512 engine.
//
// If initialData is non-nil and non-empty, it is hashed immediately.
func NewBLAKE2Engine(initialData []byte) (*GenericHashEngine, error) {
	return NewGenericHashEngine(
		hashengines.BLAKE2b.String(),
		blake2b.Size,
		func() (hash.Hash, error) {
			return blake2b.New512(nil)
		},
		initialData,
	)
}

// NewBLAKE3Engine creates an unkeyed BLAKE3 engine with a 256-bit output.
func NewBLAKE3Engine(initialData []byte) (*GenericHashEngine, error) {
	return NewGenericHashEngine(
		hashengines.BLAKE3.String(),
		blake3Size,
		func() (hash.Hash, error) {
			return blake3.New(blake3Size, nil), nil
		},
		initialData,
	)
}
