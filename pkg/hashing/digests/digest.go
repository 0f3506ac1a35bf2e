// Copyright 2025 The Sigstore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package digests provides the Digest value produced by every hash engine,
// the hex codec used to move digests through text, and the error kinds
// shared by the hashing packages.
package digests

import (
	"crypto/subtle"
	"fmt"
)

// Digest is the finalized output of a hash engine.
//
// Fields are unexported and the value slice is copied on the way in and on
// the way out, so a Digest cannot change after it is produced.
type Digest struct {
	algorithm string
	value     []byte
}

// NewDigest creates a Digest for the named algorithm. value is copied.
func NewDigest(algorithm string, value []byte) Digest {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return Digest{
		algorithm: algorithm,
		value:     valueCopy,
	}
}

// NewDigestFromHex decodes hexValue and wraps it as a Digest.
func NewDigestFromHex(algorithm, hexValue string) (Digest, error) {
	value, err := FromHex(hexValue)
	if err != nil {
		return Digest{}, err
	}
	return Digest{algorithm: algorithm, value: value}, nil
}

// Algorithm returns the name of the algorithm that produced the digest
// (e.g. "md5", "sha256").
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	valueCopy := make([]byte, len(d.value))
	copy(valueCopy, d.value)
	return valueCopy
}

// Hex returns the lowercase hexadecimal encoding of the digest bytes.
func (d Digest) Hex() string {
	return ToHex(d.value)
}

// Size returns the length in bytes of the digest value.
func (d Digest) Size() int {
	return len(d.value)
}

// IsZero reports whether d is the zero Digest.
func (d Digest) IsZero() bool {
	return d.algorithm == "" && len(d.value) == 0
}

// String returns "algorithm:hexvalue".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether both digests name the same algorithm and carry the
// same bytes. The byte comparison runs in constant time.
func (d Digest) Equal(other Digest) bool {
	if d.algorithm != other.algorithm {
		return false
	}
	return subtle.ConstantTimeCompare(d.value, other.value) == 1
}

// Matches compares the digest bytes against a raw or hex-encoded value,
// ignoring the algorithm name.
func (d Digest) Matches(other []byte) bool {
	return Equal(d.value, other)
}

// MatchesHex is Matches for a hex-encoded value.
func (d Digest) MatchesHex(other string) bool {
	return Equal(d.value, other)
}
