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

// Package hashengines defines the hash engine interfaces, the set of known
// algorithms, and the registry that maps an algorithm to an implementation.
//
// A streaming engine follows a one-way lifecycle: it is created, fed any
// number of updates, and finalized exactly once by Compute. Once finalized,
// every further Update or Compute fails with an ErrTypeInvalidState error.
package hashengines

import (
	"io"

	"golang.org/x/text/encoding"

	"github.com/sigstore/fsdigest/pkg/hashing/digests"
)

// HashEngine defines the core interface for computing a digest.
type HashEngine interface {
	// Compute returns the digest. For streaming engines this finalizes the
	// state and may be called only once.
	Compute() (digests.Digest, error)

	// DigestName returns the canonical name of the algorithm. It is copied
	// into the algorithm field of the Digest returned by Compute.
	DigestName() string

	// DigestSize returns the size in bytes of digests produced by this engine.
	DigestSize() int
}

// Buffer is a readable byte buffer. *bytes.Buffer satisfies it; Bytes must
// return the unread portion without consuming it.
type Buffer interface {
	Bytes() []byte
}

// Streaming defines the interface for incrementally feeding data to an engine.
//
// Every variant normalizes to the same byte stream: feeding a buffer whole,
// in fragments, byte by byte, through an io.Writer, or as text yields the
// same digest.
type Streaming interface {
	io.Writer

	// Update appends data to the hash state.
	Update(data []byte) error

	// UpdateRange appends data[offset:offset+length]. It fails with an
	// ErrTypeInvalidRange error if the range does not fit inside data.
	UpdateRange(data []byte, offset, length int) error

	// UpdateByte appends a single byte.
	UpdateByte(b byte) error

	// UpdateBuffer appends the unread bytes of buf without consuming them.
	UpdateBuffer(buf Buffer) error

	// UpdateString appends the UTF-8 bytes of s.
	UpdateString(s string) error

	// UpdateText appends s encoded with enc. A nil enc means UTF-8.
	UpdateText(s string, enc encoding.Encoding) error

	// Finalized reports whether Compute has already been called.
	Finalized() bool
}

// StreamingHashEngine combines HashEngine and Streaming for incremental hashing.
type StreamingHashEngine interface {
	HashEngine
	Streaming
}
