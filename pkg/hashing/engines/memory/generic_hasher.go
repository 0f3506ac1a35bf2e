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

// Package memory provides in-memory streaming hash engines for every
// supported algorithm and registers them with the engine registry.
package memory

import (
	"fmt"
	"hash"
	"reflect"

	"golang.org/x/text/encoding"

	"github.com/sigstore/fsdigest/pkg/hashing/digests"
	hashengines "github.com/sigstore/fsdigest/pkg/hashing/engines"
)

// Ensure GenericHashEngine implements StreamingHashEngine at compile time.
var _ hashengines.StreamingHashEngine = (*GenericHashEngine)(nil)

// HashFactoryFunc is a function that creates a new hash.Hash instance.
type HashFactoryFunc func() (hash.Hash, error)

// GenericHashEngine wraps any hash.Hash as a single-use streaming engine.
//
// The engine is not safe for concurrent use. Compute finalizes it; every
// later call fails with an ErrTypeInvalidState error.
type GenericHashEngine struct {
	name      string
	size      int
	h         hash.Hash
	finalized bool
}

// NewGenericHashEngine creates a new engine.
//
// Parameters:
//   - name: The canonical algorithm name (e.g., "sha256", "md5")
//   - size: The size of the digest in bytes
//   - factory: Creates the underlying hash.Hash
//   - initialData: Optional data hashed immediately
func NewGenericHashEngine(name string, size int, factory HashFactoryFunc, initialData []byte) (*GenericHashEngine, error) {
	h, err := factory()
	if err != nil {
		return nil, err
	}

	engine := &GenericHashEngine{
		name: name,
		size: size,
		h:    h,
	}

	if len(initialData) > 0 {
		// hash.Hash.Write never returns an error per the interface contract.
		_, _ = engine.h.Write(initialData)
	}

	return engine, nil
}

func (e *GenericHashEngine) checkOpen() error {
	if e.finalized {
		return digests.NewError(digests.ErrTypeInvalidState,
			fmt.Sprintf("%s engine already finalized", e.name), nil)
	}
	return nil
}

// Write implements io.Writer so an engine can be the target of io.Copy.
func (e *GenericHashEngine) Write(p []byte) (int, error) {
	if err := e.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Update appends data to the hash state.
func (e *GenericHashEngine) Update(data []byte) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
	return nil
}

// UpdateRange appends data[offset:offset+length].
func (e *GenericHashEngine) UpdateRange(data []byte, offset, length int) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	if offset < 0 || length < 0 || offset > len(data) || length > len(data)-offset {
		return digests.NewError(digests.ErrTypeInvalidRange,
			fmt.Sprintf("offset %d length %d outside buffer of %d bytes", offset, length, len(data)), nil)
	}
	return e.Update(data[offset : offset+length])
}

// UpdateByte appends a single byte.
func (e *GenericHashEngine) UpdateByte(b byte) error {
	return e.Update([]byte{b})
}

// UpdateBuffer appends the unread bytes of buf. buf is left untouched.
// A nil buf, including a typed nil pointer such as (*bytes.Buffer)(nil),
// appends nothing.
func (e *GenericHashEngine) UpdateBuffer(buf hashengines.Buffer) error {
	if isNilBuffer(buf) {
		return e.checkOpen()
	}
	return e.Update(buf.Bytes())
}

func isNilBuffer(buf hashengines.Buffer) bool {
	if buf == nil {
		return true
	}
	v := reflect.ValueOf(buf)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// UpdateString appends the UTF-8 bytes of s.
func (e *GenericHashEngine) UpdateString(s string) error {
	return e.Update([]byte(s))
}

// UpdateText appends s encoded with enc; nil means UTF-8.
func (e *GenericHashEngine) UpdateText(s string, enc encoding.Encoding) error {
	if enc == nil {
		return e.UpdateString(s)
	}
	if err := e.checkOpen(); err != nil {
		return err
	}
	encoded, err := enc.NewEncoder().String(s)
	if err != nil {
		return fmt.Errorf("encode text for %s: %w", e.name, err)
	}
	return e.UpdateString(encoded)
}

// Finalized reports whether Compute has been called.
func (e *GenericHashEngine) Finalized() bool {
	return e.finalized
}

// Compute finalizes the engine and returns the digest.
func (e *GenericHashEngine) Compute() (digests.Digest, error) {
	if err := e.checkOpen(); err != nil {
		return digests.Digest{}, err
	}
	e.finalized = true
	sum := e.h.Sum(nil)
	e.h = nil
	return digests.NewDigest(e.name, sum), nil
}

// DigestName returns the canonical name of the hash algorithm.
func (e *GenericHashEngine) DigestName() string {
	return e.name
}

// DigestSize returns the size, in bytes, of digests produced by this engine.
func (e *GenericHashEngine) DigestSize() int {
	return e.size
}
