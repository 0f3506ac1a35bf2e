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
	"crypto/md5"
	"fmt"
	"hash"
	"sync/atomic"

	hashengines "github.com/sigstore/fsdigest/pkg/hashing/engines"
)

func init() {
	hashengines.MustRegister(hashengines.MD5, func() (hashengines.StreamingHashEngine, error) {
		return NewMD5Engine(nil)
	})
}

// MD5Implementation selects the code that computes MD5. Both produce
// identical digests.
type MD5Implementation int

const (
	// MD5Optimized uses crypto/md5, which has assembly block functions on
	// the common architectures.
	MD5Optimized MD5Implementation = iota
	// MD5Reference uses the portable Go block function in this package.
	MD5Reference
)

// String returns the implementation name.
func (i MD5Implementation) String() string {
	switch i {
	case MD5Optimized:
		return "optimized"
	case MD5Reference:
		return "reference"
	default:
		return "unknown"
	}
}

// Zero value selects MD5Optimized.
var useReferenceMD5 atomic.Bool

// SetUseFastMD5 sets the process-wide MD5 implementation used by engines
// created afterwards through NewMD5Engine or the registry. true selects
// MD5Optimized (the default), false selects MD5Reference.
//
// Prefer NewMD5EngineWith, or hashing.Config.WithMD5Implementation, when the
// choice belongs to one caller.
func SetUseFastMD5(fast bool) {
	useReferenceMD5.Store(!fast)
}

// UseFastMD5 reports whether MD5Optimized is the process-wide default.
func UseFastMD5() bool {
	return !useReferenceMD5.Load()
}

// DefaultMD5Implementation returns the process-wide MD5 implementation.
func DefaultMD5Implementation() MD5Implementation {
	if useReferenceMD5.Load() {
		return MD5Reference
	}
	return MD5Optimized
}

// NewMD5Engine creates an MD5 engine using the process-wide implementation.
// If initialData is non-empty, it is hashed immediately.
func NewMD5Engine(initialData []byte) (*GenericHashEngine, error) {
	return NewMD5EngineWith(DefaultMD5Implementation(), initialData)
}

// NewMD5EngineWith creates an MD5 engine backed by impl.
func NewMD5EngineWith(impl MD5Implementation, initialData []byte) (*GenericHashEngine, error) {
	var factory HashFactoryFunc
	switch impl {
	case MD5Optimized:
		factory = func() (hash.Hash, error) { return md5.New(), nil }
	case MD5Reference:
		factory = func() (hash.Hash, error) { return newReferenceMD5(), nil }
	default:
		return nil, fmt.Errorf("unknown MD5 implementation %d", impl)
	}
	return NewGenericHashEngine(hashengines.MD5.String(), md5.Size, factory, initialData)
}
