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
	"crypto/sha1"
	"crypto/sha512"
	"hash"

	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/sha3"

	hashengines "github.com/sigstore/fsdigest/pkg/hashing/engines"
)

func init() {
	hashengines.MustRegister(hashengines.SHA1, func() (hashengines.StreamingHashEngine, error) {
		return NewSHA1Engine(nil)
	})
	hashengines.MustRegister(hashengines.SHA256, func() (hashengines.StreamingHashEngine, error) {
		return NewSHA256Engine(nil)
	})
	hashengines.MustRegister(hashengines.SHA384, func() (hashengines.StreamingHashEngine, error) {
		return NewSHA384Engine(nil)
	})
	hashengines.MustRegister(hashengines.SHA512, func() (hashengines.StreamingHashEngine, error) {
		return NewSHA512Engine(nil)
	})
	hashengines.MustRegister(hashengines.SHA3256, func() (hashengines.StreamingHashEngine, error) {
		return NewSHA3256Engine(nil)
	})
	hashengines.MustRegister(hashengines.SHA3512, func() (hashengines.StreamingHashEngine, error) {
		return NewSHA3512Engine(nil)
	})
}

func stdFactory(newHash func() hash.Hash) HashFactoryFunc {
	return func() (hash.Hash, error) { return newHash(), nil }
}

// NewSHA1Engine creates a SHA-1 engine.
func NewSHA1Engine(initialData []byte) (*GenericHashEngine, error) {
	return NewGenericHashEngine(hashengines.SHA1.String(), sha1.Size, stdFactory(sha1.New), initialData)
}

// NewSHA256Engine creates a SHA-256 engine. It uses the SIMD/SHA-NI
// accelerated implementation when the CPU supports it.
func NewSHA256Engine(initialData []byte) (*GenericHashEngine, error) {
	return NewGenericHashEngine(hashengines.SHA256.String(), sha256.Size, stdFactory(sha256.New), initialData)
}

// NewSHA384Engine creates a SHA-384 engine.
func NewSHA384Engine(initialData []byte) (*GenericHashEngine, error) {
	return NewGenericHashEngine(hashengines.SHA384.String(), sha512.Size384, stdFactory(sha512.New384), initialData)
}

// NewSHA512Engine creates a SHA-512 engine.
func NewSHA512Engine(initialData []byte) (*GenericHashEngine, error) {
	return NewGenericHashEngine(hashengines.SHA512.String(), sha512.Size, stdFactory(sha512.New), initialData)
}

// NewSHA3256Engine creates a SHA3-256 engine.
func NewSHA3256Engine(initialData []byte) (*GenericHashEngine, error) {
	return NewGenericHashEngine(hashengines.SHA3256.String(), 32, stdFactory(sha3.New256), initialData)
}

// NewSHA3512Engine creates a SHA3-512 engine.
func NewSHA3512Engine(initialData []byte) (*GenericHashEngine, error) {
	return NewGenericHashEngine(hashengines.SHA3512.String(), 64, stdFactory(sha3.New512), initialData)
}
