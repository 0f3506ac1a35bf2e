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


// Package hashing hashes buffers, files and streams with the engines
// registered in pkg/hashing/engines.
//
// The package-level helpers cover the common one-shot cases. Config offers
// the same operations with a chosen chunk size, MD5 backend, logger and
// digest cache.
package hashing

import (
	"context"
	"io"

	"github.com/sigstore/fsdigest/pkg/hashing/digests"
	hashengines "github.com/sigstore/fsdigest/pkg/hashing/engines"
	// Registers the built-in engines.
	_ "github.com/sigstore/fsdigest/pkg/hashing/engines/memory"
)

// HashBytes returns the digest of data.
func HashBytes(data []byte, algorithm hashengines.Algorithm) (digests.Digest, error) {
	return NewConfig().WithAlgorithm(algorithm).HashBytes(data)
}

// HashBuffer returns the digest of buf's unread bytes. buf is not consumed.
func HashBuffer(buf hashengines.Buffer, algorithm hashengines.Algorithm) (digests.Digest, error) {
	return NewConfig().WithAlgorithm(algorithm).HashBuffer(buf)
}

// HashMD5 returns the MD5 digest of data using the backend currently
// selected by memory.SetUseFastMD5.
func HashMD5(data []byte) (digests.Digest, error) {
	return HashBytes(data, hashengines.MD5)
}

// HashFile returns the digest of the file at path, read either through a
// memory mapping or with sequential reads. Both give the same digest.
func HashFile(path string, useMemoryMappedIO bool, algorithm hashengines.Algorithm) (digests.Digest, error) {
	return NewConfig().
		WithAlgorithm(algorithm).
		WithMemoryMappedIO(useMemoryMappedIO).
		HashFile(context.Background(), path)
}

// HashReader consumes r to EOF in bounded chunks and returns the digest.
func HashReader(r io.Reader, algorithm hashengines.Algorithm) (digests.Digest, error) {
	return NewConfig().WithAlgorithm(algorithm).HashReader(context.Background(), r)
}

// ToHex returns the lowercase hex encoding of b.
func ToHex(b []byte) string {
	return digests.ToHex(b)
}

// FromHex decodes s, which may use either case.
func FromHex(s string) ([]byte, error) {
	return digests.FromHex(s)
}

// Equal compares two digests given as raw bytes or hex text.
func Equal[A, B digests.Material](a A, b B) bool {
	return digests.Equal(a, b)
}
