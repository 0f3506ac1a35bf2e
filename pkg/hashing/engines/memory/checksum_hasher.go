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
	"hash/adler32"
	"hash/crc32"

	hashengines "github.com/sigstore/fsdigest/pkg/hashing/engines"
)

func init() {
	hashengines.MustRegister(hashengines.CRC32, func() (hashengines.StreamingHashEngine, error) {
		return NewCRC32Engine(nil)
	})
	hashengines.MustRegister(hashengines.ADLER32, func() (hashengines.StreamingHashEngine, error) {
		return NewAdler32Engine(nil)
	})
}

// NewCRC32Engine creates a CRC-32 (IEEE polynomial) engine. The 4-byte
// digest is the checksum in big-endian order.
func NewCRC32Engine(initialData []byte) (*GenericHashEngine, error) {
	return NewGenericHashEngine(hashengines.CRC32.String(), crc32.Size,
		func() (hash.Hash, error) { return crc32.NewIEEE(), nil }, initialData)
}

// NewAdler32Engine creates an Adler-32 engine. The 4-byte digest is the
// checksum in big-endian order.
func NewAdler32Engine(initialData []byte) (*GenericHashEngine, error) {
	return NewGenericHashEngine(hashengines.ADLER32.String(), adler32.Size,
		func() (hash.Hash, error) { return adler32.New(), nil }, initialData)
}
