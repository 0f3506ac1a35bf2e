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

package hashengines

import "strings"

// Algorithm names a digest algorithm. The value doubles as the registry key
// and as the algorithm name carried by produced digests.
type Algorithm string

const (
	CRC32   Algorithm = "crc32"
	ADLER32 Algorithm = "adler32"
	// MD2 is declared for completeness but has no implementation; Create
	// reports it as unsupported.
	MD2     Algorithm = "md2"
	MD5     Algorithm = "md5"
	SHA1    Algorithm = "sha1"
	SHA256  Algorithm = "sha256"
	SHA384  Algorithm = "sha384"
	SHA512  Algorithm = "sha512"
	SHA3256 Algorithm = "sha3-256"
	SHA3512 Algorithm = "sha3-512"
	BLAKE2b Algorithm = "blake2b"
	BLAKE3  Algorithm = "blake3"
)

var declared = []Algorithm{
	CRC32, ADLER32, MD2, MD5, SHA1, SHA256, SHA384, SHA512,
	SHA3256, SHA3512, BLAKE2b, BLAKE3,
}

// Algorithms returns every declared algorithm, supported or not, in a fixed order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(declared))
	copy(out, declared)
	return out
}

// ParseAlgorithm maps a user-supplied name to an Algorithm. Matching is
// case-insensitive and tolerates the dashed SHA spellings ("SHA-256").
func ParseAlgorithm(name string) (Algorithm, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, a := range declared {
		if string(a) == n {
			return a, true
		}
	}
	if strings.HasPrefix(n, "sha-") {
		return ParseAlgorithm("sha" + strings.TrimPrefix(n, "sha-"))
	}
	return "", false
}

// String returns the algorithm name.
func (a Algorithm) String() string {
	return string(a)
}
