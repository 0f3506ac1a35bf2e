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

package digests

import (
	// go-digest only validates algorithms whose crypto.Hash is linked in.
	_ "crypto/sha256"
	_ "crypto/sha512"
	"fmt"

	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	ocidigest "github.com/opencontainers/go-digest"
)

// multihashCodes maps algorithm names to multicodec hash codes. go-multihash
// has no constant for sha2-384, so that one comes from the multicodec table.
// crc32 and adler32 are checksums and have no code.
var multihashCodes = map[string]uint64{
	"md5":      multihash.MD5,
	"sha1":     multihash.SHA1,
	"sha256":   multihash.SHA2_256,
	"sha384":   uint64(multicodec.Sha2_384),
	"sha512":   multihash.SHA2_512,
	"sha3-256": multihash.SHA3_256,
	"sha3-512": multihash.SHA3_512,
	"blake2b":  multihash.BLAKE2B_MAX,
	"blake3":   multihash.BLAKE3,
}

var ociAlgorithms = map[string]ocidigest.Algorithm{
	"sha256": ocidigest.SHA256,
	"sha384": ocidigest.SHA384,
	"sha512": ocidigest.SHA512,
}

// Multihash returns the self-describing multihash encoding of the digest.
func (d Digest) Multihash() ([]byte, error) {
	code, ok := multihashCodes[d.algorithm]
	if !ok {
		return nil, NewError(ErrTypeUnsupportedAlgorithm,
			fmt.Sprintf("no multihash code for %q", d.algorithm), nil)
	}
	mh, err := multihash.Encode(d.value, code)
	if err != nil {
		return nil, fmt.Errorf("encode multihash: %w", err)
	}
	return mh, nil
}

// Multibase returns the multihash encoding of the digest rendered as
// multibase text with the given base (e.g. multibase.Base32).
func (d Digest) Multibase(base multibase.Encoding) (string, error) {
	mh, err := d.Multihash()
	if err != nil {
		return "", err
	}
	s, err := multibase.Encode(base, mh)
	if err != nil {
		return "", fmt.Errorf("encode multibase: %w", err)
	}
	return s, nil
}

// FromMultihash decodes a multihash produced by Digest.Multihash.
func FromMultihash(mh []byte) (Digest, error) {
	decoded, err := multihash.Decode(mh)
	if err != nil {
		return Digest{}, fmt.Errorf("decode multihash: %w", err)
	}
	for name, code := range multihashCodes {
		if code == decoded.Code {
			return NewDigest(name, decoded.Digest), nil
		}
	}
	return Digest{}, NewError(ErrTypeUnsupportedAlgorithm,
		fmt.Sprintf("multihash code 0x%x has no algorithm", decoded.Code), nil)
}

// FromMultibase decodes text produced by Digest.Multibase.
func FromMultibase(s string) (Digest, error) {
	_, mh, err := multibase.Decode(s)
	if err != nil {
		return Digest{}, fmt.Errorf("decode multibase: %w", err)
	}
	return FromMultihash(mh)
}

// OCI returns the digest in the "algorithm:hex" form used by OCI image
// manifests. Only the SHA-2 algorithms registered there are accepted.
func (d Digest) OCI() (ocidigest.Digest, error) {
	alg, ok := ociAlgorithms[d.algorithm]
	if !ok {
		return "", NewError(ErrTypeUnsupportedAlgorithm,
			fmt.Sprintf("%q is not an OCI digest algorithm", d.algorithm), nil)
	}
	oci := ocidigest.NewDigestFromBytes(alg, d.value)
	if err := oci.Validate(); err != nil {
		return "", fmt.Errorf("validate OCI digest: %w", err)
	}
	return oci, nil
}

// ParseOCI parses an OCI digest string such as "sha256:abcd...".
func ParseOCI(s string) (Digest, error) {
	oci, err := ocidigest.Parse(s)
	if err != nil {
		return Digest{}, fmt.Errorf("parse OCI digest: %w", err)
	}
	return NewDigestFromHex(oci.Algorithm().String(), oci.Encoded())
}
