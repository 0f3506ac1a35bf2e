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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hashengines "github.com/sigstore/fsdigest/pkg/hashing/engines"
)

func TestEngines_KnownAnswers(t *testing.T) {
	tests := []struct {
		algorithm hashengines.Algorithm
		input     string
		want      string
	}{
		{hashengines.MD5, "", "d41d8cd98f00b204e9800998ecf8427e"},
		{hashengines.MD5, "abc", "900150983cd24fb0d6963f7d28e17f72"},
		{hashengines.MD5, "abcd", "e2fc714c4727ee9395f324cd2e7f331f"},
		{hashengines.MD5, "The quick brown fox jumps over the lazy dog", "9e107d9d372bb6826bd81d3542a419d6"},
		{hashengines.SHA1, "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{hashengines.SHA1, "abcd", "81fe8bfe87576c3ecb22426f8e57847382917acf"},
		{hashengines.SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{hashengines.SHA256, "abcd", "88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589"},
		{hashengines.SHA384, "abc", "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
		{hashengines.SHA512, "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{hashengines.SHA3256, "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{hashengines.BLAKE2b, "abcd", "26bc14024d5d6818ad7c4dee519353c290e38b6535f16f62b6ce5c6ff346c354542496f89b84eacffa1da51f0ac5e643f965637cc24e0b3f819bdae05f3932b0"},
		{hashengines.CRC32, "123456789", "cbf43926"},
		{hashengines.ADLER32, "Wikipedia", "11e60398"},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm)+"/"+tt.input, func(t *testing.T) {
			e, err := hashengines.Create(tt.algorithm)
			require.NoError(t, err)
			require.NoError(t, e.UpdateString(tt.input))

			d, err := e.Compute()
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Hex())
			assert.Equal(t, string(tt.algorithm), d.Algorithm())
			assert.Equal(t, e.DigestSize(), d.Size())
		})
	}
}

func TestEngines_DigestSizes(t *testing.T) {
	want := map[hashengines.Algorithm]int{
		hashengines.CRC32:   4,
		hashengines.ADLER32: 4,
		hashengines.MD5:     16,
		hashengines.SHA1:    20,
		hashengines.SHA256:  32,
		hashengines.SHA384:  48,
		hashengines.SHA512:  64,
		hashengines.SHA3256: 32,
		hashengines.SHA3512: 64,
		hashengines.BLAKE2b: 64,
		hashengines.BLAKE3:  32,
	}

	for algo, size := range want {
		e, err := hashengines.Create(algo)
		require.NoError(t, err, algo)

		d, err := e.Compute()
		require.NoError(t, err, algo)
		assert.Equal(t, size, d.Size(), algo)
		assert.Equal(t, size, e.DigestSize(), algo)
	}
}

func TestEngines_InitialData(t *testing.T) {
	constructors := map[string]func([]byte) (*GenericHashEngine, error){
		"md5":      NewMD5Engine,
		"sha1":     NewSHA1Engine,
		"sha256":   NewSHA256Engine,
		"sha384":   NewSHA384Engine,
		"sha512":   NewSHA512Engine,
		"sha3-256": NewSHA3256Engine,
		"sha3-512": NewSHA3512Engine,
		"blake2b":  NewBLAKE2Engine,
		"blake3":   NewBLAKE3Engine,
		"crc32":    NewCRC32Engine,
		"adler32":  NewAdler32Engine,
	}

	for name, newEngine := range constructors {
		t.Run(name, func(t *testing.T) {
			seeded, err := newEngine([]byte("MonTest"))
			require.NoError(t, err)
			want, err := seeded.Compute()
			require.NoError(t, err)

			fed, err := newEngine(nil)
			require.NoError(t, err)
			require.NoError(t, fed.Update([]byte("MonTest")))
			got, err := fed.Compute()
			require.NoError(t, err)

			assert.True(t, want.Equal(got))
			assert.Equal(t, name, got.Algorithm())
		})
	}
}
