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


package passwd

import (
	"crypto/md5"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigstore/fsdigest/pkg/hashing/digests"
	"github.com/sigstore/fsdigest/pkg/hashing/engines/memory"
)

func TestCrypt_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"phrase", "This is a phrase to test"},
		{"empty", ""},
		{"unicode", "mot de passe é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := Crypt(tt.password)
			assert.Len(t, record, 2*md5.Size)
			assert.True(t, Equal(tt.password, record))
			assert.True(t, Equal(tt.password, strings.ToUpper(record)))
			assert.False(t, Equal(tt.password+"x", record))

			raw := CryptBytes([]byte(tt.password))
			assert.True(t, EqualBytes([]byte(tt.password), raw))

			decoded, err := digests.FromHex(record)
			require.NoError(t, err)
			assert.Equal(t, raw, decoded)
		})
	}
}

func TestCrypt_Deterministic(t *testing.T) {
	assert.Equal(t, Crypt("secret"), Crypt("secret"))
	assert.NotEqual(t, Crypt("secret"), Crypt("Secret"))
}

func TestCrypt_Transform(t *testing.T) {
	block := "pw" + pepper
	want := md5.Sum([]byte(strings.Repeat(block, rounds)))
	assert.Equal(t, want[:], CryptBytes([]byte("pw")))
}

func TestCrypt_MD5Backend(t *testing.T) {
	t.Cleanup(func() { memory.SetUseFastMD5(true) })

	memory.SetUseFastMD5(true)
	fast := Crypt("toggle")
	memory.SetUseFastMD5(false)
	ref := Crypt("toggle")

	assert.Equal(t, fast, ref)
}

func TestEqual_MalformedRecord(t *testing.T) {
	assert.False(t, Equal("pw", "not hex"))
	assert.False(t, Equal("pw", Crypt("pw")[1:]))
	assert.False(t, EqualBytes([]byte("pw"), nil))
}
