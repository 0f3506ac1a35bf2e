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

package engines_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigstore/fsdigest/pkg/hashing/digests"
	hashengines "github.com/sigstore/fsdigest/pkg/hashing/engines"
	"github.com/sigstore/fsdigest/pkg/hashing/engines/memory"
)

func testFactory() (hashengines.StreamingHashEngine, error) {
	return memory.NewSHA256Engine(nil)
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name      string
		algorithm hashengines.Algorithm
		wantErr   bool
	}{
		{"sha256", hashengines.SHA256, false},
		{"md5", hashengines.MD5, false},
		{"blake3", hashengines.BLAKE3, false},
		{"md2 declared but unsupported", hashengines.MD2, true},
		{"unknown", "whirlpool", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := hashengines.Create(tt.algorithm)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, digests.IsType(err, digests.ErrTypeUnsupportedAlgorithm))
				return
			}
			require.NoError(t, err)
			require.NotNil(t, engine)
			assert.Equal(t, string(tt.algorithm), engine.DigestName())
		})
	}
}

func TestCreate_FreshEngines(t *testing.T) {
	a, err := hashengines.Create(hashengines.SHA1)
	require.NoError(t, err)
	b, err := hashengines.Create(hashengines.SHA1)
	require.NoError(t, err)

	require.NoError(t, a.UpdateString("junk"))
	_, err = a.Compute()
	require.NoError(t, err)

	assert.False(t, b.Finalized())
	assert.NoError(t, b.UpdateString("abcd"))
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name      string
		algorithm hashengines.Algorithm
		factory   hashengines.HashEngineFactory
		wantErr   bool
	}{
		{"valid registration", "test-algo", testFactory, false},
		{"empty algorithm", "", testFactory, true},
		{"nil factory", "test-nil", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hashengines.Register(tt.algorithm, tt.factory)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, hashengines.Unregister(tt.algorithm))
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	require.NoError(t, hashengines.Register("duplicate-test", testFactory))
	defer func() { _ = hashengines.Unregister("duplicate-test") }()

	assert.Error(t, hashengines.Register("duplicate-test", testFactory))
}

func TestMustRegister_Panic(t *testing.T) {
	assert.Panics(t, func() {
		hashengines.MustRegister(hashengines.SHA256, testFactory)
	})
}

func TestCreate_FactoryError(t *testing.T) {
	require.NoError(t, hashengines.Register("failing", func() (hashengines.StreamingHashEngine, error) {
		return nil, assert.AnError
	}))
	defer func() { _ = hashengines.Unregister("failing") }()

	_, err := hashengines.Create("failing")
	require.Error(t, err)
	assert.True(t, digests.IsType(err, digests.ErrTypeUnsupportedAlgorithm))
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSupportedAlgorithms(t *testing.T) {
	algorithms := hashengines.SupportedAlgorithms()

	for _, want := range hashengines.Algorithms() {
		if want == hashengines.MD2 {
			assert.NotContains(t, algorithms, want)
			continue
		}
		assert.Contains(t, algorithms, want)
	}

	assert.True(t, sort.SliceIsSorted(algorithms, func(i, j int) bool {
		return algorithms[i] < algorithms[j]
	}), "SupportedAlgorithms() is not sorted")
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		algorithm hashengines.Algorithm
		want      bool
	}{
		{hashengines.SHA256, true},
		{hashengines.CRC32, true},
		{hashengines.MD2, false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			assert.Equal(t, tt.want, hashengines.IsSupported(tt.algorithm))
		})
	}
}

func TestUnregister(t *testing.T) {
	require.NoError(t, hashengines.Register("unregister-test", testFactory))
	assert.True(t, hashengines.IsSupported("unregister-test"))

	require.NoError(t, hashengines.Unregister("unregister-test"))
	assert.False(t, hashengines.IsSupported("unregister-test"))

	assert.Error(t, hashengines.Unregister("unregister-test"))
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in     string
		want   hashengines.Algorithm
		wantOK bool
	}{
		{"md5", hashengines.MD5, true},
		{"MD5", hashengines.MD5, true},
		{" sha256 ", hashengines.SHA256, true},
		{"SHA-512", hashengines.SHA512, true},
		{"sha-1", hashengines.SHA1, true},
		{"SHA3-256", hashengines.SHA3256, true},
		{"ADLER32", hashengines.ADLER32, true},
		{"whirlpool", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := hashengines.ParseAlgorithm(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = hashengines.SupportedAlgorithms()
			_ = hashengines.IsSupported(hashengines.SHA256)
			_, _ = hashengines.Create(hashengines.SHA256)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = hashengines.Register("concurrent-test", testFactory)
			_ = hashengines.Unregister("concurrent-test")
		}
	}()

	wg.Wait()
}
