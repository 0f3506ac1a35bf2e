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


// Package passwd produces and checks password records.
//
// A record is the MD5 digest of the password followed by a fixed pepper,
// repeated 16 times. Records are unsalted and deterministic: equal
// passwords always give equal records. This is a compatibility scheme and
// not a key derivation function; do not use it to protect new secrets.
package passwd

import (
	"bytes"

	"github.com/sigstore/fsdigest/pkg/hashing/digests"
	"github.com/sigstore/fsdigest/pkg/hashing/engines/memory"
)

const (
	pepper = "fsdigest:passwd"
	rounds = 16
)

// CryptBytes returns the raw record for password.
func CryptBytes(password []byte) []byte {
	engine, err := memory.NewMD5Engine(nil)
	if err != nil {
		// Only an unknown MD5 implementation can fail, and the toggle
		// selects between the two known ones.
		panic(err)
	}
	block := append(append(make([]byte, 0, len(password)+len(pepper)), password...), pepper...)
	if err := engine.Update(bytes.Repeat(block, rounds)); err != nil {
		panic(err)
	}
	d, err := engine.Compute()
	if err != nil {
		panic(err)
	}
	return d.Value()
}

// Crypt returns the hex record for password.
func Crypt(password string) string {
	return digests.ToHex(CryptBytes([]byte(password)))
}

// Equal reports whether record, in hex, was produced by Crypt(password).
// A malformed record never matches.
func Equal(password, record string) bool {
	return digests.Equal(CryptBytes([]byte(password)), record)
}

// EqualBytes reports whether record was produced by CryptBytes(password).
func EqualBytes(password, record []byte) bool {
	return digests.Equal(CryptBytes(password), record)
}
