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
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
)

// Material is anything that can hold digest bytes: raw bytes, or a string
// holding their hex encoding.
type Material interface {
	string | []byte
}

// ToHex returns the lowercase hex encoding of b.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// FromHex decodes a hex string. Upper and lower case digits are accepted.
//
// Returns an ErrTypeMalformedHex error on odd length or a non-hex character.
func FromHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		var invalid hex.InvalidByteError
		switch {
		case errors.Is(err, hex.ErrLength):
			return nil, NewError(ErrTypeMalformedHex,
				fmt.Sprintf("odd length %d", len(s)), err)
		case errors.As(err, &invalid):
			return nil, NewError(ErrTypeMalformedHex,
				fmt.Sprintf("invalid character %q", byte(invalid)), err)
		default:
			return nil, NewError(ErrTypeMalformedHex, "cannot decode", err)
		}
	}
	return b, nil
}

// Equal compares two digests given either as raw bytes or as hex text, in any
// combination. Hex inputs are decoded first; a malformed hex input never
// compares equal. The final byte comparison runs in constant time.
func Equal[A, B Material](a A, b B) bool {
	ab, ok := materialBytes(a)
	if !ok {
		return false
	}
	bb, ok := materialBytes(b)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare(ab, bb) == 1
}

func materialBytes[M Material](m M) ([]byte, bool) {
	switch v := any(m).(type) {
	case []byte:
		return v, true
	case string:
		b, err := FromHex(v)
		return b, err == nil
	}
	return nil, false
}
