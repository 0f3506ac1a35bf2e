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

package io

import (
	"fmt"
	"io"

	"github.com/sigstore/fsdigest/pkg/hashing/digests"
	hashengines "github.com/sigstore/fsdigest/pkg/hashing/engines"
	"github.com/sigstore/fsdigest/pkg/logging"
)

var _ hashengines.HashEngine = (*ReaderHasher)(nil)

// ReaderHasher hashes everything an io.Reader yields until EOF.
//
// The reader is consumed by the first Compute; it is not closed.
type ReaderHasher struct {
	r         io.Reader
	engine    hashengines.StreamingHashEngine
	chunkSize int
	logger    logging.Logger
}

// NewReaderHasher constructs a ReaderHasher. chunkSize bounds the read
// buffer; 0 selects DefaultChunkSize.
func NewReaderHasher(
	r io.Reader,
	newEngine hashengines.HashEngineFactory,
	chunkSize int,
	logger logging.Logger,
) (*ReaderHasher, error) {
	if r == nil {
		return nil, fmt.Errorf("reader must not be nil")
	}
	if newEngine == nil {
		return nil, fmt.Errorf("engine factory must not be nil")
	}
	if chunkSize < 0 {
		return nil, fmt.Errorf("chunk size must be non-negative, got %d", chunkSize)
	}
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}

	engine, err := newEngine()
	if err != nil {
		return nil, err
	}

	return &ReaderHasher{
		r:         r,
		engine:    engine,
		chunkSize: chunkSize,
		logger:    logging.EnsureLogger(logger),
	}, nil
}

// Compute drains the reader into the content engine and finalizes it.
// Read failures are reported as ErrTypeIO errors; a second call fails with
// ErrTypeInvalidState.
func (h *ReaderHasher) Compute() (digests.Digest, error) {
	if h.engine.Finalized() {
		return h.engine.Compute()
	}

	// LimitedReader hides any WriterTo so the bounded buffer is always used.
	src := &io.LimitedReader{R: h.r, N: 1<<63 - 1}
	n, err := io.CopyBuffer(h.engine, src, make([]byte, h.chunkSize))
	if err != nil {
		if digests.IsType(err, digests.ErrTypeInvalidState) {
			return digests.Digest{}, err
		}
		return digests.Digest{}, digests.NewError(digests.ErrTypeIO, "read stream", err)
	}
	h.logger.Debug("hashed %d bytes from stream with %s", n, h.engine.DigestName())

	return h.engine.Compute()
}

// DigestName returns the content engine's algorithm name.
func (h *ReaderHasher) DigestName() string {
	return h.engine.DigestName()
}

// DigestSize returns the content engine's digest size.
func (h *ReaderHasher) DigestSize() int {
	return h.engine.DigestSize()
}
