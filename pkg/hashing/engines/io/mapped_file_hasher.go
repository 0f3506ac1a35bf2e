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

	"github.com/docker/go-units"
	"golang.org/x/exp/mmap"

	"github.com/sigstore/fsdigest/pkg/hashing/digests"
	hashengines "github.com/sigstore/fsdigest/pkg/hashing/engines"
	"github.com/sigstore/fsdigest/pkg/logging"
)

var _ FileHasher = (*MappedFileHasher)(nil)

// MappedFileHasher hashes a file through a read-only memory mapping. The
// mapping is released before Compute returns.
type MappedFileHasher struct {
	fileHasherBase
}

// NewMappedFileHasher constructs a MappedFileHasher. Parameters are those
// of NewSimpleFileHasher; chunkSize bounds each copy out of the mapping.
func NewMappedFileHasher(
	filePath string,
	newEngine hashengines.HashEngineFactory,
	chunkSize int,
	logger logging.Logger,
) (*MappedFileHasher, error) {
	base, err := newFileHasherBase(filePath, newEngine, chunkSize, logger)
	if err != nil {
		return nil, err
	}
	return &MappedFileHasher{fileHasherBase: base}, nil
}

// Compute maps the file and returns its digest.
func (h *MappedFileHasher) Compute() (digests.Digest, error) {
	engine, err := h.newEngine()
	if err != nil {
		return digests.Digest{}, fmt.Errorf("create content engine: %w", err)
	}

	r, err := mmap.Open(h.filePath)
	if err != nil {
		return digests.Digest{}, h.ioError("map file", err)
	}
	//nolint:errcheck
	defer r.Close()

	length := r.Len()
	h.logger.Debug("hashing %s with %s, memory mapped in %s",
		units.BytesSize(float64(length)), h.name, h.chunkLabel())

	bufSize := h.chunkSize
	if bufSize == 0 || bufSize > length {
		bufSize = length
	}
	buf := make([]byte, bufSize)

	for off := 0; off < length; {
		n, err := r.ReadAt(buf, int64(off))
		if n > 0 {
			if uerr := engine.Update(buf[:n]); uerr != nil {
				return digests.Digest{}, uerr
			}
			off += n
		}
		if err != nil {
			if err == io.EOF && off >= length {
				break
			}
			return digests.Digest{}, h.ioError("read mapping", err)
		}
	}

	return engine.Compute()
}
