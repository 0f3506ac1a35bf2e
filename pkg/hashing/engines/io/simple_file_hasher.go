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
	"os"

	"github.com/docker/go-units"

	"github.com/sigstore/fsdigest/pkg/hashing/digests"
	hashengines "github.com/sigstore/fsdigest/pkg/hashing/engines"
	"github.com/sigstore/fsdigest/pkg/logging"
)

var _ FileHasher = (*SimpleFileHasher)(nil)

// SimpleFileHasher hashes an entire file with sequential reads.
// It never loads the whole file into memory unless chunkSize == 0.
type SimpleFileHasher struct {
	fileHasherBase
}

// NewSimpleFileHasher constructs a SimpleFileHasher.
//
//   - filePath: path to the file to hash
//   - newEngine: creates the content engine for each Compute
//   - chunkSize: number of bytes to read per chunk; 0 means "read all at once"
//   - logger: receives debug output; nil selects the default logger
func NewSimpleFileHasher(
	filePath string,
	newEngine hashengines.HashEngineFactory,
	chunkSize int,
	logger logging.Logger,
) (*SimpleFileHasher, error) {
	base, err := newFileHasherBase(filePath, newEngine, chunkSize, logger)
	if err != nil {
		return nil, err
	}
	return &SimpleFileHasher{fileHasherBase: base}, nil
}

// Compute reads the file and returns its digest. Open and read failures
// are reported as ErrTypeIO errors.
func (h *SimpleFileHasher) Compute() (digests.Digest, error) {
	engine, err := h.newEngine()
	if err != nil {
		return digests.Digest{}, fmt.Errorf("create content engine: %w", err)
	}

	f, err := os.Open(h.filePath)
	if err != nil {
		return digests.Digest{}, h.ioError("open file", err)
	}
	//nolint:errcheck
	defer f.Close()

	if info, statErr := f.Stat(); statErr == nil {
		h.logger.Debug("hashing %s with %s, sequential read in %s",
			units.BytesSize(float64(info.Size())), h.name, h.chunkLabel())
	}

	if h.chunkSize == 0 {
		data, err := io.ReadAll(f)
		if err != nil {
			return digests.Digest{}, h.ioError("read file", err)
		}
		if err := engine.Update(data); err != nil {
			return digests.Digest{}, err
		}
	} else {
		buf := make([]byte, h.chunkSize)
		for {
			n, err := f.Read(buf)
			if n > 0 {
				if uerr := engine.Update(buf[:n]); uerr != nil {
					return digests.Digest{}, uerr
				}
			}
			if err != nil {
				if err == io.EOF {
					break
				}
				return digests.Digest{}, h.ioError("read file", err)
			}
		}
	}

	return engine.Compute()
}
