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

// Package io hashes files and streams by feeding their content through a
// fresh streaming engine on every Compute.
package io

import (
	"fmt"

	"github.com/docker/go-units"

	"github.com/sigstore/fsdigest/pkg/hashing/digests"
	hashengines "github.com/sigstore/fsdigest/pkg/hashing/engines"
	"github.com/sigstore/fsdigest/pkg/logging"
)

// DefaultChunkSize is the read buffer size used when none is configured.
const DefaultChunkSize = 8192

// FileHasher is a HashEngine that hashes a file on disk.
//
// Unlike streaming engines, Compute may be called repeatedly: each call
// reads the file again into a new content engine.
type FileHasher interface {
	hashengines.HashEngine

	// Path returns the file that Compute reads.
	Path() string
}

// FileHasherFactory builds a FileHasher for a path.
type FileHasherFactory func(path string) (FileHasher, error)

// fileHasherBase holds what every file hasher needs.
type fileHasherBase struct {
	filePath  string
	newEngine hashengines.HashEngineFactory
	chunkSize int
	name      string
	size      int
	logger    logging.Logger
}

func newFileHasherBase(
	filePath string,
	newEngine hashengines.HashEngineFactory,
	chunkSize int,
	logger logging.Logger,
) (fileHasherBase, error) {
	if chunkSize < 0 {
		return fileHasherBase{}, fmt.Errorf("chunk size must be non-negative, got %d", chunkSize)
	}

	if filePath == "" {
		return fileHasherBase{}, fmt.Errorf("file path must be non-empty")
	}

	if newEngine == nil {
		return fileHasherBase{}, fmt.Errorf("engine factory must not be nil")
	}

	// Probe the factory once so name and size are known up front.
	probe, err := newEngine()
	if err != nil {
		return fileHasherBase{}, err
	}

	return fileHasherBase{
		filePath:  filePath,
		newEngine: newEngine,
		chunkSize: chunkSize,
		name:      probe.DigestName(),
		size:      probe.DigestSize(),
		logger:    logging.EnsureLogger(logger).WithField("path", filePath),
	}, nil
}

// Path returns the file that Compute reads.
func (b *fileHasherBase) Path() string {
	return b.filePath
}

// DigestName returns the content engine's algorithm name.
func (b *fileHasherBase) DigestName() string {
	return b.name
}

// DigestSize returns the content engine's digest size.
func (b *fileHasherBase) DigestSize() int {
	return b.size
}

func (b *fileHasherBase) ioError(message string, err error) error {
	return digests.NewErrorWithPath(digests.ErrTypeIO, b.filePath, message, err)
}

func (b *fileHasherBase) chunkLabel() string {
	if b.chunkSize == 0 {
		return "one read"
	}
	return units.BytesSize(float64(b.chunkSize)) + " chunks"
}
