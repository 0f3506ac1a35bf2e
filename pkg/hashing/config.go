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


package hashing

import (
	"context"
	"fmt"
	"io"

	"github.com/sigstore/fsdigest/pkg/hashing/cache"
	"github.com/sigstore/fsdigest/pkg/hashing/digests"
	hashengines "github.com/sigstore/fsdigest/pkg/hashing/engines"
	hashio "github.com/sigstore/fsdigest/pkg/hashing/engines/io"
	"github.com/sigstore/fsdigest/pkg/hashing/engines/memory"
	"github.com/sigstore/fsdigest/pkg/logging"
	"github.com/sigstore/fsdigest/pkg/tracing"
)

// Config holds the settings used to hash buffers, files and streams.
//
// A Config is built once and may then be shared; its methods do not modify
// it. Zero-value Configs are not valid, use NewConfig.
type Config struct {
	// Hash algorithm (e.g., "sha256", "md5")
	algorithm hashengines.Algorithm

	// Chunk size for file and stream reads (0 = read files all at once)
	chunkSize int

	// Whether files are read through a memory mapping
	memoryMapped bool

	// MD5 backend; nil follows memory.UseFastMD5 at engine creation
	md5Impl *memory.MD5Implementation

	logger logging.Logger

	// Optional digest cache consulted by HashFile
	cache *cache.Cache
}

// NewConfig creates a configuration with defaults: sha256, 8 KiB chunks,
// sequential file reads, no cache and a silent logger.
func NewConfig() *Config {
	return &Config{
		algorithm: hashengines.SHA256,
		chunkSize: hashio.DefaultChunkSize,
		logger:    logging.Discard(),
	}
}

// WithAlgorithm selects the digest algorithm.
func (c *Config) WithAlgorithm(algorithm hashengines.Algorithm) *Config {
	c.algorithm = algorithm
	return c
}

// WithChunkSize sets the read buffer size. For files, 0 reads the whole
// file at once; for streams, 0 selects hashio.DefaultChunkSize.
func (c *Config) WithChunkSize(size int) *Config {
	c.chunkSize = size
	return c
}

// WithMemoryMappedIO selects memory-mapped file reads.
func (c *Config) WithMemoryMappedIO(enabled bool) *Config {
	c.memoryMapped = enabled
	return c
}

// WithMD5Implementation pins the MD5 backend for engines created from this
// Config, ignoring the process-wide toggle.
func (c *Config) WithMD5Implementation(impl memory.MD5Implementation) *Config {
	c.md5Impl = &impl
	return c
}

// WithLogger sets the logger. nil restores the silent logger.
func (c *Config) WithLogger(logger logging.Logger) *Config {
	if logger == nil {
		logger = logging.Discard()
	}
	c.logger = logger
	return c
}

// WithCache makes HashFile consult and fill dc.
func (c *Config) WithCache(dc *cache.Cache) *Config {
	c.cache = dc
	return c
}

// Algorithm returns the configured algorithm.
func (c *Config) Algorithm() hashengines.Algorithm {
	return c.algorithm
}

// NewEngine creates a fresh streaming engine for the configured algorithm.
func (c *Config) NewEngine() (hashengines.StreamingHashEngine, error) {
	if c.algorithm == hashengines.MD5 && c.md5Impl != nil {
		engine, err := memory.NewMD5EngineWith(*c.md5Impl, nil)
		if err != nil {
			return nil, err
		}
		return engine, nil
	}
	return hashengines.Create(c.algorithm)
}

// HashBytes returns the digest of data.
func (c *Config) HashBytes(data []byte) (digests.Digest, error) {
	engine, err := c.NewEngine()
	if err != nil {
		return digests.Digest{}, err
	}
	if err := engine.Update(data); err != nil {
		return digests.Digest{}, err
	}
	return engine.Compute()
}

// HashBuffer returns the digest of buf's unread bytes without consuming
// them.
func (c *Config) HashBuffer(buf hashengines.Buffer) (digests.Digest, error) {
	engine, err := c.NewEngine()
	if err != nil {
		return digests.Digest{}, err
	}
	if err := engine.UpdateBuffer(buf); err != nil {
		return digests.Digest{}, err
	}
	return engine.Compute()
}

// HashFile returns the digest of the file at path. ctx only carries the
// tracing span; the read itself is not cancellable.
func (c *Config) HashFile(ctx context.Context, path string) (digests.Digest, error) {
	var result digests.Digest
	attrs := map[string]interface{}{
		"path":       path,
		"algorithm":  c.algorithm.String(),
		"mmap":       c.memoryMapped,
		"chunk_size": c.chunkSize,
	}
	err := tracing.Run(ctx, "hashing.file", attrs, func(context.Context) error {
		var key cache.Key
		if c.cache != nil {
			k, err := cache.KeyFor(path, c.algorithm)
			if err != nil {
				return err
			}
			if d, ok := c.cache.Get(k); ok {
				c.logger.Debug("cache hit for %s", path)
				result = d
				return nil
			}
			key = k
		}

		hasher, err := c.newFileHasher(path)
		if err != nil {
			return err
		}
		d, err := hasher.Compute()
		if err != nil {
			return err
		}

		if c.cache != nil {
			c.cache.Add(key, d)
		}
		result = d
		return nil
	})
	if err != nil {
		return digests.Digest{}, err
	}
	return result, nil
}

func (c *Config) newFileHasher(path string) (hashio.FileHasher, error) {
	if c.memoryMapped {
		return hashio.NewMappedFileHasher(path, c.NewEngine, c.chunkSize, c.logger)
	}
	return hashio.NewSimpleFileHasher(path, c.NewEngine, c.chunkSize, c.logger)
}

// HashReader consumes r to EOF and returns the digest of what it yielded.
// r is not closed.
func (c *Config) HashReader(ctx context.Context, r io.Reader) (digests.Digest, error) {
	var result digests.Digest
	attrs := map[string]interface{}{
		"algorithm":  c.algorithm.String(),
		"chunk_size": c.chunkSize,
	}
	err := tracing.Run(ctx, "hashing.reader", attrs, func(context.Context) error {
		hasher, err := hashio.NewReaderHasher(r, c.NewEngine, c.chunkSize, c.logger)
		if err != nil {
			return fmt.Errorf("create reader hasher: %w", err)
		}
		result, err = hasher.Compute()
		return err
	})
	if err != nil {
		return digests.Digest{}, err
	}
	return result, nil
}
