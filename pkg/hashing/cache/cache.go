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


// Package cache remembers file digests between calls. An entry is keyed by
// the file's absolute path, size, modification time and algorithm, so any
// change to the file that touches its size or mtime misses the cache.
package cache

import (
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sigstore/fsdigest/pkg/hashing/digests"
	hashengines "github.com/sigstore/fsdigest/pkg/hashing/engines"
)

// DefaultSize is used when New is given a size below 1.
const DefaultSize = 256

// Key identifies one version of a file hashed with one algorithm.
type Key struct {
	Path      string
	Size      int64
	ModTime   int64 // UnixNano
	Algorithm hashengines.Algorithm
}

// Cache is an LRU of file digests. It is safe for concurrent use.
type Cache struct {
	data *lru.Cache[Key, digests.Digest]
}

// New creates a cache holding at most size entries.
func New(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	data, err := lru.New[Key, digests.Digest](size)
	if err != nil {
		return nil, fmt.Errorf("creating digest LRU: %w", err)
	}
	return &Cache{data: data}, nil
}

// KeyFor stats path and builds its cache key.
func KeyFor(path string, algorithm hashengines.Algorithm) (Key, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Key{}, digests.NewErrorWithPath(digests.ErrTypeIO, path, "resolve path", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Key{}, digests.NewErrorWithPath(digests.ErrTypeIO, path, "stat file", err)
	}
	return Key{
		Path:      abs,
		Size:      info.Size(),
		ModTime:   info.ModTime().UnixNano(),
		Algorithm: algorithm,
	}, nil
}

// Get returns the digest stored under k.
func (c *Cache) Get(k Key) (digests.Digest, bool) {
	return c.data.Get(k)
}

// Add stores d under k.
func (c *Cache) Add(k Key, d digests.Digest) {
	c.data.Add(k, d)
}

// Lookup returns the cached digest of path if the file is unchanged since
// it was stored. A file that cannot be stat'ed is a miss.
func (c *Cache) Lookup(path string, algorithm hashengines.Algorithm) (digests.Digest, bool) {
	k, err := KeyFor(path, algorithm)
	if err != nil {
		return digests.Digest{}, false
	}
	return c.Get(k)
}

// Store records d as the digest of path's current version.
func (c *Cache) Store(path string, algorithm hashengines.Algorithm, d digests.Digest) error {
	k, err := KeyFor(path, algorithm)
	if err != nil {
		return err
	}
	c.Add(k, d)
	return nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.data.Len()
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.data.Purge()
}
