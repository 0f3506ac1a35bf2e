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

package hashengines

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sigstore/fsdigest/pkg/hashing/digests"
)

// HashEngineFactory creates a fresh engine in the Created state.
type HashEngineFactory func() (StreamingHashEngine, error)

var (
	registry = make(map[Algorithm]HashEngineFactory)
	mu       sync.RWMutex
)

// Register registers a factory for the given algorithm.
//
// Implementations register themselves from their package init, so the
// memory package must be imported (directly or through pkg/hashing) for
// Create to find the built-in algorithms.
func Register(algorithm Algorithm, factory HashEngineFactory) error {
	mu.Lock()
	defer mu.Unlock()

	if algorithm == "" {
		return fmt.Errorf("algorithm name cannot be empty")
	}

	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	if _, exists := registry[algorithm]; exists {
		return fmt.Errorf("hash algorithm %q already registered", algorithm)
	}

	registry[algorithm] = factory
	return nil
}

// MustRegister registers a factory or panics on error.
func MustRegister(algorithm Algorithm, factory HashEngineFactory) {
	if err := Register(algorithm, factory); err != nil {
		panic(fmt.Sprintf("failed to register hash algorithm %q: %v", algorithm, err))
	}
}

// Create returns a new engine for the given algorithm.
//
// Returns an ErrTypeUnsupportedAlgorithm error if nothing is registered for
// the algorithm or if the factory fails.
func Create(algorithm Algorithm) (StreamingHashEngine, error) {
	mu.RLock()
	factory, exists := registry[algorithm]
	mu.RUnlock()

	if !exists {
		return nil, digests.NewError(digests.ErrTypeUnsupportedAlgorithm,
			fmt.Sprintf("unsupported hash algorithm %q (supported: %v)",
				algorithm, SupportedAlgorithms()), nil)
	}

	engine, err := factory()
	if err != nil {
		return nil, digests.NewError(digests.ErrTypeUnsupportedAlgorithm,
			fmt.Sprintf("failed to create hash engine for %q", algorithm), err)
	}

	return engine, nil
}

// SupportedAlgorithms returns the registered algorithms sorted by name.
func SupportedAlgorithms() []Algorithm {
	mu.RLock()
	defer mu.RUnlock()

	algorithms := make([]Algorithm, 0, len(registry))
	for algo := range registry {
		algorithms = append(algorithms, algo)
	}
	sort.Slice(algorithms, func(i, j int) bool { return algorithms[i] < algorithms[j] })
	return algorithms
}

// IsSupported checks if an algorithm is registered.
func IsSupported(algorithm Algorithm) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, exists := registry[algorithm]
	return exists
}

// Unregister removes an algorithm from the registry. Used by tests.
func Unregister(algorithm Algorithm) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[algorithm]; !exists {
		return fmt.Errorf("hash algorithm %q not registered", algorithm)
	}

	delete(registry, algorithm)
	return nil
}
