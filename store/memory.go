// Copyright 2025 Naren Yellavula
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

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/cybrota/slovar/dictionary"
)

// MemoryStore keeps pairs in insertion order in process memory. Nothing
// survives Close. Useful for dry runs and tests.
type MemoryStore struct {
	mu    sync.Mutex
	pairs []dictionary.WordPair
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Read(context.Context) ([]dictionary.WordPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.pairs), nil
}

func (s *MemoryStore) WriteOne(_ context.Context, pair dictionary.WordPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(pair.Key); i >= 0 {
		s.pairs[i].Value = pair.Value
		return nil
	}
	s.pairs = append(s.pairs, pair)
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(key); i >= 0 {
		s.pairs = slices.Delete(s.pairs, i, i+1)
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) index(key string) int {
	return slices.IndexFunc(s.pairs, func(p dictionary.WordPair) bool {
		return p.Key == key
	})
}
