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
	"fmt"
	"log/slog"

	"github.com/cockroachdb/pebble"

	"github.com/cybrota/slovar/dictionary"
)

// word keys live under this prefix; the upper bound is the next byte
var (
	wordPrefix     = []byte("w/")
	wordUpperBound = []byte("w0")
)

// PebbleStore keeps pairs in a pebble key-value directory. Read returns
// pairs in key order, since pebble keeps no insertion order.
type PebbleStore struct {
	db     *pebble.DB
	path   string
	logger *slog.Logger
}

func OpenPebble(path string, logger *slog.Logger) (*PebbleStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble database: %w", err)
	}

	logger.Debug("opened pebble store", "path", path)
	return &PebbleStore{db: db, path: path, logger: logger}, nil
}

func wordKey(word string) []byte {
	key := make([]byte, 0, len(wordPrefix)+len(word))
	key = append(key, wordPrefix...)
	return append(key, word...)
}

func (s *PebbleStore) Read(ctx context.Context) ([]dictionary.WordPair, error) {
	iter, err := s.db.NewIterWithContext(ctx, &pebble.IterOptions{
		LowerBound: wordPrefix,
		UpperBound: wordUpperBound,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create iterator: %w", err)
	}
	defer iter.Close()

	var pairs []dictionary.WordPair
	for iter.First(); iter.Valid(); iter.Next() {
		value, err := iter.ValueAndErr()
		if err != nil {
			return nil, fmt.Errorf("failed to read value: %w", err)
		}
		pairs = append(pairs, dictionary.WordPair{
			Key:   string(iter.Key()[len(wordPrefix):]),
			Value: string(value),
		})
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("iteration failed: %w", err)
	}
	return pairs, nil
}

func (s *PebbleStore) WriteOne(_ context.Context, pair dictionary.WordPair) error {
	if err := s.db.Set(wordKey(pair.Key), []byte(pair.Value), pebble.Sync); err != nil {
		return fmt.Errorf("failed to write %q: %w", pair.Key, err)
	}
	return nil
}

func (s *PebbleStore) Remove(_ context.Context, key string) error {
	if err := s.db.Delete(wordKey(key), pebble.Sync); err != nil {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}

func (s *PebbleStore) Close() error {
	return s.db.Close()
}
