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

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cybrota/slovar/dictionary"
	"github.com/cybrota/slovar/store"
)

// session ties a loaded dictionary to the store it was loaded from.
type session struct {
	dict   *dictionary.Dictionary
	store  store.Store
	url    string
	logger *slog.Logger
}

// openSession opens the store at url and loads every stored pair.
func openSession(ctx context.Context, url string, logger *slog.Logger) (*session, error) {
	st, err := store.Open(ctx, url, logger)
	if err != nil {
		return nil, err
	}

	d := dictionary.New(st, st)
	if err := d.Load(ctx); err != nil {
		st.Close()
		return nil, err
	}

	logger.Debug("dictionary loaded", "url", url, "words", d.Size(), "height", d.Height())
	return &session{dict: d, store: st, url: url, logger: logger}, nil
}

// add inserts or updates a word and writes it through to the store.
func (s *session) add(ctx context.Context, word, translation string) error {
	if err := s.dict.Set(word, translation); err != nil {
		return err
	}
	return s.dict.SaveOne(ctx, dictionary.WordPair{Key: word, Value: translation})
}

// remove deletes a word from the dictionary and, when it was present,
// from the store.
func (s *session) remove(ctx context.Context, word string) (bool, error) {
	deleted, err := s.dict.Delete(word)
	if err != nil || !deleted {
		return deleted, err
	}
	if err := s.store.Remove(ctx, word); err != nil {
		return true, fmt.Errorf("removed from dictionary but not from store: %w", err)
	}
	s.logger.Debug("word removed", "word", word)
	return true, nil
}

func (s *session) Close() error {
	return s.store.Close()
}
