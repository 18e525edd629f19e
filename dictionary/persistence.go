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

package dictionary

import (
	"context"
	"fmt"
)

// WordPair is the record exchanged with a persistence backend. Row ids
// and timestamps belong to the backend, not to the pair.
type WordPair struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

// Reader returns a full snapshot of previously stored pairs.
type Reader interface {
	Read(ctx context.Context) ([]WordPair, error)
}

// Writer stores a single pair.
type Writer interface {
	WriteOne(ctx context.Context, pair WordPair) error
}

// Load pulls every pair from the reader and inserts it in the order
// returned. A read failure is wrapped in ErrRead and leaves the tree
// untouched.
func (d *Dictionary) Load(ctx context.Context) error {
	if d.reader == nil {
		return ErrNoReader
	}
	pairs, err := d.reader.Read(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	return d.LoadPairs(pairs)
}

// LoadPairs inserts pairs in order. Later pairs overwrite earlier ones
// with the same key. There is no rollback: pairs inserted before a
// failing one stay in the tree.
func (d *Dictionary) LoadPairs(pairs []WordPair) error {
	for i, p := range pairs {
		if err := d.Insert(p.Key, p.Value); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// Save hands each pair to the writer once, in order. It stops at the
// first failing pair; pairs written before it are not rolled back.
func (d *Dictionary) Save(ctx context.Context, pairs []WordPair) error {
	if d.writer == nil {
		return ErrNoWriter
	}
	for _, p := range pairs {
		if err := d.writer.WriteOne(ctx, p); err != nil {
			return fmt.Errorf("%w: key %q: %w", ErrWrite, p.Key, err)
		}
	}
	return nil
}

// SaveOne hands a single pair to the writer.
func (d *Dictionary) SaveOne(ctx context.Context, pair WordPair) error {
	return d.Save(ctx, []WordPair{pair})
}
