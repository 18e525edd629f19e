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

// Package store provides persistence backends for the dictionary.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cybrota/slovar/dictionary"
)

// ErrUnsupportedURL is returned by Open for an unknown database URL.
var ErrUnsupportedURL = errors.New("store: unsupported database url")

// Store is a dictionary backend. Remove sits outside the reader/writer
// pair the dictionary consumes; callers use it after a successful delete.
type Store interface {
	dictionary.Reader
	dictionary.Writer
	Remove(ctx context.Context, key string) error
	Close() error
}

// Open picks a backend from the url prefix.
//
// Examples:
// - "sqlite:///home/me/.slovar/slovar.db" or "sqlite=dir/slovar.db"
// - "pebble:///home/me/.slovar/pebble"
// - "mem://"
func Open(ctx context.Context, url string, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch {
	case strings.HasPrefix(url, "sqlite://"):
		return OpenSQLite(ctx, url[len("sqlite://"):], logger)
	case strings.HasPrefix(url, "sqlite="):
		return OpenSQLite(ctx, url[len("sqlite="):], logger)
	case strings.HasPrefix(url, "pebble://"):
		return OpenPebble(url[len("pebble://"):], logger)
	case url == "mem://" || url == "mem":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedURL, url)
	}
}
