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
	"os"
	"path/filepath"
	"strings"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cybrota/slovar/dictionary"
)

// WordPairRow is the persisted form of a pair. ID only orders the
// snapshot returned by Read.
type WordPairRow struct {
	ID        uint   `gorm:"primarykey"`
	Key       string `gorm:"uniqueIndex;not null"`
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (WordPairRow) TableName() string {
	return "word_pairs"
}

// SQLiteStore keeps pairs in a sqlite table through gorm.
type SQLiteStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// OpenSQLite opens (creating if needed) the database at path and migrates
// the word_pairs table. path may be ":memory:".
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// ensure the directory exists unless this is an in-memory database
	if !strings.Contains(path, ":memory:") {
		if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 slogGorm.New(slogGorm.WithLogger(logger)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqldb, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqldb.SetMaxOpenConns(1)

	if err := db.WithContext(ctx).Exec("PRAGMA journal_mode=WAL;").Error; err != nil {
		return nil, fmt.Errorf("failed to set journal_mode=WAL: %w", err)
	}
	if err := db.WithContext(ctx).AutoMigrate(&WordPairRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate word_pairs: %w", err)
	}

	logger.Debug("opened sqlite store", "path", path)
	return &SQLiteStore{db: db, logger: logger}, nil
}

// Read returns every stored pair in insertion order.
func (s *SQLiteStore) Read(ctx context.Context) ([]dictionary.WordPair, error) {
	var rows []WordPairRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read word pairs: %w", err)
	}

	pairs := make([]dictionary.WordPair, 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, dictionary.WordPair{Key: row.Key, Value: row.Value})
	}
	return pairs, nil
}

// WriteOne inserts the pair, or updates the value when the key is
// already stored.
func (s *SQLiteStore) WriteOne(ctx context.Context, pair dictionary.WordPair) error {
	row := WordPairRow{Key: pair.Key, Value: pair.Value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", pair.Key, err)
	}
	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where(map[string]any{"key": key}).Delete(&WordPairRow{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	sqldb, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqldb.Close()
}
