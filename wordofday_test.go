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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/slovar/dictionary"
)

func TestWordOfTheDay(t *testing.T) {
	d := newTestDictionary(t, "cherry", "вишня", "apple", "яблоко", "banana", "банан")

	newYear := time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC)
	wp, ok := wordOfTheDay(d, newYear)
	require.True(t, ok)
	assert.Equal(t, dictionary.WordPair{Key: "banana", Value: "банан"}, wp)

	// Same day, later hour.
	again, _ := wordOfTheDay(d, newYear.Add(10*time.Hour))
	assert.Equal(t, wp, again)

	next, _ := wordOfTheDay(d, newYear.AddDate(0, 0, 1))
	assert.Equal(t, "cherry", next.Key)
}

func TestWordOfTheDayEmpty(t *testing.T) {
	d := dictionary.New(nil, nil)
	_, ok := wordOfTheDay(d, time.Now())
	assert.False(t, ok)
}

func TestGetBanner(t *testing.T) {
	day := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	banner := getBanner(newTestDictionary(t, "cat", "кошка"), day)
	assert.Contains(t, banner, "2025-01-01")
	assert.Contains(t, banner, "Word of the day: cat (кошка)")

	banner = getBanner(dictionary.New(nil, nil), day)
	assert.Contains(t, banner, "empty")
}
