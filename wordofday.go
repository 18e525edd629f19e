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
	"fmt"
	"time"

	"github.com/cybrota/slovar/dictionary"
)

// wordOfTheDay picks one pair per calendar day. The pick is stable for a
// given day as long as the dictionary does not change.
func wordOfTheDay(d *dictionary.Dictionary, day time.Time) (dictionary.WordPair, bool) {
	size := d.Size()
	if size == 0 {
		return dictionary.WordPair{}, false
	}

	target := (day.Year()*366 + day.YearDay()) % size
	var pick dictionary.WordPair
	i := 0
	d.Walk(func(key, value string) bool {
		if i == target {
			pick = dictionary.WordPair{Key: key, Value: value}
			return false
		}
		i++
		return true
	})
	return pick, true
}

// getBanner creates the header line shown above the browser.
func getBanner(d *dictionary.Dictionary, t time.Time) string {
	if wp, ok := wordOfTheDay(d, t); ok {
		return fmt.Sprintf("%s. Word of the day: %s (%s)", FormatDate(t), wp.Key, wp.Value)
	}
	return fmt.Sprintf("%s. The dictionary is empty, add a word with `slovar add`.", FormatDate(t))
}
