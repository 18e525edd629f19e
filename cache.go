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
	"time"

	"github.com/patrickmn/go-cache"
)

// Clean up expired entries every 5 minutes
const cardCacheCleanup = 5 * time.Minute

// NewCardCache creates a cache for rendered translation cards.
func NewCardCache(expiration time.Duration) *cache.Cache {
	return cache.New(expiration, cardCacheCleanup)
}

// CacheCard stores a rendered card. The cache key includes the
// translation so an updated word never shows a stale card.
func CacheCard(c *cache.Cache, word, translation, card string) {
	c.Set(cardKey(word, translation), card, cache.DefaultExpiration)
}

func GetCard(c *cache.Cache, word, translation string) string {
	val, ok := c.Get(cardKey(word, translation))
	if !ok {
		return ""
	}
	return val.(string)
}

func cardKey(word, translation string) string {
	return word + "\x00" + translation
}
