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
	"bufio"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/willf/bloom"

	"github.com/cybrota/slovar/dictionary"
)

// Glossary translates running text word by word. A bloom filter built
// from the dictionary keys rejects most unknown words before the tree
// descent; a positive answer is always confirmed against the dictionary.
type Glossary struct {
	dict     *dictionary.Dictionary
	filter   *bloom.BloomFilter
	foldCase bool
}

// TranslateStats summarises one Translate run.
type TranslateStats struct {
	Words      int
	Translated int
	Unknown    []string // distinct unknown words, sorted
}

func NewGlossary(d *dictionary.Dictionary, cfg TranslateConfig) *Glossary {
	filter := bloom.New(cfg.BloomSize, cfg.BloomHashes)
	d.Walk(func(key, _ string) bool {
		filter.AddString(key)
		return true
	})

	return &Glossary{dict: d, filter: filter, foldCase: cfg.FoldCase}
}

// Lookup returns the translation of word. With case folding enabled a
// miss on the exact spelling is retried in lower case.
func (g *Glossary) Lookup(word string) (string, bool) {
	if v, ok := g.find(word); ok {
		return v, true
	}
	if g.foldCase {
		if lower := strings.ToLower(word); lower != word {
			return g.find(lower)
		}
	}
	return "", false
}

func (g *Glossary) find(word string) (string, bool) {
	if word == "" || !g.filter.TestString(word) {
		return "", false
	}
	v, ok, err := g.dict.Find(word)
	if err != nil {
		return "", false
	}
	return v, ok
}

// TranslateLine replaces every known word in line with its translation.
// Punctuation, spacing and unknown words are kept as they are.
func (g *Glossary) TranslateLine(line string) (string, []string) {
	var out strings.Builder
	var unknown []string

	forEachToken(line, func(token string, isWord bool) {
		if !isWord {
			out.WriteString(token)
			return
		}
		if v, ok := g.Lookup(token); ok {
			out.WriteString(v)
			return
		}
		out.WriteString(token)
		unknown = append(unknown, token)
	})
	return out.String(), unknown
}

// Translate reads r line by line and writes the translated text to w.
func (g *Glossary) Translate(r io.Reader, w io.Writer) (TranslateStats, error) {
	var stats TranslateStats
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	bw := bufio.NewWriter(w)
	for scanner.Scan() {
		line := scanner.Text()
		translated, unknown := g.TranslateLine(line)

		words := countWords(line)
		stats.Words += words
		stats.Translated += words - len(unknown)
		for _, u := range unknown {
			if !seen[u] {
				seen[u] = true
				stats.Unknown = append(stats.Unknown, u)
			}
		}

		if _, err := bw.WriteString(translated + "\n"); err != nil {
			return stats, err
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, err
	}

	sort.Strings(stats.Unknown)
	return stats, bw.Flush()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '\'' || r == '-'
}

// forEachToken splits s into alternating runs of word and non-word runes.
// A word run must contain at least one letter.
func forEachToken(s string, fn func(token string, isWord bool)) {
	start := 0
	inWord := false
	for i, r := range s {
		w := isWordRune(r)
		if i == 0 {
			inWord = w
			continue
		}
		if w != inWord {
			fn(s[start:i], inWord && hasLetter(s[start:i]))
			start = i
			inWord = w
		}
	}
	if start < len(s) {
		fn(s[start:], inWord && hasLetter(s[start:]))
	}
}

// hasLetter keeps runs like "-" or "'" out of the word count.
func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

func countWords(s string) int {
	n := 0
	forEachToken(s, func(_ string, isWord bool) {
		if isWord {
			n++
		}
	})
	return n
}
