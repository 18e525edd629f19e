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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/slovar/dictionary"
)

var errBadPairsFile = errors.New("pairs file must be a list of {key, value} or a word: translation mapping")

// parsePairs accepts either
//
//	- key: cat
//	  value: кошка
//
// or the short form
//
//	cat: кошка
//
// and keeps the order of the file.
func parsePairs(data []byte) ([]dictionary.WordPair, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var pairs []dictionary.WordPair
		if err := root.Decode(&pairs); err != nil {
			return nil, err
		}
		return pairs, nil
	case yaml.MappingNode:
		pairs := make([]dictionary.WordPair, 0, len(root.Content)/2)
		for i := 0; i+1 < len(root.Content); i += 2 {
			k, v := root.Content[i], root.Content[i+1]
			if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: %w", k.Line, errBadPairsFile)
			}
			pairs = append(pairs, dictionary.WordPair{Key: k.Value, Value: v.Value})
		}
		return pairs, nil
	default:
		return nil, errBadPairsFile
	}
}

func readPairsFile(path string) ([]dictionary.WordPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pairs, err := parsePairs(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return pairs, nil
}

func writePairs(w io.Writer, pairs []dictionary.WordPair) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(pairs); err != nil {
		return err
	}
	return enc.Close()
}

// importPairs inserts pairs into the dictionary, then saves each of them.
// progress receives the bar; pass nil to stay quiet.
func importPairs(ctx context.Context, d *dictionary.Dictionary, pairs []dictionary.WordPair, progress io.Writer) error {
	if err := d.LoadPairs(pairs); err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(len(pairs),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("💾 Saving words..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(progress, "\n✅ Import completed!\n")
			}),
		)
	}

	for _, p := range pairs {
		if err := d.SaveOne(ctx, p); err != nil {
			return err
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	return nil
}
