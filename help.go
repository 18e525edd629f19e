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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Slovar %s**

A pocket English to Russian dictionary for the terminal. Words live in an ordered tree
in memory and are saved to SQLite, Pebble or nowhere at all.

Built with Go %s

# 1. Commands
* **browse** (default): search as you type, read the card, copy the translation with ctrl+y
* **add WORD TRANSLATION**: add a word or change its translation
* **get WORD**: print the translation, exit status 1 when the word is unknown
* **rm WORD**: delete a word
* **list --prefix P**: every word in alphabetical order
* **import FILE** / **export FILE**: YAML word lists
* **translate FILE**: word by word gloss of a text, unknown words are reported
* **shell**: interactive prompt, quote entries with spaces ("ice cream")
* **stats**, **settings**, **version**

# 2. Storage
* sqlite://PATH (default ~/.slovar/slovar.db)
* pebble://DIR
* mem:// (nothing is saved)

Pick one with --db, SLOVAR_DATABASE or database.url in ~/.slovar.yaml.

# 3. Import format
    - key: cat
      value: кошка
or simply
    cat: кошка

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed
* Words are compared byte by byte, so "Cat" and "cat" are different entries

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
