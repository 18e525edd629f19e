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
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configFileName = ".slovar.yaml"
	databaseEnvVar = "SLOVAR_DATABASE"
)

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type BrowseConfig struct {
	RenderMarkdown   bool `yaml:"render_markdown"`
	CardCacheMinutes int  `yaml:"card_cache_minutes"`
}

type TranslateConfig struct {
	BloomSize   uint `yaml:"bloom_size"`
	BloomHashes uint `yaml:"bloom_hashes"`
	FoldCase    bool `yaml:"fold_case"`
}

type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Browse    BrowseConfig    `yaml:"browse"`
	Translate TranslateConfig `yaml:"translate"`
}

func defaultConfig() Config {
	dbPath := filepath.Join(".slovar", "slovar.db")
	if homeDir, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(homeDir, ".slovar", "slovar.db")
	}

	return Config{
		Database: DatabaseConfig{
			URL: "sqlite://" + dbPath,
		},
		Browse: BrowseConfig{
			RenderMarkdown:   true,
			CardCacheMinutes: 30,
		},
		Translate: TranslateConfig{
			BloomSize:   1 << 16,
			BloomHashes: 5,
			FoldCase:    true,
		},
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.slovar.yaml. A missing or unreadable file yields
// the defaults; fields absent from the file keep their default values.
// SLOVAR_DATABASE overrides the database url.
func LoadConfig() *Config {
	config := defaultConfig()

	if configPath, err := getConfigPath(); err == nil {
		if data, err := os.ReadFile(configPath); err == nil {
			parsed := defaultConfig()
			if err := yaml.Unmarshal(data, &parsed); err == nil {
				config = parsed
			}
		}
	}

	if url := os.Getenv(databaseEnvVar); url != "" {
		config.Database.URL = url
	}
	config.normalize()
	return &config
}

// normalize replaces nonsensical values with defaults.
func (c *Config) normalize() {
	def := defaultConfig()
	if c.Database.URL == "" {
		c.Database.URL = def.Database.URL
	}
	if c.Browse.CardCacheMinutes <= 0 {
		c.Browse.CardCacheMinutes = def.Browse.CardCacheMinutes
	}
	if c.Translate.BloomSize == 0 {
		c.Translate.BloomSize = def.Translate.BloomSize
	}
	if c.Translate.BloomHashes == 0 {
		c.Translate.BloomHashes = def.Translate.BloomHashes
	}
}

func createDefaultConfigFile(configPath string) error {
	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func displaySettings(w io.Writer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		created = true
	}

	config := LoadConfig()

	fmt.Fprintf(w, "🔧 Slovar Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)
	}

	fmt.Fprintf(w, "💾 %sDatabase:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %surl%s: %s\n", Green, Reset, config.Database.URL)
	if os.Getenv(databaseEnvVar) != "" {
		fmt.Fprintf(w, "    (overridden by %s)\n", databaseEnvVar)
	}

	fmt.Fprintf(w, "\n🔍 %sBrowse:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %srender_markdown%s: %t\n", Green, Reset, config.Browse.RenderMarkdown)
	fmt.Fprintf(w, "  • %scard_cache_minutes%s: %d\n", Green, Reset, config.Browse.CardCacheMinutes)

	fmt.Fprintf(w, "\n📖 %sTranslate:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sbloom_size%s: %d\n", Green, Reset, config.Translate.BloomSize)
	fmt.Fprintf(w, "  • %sbloom_hashes%s: %d\n", Green, Reset, config.Translate.BloomHashes)
	fmt.Fprintf(w, "  • %sfold_case%s: %t\n", Green, Reset, config.Translate.FoldCase)

	fmt.Fprintf(w, "\n💡 Supported database urls: sqlite://PATH, pebble://DIR, mem://\n")
	return nil
}
