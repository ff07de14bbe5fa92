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
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/cybrota/collisions/collisions"
	"gopkg.in/yaml.v3"
)

const configFileName = ".collisions.yaml"

type DataConfig struct {
	Path       string `yaml:"path"`
	DateFormat string `yaml:"date_format"` // spreadsheet-style, e.g. MM/DD/YYYY
	SkipHeader bool   `yaml:"skip_header"`
	MinFields  int    `yaml:"min_fields"`
}

type CacheConfig struct {
	TTL     time.Duration `yaml:"ttl"`
	Cleanup time.Duration `yaml:"cleanup"`
}

type IndexConfig struct {
	BloomSize   uint `yaml:"bloom_size"`
	BloomHashes uint `yaml:"bloom_hashes"`
}

type UIConfig struct {
	ShowProgress bool `yaml:"show_progress"`
}

type Config struct {
	Data  DataConfig  `yaml:"data"`
	Cache CacheConfig `yaml:"cache"`
	Index IndexConfig `yaml:"index"`
	UI    UIConfig    `yaml:"ui"`
}

func defaultConfig() Config {
	return Config{
		Data: DataConfig{
			Path:       "",
			DateFormat: collisions.DefaultDateLayout,
			SkipHeader: true,
			MinFields:  collisions.MinFields,
		},
		Cache: CacheConfig{
			TTL:     30 * time.Minute,
			Cleanup: 5 * time.Minute,
		},
		Index: IndexConfig{
			BloomSize:   1 << 16,
			BloomHashes: 4,
		},
		UI: UIConfig{
			ShowProgress: true,
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

// LoadConfig reads ~/.collisions.yaml. A missing or unreadable file yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig()
		return &cfg, nil
	}
	return loadConfigFrom(configPath)
}

// loadConfigFrom overlays the file at path on top of the defaults, so keys
// missing from the file keep their default values.
func loadConfigFrom(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return &cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fallback := defaultConfig()
		return &fallback, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Data.MinFields < collisions.MinFields {
		log.Printf("data.min_fields=%d is too small to hold a record, using %d", cfg.Data.MinFields, collisions.MinFields)
		cfg.Data.MinFields = collisions.MinFields
	}
	if cfg.Index.BloomSize == 0 || cfg.Index.BloomHashes == 0 {
		d := defaultConfig()
		cfg.Index = d.Index
	}

	return &cfg, nil
}

func writeConfigFile(path string, cfg Config) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return writeConfigFile(configPath, defaultConfig())
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 Collisions Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	dataPath := config.Data.Path
	if dataPath == "" {
		dataPath = "(none, pass a file argument)"
	}

	fmt.Printf("📊 Current settings:\n\n")
	fmt.Printf("📂 %sData:%s\n", Green, Reset)
	fmt.Printf("  • %spath%s: %s\n", Green, Reset, dataPath)
	fmt.Printf("  • %sdate_format%s: %s\n", Green, Reset, config.Data.DateFormat)
	fmt.Printf("  • %sskip_header%s: %t\n", Green, Reset, config.Data.SkipHeader)
	fmt.Printf("  • %smin_fields%s: %d\n\n", Green, Reset, config.Data.MinFields)

	fmt.Printf("🗄  %sReport cache:%s\n", Green, Reset)
	fmt.Printf("  • %sttl%s: %s\n", Green, Reset, config.Cache.TTL)
	fmt.Printf("  • %scleanup%s: %s\n\n", Green, Reset, config.Cache.Cleanup)

	fmt.Printf("🌸 %sZip filter:%s\n", Green, Reset)
	fmt.Printf("  • %sbloom_size%s: %d bits\n", Green, Reset, config.Index.BloomSize)
	fmt.Printf("  • %sbloom_hashes%s: %d\n\n", Green, Reset, config.Index.BloomHashes)

	fmt.Printf("🖥  %sUI:%s\n", Green, Reset)
	fmt.Printf("  • %sshow_progress%s: %t\n\n", Green, Reset, config.UI.ShowProgress)

	fmt.Printf("💡 Edit %s to change these values.\n", configPath)
}
