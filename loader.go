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
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cybrota/collisions/collisions"
	"github.com/schollz/progressbar/v3"
)

// LoadStats counts what happened to each data line.
type LoadStats struct {
	Lines      int
	Loaded     int
	Duplicates int
	Rejected   int
}

// resolveDataPath prefers the command-line argument over the configured path.
func resolveDataPath(args []string, cfg *Config) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if cfg.Data.Path != "" {
		return cfg.Data.Path, nil
	}
	return "", errors.New("no data file given. Pass a CSV file or set data.path in ~/" + configFileName)
}

// loadCollisions parses every line of r and adds the valid records to store.
// Rows that are too short or fail validation are skipped and counted.
func loadCollisions(r io.Reader, store *CollisionStore, cfg DataConfig) (LoadStats, error) {
	var stats LoadStats

	minFields := max(cfg.MinFields, collisions.MinFields)

	scanner := bufio.NewScanner(r)
	// Rows with long free-text columns exceed the default token size
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if cfg.SkipHeader {
				continue
			}
		}
		stats.Lines++

		fields := collisions.SplitCSVLine(line)
		if len(fields) < minFields {
			stats.Rejected++
			continue
		}

		record, err := collisions.ParseRecord(fields, cfg.DateFormat)
		if err != nil {
			stats.Rejected++
			continue
		}

		if store.Add(record) {
			stats.Loaded++
		} else {
			stats.Duplicates++
		}
	}

	if err := scanner.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}

// readCollisionsAndPopulateStore loads the CSV file at path into store.
func readCollisionsAndPopulateStore(path string, store *CollisionStore, cfg *Config) (LoadStats, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadStats{}, fmt.Errorf("collision data file %s not found", path)
		}
		return LoadStats{}, err
	}
	defer file.Close()

	var reader io.Reader = file
	var bar *progressbar.ProgressBar
	if cfg.UI.ShowProgress {
		var size int64 = -1
		if stat, err := file.Stat(); err == nil {
			size = stat.Size()
		}
		bar = progressbar.NewOptions64(size,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("📥 Loading collisions..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
		reader = io.TeeReader(file, bar)
	}

	stats, err := loadCollisions(reader, store, cfg.Data)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return stats, fmt.Errorf("failed to read %s: %w", path, err)
	}

	log.Printf("Loaded %d collisions from %s (%d duplicates, %d rejected rows)", stats.Loaded, path, stats.Duplicates, stats.Rejected)
	return stats, nil
}

// mustLoadStore is the shared start-up path of every command that needs data.
func mustLoadStore(args []string) (*CollisionStore, *Config) {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}

	path, err := resolveDataPath(args, config)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	store := NewCollisionStore(config)
	if _, err := readCollisionsAndPopulateStore(path, store, config); err != nil {
		log.Fatalf("Error reading collisions: %v", err)
	}
	return store, config
}
