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
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/collisions/collisions"
	"github.com/mattn/go-shellwords"
)

// reportQuery is one zip code and date range to summarize.
type reportQuery struct {
	Zip   string
	Begin collisions.Date
	End   collisions.Date
}

func newReportQuery(zip, from, to, layout string) (reportQuery, error) {
	if !isValidZip(zip) {
		return reportQuery{}, fmt.Errorf("invalid zip code %q: want five digits", zip)
	}
	begin, err := collisions.ParseDate(layout, from)
	if err != nil {
		return reportQuery{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := collisions.ParseDate(layout, to)
	if err != nil {
		return reportQuery{}, fmt.Errorf("invalid end date: %w", err)
	}
	return reportQuery{Zip: zip, Begin: begin, End: end}, nil
}

func writeReport(out io.Writer, store *CollisionStore, q reportQuery) error {
	summary := store.Summarize(q.Zip, q.Begin, q.End)
	_, err := fmt.Fprintln(out, formatReport(q.Zip, q.Begin, q.End, summary))
	return err
}

// parseQueries reads "zip start end" lines. Words may be shell-quoted; blank
// lines and lines starting with '#' are ignored.
func parseQueries(in io.Reader, layout string) ([]reportQuery, error) {
	var queries []reportQuery

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		words, err := shellwords.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(words) != 3 {
			return nil, fmt.Errorf("line %d: want 'zip start end', got %d words", lineNo, len(words))
		}

		q, err := newReportQuery(words[0], words[1], words[2], layout)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		queries = append(queries, q)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return queries, nil
}

// runBatch prints one report per query, separated by blank lines.
func runBatch(in io.Reader, out io.Writer, store *CollisionStore, layout string) error {
	queries, err := parseQueries(in, layout)
	if err != nil {
		return err
	}

	for i, q := range queries {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if err := writeReport(out, store, q); err != nil {
			return err
		}
	}
	return nil
}
