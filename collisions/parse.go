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

package collisions

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Column positions in the collision data files.
const (
	ColDate           = 0
	ColZip            = 3
	ColPersonsInjured = 10 // first of eight consecutive count columns
	ColKey            = 23

	// MinFields is the smallest row that carries every column above.
	MinFields = ColKey + 1
)

// SplitCSVLine splits one line of a collision file into its entries.
//
// Double quotes (plain or typographic) surround entries that may contain
// commas. Whitespace between entries is dropped, whitespace inside an entry is
// kept. The last entry is trimmed and only kept when non-empty.
func SplitCSVLine(line string) []string {
	var (
		entries      []string
		word         strings.Builder
		insideQuotes bool
		insideEntry  bool
	)

	for _, ch := range line {
		switch {
		case ch == '"' || ch == '“' || ch == '”':
			insideQuotes = !insideQuotes
			insideEntry = insideQuotes
		case unicode.IsSpace(ch):
			if insideQuotes || insideEntry {
				word.WriteRune(ch)
			}
		case ch == ',':
			if insideQuotes {
				word.WriteRune(ch)
				continue
			}
			insideEntry = false
			entries = append(entries, word.String())
			word.Reset()
		default:
			word.WriteRune(ch)
			insideEntry = true
		}
	}

	if word.Len() > 0 {
		entries = append(entries, strings.TrimSpace(word.String()))
	}
	return entries
}

// ParseRecord builds a Record from the entries of one data row. layout is the
// spreadsheet-style date layout; empty means DefaultDateLayout.
func ParseRecord(fields []string, layout string) (Record, error) {
	if len(fields) < MinFields {
		return Record{}, fmt.Errorf("%w: got %d, need %d", ErrTooFewFields, len(fields), MinFields)
	}

	date, err := ParseDate(layout, fields[ColDate])
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	var nums [8]int
	for i := range nums {
		raw := strings.TrimSpace(fields[ColPersonsInjured+i])
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Record{}, fmt.Errorf("%w: count column %d: %q is not a number", ErrInvalidRecord, ColPersonsInjured+i, raw)
		}
		nums[i] = n
	}
	counts := Counts{
		PersonsInjured:     nums[0],
		PersonsKilled:      nums[1],
		PedestriansInjured: nums[2],
		PedestriansKilled:  nums[3],
		CyclistsInjured:    nums[4],
		CyclistsKilled:     nums[5],
		MotoristsInjured:   nums[6],
		MotoristsKilled:    nums[7],
	}

	return NewRecord(strings.TrimSpace(fields[ColZip]), date, strings.TrimSpace(fields[ColKey]), counts)
}

// ParseLine is SplitCSVLine followed by ParseRecord.
func ParseLine(line, layout string) (Record, error) {
	return ParseRecord(SplitCSVLine(line), layout)
}
