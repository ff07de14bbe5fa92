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
)

const (
	zipPrompt       = "Enter a zip code ('quit' to exit): "
	startDatePrompt = "Enter start date (MM/DD/YYYY): "
	endDatePrompt   = "Enter end date (MM/DD/YYYY): "
	invalidZipMsg   = "Invalid zip code. Try again."
	invalidDateMsg  = "Invalid date format. Try again."
	quitCommand     = "quit"
)

// isValidZip accepts exactly five ASCII digits.
func isValidZip(zip string) bool {
	if len(zip) != 5 {
		return false
	}
	for i := 0; i < len(zip); i++ {
		if zip[i] < '0' || zip[i] > '9' {
			return false
		}
	}
	return true
}

// runPrompt asks for a zip code and a date range until the user types quit
// or input ends, printing one report per valid query. Input is read as
// whitespace separated words.
func runPrompt(in io.Reader, out io.Writer, store *CollisionStore, layout string) error {
	words := bufio.NewScanner(in)
	words.Split(bufio.ScanWords)

	next := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !words.Scan() {
			return "", false
		}
		return words.Text(), true
	}

	for {
		zip, ok := next(zipPrompt)
		if !ok || strings.EqualFold(zip, quitCommand) {
			break
		}

		if !isValidZip(zip) {
			fmt.Fprintf(out, "%s\n\n", invalidZipMsg)
			continue
		}

		startInput, ok := next(startDatePrompt)
		if !ok {
			break
		}
		endInput, ok := next(endDatePrompt)
		if !ok {
			break
		}

		begin, err := collisions.ParseDate(layout, startInput)
		if err != nil {
			fmt.Fprintf(out, "%s\n\n", invalidDateMsg)
			continue
		}
		end, err := collisions.ParseDate(layout, endInput)
		if err != nil {
			fmt.Fprintf(out, "%s\n\n", invalidDateMsg)
			continue
		}

		summary := store.Summarize(zip, begin, end)
		fmt.Fprintf(out, "\n%s\n", formatReport(zip, begin, end, summary))
	}

	if err := words.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
