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
	"strings"

	"github.com/cybrota/collisions/collisions"
)

// reportHeader is the title line underlined with '=' of the same width.
func reportHeader(zip string, begin, end collisions.Date) string {
	title := fmt.Sprintf("Motor Vehicle Collisions for zipcode %s (%s - %s)", zip, begin, end)
	return title + "\n" + strings.Repeat("=", len(title))
}

// formatSummary lays out totals, then fatalities, then injuries.
func formatSummary(s collisions.Summary) string {
	lines := []string{
		fmt.Sprintf("Total number of collisions: %d", s.Collisions),
		fmt.Sprintf("Number of fatalities: %d", s.PersonsKilled),
		fmt.Sprintf("%20s:%2d", "pedestrians", s.PedestriansKilled),
		fmt.Sprintf("%20s:%2d", "cyclists", s.CyclistsKilled),
		fmt.Sprintf("%20s:%2d", "motorists", s.MotoristsKilled),
		fmt.Sprintf("Number of injuries: %d", s.PersonsInjured),
		fmt.Sprintf("%18s:%2d", "pedestrians", s.PedestriansInjured),
		fmt.Sprintf("%18s:%2d", "cyclists", s.CyclistsInjured),
		fmt.Sprintf("%18s:%2d", "motorists", s.MotoristsInjured),
	}
	return strings.Join(lines, "\n")
}

func formatReport(zip string, begin, end collisions.Date, s collisions.Summary) string {
	return reportHeader(zip, begin, end) + "\n" + formatSummary(s)
}

// reportMarkdown renders the same figures as a markdown table for the TUI.
func reportMarkdown(zip string, begin, end collisions.Date, s collisions.Summary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Zip %s\n\n", zip)
	fmt.Fprintf(&sb, "%s – %s · **%d** collisions\n\n", begin, end, s.Collisions)
	sb.WriteString("| | Killed | Injured |\n|---|---:|---:|\n")
	fmt.Fprintf(&sb, "| **All persons** | %d | %d |\n", s.PersonsKilled, s.PersonsInjured)
	fmt.Fprintf(&sb, "| Pedestrians | %d | %d |\n", s.PedestriansKilled, s.PedestriansInjured)
	fmt.Fprintf(&sb, "| Cyclists | %d | %d |\n", s.CyclistsKilled, s.CyclistsInjured)
	fmt.Fprintf(&sb, "| Motorists | %d | %d |\n", s.MotoristsKilled, s.MotoristsInjured)
	return sb.String()
}
