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

// dateutil.go
// The layout translation is reused from: https://github.com/metakeule/fmtdate by Marc René Arns

package collisions

import "strings"

/*
	Layouts use spreadsheet-style placeholders:

	M    - month (1)
	MM   - month (01)
	MMM  - month (Jan)
	MMMM - month (January)
	D    - day (2)
	DD   - day (02)
	YY   - year (06)
	YYYY - year (2006)
*/

type placeholder struct{ find, subst string }

// Order matters: longer tokens must be replaced before their prefixes.
var placeholders = []placeholder{
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"YYYY", "2006"},
	{"YY", "06"},
	{"DD", "02"},
	{"D", "2"},
}

// DefaultDateLayout is the layout used by the collision data files.
const DefaultDateLayout = "MM/DD/YYYY"

// Translate converts a spreadsheet-style layout to Go's reference layout.
func Translate(layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	out := layout
	for _, ph := range placeholders {
		out = strings.ReplaceAll(out, ph.find, ph.subst)
	}
	return out
}
