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

 **Collisions %s**

Summarize motor vehicle collisions for a zip code and date range.
Loads a collision CSV export into a balanced index and answers reports instantly.

Built with Go %s

# 1. Commands
* **run [file]** - interactive terminal UI (default)
* **prompt [file]** - classic question and answer loop
* **report [file] --zip 10001 --from 01/01/2020 --to 12/31/2020** - one report
* **report [file] --queries queries.txt** - one report per "zip start end" line
* **tree [file]** - print the index as a tree
* **settings** - show or create ~/.collisions.yaml

# 2. Data file
* First line is a header and is skipped
* Date in column 1, zip code in column 4, casualty counts in columns 11-18, unique key in column 24
* Rows with a malformed date, zip, count or key are skipped

# 3. Reports
* Total number of collisions
* Fatalities and injuries, each broken down by pedestrians, cyclists and motorists

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
