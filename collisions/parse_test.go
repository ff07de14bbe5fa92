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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dataRow lays out a row the way the collision files do.
func dataRow(date, zip, key string, counts [8]string) string {
	fields := make([]string, MinFields)
	fields[ColDate] = date
	fields[1] = "13:05"
	fields[2] = "BROOKLYN"
	fields[ColZip] = zip
	fields[4] = "40.6"
	fields[5] = "-73.9"
	fields[6] = `"(40.6, -73.9)"`
	fields[7] = `"ATLANTIC AVENUE"`
	for i, c := range counts {
		fields[ColPersonsInjured+i] = c
	}
	fields[18] = "Driver Inattention/Distraction"
	fields[ColKey] = key
	return strings.Join(fields, ",")
}

func TestSplitCSVLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"quoted comma", `a,"b, c",d`, []string{"a", "b, c", "d"}},
		{"smart quotes", "a,“b, c”,d", []string{"a", "b, c", "d"}},
		{"space between entries", "a,  b ,c", []string{"a", "b ", "c"}},
		{"space inside entry", "a,b c,d", []string{"a", "b c", "d"}},
		{"empty middle entry", "a,,c", []string{"a", "", "c"}},
		{"trailing empty entry dropped", "a,b,", []string{"a", "b"}},
		{"last entry trimmed", "a,b   ", []string{"a", "b"}},
		{"empty line", "", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SplitCSVLine(c.line))
		})
	}
}

func TestParseRecord(t *testing.T) {
	line := dataRow("06/01/2020", "10001", "4321", [8]string{"3", "1", "2", "1", "0", "0", "1", "0"})

	r, err := ParseLine(line, "")
	require.NoError(t, err)

	assert.Equal(t, "10001", r.Zip())
	assert.Equal(t, MustDate(2020, time.June, 1), r.Date())
	assert.Equal(t, "4321", r.Key())
	assert.Equal(t, Counts{
		PersonsInjured: 3, PersonsKilled: 1,
		PedestriansInjured: 2, PedestriansKilled: 1,
		CyclistsInjured: 0, CyclistsKilled: 0,
		MotoristsInjured: 1, MotoristsKilled: 0,
	}, r.Counts())
}

func TestParseRecordRejects(t *testing.T) {
	zero := [8]string{"0", "0", "0", "0", "0", "0", "0", "0"}
	negative := zero
	negative[5] = "-2"
	blank := zero
	blank[0] = ""

	cases := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"too few fields", "06/01/2020,13:05,BROOKLYN,10001", ErrTooFewFields},
		{"missing key drops the last field", dataRow("06/01/2020", "10001", "", zero), ErrTooFewFields},
		{"empty date", dataRow("", "10001", "1", zero), ErrInvalidRecord},
		{"bad date", dataRow("2020-06-01", "10001", "1", zero), ErrInvalidDate},
		{"short zip", dataRow("06/01/2020", "1001", "1", zero), ErrInvalidRecord},
		{"letters in zip", dataRow("06/01/2020", "1000X", "1", zero), ErrInvalidRecord},
		{"negative count", dataRow("06/01/2020", "10001", "1", negative), ErrInvalidRecord},
		{"blank count", dataRow("06/01/2020", "10001", "1", blank), ErrInvalidRecord},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseLine(c.line, "")
			assert.ErrorIs(t, err, c.wantErr)
		})
	}
}
