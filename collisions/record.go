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

// Package collisions stores motor vehicle collision records in an AVL tree
// ordered by zip code, date and unique key, and answers per-zip date range
// reports over them.
package collisions

import (
	"strings"
)

// Counts holds the casualty figures reported for one collision.
type Counts struct {
	PersonsInjured     int `validate:"gte=0"`
	PersonsKilled      int `validate:"gte=0"`
	PedestriansInjured int `validate:"gte=0"`
	PedestriansKilled  int `validate:"gte=0"`
	CyclistsInjured    int `validate:"gte=0"`
	CyclistsKilled     int `validate:"gte=0"`
	MotoristsInjured   int `validate:"gte=0"`
	MotoristsKilled    int `validate:"gte=0"`
}

// Record is a single validated collision. Records are values and are never
// mutated after construction; only zip, date and key take part in ordering.
type Record struct {
	zip    string
	date   Date
	key    string
	counts Counts
}

// NewRecord validates its inputs and returns the Record they describe.
func NewRecord(zip string, date Date, key string, counts Counts) (Record, error) {
	if err := validateRecord(zip, date, key, counts); err != nil {
		return Record{}, err
	}
	return Record{zip: zip, date: date, key: key, counts: counts}, nil
}

func (r Record) Zip() string    { return r.zip }
func (r Record) Date() Date     { return r.date }
func (r Record) Key() string    { return r.key }
func (r Record) Counts() Counts { return r.counts }

func (r Record) PersonsInjured() int     { return r.counts.PersonsInjured }
func (r Record) PersonsKilled() int      { return r.counts.PersonsKilled }
func (r Record) PedestriansInjured() int { return r.counts.PedestriansInjured }
func (r Record) PedestriansKilled() int  { return r.counts.PedestriansKilled }
func (r Record) CyclistsInjured() int    { return r.counts.CyclistsInjured }
func (r Record) CyclistsKilled() int     { return r.counts.CyclistsKilled }
func (r Record) MotoristsInjured() int   { return r.counts.MotoristsInjured }
func (r Record) MotoristsKilled() int    { return r.counts.MotoristsKilled }

// String returns "zip MM/DD/YYYY key".
func (r Record) String() string {
	return r.zip + " " + r.date.String() + " " + r.key
}

// Compare orders records by zip, then date, then key. Zip and key are compared
// as decimal numbers.
func Compare(a, b Record) int {
	if c := compareDigits(a.zip, b.zip); c != 0 {
		return c
	}
	if c := a.date.Compare(b.date); c != 0 {
		return c
	}
	if c := compareDigits(a.key, b.key); c != 0 {
		return c
	}
	// "007" and "7" are the same number; keep the order total on the raw text.
	return strings.Compare(a.key, b.key)
}

// Equal reports whether a and b identify the same collision.
func Equal(a, b Record) bool {
	return Compare(a, b) == 0
}

// compareDigits compares two unsigned decimal strings by value without
// converting them, so arbitrarily long keys never overflow.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// SameZip reports whether two zip codes denote the same number.
func SameZip(a, b string) bool {
	return compareDigits(a, b) == 0
}
