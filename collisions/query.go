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

// Summary aggregates the casualties of a set of collisions.
type Summary struct {
	Collisions int

	PersonsKilled     int
	PedestriansKilled int
	CyclistsKilled    int
	MotoristsKilled   int

	PersonsInjured     int
	PedestriansInjured int
	CyclistsInjured    int
	MotoristsInjured   int
}

// Add folds one record into the summary.
func (s *Summary) Add(r Record) {
	s.Collisions++

	s.PersonsKilled += r.counts.PersonsKilled
	s.PedestriansKilled += r.counts.PedestriansKilled
	s.CyclistsKilled += r.counts.CyclistsKilled
	s.MotoristsKilled += r.counts.MotoristsKilled

	s.PersonsInjured += r.counts.PersonsInjured
	s.PedestriansInjured += r.counts.PedestriansInjured
	s.CyclistsInjured += r.counts.CyclistsInjured
	s.MotoristsInjured += r.counts.MotoristsInjured
}

// Summarize aggregates records.
func Summarize(records []Record) Summary {
	var s Summary
	for _, r := range records {
		s.Add(r)
	}
	return s
}

// RangeQuery returns every record whose zip equals zip (numerically) and whose
// date lies in [begin, end]. Records come back in visit order, which is
// pre-order over the pruned tree rather than ascending order.
func (idx *Index) RangeQuery(zip string, begin, end Date) []Record {
	var matches []Record
	collect(idx.root, zip, begin, end, &matches)
	return matches
}

// collect appends matching records under n to matches.
//
// Pruning is exact under the composite order: every record left of n is
// smaller than n, so when n has the query zip and a date before begin, the
// left side holds only smaller zips or the same zip with dates <= n's date.
// The symmetric argument covers dates after end.
func collect(n *node, zip string, begin, end Date, matches *[]Record) {
	if n == nil {
		return
	}

	zc := compareDigits(zip, n.record.zip)
	date := n.record.date
	if zc == 0 && !date.Before(begin) && !date.After(end) {
		*matches = append(*matches, n.record)
	}

	switch {
	case zc < 0:
		collect(n.left, zip, begin, end, matches)
	case zc > 0:
		collect(n.right, zip, begin, end, matches)
	case date.Before(begin):
		collect(n.right, zip, begin, end, matches)
	case date.After(end):
		collect(n.left, zip, begin, end, matches)
	default:
		collect(n.left, zip, begin, end, matches)
		collect(n.right, zip, begin, end, matches)
	}
}

// Report summarizes the collisions RangeQuery would return.
func (idx *Index) Report(zip string, begin, end Date) Summary {
	return Summarize(idx.RangeQuery(zip, begin, end))
}
