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
	"strings"

	"github.com/cybrota/collisions/collisions"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

// CollisionStore fronts the index with a report cache and a bloom filter of
// every zip ever added. Zips the filter has never seen skip the tree walk.
// Deletes do not clear filter bits, which only costs a wasted walk.
type CollisionStore struct {
	index   *collisions.Index
	reports *cache.Cache
	zips    *bloom.BloomFilter
}

func NewCollisionStore(cfg *Config) *CollisionStore {
	return &CollisionStore{
		index:   collisions.NewIndex(),
		reports: NewReportCache(cfg.Cache),
		zips:    bloom.New(cfg.Index.BloomSize, cfg.Index.BloomHashes),
	}
}

func zipFilterKey(zip string) string {
	return strings.TrimLeft(zip, "0")
}

// Add inserts r and reports whether the store grew (false for duplicates).
func (s *CollisionStore) Add(r collisions.Record) bool {
	before := s.index.Len()
	s.index.Insert(r)
	if s.index.Len() == before {
		return false
	}
	s.zips.AddString(zipFilterKey(r.Zip()))
	s.invalidate()
	return true
}

// Remove deletes the record equal to r.
func (s *CollisionStore) Remove(r collisions.Record) bool {
	if !s.index.Delete(r) {
		return false
	}
	s.invalidate()
	return true
}

func (s *CollisionStore) invalidate() {
	if s.reports.ItemCount() > 0 {
		s.reports.Flush()
	}
}

func (s *CollisionStore) Len() int {
	return s.index.Len()
}

func (s *CollisionStore) Index() *collisions.Index {
	return s.index
}

// MayContainZip is false only when no record with zip was ever added.
func (s *CollisionStore) MayContainZip(zip string) bool {
	return s.zips.TestString(zipFilterKey(zip))
}

// Summarize answers a report from the cache when possible.
func (s *CollisionStore) Summarize(zip string, begin, end collisions.Date) collisions.Summary {
	if !s.MayContainZip(zip) {
		return collisions.Summary{}
	}

	key := reportCacheKey(zip, begin, end)
	if summary, ok := GetCachedReport(s.reports, key); ok {
		return summary
	}

	summary := s.index.Report(zip, begin, end)
	CacheReport(s.reports, key, summary)
	return summary
}
