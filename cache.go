// cache.go

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
)

// NewReportCache creates a cache for report summaries
func NewReportCache(cfg CacheConfig) *cache.Cache {
	return cache.New(cfg.TTL, cfg.Cleanup)
}

// reportCacheKey normalizes the zip so "01002" and "1002" share an entry.
func reportCacheKey(zip string, begin, end collisions.Date) string {
	zip = strings.TrimLeft(zip, "0")
	return zip + "|" + begin.String() + "|" + end.String()
}

func CacheReport(c *cache.Cache, key string, summary collisions.Summary) {
	c.Set(key, summary, cache.DefaultExpiration)
}

func GetCachedReport(c *cache.Cache, key string) (collisions.Summary, bool) {
	val, ok := c.Get(key)
	if !ok {
		return collisions.Summary{}, false
	}
	return val.(collisions.Summary), true
}
