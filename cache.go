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
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Cache rendered describe output for 30 minutes
	describeCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	describeCacheCleanup = 5 * time.Minute
)

func newDescribeCache() *cache.Cache {
	return cache.New(describeCacheExpiration, describeCacheCleanup)
}

func cacheDescription(c *cache.Cache, path string, text string) {
	c.Set(path, text, describeCacheExpiration)
}

func cachedDescription(c *cache.Cache, path string) (string, bool) {
	val, ok := c.Get(path)
	if !ok {
		return "", false
	}
	text, ok := val.(string)
	return text, ok
}
