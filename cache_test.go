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
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheDescriptionAndCachedDescription(t *testing.T) {
	c := newDescribeCache()
	path := "history list"
	text := "history list [N]  List the most recent commands"

	// A path never described is a miss.
	if got, ok := cachedDescription(c, path); ok || got != "" {
		t.Errorf("cachedDescription(%q) = %q, %v; want miss", path, got, ok)
	}

	cacheDescription(c, path, text)

	if got, ok := cachedDescription(c, path); !ok || got != text {
		t.Errorf("cachedDescription(%q) = %q, %v; want %q", path, got, ok, text)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	path := "var"
	text := "This description should expire soon."

	c.Set(path, text, 100*time.Millisecond)

	if got, ok := cachedDescription(c, path); !ok || got != text {
		t.Errorf("cachedDescription(%q) = %q; want %q", path, got, text)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if _, ok := cachedDescription(c, path); ok {
		t.Errorf("After expiration, cachedDescription(%q) still hit", path)
	}
}

func TestCachedDescriptionIgnoresForeignValues(t *testing.T) {
	c := newDescribeCache()
	c.Set("var", 42, cache.DefaultExpiration)

	if _, ok := cachedDescription(c, "var"); ok {
		t.Error("cachedDescription returned a non-string value")
	}
}
