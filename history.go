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
	"sort"
	"strings"
	"time"
)

// HistoryEntry is one distinct command line dispatched by the console.
type HistoryEntry struct {
	Line      string
	LastUsed  time.Time
	Frequency int
}

// RankedEntry pairs an entry with its frequency/recency score.
type RankedEntry struct {
	HistoryEntry
	Score float64
}

type historyNode struct {
	entry  HistoryEntry
	height int
	left   *historyNode
	right  *historyNode
}

// HistoryIndex keeps dispatched lines in an AVL tree keyed by line, so
// prefix lookups are range scans. It is not safe for concurrent use.
type HistoryIndex struct {
	root       *historyNode
	size       int
	maxEntries int
}

// NewHistoryIndex creates an index holding at most maxEntries lines. Zero or
// less means unbounded.
func NewHistoryIndex(maxEntries int) *HistoryIndex {
	return &HistoryIndex{maxEntries: maxEntries}
}

// Len returns the number of distinct lines held.
func (h *HistoryIndex) Len() int { return h.size }

// Clear drops every entry.
func (h *HistoryIndex) Clear() {
	h.root = nil
	h.size = 0
}

// Record notes that line was dispatched at t. Repeated lines bump the
// frequency of the existing entry. When the index is full the least recently
// used entry is evicted.
func (h *HistoryIndex) Record(line string, t time.Time) {
	if line == "" {
		return
	}
	var inserted bool
	h.root = h.insert(h.root, line, t, &inserted)
	if !inserted {
		return
	}
	h.size++
	if h.maxEntries > 0 && h.size > h.maxEntries {
		if oldest, ok := h.oldest(); ok {
			h.Delete(oldest.Line)
		}
	}
}

// Get returns the entry for line.
func (h *HistoryIndex) Get(line string) (HistoryEntry, bool) {
	n := h.root
	for n != nil {
		switch {
		case line < n.entry.Line:
			n = n.left
		case line > n.entry.Line:
			n = n.right
		default:
			return n.entry, true
		}
	}
	return HistoryEntry{}, false
}

// Delete removes line if present.
func (h *HistoryIndex) Delete(line string) {
	var deleted bool
	h.root = h.delete(h.root, line, &deleted)
	if deleted {
		h.size--
	}
}

// SearchPrefix returns the entries whose line starts with prefix, in
// lexicographic order.
func (h *HistoryIndex) SearchPrefix(prefix string) []HistoryEntry {
	var results []HistoryEntry
	collectPrefix(h.root, prefix, &results)
	return results
}

// Entries returns every entry in lexicographic order.
func (h *HistoryIndex) Entries() []HistoryEntry {
	return h.SearchPrefix("")
}

// Recent returns up to n entries, most recently used first. n <= 0 returns
// all of them.
func (h *HistoryIndex) Recent(n int) []HistoryEntry {
	entries := h.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LastUsed.After(entries[j].LastUsed)
	})
	return limit(entries, n)
}

// Top returns up to n entries ranked by score, highest first.
func (h *HistoryIndex) Top(n int, now time.Time) []RankedEntry {
	entries := h.Entries()
	ranked := make([]RankedEntry, len(entries))
	for i, e := range entries {
		ranked[i] = RankedEntry{HistoryEntry: e, Score: score(e, now)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return limit(ranked, n)
}

// score weighs frequency linearly and recency as the inverse of the hours
// since last use.
func score(e HistoryEntry, now time.Time) float64 {
	hours := now.Sub(e.LastUsed).Hours()
	if hours < 0 {
		hours = 0
	}
	return 0.6*float64(e.Frequency) + 0.4*(1/(hours+1))
}

func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func (h *HistoryIndex) oldest() (HistoryEntry, bool) {
	entries := h.Entries()
	if len(entries) == 0 {
		return HistoryEntry{}, false
	}
	oldest := entries[0]
	for _, e := range entries[1:] {
		if e.LastUsed.Before(oldest.LastUsed) {
			oldest = e
		}
	}
	return oldest, true
}

func (h *HistoryIndex) insert(n *historyNode, line string, t time.Time, inserted *bool) *historyNode {
	if n == nil {
		*inserted = true
		return &historyNode{entry: HistoryEntry{Line: line, LastUsed: t, Frequency: 1}, height: 1}
	}

	switch {
	case line < n.entry.Line:
		n.left = h.insert(n.left, line, t, inserted)
	case line > n.entry.Line:
		n.right = h.insert(n.right, line, t, inserted)
	default:
		n.entry.Frequency++
		if t.After(n.entry.LastUsed) {
			n.entry.LastUsed = t
		}
		return n
	}

	updateHeight(n)
	return rebalance(n)
}

func (h *HistoryIndex) delete(n *historyNode, line string, deleted *bool) *historyNode {
	if n == nil {
		return nil
	}

	switch {
	case line < n.entry.Line:
		n.left = h.delete(n.left, line, deleted)
	case line > n.entry.Line:
		n.right = h.delete(n.right, line, deleted)
	default:
		*deleted = true
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		successor := n.right
		for successor.left != nil {
			successor = successor.left
		}
		n.entry = successor.entry
		var ignored bool
		n.right = h.delete(n.right, successor.entry.Line, &ignored)
	}

	updateHeight(n)
	return rebalance(n)
}

func collectPrefix(n *historyNode, prefix string, results *[]HistoryEntry) {
	if n == nil {
		return
	}
	matches := strings.HasPrefix(n.entry.Line, prefix)
	if n.entry.Line >= prefix {
		collectPrefix(n.left, prefix, results)
	}
	if matches {
		*results = append(*results, n.entry)
	}
	// Lines sharing a prefix are contiguous in key order.
	if matches || n.entry.Line < prefix {
		collectPrefix(n.right, prefix, results)
	}
}

func height(n *historyNode) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight(n *historyNode) {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balanceFactor(n *historyNode) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func rotateLeft(n *historyNode) *historyNode {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n
	updateHeight(n)
	updateHeight(pivot)
	return pivot
}

func rotateRight(n *historyNode) *historyNode {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n
	updateHeight(n)
	updateHeight(pivot)
	return pivot
}

func rebalance(n *historyNode) *historyNode {
	bf := balanceFactor(n)
	if bf > 1 {
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}
	if bf < -1 {
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}
