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
	"reflect"
	"testing"
	"time"
)

var epoch = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func lines(entries []HistoryEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Line
	}
	return out
}

// verifyBalanced checks the AVL height and balance invariants below n.
func verifyBalanced(t *testing.T, n *historyNode) int {
	t.Helper()
	if n == nil {
		return 0
	}
	l := verifyBalanced(t, n.left)
	r := verifyBalanced(t, n.right)
	if l-r > 1 || r-l > 1 {
		t.Errorf("node %q unbalanced: left %d, right %d", n.entry.Line, l, r)
	}
	h := max(l, r) + 1
	if n.height != h {
		t.Errorf("node %q height = %d, want %d", n.entry.Line, n.height, h)
	}
	return h
}

func TestHistoryIndexOperations(t *testing.T) {
	testCases := []struct {
		Name          string
		InitialKeys   []string
		KeysToInsert  []string
		KeysToDelete  []string
		ExpectedOrder []string
	}{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []string{"echo a", "history list", "var list"},
			ExpectedOrder: []string{"echo a", "history list", "var list"},
		},
		{
			Name:          "Insertion with Balancing",
			InitialKeys:   []string{"a"},
			KeysToInsert:  []string{"b", "c", "d", "e", "f", "g"},
			ExpectedOrder: []string{"a", "b", "c", "d", "e", "f", "g"},
		},
		{
			Name:          "Deletion with Balancing",
			InitialKeys:   []string{"var set x 1", "var get x", "echo hi"},
			KeysToDelete:  []string{"var set x 1"},
			ExpectedOrder: []string{"echo hi", "var get x"},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []string{"dog", "cat"},
			KeysToInsert:  []string{"elephant", "bird"},
			KeysToDelete:  []string{"cat", "missing"},
			ExpectedOrder: []string{"bird", "dog", "elephant"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			h := NewHistoryIndex(0)
			for i, key := range tc.InitialKeys {
				h.Record(key, epoch.Add(time.Duration(i)*time.Minute))
			}
			for i, key := range tc.KeysToInsert {
				h.Record(key, epoch.Add(time.Hour+time.Duration(i)*time.Minute))
			}
			for _, key := range tc.KeysToDelete {
				h.Delete(key)
			}

			if got := lines(h.Entries()); !reflect.DeepEqual(got, tc.ExpectedOrder) {
				t.Errorf("Entries() = %v, want %v", got, tc.ExpectedOrder)
			}
			if h.Len() != len(tc.ExpectedOrder) {
				t.Errorf("Len() = %d, want %d", h.Len(), len(tc.ExpectedOrder))
			}
			verifyBalanced(t, h.root)
		})
	}
}

func TestHistoryRecordDuplicate(t *testing.T) {
	h := NewHistoryIndex(0)
	h.Record("var list", epoch)
	h.Record("var list", epoch.Add(time.Minute))
	h.Record("", epoch)

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	e, ok := h.Get("var list")
	if !ok {
		t.Fatal("Get(var list) not found")
	}
	if e.Frequency != 2 {
		t.Errorf("Frequency = %d, want 2", e.Frequency)
	}
	if !e.LastUsed.Equal(epoch.Add(time.Minute)) {
		t.Errorf("LastUsed = %v, want %v", e.LastUsed, epoch.Add(time.Minute))
	}
}

func TestHistoryEvictsLeastRecentlyUsed(t *testing.T) {
	h := NewHistoryIndex(2)
	h.Record("a", epoch)
	h.Record("b", epoch.Add(time.Minute))
	h.Record("a", epoch.Add(2*time.Minute))
	h.Record("c", epoch.Add(3*time.Minute))

	if got, want := lines(h.Entries()), []string{"a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
}

func TestHistorySearchPrefix(t *testing.T) {
	h := NewHistoryIndex(0)
	for i, line := range []string{"var set x 1", "echo hi", "var get x", "history top", "var list", "va"} {
		h.Record(line, epoch.Add(time.Duration(i)*time.Minute))
	}

	tests := []struct {
		prefix string
		want   []string
	}{
		{"var ", []string{"var get x", "var list", "var set x 1"}},
		{"va", []string{"va", "var get x", "var list", "var set x 1"}},
		{"h", []string{"history top"}},
		{"zzz", []string{}},
		{"", []string{"echo hi", "history top", "va", "var get x", "var list", "var set x 1"}},
	}
	for _, tt := range tests {
		if got := lines(h.SearchPrefix(tt.prefix)); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SearchPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestHistoryRecent(t *testing.T) {
	h := NewHistoryIndex(0)
	h.Record("b", epoch)
	h.Record("a", epoch.Add(time.Minute))
	h.Record("c", epoch.Add(2*time.Minute))

	if got, want := lines(h.Recent(2)), []string{"c", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Recent(2) = %v, want %v", got, want)
	}
	if got, want := lines(h.Recent(0)), []string{"c", "a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Recent(0) = %v, want %v", got, want)
	}
}

func TestHistoryTop(t *testing.T) {
	h := NewHistoryIndex(0)
	h.Record("rare", epoch.Add(-48*time.Hour))
	for i := 0; i < 3; i++ {
		h.Record("frequent", epoch.Add(-24*time.Hour))
	}
	h.Record("fresh", epoch)

	ranked := h.Top(3, epoch)
	got := make([]string, len(ranked))
	for i, r := range ranked {
		got[i] = r.Line
	}
	if want := []string{"frequent", "fresh", "rare"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Top(3) = %v, want %v", got, want)
	}
	if d := ranked[1].Score - 1.0; d > 1e-9 || d < -1e-9 {
		t.Errorf("score of fresh entry = %v, want 1", ranked[1].Score)
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistoryIndex(0)
	h.Record("a", epoch)
	h.Clear()
	if h.Len() != 0 || len(h.Entries()) != 0 {
		t.Errorf("history not empty after Clear")
	}
}
