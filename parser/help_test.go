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

package parser

import (
	"strings"
	"testing"
)

func pad(n int) string { return strings.Repeat(" ", n) }

func TestLeafHelp(t *testing.T) {
	p := New(&receiver{}, Options[*receiver, int]{})

	tests := []struct {
		leaf     *Leaf[*receiver, int]
		expected string
	}{
		{
			p.Command("test1").Describe("Test command 1"),
			"test1" + pad(DefaultIndent-5) + "Test command 1",
		},
		{
			p.Command("testTestTestTestTest2").Describe("Test command 2"),
			"testTestTestTestTest2\n" + pad(DefaultIndent) + "Test command 2",
		},
		{
			p.Command(strings.Repeat("t", DefaultIndent)).Describe("Test command 3"),
			strings.Repeat("t", DefaultIndent) + "\n" + pad(DefaultIndent) + "Test command 3",
		},
		{
			p.Command("test4").Describe("Test command 4").ArgHelp("T", true),
			"test4 T" + pad(DefaultIndent-7) + "Test command 4",
		},
		{
			p.Command("testTestTest5").Describe("Test command 5").ArgHelp("TTTTTT", true),
			"testTestTest5 TTTTTT\n" + pad(DefaultIndent) + "Test command 5",
		},
		{
			p.Command("test6").Describe("Test command 6").ArgHelp("TT", false),
			"test6 [TT]" + pad(DefaultIndent-10) + "Test command 6",
		},
		{
			p.Command("test7"),
			"test7" + pad(DefaultIndent-5),
		},
	}

	for _, tc := range tests {
		t.Run(tc.leaf.Identifier(), func(t *testing.T) {
			if got := p.Help(tc.leaf); got != tc.expected {
				t.Errorf("Help(%s) = %q; want %q", tc.leaf.Identifier(), got, tc.expected)
			}
		})
	}
}

func TestGroupHelp(t *testing.T) {
	p := New(&receiver{}, Options[*receiver, int]{})

	test8 := p.Group("test8").Describe("Test command 8")
	// Registered out of order on purpose.
	test8.Command("sub8-2").Describe("SubCommand 8-2")
	test8.Command("sub8-1").Describe("SubCommand 8-1")
	nested := test8.Group("nested").Describe("Nested group")
	nested.Command("leaf").Describe("Deep leaf").ArgHelp("N", false)

	expected := "test8 {nested, sub8-1, sub8-2}\n" +
		pad(DefaultIndent) + "Test command 8\n" +
		"test8 nested {leaf}\n" +
		pad(DefaultIndent) + "Nested group\n" +
		"test8 nested leaf [N]\n" +
		pad(DefaultIndent) + "Deep leaf\n" +
		"test8 sub8-1" + pad(DefaultIndent-12) + "SubCommand 8-1\n" +
		"test8 sub8-2" + pad(DefaultIndent-12) + "SubCommand 8-2"

	if got := p.Help(test8); got != expected {
		t.Errorf("Help(test8) =\n%s\nwant\n%s", got, expected)
	}
}

func TestGroupHelpShortHead(t *testing.T) {
	p := New(&receiver{}, Options[*receiver, int]{})
	g := p.Group("g").Describe("Short group")
	g.Command("a").Describe("A")

	expected := "g {a}" + pad(DefaultIndent-5) + "Short group\n" +
		"g a" + pad(DefaultIndent-3) + "A"
	if got := p.Help(g); got != expected {
		t.Errorf("Help(g) = %q; want %q", got, expected)
	}
}

func TestHelpMessage(t *testing.T) {
	p := New(&receiver{}, Options[*receiver, int]{HelpParagraph: "A test console."})
	p.Command("zeta").Describe("Last")
	p.Command("alpha").Describe("First")

	expected := "A test console.\n\nCommands:\n" +
		"alpha" + pad(DefaultIndent-5) + "First\n" +
		"help" + pad(DefaultIndent-4) + "Print this help message\n" +
		"zeta" + pad(DefaultIndent-4) + "Last"
	if got := p.HelpMessage(); got != expected {
		t.Errorf("HelpMessage() = %q; want %q", got, expected)
	}
}

func TestHelpCustomIndent(t *testing.T) {
	p := New(&receiver{}, Options[*receiver, int]{Indent: 8})
	short := p.Command("abc").Describe("d")
	long := p.Command("abcdefgh").Describe("d")

	if got, want := p.Help(short), "abc"+pad(5)+"d"; got != want {
		t.Errorf("Help(abc) = %q; want %q", got, want)
	}
	if got, want := p.Help(long), "abcdefgh\n"+pad(8)+"d"; got != want {
		t.Errorf("Help(abcdefgh) = %q; want %q", got, want)
	}
}

func TestHelpAlignment(t *testing.T) {
	for n := 1; n <= DefaultIndent+3; n++ {
		head := strings.Repeat("x", n)
		got := alignHelp(head, "desc", DefaultIndent)
		if n < DefaultIndent {
			if strings.Index(got, "desc") != DefaultIndent || strings.Contains(got, "\n") {
				t.Errorf("alignHelp(len %d) = %q; want desc at column %d", n, got, DefaultIndent)
			}
			continue
		}
		lines := strings.Split(got, "\n")
		if len(lines) != 2 || lines[0] != head || lines[1] != pad(DefaultIndent)+"desc" {
			t.Errorf("alignHelp(len %d) = %q; want desc on next line", n, got)
		}
	}
}
