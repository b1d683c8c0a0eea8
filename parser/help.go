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
	"unicode/utf8"
)

// RenderHelp renders cmd and, for groups, every descendant. Each entry is its
// head (full identifier plus argument placeholder or child list) followed by
// the description at column indent. Heads too long for the column push the
// description to the next line.
func RenderHelp[R, A any](cmd Command[R, A], indent int) string {
	switch c := cmd.(type) {
	case *Leaf[R, A]:
		return alignHelp(leafHead(c), c.description, indent)
	case *Group[R, A]:
		var b strings.Builder
		head := c.fullIdentifier + " {" + strings.Join(c.CommandIdentifiers(), ", ") + "}"
		b.WriteString(alignHelp(head, c.description, indent))
		for _, child := range c.Children() {
			b.WriteByte('\n')
			b.WriteString(RenderHelp(child, indent))
		}
		return b.String()
	default:
		return ""
	}
}

// Help renders cmd with the parser's indent.
func (p *Parser[R, A]) Help(cmd Command[R, A]) string {
	return RenderHelp(cmd, p.opts.Indent)
}

// HelpMessage renders the whole tree the way the built-in help command
// prints it.
func (p *Parser[R, A]) HelpMessage() string {
	commands := p.root.Children()
	entries := make([]string, len(commands))
	for i, c := range commands {
		entries[i] = p.Help(c)
	}
	return p.opts.HelpParagraph + "\n\nCommands:\n" + strings.Join(entries, "\n")
}

func leafHead[R, A any](l *Leaf[R, A]) string {
	switch {
	case l.argHelp == "":
		return l.fullIdentifier
	case l.argRequired:
		return l.fullIdentifier + " " + l.argHelp
	default:
		return l.fullIdentifier + " [" + l.argHelp + "]"
	}
}

func alignHelp(head, description string, indent int) string {
	if n := utf8.RuneCountInString(head); n < indent {
		return head + strings.Repeat(" ", indent-n) + description
	}
	return head + "\n" + strings.Repeat(" ", indent) + description
}
