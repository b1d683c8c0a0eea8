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
	"sort"
)

// Action is bound to a command and runs when resolution reaches it. args holds
// every token left over after the command's identifier.
type Action[R, A any] func(receiver R, arg A, args []string)

// Command is a node of the command tree. It is implemented by *Leaf and *Group
// only; callers switch on the concrete type.
type Command[R, A any] interface {
	// Identifier is the token that selects this command among its siblings.
	Identifier() string
	// FullIdentifier is the identifier prefixed by every ancestor's identifier,
	// space separated, e.g. "connections list all".
	FullIdentifier() string
	Description() string
	// Parent returns the enclosing group, or nil for top-level commands.
	Parent() *Group[R, A]

	command()
}

type node struct {
	identifier     string
	fullIdentifier string
	description    string
}

func (n *node) Identifier() string     { return n.identifier }
func (n *node) FullIdentifier() string { return n.fullIdentifier }
func (n *node) Description() string    { return n.description }
func (n *node) command()               {}

// Leaf is a command bound to an action. It is terminal in the tree.
type Leaf[R, A any] struct {
	node
	parent      *Group[R, A]
	owner       *Parser[R, A]
	action      Action[R, A]
	argHelp     string
	argRequired bool
}

// Describe sets the one-line description shown in help output.
func (l *Leaf[R, A]) Describe(description string) *Leaf[R, A] {
	l.owner.mustBeMutable(l.fullIdentifier)
	l.description = description
	return l
}

// ArgHelp sets the argument placeholder printed after the command in help
// output. Required placeholders print bare, optional ones in brackets.
func (l *Leaf[R, A]) ArgHelp(placeholder string, required bool) *Leaf[R, A] {
	l.owner.mustBeMutable(l.fullIdentifier)
	l.argHelp = placeholder
	l.argRequired = required
	return l
}

// Action binds the function run when this command is selected.
func (l *Leaf[R, A]) Action(action Action[R, A]) *Leaf[R, A] {
	l.owner.mustBeMutable(l.fullIdentifier)
	l.action = action
	return l
}

func (l *Leaf[R, A]) Parent() *Group[R, A] { return l.parent.exposed() }

func (l *Leaf[R, A]) ArgPlaceholder() string { return l.argHelp }
func (l *Leaf[R, A]) ArgRequired() bool      { return l.argRequired }

// Bound reports whether an action has been bound.
func (l *Leaf[R, A]) Bound() bool { return l.action != nil }

// Group is a command whose only job is selecting among named children.
type Group[R, A any] struct {
	node
	parent   *Group[R, A]
	owner    *Parser[R, A]
	children []Command[R, A]
	action   Action[R, A]
}

// Describe sets the one-line description shown in help output.
func (g *Group[R, A]) Describe(description string) *Group[R, A] {
	g.owner.mustBeMutable(g.fullIdentifier)
	g.description = description
	return g
}

// Action binds a function run when the group is invoked with no further
// tokens. Without one, a bare group reports that it needs a sub-command.
func (g *Group[R, A]) Action(action Action[R, A]) *Group[R, A] {
	g.owner.mustBeMutable(g.fullIdentifier)
	g.action = action
	return g
}

// Command attaches a new leaf under g and returns it for configuration.
func (g *Group[R, A]) Command(identifier string) *Leaf[R, A] {
	l := &Leaf[R, A]{node: g.childNode(identifier), parent: g, owner: g.owner}
	g.children = append(g.children, l)
	return l
}

// Group attaches a new sub-group under g and returns it for configuration.
func (g *Group[R, A]) Group(identifier string) *Group[R, A] {
	sub := &Group[R, A]{node: g.childNode(identifier), parent: g, owner: g.owner}
	g.children = append(g.children, sub)
	return sub
}

func (g *Group[R, A]) Parent() *Group[R, A] { return g.parent.exposed() }

// Bound reports whether a group action has been bound.
func (g *Group[R, A]) Bound() bool { return g.action != nil }

// Children returns the direct children sorted by identifier.
func (g *Group[R, A]) Children() []Command[R, A] {
	sorted := make([]Command[R, A], len(g.children))
	copy(sorted, g.children)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Identifier() < sorted[j].Identifier()
	})
	return sorted
}

// CommandIdentifiers returns the identifiers of the direct children, sorted.
func (g *Group[R, A]) CommandIdentifiers() []string {
	children := g.Children()
	ids := make([]string, len(children))
	for i, c := range children {
		ids[i] = c.Identifier()
	}
	return ids
}

// child returns the direct child with exactly the given identifier.
func (g *Group[R, A]) child(identifier string) (Command[R, A], bool) {
	for _, c := range g.Children() {
		if c.Identifier() == identifier {
			return c, true
		}
	}
	return nil, false
}

func (g *Group[R, A]) childNode(identifier string) node {
	g.owner.mustBeMutable(identifier)
	full := identifier
	if g.fullIdentifier != "" {
		full = g.fullIdentifier + " " + identifier
	}
	return node{identifier: identifier, fullIdentifier: full}
}

// exposed hides the parser's root group from Parent.
func (g *Group[R, A]) exposed() *Group[R, A] {
	if g == nil || g == g.owner.root {
		return nil
	}
	return g
}
