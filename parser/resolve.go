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
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Resolve walks the tree from the root, consuming one token per level, and
// runs the action of the command it lands on. The first call freezes the
// tree. Resolve panics with *UnboundActionError if it lands on a leaf that
// has no action.
func (p *Parser[R, A]) Resolve(tokens []string, arg A) Outcome {
	p.frozen.Store(true)

	out := p.resolveGroup(p.root, tokens, arg)
	p.log.WithFields(logrus.Fields{
		"input":   strings.Join(tokens, " "),
		"outcome": out.Kind.String(),
		"command": out.Command,
	}).Debug("resolved command")
	return out
}

func (p *Parser[R, A]) resolve(cmd Command[R, A], tokens []string, arg A) Outcome {
	switch c := cmd.(type) {
	case *Leaf[R, A]:
		if c.action == nil {
			panic(&UnboundActionError{Command: c.fullIdentifier})
		}
		args := make([]string, len(tokens))
		copy(args, tokens)
		c.action(p.receiver, arg, args)
		return Outcome{Kind: Success, Command: c.fullIdentifier}
	case *Group[R, A]:
		return p.resolveGroup(c, tokens, arg)
	default:
		panic(fmt.Sprintf("parser: unexpected command type %T", cmd))
	}
}

func (p *Parser[R, A]) resolveGroup(g *Group[R, A], tokens []string, arg A) Outcome {
	if len(tokens) == 0 {
		if g.action != nil {
			g.action(p.receiver, arg, []string{})
			return Outcome{Kind: Success, Command: g.fullIdentifier}
		}
		return Outcome{
			Kind:       NeedsSubCommand,
			Command:    g.fullIdentifier,
			Candidates: g.CommandIdentifiers(),
		}
	}

	head, rest := tokens[0], tokens[1:]
	matches := g.matchPrefix(head)
	switch len(matches) {
	case 0:
		return Outcome{Kind: BadCommand, Context: g.fullIdentifier, Token: head}
	case 1:
		return p.resolve(matches[0], rest, arg)
	default:
		candidates := make([]string, len(matches))
		for i, m := range matches {
			candidates[i] = m.Identifier()
		}
		return Outcome{
			Kind:       TooManyMatches,
			Context:    g.fullIdentifier,
			Token:      head,
			Candidates: candidates,
		}
	}
}

// matchPrefix returns the children whose identifier starts with token, in
// identifier order.
func (g *Group[R, A]) matchPrefix(token string) []Command[R, A] {
	var matches []Command[R, A]
	for _, c := range g.Children() {
		if strings.HasPrefix(c.Identifier(), token) {
			matches = append(matches, c)
		}
	}
	return matches
}
