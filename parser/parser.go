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

// Package parser dispatches space separated command lines against a tree of
// registered commands. Groups select among named children by unique prefix
// and leaves run the action bound to them. Anything else is reported back
// through the hooks in Options.
package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultIndent is the help column the description is aligned to.
	DefaultIndent = 18

	helpIdentifier  = "help"
	helpDescription = "Print this help message"
)

// Hook receives a formatted message for one kind of outcome.
type Hook[R, A any] func(receiver R, arg A, msg string)

// Options configures a Parser. It is fixed once New returns.
type Options[R, A any] struct {
	// HelpParagraph is printed above the command listing of the help command.
	HelpParagraph string
	// Indent overrides DefaultIndent when positive.
	Indent int

	OnHelp            Hook[R, A]
	OnBadCommand      Hook[R, A]
	OnNeedsSubCommand Hook[R, A]
	OnTooManyMatches  Hook[R, A]

	// Logger receives debug traces of every resolution. Nil discards them.
	Logger logrus.FieldLogger
}

// Parser owns a command tree and resolves input lines against it, running
// every action on the same receiver.
type Parser[R, A any] struct {
	receiver R
	opts     Options[R, A]
	root     *Group[R, A]
	log      logrus.FieldLogger
	frozen   atomic.Bool
}

// New creates a parser whose tree already holds the built-in help command.
func New[R, A any](receiver R, opts Options[R, A]) *Parser[R, A] {
	if opts.Indent <= 0 {
		opts.Indent = DefaultIndent
	}

	p := &Parser[R, A]{receiver: receiver, opts: opts, log: opts.Logger}
	if p.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		p.log = discard
	}
	p.root = &Group[R, A]{owner: p}

	p.Command(helpIdentifier).
		Describe(helpDescription).
		Action(func(receiver R, arg A, _ []string) {
			if p.opts.OnHelp != nil {
				p.opts.OnHelp(receiver, arg, p.HelpMessage())
			}
		})

	return p
}

// Receiver returns the value every action runs against.
func (p *Parser[R, A]) Receiver() R { return p.receiver }

// Indent returns the help column width in use.
func (p *Parser[R, A]) Indent() int { return p.opts.Indent }

// Command attaches a new top-level leaf.
func (p *Parser[R, A]) Command(identifier string) *Leaf[R, A] {
	return p.root.Command(identifier)
}

// Group attaches a new top-level group.
func (p *Parser[R, A]) Group(identifier string) *Group[R, A] {
	return p.root.Group(identifier)
}

// Commands returns the top-level commands sorted by identifier.
func (p *Parser[R, A]) Commands() []Command[R, A] {
	return p.root.Children()
}

// CommandIdentifiers returns the sorted identifiers of the top-level commands.
func (p *Parser[R, A]) CommandIdentifiers() []string {
	return p.root.CommandIdentifiers()
}

// Lookup finds the command whose full identifier is path. Tokens must match
// identifiers exactly, no prefix matching is applied.
func (p *Parser[R, A]) Lookup(path string) (Command[R, A], bool) {
	tokens := Tokenize(path)
	if len(tokens) == 0 {
		return nil, false
	}

	var cmd Command[R, A] = p.root
	for _, token := range tokens {
		g, ok := cmd.(*Group[R, A])
		if !ok {
			return nil, false
		}
		if cmd, ok = g.child(token); !ok {
			return nil, false
		}
	}
	return cmd, true
}

// Walk visits every command depth-first, siblings in identifier order.
func (p *Parser[R, A]) Walk(fn func(Command[R, A])) {
	var walk func(g *Group[R, A])
	walk = func(g *Group[R, A]) {
		for _, c := range g.Children() {
			fn(c)
			if sub, ok := c.(*Group[R, A]); ok {
				walk(sub)
			}
		}
	}
	walk(p.root)
}

// Validate reports every leaf that has no action bound. Run it after setup
// to catch mistakes before a user reaches them.
func (p *Parser[R, A]) Validate() error {
	var errs []error
	p.Walk(func(c Command[R, A]) {
		if l, ok := c.(*Leaf[R, A]); ok && !l.Bound() {
			errs = append(errs, &UnboundActionError{Command: l.FullIdentifier()})
		}
	})
	return errors.Join(errs...)
}

// Parse splits command on spaces, resolves it and hands the outcome to the
// matching hook.
func (p *Parser[R, A]) Parse(command string, arg A) Outcome {
	out := p.Resolve(Tokenize(command), arg)
	p.Report(out, arg)
	return out
}

// Report passes the message of out to the hook for its kind. Outcomes without
// a hook are dropped.
func (p *Parser[R, A]) Report(out Outcome, arg A) {
	var hook Hook[R, A]
	switch out.Kind {
	case Success:
		return
	case BadCommand:
		hook = p.opts.OnBadCommand
	case NeedsSubCommand:
		hook = p.opts.OnNeedsSubCommand
	case TooManyMatches:
		hook = p.opts.OnTooManyMatches
	}

	if hook == nil {
		p.log.WithField("outcome", out.Kind.String()).Debug("no hook set, dropping outcome")
		return
	}
	hook(p.receiver, arg, out.Message())
}

// Tokenize splits command on literal spaces and drops empty tokens. There is
// no quoting.
func Tokenize(command string) []string {
	parts := strings.Split(command, " ")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

func (p *Parser[R, A]) mustBeMutable(identifier string) {
	if p.frozen.Load() {
		panic(fmt.Errorf("modify %q: %w", identifier, ErrTreeFrozen))
	}
}
