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
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/cybrota/cmdtree/parser"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

// Invocation is the argument handed to every console action: the line being
// dispatched and where its output goes.
type Invocation struct {
	Line string
	At   time.Time
	Out  io.Writer
}

// Console is the receiver every console command runs against.
type Console struct {
	config    *Config
	styles    *Styles
	log       logrus.FieldLogger
	vars      map[string]string
	history   *HistoryIndex
	helpCache *cache.Cache
	parser    *parser.Parser[*Console, *Invocation]
	quit      bool
	now       func() time.Time
}

// NewConsole builds a console and its command tree. It fails if any command
// was registered without an action.
func NewConsole(cfg *Config, logger logrus.FieldLogger) (*Console, error) {
	c := &Console{
		config:    cfg,
		styles:    NewStyles(cfg.Console.Color),
		log:       logger,
		vars:      make(map[string]string),
		history:   NewHistoryIndex(cfg.History.MaxEntries),
		helpCache: newDescribeCache(),
		now:       time.Now,
	}

	c.parser = parser.New(c, parser.Options[*Console, *Invocation]{
		HelpParagraph:     cfg.Console.HelpParagraph,
		Indent:            cfg.Console.Indent,
		OnHelp:            (*Console).printHelp,
		OnBadCommand:      (*Console).reportBadCommand,
		OnNeedsSubCommand: (*Console).reportNeedsSubCommand,
		OnTooManyMatches:  (*Console).reportTooManyMatches,
		Logger:            logger,
	})
	registerCommands(c.parser)

	if err := c.parser.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command tree: %w", err)
	}
	return c, nil
}

// Execute dispatches one line and writes its output to out. Lines that reach
// a command are recorded in the history.
func (c *Console) Execute(line string, out io.Writer) parser.Outcome {
	inv := &Invocation{Line: line, At: c.now(), Out: out}

	outcome := c.parser.Parse(line, inv)
	if outcome.Kind == parser.Success {
		c.history.Record(strings.Join(parser.Tokenize(line), " "), inv.At)
	}
	return outcome
}

// QuitRequested reports whether the quit command has run.
func (c *Console) QuitRequested() bool { return c.quit }

// HelpMessage returns the full command listing.
func (c *Console) HelpMessage() string { return c.parser.HelpMessage() }

func (c *Console) printHelp(inv *Invocation, msg string) {
	fmt.Fprintln(inv.Out, msg)
}

func (c *Console) reportBadCommand(inv *Invocation, msg string) {
	c.reject(inv, "bad_command", c.styles.Error.Render(msg))
}

func (c *Console) reportNeedsSubCommand(inv *Invocation, msg string) {
	c.reject(inv, "needs_sub_command", c.styles.Warning.Render(msg))
}

func (c *Console) reportTooManyMatches(inv *Invocation, msg string) {
	c.reject(inv, "too_many_matches", c.styles.Warning.Render(msg))
}

func (c *Console) reject(inv *Invocation, kind string, rendered string) {
	c.log.WithFields(logrus.Fields{"line": inv.Line, "outcome": kind}).Info("command rejected")
	fmt.Fprintln(inv.Out, rendered)
	fmt.Fprintln(inv.Out, c.styles.Muted.Render("Type 'help' to list the available commands."))
}

// usage prints the help line of the command at path as a usage hint.
func (c *Console) usage(inv *Invocation, path string) {
	if cmd, ok := c.parser.Lookup(path); ok {
		fmt.Fprintln(inv.Out, c.styles.Warning.Render("Usage:"))
		fmt.Fprintln(inv.Out, c.parser.Help(cmd))
	}
}

func (c *Console) fail(inv *Invocation, format string, args ...any) {
	fmt.Fprintln(inv.Out, c.styles.Error.Render(fmt.Sprintf(format, args...)))
}
