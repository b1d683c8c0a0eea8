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
	"sort"
	"strconv"
	"strings"

	"github.com/cybrota/cmdtree/parser"
	"github.com/mattn/go-shellwords"
)

func registerCommands(p *parser.Parser[*Console, *Invocation]) {
	p.Command("echo").
		Describe("Print the given text").
		ArgHelp("TEXT", false).
		Action((*Console).echo)

	p.Command("describe").
		Describe("Show help for one command or group").
		ArgHelp("COMMAND", false).
		Action((*Console).describe)

	p.Command("quit").
		Describe("Leave the console").
		Action((*Console).quitConsole)

	vars := p.Group("var").Describe("Manage session variables")
	vars.Command("get").
		Describe("Print a variable").
		ArgHelp("NAME", true).
		Action((*Console).varGet)
	vars.Command("list").
		Describe("List every variable").
		Action((*Console).varList)
	vars.Command("set").
		Describe("Set a variable").
		ArgHelp("NAME VALUE", true).
		Action((*Console).varSet)
	vars.Command("unset").
		Describe("Remove a variable").
		ArgHelp("NAME", true).
		Action((*Console).varUnset)

	history := p.Group("history").Describe("Inspect dispatched commands")
	history.Command("clear").
		Describe("Forget every recorded command").
		Action((*Console).historyClear)
	history.Command("copy").
		Describe("Copy the Nth most recent command to the clipboard").
		ArgHelp("N", true).
		Action((*Console).historyCopy)
	history.Command("list").
		Describe("List the most recent commands").
		ArgHelp("N", false).
		Action((*Console).historyList)
	history.Command("search").
		Describe("List recorded commands starting with PREFIX").
		ArgHelp("PREFIX", true).
		Action((*Console).historySearch)
	history.Command("top").
		Describe("List commands ranked by frequency and recency").
		ArgHelp("N", false).
		Action((*Console).historyTop)
}

func (c *Console) echo(inv *Invocation, args []string) {
	fmt.Fprintln(inv.Out, strings.Join(args, " "))
}

func (c *Console) quitConsole(inv *Invocation, _ []string) {
	c.quit = true
	fmt.Fprintln(inv.Out, c.styles.Muted.Render("Bye."))
}

func (c *Console) describe(inv *Invocation, args []string) {
	if len(args) == 0 {
		for _, cmd := range c.parser.Commands() {
			fmt.Fprintln(inv.Out, c.parser.Help(cmd))
		}
		return
	}

	path := strings.Join(args, " ")
	if text, ok := cachedDescription(c.helpCache, path); ok {
		fmt.Fprintln(inv.Out, text)
		return
	}

	cmd, ok := c.parser.Lookup(path)
	if !ok {
		c.fail(inv, "Unknown command: %s", path)
		return
	}
	text := c.parser.Help(cmd)
	cacheDescription(c.helpCache, path, text)
	fmt.Fprintln(inv.Out, text)
}

func (c *Console) varGet(inv *Invocation, args []string) {
	if len(args) != 1 {
		c.usage(inv, "var get")
		return
	}
	value, ok := c.vars[args[0]]
	if !ok {
		c.fail(inv, "Variable %s is not set", args[0])
		return
	}
	fmt.Fprintln(inv.Out, value)
}

func (c *Console) varList(inv *Invocation, _ []string) {
	if len(c.vars) == 0 {
		fmt.Fprintln(inv.Out, c.styles.Muted.Render("No variables set."))
		return
	}
	names := make([]string, 0, len(c.vars))
	for name := range c.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(inv.Out, "%s=%s\n", name, c.vars[name])
	}
}

func (c *Console) varSet(inv *Invocation, args []string) {
	if len(args) < 2 {
		c.usage(inv, "var set")
		return
	}
	// VALUE follows shell quoting rules, so quotes are stripped.
	words, err := shellwords.Parse(strings.Join(args[1:], " "))
	if err != nil {
		c.fail(inv, "Invalid value for %s: %v", args[0], err)
		return
	}
	c.vars[args[0]] = strings.Join(words, " ")
	c.log.WithField("name", args[0]).Debug("variable set")
}

func (c *Console) varUnset(inv *Invocation, args []string) {
	if len(args) != 1 {
		c.usage(inv, "var unset")
		return
	}
	if _, ok := c.vars[args[0]]; !ok {
		c.fail(inv, "Variable %s is not set", args[0])
		return
	}
	delete(c.vars, args[0])
}

func (c *Console) historyClear(inv *Invocation, _ []string) {
	c.history.Clear()
	fmt.Fprintln(inv.Out, c.styles.Muted.Render("History cleared."))
}

func (c *Console) historyCopy(inv *Invocation, args []string) {
	if len(args) != 1 {
		c.usage(inv, "history copy")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		c.fail(inv, "N must be a positive number, got %s", args[0])
		return
	}
	recent := c.history.Recent(n)
	if len(recent) < n {
		c.fail(inv, "Only %d commands recorded", len(recent))
		return
	}
	line := recent[n-1].Line
	if err := copyToClipboard(line); err != nil {
		c.log.WithError(err).Warn("failed to copy to clipboard")
		c.fail(inv, "Failed to copy to clipboard: %v", err)
		return
	}
	fmt.Fprintf(inv.Out, "Copied %s to clipboard.\n", c.styles.Success.Render(line))
}

func (c *Console) historyList(inv *Invocation, args []string) {
	n, ok := c.countArg(inv, args, "history list")
	if !ok {
		return
	}
	c.printEntries(inv, c.history.Recent(n))
}

func (c *Console) historySearch(inv *Invocation, args []string) {
	if len(args) == 0 {
		c.usage(inv, "history search")
		return
	}
	c.printEntries(inv, c.history.SearchPrefix(strings.Join(args, " ")))
}

func (c *Console) historyTop(inv *Invocation, args []string) {
	n, ok := c.countArg(inv, args, "history top")
	if !ok {
		return
	}
	ranked := c.history.Top(n, c.now())
	if len(ranked) == 0 {
		fmt.Fprintln(inv.Out, c.styles.Muted.Render("No commands recorded."))
		return
	}
	for i, r := range ranked {
		fmt.Fprintf(inv.Out, "%3d  %6.2f  %s\n", i+1, r.Score, r.Line)
	}
}

// countArg parses the optional N of the history listings, defaulting to the
// configured list size.
func (c *Console) countArg(inv *Invocation, args []string, path string) (int, bool) {
	switch len(args) {
	case 0:
		return c.config.History.ListSize, true
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			c.fail(inv, "N must be a positive number, got %s", args[0])
			return 0, false
		}
		return n, true
	default:
		c.usage(inv, path)
		return 0, false
	}
}

func (c *Console) printEntries(inv *Invocation, entries []HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(inv.Out, c.styles.Muted.Render("No commands recorded."))
		return
	}
	for i, e := range entries {
		fmt.Fprintf(inv.Out, "%3d  %s  %s\n", i+1, c.styles.Muted.Render(e.LastUsed.Format("2006-01-02 15:04:05")), e.Line)
	}
}
