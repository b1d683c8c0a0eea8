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
)

// Kind classifies the result of resolving one input line.
type Kind int

const (
	Success Kind = iota
	BadCommand
	NeedsSubCommand
	TooManyMatches
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case BadCommand:
		return "bad_command"
	case NeedsSubCommand:
		return "needs_sub_command"
	case TooManyMatches:
		return "too_many_matches"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is the terminal result of one Resolve call.
type Outcome struct {
	Kind Kind

	// Command is the full identifier of the command resolution stopped at:
	// the command that ran on Success, the group on NeedsSubCommand.
	Command string

	// Context is the full identifier of the group Token was matched against.
	// It is empty at the top level.
	Context string
	Token   string

	// Candidates lists sorted child identifiers: the matching ones on
	// TooManyMatches, every child on NeedsSubCommand.
	Candidates []string
}

// Input returns the offending token prefixed by its group context.
func (o Outcome) Input() string {
	if o.Context == "" {
		return o.Token
	}
	return o.Context + " " + o.Token
}

// Message formats the outcome for the user. Success has no message.
func (o Outcome) Message() string {
	switch o.Kind {
	case BadCommand:
		return "Bad Command: " + o.Input()
	case NeedsSubCommand:
		if o.Command == "" {
			return "Command requires a sub-command: " + formatList(o.Candidates)
		}
		return fmt.Sprintf("Command %s requires a sub-command: %s", o.Command, formatList(o.Candidates))
	case TooManyMatches:
		return fmt.Sprintf("Partial command %s matches more than one command: %s", o.Input(), formatList(o.Candidates))
	default:
		return ""
	}
}

func (o Outcome) String() string {
	if o.Kind == Success {
		return fmt.Sprintf("%s: %s", o.Kind, o.Command)
	}
	return fmt.Sprintf("%s: %s", o.Kind, o.Message())
}

func formatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
