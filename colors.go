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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// Styles holds the lipgloss styles used for console output.
type Styles struct {
	Title   lipgloss.Style
	Prompt  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Border  lipgloss.Style
}

type palette struct {
	title, prompt, success, warning, failure, muted, border lipgloss.Color
}

var (
	lightPalette = palette{
		title:   "4",
		prompt:  "5",
		success: "2",
		warning: "3",
		failure: "1",
		muted:   "240",
		border:  "8",
	}
	darkPalette = palette{
		title:   "39",
		prompt:  "205",
		success: "46",
		warning: "11",
		failure: "196",
		muted:   "245",
		border:  "240",
	}
)

// detectTerminalMode guesses whether the terminal has a light or dark
// background from COLORFGBG, TERM_THEME and THEME. Dark is the default.
func detectTerminalMode() TerminalMode {
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		// "foreground;background"
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "7", "15", "255":
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		}
		if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	return TerminalModeDark
}

// NewStyles returns styles for the detected terminal mode, or unstyled
// output when color is false.
func NewStyles(color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title:   plain,
			Prompt:  plain,
			Success: plain,
			Warning: plain,
			Error:   plain,
			Muted:   plain,
			Border:  plain.BorderStyle(lipgloss.NormalBorder()),
		}
	}

	p := darkPalette
	if detectTerminalMode() == TerminalModeLight {
		p = lightPalette
	}

	return &Styles{
		Title:   lipgloss.NewStyle().Foreground(p.title).Bold(true),
		Prompt:  lipgloss.NewStyle().Foreground(p.prompt).Bold(true),
		Success: lipgloss.NewStyle().Foreground(p.success),
		Warning: lipgloss.NewStyle().Foreground(p.warning).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(p.failure).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(p.muted),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.border),
	}
}
