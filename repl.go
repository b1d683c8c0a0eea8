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
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const replBanner = `# cmdtree

Type a command and press **enter**. Any unique prefix of a command name works,
so ` + "`h l`" + ` runs ` + "`history list`" + `.

* ` + "`help`" + ` lists every command
* ` + "`quit`" + `, **esc** or **ctrl+c** leaves the console
* **up**/**down** recall earlier lines, **pgup**/**pgdown** scroll the output
`

// replModel is the Bubble Tea model of the interactive console.
type replModel struct {
	console *Console
	ready   bool

	input      textinput.Model
	transcript viewport.Model
	lines      []string

	// Lines submitted this session, oldest first, and the recall cursor.
	submitted []string
	recall    int

	width  int
	height int
}

func newReplModel(c *Console) replModel {
	ti := textinput.New()
	ti.Prompt = c.styles.Prompt.Render(c.config.Console.Prompt)
	ti.Placeholder = "help"
	ti.CharLimit = 512
	ti.Width = 50
	ti.Focus()

	vp := viewport.New(0, 0)

	m := replModel{
		console:    c,
		input:      ti,
		transcript: vp,
	}
	m.lines = append(m.lines, renderBanner(c))
	return m
}

// renderBanner renders the welcome text with glamour, falling back to the raw
// markdown when color is off or rendering fails.
func renderBanner(c *Console) string {
	if !c.config.Console.Color {
		return replBanner
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		c.log.WithError(err).Debug("glamour renderer unavailable")
		return replBanner
	}
	out, err := r.Render(replBanner)
	if err != nil {
		c.log.WithError(err).Debug("failed to render banner")
		return replBanner
	}
	return strings.TrimRight(out, "\n")
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "up":
			m.recallLine(-1)
			return m, nil
		case "down":
			m.recallLine(1)
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.transcript, cmd = m.transcript.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit runs the current input line and appends its output to the
// transcript.
func (m replModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	if strings.TrimSpace(line) != "" {
		m.submitted = append(m.submitted, line)
	}
	m.recall = len(m.submitted)

	var out bytes.Buffer
	m.console.Execute(line, &out)

	m.lines = append(m.lines, m.input.Prompt+line)
	if text := strings.TrimRight(out.String(), "\n"); text != "" {
		m.lines = append(m.lines, text)
	}
	m.refresh()

	if m.console.QuitRequested() {
		return m, tea.Quit
	}
	return m, nil
}

// recallLine moves the recall cursor by delta and loads that line into the
// input. Moving past the newest line clears the input.
func (m *replModel) recallLine(delta int) {
	if len(m.submitted) == 0 {
		return
	}
	m.recall += delta
	if m.recall < 0 {
		m.recall = 0
	}
	if m.recall >= len(m.submitted) {
		m.recall = len(m.submitted)
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.submitted[m.recall])
	m.input.CursorEnd()
}

func (m *replModel) refresh() {
	m.transcript.SetContent(strings.Join(m.lines, "\n"))
	m.transcript.GotoBottom()
}

func (m *replModel) updateLayout() {
	inputHeight := 3
	m.input.Width = m.width - 6
	m.transcript.Width = m.width - 2
	m.transcript.Height = m.height - inputHeight - 3
	if m.transcript.Height < 1 {
		m.transcript.Height = 1
	}
	m.refresh()
}

func (m replModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	styles := m.console.styles
	output := styles.Border.
		Width(m.width - 2).
		Render(m.transcript.View())
	input := styles.Border.
		Width(m.width - 2).
		Render(m.input.View())
	footer := styles.Muted.Render("enter: run • ↑/↓: recall • pgup/pgdown: scroll • esc: quit")

	return lipgloss.JoinVertical(lipgloss.Left, output, input, footer)
}

// runRepl starts the interactive console.
func runRepl(c *Console) error {
	program := tea.NewProgram(
		newReplModel(c),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
