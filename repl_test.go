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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sendKey(t *testing.T, m replModel, key tea.KeyType) (replModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	return next.(replModel), cmd
}

func submitLine(t *testing.T, m replModel, line string) (replModel, tea.Cmd) {
	t.Helper()
	m.input.SetValue(line)
	return sendKey(t, m, tea.KeyEnter)
}

func TestReplSubmit(t *testing.T) {
	c, _ := newTestConsole(t)
	m := newReplModel(c)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(replModel)
	if !m.ready {
		t.Fatal("model not ready after window size")
	}

	m, cmd := submitLine(t, m, "e hi")
	if cmd != nil {
		t.Errorf("submit returned a command before quit")
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}
	transcript := strings.Join(m.lines, "\n")
	if !strings.Contains(transcript, "e hi\nhi") {
		t.Errorf("transcript = %q", transcript)
	}
	if !strings.Contains(m.View(), "hi") {
		t.Errorf("view does not show output")
	}
}

func TestReplRecall(t *testing.T) {
	c, _ := newTestConsole(t)
	m := newReplModel(c)

	m, _ = submitLine(t, m, "echo one")
	m, _ = submitLine(t, m, "   ")
	m, _ = submitLine(t, m, "echo two")

	m, _ = sendKey(t, m, tea.KeyUp)
	if m.input.Value() != "echo two" {
		t.Errorf("first recall = %q, want echo two", m.input.Value())
	}
	m, _ = sendKey(t, m, tea.KeyUp)
	m, _ = sendKey(t, m, tea.KeyUp)
	if m.input.Value() != "echo one" {
		t.Errorf("recall past oldest = %q, want echo one", m.input.Value())
	}
	m, _ = sendKey(t, m, tea.KeyDown)
	m, _ = sendKey(t, m, tea.KeyDown)
	if m.input.Value() != "" {
		t.Errorf("recall past newest = %q, want empty", m.input.Value())
	}
}

func TestReplQuit(t *testing.T) {
	c, _ := newTestConsole(t)
	m := newReplModel(c)

	_, cmd := submitLine(t, m, "quit")
	if cmd == nil {
		t.Fatal("quit did not return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit command = %T, want tea.QuitMsg", cmd())
	}

	_, cmd = sendKey(t, newReplModel(c), tea.KeyEsc)
	if cmd == nil {
		t.Fatal("esc did not return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("esc command = %T, want tea.QuitMsg", cmd())
	}
}
