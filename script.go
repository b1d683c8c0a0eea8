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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/cmdtree/parser"
	"github.com/schollz/progressbar/v3"
)

// readScript returns the lines of r that hold a command. Blank lines and
// lines starting with '#' are skipped.
func readScript(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return lines, nil
}

// runScript dispatches every command line of r in order and returns how many
// of them did not reach a command. Progress is drawn on progress unless it is
// nil.
func runScript(c *Console, r io.Reader, out io.Writer, progress io.Writer) (int, error) {
	lines, err := readScript(r)
	if err != nil {
		return 0, err
	}

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(len(lines),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("Running script..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionClearOnFinish(),
		)
	}

	failed := 0
	for i, line := range lines {
		outcome := c.Execute(line, out)
		if outcome.Kind != parser.Success {
			failed++
			c.log.WithField("line", i+1).Warnf("script line not dispatched: %s", outcome)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return failed, nil
}
