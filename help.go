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
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getUsageMessage(c *Console) string {
	message := fmt.Sprintf(`

 **cmdtree %s**

An interactive console built on a hierarchical command dispatcher.
Commands are organised in groups and may be abbreviated to any unique prefix.

Built with Go %s

# 1. Running
* cmdtree run: open the interactive console
* cmdtree exec var list: dispatch a single line and exit
* cmdtree exec --file script.txt: dispatch every line of a script
* cmdtree settings: show the configuration in ~/.cmdtree.yaml

# 2. Commands
%s

# 3. Matching
* A token selects the only command whose name starts with it
* A token matching several commands is reported as ambiguous
* A group reached without a sub-command lists its sub-commands

# Please be aware
* history copy on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), indentBlock(c.HelpMessage()))
	return string(markdown.Render(message, 80, 3))
}

// indentBlock turns text into an indented markdown code block.
func indentBlock(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}
