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
	"os"
	"strings"

	"github.com/cybrota/cmdtree/parser"
	"github.com/spf13/cobra"
)

var version = "v0.1.0"

const asciiLogo = `
  ___ _ __ ___   __| | |_ _ __ ___  ___
 / __| '_ ` + "`" + ` _ \ / _` + "`" + ` | __| '__/ _ \/ _ \
| (__| | | | | | (_| | |_| | |  __/  __/
 \___|_| |_| |_|\__,_|\__|_|  \___|\___|
Hierarchical command console with unique-prefix dispatch [Version: %s]
`

// setup loads the configuration and builds a console whose log lines go to
// logOut.
func setup(logOut io.Writer, noColor bool) (*Console, error) {
	cfg, err := LoadConfig()
	logger := newLogger(cfg.Log, logOut)
	if err != nil {
		logger.WithError(err).Warn("failed to load configuration, using defaults")
	}
	if noColor {
		cfg.Console.Color = false
	}

	console, err := NewConsole(cfg, logger)
	if err != nil {
		return nil, err
	}
	return console, nil
}

func runInteractive(noColor bool) error {
	cfg, _ := LoadConfig()
	logFile, err := openLogFile(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	console, err := setup(logFile, noColor)
	if err != nil {
		return err
	}
	return runRepl(console)
}

func main() {
	logo := fmt.Sprintf(asciiLogo, version)
	var noColor bool

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Open the interactive console",
		Long:  fmt.Sprintf("%s\n%s", logo, `Run opens the interactive console`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(noColor)
		},
	}

	var cmdExec = &cobra.Command{
		Use:   "exec [command...]",
		Short: "Dispatch one command line, or a script with --file",
		Long:  fmt.Sprintf("%s\n%s", logo, `Exec dispatches a single command line and exits non-zero when it does not reach a command`),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			console, err := setup(os.Stderr, noColor)
			if err != nil {
				return err
			}

			file, _ := cmd.Flags().GetString("file")
			if file == "" {
				outcome := console.Execute(strings.Join(args, " "), cmd.OutOrStdout())
				if outcome.Kind != parser.Success {
					return fmt.Errorf("command not dispatched: %s", outcome.Kind)
				}
				return nil
			}

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open script: %w", err)
			}
			defer f.Close()

			failed, err := runScript(console, f, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d script lines were not dispatched", failed)
			}
			return nil
		},
	}
	cmdExec.Flags().StringP("file", "f", "", "read command lines from a script file")
	cmdExec.Flags().SetInterspersed(false)

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the cmdtree usage guide",
		Long:  fmt.Sprintf("%s\n%s", logo, `Usage displays the cmdtree usage guide and command listing`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			console, err := setup(os.Stderr, noColor)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), getUsageMessage(console))
			return nil
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout(), NewStyles(!noColor))
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print cmdtree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "cmdtree",
		Version:       version,
		Long:          logo,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to run command when no subcommand is provided
			return runInteractive(noColor)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(cmdRun, cmdExec, cmdUsage, cmdSettings, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
