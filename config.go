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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".cmdtree.yaml"

type ConsoleConfig struct {
	Prompt        string `yaml:"prompt"`
	Indent        int    `yaml:"indent"`
	HelpParagraph string `yaml:"help_paragraph"`
	Color         bool   `yaml:"color"`
}

type HistoryConfig struct {
	MaxEntries int `yaml:"max_entries"`
	ListSize   int `yaml:"list_size"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// File receives log lines while the interactive console owns the terminal.
	File string `yaml:"file"`
}

type Config struct {
	Console ConsoleConfig `yaml:"console"`
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`
}

var defaultConfig = Config{
	Console: ConsoleConfig{
		Prompt:        "> ",
		Indent:        18,
		HelpParagraph: "cmdtree console. Commands may be abbreviated to any unique prefix.",
		Color:         true,
	},
	History: HistoryConfig{
		MaxEntries: 500,
		ListSize:   10,
	},
	Log: LogConfig{
		Level: "warn",
	},
}

// LoadConfig reads ~/.cmdtree.yaml. A missing file yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the YAML file at path over the defaults, so keys left
// out of the file keep their default value. The defaults are returned along
// with any read or parse error.
func LoadConfigFrom(path string) (*Config, error) {
	cfg := defaultConfig

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return &cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	loaded := defaultConfig
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return &cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &loaded, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(path string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// displaySettings prints the active configuration, creating the default file
// first when none exists.
func displaySettings(w io.Writer, styles *Styles) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	created := false
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}
		created = true
	}

	cfg, err := LoadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, styles.Title.Render("cmdtree configuration"))
	if created {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", configPath)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprint(w, string(data))
	fmt.Fprintln(w, styles.Muted.Render("\nEdit the file to change the prompt, help indent, history size or log level."))
	return nil
}
