// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading, merging, and
// persistence for the dateleap demo. It uses Viper for file/env/flag
// parsing and exposes helpers to read and write configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ButtonConfig describes one shortcut button in the demo
// configuration, including the action it performs.
type ButtonConfig struct {
	Label     string `mapstructure:"label" yaml:"label"`
	AccessKey string `mapstructure:"accesskey" yaml:"accesskey,omitempty"`
	AriaLabel string `mapstructure:"aria_label" yaml:"aria_label,omitempty"`

	// Action is one of "set" (select today offset by Days), "clear",
	// or "copy" (copy the input's value to the clipboard).
	Action string `mapstructure:"action" yaml:"action"`
	Days   int    `mapstructure:"days" yaml:"days,omitempty"`
}

type Config struct {
	Theme   string         `mapstructure:"theme" yaml:"theme"`
	Label   string         `mapstructure:"label" yaml:"label"`
	Expand  bool           `mapstructure:"expand" yaml:"expand"`
	Debug   bool           `mapstructure:"debug" yaml:"debug"`
	Buttons []ButtonConfig `mapstructure:"buttons" yaml:"buttons,omitempty"`
}

// GetConfigPath returns the full path for the configuration file,
// either the system-wide or the user-specific one.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Dateleap")
		default:
			configDir = "/etc/dateleap"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "dateleap")
	}

	return filepath.Join(configDir, "dateleap.yaml"), nil
}

// LoadConfig merges defaults, the config file, DATELEAP_* environment
// variables, and the command's flags (in ascending precedence) into T.
// A missing config file is reported as viper.ConfigFileNotFoundError
// with the other sources still applied; callers decide whether that
// matters.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFilePath *string) (T, error) {
	var c T
	v := viper.New()

	for k, value := range defaults {
		v.SetDefault(k, value)
	}

	v.SetConfigName("dateleap")
	v.SetConfigType("yaml")

	// An explicit --config path has the highest file precedence.
	if configFilePath != nil {
		v.SetConfigFile(*configFilePath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("dateleap")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	))); err != nil {
		return c, err
	}

	return c, notFound
}

// WriteConfigFile marshals c to YAML at the user or system config
// path, creating directories as needed.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("could not marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// DefaultButtons is the button set used when the configuration
// defines none.
func DefaultButtons() []ButtonConfig {
	return []ButtonConfig{
		{Label: "Today", AccessKey: "t", AriaLabel: "jump to today", Action: "set"},
		{Label: "Next Week", AccessKey: "n", AriaLabel: "jump one week ahead", Action: "set", Days: 7},
		{Label: "Clear", AccessKey: "c", AriaLabel: "clear the selection", Action: "clear"},
	}
}
