// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the dateleap demo command line using Cobra: a
// single root command that loads the configuration and runs the date
// picker with the shortcut button panel attached.

package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dateleap/dateleap/buildvars"
	"github.com/dateleap/dateleap/config"
	"github.com/dateleap/dateleap/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

var rootCmd *cobra.Command

func init() {
	rootCmd = newRootCmd()
}

// newRootCmd creates and configures a new root cobra command. Tests
// use it to build fresh instances.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dateleap",
		Short:   "A date picker with configurable shortcut buttons",
		Version: buildvars.VersionOrDefault("dev"),
		RunE:    run,
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: dateleap.yaml in the user config dir)")
	cmd.Flags().String("theme", "", "theme name (light, dark)")
	cmd.Flags().String("label", "", "label shown above the shortcut buttons")
	cmd.Flags().Bool("expand", false, "widen the calendar and mount the panel beside it")
	cmd.Flags().Bool("debug", false, "write debug logs to dateleap.log")
	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	var extra *string
	if cfgFile != "" {
		extra = &cfgFile
	}
	defaults := map[string]any{"theme": "light", "label": "Jump to"}
	cfg, err := config.LoadConfig[config.Config](cmd, defaults, extra)
	if err != nil {
		// Running without a config file is fine; defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	if len(cfg.Buttons) == 0 {
		cfg.Buttons = config.DefaultButtons()
	}

	logging.SetDebug(cfg.Debug)
	if cfg.Debug {
		f, err := os.OpenFile("dateleap.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logging.SetOutput(f)
	}

	_, err = tea.NewProgram(newApp(cfg)).Run()
	return err
}
