// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dateleap/dateleap/config"
	"github.com/dateleap/dateleap/datepicker"
	"github.com/dateleap/dateleap/host"
	"github.com/dateleap/dateleap/internal/logging"
	"github.com/dateleap/dateleap/panel"
	"github.com/dateleap/dateleap/util/slicest"
)

type appKeyMap struct {
	Quit key.Binding
}

var defaultAppKeys = appKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// app is the top-level Bubble Tea model: the date picker plus quit
// handling and plugin teardown on exit.
type app struct {
	picker *datepicker.Model
	keys   appKeyMap
}

func newApp(cfg config.Config) *app {
	var picker *datepicker.Model

	pcfg := panel.Config{
		Buttons: buttonsFromConfig(cfg.Buttons),
		Label:   cfg.Label,
		Theme:   cfg.Theme,
		Expand:  cfg.Expand,
		OnClick: func(i int, _ host.Host) {
			applyAction(cfg.Buttons[i], picker)
		},
	}

	picker = datepicker.New(
		datepicker.WithPlugins(panel.New(pcfg)),
		datepicker.WithTheme(cfg.Theme),
	)
	return &app{picker: picker, keys: defaultAppKeys}
}

func buttonsFromConfig(bcs []config.ButtonConfig) []panel.Button {
	return slicest.Map(bcs, func(bc config.ButtonConfig) panel.Button {
		attrs := map[string]string{}
		if bc.AccessKey != "" {
			attrs[host.AttrAccessKey] = bc.AccessKey
		}
		if bc.AriaLabel != "" {
			attrs[host.AttrAriaLabel] = bc.AriaLabel
		}
		return panel.Button{Label: bc.Label, Attributes: attrs}
	})
}

func applyAction(bc config.ButtonConfig, picker *datepicker.Model) {
	switch bc.Action {
	case "set", "":
		picker.SetDate(time.Now().AddDate(0, 0, bc.Days))
	case "clear":
		picker.Clear()
	case "copy":
		if err := clipboard.WriteAll(picker.Input().Value()); err != nil {
			logging.Errorf("clipboard: %v", err)
		}
	default:
		logging.Warnf("unknown button action %q", bc.Action)
	}
}

func (a *app) Init() tea.Cmd {
	return a.picker.Init()
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, a.keys.Quit) {
		a.picker.Destroy()
		return a, tea.Quit
	}
	return a, a.picker.Update(msg)
}

func (a *app) View() string {
	return a.picker.View() + "\n"
}
