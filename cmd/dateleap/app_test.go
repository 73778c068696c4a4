// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dateleap/dateleap/config"
	"github.com/dateleap/dateleap/element"
	"github.com/dateleap/dateleap/host"
	"github.com/dateleap/dateleap/panel"
)

func TestButtonsFromConfig(t *testing.T) {
	bcs := []config.ButtonConfig{
		{Label: "Today", AccessKey: "t", AriaLabel: "jump to today", Action: "set"},
		{Label: "Clear", Action: "clear"},
	}
	buttons := buttonsFromConfig(bcs)
	if len(buttons) != 2 {
		t.Fatalf("got %d buttons, want 2", len(buttons))
	}
	if buttons[0].Label != "Today" {
		t.Fatalf("label not carried over")
	}
	if buttons[0].Attributes[host.AttrAccessKey] != "t" {
		t.Fatalf("accesskey not mapped")
	}
	if buttons[0].Attributes[host.AttrAriaLabel] != "jump to today" {
		t.Fatalf("aria-label not mapped")
	}
	if len(buttons[1].Attributes) != 0 {
		t.Fatalf("empty attributes should stay empty, got %v", buttons[1].Attributes)
	}
}

func TestApplyActionSetAndClear(t *testing.T) {
	a := newApp(config.Config{})
	picker := a.picker

	applyAction(config.ButtonConfig{Action: "set", Days: 7}, picker)
	if picker.Value() == nil {
		t.Fatalf("set action should select a date")
	}
	want := time.Now().AddDate(0, 0, 7)
	if got := *picker.Value(); got.Year() != want.Year() || got.YearDay() != want.YearDay() {
		t.Fatalf("set action selected %v, want a week ahead", got)
	}

	applyAction(config.ButtonConfig{Action: "clear"}, picker)
	if picker.Value() != nil || picker.Input().Value() != "" {
		t.Fatalf("clear action should drop the selection")
	}
}

func TestApplyActionEmptyMeansSet(t *testing.T) {
	a := newApp(config.Config{})
	picker := a.picker

	applyAction(config.ButtonConfig{}, picker)
	if picker.Value() == nil {
		t.Fatalf("empty action should behave like set")
	}
}

func TestApplyActionUnknownIsInert(t *testing.T) {
	a := newApp(config.Config{})
	picker := a.picker
	picker.SetDate(time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC))

	applyAction(config.ButtonConfig{Action: "claer"}, picker)
	if picker.Value() == nil || picker.Value().Day() != 25 {
		t.Fatalf("misspelled action should leave the selection untouched")
	}
}

func TestAppClickShortcutSetsDate(t *testing.T) {
	cfg := config.Config{
		Label:   "Jump to",
		Buttons: config.DefaultButtons(),
	}
	a := newApp(cfg)
	a.picker.Open()

	cal := a.picker.Calendar()
	if cal == nil {
		t.Fatalf("calendar not built on open")
	}
	wrapper := cal.Root().Find(panel.ClassWrapper)
	if wrapper == nil {
		t.Fatalf("panel not mounted into the calendar")
	}
	buttons := wrapper.Find(panel.ClassButtons).Children()
	if len(buttons) != len(cfg.Buttons) {
		t.Fatalf("got %d rendered buttons, want %d", len(buttons), len(cfg.Buttons))
	}

	// First default button is "Today".
	buttons[0].Dispatch(&element.Event{Type: element.Click})
	if a.picker.Value() == nil {
		t.Fatalf("clicking Today should select a date")
	}
	now := time.Now()
	if got := *a.picker.Value(); got.YearDay() != now.YearDay() {
		t.Fatalf("Today selected %v", got)
	}

	// Last default button clears again.
	buttons[len(buttons)-1].Dispatch(&element.Event{Type: element.Click})
	if a.picker.Value() != nil {
		t.Fatalf("clicking Clear should drop the selection")
	}
}

func TestAppQuitDestroysPlugins(t *testing.T) {
	cfg := config.Config{Buttons: config.DefaultButtons()}
	a := newApp(cfg)
	a.picker.Open()

	model, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if model != a || cmd == nil {
		t.Fatalf("quit key should return the model with a quit command")
	}

	// After teardown the panel no longer reacts to clicks.
	wrapper := a.picker.Calendar().Root().Find(panel.ClassWrapper)
	buttons := wrapper.Find(panel.ClassButtons).Children()
	buttons[0].Dispatch(&element.Event{Type: element.Click})
	if a.picker.Value() != nil {
		t.Fatalf("click after destroy should be inert")
	}
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"theme", "label", "expand", "debug"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Fatalf("flag --%s missing", name)
		}
	}
	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Fatalf("persistent --config flag missing")
	}
}
