// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLookupKnownThemes(t *testing.T) {
	for _, name := range []string{"light", "dark"} {
		th := Lookup(name)
		if th == nil || th.Name != name {
			t.Fatalf("Lookup(%q) = %v", name, th)
		}
	}
}

func TestLookupFallsBackToDefault(t *testing.T) {
	th := Lookup("no-such-theme")
	if th == nil || th.Name != DefaultName {
		t.Fatalf("expected fallback to %q, got %v", DefaultName, th)
	}
}

func TestStyleMergesLaterClassesOverEarlier(t *testing.T) {
	th := &Theme{
		Name: "test",
		Styles: map[string]lipgloss.Style{
			"base":     lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
			"override": lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		},
	}

	st := th.Style("base", "override")
	if got := st.GetForeground(); got != lipgloss.Color("2") {
		t.Fatalf("foreground = %v, want later class to win", got)
	}
	if !st.GetBold() {
		t.Fatalf("bold from earlier class should survive the merge")
	}
}

func TestStyleMergeKeepsPaddingAndMargins(t *testing.T) {
	th := &Theme{
		Name: "test",
		Styles: map[string]lipgloss.Style{
			"padded":  lipgloss.NewStyle().Padding(1, 2).Margin(0, 1),
			"colored": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		},
	}

	st := th.Style("padded", "colored")
	if top, right, _, _ := st.GetPadding(); top != 1 || right != 2 {
		t.Fatalf("padding lost in merge: top=%d right=%d", top, right)
	}
	if _, right, _, _ := st.GetMargin(); right != 1 {
		t.Fatalf("margin lost in merge")
	}
}

func TestFocusedButtonKeepsPadding(t *testing.T) {
	th := Lookup("light")
	blurred := th.Style("dateleap-button")
	focused := th.Style("dateleap-button", FocusedClass)

	if got, want := focused.GetPaddingLeft(), blurred.GetPaddingLeft(); got != want {
		t.Fatalf("focus changed padding: %d, want %d", got, want)
	}
	if focused.GetPaddingLeft() == 0 {
		t.Fatalf("button padding missing entirely")
	}
}

func TestMergeOverrideWins(t *testing.T) {
	over := lipgloss.NewStyle().Padding(0, 3)
	under := lipgloss.NewStyle().Padding(1, 1).Bold(true)

	st := Merge(over, under)
	if _, right, _, _ := st.GetPadding(); right != 3 {
		t.Fatalf("override padding should win, got right=%d", right)
	}
	if !st.GetBold() {
		t.Fatalf("unset properties should come from under")
	}
}

func TestStyleIgnoresUnknownClasses(t *testing.T) {
	th := Lookup(DefaultName)
	st := th.Style("definitely-not-styled")
	if st.Render("x") != lipgloss.NewStyle().Render("x") {
		t.Fatalf("unknown class should contribute nothing")
	}
}

func TestRegisterReplaces(t *testing.T) {
	custom := &Theme{Name: "custom", Styles: map[string]lipgloss.Style{}}
	Register(custom)
	if Lookup("custom") != custom {
		t.Fatalf("registered theme not returned")
	}
}
