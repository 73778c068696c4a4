// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

// Package theme maps semantic class names to lipgloss styles. The
// class names rendered into the element tree are a stable contract;
// themes only decide how those classes look.
package theme

import "github.com/charmbracelet/lipgloss"

// DefaultName is the theme applied when a widget or plugin does not
// name one.
const DefaultName = "light"

// FocusedClass is the pseudo-class merged in when a node holds
// keyboard focus.
const FocusedClass = "focused"

type Theme struct {
	Name   string
	Styles map[string]lipgloss.Style
}

// Style resolves the merged style for a class list. Later classes win
// on conflicting properties; classes without an entry contribute
// nothing.
func (t *Theme) Style(classes ...string) lipgloss.Style {
	st := lipgloss.NewStyle()
	for _, c := range classes {
		if s, ok := t.Styles[c]; ok {
			st = Merge(s, st)
		}
	}
	return st
}

// Merge lays over on top of under: properties set on over win, the
// rest come from under. lipgloss's Inherit does not carry padding or
// margins, so those are copied explicitly when over leaves them unset.
func Merge(over, under lipgloss.Style) lipgloss.Style {
	st := over.Inherit(under)
	if t, r, b, l := over.GetPadding(); t == 0 && r == 0 && b == 0 && l == 0 {
		st = st.Padding(under.GetPadding())
	}
	if t, r, b, l := over.GetMargin(); t == 0 && r == 0 && b == 0 && l == 0 {
		st = st.Margin(under.GetMargin())
	}
	return st
}

var registry = map[string]*Theme{}

// Register makes a theme available to Lookup under its name,
// replacing any previous registration.
func Register(t *Theme) {
	registry[t.Name] = t
}

// Lookup returns the named theme, falling back to the default theme
// for unknown names.
func Lookup(name string) *Theme {
	if t, ok := registry[name]; ok {
		return t
	}
	return registry[DefaultName]
}

func init() {
	Register(light())
	Register(dark())
}

func light() *Theme {
	return &Theme{
		Name: "light",
		Styles: map[string]lipgloss.Style{
			"calendar": lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1),
			"calendar-months":        lipgloss.NewStyle().Bold(true),
			"calendar-month-current": lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
			"calendar-month-next":    lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right),
			"calendar-weekday":       lipgloss.NewStyle().Width(3).Foreground(lipgloss.Color("240")),
			"calendar-day":           lipgloss.NewStyle().Width(3).Align(lipgloss.Right),
			"dateleap-wrapper":       lipgloss.NewStyle().PaddingTop(1),
			"dateleap-label":         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("240")),
			"dateleap-button": lipgloss.NewStyle().
				Padding(0, 2).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Foreground(lipgloss.Color("240")),
			FocusedClass: lipgloss.NewStyle().
				BorderForeground(lipgloss.Color("205")).
				Bold(true),
		},
	}
}

func dark() *Theme {
	return &Theme{
		Name: "dark",
		Styles: map[string]lipgloss.Style{
			"calendar": lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("238")).
				Padding(0, 1),
			"calendar-months":        lipgloss.NewStyle().Bold(true),
			"calendar-month-current": lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
			"calendar-month-next":    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Align(lipgloss.Right),
			"calendar-weekday":       lipgloss.NewStyle().Width(3).Foreground(lipgloss.Color("244")),
			"calendar-day":           lipgloss.NewStyle().Width(3).Align(lipgloss.Right),
			"dateleap-wrapper":       lipgloss.NewStyle().PaddingTop(1),
			"dateleap-label":         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
			"dateleap-button": lipgloss.NewStyle().
				Padding(0, 2).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("244")).
				Foreground(lipgloss.Color("252")),
			FocusedClass: lipgloss.NewStyle().
				BorderForeground(lipgloss.Color("81")).
				Bold(true),
		},
	}
}
