// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

// Package datepicker provides the reference host widget: a text input
// with a popup calendar, focus traversal over tracked elements, and
// the plugin lifecycle defined by package host. Plugins built for the
// host contract (such as the shortcut button panel) attach to it
// without knowing this concrete type.
package datepicker

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dateleap/dateleap/element"
	"github.com/dateleap/dateleap/host"
	"github.com/dateleap/dateleap/internal/logging"
	"github.com/dateleap/dateleap/theme"
	"github.com/dateleap/dateleap/util"
)

const defaultCalendarWidth = 30

type Option func(*Model)

// WithPlugins registers plugin factories. Factories are applied when
// the calendar first opens; OnReady fires once per plugin.
func WithPlugins(factories ...host.PluginFactory) Option {
	return func(m *Model) {
		m.factories = append(m.factories, factories...)
	}
}

// WithTheme selects the theme used to render the calendar tree.
func WithTheme(name string) Option {
	return func(m *Model) { m.theme = theme.Lookup(name) }
}

// WithPlaceholder sets the input's placeholder text.
func WithPlaceholder(s string) Option {
	return func(m *Model) { m.input.Placeholder = s }
}

// WithFormat sets the date layout written into the input by SetDate.
func WithFormat(layout string) Option {
	return func(m *Model) { m.format = layout }
}

type Model struct {
	input     textinput.Model
	theme     *theme.Theme
	keys      KeyMap
	factories []host.PluginFactory
	plugins   []host.Plugin

	cal     *host.Calendar
	tracked []*element.Node
	focused *element.Node // nil means the input holds focus

	open      bool
	ready     bool
	destroyed bool

	value  *time.Time
	format string
	now    func() time.Time

	size  util.Size
	width int
}

func New(opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "Select date"
	ti.Prompt = "> "
	ti.Focus()

	m := &Model{
		input:  ti,
		theme:  theme.Lookup(theme.DefaultName),
		keys:   DefaultKeyMap,
		format: "2006-01-02",
		now:    time.Now,
		width:  defaultCalendarWidth,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// RegisterElements adds elements to the focus traversal, in
// registration order after the input.
func (m *Model) RegisterElements(els ...*element.Node) {
	m.tracked = append(m.tracked, els...)
}

func (m *Model) Calendar() *host.Calendar { return m.cal }

func (m *Model) Input() *textinput.Model { return &m.input }

// FocusInput returns keyboard focus to the text input.
func (m *Model) FocusInput() {
	m.focused = nil
	m.input.Focus()
}

// *Model implements host.Host
var _ host.Host = (*Model)(nil)

// Open shows the popup. The first open builds the calendar chrome and
// runs the plugin ready hooks, exactly once for the model's lifetime.
func (m *Model) Open() {
	if m.open {
		return
	}
	m.open = true
	if m.cal == nil {
		m.buildCalendar()
	}
	if !m.ready {
		m.ready = true
		for _, f := range m.factories {
			m.plugins = append(m.plugins, f(m))
		}
		for _, p := range m.plugins {
			p.OnReady()
		}
		logging.Debugf("datepicker: %d plugin(s) ready", len(m.plugins))
	}
}

// Close hides the popup and returns focus to the input. Plugins stay
// mounted; Close is not a teardown.
func (m *Model) Close() {
	m.open = false
	m.FocusInput()
}

// Destroy runs the plugin teardown hooks. Safe to call once; further
// calls are ignored.
func (m *Model) Destroy() {
	if m.destroyed {
		return
	}
	m.destroyed = true
	for _, p := range m.plugins {
		p.OnDestroy()
	}
	logging.Debugf("datepicker: %d plugin(s) destroyed", len(m.plugins))
}

// SetDate selects a date, writing it into the input with the
// configured format.
func (m *Model) SetDate(t time.Time) {
	m.value = &t
	m.input.SetValue(t.Format(m.format))
}

// Clear removes the current selection.
func (m *Model) Clear() {
	m.value = nil
	m.input.SetValue("")
}

// Value returns the selected date, or nil when none is selected.
func (m *Model) Value() *time.Time { return m.value }

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	switch {
	case !m.open:
		if key.Matches(kmsg, m.keys.Open) {
			m.Open()
			return nil
		}
	case key.Matches(kmsg, m.keys.Close):
		m.Close()
		return nil
	default:
		if m.dispatchKey(kmsg) {
			return nil
		}
	}

	if m.focused == nil {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

// dispatchKey routes a key press through the element tree before any
// default behavior: the focused element sees KeyDown first and may
// prevent the default traversal, Enter/Space become Click on the
// focused element, and alt+<rune> activates a tracked element whose
// accesskey attribute matches.
func (m *Model) dispatchKey(k tea.KeyMsg) bool {
	switch {
	case key.Matches(k, m.keys.Next), key.Matches(k, m.keys.Prev):
		if m.focused != nil {
			ev := m.focused.Dispatch(&element.Event{Type: element.KeyDown, Key: k})
			if ev.DefaultPrevented() {
				return true
			}
		}
		m.moveFocus(key.Matches(k, m.keys.Next))
		return true
	case key.Matches(k, m.keys.Activate):
		if m.focused == nil {
			return false
		}
		m.focused.Dispatch(&element.Event{Type: element.Click})
		return true
	}

	if k.Alt && len(k.Runes) == 1 {
		for _, el := range m.tracked {
			if ak, ok := el.Attr(host.AttrAccessKey); ok && ak == string(k.Runes) {
				el.Dispatch(&element.Event{Type: element.Click})
				return true
			}
		}
	}
	return false
}

// moveFocus applies the default Tab traversal: input, then tracked
// elements in order, then back to the input.
func (m *Model) moveFocus(forward bool) {
	if len(m.tracked) == 0 {
		return
	}
	if m.focused == nil {
		m.input.Blur()
		if forward {
			m.focused = m.tracked[0]
		} else {
			m.focused = m.tracked[len(m.tracked)-1]
		}
		return
	}

	i := slices.Index(m.tracked, m.focused)
	if forward {
		i++
	} else {
		i--
	}
	if i < 0 || i >= len(m.tracked) {
		m.FocusInput()
		return
	}
	m.focused = m.tracked[i]
}

func (m *Model) View() string {
	view := m.input.View()
	if m.open && m.cal != nil {
		view = lipgloss.JoinVertical(lipgloss.Left,
			view,
			element.Render(m.cal.Root(), m.theme, m.focused),
		)
	}
	return view
}
