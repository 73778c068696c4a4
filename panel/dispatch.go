// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

package panel

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/dateleap/dateleap/element"
)

// handleClick is the delegated click listener on the wrapper. Clicks
// on any descendant button bubble up here.
func (p *Panel) handleClick(e *element.Event) {
	e.StopPropagation()
	e.PreventDefault()

	t := e.Target()
	if t == nil || !t.HasClass(ClassButton) || len(p.onClick) == 0 {
		return
	}
	raw, ok := t.Attr(attrIndex)
	if !ok {
		return
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		return
	}

	for _, cb := range p.onClick {
		cb(index, p.host)
	}
}

// handleKey traps Tab at the panel edges: Shift+Tab on the first
// button or Tab on the last returns focus to the host's input instead
// of escaping into whatever surrounds the widget. Interior Tab
// presses fall through to the host's default traversal.
func (p *Panel) handleKey(e *element.Event) {
	t := e.Target()
	if t == nil || !t.HasClass(ClassButton) {
		return
	}

	switch {
	case key.Matches(e.Key, p.keys.PrevField) && t.PrevSibling() == nil,
		key.Matches(e.Key, p.keys.NextField) && t.NextSibling() == nil:
		e.PreventDefault()
		p.host.FocusInput()
	}
}
