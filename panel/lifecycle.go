// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

package panel

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/dateleap/dateleap/element"
)

// Fixed dimensions applied in expanded mode: the calendar is widened
// and its months chrome resized to leave room for the side container.
const (
	expandedCalendarWidth = 64
	expandedMonthWidth    = 22
	expandedNavWidth      = 3
)

// sideBackground is the fixed wrapper background used in expanded mode.
var sideBackground = lipgloss.Color("236")

// OnReady builds the panel fragment, mounts it into the host's
// calendar, and attaches the delegated listeners. The host calls it
// once after the calendar is first rendered; calling it twice is a
// caller error and produces a second fragment.
func (p *Panel) OnReady() {
	wrapper := element.New(ClassWrapper, p.theme)

	if p.label != "" {
		label := element.New(ClassLabel)
		label.SetText(p.label)
		wrapper.Append(label)
	}

	buttons := element.NewRow(ClassButtons)
	for i, b := range p.buttons {
		btn := element.New(ClassButton)
		btn.SetText(b.Label)
		btn.SetAttr(attrIndex, strconv.Itoa(i))
		applyAttributes(btn, b.Attributes)
		buttons.Append(btn)
		p.host.RegisterElements(btn)
	}
	wrapper.Append(buttons)

	// No rendered calendar means nothing to mount into; the fragment
	// stays detached and inert.
	if cal := p.host.Calendar(); cal != nil {
		if p.expand {
			cal.SetWidth(expandedCalendarWidth)
			cal.CurrentMonth().SetStyle(lipgloss.NewStyle().Width(expandedMonthWidth))
			cal.NextMonthNav().SetStyle(lipgloss.NewStyle().Width(expandedNavWidth))
			side := element.New(ClassSide)
			side.Append(wrapper)
			cal.Inner().Append(side)
			wrapper.SetStyle(lipgloss.NewStyle().Background(sideBackground))
		} else {
			cal.Append(wrapper)
		}
	}

	// Listeners go on last: no event can reach the panel before the
	// fragment is fully built and mounted.
	p.clickListener = wrapper.On(element.Click, p.handleClick)
	p.keyListener = wrapper.On(element.KeyDown, p.handleKey)
	p.wrapper = wrapper
}

// OnDestroy detaches the panel's listeners and releases the wrapper.
// Removing the fragment's nodes from the tree is the host's concern;
// the panel only guarantees no further callback dispatch.
func (p *Panel) OnDestroy() {
	if p.wrapper == nil {
		return
	}
	p.wrapper.Off(p.keyListener)
	p.wrapper.Off(p.clickListener)
	p.wrapper = nil
	p.keyListener = nil
	p.clickListener = nil
}

func applyAttributes(btn *element.Node, attrs map[string]string) {
	for k, v := range attrs {
		if _, ok := allowedAttributes[k]; ok {
			btn.SetAttr(k, v)
		}
	}
}
