// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

package host

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dateleap/dateleap/element"
)

// Class names of the calendar chrome. Plugins locate chrome nodes by
// these classes, so they are part of the host contract.
const (
	ClassCalendar     = "calendar"
	ClassInner        = "calendar-inner"
	ClassMonths       = "calendar-months"
	ClassMonthCurrent = "calendar-month-current"
	ClassMonthNext    = "calendar-month-next"
)

// Calendar owns the chrome tree of a rendered popup: a root node
// holding an inner container, which holds the months header with the
// current-month display and the next-month navigation control. The
// owning widget appends its day grid into the inner container;
// plugins may append their own fragments via Append or Inner.
type Calendar struct {
	root  *element.Node
	width int
}

// NewCalendar builds the chrome tree at the given width in columns.
func NewCalendar(width int) *Calendar {
	root := element.New(ClassCalendar)
	inner := element.New(ClassInner)
	months := element.NewRow(ClassMonths)
	current := element.New(ClassMonthCurrent)
	next := element.New(ClassMonthNext)
	next.SetText("›")
	months.Append(current, next)
	inner.Append(months)
	root.Append(inner)

	c := &Calendar{root: root}
	c.SetWidth(width)
	return c
}

// Root returns the calendar's root node.
func (c *Calendar) Root() *element.Node { return c.root }

// Inner returns the inner container node.
func (c *Calendar) Inner() *element.Node { return c.root.Find(ClassInner) }

// MonthsHeader returns the months header node.
func (c *Calendar) MonthsHeader() *element.Node { return c.root.Find(ClassMonths) }

// CurrentMonth returns the current-month display node.
func (c *Calendar) CurrentMonth() *element.Node { return c.root.Find(ClassMonthCurrent) }

// NextMonthNav returns the next-month navigation node.
func (c *Calendar) NextMonthNav() *element.Node { return c.root.Find(ClassMonthNext) }

func (c *Calendar) Width() int { return c.width }

// SetWidth resizes the calendar to the given column count.
func (c *Calendar) SetWidth(width int) {
	c.width = width
	c.root.SetStyle(lipgloss.NewStyle().Width(width))
}

// Append adds a node as the last child of the calendar root.
func (c *Calendar) Append(n *element.Node) {
	c.root.Append(n)
}
