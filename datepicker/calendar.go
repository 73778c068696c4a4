// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

package datepicker

import (
	"strconv"
	"time"

	"github.com/dateleap/dateleap/element"
	"github.com/dateleap/dateleap/host"
)

// Day grid class names. These belong to the widget, not the host
// contract: plugins never look them up.
const (
	ClassWeekdays = "calendar-weekdays"
	ClassWeekday  = "calendar-weekday"
	ClassWeek     = "calendar-week"
	ClassDay      = "calendar-day"
)

var weekdayNames = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// buildCalendar creates the popup chrome and fills the day grid for
// the current month, Monday-first.
func (m *Model) buildCalendar() {
	m.cal = host.NewCalendar(m.width)

	now := m.now()
	m.cal.CurrentMonth().SetText(now.Format("January 2006"))

	inner := m.cal.Inner()

	header := element.NewRow(ClassWeekdays)
	for _, wd := range weekdayNames {
		cell := element.New(ClassWeekday)
		cell.SetText(wd)
		header.Append(cell)
	}
	inner.Append(header)

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	offset := (int(first.Weekday()) + 6) % 7
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()

	week := element.NewRow(ClassWeek)
	for i := 0; i < offset; i++ {
		week.Append(element.New(ClassDay))
	}
	for d := 1; d <= lastDay; d++ {
		cell := element.New(ClassDay)
		cell.SetText(strconv.Itoa(d))
		week.Append(cell)
		if (offset+d)%7 == 0 {
			inner.Append(week)
			week = element.NewRow(ClassWeek)
		}
	}
	if len(week.Children()) > 0 {
		inner.Append(week)
	}
}
