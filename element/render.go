// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

package element

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/dateleap/dateleap/theme"
	"github.com/dateleap/dateleap/util/slicest"
)

// Render draws the subtree rooted at n with the given theme. The
// focused node, if any, gets the theme's focused pseudo-class merged
// into its style.
func Render(n *Node, th *theme.Theme, focused *Node) string {
	classes := n.classes
	if n == focused {
		classes = append(slices.Clone(classes), theme.FocusedClass)
	}

	st := th.Style(classes...)
	if n.style != nil {
		st = theme.Merge(*n.style, st)
	}

	body := n.text
	if len(n.children) > 0 {
		views := slicest.Map(n.children, func(c *Node) string {
			return Render(c, th, focused)
		})
		var joined string
		if n.layout == Row {
			joined = lipgloss.JoinHorizontal(lipgloss.Top, views...)
		} else {
			joined = lipgloss.JoinVertical(lipgloss.Left, views...)
		}
		if body != "" {
			joined = lipgloss.JoinVertical(lipgloss.Left, body, joined)
		}
		body = joined
	}

	return st.Render(body)
}
