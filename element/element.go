// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

// Package element implements the small retained node tree that widget
// chrome and plugin fragments are built from. Nodes carry semantic
// class names and string attributes, know their parent and siblings,
// and support delegated event dispatch (see event.go). Rendering
// resolves classes against a theme (see render.go).
package element

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Layout selects the axis children are joined along when rendering.
type Layout int

const (
	Column Layout = iota
	Row
)

type Node struct {
	classes   []string
	attrs     map[string]string
	text      string
	layout    Layout
	style     *lipgloss.Style
	parent    *Node
	children  []*Node
	listeners []*Listener
}

// New creates a column-layout node with the given classes.
func New(classes ...string) *Node {
	return &Node{classes: slices.Clone(classes)}
}

// NewRow creates a row-layout node with the given classes.
func NewRow(classes ...string) *Node {
	n := New(classes...)
	n.layout = Row
	return n
}

func (n *Node) AddClass(class string) {
	if !n.HasClass(class) {
		n.classes = append(n.classes, class)
	}
}

func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

// Classes returns a copy of the node's class list, in application order.
func (n *Node) Classes() []string {
	return slices.Clone(n.classes)
}

func (n *Node) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = map[string]string{}
	}
	n.attrs[key] = value
}

func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

func (n *Node) SetText(text string) { n.text = text }

func (n *Node) Text() string { return n.text }

// SetStyle overrides the theme-resolved style for this node. Theme
// properties the override does not set still apply.
func (n *Node) SetStyle(style lipgloss.Style) { n.style = &style }

// Append adds children as the last children of n, in order. A child
// that already has a parent is detached from it first; a node has at
// most one parent.
func (n *Node) Append(children ...*Node) {
	for _, c := range children {
		if c == nil || c == n {
			continue
		}
		c.Remove()
		c.parent = n
		n.children = append(n.children, c)
	}
}

// Remove detaches n from its parent. Listeners stay attached; the
// subtree below n is untouched.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
}

func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list, in order.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// PrevSibling returns the child before n in its parent, or nil when n
// is the first child or detached.
func (n *Node) PrevSibling() *Node {
	if n.parent == nil {
		return nil
	}
	i := slices.Index(n.parent.children, n)
	if i <= 0 {
		return nil
	}
	return n.parent.children[i-1]
}

// NextSibling returns the child after n in its parent, or nil when n
// is the last child or detached.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	i := slices.Index(n.parent.children, n)
	if i < 0 || i == len(n.parent.children)-1 {
		return nil
	}
	return n.parent.children[i+1]
}

// Find returns the first node in the subtree rooted at n (including n
// itself) carrying the given class, depth-first in child order.
func (n *Node) Find(class string) *Node {
	if n.HasClass(class) {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(class); found != nil {
			return found
		}
	}
	return nil
}
