// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

package element

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// Type identifies the kind of event travelling through the tree.
type Type int

const (
	Click Type = iota + 1
	KeyDown
)

// Event is dispatched on a target node and bubbles through its
// ancestors, so a listener on a container sees events originating on
// any descendant.
type Event struct {
	Type Type

	// Key is the key message that produced the event. Valid for KeyDown.
	Key tea.KeyMsg

	target    *Node
	stopped   bool
	prevented bool
}

// Target returns the node the event originated on.
func (e *Event) Target() *Node { return e.target }

// StopPropagation keeps the event from bubbling past the node whose
// listeners are currently running. Remaining listeners on that node
// still fire.
func (e *Event) StopPropagation() { e.stopped = true }

// PreventDefault marks the event so the dispatching widget skips
// whatever default behavior it would otherwise apply.
func (e *Event) PreventDefault() { e.prevented = true }

func (e *Event) DefaultPrevented() bool { return e.prevented }

// Listener is a handle returned by On, used to detach the handler
// again with Off.
type Listener struct {
	typ Type
	fn  func(*Event)
}

// On registers a handler for events of the given type reaching n,
// either dispatched on n itself or bubbling up from a descendant.
// Handlers on a node run in registration order.
func (n *Node) On(t Type, fn func(*Event)) *Listener {
	l := &Listener{typ: t, fn: fn}
	n.listeners = append(n.listeners, l)
	return l
}

// Off removes a listener previously registered with On. Unknown or
// nil listeners are ignored.
func (n *Node) Off(l *Listener) {
	if l == nil {
		return
	}
	if i := slices.Index(n.listeners, l); i >= 0 {
		n.listeners = slices.Delete(n.listeners, i, i+1)
	}
}

// Dispatch delivers e to n and then to each ancestor in turn until the
// root is reached or a listener stops propagation. The event's target
// is set to n unless already set. Returns e so callers can inspect
// DefaultPrevented.
func (n *Node) Dispatch(e *Event) *Event {
	if e.target == nil {
		e.target = n
	}
	for cur := n; cur != nil; cur = cur.parent {
		for _, l := range slices.Clone(cur.listeners) {
			if l.typ == e.Type {
				l.fn(e)
			}
		}
		if e.stopped {
			break
		}
	}
	return e
}
