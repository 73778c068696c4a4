// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

// Package host defines the contract between a date-picker widget and
// the plugins that extend it. A widget exposes the narrow Host
// surface; plugins hand the widget a pair of lifecycle hooks in
// return. The widget calls OnReady once after its calendar is first
// rendered and OnDestroy once when it tears down.
package host

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/dateleap/dateleap/element"
)

// Attribute names with host-side behavior. A tracked element carrying
// AttrAccessKey is activated by alt+<key>; AttrAriaLabel describes an
// element for help and screen-reader surfaces.
const (
	AttrAccessKey = "accesskey"
	AttrAriaLabel = "aria-label"
)

// Host is the handle a widget passes to plugin factories. It exposes
// only what plugins need: a sink for elements the widget should
// include in its focus traversal, the rendered calendar (nil until
// the popup has been built), and the primary input element.
type Host interface {
	// RegisterElements adds elements to the widget's tracked set so
	// they participate in the widget's focus and cleanup handling.
	RegisterElements(els ...*element.Node)

	// Calendar returns the rendered calendar chrome, or nil when the
	// popup has not been built yet.
	Calendar() *Calendar

	// Input returns the widget's primary input element.
	Input() *textinput.Model

	// FocusInput moves keyboard focus back to the primary input.
	FocusInput()
}

// Plugin is the pair of lifecycle hooks a plugin exposes to its host.
// Neither hook takes arguments or returns anything; state travels
// through the Host handle captured at construction.
type Plugin interface {
	OnReady()
	OnDestroy()
}

// PluginFactory builds a plugin instance bound to a host handle.
type PluginFactory func(Host) Plugin
