// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

// Package panel implements the shortcut button panel plugin: a row of
// configurable buttons (optionally with a label above them) mounted
// into a host date picker's calendar, offering one-step actions as an
// alternative to manual calendar navigation.
package panel

import (
	"github.com/dateleap/dateleap/element"
	"github.com/dateleap/dateleap/host"
)

// Class names rendered into the panel fragment. Themes style the
// panel by these names, so they must stay stable.
const (
	ClassWrapper = "dateleap-wrapper"
	ClassLabel   = "dateleap-label"
	ClassButtons = "dateleap-buttons"
	ClassButton  = "dateleap-button"
	ClassSide    = "dateleap-side"
)

// DefaultTheme is the theme class appended to the wrapper when the
// configuration names none.
const DefaultTheme = "light"

// attrIndex stores a button's 0-based position in the configured
// sequence, as a decimal string.
const attrIndex = "data-index"

// allowedAttributes is the fixed set of configurable button
// attributes. Anything else in a Button's attribute map is silently
// dropped, which keeps configuration from smuggling arbitrary
// behavior onto rendered elements.
var allowedAttributes = map[string]struct{}{
	host.AttrAccessKey: {},
	host.AttrAriaLabel: {},
}

// OnClickFunc is called with the clicked button's index and the host
// handle the panel was built with.
type OnClickFunc func(index int, h host.Host)

// Button describes one shortcut button.
type Button struct {
	Label      string
	Attributes map[string]string
}

// Config is the panel's construction-time configuration. Button and
// Buttons may be combined; OnClick accepts a single callback or a
// slice. Config is read once by New and never mutated.
type Config struct {
	Button  Button
	Buttons []Button
	Label   string
	OnClick any
	Theme   string
	Expand  bool
}

// Panel is one plugin instance bound to a host. It owns the wrapper
// fragment it builds in OnReady and the two listeners attached to it.
type Panel struct {
	buttons []Button
	label   string
	onClick []OnClickFunc
	theme   string
	expand  bool

	host          host.Host
	keys          KeyMap
	wrapper       *element.Node
	clickListener *element.Listener
	keyListener   *element.Listener
}

// New normalizes the configuration and returns a plugin factory for
// the host to instantiate. The single-or-many Button/OnClick fields
// are collapsed to ordered slices here so the rest of the panel never
// branches on their shape.
func New(cfg Config) host.PluginFactory {
	buttons := normalizeButtons(cfg)
	callbacks := normalizeCallbacks(cfg.OnClick)
	themeName := cfg.Theme
	if themeName == "" {
		themeName = DefaultTheme
	}

	return func(h host.Host) host.Plugin {
		return &Panel{
			buttons: buttons,
			label:   cfg.Label,
			onClick: callbacks,
			theme:   themeName,
			expand:  cfg.Expand,
			host:    h,
			keys:    newKeyMap(buttons),
		}
	}
}

// Wrapper returns the mounted fragment's root node, or nil before
// OnReady and after OnDestroy.
func (p *Panel) Wrapper() *element.Node { return p.wrapper }

// KeyMap returns the panel's help bindings.
func (p *Panel) KeyMap() KeyMap { return p.keys }

func normalizeButtons(cfg Config) []Button {
	var buttons []Button
	if cfg.Button.Label != "" || len(cfg.Button.Attributes) > 0 {
		buttons = append(buttons, cfg.Button)
	}
	return append(buttons, cfg.Buttons...)
}

func normalizeCallbacks(v any) []OnClickFunc {
	switch cb := v.(type) {
	case nil:
		return nil
	case OnClickFunc:
		return []OnClickFunc{cb}
	case func(int, host.Host):
		return []OnClickFunc{cb}
	case []OnClickFunc:
		return cb
	case []func(int, host.Host):
		out := make([]OnClickFunc, len(cb))
		for i, fn := range cb {
			out[i] = fn
		}
		return out
	default:
		// Unsupported shapes degrade to "no callbacks configured".
		return nil
	}
}
