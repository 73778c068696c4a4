// Copyright (c) 2026 Dateleap Team
// Dateleap - shortcut button panel for terminal date pickers
// This source code is licensed under the MIT license found in the LICENSE file.

package panel

import (
	"strings"

	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/dateleap/dateleap/host"
)

type KeyMap struct {
	Click     key.Binding
	NextField key.Binding
	PrevField key.Binding

	// AccessKeys holds one binding per configured button that carries
	// an accesskey attribute, described by its aria-label when set.
	AccessKeys []key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return slices.Concat([]key.Binding{k.Click}, k.AccessKeys)
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Click, k.NextField, k.PrevField},
		k.AccessKeys,
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func newKeyMap(buttons []Button) KeyMap {
	km := KeyMap{
		Click: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "activate"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
	}

	for _, b := range buttons {
		ak := b.Attributes[host.AttrAccessKey]
		if ak == "" {
			continue
		}
		desc := b.Attributes[host.AttrAriaLabel]
		if desc == "" {
			desc = strings.ToLower(b.Label)
		}
		km.AccessKeys = append(km.AccessKeys, key.NewBinding(
			key.WithKeys("alt+"+ak),
			key.WithHelp("alt+"+ak, desc),
		))
	}

	return km
}
