package main

import (
	"github.com/odvcencio/focuskit/pkg/focus"
)

// item is a focusable demo element: a list entry, a grid cell, or a dialog
// button.
type item struct {
	label   string
	enabled bool
	focused bool
}

func newItem(label string) *item {
	return &item{label: label, enabled: true}
}

func (i *item) CanFocus() bool         { return i.enabled }
func (i *item) Focus()                 { i.focused = true }
func (i *item) Blur()                  { i.focused = false }
func (i *item) IsFocused() bool        { return i.focused }
func (i *item) Label() string          { return i.label }
func (i *item) Children() []focus.Node { return nil }

// dialog is the trapped subtree: a container of buttons.
type dialog struct {
	buttons []*item
}

func newDialog(labels ...string) *dialog {
	d := &dialog{}
	for _, l := range labels {
		d.buttons = append(d.buttons, newItem(l))
	}
	return d
}

func (d *dialog) Children() []focus.Node {
	nodes := make([]focus.Node, len(d.buttons))
	for i, b := range d.buttons {
		nodes[i] = b
	}
	return nodes
}
