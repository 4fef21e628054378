// Package menu lists the active key bindings for help screens.
package menu

import (
	"fmt"
	"strings"

	engineinput "mazeworld/pkg/engine/input"
)

// BindingItem is one action and the codes bound to it.
type BindingItem struct {
	Action engineinput.Action
	Codes  []string
	// Fixed is set when one of the codes cannot be rebound
	Fixed bool
}

// GetLabel returns the display label for this binding.
func (b BindingItem) GetLabel() string {
	codeText := strings.Join(b.Codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	if b.Fixed {
		return fmt.Sprintf("%s: %s (fixed)", engineinput.ActionName(b.Action), codeText)
	}
	return fmt.Sprintf("%s: %s", engineinput.ActionName(b.Action), codeText)
}

// listedActions is the display order of the bindings list
var listedActions = []engineinput.Action{
	engineinput.ActionMoveNorth,
	engineinput.ActionMoveSouth,
	engineinput.ActionMoveWest,
	engineinput.ActionMoveEast,
	engineinput.ActionMoveNorthEast,
	engineinput.ActionMoveNorthWest,
	engineinput.ActionMoveSouthEast,
	engineinput.ActionMoveSouthWest,
	engineinput.ActionToggleLight,
	engineinput.ActionReset,
	engineinput.ActionQuit,
	engineinput.ActionDumpMap,
}

// Bindings returns one item per action in display order.
func Bindings(b *engineinput.Bindings) []BindingItem {
	byAction := b.ByAction()
	items := make([]BindingItem, 0, len(listedActions))
	for _, act := range listedActions {
		item := BindingItem{Action: act, Codes: byAction[act]}
		for _, c := range item.Codes {
			if engineinput.IsReserved(c) {
				item.Fixed = true
			}
		}
		items = append(items, item)
	}
	return items
}

// BindingLines renders Bindings as one label per line.
func BindingLines(b *engineinput.Bindings) []string {
	items := Bindings(b)
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = item.GetLabel()
	}
	return lines
}
