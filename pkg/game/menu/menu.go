// Package menu defines the in-game menu entries shared by renderer backends.
package menu

import (
	engineinput "tilerunner/pkg/engine/input"
)

// MenuItem is one selectable entry in an overlay menu.
type MenuItem struct {
	Label  string
	Action engineinput.Action
}

// GameplayMenu returns the pause-menu entries shown over a running puzzle.
func GameplayMenu() []MenuItem {
	return []MenuItem{
		{Label: "Shuffle", Action: engineinput.ActionShuffle},
		{Label: "Show Full Picture", Action: engineinput.ActionReset},
		{Label: "Change Grid Size", Action: engineinput.ActionCycleSize},
		{Label: "Dump Board", Action: engineinput.ActionDumpBoard},
		{Label: "Quit", Action: engineinput.ActionQuit},
	}
}
