package ui

import (
	"fmt"
	"strings"
)

// Action is a user command issued from a menu button or hotkey.
type Action uint8

const (
	ActionNone Action = iota
	ActionStart
	ActionTogglePause
	ActionSpeedUp
	ActionSpeedDown
	ActionOpen
	ActionClear
	ActionRandomize
	ActionGlider
	ActionLWSS
	ActionBlinker
	ActionMWSS
	ActionHotkeys
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:        "none",
	ActionStart:       "start",
	ActionTogglePause: "toggle-pause",
	ActionSpeedUp:     "speed-up",
	ActionSpeedDown:   "speed-down",
	ActionOpen:        "open",
	ActionClear:       "clear",
	ActionRandomize:   "randomize",
	ActionGlider:      "glider",
	ActionLWSS:        "lwss",
	ActionBlinker:     "blinker",
	ActionMWSS:        "mwss",
	ActionHotkeys:     "hotkeys",
	ActionQuit:        "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Preset returns the built-in pattern inserted by a preset action.
func (a Action) Preset() (string, bool) {
	switch a {
	case ActionGlider, ActionLWSS, ActionBlinker, ActionMWSS:
		return a.String(), true
	}
	return "", false
}

// Hotkey documents a keyboard shortcut.
type Hotkey struct {
	Key    string
	Desc   string
	Action Action
}

// Hotkeys lists the keyboard shortcuts in display order.
var Hotkeys = []Hotkey{
	{Key: "Space", Desc: "Pause/Unpause the simulation", Action: ActionTogglePause},
	{Key: "Enter", Desc: "Start the simulation", Action: ActionStart},
	{Key: "+/=", Desc: "Increase game speed", Action: ActionSpeedUp},
	{Key: "-", Desc: "Decrease game speed", Action: ActionSpeedDown},
	{Key: "O", Desc: "Open RLE file", Action: ActionOpen},
	{Key: "C", Desc: "Clear the grid", Action: ActionClear},
	{Key: "R", Desc: "Randomize the grid", Action: ActionRandomize},
	{Key: "H", Desc: "Show hotkeys", Action: ActionHotkeys},
	{Key: "Q", Desc: "Quit", Action: ActionQuit},
}

// HotkeyText renders the hotkey list one "key: description" per line.
func HotkeyText() string {
	lines := make([]string, len(Hotkeys))
	for i, hk := range Hotkeys {
		lines[i] = hk.Key + ": " + hk.Desc
	}
	return strings.Join(lines, "\n")
}
