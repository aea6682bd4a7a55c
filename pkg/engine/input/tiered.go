package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Runner movement
	ActionMoveLeft
	ActionMoveUp
	ActionMoveRight
	ActionMoveDown

	// Meta / UI
	ActionShuffle   // Scramble the board
	ActionReset     // Rebuild the current puzzle solved (peek at the picture)
	ActionCycleSize // Step the grid size through the supported range
	ActionQuit
	ActionDumpBoard // Write a board snapshot to a file (F2)
	ActionOpenMenu
	ActionZoomIn  // Increase tile size (graphical renderer)
	ActionZoomOut // Decrease tile size (graphical renderer)
)

// Intent is the high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "KeyW", "arrow_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the representation after debouncing/deduplication.
// Each RawInput is already debounced by the underlying libraries (Ebiten
// just-pressed queries, terminal raw mode), but the distinct type keeps the
// layering explicit and extensible.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions. Multiple codes may point to the same
// Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim)
	"arrow_left":  ActionMoveLeft,
	"a":           ActionMoveLeft,
	"h":           ActionMoveLeft,
	"arrow_up":    ActionMoveUp,
	"w":           ActionMoveUp,
	"k":           ActionMoveUp,
	"arrow_right": ActionMoveRight,
	"d":           ActionMoveRight,
	"l":           ActionMoveRight,
	"arrow_down":  ActionMoveDown,
	"s":           ActionMoveDown,
	"j":           ActionMoveDown,

	// Puzzle control
	"m":     ActionShuffle,
	"space": ActionShuffle,
	"n":     ActionReset,
	"g":     ActionCycleSize,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,

	// Debug / diagnostics
	"f2": ActionDumpBoard,

	// Menu
	"menu": ActionOpenMenu,

	// Zoom (fixed bindings, not rebindable)
	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,
}

// MapToIntent applies the current bindings to a debounced input and returns
// a high-level Intent. Unbound codes map to ActionNone.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveRight:
		return "Move Right"
	case ActionMoveDown:
		return "Move Down"
	case ActionShuffle:
		return "Shuffle"
	case ActionReset:
		return "Reset Puzzle"
	case ActionCycleSize:
		return "Change Grid Size"
	case ActionQuit:
		return "Quit"
	case ActionDumpBoard:
		return "Dump Board"
	case ActionOpenMenu:
		return "Open Menu"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
