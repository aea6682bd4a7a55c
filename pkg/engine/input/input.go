// Package input provides the tiered input pipeline: raw device events are
// debounced, mapped through bindings, and surfaced as high-level Intents.
package input

import (
	"log"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode.
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence after the
// initial ESC byte. Returns the arrow code string, or empty if the sequence
// was not an arrow key.
func tryReadArrowKey() string {
	b2, err := readByte()
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return ""
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}

// ReadKey reads a single keypress from stdin in raw mode and returns its
// binding code ("arrow_up", "q", "space", ...). The puzzle is driven entirely
// by single keys, so there is no line editing; keys return immediately
// without Enter.
func ReadKey() string {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b, err := readByte()
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	switch {
	case b == 0x1b:
		if arrow := tryReadArrowKey(); arrow != "" {
			return arrow
		}
		return "escape"
	case b == 3: // Ctrl+C
		term.Restore(int(os.Stdin.Fd()), oldState)
		os.Exit(0)
	case b == ' ':
		return "space"
	case b == '\n' || b == '\r':
		return "enter"
	case b >= 32 && b < 127:
		return string(lower(b))
	}

	return ""
}

// lower maps ASCII letters to lower case so Shift doesn't change bindings.
func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
