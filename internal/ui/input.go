package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/swarmpong/internal/game"
)

// Terminals report key presses, not key state, and held keys autorepeat. A
// direction therefore counts as held for a few ticks after its last event.
const holdTicks = 8 // ~133ms at 60Hz

// Keys derives per-tick key state from tcell key events.
type Keys struct {
	up   int
	down int
}

// HandleKey refreshes the hold latch for the movement keys.
func (k *Keys) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		k.up = holdTicks
	case tcell.KeyDown:
		k.down = holdTicks
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			k.up = holdTicks
		case 's', 'S':
			k.down = holdTicks
		}
	}
}

// Sample returns the key state for one tick and ages the latches.
func (k *Keys) Sample() game.Input {
	in := game.Input{Up: k.up > 0, Down: k.down > 0}
	if k.up > 0 {
		k.up--
	}
	if k.down > 0 {
		k.down--
	}
	return in
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}
