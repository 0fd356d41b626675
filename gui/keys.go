// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package gui

import (
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
)

// keypad maps key names to keypad index.
var keypad = map[string]int{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
	"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
	"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
	"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
}

// KeypadKey returns the keypad index for the named key. The comparison is
// case insensitive.
func KeypadKey(key string) (int, bool) {
	k, ok := keypad[strings.ToUpper(key)]
	return k, ok
}

// Action is a request from the user to the host.
type Action int

// List of valid Action values.
const (
	ActionNone Action = iota
	ActionQuit
	ActionRestart
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionRestart:
		return "restart"
	}
	return "unknown action"
}

// HostAction returns the Action for the named key.
func HostAction(key string) Action {
	switch key {
	case "Escape":
		return ActionQuit
	case "F5":
		return ActionRestart
	}
	return ActionNone
}

// HandleEvent forwards keypad input to the machine. Events that should be
// handled by the host are returned as an Action.
//
// ActionRestart is handled by restarting the machine but is still returned
// so that the host can reset its own state.
func HandleEvent(c *hardware.Chip8, ev Event) (Action, error) {
	switch ev := ev.(type) {
	case EventQuit:
		return ActionQuit, nil

	case EventKeyboard:
		// keypad releases are forwarded whatever the modifier so that a key
		// is never left pressed
		if k, ok := KeypadKey(ev.Key); ok && (ev.Mod == KeyModNone || !ev.Down) {
			if err := c.SetKeyPress(k, ev.Down); err != nil {
				return ActionNone, curated.Errorf("gui: %v", err)
			}
			return ActionNone, nil
		}

		if !ev.Down {
			return ActionNone, nil
		}

		act := HostAction(ev.Key)
		if act == ActionRestart {
			if err := c.Restart(); err != nil {
				return ActionNone, curated.Errorf("gui: %v", err)
			}
		}
		return act, nil
	}

	return ActionNone, curated.Errorf("gui: unsupported event type (%T)", ev)
}
