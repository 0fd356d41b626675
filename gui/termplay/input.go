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

package termplay

import (
	"strings"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/keypad"
)

// control characters.
const (
	keyInterrupt = 3
	keyEsc       = 27
)

// escape sequence for the F5 key.
const escF5 = "\x1b[15~"

// parseInput converts the bytes read from the terminal into key down events.
// a lone escape character is the Escape key; other escape sequences are
// ignored unless they are the F5 key.
func parseInput(b []byte) []gui.Event {
	var events []gui.Event

	for len(b) > 0 {
		switch b[0] {
		case keyInterrupt:
			events = append(events, gui.EventQuit{})
			b = b[1:]

		case keyEsc:
			if len(b) == 1 {
				events = append(events, gui.EventKeyboard{Key: "Escape", Down: true})
				return events
			}
			if strings.HasPrefix(string(b), escF5) {
				events = append(events, gui.EventKeyboard{Key: "F5", Down: true})
				b = b[len(escF5):]
				continue // for loop
			}

			// skip unrecognised sequence. the sequence ends with the first
			// letter or tilde after the introducer
			n := 1
			if len(b) > 1 && (b[1] == '[' || b[1] == 'O') {
				n = 2
				for n < len(b) {
					c := b[n]
					n++
					if c == '~' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
						break // for loop
					}
				}
			}
			b = b[n:]

		default:
			if b[0] > ' ' && b[0] < 0x7f {
				events = append(events, gui.EventKeyboard{Key: strings.ToUpper(string(b[0])), Down: true})
			}
			b = b[1:]
		}
	}

	return events
}

// keyHold releases keypad keys a fixed number of frames after they were
// pressed.
type keyHold struct {
	frames int
	remain [keypad.NumKeys]int
}

// press key. the key is held for the full number of frames even if it was
// already being held
func (h *keyHold) press(key int) {
	if key >= 0 && key < keypad.NumKeys {
		h.remain[key] = h.frames
	}
}

// tick advances one frame and returns the keys that should now be released
func (h *keyHold) tick() []int {
	var released []int
	for k := range h.remain {
		if h.remain[k] > 0 {
			h.remain[k]--
			if h.remain[k] == 0 {
				released = append(released, k)
			}
		}
	}
	return released
}

// reset forgets all held keys
func (h *keyHold) reset() {
	h.remain = [keypad.NumKeys]int{}
}
