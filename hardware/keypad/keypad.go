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

// Package keypad implements the sixteen key hexadecimal keypad of the CHIP-8.
// The state of the keypad is written by the host and read by the CPU.
package keypad

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Sentinal error patterns.
const (
	KeyOutOfRange = "keypad: key out of range (%d)"
)

// Keypad records which of the sixteen keys are currently pressed.
type Keypad struct {
	keys [NumKeys]bool
}

func (kp *Keypad) String() string {
	s := strings.Builder{}
	for i, k := range kp.keys {
		if k {
			s.WriteString(fmt.Sprintf("%X", i))
		} else {
			s.WriteString("-")
		}
	}
	return s.String()
}

// Reset releases all keys.
func (kp *Keypad) Reset() {
	for i := range kp.keys {
		kp.keys[i] = false
	}
}

// Set the pressed state of a key.
func (kp *Keypad) Set(key int, pressed bool) error {
	if key < 0 || key >= NumKeys {
		return curated.Errorf(KeyOutOfRange, key)
	}
	kp.keys[key] = pressed
	return nil
}

// Pressed returns true if the key is currently pressed.
func (kp *Keypad) Pressed(key int) (bool, error) {
	if key < 0 || key >= NumKeys {
		return false, curated.Errorf(KeyOutOfRange, key)
	}
	return kp.keys[key], nil
}

// Lowest returns the lowest numbered key that is currently pressed. The
// second return value is false if no key is pressed.
func (kp *Keypad) Lowest() (uint8, bool) {
	for i, k := range kp.keys {
		if k {
			return uint8(i), true
		}
	}
	return 0, false
}
