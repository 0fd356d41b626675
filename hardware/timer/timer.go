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

// Package timer implements the 60Hz down counters of the CHIP-8. There are
// two timers in the machine, the delay timer and the sound timer, and both
// are of the Timer type.
package timer

import "fmt"

// Timer is an eight bit counter that decreases by one on every tick until it
// reaches zero. It never counts below zero and never wraps.
type Timer struct {
	label string
	value uint8
}

// NewTimer is the preferred method of initialisation for the Timer type. The
// label is used only by String().
func NewTimer(label string) *Timer {
	return &Timer{label: label}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("%s=%02x", tmr.label, tmr.value)
}

// Reset the counter to zero.
func (tmr *Timer) Reset() {
	tmr.value = 0
}

// Set the counter value.
func (tmr *Timer) Set(v uint8) {
	tmr.value = v
}

// Value returns the current counter value.
func (tmr *Timer) Value() uint8 {
	return tmr.value
}

// Active returns true if the counter is non-zero.
func (tmr *Timer) Active() bool {
	return tmr.value > 0
}

// Tick decreases the counter by one if it is not already zero. Returns true
// if the tick caused the counter to reach zero.
func (tmr *Timer) Tick() bool {
	if tmr.value == 0 {
		return false
	}
	tmr.value--
	return tmr.value == 0
}
