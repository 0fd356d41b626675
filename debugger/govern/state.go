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

package govern

// State is the condition of the emulation as seen by hardware.Run() and by
// the debugger.
type State int

// List of valid State values.
//
// The zero value is Paused. A new debugger begins in the Paused state and
// returns to it when the emulation faults.
const (
	// no instructions are executed but the frame loop continues
	Paused State = iota

	// a single instruction is executed every frame. the timers are not ticked
	Stepping

	// every frame executes the number of instructions given by the
	// CyclesPerFrame preference and then ticks the timers
	Running

	// the frame loop should end at the next opportunity
	Ending
)

func (s State) String() string {
	switch s {
	case Paused:
		return "Paused"
	case Stepping:
		return "Stepping"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}
	return "unknown state"
}
