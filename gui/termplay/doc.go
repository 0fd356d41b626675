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

// Package termplay runs the emulation in a terminal. The terminal is put into
// raw mode and the display is drawn with half-block characters, so that each
// line of text shows two rows of pixels. The terminal must be at least 64
// columns wide and 16 lines high.
//
// Terminals report key presses but not key releases. A keypad key is therefore
// held down for a fixed number of frames after the key is pressed. The
// number of frames is set with NewTermPlay().
//
// The buzzer is sounded by ringing the terminal bell. Escape or Ctrl-C ends
// the emulation.
package termplay
