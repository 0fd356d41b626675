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

package sound

// Mixer implementations consume chunks of signed 16-bit mono audio produced
// by the Beeper.
type Mixer interface {
	SetAudio(samples []int16) error

	// EndMixing is called when the emulation ends.
	EndMixing() error

	// Reset discards any audio that has been buffered but not played.
	Reset()
}
