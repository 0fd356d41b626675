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

// Package sound produces the PCM audio for the CHIP-8 sound timer. The
// machine has a single buzzer that sounds while the sound timer is active.
//
// The Beeper type converts the state of the buzzer, sampled once per frame,
// into a chunk of signed 16-bit mono samples. By default the buzzer is a
// square wave produced by the Tone type. A recorded sample can be used
// instead with SetSample(). Samples are loaded from WAV or MP3 files with
// LoadSample().
//
// Audio chunks are passed to implementations of the Mixer interface. The
// wavwriter package and the SDL host both implement Mixer.
package sound
