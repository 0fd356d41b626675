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

// Package romloader is used to specify and load the program data that is to
// be attached to the emulated CHIP-8. The Loader type records the filename,
// the SHA1 hash and a copy of the data once it has been loaded.
//
//	ld := romloader.NewLoader("roms/pong.ch8")
//	if err := ld.Load(); err != nil {
//		return err
//	}
//
// A Loader with a non-empty Hash field will refuse to load a file with a
// different hash.
package romloader
