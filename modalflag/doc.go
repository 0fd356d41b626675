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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the concept of modes: a command line is parsed as a series
// of layers, each layer possibly beginning with a keyword that selects a mode.
//
//	gopher8 DEBUG -log roms/pong.ch8
//
// In the example above DEBUG is a mode and -log is a flag belonging to that
// mode. Modes are added with AddSubModes() before the call to Parse(). The
// first mode added is the default mode and is selected when the first
// argument is not one of the listed modes.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		log := md.AddBool("log", false, "echo log to stderr")
//		...
//	}
//
// Help is printed automatically when -help or -h is the next argument. Mode
// comparisons are case insensitive.
package modalflag
