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

// Package sdlplay is a simple SDL host for the emulation. It opens a window
// showing the display, maps the keyboard to the keypad and plays the buzzer.
//
// SDL functions must be called from the main thread of the program. This is
// achieved with the github.com/faiface/mainthread package. The program's main
// function must call mainthread.Run(), and NewSdlPlay() and Destroy() must be
// called through mainthread.Call():
//
//	mainthread.Run(func() {
//		var scr *sdlplay.SdlPlay
//		err := mainthread.CallErr(func() error {
//			var err error
//			scr, err = sdlplay.NewSdlPlay(c, 10)
//			return err
//		})
//		...
//		defer mainthread.Call(scr.Destroy)
//		err = scr.Play(ctx)
//	})
//
// Play() runs the emulation on the calling goroutine and services the window
// on the main thread once per frame.
package sdlplay
