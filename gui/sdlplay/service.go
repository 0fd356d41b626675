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

package sdlplay

import (
	"context"

	"github.com/faiface/mainthread"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// service collects outstanding SDL events. must be called from the main
// thread
func (scr *SdlPlay) service() []gui.Event {
	var events []gui.Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, gui.EventQuit{})

		case *sdl.KeyboardEvent:
			// auto-repeat events are not interesting
			if ev.Repeat != 0 {
				continue // for loop
			}

			mod := gui.KeyModNone
			if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
				sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = gui.KeyModAlt
			} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
				sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = gui.KeyModCtrl
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				events = append(events, gui.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Mod:  mod,
					Down: true})
			case sdl.KEYUP:
				events = append(events, gui.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Mod:  mod,
					Down: false})
			}
		}
	}

	return events
}

// Play runs the emulation until the window is closed, the context is
// cancelled or the emulation faults. It must not be called from the main
// thread.
func (scr *SdlPlay) Play(ctx context.Context) error {
	err := scr.c.Run(ctx, scr.frame)

	for _, m := range scr.mixers {
		if mixErr := m.EndMixing(); mixErr != nil && err == nil {
			err = mixErr
		}
	}

	return err
}

// frame is called by hardware.Run() at the end of every frame.
func (scr *SdlPlay) frame() (govern.State, error) {
	var events []gui.Event
	var renderErr error

	chunk := scr.beeper.Frame(scr.c.SoundActive())

	mainthread.Call(func() {
		events = scr.service()
		renderErr = scr.render()
		if scr.aud != nil {
			if err := scr.aud.SetAudio(chunk); err != nil {
				logger.Log(logger.Allow, "sdlplay", err.Error())
			}
		}
	})

	if renderErr != nil {
		return govern.Ending, renderErr
	}

	for _, m := range scr.mixers {
		if err := m.SetAudio(chunk); err != nil {
			return govern.Ending, err
		}
	}

	for _, ev := range events {
		act, err := gui.HandleEvent(scr.c, ev)
		if err != nil {
			logger.Log(scr.c, "sdlplay", err.Error())
			continue // for loop
		}

		switch act {
		case gui.ActionQuit:
			return govern.Ending, nil
		case gui.ActionRestart:
			scr.drawn = false
			if scr.aud != nil {
				mainthread.Call(scr.aud.Reset)
			}
		}
	}

	return govern.Running, nil
}
