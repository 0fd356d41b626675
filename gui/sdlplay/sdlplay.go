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
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/sound"
	"github.com/veandco/go-sdl2/sdl"
)

// DefaultScale is the size of each CHIP-8 pixel in window pixels.
const DefaultScale = 10

// SdlPlay is a simple SDL window for playing CHIP-8 programs.
type SdlPlay struct {
	c *hardware.Chip8

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// RGBA pixels copied to the texture when the display changes
	pixels []uint8

	// the display generation when the texture was last updated
	generation uint64
	drawn      bool

	// aud will be nil if no audio device could be opened
	aud    *audio
	beeper *sound.Beeper

	// additional mixers. for example, a wavwriter
	mixers []sound.Mixer
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. It must
// be called from the main thread.
func NewSdlPlay(c *hardware.Chip8, scale int) (*SdlPlay, error) {
	if scale < 1 {
		return nil, curated.Errorf("sdlplay: illegal scale value (%d)", scale)
	}

	scr := &SdlPlay{
		c:      c,
		pixels: make([]uint8, display.NumPixels*gui.PixelDepth),
	}

	var err error

	scr.beeper, err = sound.NewBeeper(hardware.FramesPerSecond)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	title := "Gopher8"
	if ld := c.Loader(); ld.HasLoaded() {
		title = fmt.Sprintf("Gopher8 - %s", ld.ShortName())
	}

	scr.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(display.Width*scale), int32(display.Height*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is the same size as the display. it is stretched to fill the
	// window when it is copied to the renderer
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(display.Width), int32(display.Height))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// no sound is not fatal
	scr.aud, err = newAudio()
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err.Error())
	}

	logger.Logf(logger.Allow, "sdlplay", "window opened at scale %d", scale)

	return scr, nil
}

// Destroy the window and release SDL resources. It must be called from the
// main thread.
func (scr *SdlPlay) Destroy() {
	if scr.aud != nil {
		_ = scr.aud.EndMixing()
	}
	if scr.texture != nil {
		scr.texture.Destroy()
	}
	if scr.renderer != nil {
		scr.renderer.Destroy()
	}
	if scr.window != nil {
		scr.window.Destroy()
	}
	sdl.Quit()
}

// AddMixer adds an additional consumer of the buzzer audio.
func (scr *SdlPlay) AddMixer(m sound.Mixer) {
	scr.mixers = append(scr.mixers, m)
}

// SetBeepSample replaces the buzzer tone with a recorded sample.
func (scr *SdlPlay) SetBeepSample(s *sound.Sample) {
	scr.beeper.SetSample(s)
}

// render the display to the window if it has changed since the last call.
// must be called from the main thread.
func (scr *SdlPlay) render() error {
	gen := scr.c.Display.Generation()
	if scr.drawn && gen == scr.generation {
		return nil
	}
	scr.generation = gen
	scr.drawn = true

	err := gui.RenderRGBA(scr.pixels, scr.c.GetDisplay(), gui.DefaultOn, gui.DefaultOff)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.texture.Update(nil, scr.pixels, display.Width*gui.PixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}
