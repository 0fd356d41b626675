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

package termplay

import (
	"context"
	"io"
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/sound"
)

// DefaultHoldFrames is the number of frames a key is held after a key press.
const DefaultHoldFrames = 6

// TermPlay runs the emulation in a terminal.
type TermPlay struct {
	c *hardware.Chip8

	input  *os.File
	output io.Writer
	term   terminal

	// bytes read from the input file
	inputCh chan []byte

	hold keyHold

	// the display generation when the display was last drawn
	generation uint64
	drawn      bool

	// whether the buzzer was sounding in the previous frame
	buzzing bool

	beeper *sound.Beeper
	mixers []sound.Mixer
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. The input file should be a terminal.
func NewTermPlay(c *hardware.Chip8, input *os.File, output io.Writer, holdFrames int) (*TermPlay, error) {
	if input == nil || output == nil {
		return nil, curated.Errorf("termplay: input and output are required")
	}
	if holdFrames < 1 {
		return nil, curated.Errorf("termplay: illegal hold value (%d)", holdFrames)
	}

	beeper, err := sound.NewBeeper(hardware.FramesPerSecond)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	return &TermPlay{
		c:       c,
		input:   input,
		output:  output,
		inputCh: make(chan []byte, 16),
		hold:    keyHold{frames: holdFrames},
		beeper:  beeper,
	}, nil
}

// AddMixer adds a consumer of the buzzer audio.
func (tp *TermPlay) AddMixer(m sound.Mixer) {
	tp.mixers = append(tp.mixers, m)
}

// SetBeepSample replaces the buzzer tone with a recorded sample. The sample
// is only heard by the mixers. The terminal itself uses the bell character.
func (tp *TermPlay) SetBeepSample(s *sound.Sample) {
	tp.beeper.SetSample(s)
}

// Play runs the emulation until Escape or Ctrl-C is pressed, the context is
// cancelled or the emulation faults.
func (tp *TermPlay) Play(ctx context.Context) error {
	if err := tp.term.rawMode(tp.input); err != nil {
		return err
	}
	defer func() {
		io.WriteString(tp.output, showCursor)
		if err := tp.term.canonicalMode(); err != nil {
			logger.Log(logger.Allow, "termplay", err.Error())
		}
	}()

	io.WriteString(tp.output, clearScreen+hideCursor)

	// the reading goroutine remains blocked in Read() after Play() returns.
	// it ends when the input file is closed
	go func() {
		for {
			b := make([]byte, 16)
			n, err := tp.input.Read(b)
			if err != nil {
				close(tp.inputCh)
				return
			}
			tp.inputCh <- b[:n]
		}
	}()

	err := tp.c.Run(ctx, tp.frame)

	for _, m := range tp.mixers {
		if mixErr := m.EndMixing(); mixErr != nil && err == nil {
			err = mixErr
		}
	}

	return err
}

// frame is called by hardware.Run() at the end of every frame.
func (tp *TermPlay) frame() (govern.State, error) {
	for _, k := range tp.hold.tick() {
		if err := tp.c.SetKeyPress(k, false); err != nil {
			return govern.Ending, err
		}
	}

	done := false
	for !done {
		select {
		case b, ok := <-tp.inputCh:
			if !ok {
				return govern.Ending, nil
			}
			for _, ev := range parseInput(b) {
				act, err := gui.HandleEvent(tp.c, ev)
				if err != nil {
					logger.Log(tp.c, "termplay", err.Error())
					continue // for loop
				}

				switch act {
				case gui.ActionQuit:
					return govern.Ending, nil
				case gui.ActionRestart:
					tp.hold.reset()
					tp.drawn = false
				case gui.ActionNone:
					if kev, ok := ev.(gui.EventKeyboard); ok {
						if k, ok := gui.KeypadKey(kev.Key); ok {
							tp.hold.press(k)
						}
					}
				}
			}
		default:
			done = true
		}
	}

	if gen := tp.c.Display.Generation(); !tp.drawn || gen != tp.generation {
		tp.generation = gen
		tp.drawn = true
		if _, err := io.WriteString(tp.output, render(tp.c.GetDisplay())); err != nil {
			return govern.Ending, curated.Errorf("termplay: %v", err)
		}
	}

	active := tp.c.SoundActive()
	if active && !tp.buzzing {
		io.WriteString(tp.output, bell)
	}
	tp.buzzing = active

	if len(tp.mixers) > 0 {
		chunk := tp.beeper.Frame(active)
		for _, m := range tp.mixers {
			if err := m.SetAudio(chunk); err != nil {
				return govern.Ending, err
			}
		}
	}

	return govern.Running, nil
}
