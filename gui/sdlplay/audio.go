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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/sound"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of samples in the SDL audio buffer. the precise value is not
// critical
const bufferLength = 512

// the maximum number of bytes in the queue before audio is dropped. about
// four frames of audio
const maxQueued = sound.SampleRate / 15 * 2

// audio outputs sound using SDL. it implements the sound.Mixer interface.
type audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// reused buffer of little-endian 16 bit samples
	buf []uint8
}

func newAudio() (*audio, error) {
	aud := &audio{}

	spec := &sdl.AudioSpec{
		Freq:     sound.SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  bufferLength,
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlplay: audio: %v", err)
	}

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the sound.Mixer interface.
func (aud *audio) SetAudio(samples []int16) error {
	// drop audio rather than let the queue grow and the sound lag behind the
	// display
	if sdl.GetQueuedAudioSize(aud.id) > maxQueued {
		return nil
	}

	aud.buf = aud.buf[:0]
	for _, s := range samples {
		aud.buf = append(aud.buf, uint8(s), uint8(uint16(s)>>8))
	}

	if err := sdl.QueueAudio(aud.id, aud.buf); err != nil {
		return curated.Errorf("sdlplay: audio: %v", err)
	}

	return nil
}

// EndMixing implements the sound.Mixer interface.
func (aud *audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}

// Reset implements the sound.Mixer interface.
func (aud *audio) Reset() {
	sdl.ClearQueuedAudio(aud.id)
}
