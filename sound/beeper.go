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

import (
	"github.com/jetsetilly/gopher8/curated"
)

// Beeper converts the state of the buzzer into audio. One chunk of audio is
// produced for every frame.
type Beeper struct {
	tone *Tone

	// if sample is not nil then it is played instead of the tone. the
	// sample loops for as long as the buzzer is active
	sample    []int16
	samplePos int

	samplesPerFrame int
	silence         []int16

	// the state of the buzzer in the previous frame
	active bool
}

// NewBeeper is the preferred method of initialisation for the Beeper type.
func NewBeeper(framesPerSecond int) (*Beeper, error) {
	if framesPerSecond <= 0 || framesPerSecond > SampleRate {
		return nil, curated.Errorf("sound: invalid frame rate (%d)", framesPerSecond)
	}

	tone, err := NewTone(DefaultFrequency, SampleRate)
	if err != nil {
		return nil, err
	}

	n := SampleRate / framesPerSecond
	return &Beeper{
		tone:            tone,
		samplesPerFrame: n,
		silence:         make([]int16, n),
	}, nil
}

// SamplesPerFrame returns the length of every chunk returned by Frame().
func (b *Beeper) SamplesPerFrame() int {
	return b.samplesPerFrame
}

// SetTone changes the frequency of the buzzer tone.
func (b *Beeper) SetTone(frequency int) error {
	tone, err := NewTone(frequency, SampleRate)
	if err != nil {
		return err
	}
	b.tone = tone
	return nil
}

// SetSample to use instead of the tone. A nil sample restores the tone.
func (b *Beeper) SetSample(s *Sample) {
	if s == nil {
		b.sample = nil
	} else {
		b.sample = s.Resample(SampleRate)
	}
	b.samplePos = 0
}

// Frame returns the audio for one frame. The audio is silent if the buzzer is
// not active. The sample or tone restarts whenever the buzzer is activated.
func (b *Beeper) Frame(active bool) []int16 {
	if !active {
		b.active = false
		return b.silence
	}

	if !b.active {
		b.active = true
		b.tone.Reset()
		b.samplePos = 0
	}

	if len(b.sample) == 0 {
		return b.tone.Generate(b.samplesPerFrame)
	}

	d := make([]int16, b.samplesPerFrame)
	for i := range d {
		d[i] = b.sample[b.samplePos]
		b.samplePos++
		if b.samplePos >= len(b.sample) {
			b.samplePos = 0
		}
	}
	return d
}
