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
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// SampleRate used for all audio produced by the package.
const SampleRate = 44100

// DefaultFrequency of the buzzer tone.
const DefaultFrequency = 440

// Amplitude of the buzzer tone. A quarter of full scale.
const Amplitude = 8192

// Tone is a square wave generator.
type Tone struct {
	frequency  int
	sampleRate int

	// position in the period of the wave, measured in samples scaled by the
	// frequency. the wave is high for the first half of the period
	phase int
}

// NewTone is the preferred method of initialisation for the Tone type.
func NewTone(frequency int, sampleRate int) (*Tone, error) {
	if frequency <= 0 || sampleRate <= 0 {
		return nil, curated.Errorf("sound: invalid tone (%dHz at %dHz)", frequency, sampleRate)
	}
	if frequency*2 > sampleRate {
		return nil, curated.Errorf("sound: tone frequency too high (%dHz at %dHz)", frequency, sampleRate)
	}
	return &Tone{
		frequency:  frequency,
		sampleRate: sampleRate,
	}, nil
}

func (t *Tone) String() string {
	return fmt.Sprintf("%dHz", t.frequency)
}

// Reset the tone to the beginning of the wave.
func (t *Tone) Reset() {
	t.phase = 0
}

// Generate n samples. The wave continues from where the previous call to
// Generate() finished.
func (t *Tone) Generate(n int) []int16 {
	d := make([]int16, n)
	for i := range d {
		if t.phase < t.sampleRate/2 {
			d[i] = Amplitude
		} else {
			d[i] = -Amplitude
		}
		t.phase += t.frequency
		if t.phase >= t.sampleRate {
			t.phase -= t.sampleRate
		}
	}
	return d
}
