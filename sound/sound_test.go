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

package sound_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/google/go-cmp/cmp"
	"github.com/jetsetilly/gopher8/sound"
	"github.com/jetsetilly/gopher8/test"
)

func TestTone(t *testing.T) {
	_, err := sound.NewTone(0, sound.SampleRate)
	test.ExpectFailure(t, err)
	_, err = sound.NewTone(sound.SampleRate, sound.SampleRate)
	test.ExpectFailure(t, err)

	// four samples per period
	tone, err := sound.NewTone(sound.SampleRate/4, sound.SampleRate)
	test.DemandSuccess(t, err)

	a := int16(sound.Amplitude)
	want := []int16{a, a, -a, -a, a, a}
	if diff := cmp.Diff(want, tone.Generate(6)); diff != "" {
		t.Errorf("tone mismatch (-want +got):\n%s", diff)
	}

	// wave continues between calls
	want = []int16{-a, -a, a}
	if diff := cmp.Diff(want, tone.Generate(3)); diff != "" {
		t.Errorf("tone mismatch (-want +got):\n%s", diff)
	}

	tone.Reset()
	test.ExpectEquality(t, tone.Generate(1)[0], a)
}

func TestBeeper(t *testing.T) {
	_, err := sound.NewBeeper(0)
	test.ExpectFailure(t, err)

	b, err := sound.NewBeeper(60)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.SamplesPerFrame(), 735)

	silent := b.Frame(false)
	test.DemandEquality(t, len(silent), 735)
	for _, v := range silent {
		test.DemandEquality(t, v, int16(0))
	}

	loud := b.Frame(true)
	test.DemandEquality(t, len(loud), 735)
	test.ExpectEquality(t, loud[0], int16(sound.Amplitude))

	test.ExpectFailure(t, b.SetTone(-1))
	test.ExpectSuccess(t, b.SetTone(880))
}

func TestBeeperSample(t *testing.T) {
	b, err := sound.NewBeeper(sound.SampleRate / 4)
	test.DemandSuccess(t, err)

	b.SetSample(&sound.Sample{
		SampleRate: sound.SampleRate,
		Data:       []int16{1, 2, 3},
	})

	if diff := cmp.Diff([]int16{1, 2, 3, 1}, b.Frame(true)); diff != "" {
		t.Errorf("beeper mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int16{2, 3, 1, 2}, b.Frame(true)); diff != "" {
		t.Errorf("beeper mismatch (-want +got):\n%s", diff)
	}

	// sample restarts when buzzer is activated again
	b.Frame(false)
	if diff := cmp.Diff([]int16{1, 2, 3, 1}, b.Frame(true)); diff != "" {
		t.Errorf("beeper mismatch (-want +got):\n%s", diff)
	}

	b.SetSample(nil)
	test.ExpectEquality(t, b.Frame(true)[0], int16(sound.Amplitude))
}

func TestResample(t *testing.T) {
	s := sound.Sample{SampleRate: 100, Data: []int16{1, 2, 3, 4}}
	if diff := cmp.Diff([]int16{1, 3}, s.Resample(50)); diff != "" {
		t.Errorf("resample mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int16{1, 1, 2, 2, 3, 3, 4, 4}, s.Resample(200)); diff != "" {
		t.Errorf("resample mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(s.Data, s.Resample(100)); diff != "" {
		t.Errorf("resample mismatch (-want +got):\n%s", diff)
	}
}

func writeWAV(t *testing.T, fn string, chans int, data []int) {
	t.Helper()

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, 8000, 16, chans, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: chans, SampleRate: 8000},
		Data:           data,
		SourceBitDepth: 16,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
}

func TestLoadSampleWAV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "beep.wav")
	writeWAV(t, fn, 2, []int{100, -1, -200, -1, 300, -1})

	s, err := sound.LoadSample(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Name, "beep.wav")
	test.ExpectEquality(t, s.SampleRate, 8000)
	if diff := cmp.Diff([]int16{100, -200, 300}, s.Data); diff != "" {
		t.Errorf("sample mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSampleErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := sound.LoadSample(filepath.Join(dir, "missing.wav"))
	test.ExpectFailure(t, err)

	fn := filepath.Join(dir, "beep.txt")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("beep"), 0600))
	_, err = sound.LoadSample(fn)
	test.ExpectFailure(t, err)

	fn = filepath.Join(dir, "bad.wav")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a wav file"), 0600))
	_, err = sound.LoadSample(fn)
	test.ExpectFailure(t, err)
}
