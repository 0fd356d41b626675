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
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// Sample is recorded audio that can be used as the sound of the buzzer.
type Sample struct {
	Name       string
	SampleRate int

	// mono audio. the left channel is used for stereo source files
	Data []int16
}

// LoadSample from the named file. The file extension decides whether the
// file is decoded as WAV or MP3.
func LoadSample(filename string) (*Sample, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("sound: %v", err)
	}
	defer f.Close()

	s := &Sample{
		Name: filepath.Base(filename),
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		err = s.decodeWAV(f)
	case ".mp3":
		err = s.decodeMP3(f)
	default:
		return nil, curated.Errorf("sound: unsupported file type (%s)", s.Name)
	}
	if err != nil {
		return nil, curated.Errorf("sound: %v", err)
	}

	if len(s.Data) == 0 {
		return nil, curated.Errorf("sound: no audio in %s", s.Name)
	}

	logger.Logf(logger.Allow, "sound", "loaded %s (%d samples at %dHz)", s.Name, len(s.Data), s.SampleRate)

	return s, nil
}

func (s *Sample) decodeWAV(r io.ReadSeeker) error {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return curated.Errorf("wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return curated.Errorf("wav: %v", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		return curated.Errorf("wav: no channels")
	}

	s.SampleRate = int(dec.SampleRate)
	s.Data = make([]int16, 0, len(buf.Data)/chans)

	// first channel only. samples are scaled to 16 bits
	for i := 0; i < len(buf.Data); i += chans {
		v := buf.Data[i]
		switch dec.BitDepth {
		case 8:
			// 8 bit wav data is unsigned
			v = (v - 128) << 8
		case 24:
			v >>= 8
		case 32:
			v >>= 16
		}
		s.Data = append(s.Data, int16(v))
	}

	return nil
}

func (s *Sample) decodeMP3(r io.Reader) error {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return curated.Errorf("mp3: %v", err)
	}

	s.SampleRate = dec.SampleRate()

	// the decoded stream is always 16 bit little endian with two channels
	// regardless of the source. four bytes per sample
	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		for i := 0; i+1 < n; i += 4 {
			s.Data = append(s.Data, int16(uint16(chunk[i])|uint16(chunk[i+1])<<8))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break // for loop
			}
			return curated.Errorf("mp3: %v", err)
		}
	}

	return nil
}

// Resample returns the sample data converted to the sample rate. Conversion
// is by nearest neighbour.
func (s *Sample) Resample(rate int) []int16 {
	if s.SampleRate == rate || s.SampleRate <= 0 || rate <= 0 {
		d := make([]int16, len(s.Data))
		copy(d, s.Data)
		return d
	}

	n := int(int64(len(s.Data)) * int64(rate) / int64(s.SampleRate))
	d := make([]int16, n)
	for i := range d {
		d[i] = s.Data[int64(i)*int64(s.SampleRate)/int64(rate)]
	}
	return d
}
