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

// Package display implements the 64x32 monochrome framebuffer of the CHIP-8.
// Pixels are addressed by index in row-major order, with index = x + y *
// Width.
//
// The framebuffer is only ever changed by Clear() or by XorPixel(). Each
// change increments the generation counter, which a host can use to decide
// whether the display needs to be redrawn.
package display

import (
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Dimensions of the display.
const (
	Width     = 64
	Height    = 32
	NumPixels = Width * Height
)

// Sentinal error patterns.
const (
	PixelOutOfRange = "display: pixel out of range (%d)"
)

// Display is the CHIP-8 framebuffer.
type Display struct {
	pixels [NumPixels]bool

	generation uint64
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{}
}

// Index returns the pixel index for the coordinates. Coordinates outside of
// the display are wrapped.
func Index(x int, y int) int {
	x %= Width
	if x < 0 {
		x += Width
	}
	y %= Height
	if y < 0 {
		y += Height
	}
	return x + y*Width
}

// Clear all pixels.
func (dsp *Display) Clear() {
	for i := range dsp.pixels {
		dsp.pixels[i] = false
	}
	dsp.generation++
}

// Reset is an alias for Clear(). The generation counter is not reset.
func (dsp *Display) Reset() {
	dsp.Clear()
}

// Get the state of a single pixel.
func (dsp *Display) Get(index int) (bool, error) {
	if index < 0 || index >= NumPixels {
		return false, curated.Errorf(PixelOutOfRange, index)
	}
	return dsp.pixels[index], nil
}

// XorPixel flips the pixel at index and returns the value the pixel had before
// it was flipped.
func (dsp *Display) XorPixel(index int) (bool, error) {
	if index < 0 || index >= NumPixels {
		return false, curated.Errorf(PixelOutOfRange, index)
	}
	prev := dsp.pixels[index]
	dsp.pixels[index] = !prev
	dsp.generation++
	return prev, nil
}

// Snapshot returns a copy of the framebuffer.
func (dsp *Display) Snapshot() []bool {
	s := make([]bool, NumPixels)
	copy(s, dsp.pixels[:])
	return s
}

// Generation returns the number of changes made to the framebuffer since
// construction.
func (dsp *Display) Generation() uint64 {
	return dsp.generation
}

// String renders the framebuffer as rows of text. A set pixel is '#' and an
// unset pixel is '.'.
func (dsp *Display) String() string {
	s := strings.Builder{}
	s.Grow((Width + 1) * Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if dsp.pixels[x+y*Width] {
				s.WriteByte('#')
			} else {
				s.WriteByte('.')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}
