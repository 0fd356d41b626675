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

package gui

import (
	"github.com/jetsetilly/gopher8/curated"
)

// PixelDepth is the number of bytes per pixel in an RGBA pixel buffer.
const PixelDepth = 4

// Color of a pixel.
type Color struct {
	R, G, B uint8
}

// The default colours used by the hosts.
var (
	DefaultOn  = Color{R: 0xe8, G: 0xe8, B: 0xd0}
	DefaultOff = Color{R: 0x18, G: 0x18, B: 0x20}
)

// RenderRGBA writes the display into a buffer of RGBA pixels, four bytes per
// pixel. This is the memory layout of the SDL ABGR8888 texture format on
// little-endian machines. The alpha channel is always opaque.
func RenderRGBA(dst []uint8, pixels []bool, on Color, off Color) error {
	if len(dst) != len(pixels)*PixelDepth {
		return curated.Errorf("gui: pixel buffer is the wrong size (%d bytes for %d pixels)", len(dst), len(pixels))
	}

	for i, p := range pixels {
		c := off
		if p {
			c = on
		}
		j := i * PixelDepth
		dst[j] = c.R
		dst[j+1] = c.G
		dst[j+2] = c.B
		dst[j+3] = 0xff
	}

	return nil
}
