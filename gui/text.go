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
	"strings"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// the characters used to draw a pair of vertically adjacent pixels. indexed
// by top pixel + bottom pixel * 2
var halfBlocks = [4]string{" ", "▀", "▄", "█"}

// HalfBlockLines renders the display as lines of text. Each line shows two
// rows of pixels using the Unicode half-block characters.
func HalfBlockLines(pixels []bool) []string {
	lines := make([]string, 0, display.Height/2)

	s := strings.Builder{}
	for y := 0; y < display.Height; y += 2 {
		s.Reset()
		for x := 0; x < display.Width; x++ {
			i := 0
			if pixels[display.Index(x, y)] {
				i |= 1
			}
			if pixels[display.Index(x, y+1)] {
				i |= 2
			}
			s.WriteString(halfBlocks[i])
		}
		lines = append(lines, s.String())
	}

	return lines
}
