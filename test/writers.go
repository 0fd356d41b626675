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

package test

import (
	"fmt"
	"strings"
)

// CompareWriter is an implementation of io.Writer that keeps everything
// written to it. The captured output can then be tested against an expected
// string.
//
// The zero value is ready to use. A CompareWriter should not be copied after
// the first Write().
type CompareWriter struct {
	strings.Builder
}

// Clear discards all captured output.
func (w *CompareWriter) Clear() {
	w.Reset()
}

// Compare returns true if the captured output is exactly s.
func (w *CompareWriter) Compare(s string) bool {
	return w.String() == s
}

// Contains returns true if s appears anywhere in the captured output.
func (w *CompareWriter) Contains(s string) bool {
	return strings.Contains(w.String(), s)
}

// Lines returns the captured output split on newlines. A trailing newline
// does not produce an empty final line.
func (w *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(w.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// RingWriter is an implementation of io.Writer that keeps only the most
// recent bytes written to it. Useful for checking the tail of long output.
type RingWriter struct {
	buffer []byte
	size   int
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (r *RingWriter) String() string {
	return string(r.buffer)
}

// Reset empties the ring.
func (r *RingWriter) Reset() {
	r.buffer = r.buffer[:0]
}

// Write implements the io.Writer interface.
func (r *RingWriter) Write(p []byte) (int, error) {
	n := len(p)
	if n >= r.size {
		r.buffer = append(r.buffer[:0], p[n-r.size:]...)
		return n, nil
	}

	if drop := len(r.buffer) + n - r.size; drop > 0 {
		r.buffer = append(r.buffer[:0], r.buffer[drop:]...)
	}
	r.buffer = append(r.buffer, p...)

	return n, nil
}
