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

//go:build !windows

package termplay

import (
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// terminal switches an input file between canonical and raw modes.
type terminal struct {
	fd      uintptr
	canAttr unix.Termios
}

func (t *terminal) rawMode(f *os.File) error {
	t.fd = f.Fd()

	if err := termios.Tcgetattr(t.fd, &t.canAttr); err != nil {
		return curated.Errorf("termplay: %v", err)
	}

	raw := t.canAttr
	termios.Cfmakeraw(&raw)

	if err := termios.Tcsetattr(t.fd, termios.TCSANOW, &raw); err != nil {
		return curated.Errorf("termplay: %v", err)
	}

	return nil
}

func (t *terminal) canonicalMode() error {
	if err := termios.Tcsetattr(t.fd, termios.TCSANOW, &t.canAttr); err != nil {
		return curated.Errorf("termplay: %v", err)
	}
	return termios.Tcflush(t.fd, termios.TCIFLUSH)
}
