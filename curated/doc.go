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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(), which takes a formatting pattern
// and placeholder values in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Each package that can
// raise a fault declares its patterns as exported string constants. For
// example, the memory package declares:
//
//	const AddressOutOfRange = "memory: address out of range (%#04x)"
//
// and callers test for it with Is() or Has():
//
//	err := mem.Write(0x1000, 0xff)
//	if curated.Is(err, memory.AddressOutOfRange) {
//		...
//	}
//
// Is() only looks at the outermost error. Has() searches the whole chain,
// which is what is needed when the CPU wraps a memory fault with the address
// of the faulting instruction:
//
//	if curated.Has(err, memory.AddressOutOfRange) {
//		...
//	}
//
// The Error() implementation normalises the chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": ". This means that
// wrapping an error with the same prefix that it already carries does not
// produce stuttering messages like "cpu: cpu: stack overflow".
//
// Curated errors implement Unwrap() so that the standard errors.Is() and
// errors.As() functions can reach non-curated errors (for example an
// *os.PathError) that have been wrapped inside a curated error.
package curated
