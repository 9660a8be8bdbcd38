// tray.go
// Copyright (C) 2024 The scrabble-solver contributors

// This file implements Tray, a fixed-capacity multiset of letters
// plus a blank count, with copy-on-remove semantics.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package solver

// Tray is a value-semantic multiset of letter tiles plus blanks. It
// is cheap to copy (fixed 256-entry array) which is exactly what the
// automaton needs: every transition produces a new Tray rather than
// mutating a shared one.
type Tray struct {
	counts  [256]uint8
	blanks  uint8
	total   uint32
}

// NewTray builds a Tray from a list of letter bytes and a blank count.
func NewTray(letters []byte, blanks uint8) Tray {
	var t Tray
	for _, b := range letters {
		t.counts[b]++
	}
	t.blanks = blanks
	t.total = uint32(len(letters)) + uint32(blanks)
	return t
}

// NewTrayFromString parses a tray string where case-insensitive
// letters are letter tiles and '*' is a blank. Unknown characters are
// reported via unknown (one entry per offending byte) rather than
// failing the parse, matching the board/tray input convention (§7:
// unknown characters are logged and skipped, not an error).
func NewTrayFromString(s string) (tray Tray, unknown []byte) {
	var letters []byte
	var blanks uint8
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 'A' && b <= 'Z':
			letters = append(letters, b-'A'+'a')
		case b >= 'a' && b <= 'z':
			letters = append(letters, b)
		case b == '*':
			blanks++
		default:
			unknown = append(unknown, b)
		}
	}
	return NewTray(letters, blanks), unknown
}

// Total returns the number of tiles currently held (letters + blanks).
func (t Tray) Total() uint32 {
	return t.total
}

// IsEmpty reports whether the tray holds no tiles at all.
func (t Tray) IsEmpty() bool {
	return t.total == 0
}

// CountOf returns how many of letter b the tray currently holds.
func (t Tray) CountOf(b byte) uint8 {
	return t.counts[b]
}

// Blanks returns the number of wildcard tiles currently held.
func (t Tray) Blanks() uint8 {
	return t.blanks
}

// Remove returns a copy of the tray with one instance of b consumed,
// or false if none is available.
func (t Tray) Remove(b byte) (Tray, bool) {
	if t.counts[b] == 0 {
		return Tray{}, false
	}
	next := t
	next.counts[b]--
	next.total--
	return next, true
}

// RemoveWildcard returns a copy of the tray with one blank consumed,
// or false if none is available.
func (t Tray) RemoveWildcard() (Tray, bool) {
	if t.blanks == 0 {
		return Tray{}, false
	}
	next := t
	next.blanks--
	next.total--
	return next, true
}
