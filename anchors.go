// anchors.go
// Copyright (C) 2024 The scrabble-solver contributors

// This file implements anchor enumeration (§4.4): for each line along
// a play direction, the empty-or-filled squares a candidate word may
// start scanning from, together with the minimum length a word from
// that anchor must cover to be legally attached to the board.

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

// Anchor is one (placement, line-suffix, min-length) triple the
// ScrabbleAutomaton searches from.
type Anchor struct {
	Placement Placement
	Line      []RestrictedSquare
	MinLen    int
}

// EnumerateAnchors yields every anchor for dir, scanning the lines
// that run along dir (rows for Horizontal, columns for Vertical).
func EnumerateAnchors(board *Board, cb *ConstraintBoard, dir Direction) []Anchor {
	var anchors []Anchor
	boardEmpty := board.IsEmpty()
	for fixed := 0; fixed < BoardSize; fixed++ {
		line := extractLine(cb, dir, fixed)
		for i := 0; i < BoardSize; i++ {
			if i > 0 && line[i-1].IsFilled {
				// mid-run: can't start a word here, it was already
				// reachable from the anchor before this run started.
				continue
			}
			minLen, ok := attachmentDistance(board, line, dir, fixed, i, boardEmpty)
			if !ok {
				continue
			}
			if minLen < 2 {
				minLen = 2
			}
			anchors = append(anchors, Anchor{
				Placement: linePosition(dir, fixed, i),
				Line:      line[i:],
				MinLen:    minLen,
			})
		}
	}
	return anchors
}

// extractLine pulls out the RestrictedSquare row/column at index
// fixed from the constraint board.
func extractLine(cb *ConstraintBoard, dir Direction, fixed int) []RestrictedSquare {
	line := make([]RestrictedSquare, BoardSize)
	for i := 0; i < BoardSize; i++ {
		pos := linePosition(dir, fixed, i).Pos
		line[i] = cb.Squares[pos.Row][pos.Col]
	}
	return line
}

// linePosition returns the Placement of line index i within the
// line identified by fixed, for lines running along dir: rows for
// Horizontal (fixed = row, i = column), columns for Vertical
// (fixed = column, i = row).
func linePosition(dir Direction, fixed, i int) Placement {
	if dir == Horizontal {
		return Placement{Pos: Position{Row: fixed, Col: i}, Dir: dir}
	}
	return Placement{Pos: Position{Row: i, Col: fixed}, Dir: dir}
}

// attachmentDistance walks forward from line index anchor, returning
// the 1-based count of squares that must be covered to reach the
// first square satisfying the attachment criterion (filled, a
// finite perpendicular constraint, or the board centre on an
// otherwise empty board). ok is false if the line has no such square
// from anchor onward.
func attachmentDistance(board *Board, line []RestrictedSquare, dir Direction, fixed, anchor int, boardEmpty bool) (int, bool) {
	for j := anchor; j < len(line); j++ {
		sq := line[j]
		if sq.IsFilled || !sq.Set.Equal(Alphabet) {
			return j - anchor + 1, true
		}
		if boardEmpty && linePosition(dir, fixed, j).Pos == Center {
			return j - anchor + 1, true
		}
	}
	return 0, false
}
