// input.go
// Copyright (C) 2024 The scrabble-solver contributors

// This file implements board parsing and rendering (§7), grounded on
// the original command-line driver's row-by-row board-filling loop:
// unknown characters are logged and skipped rather than failing the
// whole parse, the same convention tray.go's NewTrayFromString follows.

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

import "strings"

// ParseBoard reads a board from up to BoardSize rows of text. '.', '_'
// and ' ' are empty squares; a lowercase letter is an ordinary tile; an
// uppercase letter is a played blank standing in for that letter (it
// matches cross-words as the letter but scores zero, same as
// Board.Place's valueTile convention); '*' is a bare board blank,
// matching any letter in cross-words and scoring zero itself (§6).
// Rows or columns beyond BoardSize are ignored; rows short of
// BoardSize are treated as empty past their length.
func ParseBoard(rows []string) *Board {
	board := NewBoard()
	for r := 0; r < BoardSize && r < len(rows); r++ {
		row := rows[r]
		for c := 0; c < BoardSize && c < len(row); c++ {
			b := row[c]
			switch {
			case b == '.' || b == ' ' || b == '_':
				continue
			case b == '*':
				board.Place(Position{Row: r, Col: c}, Wildcard, Wildcard)
			case b >= 'a' && b <= 'z':
				board.Place(Position{Row: r, Col: c}, Tile(b), Tile(b))
			case b >= 'A' && b <= 'Z':
				lower := b - 'A' + 'a'
				board.Place(Position{Row: r, Col: c}, Tile(lower), Wildcard)
			default:
				logger.Warn().Str("char", string(b)).Int("row", r).Int("col", c).
					Msg("unknown board character, skipped")
			}
		}
	}
	return board
}

// RenderBoard formats board back into the same textual convention
// ParseBoard reads, one row per line: a bare board blank as '*',
// played blanks uppercase, ordinary tiles lowercase.
func RenderBoard(board *Board) string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			sq := board.Letters[r][c]
			if !sq.Filled {
				sb.WriteByte('.')
				continue
			}
			if sq.Tile.IsWildcard {
				sb.WriteByte('*')
				continue
			}
			valueSq := board.Values[r][c]
			if valueSq.Filled && valueSq.Tile.IsWildcard {
				sb.WriteByte(sq.Tile.Letter - 'a' + 'A')
			} else {
				sb.WriteByte(sq.Tile.Letter)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
