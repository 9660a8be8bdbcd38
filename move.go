// move.go
// Copyright (C) 2024 The scrabble-solver contributors

// This file implements Move (§3): the concrete shape a materialized
// placement takes, plus MoveKey, the comparable canonicalization used
// to key the concurrent Move->words map (§4.7). Rust's derived
// Hash/Eq works directly on enums holding slices; Go map keys must be
// comparable, so Moves are canonicalized to a string key instead.

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

// GapTile is one tile in a MultiLettersMove after the first: Gap
// counts the board-occupied squares skipped since the previous
// placed tile.
type GapTile struct {
	Gap  int
	Tile LetterTile
}

// Move is either a single played tile (attaching to an existing run)
// or a placement of several tiles along a Placement axis.
type Move interface {
	isMove()
	// Key returns a canonical, comparable representation suitable
	// for use as a map key.
	Key() MoveKey
}

// MoveKey is the comparable canonicalization of a Move, used as the
// key of the concurrent Move->words map.
type MoveKey string

// SingleLetterMove plays exactly one tile at pos.
type SingleLetterMove struct {
	Pos  Position
	Tile LetterTile
}

func (SingleLetterMove) isMove() {}

// Key implements Move.
func (m SingleLetterMove) Key() MoveKey {
	var sb strings.Builder
	sb.WriteByte('S')
	writeInt(&sb, m.Pos.Row)
	sb.WriteByte(',')
	writeInt(&sb, m.Pos.Col)
	sb.WriteByte(',')
	writeTile(&sb, m.Tile)
	return MoveKey(sb.String())
}

// MultiLettersMove plays two or more tiles along Anchor's axis,
// starting with First and continuing through Rest. Rest's Gap counts
// board-occupied squares skipped between consecutive played tiles.
type MultiLettersMove struct {
	Anchor Placement
	First  LetterTile
	Rest   []GapTile
}

func (MultiLettersMove) isMove() {}

// Key implements Move.
func (m MultiLettersMove) Key() MoveKey {
	var sb strings.Builder
	sb.WriteByte('M')
	writeInt(&sb, m.Anchor.Pos.Row)
	sb.WriteByte(',')
	writeInt(&sb, m.Anchor.Pos.Col)
	sb.WriteByte(',')
	writeInt(&sb, int(m.Anchor.Dir))
	sb.WriteByte(';')
	writeTile(&sb, m.First)
	for _, g := range m.Rest {
		sb.WriteByte(';')
		writeInt(&sb, g.Gap)
		sb.WriteByte(':')
		writeTile(&sb, g.Tile)
	}
	return MoveKey(sb.String())
}

// NumTilesPlayed returns how many tray tiles a move consumes.
func NumTilesPlayed(m Move) int {
	switch mv := m.(type) {
	case SingleLetterMove:
		return 1
	case MultiLettersMove:
		return 1 + len(mv.Rest)
	default:
		return 0
	}
}

func writeTile(sb *strings.Builder, t LetterTile) {
	if t.IsWildcard {
		sb.WriteByte('*')
	} else {
		sb.WriteByte(t.Letter)
	}
}

func writeInt(sb *strings.Builder, n int) {
	if n < 0 {
		sb.WriteByte('-')
		n = -n
	}
	if n == 0 {
		sb.WriteByte('0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	sb.Write(buf[i:])
}
