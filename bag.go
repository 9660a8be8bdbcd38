// bag.go
// Copyright (C) 2024 The scrabble-solver contributors

// This file contains the pluggable letter-value tables (§6's "a
// letter->value map, default: standard English Scrabble values"),
// generalized from the teacher's per-language TileSet score maps
// (Icelandic/Polish/Norwegian) to the two English variants the
// original source ships.

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

// LetterValues maps a lowercase letter byte to its score.
type LetterValues [256]int

// StandardEnglishValues is the default English Scrabble letter value
// table.
var StandardEnglishValues = buildValues(map[byte]int{
	'a': 1, 'b': 3, 'c': 4, 'd': 2, 'e': 1,
	'f': 4, 'g': 2, 'h': 4, 'i': 1, 'j': 8,
	'k': 5, 'l': 1, 'm': 3, 'n': 1, 'o': 1,
	'p': 3, 'q': 10, 'r': 1, 's': 1, 't': 1,
	'u': 1, 'v': 4, 'w': 4, 'x': 8, 'y': 4, 'z': 10,
})

// WordsWithFriendsValues is the alternate letter value table used by
// Words With Friends, differing from standard Scrabble in several
// letters' weights.
var WordsWithFriendsValues = buildValues(map[byte]int{
	'a': 1, 'b': 4, 'c': 4, 'd': 2, 'e': 1,
	'f': 4, 'g': 3, 'h': 3, 'i': 1, 'j': 10,
	'k': 5, 'l': 2, 'm': 4, 'n': 2, 'o': 1,
	'p': 3, 'q': 10, 'r': 1, 's': 1, 't': 1,
	'u': 2, 'v': 5, 'w': 4, 'x': 8, 'y': 3, 'z': 10,
})

func buildValues(m map[byte]int) LetterValues {
	var v LetterValues
	for b, score := range m {
		v[b] = score
	}
	return v
}

// ScoreFor returns the point value of tile under v. A wildcard
// always scores zero, on the board or in the tray, regardless of
// which letter it represents.
func (v LetterValues) ScoreFor(tile LetterTile) int {
	if tile.IsWildcard {
		return 0
	}
	return v[tile.Letter]
}
