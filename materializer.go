// materializer.go
// Copyright (C) 2024 The scrabble-solver contributors

// This file implements the move materializer (§4.6): it expands an
// accepted (word, wildcard-assignments) pair into the set of Moves
// that realize it, enumerating every minimal assignment of blanks to
// word positions. This uses the combinatorial alternative §9
// explicitly sanctions instead of the reference recursive branching:
// for each letter needing k blanks, choose k of its candidate
// occurrences directly via combinations() rather than branching at
// every occurrence.

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

// MaterializeMoves expands one accepted word into every Move it
// implies, given the anchor it was found from and the line of
// RestrictedSquares (Filled squares are reused board tiles; Empty
// squares are where new tiles are played).
func MaterializeMoves(anchor Placement, line []RestrictedSquare, word AcceptedWord) []Move {
	wordBytes := []byte(word.Word)

	intersection := map[int]bool{}
	missing := map[byte]int{}
	for _, wc := range word.Wildcards {
		switch wc.Kind {
		case Intersection:
			intersection[wc.Index] = true
		case MissingLetter:
			missing[wc.Letter]++
		}
	}

	// candidates[b] = empty, non-intersection positions whose word
	// byte is b - the pool a blank standing in for b may come from.
	candidates := map[byte][]int{}
	for i, b := range wordBytes {
		if i >= len(line) || line[i].IsFilled || intersection[i] {
			continue
		}
		candidates[b] = append(candidates[b], i)
	}

	// choiceSets[b] is every way to pick missing[b] of candidates[b]
	// to be the blank; letters with missing[b] == 0 have exactly one
	// (empty) choice, meaning every occurrence is a literal tile.
	var choiceSets [][][]int
	for b, pool := range candidates {
		k := missing[b]
		if k > len(pool) {
			// automaton/materializer disagreement: no valid assignment
			return nil
		}
		choiceSets = append(choiceSets, combinations(pool, k))
	}

	var moves []Move
	forEachCombination(choiceSets, func(chosen [][]int) {
		blankAt := map[int]bool{}
		for i := range intersection {
			blankAt[i] = true
		}
		for _, positions := range chosen {
			for _, i := range positions {
				blankAt[i] = true
			}
		}
		moves = append(moves, buildMove(anchor, line, wordBytes, blankAt))
	})
	return moves
}

// forEachCombination calls f once per element of the cartesian
// product of sets, where sets[i] is one letter's list of candidate
// blank-position-sets.
func forEachCombination(sets [][][]int, f func(chosen [][]int)) {
	if len(sets) == 0 {
		f(nil)
		return
	}
	chosen := make([][]int, len(sets))
	var rec func(i int)
	rec = func(i int) {
		if i == len(sets) {
			f(chosen)
			return
		}
		for _, option := range sets[i] {
			chosen[i] = option
			rec(i + 1)
		}
	}
	rec(0)
}

// buildMove walks the line and word together, producing the tile at
// each played (Empty) position per blankAt, and folds the result into
// a SingleLetterMove or MultiLettersMove.
func buildMove(anchor Placement, line []RestrictedSquare, word []byte, blankAt map[int]bool) Move {
	type played struct {
		pl   Placement
		tile LetterTile
	}
	var plays []played
	pl := anchor
	for i := range word {
		if i < len(line) && line[i].IsFilled {
			// reused board tile: contributes to the next played
			// tile's gap via stepsBetween, not to plays itself.
		} else {
			tile := Tile(word[i])
			if blankAt[i] {
				tile = Wildcard
			}
			plays = append(plays, played{pl: pl, tile: tile})
		}
		pl = pl.Next()
	}

	if len(plays) == 1 {
		return SingleLetterMove{Pos: plays[0].pl.Pos, Tile: plays[0].tile}
	}

	rest := make([]GapTile, 0, len(plays)-1)
	prevPl := plays[0].pl
	for _, p := range plays[1:] {
		gap := stepsBetween(prevPl, p.pl) - 1
		rest = append(rest, GapTile{Gap: gap, Tile: p.tile})
		prevPl = p.pl
	}
	return MultiLettersMove{Anchor: plays[0].pl, First: plays[0].tile, Rest: rest}
}

// stepsBetween returns how many Next() steps separate a from b along
// their shared direction.
func stepsBetween(a, b Placement) int {
	if a.Dir == Vertical {
		return b.Pos.Row - a.Pos.Row
	}
	return b.Pos.Col - a.Pos.Col
}
