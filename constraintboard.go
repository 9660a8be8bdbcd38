// constraintboard.go
// Copyright (C) 2024 The scrabble-solver contributors

// This file implements ConstraintBoard construction (§4.3): for each
// empty square, the set of letters that would legally complete the
// perpendicular cross-word, memoized behind an LRU cache the way the
// teacher's dawg.go memoizes CrossSet lookups in its own crossCache.

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

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// RestrictedSquare is either a pre-existing tile (Filled) or an
// empty square annotated with the set of letters admissible there
// (Empty).
type RestrictedSquare struct {
	IsFilled bool
	Tile     LetterTile // meaningful iff IsFilled
	Set      LetterSet  // meaningful iff !IsFilled
}

// ConstraintBoard is the 15x15 grid of RestrictedSquares for one play
// direction, plus the direction it constrains moves for.
type ConstraintBoard struct {
	Dir     Direction
	Squares [BoardSize][BoardSize]RestrictedSquare
}

// CrossWordChecker memoizes crossSet results keyed by the
// perpendicular prefix/suffix pattern, generalizing the teacher's
// dawg.go crossCache (a simplelru.LRU keyed by pattern string) to a
// generic, type-safe cache.
type CrossWordChecker struct {
	lex   *Lexicon
	cache *lru.Cache[string, LetterSet]
}

// DefaultCrossCacheSize is the number of distinct prefix/suffix
// patterns memoized per evaluation.
const DefaultCrossCacheSize = 4096

// NewCrossWordChecker builds a checker backed by lex with the given
// cache capacity.
func NewCrossWordChecker(lex *Lexicon, cacheSize int) *CrossWordChecker {
	if cacheSize <= 0 {
		cacheSize = DefaultCrossCacheSize
	}
	c, _ := lru.New[string, LetterSet](cacheSize)
	return &CrossWordChecker{lex: lex, cache: c}
}

// CrossSet returns the admissible LetterSet for a square with the
// given perpendicular prefix and suffix tiles.
func (c *CrossWordChecker) CrossSet(prefix, suffix []LetterTile) LetterSet {
	if len(prefix) == 0 && len(suffix) == 0 {
		return Alphabet
	}
	key := patternKey(prefix, suffix)
	if set, ok := c.cache.Get(key); ok {
		return set
	}
	set := crossSet(c.lex, prefix, suffix)
	c.cache.Add(key, set)
	return set
}

func patternKey(prefix, suffix []LetterTile) string {
	var sb strings.Builder
	writeTiles(&sb, prefix)
	sb.WriteByte('|')
	writeTiles(&sb, suffix)
	return sb.String()
}

func writeTiles(sb *strings.Builder, tiles []LetterTile) {
	for _, t := range tiles {
		if t.IsWildcard {
			sb.WriteByte('?')
		} else {
			sb.WriteByte(t.Letter)
		}
	}
}

// BuildConstraintBoard constructs the ConstraintBoard for dir: every
// empty square's Set is computed from the contiguous run of filled
// tiles immediately on either side of it along dir.Perp().
func BuildConstraintBoard(board *Board, checker *CrossWordChecker, dir Direction) *ConstraintBoard {
	cb := &ConstraintBoard{Dir: dir}
	perp := dir.Perp()
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := Position{Row: r, Col: c}
			sq := board.At(p)
			if sq.Filled {
				cb.Squares[r][c] = RestrictedSquare{IsFilled: true, Tile: sq.Tile}
				continue
			}
			prefix := collectRun(board, p, perp, back)
			suffix := collectRun(board, p, perp, forward)
			cb.Squares[r][c] = RestrictedSquare{Set: checker.CrossSet(prefix, suffix)}
		}
	}
	return cb
}

type walkStep int

const (
	back walkStep = iota
	forward
)

// collectRun walks from p (exclusive) along perp in the given
// direction, collecting the contiguous run of filled tiles. The
// result is returned in reading order (prefix: earliest first;
// suffix: nearest first), matching how the cross-word automaton
// consumes prefix then candidate then suffix.
func collectRun(board *Board, p Position, perp Direction, step walkStep) []LetterTile {
	pl := Placement{Pos: p, Dir: perp}
	var tiles []LetterTile
	for {
		if step == back {
			pl = pl.Back()
		} else {
			pl = pl.Next()
		}
		sq := board.At(pl.Pos)
		if !sq.Filled {
			break
		}
		tiles = append(tiles, sq.Tile)
	}
	if step == back {
		// collected nearest-to-farthest; reverse to reading order
		for i, j := 0, len(tiles)-1; i < j; i, j = i+1, j-1 {
			tiles[i], tiles[j] = tiles[j], tiles[i]
		}
	}
	return tiles
}

// RestrictLine computes the RestrictedSquare sequence for a single
// line of squares directly, without reference to a board - the same
// per-square prefix/suffix rule BuildConstraintBoard applies along a
// board axis, exposed standalone because a line is the natural unit
// the original cross-word checker test operates on.
func RestrictLine(line []Square, checker *CrossWordChecker) []RestrictedSquare {
	out := make([]RestrictedSquare, len(line))
	for i, sq := range line {
		if sq.Filled {
			out[i] = RestrictedSquare{IsFilled: true, Tile: sq.Tile}
			continue
		}
		prefix := collectLineRun(line, i, -1)
		suffix := collectLineRun(line, i, 1)
		out[i] = RestrictedSquare{Set: checker.CrossSet(prefix, suffix)}
	}
	return out
}

func collectLineRun(line []Square, i, step int) []LetterTile {
	var tiles []LetterTile
	for j := i + step; j >= 0 && j < len(line); j += step {
		if !line[j].Filled {
			break
		}
		tiles = append(tiles, line[j].Tile)
	}
	if step < 0 {
		for a, b := 0, len(tiles)-1; a < b; a, b = a+1, b-1 {
			tiles[a], tiles[b] = tiles[b], tiles[a]
		}
	}
	return tiles
}
