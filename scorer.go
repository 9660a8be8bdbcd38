// scorer.go
// Copyright (C) 2024 The scrabble-solver contributors

// This file implements the Scorer (§4.8): a pure function from
// (board value table, move, score rules) to a point value, grounded
// exactly on the original naive_score algorithm. The bingo bonus is
// deliberately NOT applied here - see the Evaluator, which applies it
// exactly once (§9's open question: the source applies it in both
// places under different conditions; this implementation picks the
// Evaluator as the single application site).

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

// Rules bundles the configurable scoring parameters named in §6.
type Rules struct {
	Values                LetterValues
	BonusFn               func(Position) Bonus
	ExtraBonus            int
	WildcardsMultiMeaning bool
	CrossCacheSize        int
}

// DefaultRules returns the standard English Scrabble rule set.
func DefaultRules() Rules {
	return Rules{
		Values:         StandardEnglishValues,
		BonusFn:        StandardBonus,
		ExtraBonus:     50,
		CrossCacheSize: DefaultCrossCacheSize,
	}
}

// Score computes the point value of move against board under rules.
// It has no knowledge of the lexicon or the automaton.
func Score(board *Board, move Move, rules Rules) int {
	switch m := move.(type) {
	case SingleLetterMove:
		return scoreSingleLetter(board, m, rules)
	case MultiLettersMove:
		return scoreMultiLetters(board, m, rules)
	default:
		return 0
	}
}

func scoreSingleLetter(board *Board, m SingleLetterMove, rules Rules) int {
	vSum, _ := walkValueSum(board, m.Pos, Vertical, back, rules)
	vSum2, _ := walkValueSum(board, m.Pos, Vertical, forward, rules)
	hSum, _ := walkValueSum(board, m.Pos, Horizontal, back, rules)
	hSum2, _ := walkValueSum(board, m.Pos, Horizontal, forward, rules)
	crossScore := vSum + vSum2
	lineScore := hSum + hSum2
	b := rules.BonusFn(m.Pos)
	L := rules.Values.ScoreFor(m.Tile)
	return (crossScore + lineScore + 2*L*b.Letter) * b.Word
}

func scoreMultiLetters(board *Board, m MultiLettersMove, rules Rules) int {
	positions, tiles := expandPlayed(m)

	crossScore := 0
	perp := m.Anchor.Dir.Perp()
	for i, p := range positions {
		backSum, backAny := walkValueSum(board, p, perp, back, rules)
		fwdSum, fwdAny := walkValueSum(board, p, perp, forward, rules)
		if !backAny && !fwdAny {
			continue
		}
		b := rules.BonusFn(p)
		L := rules.Values.ScoreFor(tiles[i])
		crossScore += (backSum + fwdSum + L*b.Letter) * b.Word
	}

	begin := Placement{Pos: positions[0], Dir: m.Anchor.Dir}
	for {
		prev := begin.Back()
		if !board.At(prev.Pos).Filled {
			break
		}
		begin = prev
	}

	wordSum := 0
	wordMultiplier := 1
	playedIdx := 0
	cur := begin
	for {
		sq := board.ValueAt(cur.Pos)
		if sq.Filled {
			wordSum += rules.Values.ScoreFor(sq.Tile)
		} else if playedIdx < len(positions) && cur.Pos == positions[playedIdx] {
			b := rules.BonusFn(cur.Pos)
			L := rules.Values.ScoreFor(tiles[playedIdx])
			wordSum += L * b.Letter
			wordMultiplier *= b.Word
			playedIdx++
		} else {
			break
		}
		cur = cur.Next()
	}

	return wordSum*wordMultiplier + crossScore
}

// expandPlayed reconstructs the board position of every newly played
// tile in a MultiLettersMove, in placement order.
func expandPlayed(m MultiLettersMove) ([]Position, []LetterTile) {
	positions := make([]Position, 0, 1+len(m.Rest))
	tiles := make([]LetterTile, 0, 1+len(m.Rest))
	positions = append(positions, m.Anchor.Pos)
	tiles = append(tiles, m.First)
	pl := Placement{Pos: m.Anchor.Pos, Dir: m.Anchor.Dir}
	for _, g := range m.Rest {
		for s := 0; s < g.Gap+1; s++ {
			pl = pl.Next()
		}
		positions = append(positions, pl.Pos)
		tiles = append(tiles, g.Tile)
	}
	return positions, tiles
}

// walkValueSum walks from p (exclusive) along dir in the given step
// direction, summing the value-grid scores of the contiguous run of
// filled tiles encountered. any reports whether at least one tile was
// found.
func walkValueSum(board *Board, p Position, dir Direction, step walkStep, rules Rules) (sum int, any bool) {
	pl := Placement{Pos: p, Dir: dir}
	for {
		if step == back {
			pl = pl.Back()
		} else {
			pl = pl.Next()
		}
		sq := board.ValueAt(pl.Pos)
		if !sq.Filled {
			break
		}
		sum += rules.Values.ScoreFor(sq.Tile)
		any = true
	}
	return
}

// IsBingo reports whether a move plays all seven tray tiles.
func IsBingo(m Move) bool {
	return NumTilesPlayed(m) == 7
}
