// evaluator.go
// Copyright (C) 2024 The scrabble-solver contributors

// This file implements the Evaluator (§4.8's orchestration): given a
// board, tray, lexicon and rule set, it builds both constraint boards,
// enumerates every anchor in both directions, searches them
// concurrently (stage A), materializes and merges moves into the
// shared Move->words map, then scores every distinct move concurrently
// (stage B) and returns them sorted ascending by score, stably, so
// ties keep the order of the Move map's snapshot (map iteration
// order, not discovery order) - mirroring the teacher's use of
// errgroup-style fan-out/fan-in for its own search stages.

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
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// EvaluationResult is one distinct Move found during evaluation,
// together with every word it was found to form and its final score
// (bingo bonus included, applied exactly once here rather than inside
// Score).
type EvaluationResult struct {
	Move  Move
	Words []string
	Score int
}

// Evaluate finds every legal move on board for tray under lex and
// rules, scored and sorted ascending.
func Evaluate(ctx context.Context, board *Board, tray Tray, lex *Lexicon, rules Rules) ([]EvaluationResult, error) {
	checker := NewCrossWordChecker(lex, rules.CrossCacheSize)

	cbHorizontal := BuildConstraintBoard(board, checker, Horizontal)
	cbVertical := BuildConstraintBoard(board, checker, Vertical)

	anchors := EnumerateAnchors(board, cbHorizontal, Horizontal)
	anchors = append(anchors, EnumerateAnchors(board, cbVertical, Vertical)...)

	mm := newMoveMap()

	search, searchCtx := errgroup.WithContext(ctx)
	for _, anchor := range anchors {
		anchor := anchor
		search.Go(func() error {
			select {
			case <-searchCtx.Done():
				return searchCtx.Err()
			default:
			}
			words := RunScrabbleAutomaton(lex, anchor.Line, anchor.MinLen, tray, rules.WildcardsMultiMeaning)
			for _, w := range words {
				for _, mv := range MaterializeMoves(anchor.Placement, anchor.Line, w) {
					mm.Insert(mv, w.Word)
				}
			}
			return nil
		})
	}
	if err := search.Wait(); err != nil {
		return nil, err
	}

	frozen := mm.Freeze()
	results := make([]EvaluationResult, len(frozen))

	scoring, _ := errgroup.WithContext(ctx)
	for i, fm := range frozen {
		i, fm := i, fm
		scoring.Go(func() error {
			score := Score(board, fm.Move, rules)
			if IsBingo(fm.Move) {
				score += rules.ExtraBonus
			}
			results[i] = EvaluationResult{Move: fm.Move, Words: fm.Words, Score: score}
			return nil
		})
	}
	if err := scoring.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
	return results, nil
}
