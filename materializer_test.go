package solver

import "testing"

// TestMaterializeMovesEnumeratesBlankChoice exercises the blank
// minimization rule of §4.6: when a letter's required blank count is
// below its occurrence count in the word, every choice of which
// occurrence is the blank must be materialized as a separate Move.
func TestMaterializeMovesEnumeratesBlankChoice(t *testing.T) {
	// word "noon" placed on four empty squares; the automaton
	// determined exactly one blank is needed for 'o' (tray holds one
	// 'o' but the word uses two), and none for 'n'.
	line := make([]RestrictedSquare, 4)
	anchor := Placement{Pos: Position{7, 3}, Dir: Horizontal}
	word := AcceptedWord{
		Word:      "noon",
		Wildcards: []WildcardAssignment{{Index: 1, Kind: MissingLetter, Letter: 'o'}},
	}

	moves := MaterializeMoves(anchor, line, word)
	if len(moves) != 2 {
		t.Fatalf("MaterializeMoves produced %d moves, want 2: %+v", len(moves), moves)
	}

	var blankPositions []int
	for _, mv := range moves {
		multi, ok := mv.(MultiLettersMove)
		if !ok {
			t.Fatalf("move %+v is not a MultiLettersMove", mv)
		}
		if multi.First.IsWildcard || multi.First.Letter != 'n' {
			t.Errorf("First tile = %+v, want literal 'n' (no blank budget for 'n')", multi.First)
		}
		if len(multi.Rest) != 3 {
			t.Fatalf("Rest has %d tiles, want 3", len(multi.Rest))
		}
		if multi.Rest[2].Tile.IsWildcard || multi.Rest[2].Tile.Letter != 'n' {
			t.Errorf("last tile = %+v, want literal 'n'", multi.Rest[2].Tile)
		}
		blanks := 0
		for i, gt := range multi.Rest[:2] {
			if gt.Tile.IsWildcard {
				blanks++
				blankPositions = append(blankPositions, i+1)
			}
		}
		if blanks != 1 {
			t.Errorf("move %+v has %d blanks among the two 'o's, want exactly 1", multi, blanks)
		}
	}
	if len(blankPositions) != 2 || blankPositions[0] == blankPositions[1] {
		t.Errorf("blank positions across the two moves = %v, want one at each distinct 'o' index", blankPositions)
	}
}

func TestMaterializeMovesSingleLetter(t *testing.T) {
	// one empty square sandwiched between filled squares: word "cat"
	// where 'c' and 't' are pre-existing board tiles and 'a' is the
	// single new play.
	line := []RestrictedSquare{
		{IsFilled: true, Tile: Tile('c')},
		{Set: Alphabet},
		{IsFilled: true, Tile: Tile('t')},
	}
	anchor := Placement{Pos: Position{5, 5}, Dir: Horizontal}
	word := AcceptedWord{Word: "cat"}

	moves := MaterializeMoves(anchor, line, word)
	if len(moves) != 1 {
		t.Fatalf("MaterializeMoves produced %d moves, want 1: %+v", len(moves), moves)
	}
	single, ok := moves[0].(SingleLetterMove)
	if !ok {
		t.Fatalf("move %+v is not a SingleLetterMove", moves[0])
	}
	if single.Pos != (Position{5, 6}) || single.Tile.Letter != 'a' {
		t.Errorf("single move = %+v, want {Pos:{5,6} Tile:a}", single)
	}
}

func TestMaterializeMovesForcedIntersection(t *testing.T) {
	line := []RestrictedSquare{
		{Set: FromBytes('t')},
		{Set: FromBytes('e')},
		{Set: FromBytes('a')}, // word byte 'p' forced Intersection here
		{Set: Alphabet},
	}
	anchor := Placement{Pos: Position{2, 2}, Dir: Vertical}
	word := AcceptedWord{
		Word:      "tepa",
		Wildcards: []WildcardAssignment{{Index: 2, Kind: Intersection}},
	}
	moves := MaterializeMoves(anchor, line, word)
	if len(moves) != 1 {
		t.Fatalf("MaterializeMoves produced %d moves, want 1: %+v", len(moves), moves)
	}
	multi := moves[0].(MultiLettersMove)
	if !multi.Rest[1].Tile.IsWildcard {
		t.Errorf("intersection position should be forced Wildcard, got %+v", multi.Rest[1])
	}
}
