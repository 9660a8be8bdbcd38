package solver

import "testing"

// TestEnumerateAnchorsEmptyBoard reproduces the E3 first-move scenario:
// on an empty board only the lines through the centre produce
// anchors, and only those whose min-length covers the centre square.
func TestEnumerateAnchorsEmptyBoard(t *testing.T) {
	board := NewBoard()
	lex := NewLexicon()
	checker := NewCrossWordChecker(lex, 0)
	cb := BuildConstraintBoard(board, checker, Horizontal)

	anchors := EnumerateAnchors(board, cb, Horizontal)

	for _, a := range anchors {
		if a.Placement.Pos.Row != Center.Row {
			t.Errorf("anchor on row %d produced on empty board, want only row %d", a.Placement.Pos.Row, Center.Row)
		}
	}

	byCol := map[int]int{}
	for _, a := range anchors {
		byCol[a.Placement.Pos.Col] = a.MinLen
	}
	want := map[int]int{
		7: 2, // clamp(1,2)
		6: 2,
		5: 3,
		4: 4,
		3: 5,
		2: 6,
		1: 7,
		0: 8,
	}
	for col, wantLen := range want {
		got, ok := byCol[col]
		if !ok {
			t.Errorf("missing anchor at col %d", col)
			continue
		}
		if got != wantLen {
			t.Errorf("anchor at col %d: MinLen = %d, want %d", col, got, wantLen)
		}
	}
	for col := range byCol {
		if col > 7 {
			t.Errorf("unexpected anchor at col %d (past centre, cannot reach it)", col)
		}
	}
}

func TestEnumerateAnchorsSkipsMidRun(t *testing.T) {
	board := NewBoard()
	board.Place(Position{7, 7}, Tile('c'), Tile('c'))
	board.Place(Position{7, 8}, Tile('a'), Tile('a'))
	board.Place(Position{7, 9}, Tile('t'), Tile('t'))
	lex := NewLexiconFromWords([]string{"cat"})
	checker := NewCrossWordChecker(lex, 0)
	cb := BuildConstraintBoard(board, checker, Horizontal)
	anchors := EnumerateAnchors(board, cb, Horizontal)

	for _, a := range anchors {
		if a.Placement.Pos.Row != 7 {
			continue
		}
		if a.Placement.Pos.Col == 8 || a.Placement.Pos.Col == 9 {
			t.Errorf("anchor produced mid-run at col %d", a.Placement.Pos.Col)
		}
	}
}
