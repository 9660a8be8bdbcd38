package solver

import "testing"

func TestMoveKeyDistinguishesMoves(t *testing.T) {
	a := SingleLetterMove{Pos: Position{7, 7}, Tile: Tile('q')}
	b := SingleLetterMove{Pos: Position{7, 7}, Tile: Tile('z')}
	if a.Key() == b.Key() {
		t.Errorf("distinct single-letter moves produced equal keys: %q", a.Key())
	}

	c := MultiLettersMove{
		Anchor: Placement{Pos: Position{7, 7}, Dir: Horizontal},
		First:  Tile('c'),
		Rest:   []GapTile{{Gap: 0, Tile: Tile('a')}, {Gap: 0, Tile: Tile('t')}},
	}
	d := MultiLettersMove{
		Anchor: Placement{Pos: Position{7, 7}, Dir: Horizontal},
		First:  Tile('c'),
		Rest:   []GapTile{{Gap: 1, Tile: Tile('a')}, {Gap: 0, Tile: Tile('t')}},
	}
	if c.Key() == d.Key() {
		t.Errorf("moves differing only in gap produced equal keys: %q", c.Key())
	}
}

func TestMoveKeyStableForEqualMoves(t *testing.T) {
	a := SingleLetterMove{Pos: Position{3, 4}, Tile: Tile('x')}
	b := SingleLetterMove{Pos: Position{3, 4}, Tile: Tile('x')}
	if a.Key() != b.Key() {
		t.Errorf("structurally equal moves produced different keys: %q vs %q", a.Key(), b.Key())
	}
}

func TestNumTilesPlayed(t *testing.T) {
	single := SingleLetterMove{Pos: Position{0, 0}, Tile: Tile('a')}
	if NumTilesPlayed(single) != 1 {
		t.Errorf("NumTilesPlayed(single) = %d, want 1", NumTilesPlayed(single))
	}
	multi := MultiLettersMove{Rest: []GapTile{{}, {}, {}}}
	if NumTilesPlayed(multi) != 4 {
		t.Errorf("NumTilesPlayed(multi) = %d, want 4", NumTilesPlayed(multi))
	}
}
