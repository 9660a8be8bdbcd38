package solver

import "testing"

// TestScrabbleAutomatonE2 reproduces the single-accept scenario from
// the original word-finding automaton's own test suite: a line of six
// empty squares with the given restrictions, a tray holding one of
// every letter plus one blank, lexicon {"tepa"}, multi-meaning blanks
// enabled. The only accepted path is "tepa" with the blank assigned
// at word index 2 as an Intersection (because 'p' is not in the
// restriction set at that index).
func TestScrabbleAutomatonE2(t *testing.T) {
	line := []RestrictedSquare{
		{Set: FromBytes('a', 'b', 'd', 'f', 'g', 'h', 'k', 'l', 'm', 'o', 'p', 'q', 's', 't', 'x')},
		{Set: FromBytes('a', 'b', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'w', 'x', 'y', 'z')},
		{Set: FromBytes('a')},
		{Set: Alphabet},
		{Set: Alphabet},
		{Set: Alphabet},
	}
	tray := NewTray([]byte("abcdefghijklmnopqrstuvwxyz"), 1)
	lex := NewLexiconFromWords([]string{"tepa"})

	results := RunScrabbleAutomaton(lex, line, 0, tray, true)

	if len(results) != 1 {
		t.Fatalf("RunScrabbleAutomaton returned %d results, want 1: %+v", len(results), results)
	}
	got := results[0]
	if got.Word != "tepa" {
		t.Errorf("accepted word = %q, want %q", got.Word, "tepa")
	}
	if len(got.Wildcards) != 1 {
		t.Fatalf("wildcards = %+v, want exactly one assignment", got.Wildcards)
	}
	wc := got.Wildcards[0]
	if wc.Index != 2 || wc.Kind != Intersection {
		t.Errorf("wildcard assignment = %+v, want {Index:2 Kind:Intersection}", wc)
	}
}

func TestScrabbleAutomatonRejectsWithoutMultiMeaning(t *testing.T) {
	line := []RestrictedSquare{
		{Set: FromBytes('t')},
		{Set: FromBytes('e')},
		{Set: FromBytes('a')}, // 'p' not admissible, and multi-meaning disabled
		{Set: Alphabet},
	}
	tray := NewTray([]byte("abcdefghijklmnopqrstuvwxyz"), 1)
	lex := NewLexiconFromWords([]string{"tepa"})

	results := RunScrabbleAutomaton(lex, line, 0, tray, false)
	if len(results) != 0 {
		t.Errorf("RunScrabbleAutomaton = %+v, want no results without multi-meaning blanks", results)
	}
}

func TestScrabbleAutomatonRequiresPlayedTile(t *testing.T) {
	// A line entirely made of board letters that happen to spell a
	// lexicon word, with nothing new played, must not match.
	line := []RestrictedSquare{
		{IsFilled: true, Tile: Tile('c')},
		{IsFilled: true, Tile: Tile('a')},
		{IsFilled: true, Tile: Tile('t')},
	}
	tray := NewTray([]byte("xyz"), 0)
	lex := NewLexiconFromWords([]string{"cat"})
	results := RunScrabbleAutomaton(lex, line, 0, tray, false)
	if len(results) != 0 {
		t.Errorf("RunScrabbleAutomaton = %+v, want no results when nothing was played", results)
	}
}
