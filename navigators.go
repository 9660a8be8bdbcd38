// navigators.go
// Copyright (C) 2024 The scrabble-solver contributors

// This file contains concrete Navigator implementations driven over
// the Lexicon trie. crossWordChecker is the CrossWordChecker
// automaton of §4.3: its four states (Prefix(i), Mid, Suffix(i,letter),
// Done(letter)) collapse to a single depth counter here, since the
// DFS search already visits exactly one candidate path per recursion
// frame - depth alone tells us whether we're still matching the
// perpendicular prefix, consuming the candidate middle letter, or
// matching the suffix.

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

// crossWordChecker computes, for one empty square, the set of middle
// letters that would complete a legal cross-word against a fixed
// prefix/suffix of board tiles. It is driven over the lexicon once per
// non-trivial perpendicular context that misses CrossWordChecker's
// cache, so squares sharing a prefix/suffix pattern share one run.
type crossWordChecker struct {
	prefix []LetterTile
	suffix []LetterTile
	depth  int
	result *LetterSet
}

func newCrossWordChecker(prefix, suffix []LetterTile) *crossWordChecker {
	result := EmptyLetterSet
	return &crossWordChecker{prefix: prefix, suffix: suffix, result: &result}
}

func (c *crossWordChecker) Done() bool { return false }

func (c *crossWordChecker) PushEdge(b byte) bool {
	d := c.depth
	var ok bool
	switch {
	case d < len(c.prefix):
		// Prefix(d): matching a perpendicular prefix byte; a board
		// blank there (wildcard) matches any candidate byte.
		pt := c.prefix[d]
		ok = pt.IsWildcard || pt.Letter == b
	case d == len(c.prefix):
		// Mid: the candidate middle letter itself, unconstrained.
		ok = true
	default:
		// Suffix(d - len(prefix) - 1, ...): matching a perpendicular
		// suffix byte.
		si := d - len(c.prefix) - 1
		if si < len(c.suffix) {
			st := c.suffix[si]
			ok = st.IsWildcard || st.Letter == b
		}
	}
	if ok {
		c.depth++
	}
	return ok
}

func (c *crossWordChecker) PopEdge() bool {
	c.depth--
	return true
}

func (c *crossWordChecker) Accept(matched []byte, isWord bool) {
	want := len(c.prefix) + 1 + len(c.suffix)
	if isWord && len(matched) == want {
		// Done(letter): record the candidate middle letter.
		c.result.Insert(matched[len(c.prefix)])
	}
}

// crossSet runs the checker over lex and returns the admissible
// LetterSet. When both prefix and suffix are empty, there is no
// cross-word to check and every letter is admissible (ALPHABET).
func crossSet(lex *Lexicon, prefix, suffix []LetterTile) LetterSet {
	if len(prefix) == 0 && len(suffix) == 0 {
		return Alphabet
	}
	c := newCrossWordChecker(prefix, suffix)
	lex.Search(c)
	return *c.result
}
