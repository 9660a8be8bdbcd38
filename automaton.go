// automaton.go
// Copyright (C) 2024 The scrabble-solver contributors

// This file implements the ScrabbleAutomaton (§4.5), the automaton
// walked over the lexicon from each anchor. It tracks the remaining
// tray and the persistent list of blank assignments made so far, and
// accepts exactly those byte strings that form a legal word starting
// at the anchor.

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

// WildcardKind distinguishes why a blank was used at a given word
// index.
type WildcardKind int

const (
	// MissingLetter: the tray lacked the required letter.
	MissingLetter WildcardKind = iota
	// Intersection: the blank's cross-word constraint didn't admit
	// the intended main-word letter (only when multi-meaning blanks
	// are enabled).
	Intersection
)

// WildcardAssignment records one blank's role at one word index.
type WildcardAssignment struct {
	Index  int
	Kind   WildcardKind
	Letter byte // meaningful when Kind == MissingLetter
}

// wildcardNode is a persistent (shared-tail) singly linked list of
// WildcardAssignments, the Go analogue of the teacher's arena-backed
// lists and of the original's Rc-based WildcardAssignmentList.
type wildcardNode struct {
	assignment WildcardAssignment
	tail       *wildcardNode
}

// ToSlice flattens the list from head to tail, oldest assignment
// first.
func (n *wildcardNode) ToSlice() []WildcardAssignment {
	var rev []WildcardAssignment
	for cur := n; cur != nil; cur = cur.tail {
		rev = append(rev, cur.assignment)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// AcceptedWord is one word the ScrabbleAutomaton accepted from an
// anchor, together with its wildcard assignments.
type AcceptedWord struct {
	Word      string
	Wildcards []WildcardAssignment
}

// scrabbleAutomaton is the Navigator driving a single anchor's search
// over the lexicon.
type scrabbleAutomaton struct {
	line                  []RestrictedSquare
	minLen                int
	wildcardsMultiMeaning bool
	startTotal            uint32

	// per-depth stacks; index 0 corresponds to the root (nothing
	// consumed yet), matching PushEdge/PopEdge nesting the way
	// crossWordChecker's depth counter does.
	trays     []Tray
	wildcards []*wildcardNode

	results []AcceptedWord
}

func newScrabbleAutomaton(line []RestrictedSquare, minLen int, tray Tray, multiMeaning bool) *scrabbleAutomaton {
	return &scrabbleAutomaton{
		line:                  line,
		minLen:                minLen,
		wildcardsMultiMeaning: multiMeaning,
		startTotal:            tray.Total(),
		trays:                 []Tray{tray},
		wildcards:             []*wildcardNode{nil},
	}
}

func (a *scrabbleAutomaton) Done() bool { return false }

func (a *scrabbleAutomaton) top() (Tray, *wildcardNode) {
	i := len(a.trays) - 1
	return a.trays[i], a.wildcards[i]
}

// PushEdge decides whether byte b can be consumed at the current
// depth, per the transition table of §4.5.
func (a *scrabbleAutomaton) PushEdge(b byte) bool {
	pos := len(a.trays) - 1
	if pos >= len(a.line) {
		return false
	}
	tray, wc := a.top()
	sq := a.line[pos]

	switch {
	case sq.IsFilled && sq.Tile.IsWildcard:
		// board blank: any letter, no tray/wildcard change
		a.trays = append(a.trays, tray)
		a.wildcards = append(a.wildcards, wc)
		return true
	case sq.IsFilled:
		if sq.Tile.Letter != b {
			return false
		}
		a.trays = append(a.trays, tray)
		a.wildcards = append(a.wildcards, wc)
		return true
	case sq.Set.IsEmpty():
		return false
	case sq.Set.Contains(b):
		if next, ok := tray.Remove(b); ok {
			a.trays = append(a.trays, next)
			a.wildcards = append(a.wildcards, wc)
			return true
		}
		if next, ok := tray.RemoveWildcard(); ok {
			a.trays = append(a.trays, next)
			a.wildcards = append(a.wildcards, &wildcardNode{
				assignment: WildcardAssignment{Index: pos, Kind: MissingLetter, Letter: b},
				tail:       wc,
			})
			return true
		}
		return false
	default: // !sq.Set.Contains(b)
		if !a.wildcardsMultiMeaning {
			return false
		}
		if next, ok := tray.RemoveWildcard(); ok {
			a.trays = append(a.trays, next)
			a.wildcards = append(a.wildcards, &wildcardNode{
				assignment: WildcardAssignment{Index: pos, Kind: Intersection},
				tail:       wc,
			})
			return true
		}
		return false
	}
}

func (a *scrabbleAutomaton) PopEdge() bool {
	a.trays = a.trays[:len(a.trays)-1]
	a.wildcards = a.wildcards[:len(a.wildcards)-1]
	return true
}

// Accept is called once per descended edge with the full matched word
// so far. is_match (§4.5) fires when the square at the position is not
// a filled one (the word does not run into an existing tile), at least
// one tile has been played, and the word is long enough to attach.
func (a *scrabbleAutomaton) Accept(matched []byte, isWord bool) {
	if !isWord {
		return
	}
	pos := len(matched)
	if pos < len(a.line) && a.line[pos].IsFilled {
		return
	}
	tray, wc := a.trays[len(a.trays)-1], a.wildcards[len(a.wildcards)-1]
	if tray.Total() == a.startTotal {
		return // nothing played
	}
	if pos < a.minLen {
		return
	}
	word := make([]byte, len(matched))
	copy(word, matched)
	a.results = append(a.results, AcceptedWord{Word: string(word), Wildcards: wc.ToSlice()})
}

// RunScrabbleAutomaton searches lex for every word playable from the
// given anchor line, respecting tray, cross-constraints and wildcard
// accounting.
func RunScrabbleAutomaton(lex *Lexicon, line []RestrictedSquare, minLen int, tray Tray, multiMeaning bool) []AcceptedWord {
	a := newScrabbleAutomaton(line, minLen, tray, multiMeaning)
	lex.Search(a)
	return a.results
}
