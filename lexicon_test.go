package solver

import "testing"

func TestLexiconInsertContains(t *testing.T) {
	lex := NewLexiconFromWords([]string{"lore", "love", "elle", "bles"})
	for _, w := range []string{"lore", "love", "elle", "bles"} {
		if !lex.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"lor", "lorex", "cat"} {
		if lex.Contains(w) {
			t.Errorf("Contains(%q) = true, want false", w)
		}
	}
	if lex.Len() != 4 {
		t.Errorf("Len() = %d, want 4", lex.Len())
	}
}

// collectNavigator records every word the search visits, verifying
// the trie Search driver reaches every inserted word.
type collectNavigator struct {
	words []string
}

func (c *collectNavigator) PushEdge(b byte) bool { return true }
func (c *collectNavigator) PopEdge() bool        { return true }
func (c *collectNavigator) Done() bool           { return false }
func (c *collectNavigator) Accept(matched []byte, isWord bool) {
	if isWord {
		c.words = append(c.words, string(matched))
	}
}

func TestLexiconSearchVisitsAllWords(t *testing.T) {
	words := []string{"lore", "love", "elle", "bles"}
	lex := NewLexiconFromWords(words)
	nav := &collectNavigator{}
	lex.Search(nav)
	if len(nav.words) != len(words) {
		t.Fatalf("Search visited %d words, want %d: %v", len(nav.words), len(words), nav.words)
	}
	seen := map[string]bool{}
	for _, w := range nav.words {
		seen[w] = true
	}
	for _, w := range words {
		if !seen[w] {
			t.Errorf("Search did not visit %q", w)
		}
	}
}
