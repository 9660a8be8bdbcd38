package solver

import "testing"

func TestScoreForWildcardAlwaysZero(t *testing.T) {
	if got := StandardEnglishValues.ScoreFor(Wildcard); got != 0 {
		t.Errorf("ScoreFor(Wildcard) = %d, want 0", got)
	}
}

func TestStandardEnglishValuesSample(t *testing.T) {
	cases := map[byte]int{'a': 1, 'q': 10, 'z': 10, 'c': 4, 'e': 1}
	for letter, want := range cases {
		if got := StandardEnglishValues.ScoreFor(Tile(letter)); got != want {
			t.Errorf("ScoreFor(%q) = %d, want %d", letter, got, want)
		}
	}
}

func TestWordsWithFriendsValuesDiffer(t *testing.T) {
	if StandardEnglishValues.ScoreFor(Tile('b')) == WordsWithFriendsValues.ScoreFor(Tile('b')) {
		t.Errorf("expected 'b' to be weighted differently between rule sets")
	}
}
