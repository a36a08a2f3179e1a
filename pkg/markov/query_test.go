package markov

import (
	"reflect"
	"testing"
)

const testParagraph = "one fish two fish. red fish blue fish. this one has a little star, this one has a little car."

func TestFrequencyConservation(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4} {
		m := newTrainedModel(t, order, 1, testParagraph)

		for kgram := range m.table {
			sum := 0
			for c := 0; c < AlphabetSize; c++ {
				sum += m.FrequencyOfChar(kgram, byte(c))
			}
			if total := m.FrequencyOf(kgram); total != sum || total < 1 {
				t.Errorf("order %d: FrequencyOf(%q) = %d, sum of followers = %d", order, kgram, total, sum)
			}
		}
	}
}

func TestFrequencyWrongLength(t *testing.T) {
	m := newTrainedModel(t, 2, 1, "abab")

	for _, kgram := range []string{"", "a", "aba", "abab"} {
		if got := m.FrequencyOf(kgram); got != 0 {
			t.Errorf("FrequencyOf(%q) = %d, want 0", kgram, got)
		}
		if got := m.FrequencyOfChar(kgram, 'b'); got != 0 {
			t.Errorf("FrequencyOfChar(%q, 'b') = %d, want 0", kgram, got)
		}
		if m.Contains(kgram) {
			t.Errorf("Contains(%q) = true, want false", kgram)
		}
	}
}

func TestQueriesDoNotMutate(t *testing.T) {
	src := &scriptedSource{}
	m := newTrainedModel(t, 2, 1, "abab", WithSource(src))
	before := m.Stats()

	for i := 0; i < 5; i++ {
		if got := m.FrequencyOf("ab"); got != 2 {
			t.Fatalf("FrequencyOf(\"ab\") = %d on call %d, want 2", got, i)
		}
		if got := m.FrequencyOfChar("ab", 'a'); got != 1 {
			t.Fatalf("FrequencyOfChar(\"ab\", 'a') = %d on call %d, want 1", got, i)
		}
		_, _ = m.Followers("ab")
		_ = m.FrequencyOf("zz")
	}

	if len(src.bounds) != 0 {
		t.Errorf("queries advanced the random source %d times", len(src.bounds))
	}
	if after := m.Stats(); after != before {
		t.Errorf("queries changed the table: %+v -> %+v", before, after)
	}
}

func TestFollowers(t *testing.T) {
	m := newTrainedModel(t, 1, 1, "abacad")

	followers, total := m.Followers("a")
	expected := []Follower{{Char: 'b', Freq: 1}, {Char: 'c', Freq: 1}, {Char: 'd', Freq: 1}}
	if total != 3 {
		t.Errorf("expected total frequency of 3, got %d", total)
	}
	if !reflect.DeepEqual(followers, expected) {
		t.Errorf("expected followers %+v, got %+v", expected, followers)
	}

	followers, total = m.Followers("d")
	expected = []Follower{{Char: NoCharacter, Freq: 1}}
	if total != 1 || !reflect.DeepEqual(followers, expected) {
		t.Errorf("expected %+v with total 1, got %+v with total %d", expected, followers, total)
	}

	followers, total = m.Followers("z")
	if followers != nil || total != 0 {
		t.Errorf("expected no followers for an unseen k-gram, got %+v (total %d)", followers, total)
	}
}
