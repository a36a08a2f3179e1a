package markov

import "testing"

func TestStats(t *testing.T) {
	m := newTrainedModel(t, 2, 1, "abab")
	m.Ingest("bab")

	// abab: ab->a, ba->b, ab->NUL. bab: ba->b, ab->NUL.
	want := Stats{
		Order:          2,
		KGrams:         2,
		Transitions:    3,
		TotalFrequency: 5,
		Terminals:      1,
	}
	if got := m.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}
