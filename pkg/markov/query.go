package markov

// Follower is one observed continuation of a k-gram: a byte (possibly
// NoCharacter) and the number of times it followed the k-gram.
type Follower struct {
	Char byte
	Freq int
}

// FrequencyOf returns the number of times kgram occurred in the training
// text, including occurrences at the very end of a text. It returns 0 when the
// k-gram has the wrong length or was never observed.
func (m *Model) FrequencyOf(kgram string) int {
	f := m.lookup(kgram)
	if f == nil {
		return 0
	}
	return f.total
}

// FrequencyOfChar returns the number of times c immediately followed kgram.
// Passing NoCharacter counts how often kgram ended a training text.
func (m *Model) FrequencyOfChar(kgram string, c byte) int {
	f := m.lookup(kgram)
	if f == nil {
		return 0
	}
	return f.counts[c]
}

// Followers returns every recorded follower of kgram in ascending byte order,
// together with the sum of their frequencies. If the k-gram is unknown it
// returns a nil slice and a total of 0.
func (m *Model) Followers(kgram string) ([]Follower, int) {
	f := m.lookup(kgram)
	if f == nil {
		return nil, 0
	}
	out := make([]Follower, 0, len(f.counts))
	for c := 0; c < AlphabetSize; c++ {
		if freq := f.counts[byte(c)]; freq > 0 {
			out = append(out, Follower{Char: byte(c), Freq: freq})
		}
	}
	return out, f.total
}

// Contains reports whether kgram was observed during training.
func (m *Model) Contains(kgram string) bool {
	return m.lookup(kgram) != nil
}
