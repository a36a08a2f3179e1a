package markov

// Stats holds aggregated statistics for a trained Model.
type Stats struct {
	Order          int // The k-gram length of the model
	KGrams         int // The number of distinct k-grams observed
	Transitions    int // The number of unique k-gram->follower links
	TotalFrequency int // The sum of all follower counts; the total number of trained windows
	Terminals      int // The number of links whose follower is NoCharacter
}

// Stats returns a snapshot of the model's frequency table statistics.
func (m *Model) Stats() Stats {
	s := Stats{
		Order:  m.order,
		KGrams: len(m.table),
	}
	for _, f := range m.table {
		s.Transitions += len(f.counts)
		s.TotalFrequency += f.total
		if _, ok := f.counts[NoCharacter]; ok {
			s.Terminals++
		}
	}
	return s
}
