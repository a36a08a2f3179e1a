package markov

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

const (
	// NoCharacter is the reserved sentinel byte. As a follower it marks the end
	// of a training text; as a sampling result it means there is no valid
	// continuation.
	NoCharacter byte = 0
	// AlphabetSize is the number of byte values a k-gram or follower can take.
	AlphabetSize = 256
)

var (
	// ErrInvalidOrder is returned by New when the order is not positive.
	ErrInvalidOrder = errors.New("markov: order must be positive")
	// ErrSeedTooShort is returned by the generation functions when the start
	// text is shorter than the model order.
	ErrSeedTooShort = errors.New("markov: start text shorter than model order")
)

// followers holds the observed follower counts for a single k-gram. total is
// kept in step with counts so FrequencyOf never has to walk the map.
type followers struct {
	counts map[byte]int
	total  int
}

// Model is a character-level Markov model of a fixed order. It owns its
// frequency table and its pseudo-random source exclusively.
type Model struct {
	order  int
	seed   int64
	table  map[string]*followers
	source Source
	logger *slog.Logger
}

// Option configures a Model at construction.
type Option func(*Model)

// WithSource replaces the default seeded PCG generator. The seed passed to New
// is ignored for sampling when a Source is provided.
func WithSource(src Source) Option {
	return func(m *Model) {
		if src != nil {
			m.source = src
		}
	}
}

// New creates an empty model of the given order whose sampling is driven by a
// generator seeded with seed. It returns ErrInvalidOrder if order <= 0.
func New(order int, seed int64, opts ...Option) (*Model, error) {
	if order <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}
	m := &Model{
		order:  order,
		seed:   seed,
		table:  make(map[string]*followers),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.source == nil {
		m.source = NewSource(seed)
	}
	return m, nil
}

// Order returns the k-gram length the model was built with.
func (m *Model) Order() int {
	return m.order
}

// Seed returns the seed the model was constructed with.
func (m *Model) Seed() int64 {
	return m.seed
}

// SetLogger sets the logger for the Model. By default, all logs are discarded.
func (m *Model) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// record increments the count of follower c after kgram.
func (m *Model) record(kgram string, c byte) {
	f, ok := m.table[kgram]
	if !ok {
		f = &followers{counts: make(map[byte]int)}
		m.table[kgram] = f
	}
	f.counts[c]++
	f.total++
}

// lookup returns the followers of kgram, or nil when the k-gram has the wrong
// length or was never observed.
func (m *Model) lookup(kgram string) *followers {
	if len(kgram) != m.order {
		return nil
	}
	return m.table[kgram]
}
