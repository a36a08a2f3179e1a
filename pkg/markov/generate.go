package markov

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// SampleNext draws the next byte after kgram from the learned distribution.
//
// It returns NoCharacter without touching the random source when the k-gram
// has the wrong length or was never observed. Otherwise it draws r in
// [0, FrequencyOf(kgram)) and walks the alphabet in ascending byte order,
// returning the first byte c with a non-zero count for which
// count(c) + (sum of counts of the bytes before c) >= r.
func (m *Model) SampleNext(kgram string) byte {
	f := m.lookup(kgram)
	if f == nil {
		return NoCharacter
	}

	r := m.source.IntN(f.total)
	intervalStart := 0
	for c := 0; c < AlphabetSize; c++ {
		freq := f.counts[byte(c)]
		if freq == 0 {
			continue
		}
		if freq+intervalStart >= r {
			return byte(c)
		}
		intervalStart += freq
	}
	return NoCharacter
}

// generateOptions Is used by the generate functions to configure default options.
type generateOptions struct {
	maxLength   int
	canEndEarly bool
}

// GenerateOption is a function that configures generation parameters. It's used
// as a variadic argument in Generate and GenerateStream.
type GenerateOption func(*generateOptions)

// WithMaxLength sets the maximum number of sampling steps. Each step either
// appends one character or, with early termination disabled, restarts the
// chain after an end-of-text follower.
func WithMaxLength(n int) GenerateOption {
	return func(o *generateOptions) { o.maxLength = n }
}

// WithEarlyTermination specifies whether generation stops when NoCharacter is
// sampled. When disabled, the chain restarts from the start text's k-gram.
// Generation always stops at a k-gram that was never observed.
func WithEarlyTermination(canEnd bool) GenerateOption {
	return func(o *generateOptions) { o.canEndEarly = canEnd }
}

func newGenerateOptions(opts []GenerateOption) *generateOptions {
	options := &generateOptions{
		maxLength:   100,
		canEndEarly: true,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// Generate extends start by repeatedly sampling the next character for the
// last Order() characters of the text built so far. The returned string
// begins with start (NUL bytes removed). ErrSeedTooShort is returned if start
// has fewer than Order() usable characters.
func (m *Model) Generate(ctx context.Context, start string, opts ...GenerateOption) (string, error) {
	seed, err := m.prepareSeed(start)
	if err != nil {
		return "", err
	}
	options := newGenerateOptions(opts)

	var builder strings.Builder
	builder.Grow(len(seed) + max(options.maxLength, 0))
	builder.WriteString(seed)

	err = m.generateChain(ctx, seed, options, func(c byte) bool {
		builder.WriteByte(c)
		return true
	})
	if err != nil {
		return "", err
	}
	return builder.String(), nil
}

// prepareSeed strips sentinel bytes from start and checks it can form a k-gram.
func (m *Model) prepareSeed(start string) (string, error) {
	seed := strings.ReplaceAll(start, string(NoCharacter), "")
	if len(seed) < m.order {
		return "", fmt.Errorf("%w: need %d characters, got %d", ErrSeedTooShort, m.order, len(seed))
	}
	return seed, nil
}

// generateChain contains the main loop for generating text. emit receives
// every generated character and returns false to stop generation.
func (m *Model) generateChain(ctx context.Context, seed string, options *generateOptions, emit func(byte) bool) error {
	initial := seed[len(seed)-m.order:]
	kgram := []byte(initial)
	generated := 0

	for step := 0; step < options.maxLength; step++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("generation cancelled: %w", err)
		}

		current := string(kgram)
		next := m.SampleNext(current)

		if next == NoCharacter {
			if !m.Contains(current) { // Dead end in chain
				m.logger.DebugContext(ctx, "Generation terminated due to dead-end",
					slog.String("last_kgram", current),
					slog.Int("generated_length", generated),
				)
				return nil
			}
			if options.canEndEarly {
				m.logger.DebugContext(ctx, "Generation terminated by end-of-text follower",
					slog.Int("generated_length", generated),
				)
				return nil
			}
			kgram = append(kgram[:0], initial...)
			continue
		}

		if !emit(next) {
			return nil
		}
		generated++
		copy(kgram, kgram[1:])
		kgram[m.order-1] = next
	}

	m.logger.DebugContext(ctx, "Generation terminated by reaching maxLength",
		slog.Int("max_length", options.maxLength),
		slog.Int("generated_length", generated),
	)
	return nil
}
