package markov

import (
	"context"
	"log/slog"
)

// GenerateStream runs the same loop as Generate in a new goroutine and returns
// a read-only channel carrying each generated character. The start text itself
// is not sent. The channel is closed once generation is complete or the
// context is cancelled.
//
// The goroutine uses the model's random source, so the model must not be used
// elsewhere until the channel has been closed.
func (m *Model) GenerateStream(ctx context.Context, start string, opts ...GenerateOption) (<-chan byte, error) {
	seed, err := m.prepareSeed(start)
	if err != nil {
		return nil, err
	}
	options := newGenerateOptions(opts)

	charChan := make(chan byte)

	go func() {
		defer close(charChan)

		err := m.generateChain(ctx, seed, options, func(c byte) bool {
			select {
			case <-ctx.Done():
				return false
			case charChan <- c:
				return true
			}
		})
		if err != nil {
			m.logger.DebugContext(ctx, "Generation stream cancelled by context", slog.Any("error", err))
		}
	}()

	return charChan, nil
}
