package corpus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/CTAG07/charkov/pkg/markov"
)

// TrainModel feeds each named text into m, in order, as a separate training
// text. It stops at the first missing text or training error; texts already
// fed stay in the model.
func (s *Store) TrainModel(ctx context.Context, m *markov.Model, names ...string) error {
	for _, name := range names {
		r, err := s.Open(ctx, name)
		if err != nil {
			return err
		}
		if err = m.Train(ctx, r); err != nil {
			return fmt.Errorf("failed to train on '%s': %w", name, err)
		}
		s.logger.DebugContext(ctx, "Model trained from corpus text",
			slog.String("text_name", name),
			slog.Int("order", m.Order()),
		)
	}
	return nil
}
