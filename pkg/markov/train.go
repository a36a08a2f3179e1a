package markov

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// window is the sliding k-gram used while training. It only ever holds
// non-sentinel bytes, so NUL bytes in the input are stripped and the
// characters after them shift left.
type window struct {
	buf      []byte
	order    int
	recorded int
}

func newWindow(order int) *window {
	return &window{buf: make([]byte, 0, order), order: order}
}

// push feeds one input byte. Once the window is full, every further byte is
// recorded as the follower of the current k-gram before the window slides.
func (w *window) push(m *Model, b byte) {
	if b == NoCharacter {
		return
	}
	if len(w.buf) < w.order {
		w.buf = append(w.buf, b)
		return
	}
	m.record(string(w.buf), b)
	w.recorded++
	copy(w.buf, w.buf[1:])
	w.buf[w.order-1] = b
}

// finish records the final k-gram as followed by NoCharacter. Texts shorter
// than the order leave the table untouched.
func (w *window) finish(m *Model) {
	if len(w.buf) == w.order {
		m.record(string(w.buf), NoCharacter)
		w.recorded++
	}
}

// Ingest trains the model on text. Every k-gram starting at positions
// 0..len(text)-order is counted against the byte that follows it, and the
// final k-gram is counted against NoCharacter. Training is additive; calling
// Ingest again treats the new text as a separate document.
func (m *Model) Ingest(text string) {
	w := newWindow(m.order)
	for i := 0; i < len(text); i++ {
		w.push(m, text[i])
	}
	w.finish(m)

	m.logger.Debug("Text ingested",
		slog.Int("bytes", len(text)),
		slog.Int("windows_recorded", w.recorded),
		slog.Int("kgrams", len(m.table)),
	)
}

// Train reads r to the end and trains the model on its content exactly as
// Ingest would on the same bytes. The context is checked between reads; if it
// is cancelled or the reader fails, the counts recorded so far are kept and no
// end-of-text follower is recorded.
func (m *Model) Train(ctx context.Context, r io.Reader) error {
	// readBufferSize bounds how many bytes are consumed between context checks.
	const readBufferSize = 32 * 1024

	w := newWindow(m.order)
	buf := make([]byte, readBufferSize)
	var total int64

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("training interrupted: %w", err)
		}
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			w.push(m, b)
		}
		total += int64(n)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("failed to read training text: %w", err)
		}
	}
	w.finish(m)

	m.logger.InfoContext(ctx, "Training completed",
		slog.Int("order", m.order),
		slog.Int64("bytes_read", total),
		slog.Int("windows_recorded", w.recorded),
		slog.Int("kgrams", len(m.table)),
	)
	return nil
}
