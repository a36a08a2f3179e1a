package corpus

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// ErrNotFound is returned when a named text does not exist in the store.
var ErrNotFound = errors.New("corpus: text not found")

// SetupSchema initializes the corpus table in the provided database. It is
// idempotent and safe to call on an already-initialized database.
func SetupSchema(db *sql.DB) error {
	const schemaTexts = `
CREATE TABLE IF NOT EXISTS corpus_texts (
    text_id INTEGER PRIMARY KEY,
    text_name TEXT NOT NULL UNIQUE,
    body BLOB NOT NULL,
    added_at INTEGER NOT NULL
);
`
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	// If the transaction succeeds, tx.Commit() will be called first, and the rollback will do nothing.
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.Exec(schemaTexts); err != nil {
		return fmt.Errorf("could not create corpus schema: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

// TextInfo holds the metadata for a stored text.
type TextInfo struct {
	Id      int
	Name    string
	Size    int64
	AddedAt time.Time
}

// Store is a library of named training texts backed by a SQL database. It
// stores source text only; models are rebuilt from it on every run.
type Store struct {
	db          *sql.DB
	stmtPut     *sql.Stmt
	stmtGet     *sql.Stmt
	stmtInfo    *sql.Stmt
	stmtList    *sql.Stmt
	stmtRemove  *sql.Stmt
	stmtSummary *sql.Stmt
	logger      *slog.Logger
}

// NewStore creates a Store and pre-compiles its SQL statements. SetupSchema
// must have been called on db first.
func NewStore(db *sql.DB) (*Store, error) {
	stmtPut, err := db.Prepare(`INSERT INTO corpus_texts (text_name, body, added_at) VALUES (?, ?, ?)
ON CONFLICT(text_name) DO UPDATE SET body = excluded.body, added_at = excluded.added_at RETURNING text_id;`)
	if err != nil {
		return nil, err
	}

	stmtGet, err := db.Prepare(`SELECT body FROM corpus_texts WHERE text_name = ?;`)
	if err != nil {
		return nil, err
	}

	stmtInfo, err := db.Prepare(`SELECT text_id, text_name, length(body), added_at FROM corpus_texts WHERE text_name = ?;`)
	if err != nil {
		return nil, err
	}

	stmtList, err := db.Prepare(`SELECT text_id, text_name, length(body), added_at FROM corpus_texts ORDER BY text_name;`)
	if err != nil {
		return nil, err
	}

	stmtRemove, err := db.Prepare(`DELETE FROM corpus_texts WHERE text_name = ?;`)
	if err != nil {
		return nil, err
	}

	stmtSummary, err := db.Prepare(`SELECT COUNT(*), coalesce(SUM(length(body)), 0) FROM corpus_texts;`)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:          db,
		stmtPut:     stmtPut,
		stmtGet:     stmtGet,
		stmtInfo:    stmtInfo,
		stmtList:    stmtList,
		stmtRemove:  stmtRemove,
		stmtSummary: stmtSummary,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// Close releases all prepared SQL statements held by the Store.
func (s *Store) Close() {
	_ = s.stmtPut.Close()
	_ = s.stmtGet.Close()
	_ = s.stmtInfo.Close()
	_ = s.stmtList.Close()
	_ = s.stmtRemove.Close()
	_ = s.stmtSummary.Close()
}

// SetLogger sets the logger for the Store. By default, all logs are discarded.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Put reads r to the end and stores it under name, replacing any text that
// already has that name.
func (s *Store) Put(ctx context.Context, name string, r io.Reader) (TextInfo, error) {
	if name == "" {
		return TextInfo{}, errors.New("corpus: text name must not be empty")
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return TextInfo{}, fmt.Errorf("failed to read text '%s': %w", name, err)
	}

	now := time.Now().UTC()
	var id int
	if err = s.stmtPut.QueryRowContext(ctx, name, body, now.Unix()).Scan(&id); err != nil {
		return TextInfo{}, fmt.Errorf("failed to store text '%s': %w", name, err)
	}

	s.logger.InfoContext(ctx, "Text stored",
		slog.String("text_name", name),
		slog.Int("text_id", id),
		slog.Int("bytes", len(body)),
	)
	return TextInfo{Id: id, Name: name, Size: int64(len(body)), AddedAt: time.Unix(now.Unix(), 0).UTC()}, nil
}

// Get returns the full body of the named text.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	var body []byte
	err := s.stmtGet.QueryRowContext(ctx, name).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: '%s'", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to load text '%s': %w", name, err)
	}
	return body, nil
}

// Open returns a reader over the named text's body.
func (s *Store) Open(ctx context.Context, name string) (io.Reader, error) {
	body, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(body), nil
}

// Info returns the metadata for a single named text.
func (s *Store) Info(ctx context.Context, name string) (TextInfo, error) {
	info, err := scanInfo(s.stmtInfo.QueryRowContext(ctx, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TextInfo{}, fmt.Errorf("%w: '%s'", ErrNotFound, name)
		}
		return TextInfo{}, err
	}
	return info, nil
}

// List returns the metadata of every stored text, ordered by name.
func (s *Store) List(ctx context.Context) ([]TextInfo, error) {
	rows, err := s.stmtList.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	texts := make([]TextInfo, 0)
	for rows.Next() {
		info, err := scanInfo(rows)
		if err != nil {
			return nil, err
		}
		texts = append(texts, info)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return texts, nil
}

// Remove deletes the named text. It returns ErrNotFound if nothing was removed.
func (s *Store) Remove(ctx context.Context, name string) error {
	res, err := s.stmtRemove.ExecContext(ctx, name)
	if err != nil {
		return fmt.Errorf("could not remove text '%s': %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: '%s'", ErrNotFound, name)
	}

	s.logger.InfoContext(ctx, "Text removed", slog.String("text_name", name))
	return nil
}

// Summary returns the number of stored texts and their combined size in bytes.
func (s *Store) Summary(ctx context.Context) (count int, size int64, err error) {
	err = s.stmtSummary.QueryRowContext(ctx).Scan(&count, &size)
	return count, size, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInfo(row rowScanner) (TextInfo, error) {
	var info TextInfo
	var added int64
	if err := row.Scan(&info.Id, &info.Name, &info.Size, &added); err != nil {
		return TextInfo{}, err
	}
	info.AddedAt = time.Unix(added, 0).UTC()
	return info, nil
}
