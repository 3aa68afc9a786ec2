package notes

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	apperrors "toolshelf/backend/pkg/errors"
	"toolshelf/backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Note is one entry of the notepad tool
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const schema = `
CREATE TABLE IF NOT EXISTS notes (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notes_updated_at ON notes(updated_at);
`

// Store keeps notes in a local sqlite file
type Store struct {
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time
}

// Open creates or opens the notes database at path. Use ":memory:" for tests.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperrors.NewNotesStoreFailed("open", err)
	}
	// a single connection keeps ":memory:" databases alive and serialises writers
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, apperrors.NewNotesStoreFailed("migrate", err)
	}

	return &Store{
		db:     db,
		logger: logger.Named("notes"),
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Create stores a new note with a generated id
func (s *Store) Create(ctx context.Context, title, content string) (*Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.NewNoteInvalid("title", "is required")
	}

	now := s.now()
	n := &Note{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (id, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		n.ID, n.Title, n.Content, now.UnixNano(), now.UnixNano(),
	)
	if err != nil {
		return nil, apperrors.NewNotesStoreFailed("insert", err)
	}

	s.logger.Debug("Note created", zap.String("note_id", n.ID))
	return n, nil
}

// Get returns a note by id
func (s *Store) Get(ctx context.Context, id string) (*Note, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, created_at, updated_at FROM notes WHERE id = ?`, id)

	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNoteNotFound(id)
	}
	if err != nil {
		return nil, apperrors.NewNotesStoreFailed("select", err)
	}
	return n, nil
}

// List returns all notes, most recently updated first
func (s *Store) List(ctx context.Context) ([]Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, created_at, updated_at FROM notes ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, apperrors.NewNotesStoreFailed("list", err)
	}
	defer rows.Close()

	out := []Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, apperrors.NewNotesStoreFailed("scan", err)
		}
		out = append(out, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewNotesStoreFailed("list", err)
	}
	return out, nil
}

// Update replaces the title and content of a note
func (s *Store) Update(ctx context.Context, id, title, content string) (*Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.NewNoteInvalid("title", "is required")
	}

	now := s.now()
	res, err := s.db.ExecContext(ctx,
		`UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		title, content, now.UnixNano(), id,
	)
	if err != nil {
		return nil, apperrors.NewNotesStoreFailed("update", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, apperrors.NewNoteNotFound(id)
	}
	return s.Get(ctx, id)
}

// Delete removes a note
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return apperrors.NewNotesStoreFailed("delete", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.NewNoteNotFound(id)
	}
	s.logger.Debug("Note deleted", zap.String("note_id", id))
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(sc scanner) (*Note, error) {
	var (
		n                Note
		created, updated int64
	)
	if err := sc.Scan(&n.ID, &n.Title, &n.Content, &created, &updated); err != nil {
		return nil, err
	}
	n.CreatedAt = time.Unix(0, created).UTC()
	n.UpdatedAt = time.Unix(0, updated).UTC()
	return &n, nil
}
