package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"zertz/game"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
	id         TEXT PRIMARY KEY,
	kind       INTEGER NOT NULL,
	rules      TEXT NOT NULL,
	state      TEXT NOT NULL,
	winner     TEXT,
	moves      INTEGER NOT NULL,
	data       BLOB NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS matches_created_at ON matches (created_at);
`

// SQLiteStore keeps matches in a SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path and applies the schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	log.Debug().Str("path", path).Msg("opened match database")
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Save(ctx context.Context, m Match) error {
	now := time.Now().UTC().UnixMilli()
	var winner sql.NullString
	if m.Winner != nil {
		winner = sql.NullString{String: m.Winner.String(), Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO matches (id, kind, rules, state, winner, moves, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			rules = excluded.rules,
			state = excluded.state,
			winner = excluded.winner,
			moves = excluded.moves,
			data = excluded.data,
			updated_at = excluded.updated_at`,
		m.ID.String(), int(m.Kind), m.Rules, m.State.String(), winner, m.Moves, m.Data, now, now)
	if err != nil {
		return fmt.Errorf("save match %s: %w", m.ID, err)
	}
	return nil
}

const columns = `id, kind, rules, state, winner, moves, data, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (Match, error) {
	var (
		m                Match
		id, state        string
		kind             int
		winner           sql.NullString
		created, updated int64
	)
	if err := row.Scan(&id, &kind, &m.Rules, &state, &winner, &m.Moves, &m.Data, &created, &updated); err != nil {
		return Match{}, err
	}

	var err error
	if m.ID, err = uuid.Parse(id); err != nil {
		return Match{}, fmt.Errorf("match id %q: %w", id, err)
	}
	if m.Kind, err = game.ParseKind(kind); err != nil {
		return Match{}, fmt.Errorf("match %s: %w", id, err)
	}
	if err := m.State.UnmarshalText([]byte(state)); err != nil {
		return Match{}, fmt.Errorf("match %s: %w", id, err)
	}
	if winner.Valid {
		var p game.Player
		if err := p.UnmarshalText([]byte(winner.String)); err != nil {
			return Match{}, fmt.Errorf("match %s: %w", id, err)
		}
		m.Winner = &p
	}
	m.CreatedAt = time.UnixMilli(created).UTC()
	m.UpdatedAt = time.UnixMilli(updated).UTC()
	return m, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id uuid.UUID) (Match, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM matches WHERE id = ?`, id.String())
	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Match{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Match{}, fmt.Errorf("get match %s: %w", id, err)
	}
	return m, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]Match, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+columns+` FROM matches ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var out []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
