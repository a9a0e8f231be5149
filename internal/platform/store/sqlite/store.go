package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/openintel/mdip/internal/platform/store"
	_ "modernc.org/sqlite"
)

// timeLayout is how timestamps are written to and read from the database.
// Keeping the stored form ISO8601 means sqlite's strftime() can bucket the
// report queries over the same columns.
const timeLayout = "2006-01-02 15:04:05"

// Store owns the single database connection and all raw statement execution.
// The connection opens lazily on first use; Connect and Close are both
// idempotent. Statements auto-commit individually.
type Store struct {
	dsn string

	mu sync.Mutex
	db *sql.DB
}

func NewStore(dsn string) *Store {
	return &Store{dsn: dsn}
}

// Connect opens the database connection if none is open.
func (s *Store) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.connLocked()
	return err
}

// Close closes and clears the connection if one is open.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) conn() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connLocked()
}

func (s *Store) connLocked() (*sql.DB, error) {
	if s.db != nil {
		return s.db, nil
	}

	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	s.db = db
	return s.db, nil
}

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

// Execute runs a mutating statement with positional parameter binding and
// returns the last-inserted id and the affected row count. Values are never
// interpolated into the statement text.
func (s *Store) Execute(ctx context.Context, stmt string, args ...any) (lastID, affected int64, err error) {
	db, err := s.conn()
	if err != nil {
		return 0, 0, err
	}

	res, err := db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, 0, mapConstraint(err)
	}

	// Both cursors are best-effort; delete/update callers only read affected.
	lastID, _ = res.LastInsertId()
	affected, _ = res.RowsAffected()
	return lastID, affected, nil
}

// FetchOne runs a query expected to yield at most one row. Scanning the
// returned row reports sql.ErrNoRows when the row is absent.
func (s *Store) FetchOne(ctx context.Context, stmt string, args ...any) (*sql.Row, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	return db.QueryRowContext(ctx, stmt, args...), nil
}

// FetchAll runs a query and returns the ordered result rows. The caller owns
// closing the rows.
func (s *Store) FetchAll(ctx context.Context, stmt string, args ...any) (*sql.Rows, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	return db.QueryContext(ctx, stmt, args...)
}

func (s *Store) Users() store.Users         { return &usersRepo{gw: s} }
func (s *Store) Incidents() store.Incidents { return &incidentsRepo{gw: s} }
func (s *Store) Datasets() store.Datasets   { return &datasetsRepo{gw: s} }
func (s *Store) Tickets() store.Tickets     { return &ticketsRepo{gw: s} }
func (s *Store) Reports() store.Reports     { return &reportsRepo{gw: s} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint translates sqlite unique-constraint failures into the
// store-level sentinel so callers need not know driver error formats.
func mapConstraint(err error) error {
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// mapStringNull normalizes empty optional text to NULL so "not reported" is
// stored as absence, never as an empty string.
func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func fmtTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
