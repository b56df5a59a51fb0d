package casestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/hmcts/sscs-hearings-go/internal/domain/cases"
)

// SQLiteConfig configures the SQLite case store.
type SQLiteConfig struct {
	// DatabasePath is the path to the SQLite database file.
	DatabasePath string `json:"databasePath,omitempty"`
}

// DefaultSQLiteConfig returns the default configuration.
func DefaultSQLiteConfig() SQLiteConfig {
	return SQLiteConfig{DatabasePath: ".data/cases.db"}
}

// SQLiteCaseStore implements CaseStore using SQLite.
type SQLiteCaseStore struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

var _ CaseStore = (*SQLiteCaseStore)(nil)

// NewSQLiteCaseStore creates a new SQLite case store.
func NewSQLiteCaseStore(config SQLiteConfig) (*SQLiteCaseStore, error) {
	dbPath := config.DatabasePath
	if dbPath == "" {
		dbPath = ".data/cases.db"
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: failed to create directory: %v", ErrStoreInitFailed, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %v", ErrStoreInitFailed, err)
	}

	store := &SQLiteCaseStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// initSchema creates the database schema.
func (s *SQLiteCaseStore) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS case_records (
			id TEXT PRIMARY KEY,
			version INTEGER NOT NULL,
			payload BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS case_events (
			token TEXT PRIMARY KEY,
			case_id TEXT NOT NULL,
			event_type TEXT NOT NULL,
			summary TEXT,
			description TEXT,
			created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_case_events_case ON case_events(case_id, created_at);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("%w: failed to create schema: %v", ErrStoreInitFailed, err)
	}
	return nil
}

// GetCase loads the current case record.
func (s *SQLiteCaseStore) GetCase(ctx context.Context, caseID string) (*cases.CaseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	record, _, err := s.loadCase(ctx, s.db.QueryRowContext, caseID)
	return record, err
}

type rowQuerier func(ctx context.Context, query string, args ...interface{}) *sql.Row

func (s *SQLiteCaseStore) loadCase(ctx context.Context, queryRow rowQuerier, caseID string) (*cases.CaseRecord, int64, error) {
	var (
		version int64
		payload []byte
	)
	err := queryRow(ctx, `SELECT version, payload FROM case_records WHERE id = ?`, caseID).
		Scan(&version, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, fmt.Errorf("%w: %s", ErrCaseNotFound, caseID)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	var record cases.CaseRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, 0, fmt.Errorf("%w: corrupt payload for case %s: %v", ErrSubmitFailed, caseID, err)
	}
	return &record, version, nil
}

// PutCase creates or replaces a case record unconditionally.
func (s *SQLiteCaseStore) PutCase(ctx context.Context, record *cases.CaseRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO case_records (id, version, payload, updated_at)
		VALUES (?, 1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			version = case_records.version + 1,
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, record.ID, payload, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	return nil
}

// StartEvent opens a change session bound to the case's current version.
func (s *SQLiteCaseStore) StartEvent(ctx context.Context, caseID, eventType string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	record, version, err := s.loadCase(ctx, s.db.QueryRowContext, caseID)
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:       uuid.New().String(),
		CaseID:      caseID,
		EventType:   eventType,
		CaseVersion: version,
		Case:        record,
	}, nil
}

// Submit applies the mutation to the latest stored snapshot and persists it
// atomically, failing with ErrConflict if the case version moved since
// StartEvent.
func (s *SQLiteCaseStore) Submit(ctx context.Context, session *Session, mutate MutationFn, summary, description string) (*cases.CaseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	defer tx.Rollback()

	record, version, err := s.loadCase(ctx, tx.QueryRowContext, session.CaseID)
	if err != nil {
		return nil, err
	}

	if version != session.CaseVersion {
		return nil, fmt.Errorf("%w: case %s moved from version %d to %d",
			ErrConflict, session.CaseID, session.CaseVersion, version)
	}

	if err := mutate(record); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	now := time.Now().UnixMilli()
	if _, err := tx.ExecContext(ctx, `
		UPDATE case_records SET version = ?, payload = ?, updated_at = ? WHERE id = ?
	`, version+1, payload, now, session.CaseID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO case_events (token, case_id, event_type, summary, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, session.Token, session.CaseID, session.EventType, summary, description, now); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	return record, nil
}

// Close closes the store.
func (s *SQLiteCaseStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
