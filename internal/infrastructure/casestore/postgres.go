package casestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/hmcts/sscs-hearings-go/internal/domain/cases"
)

// PostgresConfig configures the Postgres case store.
type PostgresConfig struct {
	Host     string `json:"host,omitempty"`
	Port     int    `json:"port,omitempty"`
	Database string `json:"database,omitempty"`
	User     string `json:"user,omitempty"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"sslMode,omitempty"`
}

// DefaultPostgresConfig returns the default configuration.
func DefaultPostgresConfig() PostgresConfig {
	return PostgresConfig{
		Host:     "localhost",
		Port:     5432,
		Database: "sscs_hearings",
		User:     "postgres",
		SSLMode:  "disable",
	}
}

// DSN builds a lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		c.Host, c.Port, c.Database, c.User, c.Password, c.SSLMode)
}

// PostgresCaseStore implements CaseStore using PostgreSQL.
type PostgresCaseStore struct {
	db *sql.DB
}

var _ CaseStore = (*PostgresCaseStore)(nil)

// NewPostgresCaseStore connects to PostgreSQL and ensures the schema exists.
func NewPostgresCaseStore(config PostgresConfig) (*PostgresCaseStore, error) {
	db, err := sql.Open("postgres", config.DSN())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open connection: %v", ErrStoreInitFailed, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to ping database: %v", ErrStoreInitFailed, err)
	}

	store := &PostgresCaseStore{db: db}
	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *PostgresCaseStore) initSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS case_records (
			id TEXT PRIMARY KEY,
			version BIGINT NOT NULL,
			payload JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS case_events (
			token UUID PRIMARY KEY,
			case_id TEXT NOT NULL,
			event_type TEXT NOT NULL,
			summary TEXT,
			description TEXT,
			created_at TIMESTAMPTZ NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_case_events_case ON case_events(case_id, created_at);
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: failed to create schema: %v", ErrStoreInitFailed, err)
	}
	return nil
}

func (s *PostgresCaseStore) loadCase(ctx context.Context, queryRow rowQuerier, caseID string) (*cases.CaseRecord, int64, error) {
	var (
		version int64
		payload []byte
	)
	err := queryRow(ctx, `SELECT version, payload FROM case_records WHERE id = $1`, caseID).
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

// GetCase loads the current case record.
func (s *PostgresCaseStore) GetCase(ctx context.Context, caseID string) (*cases.CaseRecord, error) {
	record, _, err := s.loadCase(ctx, s.db.QueryRowContext, caseID)
	return record, err
}

// PutCase creates or replaces a case record unconditionally.
func (s *PostgresCaseStore) PutCase(ctx context.Context, record *cases.CaseRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO case_records (id, version, payload, updated_at)
		VALUES ($1, 1, $2, now())
		ON CONFLICT (id) DO UPDATE SET
			version = case_records.version + 1,
			payload = EXCLUDED.payload,
			updated_at = now()
	`, record.ID, payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	return nil
}

// StartEvent opens a change session bound to the case's current version.
func (s *PostgresCaseStore) StartEvent(ctx context.Context, caseID, eventType string) (*Session, error) {
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

// Submit applies the mutation against the latest stored snapshot and persists
// it in a transaction, failing with ErrConflict if the case version moved
// since StartEvent.
func (s *PostgresCaseStore) Submit(ctx context.Context, session *Session, mutate MutationFn, summary, description string) (*cases.CaseRecord, error) {
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

	if _, err := tx.ExecContext(ctx, `
		UPDATE case_records SET version = $1, payload = $2, updated_at = now() WHERE id = $3
	`, version+1, payload, session.CaseID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO case_events (token, case_id, event_type, summary, description, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
	`, session.Token, session.CaseID, session.EventType, summary, description); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	return record, nil
}

// Close closes the underlying connection pool.
func (s *PostgresCaseStore) Close() error {
	return s.db.Close()
}
