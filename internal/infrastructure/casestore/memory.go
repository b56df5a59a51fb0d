package casestore

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/hmcts/sscs-hearings-go/internal/domain/cases"
)

type versionedRecord struct {
	record  *cases.CaseRecord
	version int64
}

// InMemoryCaseStore provides an in-memory case store.
type InMemoryCaseStore struct {
	mu      sync.RWMutex
	records map[string]*versionedRecord
	closed  bool
}

var _ CaseStore = (*InMemoryCaseStore)(nil)

// NewInMemoryCaseStore creates a new in-memory case store.
func NewInMemoryCaseStore() *InMemoryCaseStore {
	return &InMemoryCaseStore{
		records: make(map[string]*versionedRecord),
	}
}

// GetCase loads the current case record.
func (s *InMemoryCaseStore) GetCase(ctx context.Context, caseID string) (*cases.CaseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	entry, exists := s.records[caseID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrCaseNotFound, caseID)
	}
	return entry.record.Clone(), nil
}

// PutCase creates or replaces a case record unconditionally.
func (s *InMemoryCaseStore) PutCase(ctx context.Context, record *cases.CaseRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	version := int64(1)
	if existing, exists := s.records[record.ID]; exists {
		version = existing.version + 1
	}
	s.records[record.ID] = &versionedRecord{record: record.Clone(), version: version}
	return nil
}

// StartEvent opens a change session bound to the case's current version.
func (s *InMemoryCaseStore) StartEvent(ctx context.Context, caseID, eventType string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	entry, exists := s.records[caseID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrCaseNotFound, caseID)
	}

	return &Session{
		Token:       uuid.New().String(),
		CaseID:      caseID,
		EventType:   eventType,
		CaseVersion: entry.version,
		Case:        entry.record.Clone(),
	}, nil
}

// Submit applies the mutation and persists the result, failing with
// ErrConflict if the case version moved since StartEvent.
func (s *InMemoryCaseStore) Submit(ctx context.Context, session *Session, mutate MutationFn, summary, description string) (*cases.CaseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	entry, exists := s.records[session.CaseID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrCaseNotFound, session.CaseID)
	}

	if entry.version != session.CaseVersion {
		return nil, fmt.Errorf("%w: case %s moved from version %d to %d",
			ErrConflict, session.CaseID, session.CaseVersion, entry.version)
	}

	mutated := entry.record.Clone()
	if err := mutate(mutated); err != nil {
		return nil, err
	}

	s.records[session.CaseID] = &versionedRecord{record: mutated, version: entry.version + 1}
	return mutated.Clone(), nil
}

// Close closes the store.
func (s *InMemoryCaseStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// BumpVersion advances a case's version without changing the record,
// simulating a concurrent writer (for testing).
func (s *InMemoryCaseStore) BumpVersion(caseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, exists := s.records[caseID]; exists {
		entry.version++
	}
}
