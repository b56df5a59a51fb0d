// Package casestore provides the gateway to the authoritative, versioned
// case record store. All case mutation flows through the start-event/submit
// protocol; the store is the sole arbiter of conflict detection.
package casestore

import (
	"context"
	"errors"

	"github.com/hmcts/sscs-hearings-go/internal/domain/cases"
)

// Store errors.
var (
	// ErrCaseNotFound indicates no case record exists for the identifier.
	ErrCaseNotFound = errors.New("case not found")

	// ErrConflict indicates the case version changed between start-event and
	// submit (optimistic-concurrency failure).
	ErrConflict = errors.New("case version conflict")

	// ErrSubmitFailed indicates the submit failed for a reason other than a
	// version conflict.
	ErrSubmitFailed = errors.New("case submit failed")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("case store is closed")

	// ErrStoreInitFailed indicates store initialization failed.
	ErrStoreInitFailed = errors.New("case store initialization failed")
)

// Session is a change session bound to one case at a specific version. A
// submit against a session whose version is no longer current fails with
// ErrConflict.
type Session struct {
	// Token uniquely identifies the session.
	Token string

	// CaseID identifies the case the session is bound to.
	CaseID string

	// EventType names the case event the session will commit.
	EventType string

	// CaseVersion is the case version the session was started against.
	CaseVersion int64

	// Case is a snapshot of the record at CaseVersion.
	Case *cases.CaseRecord
}

// MutationFn applies a deterministic mutation to a case record. Mutations
// must be pure so that a retried submit re-applies the same change to a
// fresh snapshot.
type MutationFn func(*cases.CaseRecord) error

// CaseStore is the case record store boundary.
type CaseStore interface {
	// GetCase loads the current case record.
	GetCase(ctx context.Context, caseID string) (*cases.CaseRecord, error)

	// PutCase creates or replaces a case record unconditionally.
	PutCase(ctx context.Context, record *cases.CaseRecord) error

	// StartEvent opens a change session bound to the case's current version.
	StartEvent(ctx context.Context, caseID, eventType string) (*Session, error)

	// Submit applies the mutation to the latest snapshot and persists it
	// with the event's summary and description, failing with ErrConflict if
	// the case version moved since StartEvent.
	Submit(ctx context.Context, session *Session, mutate MutationFn, summary, description string) (*cases.CaseRecord, error)

	// Close closes the store.
	Close() error
}

// UpdateCase opens a session and submits the mutation once, without retry.
// Callers needing the bounded retry policy wrap this themselves.
func UpdateCase(ctx context.Context, store CaseStore, caseID, eventType, summary, description string, mutate MutationFn) (*cases.CaseRecord, error) {
	session, err := store.StartEvent(ctx, caseID, eventType)
	if err != nil {
		return nil, err
	}
	return store.Submit(ctx, session, mutate, summary, description)
}
