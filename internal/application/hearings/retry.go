package hearings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hmcts/sscs-hearings-go/internal/domain/cases"
	domain "github.com/hmcts/sscs-hearings-go/internal/domain/hearings"
	"github.com/hmcts/sscs-hearings-go/internal/infrastructure/casestore"
)

// RetryPolicy bounds the case-update retry loop.
type RetryPolicy struct {
	// MaxAttempts is the total number of submit attempts, including the
	// first.
	MaxAttempts int

	// Backoff is the pause between attempts.
	Backoff time.Duration
}

// DefaultRetryPolicy returns the standard policy: three attempts, five
// seconds apart.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Backoff: 5 * time.Second}
}

// updateCaseWithRetry commits a case event under the bounded retry policy.
// Each attempt opens a fresh session, so the mutation re-applies to the
// latest snapshot after a conflict. Mutation errors are not retried: a
// mutation that rejects one snapshot rejects them all.
func (s *Service) updateCaseWithRetry(ctx context.Context, caseID string, event HearingEvent, mutate casestore.MutationFn) (*cases.CaseRecord, error) {
	attempts := s.retry.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		record, err := casestore.UpdateCase(ctx, s.store, caseID, event.Type, event.Summary, event.Description, mutate)
		if err == nil {
			return record, nil
		}
		if !isRetryableStoreError(err) {
			return nil, err
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		if s.recorder != nil {
			s.recorder.CaseUpdateRetried()
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.retry.Backoff):
		}
	}

	return nil, fmt.Errorf("%w: %d attempts for case %s: %w",
		domain.ErrRetriesExhausted, attempts, caseID, lastErr)
}

// isRetryableStoreError reports whether a failed submit may succeed against a
// fresh snapshot.
func isRetryableStoreError(err error) bool {
	return errors.Is(err, casestore.ErrConflict) || errors.Is(err, casestore.ErrSubmitFailed)
}
