// Package hearings orchestrates the hearing lifecycle: it dispatches
// requested transitions to the external scheduling service and reconciles
// the responses back onto the versioned case record.
package hearings

import (
	"context"
	"errors"
	"fmt"

	"github.com/hmcts/sscs-hearings-go/internal/domain/cases"
	domain "github.com/hmcts/sscs-hearings-go/internal/domain/hearings"
	"github.com/hmcts/sscs-hearings-go/internal/domain/refdata"
	"github.com/hmcts/sscs-hearings-go/internal/infrastructure/casestore"
	"github.com/hmcts/sscs-hearings-go/internal/infrastructure/listings"
)

// Recorder observes retry and compensation activity. Implementations must
// be safe for concurrent use.
type Recorder interface {
	CaseUpdateRetried()
	CompensationIssued()
}

// Service orchestrates hearing lifecycle transitions for appeal cases.
type Service struct {
	store         casestore.CaseStore
	gateway       listings.Gateway
	builder       *PayloadBuilder
	invalidStates []cases.State
	retry         RetryPolicy
	recorder      Recorder
}

// Option configures a Service.
type Option func(*Service)

// WithInvalidListingStates overrides the set of case states in which no
// hearing may be requested.
func WithInvalidListingStates(states []cases.State) Option {
	return func(s *Service) {
		s.invalidStates = states
	}
}

// WithRetryPolicy overrides the case-update retry policy.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(s *Service) {
		s.retry = policy
	}
}

// WithRecorder attaches a retry/compensation recorder.
func WithRecorder(recorder Recorder) Option {
	return func(s *Service) {
		s.recorder = recorder
	}
}

// NewService creates the hearing lifecycle orchestrator.
func NewService(store casestore.CaseStore, gateway listings.Gateway, ref *refdata.ReferenceData, opts ...Option) *Service {
	s := &Service{
		store:         store,
		gateway:       gateway,
		builder:       NewPayloadBuilder(ref),
		invalidStates: cases.DefaultInvalidListingStates(),
		retry:         DefaultRetryPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessHearingRequest executes one hearing lifecycle transition. Each
// request is handled independently and exactly once: a nil return means the
// transition was fully reconciled (or deliberately skipped), any error means
// the request should be redelivered or dead-lettered by the caller.
func (s *Service) ProcessHearingRequest(ctx context.Context, request domain.HearingRequest) error {
	state, err := domain.ParseHearingState(string(request.HearingState))
	if err != nil {
		return err
	}

	if state.IsAcknowledgeOnly() {
		return nil
	}

	record, err := s.store.GetCase(ctx, request.CaseID)
	if err != nil {
		return err
	}

	event, err := EventForState(state)
	if err != nil {
		return err
	}

	switch state {
	case domain.StateCreateHearing:
		return s.createHearing(ctx, record, event, NewCreateHearingMutation)
	case domain.StateAdjournCreateHearing:
		return s.createHearing(ctx, record, event, NewAdjournCreateHearingMutation)
	case domain.StateUpdateHearing:
		return s.updateHearing(ctx, record, event)
	case domain.StateCancelHearing:
		return s.cancelHearing(ctx, record, event, request.CancellationReasons())
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnhandleableState, state)
	}
}

// mutationFactory builds the deferred case mutation for one create-family
// transition from the scheduling response and the default-listing-values
// snapshot.
type mutationFactory func(domain.SchedulingResponse, *cases.OverrideFields) casestore.MutationFn

// createHearing handles the createHearing and adjournCreateHearing
// transitions. A case in a state where listing is not valid is acknowledged
// without contacting the scheduling service. If the scheduling service
// already holds an outstanding request for the case, that hearing is adopted
// instead of creating a duplicate.
func (s *Service) createHearing(ctx context.Context, record *cases.CaseRecord, event HearingEvent, newMutation mutationFactory) error {
	if record.State.In(s.invalidStates) {
		return nil
	}

	payload, err := s.builder.BuildHearingPayload(record)
	if err != nil {
		return err
	}
	defaults, err := s.builder.BuildDefaultListingValues(record)
	if err != nil {
		return err
	}

	response, adopted, err := s.resolveHearing(ctx, record.ID, payload)
	if err != nil {
		return err
	}

	_, err = s.updateCaseWithRetry(ctx, record.ID, event, newMutation(*response, defaults))
	if err != nil && errors.Is(err, domain.ErrRetriesExhausted) && !adopted {
		s.compensateHearing(ctx, response.HearingID)
	}
	return err
}

// resolveHearing either adopts the earliest outstanding hearing request the
// scheduling service already holds for the case, or submits a new one. A
// failed outstanding-request query fails the transition: creating without it
// risks duplicating a hearing the service already holds. When adopting, the
// request version is probed from the scheduling service; if the probe fails
// the version falls back to 1 rather than failing the whole transition.
func (s *Service) resolveHearing(ctx context.Context, caseID string, payload listings.HearingRequestPayload) (*domain.SchedulingResponse, bool, error) {
	known, err := s.gateway.HearingsForCase(ctx, caseID, nil)
	if err != nil {
		return nil, false, err
	}
	if outstanding := known.FindOutstandingRequest(); outstanding != nil {
		return &domain.SchedulingResponse{
			HearingID: outstanding.HearingID,
			Version:   s.probeVersion(ctx, outstanding),
			Status:    outstanding.HmcStatus,
		}, true, nil
	}

	response, err := s.gateway.CreateHearing(ctx, payload)
	if err != nil {
		return nil, false, err
	}
	return response, false, nil
}

func (s *Service) probeVersion(ctx context.Context, hearing *listings.CaseHearing) int64 {
	details, err := s.gateway.GetHearing(ctx, hearing.HearingID)
	if err != nil || details.RequestDetails.VersionNumber == 0 {
		return 1
	}
	return details.RequestDetails.VersionNumber
}

// compensateHearing cancels a hearing whose created or amended request could
// not be reconciled onto the case record. Best-effort: the fatal
// retries-exhausted error is reported either way.
func (s *Service) compensateHearing(ctx context.Context, hearingID string) {
	if s.recorder != nil {
		s.recorder.CompensationIssued()
	}
	payload := listings.CancelRequestPayload{}
	_, _ = s.gateway.CancelHearing(ctx, payload, hearingID)
}

// updateHearing amends the case's active hearing with the scheduling
// service, then merges the response version back onto the record. An
// amendment the case record could never absorb is compensated like a
// create: the amended hearing is cancelled.
func (s *Service) updateHearing(ctx context.Context, record *cases.CaseRecord, event HearingEvent) error {
	active := record.ActiveHearing()
	if active == nil {
		return fmt.Errorf("%w: case %s", domain.ErrNoHearing, record.ID)
	}

	payload, err := s.builder.BuildHearingPayload(record)
	if err != nil {
		return err
	}
	payload.RequestDetails.VersionNumber = active.Version

	response, err := s.gateway.UpdateHearing(ctx, payload, active.HearingID)
	if err != nil {
		return err
	}

	_, err = s.updateCaseWithRetry(ctx, record.ID, event, NewUpdateHearingMutation(*response))
	if err != nil && errors.Is(err, domain.ErrRetriesExhausted) {
		s.compensateHearing(ctx, active.HearingID)
	}
	return err
}

// cancelHearing requests cancellation of the case's active hearing. Reasons
// are optional; when absent the cancel request carries no reason codes.
func (s *Service) cancelHearing(ctx context.Context, record *cases.CaseRecord, event HearingEvent, reasons []domain.CancellationReason) error {
	active := record.ActiveHearing()
	if active == nil {
		return fmt.Errorf("%w: case %s", domain.ErrNoHearing, record.ID)
	}

	payload, err := s.builder.BuildCancelPayload(reasons)
	if err != nil {
		return err
	}

	if _, err := s.gateway.CancelHearing(ctx, payload, active.HearingID); err != nil {
		return err
	}

	_, err = s.updateCaseWithRetry(ctx, record.ID, event, NewCancelHearingMutation(active.HearingID))
	return err
}
