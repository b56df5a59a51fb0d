package hearings

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hmcts/sscs-hearings-go/internal/domain/cases"
	domain "github.com/hmcts/sscs-hearings-go/internal/domain/hearings"
	"github.com/hmcts/sscs-hearings-go/internal/domain/refdata"
	"github.com/hmcts/sscs-hearings-go/internal/infrastructure/casestore"
	"github.com/hmcts/sscs-hearings-go/internal/infrastructure/listings"
)

const testCaseID = "1625080769409918"

// fakeGateway is a scripted scheduling-service gateway.
type fakeGateway struct {
	createCalls   int
	lastCreate    listings.HearingRequestPayload
	createResp    *domain.SchedulingResponse
	createErr     error
	updateCalls   int
	lastUpdate    listings.HearingRequestPayload
	lastUpdateID  string
	updateResp    *domain.SchedulingResponse
	updateErr     error
	cancelCalls   int
	lastCancel    listings.CancelRequestPayload
	lastCancelID  string
	cancelResp    *domain.SchedulingResponse
	cancelErr     error
	caseHearings  *listings.CaseHearingsResponse
	caseErr       error
	getResp       *listings.GetResponse
	getErr        error
	getCalls      int
}

func (g *fakeGateway) CreateHearing(ctx context.Context, payload listings.HearingRequestPayload) (*domain.SchedulingResponse, error) {
	g.createCalls++
	g.lastCreate = payload
	if g.createErr != nil {
		return nil, g.createErr
	}
	if g.createResp != nil {
		return g.createResp, nil
	}
	return &domain.SchedulingResponse{HearingID: "123", Version: 1234, Status: domain.StatusHearingRequested}, nil
}

func (g *fakeGateway) UpdateHearing(ctx context.Context, payload listings.HearingRequestPayload, hearingID string) (*domain.SchedulingResponse, error) {
	g.updateCalls++
	g.lastUpdate = payload
	g.lastUpdateID = hearingID
	if g.updateErr != nil {
		return nil, g.updateErr
	}
	return g.updateResp, nil
}

func (g *fakeGateway) CancelHearing(ctx context.Context, payload listings.CancelRequestPayload, hearingID string) (*domain.SchedulingResponse, error) {
	g.cancelCalls++
	g.lastCancel = payload
	g.lastCancelID = hearingID
	if g.cancelErr != nil {
		return nil, g.cancelErr
	}
	if g.cancelResp != nil {
		return g.cancelResp, nil
	}
	return &domain.SchedulingResponse{HearingID: hearingID, Status: domain.StatusCancellationRequested}, nil
}

func (g *fakeGateway) GetHearing(ctx context.Context, hearingID string) (*listings.GetResponse, error) {
	g.getCalls++
	if g.getErr != nil {
		return nil, g.getErr
	}
	return g.getResp, nil
}

func (g *fakeGateway) HearingsForCase(ctx context.Context, caseID string, statusFilter *domain.HmcStatus) (*listings.CaseHearingsResponse, error) {
	if g.caseErr != nil {
		return nil, g.caseErr
	}
	if g.caseHearings != nil {
		return g.caseHearings, nil
	}
	return &listings.CaseHearingsResponse{CaseID: caseID}, nil
}

// conflictStore wraps a real store but fails every submit with a version
// conflict, simulating a writer that always wins the race.
type conflictStore struct {
	casestore.CaseStore
	submits int
}

func (s *conflictStore) Submit(ctx context.Context, session *casestore.Session, mutate casestore.MutationFn, summary, description string) (*cases.CaseRecord, error) {
	s.submits++
	return nil, fmt.Errorf("%w: scripted", casestore.ErrConflict)
}

func newTestService(t *testing.T, record *cases.CaseRecord, gateway *fakeGateway) (*Service, *casestore.InMemoryCaseStore) {
	t.Helper()
	store := casestore.NewInMemoryCaseStore()
	if record != nil {
		if err := store.PutCase(context.Background(), record); err != nil {
			t.Fatalf("seed case: %v", err)
		}
	}
	service := NewService(store, gateway, refdata.NewReferenceData(),
		WithRetryPolicy(RetryPolicy{MaxAttempts: 3, Backoff: 0}))
	return service, store
}

func listableCase() *cases.CaseRecord {
	return &cases.CaseRecord{
		ID:              testCaseID,
		State:           cases.StateReadyToList,
		BenefitCode:     "002",
		IssueCode:       "DD",
		ProcessingVenue: "Processing Venue",
	}
}

func TestProcessHearingRequestUnknownState(t *testing.T) {
	gateway := &fakeGateway{}
	service, _ := newTestService(t, listableCase(), gateway)

	tests := []struct {
		name  string
		state domain.HearingState
	}{
		{"empty", ""},
		{"unknown", "relistHearing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
				CaseID:       testCaseID,
				HearingState: tt.state,
			})
			if !errors.Is(err, domain.ErrUnhandleableState) {
				t.Fatalf("expected ErrUnhandleableState, got %v", err)
			}
			if gateway.createCalls != 0 {
				t.Fatal("scheduling service should not be contacted")
			}
		})
	}
}

func TestProcessHearingRequestAcknowledgeOnly(t *testing.T) {
	gateway := &fakeGateway{}
	// No case seeded: acknowledge-only states must not touch the store.
	service, _ := newTestService(t, nil, gateway)

	for _, state := range []domain.HearingState{domain.StateUpdatedCase, domain.StatePartyNotified} {
		t.Run(string(state), func(t *testing.T) {
			err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
				CaseID:       testCaseID,
				HearingState: state,
			})
			if err != nil {
				t.Fatalf("expected nil, got %v", err)
			}
		})
	}
	if gateway.createCalls+gateway.updateCalls+gateway.cancelCalls != 0 {
		t.Fatal("acknowledge-only states must not contact the scheduling service")
	}
}

func TestCreateHearingSkipsInvalidCaseStates(t *testing.T) {
	for _, state := range cases.DefaultInvalidListingStates() {
		t.Run(string(state), func(t *testing.T) {
			record := listableCase()
			record.State = state
			gateway := &fakeGateway{}
			service, _ := newTestService(t, record, gateway)

			err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
				CaseID:       testCaseID,
				HearingState: domain.StateCreateHearing,
			})
			if err != nil {
				t.Fatalf("expected nil, got %v", err)
			}
			if gateway.createCalls != 0 {
				t.Fatal("scheduling service should not be contacted for an invalid case state")
			}
		})
	}
}

func TestCreateHearingAppendsHearingRecord(t *testing.T) {
	gateway := &fakeGateway{}
	service, store := newTestService(t, listableCase(), gateway)

	err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
		CaseID:       testCaseID,
		HearingState: domain.StateCreateHearing,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if gateway.createCalls != 1 {
		t.Fatalf("expected 1 create call, got %d", gateway.createCalls)
	}

	record, err := store.GetCase(context.Background(), testCaseID)
	if err != nil {
		t.Fatalf("get case: %v", err)
	}
	hearing := record.LatestHearing()
	if hearing == nil {
		t.Fatal("expected a hearing record")
	}
	if hearing.HearingID != "123" || hearing.Version != 1234 || hearing.Status != domain.StatusHearingRequested {
		t.Fatalf("unexpected hearing record: %+v", hearing)
	}

	categories := gateway.lastCreate.CaseDetails.CaseCategories
	if len(categories) != 2 || categories[1].CategoryValue != "CATEGORY_03" {
		t.Fatalf("unexpected case categories: %+v", categories)
	}
	locations := gateway.lastCreate.HearingDetails.HearingLocations
	if len(locations) != 1 || locations[0].LocationID != "219164" {
		t.Fatalf("unexpected hearing locations: %+v", locations)
	}
}

func TestCreateHearingRejectsUnalignedDuration(t *testing.T) {
	for duration := 31; duration <= 34; duration++ {
		t.Run(fmt.Sprintf("duration%d", duration), func(t *testing.T) {
			record := listableCase()
			d := duration
			record.Listing.Overrides = &cases.OverrideFields{Duration: &d}
			gateway := &fakeGateway{}
			service, _ := newTestService(t, record, gateway)

			err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
				CaseID:       testCaseID,
				HearingState: domain.StateCreateHearing,
			})
			if !errors.Is(err, domain.ErrListing) {
				t.Fatalf("expected ErrListing, got %v", err)
			}
			if gateway.createCalls != 0 {
				t.Fatal("scheduling service should not be contacted for an invalid duration")
			}
		})
	}
}

func TestCreateHearingAcceptsAlignedDuration(t *testing.T) {
	record := listableCase()
	d := 30
	record.Listing.Overrides = &cases.OverrideFields{Duration: &d}
	gateway := &fakeGateway{}
	service, _ := newTestService(t, record, gateway)

	err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
		CaseID:       testCaseID,
		HearingState: domain.StateCreateHearing,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if gateway.lastCreate.HearingDetails.Duration != 30 {
		t.Fatalf("expected duration 30, got %d", gateway.lastCreate.HearingDetails.Duration)
	}
}

func TestCreateHearingAdoptsOutstandingRequest(t *testing.T) {
	earlier := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	later := earlier.Add(48 * time.Hour)
	gateway := &fakeGateway{
		caseHearings: &listings.CaseHearingsResponse{
			CaseID: testCaseID,
			CaseHearings: []listings.CaseHearing{
				{HearingID: "456", HmcStatus: domain.StatusAwaitingListing, RequestedAt: later},
				{HearingID: "123", HmcStatus: domain.StatusHearingRequested, RequestedAt: earlier},
				{HearingID: "789", HmcStatus: domain.StatusCancelled, RequestedAt: earlier.Add(-time.Hour)},
			},
		},
		getResp: &listings.GetResponse{
			RequestDetails: listings.RequestDetails{VersionNumber: 7},
		},
	}
	service, store := newTestService(t, listableCase(), gateway)

	err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
		CaseID:       testCaseID,
		HearingState: domain.StateCreateHearing,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if gateway.createCalls != 0 {
		t.Fatal("an outstanding request must be adopted, not duplicated")
	}

	record, _ := store.GetCase(context.Background(), testCaseID)
	hearing := record.LatestHearing()
	if hearing == nil || hearing.HearingID != "123" {
		t.Fatalf("expected earliest outstanding hearing 123, got %+v", hearing)
	}
	if hearing.Version != 7 {
		t.Fatalf("expected probed version 7, got %d", hearing.Version)
	}
}

func TestCreateHearingAdoptionVersionProbeFallsBack(t *testing.T) {
	gateway := &fakeGateway{
		caseHearings: &listings.CaseHearingsResponse{
			CaseID: testCaseID,
			CaseHearings: []listings.CaseHearing{
				{HearingID: "123", HmcStatus: domain.StatusHearingRequested, RequestedAt: time.Now()},
			},
		},
		getErr: errors.New("scripted outage"),
	}
	service, store := newTestService(t, listableCase(), gateway)

	err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
		CaseID:       testCaseID,
		HearingState: domain.StateCreateHearing,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	record, _ := store.GetCase(context.Background(), testCaseID)
	hearing := record.LatestHearing()
	if hearing == nil || hearing.Version != 1 {
		t.Fatalf("expected fallback version 1, got %+v", hearing)
	}
}

func TestCreateHearingRetriesThenCompensates(t *testing.T) {
	gateway := &fakeGateway{}
	store := casestore.NewInMemoryCaseStore()
	if err := store.PutCase(context.Background(), listableCase()); err != nil {
		t.Fatalf("seed case: %v", err)
	}
	conflicted := &conflictStore{CaseStore: store}
	service := NewService(conflicted, gateway, refdata.NewReferenceData(),
		WithRetryPolicy(RetryPolicy{MaxAttempts: 3, Backoff: 0}))

	err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
		CaseID:       testCaseID,
		HearingState: domain.StateCreateHearing,
	})
	if !errors.Is(err, domain.ErrRetriesExhausted) {
		t.Fatalf("expected ErrRetriesExhausted, got %v", err)
	}
	if !errors.Is(err, casestore.ErrConflict) {
		t.Fatalf("expected the conflict cause to be wrapped, got %v", err)
	}
	if conflicted.submits != 3 {
		t.Fatalf("expected 3 submit attempts, got %d", conflicted.submits)
	}
	if gateway.cancelCalls != 1 || gateway.lastCancelID != "123" {
		t.Fatalf("expected one compensating cancel of hearing 123, got %d calls for %q",
			gateway.cancelCalls, gateway.lastCancelID)
	}
	if gateway.lastCancel.CancellationReasonCodes != nil {
		t.Fatalf("compensating cancel must carry no reason codes, got %v",
			gateway.lastCancel.CancellationReasonCodes)
	}
}

func TestCreateHearingFailsWhenOutstandingQueryFails(t *testing.T) {
	gateway := &fakeGateway{caseErr: errors.New("scripted outage")}
	service, store := newTestService(t, listableCase(), gateway)

	err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
		CaseID:       testCaseID,
		HearingState: domain.StateCreateHearing,
	})
	if err == nil {
		t.Fatal("a failed outstanding-request query must fail the transition")
	}
	if gateway.createCalls != 0 {
		t.Fatal("no hearing may be created without the outstanding-request check")
	}

	record, _ := store.GetCase(context.Background(), testCaseID)
	if len(record.Hearings) != 0 {
		t.Fatalf("case must be untouched, got %+v", record.Hearings)
	}
}

func TestUpdateHearingRetriesThenCompensates(t *testing.T) {
	record := listableCase()
	record.Hearings = []cases.HearingRecord{
		{HearingID: "123", Version: 2, Status: domain.StatusAwaitingListing},
	}
	gateway := &fakeGateway{
		updateResp: &domain.SchedulingResponse{
			HearingID: "123",
			Version:   3,
			Status:    domain.StatusUpdateRequested,
		},
	}
	store := casestore.NewInMemoryCaseStore()
	if err := store.PutCase(context.Background(), record); err != nil {
		t.Fatalf("seed case: %v", err)
	}
	conflicted := &conflictStore{CaseStore: store}
	service := NewService(conflicted, gateway, refdata.NewReferenceData(),
		WithRetryPolicy(RetryPolicy{MaxAttempts: 3, Backoff: 0}))

	err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
		CaseID:       testCaseID,
		HearingState: domain.StateUpdateHearing,
	})
	if !errors.Is(err, domain.ErrRetriesExhausted) {
		t.Fatalf("expected ErrRetriesExhausted, got %v", err)
	}
	if conflicted.submits != 3 {
		t.Fatalf("expected 3 submit attempts, got %d", conflicted.submits)
	}
	if gateway.cancelCalls != 1 || gateway.lastCancelID != "123" {
		t.Fatalf("expected one compensating cancel of hearing 123, got %d calls for %q",
			gateway.cancelCalls, gateway.lastCancelID)
	}
	if gateway.lastCancel.CancellationReasonCodes != nil {
		t.Fatalf("compensating cancel must carry no reason codes, got %v",
			gateway.lastCancel.CancellationReasonCodes)
	}
}

func TestCreateHearingAdoptedRequestIsNotCompensated(t *testing.T) {
	gateway := &fakeGateway{
		caseHearings: &listings.CaseHearingsResponse{
			CaseID: testCaseID,
			CaseHearings: []listings.CaseHearing{
				{HearingID: "123", HmcStatus: domain.StatusHearingRequested, RequestedAt: time.Now()},
			},
		},
		getResp: &listings.GetResponse{RequestDetails: listings.RequestDetails{VersionNumber: 2}},
	}
	store := casestore.NewInMemoryCaseStore()
	if err := store.PutCase(context.Background(), listableCase()); err != nil {
		t.Fatalf("seed case: %v", err)
	}
	conflicted := &conflictStore{CaseStore: store}
	service := NewService(conflicted, gateway, refdata.NewReferenceData(),
		WithRetryPolicy(RetryPolicy{MaxAttempts: 2, Backoff: 0}))

	err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
		CaseID:       testCaseID,
		HearingState: domain.StateCreateHearing,
	})
	if !errors.Is(err, domain.ErrRetriesExhausted) {
		t.Fatalf("expected ErrRetriesExhausted, got %v", err)
	}
	if gateway.cancelCalls != 0 {
		t.Fatal("an adopted hearing must not be cancelled by compensation")
	}
}

func TestAdjournCreateHearingRestampsDefaults(t *testing.T) {
	record := listableCase()
	record.State = cases.StateHearing
	record.AdjournmentInProgress = true
	record.Hearings = []cases.HearingRecord{
		{HearingID: "111", Version: 3, Status: domain.StatusAdjourned},
	}
	gateway := &fakeGateway{}
	service, store := newTestService(t, record, gateway)

	err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
		CaseID:       testCaseID,
		HearingState: domain.StateAdjournCreateHearing,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	updated, _ := store.GetCase(context.Background(), testCaseID)
	if updated.AdjournmentInProgress {
		t.Fatal("adjournment-in-progress marker should be cleared")
	}
	if updated.LatestHearing() == nil || updated.LatestHearing().HearingID != "123" {
		t.Fatalf("expected replacement hearing 123, got %+v", updated.LatestHearing())
	}

	defaults := updated.Listing.Defaults
	if defaults == nil {
		t.Fatal("expected default listing values to be stamped")
	}
	// 002/DD has no duration entry, so the snapshot carries a zero duration.
	if defaults.Duration == nil || *defaults.Duration != 0 {
		t.Fatalf("expected zero default duration, got %+v", defaults.Duration)
	}
	if defaults.AutoList == nil || *defaults.AutoList {
		t.Fatal("expected autoList false")
	}
	if defaults.AppellantChannel != cases.ChannelFaceToFace {
		t.Fatalf("expected faceToFace channel, got %q", defaults.AppellantChannel)
	}
	if defaults.InterpreterWanted == nil || *defaults.InterpreterWanted {
		t.Fatal("expected interpreter not wanted")
	}
	if len(defaults.VenueEpimsIDs) != 1 || defaults.VenueEpimsIDs[0] != "219164" {
		t.Fatalf("expected venue 219164, got %v", defaults.VenueEpimsIDs)
	}
}

func TestUpdateHearingMergesResponseVersion(t *testing.T) {
	record := listableCase()
	record.Hearings = []cases.HearingRecord{
		{HearingID: "123", Version: 2, Status: domain.StatusAwaitingListing},
	}
	gateway := &fakeGateway{
		updateResp: &domain.SchedulingResponse{
			HearingID: "123",
			Version:   3,
			Status:    domain.StatusUpdateRequested,
		},
	}
	service, store := newTestService(t, record, gateway)

	err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
		CaseID:       testCaseID,
		HearingState: domain.StateUpdateHearing,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if gateway.lastUpdateID != "123" {
		t.Fatalf("expected update of hearing 123, got %q", gateway.lastUpdateID)
	}
	if gateway.lastUpdate.RequestDetails.VersionNumber != 2 {
		t.Fatalf("expected request version 2, got %d", gateway.lastUpdate.RequestDetails.VersionNumber)
	}

	updated, _ := store.GetCase(context.Background(), testCaseID)
	hearing := updated.HearingByID("123")
	if hearing.Version != 3 || hearing.Status != domain.StatusUpdateRequested {
		t.Fatalf("unexpected hearing record after update: %+v", hearing)
	}
}

func TestUpdateHearingDiscardsStaleResponseVersion(t *testing.T) {
	record := listableCase()
	record.Hearings = []cases.HearingRecord{
		{HearingID: "123", Version: 5, Status: domain.StatusListed},
	}
	gateway := &fakeGateway{
		updateResp: &domain.SchedulingResponse{
			HearingID: "123",
			Version:   4,
			Status:    domain.StatusUpdateRequested,
		},
	}
	service, store := newTestService(t, record, gateway)

	err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
		CaseID:       testCaseID,
		HearingState: domain.StateUpdateHearing,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	updated, _ := store.GetCase(context.Background(), testCaseID)
	hearing := updated.HearingByID("123")
	if hearing.Version != 5 || hearing.Status != domain.StatusListed {
		t.Fatalf("stale response must be discarded, got %+v", hearing)
	}
}

func TestUpdateHearingWithoutHearingRecord(t *testing.T) {
	gateway := &fakeGateway{}
	service, _ := newTestService(t, listableCase(), gateway)

	err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
		CaseID:       testCaseID,
		HearingState: domain.StateUpdateHearing,
	})
	if !errors.Is(err, domain.ErrNoHearing) {
		t.Fatalf("expected ErrNoHearing, got %v", err)
	}
	if gateway.updateCalls != 0 {
		t.Fatal("scheduling service should not be contacted without a hearing record")
	}
}

func TestCancelHearingWithReason(t *testing.T) {
	record := listableCase()
	record.Hearings = []cases.HearingRecord{
		{HearingID: "123", Version: 2, Status: domain.StatusListed},
	}
	gateway := &fakeGateway{}
	service, store := newTestService(t, record, gateway)

	err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
		CaseID:             testCaseID,
		HearingState:       domain.StateCancelHearing,
		CancellationReason: domain.ReasonSettled,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if gateway.cancelCalls != 1 || gateway.lastCancelID != "123" {
		t.Fatalf("expected one cancel of hearing 123, got %d calls for %q",
			gateway.cancelCalls, gateway.lastCancelID)
	}
	codes := gateway.lastCancel.CancellationReasonCodes
	if len(codes) != 1 || codes[0] != "settled" {
		t.Fatalf("expected reason codes [settled], got %v", codes)
	}

	updated, _ := store.GetCase(context.Background(), testCaseID)
	if updated.HearingByID("123").Status != domain.StatusCancellationRequested {
		t.Fatalf("expected cancellation requested, got %q", updated.HearingByID("123").Status)
	}
}

func TestCancelHearingWithoutReason(t *testing.T) {
	record := listableCase()
	record.Hearings = []cases.HearingRecord{
		{HearingID: "123", Version: 2, Status: domain.StatusListed},
	}
	gateway := &fakeGateway{}
	service, _ := newTestService(t, record, gateway)

	err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
		CaseID:       testCaseID,
		HearingState: domain.StateCancelHearing,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if gateway.lastCancel.CancellationReasonCodes != nil {
		t.Fatalf("absent reasons must produce nil codes, got %v",
			gateway.lastCancel.CancellationReasonCodes)
	}
}

func TestCancelHearingWithoutHearingRecord(t *testing.T) {
	gateway := &fakeGateway{}
	service, _ := newTestService(t, listableCase(), gateway)

	err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
		CaseID:       testCaseID,
		HearingState: domain.StateCancelHearing,
	})
	if !errors.Is(err, domain.ErrNoHearing) {
		t.Fatalf("expected ErrNoHearing, got %v", err)
	}
}

func TestProcessHearingRequestUnknownCase(t *testing.T) {
	gateway := &fakeGateway{}
	service, _ := newTestService(t, nil, gateway)

	err := service.ProcessHearingRequest(context.Background(), domain.HearingRequest{
		CaseID:       "999",
		HearingState: domain.StateCreateHearing,
	})
	if !errors.Is(err, casestore.ErrCaseNotFound) {
		t.Fatalf("expected ErrCaseNotFound, got %v", err)
	}
}
