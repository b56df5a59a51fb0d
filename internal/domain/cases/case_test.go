package cases

import (
	"testing"

	"github.com/hmcts/sscs-hearings-go/internal/domain/hearings"
)

func testCase() *CaseRecord {
	return &CaseRecord{
		ID:    "1625080769409918",
		State: StateReadyToList,
		Hearings: []HearingRecord{
			{HearingID: "100", Version: 2, Status: hearings.StatusCancelled},
			{HearingID: "123", Version: 5, Status: hearings.StatusListed},
		},
	}
}

func TestAppendHearingMergesExistingRecord(t *testing.T) {
	record := testCase()
	record.AppendHearing(hearings.SchedulingResponse{
		HearingID: "123",
		Version:   6,
		Status:    hearings.StatusUpdateSubmitted,
	})

	if len(record.Hearings) != 2 {
		t.Fatalf("expected no new record, got %d records", len(record.Hearings))
	}
	hearing := record.HearingByID("123")
	if hearing.Version != 6 || hearing.Status != hearings.StatusUpdateSubmitted {
		t.Fatalf("unexpected hearing: %+v", hearing)
	}
}

func TestAppendHearingAddsNewRecord(t *testing.T) {
	record := testCase()
	record.AppendHearing(hearings.SchedulingResponse{
		HearingID: "456",
		Version:   1,
		Status:    hearings.StatusHearingRequested,
	})

	if len(record.Hearings) != 3 {
		t.Fatalf("expected 3 records, got %d", len(record.Hearings))
	}
	if record.LatestHearing().HearingID != "456" {
		t.Fatalf("expected latest hearing 456, got %q", record.LatestHearing().HearingID)
	}
}

func TestMergeHearingResponseMonotonicVersions(t *testing.T) {
	tests := []struct {
		name        string
		version     int64
		wantChanged bool
		wantVersion int64
	}{
		{"older version discarded", 4, false, 5},
		{"equal version discarded", 5, false, 5},
		{"newer version applied", 6, true, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := testCase()
			changed := record.MergeHearingResponse(hearings.SchedulingResponse{
				HearingID: "123",
				Version:   tt.version,
				Status:    hearings.StatusUpdateSubmitted,
			})
			if changed != tt.wantChanged {
				t.Fatalf("expected changed=%v, got %v", tt.wantChanged, changed)
			}
			if got := record.HearingByID("123").Version; got != tt.wantVersion {
				t.Fatalf("expected version %d, got %d", tt.wantVersion, got)
			}
		})
	}
}

func TestMergeHearingResponseUnknownHearing(t *testing.T) {
	record := testCase()
	if record.MergeHearingResponse(hearings.SchedulingResponse{HearingID: "999", Version: 1}) {
		t.Fatal("merge of unknown hearing must report no change")
	}
}

func TestActiveHearingSkipsTerminalRecords(t *testing.T) {
	record := testCase()
	active := record.ActiveHearing()
	if active == nil || active.HearingID != "123" {
		t.Fatalf("expected active hearing 123, got %+v", active)
	}

	record.Hearings[1].Status = hearings.StatusCancelled
	if record.ActiveHearing() != nil {
		t.Fatal("expected no active hearing")
	}
}

func TestMarkHearingCancelled(t *testing.T) {
	record := testCase()
	if !record.MarkHearingCancelled("123") {
		t.Fatal("expected mark to succeed")
	}
	if record.HearingByID("123").Status != hearings.StatusCancellationRequested {
		t.Fatalf("unexpected status: %q", record.HearingByID("123").Status)
	}
	if record.MarkHearingCancelled("999") {
		t.Fatal("expected mark of unknown hearing to fail")
	}
}

func TestCloneIsDeep(t *testing.T) {
	duration := 30
	record := testCase()
	record.Listing.Overrides = &OverrideFields{
		Duration:      &duration,
		VenueEpimsIDs: []string{"219164"},
	}

	clone := record.Clone()
	clone.Hearings[1].Version = 99
	*clone.Listing.Overrides.Duration = 60
	clone.Listing.Overrides.VenueEpimsIDs[0] = "changed"

	if record.Hearings[1].Version != 5 {
		t.Fatal("clone shares hearing records with the original")
	}
	if *record.Listing.Overrides.Duration != 30 {
		t.Fatal("clone shares the duration pointer with the original")
	}
	if record.Listing.Overrides.VenueEpimsIDs[0] != "219164" {
		t.Fatal("clone shares the venue list with the original")
	}
}

func TestStateIn(t *testing.T) {
	invalid := DefaultInvalidListingStates()
	for _, state := range invalid {
		if !state.In(invalid) {
			t.Fatalf("state %q should be in the invalid set", state)
		}
	}
	if StateReadyToList.In(invalid) {
		t.Fatal("readyToList should not be in the invalid set")
	}
}
