package hearings

import (
	"fmt"

	"github.com/hmcts/sscs-hearings-go/internal/domain/cases"
	domain "github.com/hmcts/sscs-hearings-go/internal/domain/hearings"
	"github.com/hmcts/sscs-hearings-go/internal/infrastructure/casestore"
)

// Mutations close over a scheduling response and apply it to whatever case
// snapshot the store hands them. They never touch the snapshot the response
// was built from, so a conflicted submit can re-apply them unchanged to a
// fresh snapshot.

// NewCreateHearingMutation records a newly requested hearing on the case.
func NewCreateHearingMutation(response domain.SchedulingResponse, defaults *cases.OverrideFields) casestore.MutationFn {
	return func(record *cases.CaseRecord) error {
		record.AppendHearing(response)
		if defaults != nil {
			record.Listing.Defaults = defaults
		}
		return nil
	}
}

// NewAdjournCreateHearingMutation records a replacement hearing requested
// after an adjournment. It clears the adjournment-in-progress marker and
// re-stamps the default listing values alongside appending the new hearing.
func NewAdjournCreateHearingMutation(response domain.SchedulingResponse, defaults *cases.OverrideFields) casestore.MutationFn {
	return func(record *cases.CaseRecord) error {
		record.AdjournmentInProgress = false
		if defaults != nil {
			record.Listing.Defaults = defaults
		}
		record.AppendHearing(response)
		return nil
	}
}

// NewUpdateHearingMutation merges an amended hearing response into the
// matching hearing record. A response for a hearing the case does not hold
// is an error; a response whose version is not strictly greater than the
// stored version is discarded without error.
func NewUpdateHearingMutation(response domain.SchedulingResponse) casestore.MutationFn {
	return func(record *cases.CaseRecord) error {
		if record.HearingByID(response.HearingID) == nil {
			return fmt.Errorf("%w: hearing %s on case %s",
				domain.ErrNoHearing, response.HearingID, record.ID)
		}
		record.MergeHearingResponse(response)
		return nil
	}
}

// NewCancelHearingMutation records that cancellation of a hearing has been
// requested.
func NewCancelHearingMutation(hearingID string) casestore.MutationFn {
	return func(record *cases.CaseRecord) error {
		if !record.MarkHearingCancelled(hearingID) {
			return fmt.Errorf("%w: hearing %s on case %s",
				domain.ErrNoHearing, hearingID, record.ID)
		}
		return nil
	}
}
