package cases

import (
	"github.com/hmcts/sscs-hearings-go/internal/domain/hearings"
)

// CaseRecord is the authoritative, versioned representation of one appeal
// case. It is owned by the case store; the orchestrator mutates it only
// through the store's start-event/submit protocol.
type CaseRecord struct {
	ID                    string          `json:"ccdCaseId"`
	State                 State           `json:"state"`
	BenefitCode           string          `json:"benefitCode"`
	IssueCode             string          `json:"issueCode"`
	ProcessingVenue       string          `json:"processingVenue"`
	AdjournmentInProgress bool            `json:"adjournmentInProgress"`
	Listing               ListingFields   `json:"schedulingAndListingFields"`
	Hearings              []HearingRecord `json:"hearings,omitempty"`
}

// LatestHearing returns the most recently appended hearing record, or nil
// when the case holds none.
func (c *CaseRecord) LatestHearing() *HearingRecord {
	if len(c.Hearings) == 0 {
		return nil
	}
	return &c.Hearings[len(c.Hearings)-1]
}

// HearingByID returns the hearing record with the given external identifier,
// or nil when no such record exists.
func (c *CaseRecord) HearingByID(hearingID string) *HearingRecord {
	for i := range c.Hearings {
		if c.Hearings[i].HearingID == hearingID {
			return &c.Hearings[i]
		}
	}
	return nil
}

// ActiveHearing returns the single non-terminal hearing record, or nil when
// every record has been cancelled or superseded.
func (c *CaseRecord) ActiveHearing() *HearingRecord {
	for i := len(c.Hearings) - 1; i >= 0; i-- {
		if c.Hearings[i].IsActive() {
			return &c.Hearings[i]
		}
	}
	return nil
}

// AppendHearing appends a new hearing record built from a scheduling
// response. If a record with the same external identifier already exists, the
// response is merged into it instead, keeping at most one record per hearing.
func (c *CaseRecord) AppendHearing(response hearings.SchedulingResponse) {
	if existing := c.HearingByID(response.HearingID); existing != nil {
		c.applyResponse(existing, response)
		return
	}
	c.Hearings = append(c.Hearings, HearingRecord{
		HearingID: response.HearingID,
		Version:   response.Version,
		Status:    response.Status,
	})
}

// MergeHearingResponse updates the matching hearing record from a scheduling
// response. Responses whose version is not strictly greater than the stored
// version are discarded, keeping version application monotonic under
// duplicated or reordered deliveries. It reports whether the record changed.
func (c *CaseRecord) MergeHearingResponse(response hearings.SchedulingResponse) bool {
	record := c.HearingByID(response.HearingID)
	if record == nil {
		return false
	}
	if response.Version <= record.Version {
		return false
	}
	c.applyResponse(record, response)
	return true
}

func (c *CaseRecord) applyResponse(record *HearingRecord, response hearings.SchedulingResponse) {
	record.Version = response.Version
	if response.Status != "" {
		record.Status = response.Status
	}
}

// MarkHearingCancelled records a cancellation acknowledgement against the
// matching hearing record.
func (c *CaseRecord) MarkHearingCancelled(hearingID string) bool {
	record := c.HearingByID(hearingID)
	if record == nil {
		return false
	}
	record.Status = hearings.StatusCancellationRequested
	return true
}

// Clone returns a deep copy of the case record. Deferred mutations operate on
// clones so that a failed submit never leaves a partially mutated snapshot.
func (c *CaseRecord) Clone() *CaseRecord {
	clone := *c

	if len(c.Hearings) > 0 {
		clone.Hearings = make([]HearingRecord, len(c.Hearings))
		copy(clone.Hearings, c.Hearings)
	}
	clone.Listing.Overrides = cloneOverrides(c.Listing.Overrides)
	clone.Listing.Defaults = cloneOverrides(c.Listing.Defaults)

	return &clone
}

func cloneOverrides(fields *OverrideFields) *OverrideFields {
	if fields == nil {
		return nil
	}
	clone := *fields
	if fields.Duration != nil {
		duration := *fields.Duration
		clone.Duration = &duration
	}
	if fields.AutoList != nil {
		autoList := *fields.AutoList
		clone.AutoList = &autoList
	}
	if fields.HearingWindowStart != nil {
		start := *fields.HearingWindowStart
		clone.HearingWindowStart = &start
	}
	if fields.InterpreterWanted != nil {
		wanted := *fields.InterpreterWanted
		clone.InterpreterWanted = &wanted
	}
	if len(fields.VenueEpimsIDs) > 0 {
		clone.VenueEpimsIDs = make([]string, len(fields.VenueEpimsIDs))
		copy(clone.VenueEpimsIDs, fields.VenueEpimsIDs)
	}
	return &clone
}
