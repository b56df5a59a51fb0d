// Package listings provides the HTTP gateway to the external
// hearing-scheduling service.
package listings

import (
	"time"

	"github.com/hmcts/sscs-hearings-go/internal/domain/hearings"
)

// RequestDetails carries request-level metadata on payloads and responses.
type RequestDetails struct {
	VersionNumber int64              `json:"versionNumber,omitempty"`
	Status        hearings.HmcStatus `json:"status,omitempty"`
	RequestedAt   *time.Time         `json:"hearingRequestDateTime,omitempty"`
}

// HearingWindow bounds the dates within which a hearing may be listed.
type HearingWindow struct {
	DateRangeStart string `json:"dateRangeStart,omitempty"`
	DateRangeEnd   string `json:"dateRangeEnd,omitempty"`
}

// HearingLocation identifies one venue a hearing may be listed at.
type HearingLocation struct {
	LocationID   string `json:"locationId"`
	LocationType string `json:"locationType"`
}

// HearingDetails carries the listing requirements of a hearing request.
type HearingDetails struct {
	Duration          int                `json:"duration"`
	AutoListFlag      bool               `json:"autolistFlag"`
	HearingType       string             `json:"hearingType,omitempty"`
	HearingWindow     *HearingWindow     `json:"hearingWindow,omitempty"`
	HearingChannels   []string           `json:"hearingChannels,omitempty"`
	HearingLocations  []HearingLocation  `json:"hearingLocations,omitempty"`
	PanelRequirements *PanelRequirements `json:"panelRequirements,omitempty"`
}

// PanelRequirements describes the panel composition needed for the hearing.
type PanelRequirements struct {
	RoleTypes []string `json:"roleTypes,omitempty"`
}

// CaseDetails identifies the case a hearing request belongs to.
type CaseDetails struct {
	CaseID                     string         `json:"caseRef"`
	CaseCategories             []CaseCategory `json:"caseCategories,omitempty"`
	CaseManagementLocationCode string         `json:"caseManagementLocationCode,omitempty"`
}

// CaseCategory classifies the case for the scheduling service.
type CaseCategory struct {
	CategoryType  string `json:"categoryType"`
	CategoryValue string `json:"categoryValue"`
}

// HearingRequestPayload is the body of a create or update hearing request.
type HearingRequestPayload struct {
	RequestDetails RequestDetails `json:"requestDetails"`
	HearingDetails HearingDetails `json:"hearingDetails"`
	CaseDetails    CaseDetails    `json:"caseDetails"`
}

// CancelRequestPayload is the body of a cancel hearing request. A nil reason
// list is marshalled as an absent field, not an empty array.
type CancelRequestPayload struct {
	CancellationReasonCodes []string `json:"cancellationReasonCodes,omitempty"`
}

// GetResponse is the scheduling service's full view of one hearing request.
type GetResponse struct {
	RequestDetails RequestDetails `json:"requestDetails"`
	HearingDetails HearingDetails `json:"hearingDetails"`
	CaseDetails    CaseDetails    `json:"caseDetails"`
}

// CaseHearing summarises one hearing request when listing by case.
type CaseHearing struct {
	HearingID      string             `json:"hearingID"`
	HmcStatus      hearings.HmcStatus `json:"hmcStatus"`
	RequestVersion int64              `json:"requestVersion"`
	RequestedAt    time.Time          `json:"hearingRequestDateTime"`
}

// CaseHearingsResponse lists the hearing requests known for one case.
type CaseHearingsResponse struct {
	CaseID       string        `json:"caseRef"`
	CaseHearings []CaseHearing `json:"caseHearings"`
}

// FindOutstandingRequest returns the earliest-requested hearing that the
// scheduling service still holds open, or nil when every request is closed.
// A second create request for the case must adopt this hearing instead of
// creating a duplicate.
func (r *CaseHearingsResponse) FindOutstandingRequest() *CaseHearing {
	if r == nil {
		return nil
	}
	var found *CaseHearing
	for i := range r.CaseHearings {
		h := &r.CaseHearings[i]
		if !h.HmcStatus.IsOutstandingRequest() {
			continue
		}
		if found == nil || h.RequestedAt.Before(found.RequestedAt) {
			found = h
		}
	}
	return found
}

type errorResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
