package cases

import (
	"time"

	"github.com/hmcts/sscs-hearings-go/internal/domain/hearings"
)

// HearingRecord is the persisted representation, inside a case record, of one
// hearing instance known to the scheduling service. Records are never
// deleted, only superseded.
type HearingRecord struct {
	HearingID    string             `json:"hearingId"`
	Version      int64              `json:"versionNumber"`
	Status       hearings.HmcStatus `json:"status,omitempty"`
	VenueEpimsID string             `json:"venueEpimsId,omitempty"`
	Start        time.Time          `json:"start,omitempty"`
	End          time.Time          `json:"end,omitempty"`
}

// IsActive returns true while the record refers to a hearing the scheduling
// service has not yet cancelled or closed out.
func (h HearingRecord) IsActive() bool {
	return !h.Status.IsTerminal()
}
