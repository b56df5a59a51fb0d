package hearings

// HmcStatus represents the status of a hearing request as reported by the
// hearing-scheduling service.
type HmcStatus string

const (
	StatusHearingRequested      HmcStatus = "HEARING_REQUESTED"
	StatusAwaitingListing       HmcStatus = "AWAITING_LISTING"
	StatusUpdateRequested       HmcStatus = "UPDATE_REQUESTED"
	StatusUpdateSubmitted       HmcStatus = "UPDATE_SUBMITTED"
	StatusListed                HmcStatus = "LISTED"
	StatusAwaitingActuals       HmcStatus = "AWAITING_ACTUALS"
	StatusCompleted             HmcStatus = "COMPLETED"
	StatusCancellationRequested HmcStatus = "CANCELLATION_REQUESTED"
	StatusCancellationSubmitted HmcStatus = "CANCELLATION_SUBMITTED"
	StatusCancelled             HmcStatus = "CANCELLED"
	StatusAdjourned             HmcStatus = "ADJOURNED"
	StatusException             HmcStatus = "EXCEPTION"
)

// IsOutstandingRequest returns true while the scheduling service still holds
// an open request for the hearing, meaning a new create request for the same
// case would duplicate it.
func (s HmcStatus) IsOutstandingRequest() bool {
	switch s {
	case StatusHearingRequested, StatusAwaitingListing, StatusUpdateRequested, StatusUpdateSubmitted:
		return true
	default:
		return false
	}
}

// IsTerminal returns true once the scheduling service will make no further
// changes to the hearing.
func (s HmcStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusAdjourned:
		return true
	default:
		return false
	}
}
