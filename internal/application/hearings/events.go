package hearings

import (
	"fmt"

	domain "github.com/hmcts/sscs-hearings-go/internal/domain/hearings"
)

// HearingEvent names the case event committed to the case store when a
// hearing transition is reconciled back onto the case record.
type HearingEvent struct {
	Type        string
	Summary     string
	Description string
}

// Case events committed by the orchestrator.
var (
	EventCreateHearing = HearingEvent{
		Type:        "createHearing",
		Summary:     "Hearing requested",
		Description: "A new hearing has been requested with the scheduling service",
	}

	EventUpdateHearing = HearingEvent{
		Type:        "updateHearing",
		Summary:     "Hearing updated",
		Description: "The hearing request has been amended with the scheduling service",
	}

	EventCancelHearing = HearingEvent{
		Type:        "cancelHearing",
		Summary:     "Hearing cancellation requested",
		Description: "Cancellation of the hearing has been requested with the scheduling service",
	}

	EventAdjournCreateHearing = HearingEvent{
		Type:        "adjournCreateHearing",
		Summary:     "Hearing re-requested after adjournment",
		Description: "A replacement hearing has been requested following an adjournment",
	}
)

// EventForState returns the case event committed for a hearing state.
// Acknowledge-only states commit no event.
func EventForState(state domain.HearingState) (HearingEvent, error) {
	switch state {
	case domain.StateCreateHearing:
		return EventCreateHearing, nil
	case domain.StateUpdateHearing:
		return EventUpdateHearing, nil
	case domain.StateCancelHearing:
		return EventCancelHearing, nil
	case domain.StateAdjournCreateHearing:
		return EventAdjournCreateHearing, nil
	default:
		return HearingEvent{}, fmt.Errorf("%w: no case event for state %q",
			domain.ErrUnhandleableState, state)
	}
}
