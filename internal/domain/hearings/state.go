// Package hearings provides domain types for the hearing lifecycle.
package hearings

import "fmt"

// HearingState represents a requested lifecycle transition for a hearing.
type HearingState string

const (
	StateCreateHearing        HearingState = "createHearing"
	StateUpdateHearing        HearingState = "updateHearing"
	StateUpdatedCase          HearingState = "updatedCase"
	StateCancelHearing        HearingState = "cancelHearing"
	StateAdjournCreateHearing HearingState = "adjournCreateHearing"
	StatePartyNotified        HearingState = "partyNotified"
)

// ParseHearingState parses a hearing state from its wire representation.
func ParseHearingState(s string) (HearingState, error) {
	switch HearingState(s) {
	case StateCreateHearing, StateUpdateHearing, StateUpdatedCase,
		StateCancelHearing, StateAdjournCreateHearing, StatePartyNotified:
		return HearingState(s), nil
	case "":
		return "", fmt.Errorf("%w: state is empty", ErrUnhandleableState)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnhandleableState, s)
	}
}

// IsKnown returns true if the state is one of the recognised transitions.
func (s HearingState) IsKnown() bool {
	_, err := ParseHearingState(string(s))
	return err == nil
}

// IsAcknowledgeOnly returns true for states that are acknowledged without
// any scheduling or case-store call.
func (s HearingState) IsAcknowledgeOnly() bool {
	return s == StateUpdatedCase || s == StatePartyNotified
}

// String returns the wire representation of the state.
func (s HearingState) String() string {
	return string(s)
}
