// Package cases provides domain types for the appeal case record.
package cases

// State represents the lifecycle state of an appeal case.
type State string

const (
	StateAppealCreated    State = "appealCreated"
	StateValidAppeal      State = "validAppeal"
	StateWithFirstTier    State = "withDwp"
	StateResponseReceived State = "responseReceived"
	StateReadyToList      State = "readyToList"
	StateHearing          State = "hearing"
	StateDormant          State = "dormantAppealState"
	StateWithdrawn        State = "withdrawnState"
	StateStruckOut        State = "strikeOutState"
	StateVoid             State = "voidState"
	StateUnknown          State = "unknown"
)

// DefaultInvalidListingStates is the default set of case states in which no
// hearing may be requested. A create request for a case in one of these
// states is acknowledged without contacting the scheduling service.
func DefaultInvalidListingStates() []State {
	return []State{StateDormant, StateWithdrawn, StateStruckOut, StateVoid}
}

// In returns true if the state is contained in the given set.
func (s State) In(states []State) bool {
	for _, candidate := range states {
		if s == candidate {
			return true
		}
	}
	return false
}
