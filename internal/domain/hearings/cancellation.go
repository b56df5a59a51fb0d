package hearings

import "fmt"

// CancellationReason is a reason code transmitted with a hearing cancellation.
type CancellationReason string

const (
	ReasonWithdrawn           CancellationReason = "withdrawn"
	ReasonStruckOut           CancellationReason = "struckOut"
	ReasonPartyUnableToAttend CancellationReason = "partyUnableToAttend"
	ReasonExclusion           CancellationReason = "exclusion"
	ReasonIncompleteTribunal  CancellationReason = "incompleteTribunal"
	ReasonListedInError       CancellationReason = "listedInError"
	ReasonOther               CancellationReason = "other"
	ReasonPartyDidNotAttend   CancellationReason = "partyDidNotAttend"
	ReasonFeeNotPaid          CancellationReason = "feeNotPaid"
	ReasonSettled             CancellationReason = "settled"
	ReasonJudicialDirection   CancellationReason = "judicialDirection"
)

// hmcReferences maps each reason to the scheduling service's reference code.
var hmcReferences = map[CancellationReason]string{
	ReasonWithdrawn:           "withdraw",
	ReasonStruckOut:           "struckout",
	ReasonPartyUnableToAttend: "unable",
	ReasonExclusion:           "exclusion",
	ReasonIncompleteTribunal:  "incompl",
	ReasonListedInError:       "listerr",
	ReasonOther:               "other",
	ReasonPartyDidNotAttend:   "notattended",
	ReasonFeeNotPaid:          "fee",
	ReasonSettled:             "settled",
	ReasonJudicialDirection:   "judgereq",
}

// HmcReference returns the scheduling service's reference code for the reason.
func (r CancellationReason) HmcReference() (string, error) {
	ref, ok := hmcReferences[r]
	if !ok {
		return "", fmt.Errorf("unknown cancellation reason: %q", string(r))
	}
	return ref, nil
}

// ReasonCodes converts a reason list into scheduling-service reference codes.
// A nil or empty input returns nil, never an empty slice: absent reasons are
// transmitted as no reason codes at all.
func ReasonCodes(reasons []CancellationReason) ([]string, error) {
	if len(reasons) == 0 {
		return nil, nil
	}
	codes := make([]string, 0, len(reasons))
	for _, r := range reasons {
		ref, err := r.HmcReference()
		if err != nil {
			return nil, err
		}
		codes = append(codes, ref)
	}
	return codes, nil
}
