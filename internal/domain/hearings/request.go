package hearings

// HearingRequest describes a desired lifecycle transition for one case's
// hearing. It is immutable once constructed: created by the upstream
// case-event listener and consumed exactly once by the orchestrator.
type HearingRequest struct {
	CaseID             string             `json:"ccdCaseId"`
	HearingState       HearingState       `json:"hearingState"`
	CancellationReason CancellationReason `json:"cancellationReason,omitempty"`
}

// CancellationReasons returns the request's reasons as a list, or nil when no
// reason was supplied.
func (r HearingRequest) CancellationReasons() []CancellationReason {
	if r.CancellationReason == "" {
		return nil
	}
	return []CancellationReason{r.CancellationReason}
}

// SchedulingResponse is the scheduling service's acknowledgement of a create,
// update or cancel request. It is transient: always translated into a hearing
// record mutation, never persisted directly.
type SchedulingResponse struct {
	HearingID string    `json:"hearingRequestId"`
	Version   int64     `json:"versionNumber"`
	Status    HmcStatus `json:"status"`
}
