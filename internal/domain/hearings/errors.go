package hearings

import "errors"

// Domain errors for the hearing lifecycle.
var (
	// ErrUnhandleableState indicates the requested hearing state is missing
	// or not recognised. Raised before any external call.
	ErrUnhandleableState = errors.New("unhandleable hearing state")

	// ErrListing indicates invalid listing input, such as an override
	// duration that is not a multiple of five minutes.
	ErrListing = errors.New("listing error")

	// ErrGetHearing indicates the scheduling service could not return
	// details for an existing hearing request.
	ErrGetHearing = errors.New("failed to get hearing request")

	// ErrUpdateCase indicates the case record could not be updated with a
	// hearing response.
	ErrUpdateCase = errors.New("failed to update case")

	// ErrRetriesExhausted indicates the bounded case-update retry policy was
	// exhausted and the compensating cancellation has been issued.
	ErrRetriesExhausted = errors.New("case update retries exhausted")

	// ErrNoHearing indicates the case holds no hearing record for a
	// transition that requires one.
	ErrNoHearing = errors.New("no hearing found for case")
)
