package refdata

// ReferenceData bundles the lookup services needed when building hearing
// payloads. It is threaded explicitly through the orchestrator's
// constructor rather than held as ambient state.
type ReferenceData struct {
	SessionCategories *SessionCategoryService
	Durations         *DurationService
	Venues            *VenueService
}

// NewReferenceData creates a reference-data bundle seeded with the standard
// tables.
func NewReferenceData() *ReferenceData {
	return &ReferenceData{
		SessionCategories: NewSessionCategoryService(),
		Durations:         NewDurationService(),
		Venues:            NewVenueService(),
	}
}
