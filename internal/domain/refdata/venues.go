package refdata

import "fmt"

// VenueService resolves processing venue names to scheduling-service venue
// identifiers (epims IDs).
type VenueService struct {
	venues map[string]string
}

// NewVenueService creates a venue service seeded with the standard venue
// directory.
func NewVenueService() *VenueService {
	return &VenueService{venues: defaultVenues}
}

// EpimsID resolves a processing venue name to its epims identifier. Failure
// to resolve is a fatal input error carrying the venue name.
func (s *VenueService) EpimsID(venue string) (string, error) {
	id, ok := s.venues[venue]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrVenueNotFound, venue)
	}
	return id, nil
}

var defaultVenues = map[string]string{
	"Processing Venue":   "219164",
	"Birmingham":         "231596",
	"Cardiff":            "366796",
	"Leeds":              "455368",
	"Liverpool":          "196538",
	"Manchester":         "512401",
	"Newcastle":          "366552",
	"Glasgow":            "366559",
	"Sutton":             "37792",
	"Taylor House":       "765324",
}
