package refdata

// HearingDuration holds the default listing durations, in minutes, for one
// benefit/issue code pair.
type HearingDuration struct {
	BenefitCode         string
	IssueCode           string
	DurationFaceToFace  int
	DurationInterpreter int
	DurationPaper       int
}

// DurationService resolves default hearing durations from reference data.
type DurationService struct {
	durations map[string]HearingDuration
}

// NewDurationService creates a duration service seeded with the standard
// duration table.
func NewDurationService() *DurationService {
	service := &DurationService{
		durations: make(map[string]HearingDuration),
	}
	for _, d := range defaultDurations {
		service.durations[categoryKey(d.BenefitCode, d.IssueCode)] = d
	}
	return service
}

// DefaultDuration returns the default duration for a case heard through the
// given channel. A zero duration with ok=false means reference data holds no
// entry for the pair; listing then proceeds without a pre-set duration.
func (s *DurationService) DefaultDuration(benefitCode, issueCode string, channel string, interpreter bool) (int, bool) {
	d, ok := s.durations[categoryKey(benefitCode, issueCode)]
	if !ok {
		return 0, false
	}
	if channel == "paper" {
		return d.DurationPaper, true
	}
	if interpreter {
		return d.DurationInterpreter, true
	}
	return d.DurationFaceToFace, true
}

// All durations are multiples of five minutes; the payload builder validates
// this again before any scheduling call.
var defaultDurations = []HearingDuration{
	{BenefitCode: "001", IssueCode: "US", DurationFaceToFace: 45, DurationInterpreter: 75, DurationPaper: 30},
	{BenefitCode: "001", IssueCode: "UM", DurationFaceToFace: 45, DurationInterpreter: 75, DurationPaper: 30},
	{BenefitCode: "003", IssueCode: "DD", DurationFaceToFace: 60, DurationInterpreter: 90, DurationPaper: 40},
	{BenefitCode: "015", IssueCode: "CP", DurationFaceToFace: 45, DurationInterpreter: 75, DurationPaper: 30},
	{BenefitCode: "016", IssueCode: "CC", DurationFaceToFace: 45, DurationInterpreter: 75, DurationPaper: 30},
	{BenefitCode: "022", IssueCode: "CD", DurationFaceToFace: 30, DurationInterpreter: 60, DurationPaper: 25},
	{BenefitCode: "037", IssueCode: "DQ", DurationFaceToFace: 60, DurationInterpreter: 90, DurationPaper: 40},
	{BenefitCode: "051", IssueCode: "RA", DurationFaceToFace: 30, DurationInterpreter: 60, DurationPaper: 25},
}
