package cases

import "time"

// HearingChannel is the channel through which a party attends a hearing.
type HearingChannel string

const (
	ChannelFaceToFace   HearingChannel = "faceToFace"
	ChannelTelephone    HearingChannel = "telephone"
	ChannelVideo        HearingChannel = "video"
	ChannelPaper        HearingChannel = "paper"
	ChannelNotAttending HearingChannel = "notAttending"
)

// OverrideFields carries listing values that take precedence over the values
// derived from the appeal itself. The same shape is used for the
// default-listing-values snapshot stamped by the create mutators.
type OverrideFields struct {
	Duration           *int           `json:"duration,omitempty"`
	AutoList           *bool          `json:"autoList,omitempty"`
	HearingWindowStart *time.Time     `json:"hearingWindowStart,omitempty"`
	AppellantChannel   HearingChannel `json:"appellantHearingChannel,omitempty"`
	InterpreterWanted  *bool          `json:"interpreterWanted,omitempty"`
	VenueEpimsIDs      []string       `json:"hearingVenueEpimsIds,omitempty"`
}

// ListingFields groups the scheduling and listing state held on a case.
type ListingFields struct {
	Overrides *OverrideFields `json:"overrideFields,omitempty"`
	Defaults  *OverrideFields `json:"defaultListingValues,omitempty"`
}

// EffectiveDuration returns the override duration if set, falling back to the
// default-listing-values snapshot. The boolean reports whether any duration
// is present.
func (l ListingFields) EffectiveDuration() (int, bool) {
	if l.Overrides != nil && l.Overrides.Duration != nil {
		return *l.Overrides.Duration, true
	}
	if l.Defaults != nil && l.Defaults.Duration != nil {
		return *l.Defaults.Duration, true
	}
	return 0, false
}
