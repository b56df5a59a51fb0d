package hearings

import (
	"fmt"

	"github.com/hmcts/sscs-hearings-go/internal/domain/cases"
	domain "github.com/hmcts/sscs-hearings-go/internal/domain/hearings"
	"github.com/hmcts/sscs-hearings-go/internal/domain/refdata"
	"github.com/hmcts/sscs-hearings-go/internal/infrastructure/listings"
)

// durationMultiple is the granularity, in minutes, the scheduling service
// accepts for listing durations.
const durationMultiple = 5

// caseCategoryType and caseCategorySubType classify the case for the
// scheduling service.
const (
	caseCategoryType    = "caseType"
	caseCategorySubType = "caseSubType"
)

// PayloadBuilder translates a case record into scheduling-service payloads,
// resolving session category, venue and duration from reference data.
type PayloadBuilder struct {
	ref *refdata.ReferenceData
}

// NewPayloadBuilder creates a payload builder backed by the given reference
// data.
func NewPayloadBuilder(ref *refdata.ReferenceData) *PayloadBuilder {
	return &PayloadBuilder{ref: ref}
}

// BuildHearingPayload builds the create/update request body for a case.
// Reference-data resolution failures and an override duration that is not a
// multiple of five minutes are fatal input errors raised before any
// scheduling call.
func (b *PayloadBuilder) BuildHearingPayload(record *cases.CaseRecord) (listings.HearingRequestPayload, error) {
	category, err := b.ref.SessionCategories.SessionCategory(record.BenefitCode, record.IssueCode)
	if err != nil {
		return listings.HearingRequestPayload{}, fmt.Errorf("%w: %w", domain.ErrListing, err)
	}

	locations, err := b.hearingLocations(record)
	if err != nil {
		return listings.HearingRequestPayload{}, fmt.Errorf("%w: %w", domain.ErrListing, err)
	}

	duration, hasDuration := record.Listing.EffectiveDuration()
	if hasDuration && duration%durationMultiple != 0 {
		return listings.HearingRequestPayload{}, fmt.Errorf(
			"%w: duration %d is not a multiple of %d minutes",
			domain.ErrListing, duration, durationMultiple)
	}

	payload := listings.HearingRequestPayload{
		HearingDetails: listings.HearingDetails{
			Duration:         duration,
			AutoListFlag:     b.autoList(record),
			HearingChannels:  []string{string(b.channel(record))},
			HearingLocations: locations,
		},
		CaseDetails: listings.CaseDetails{
			CaseID: record.ID,
			CaseCategories: []listings.CaseCategory{
				{CategoryType: caseCategoryType, CategoryValue: record.BenefitCode},
				{CategoryType: caseCategorySubType, CategoryValue: string(category.Category)},
			},
		},
	}
	return payload, nil
}

// BuildCancelPayload builds the cancel request body. Absent reasons produce a
// payload with no reason codes field at all, never an empty list.
func (b *PayloadBuilder) BuildCancelPayload(reasons []domain.CancellationReason) (listings.CancelRequestPayload, error) {
	codes, err := domain.ReasonCodes(reasons)
	if err != nil {
		return listings.CancelRequestPayload{}, fmt.Errorf("%w: %w", domain.ErrListing, err)
	}
	return listings.CancelRequestPayload{CancellationReasonCodes: codes}, nil
}

// BuildDefaultListingValues derives the default-listing-values snapshot
// stamped onto a case when a hearing is requested. A benefit/issue pair with
// no duration entry stamps a zero duration; listing then relies on override
// values or manual listing.
func (b *PayloadBuilder) BuildDefaultListingValues(record *cases.CaseRecord) (*cases.OverrideFields, error) {
	epimsID, err := b.ref.Venues.EpimsID(record.ProcessingVenue)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrListing, err)
	}

	channel := b.channel(record)
	interpreter := false
	duration, _ := b.ref.Durations.DefaultDuration(record.BenefitCode, record.IssueCode, string(channel), interpreter)

	autoList := false
	return &cases.OverrideFields{
		Duration:          &duration,
		AutoList:          &autoList,
		AppellantChannel:  channel,
		InterpreterWanted: &interpreter,
		VenueEpimsIDs:     []string{epimsID},
	}, nil
}

func (b *PayloadBuilder) hearingLocations(record *cases.CaseRecord) ([]listings.HearingLocation, error) {
	if over := record.Listing.Overrides; over != nil && len(over.VenueEpimsIDs) > 0 {
		locations := make([]listings.HearingLocation, 0, len(over.VenueEpimsIDs))
		for _, id := range over.VenueEpimsIDs {
			locations = append(locations, listings.HearingLocation{LocationID: id, LocationType: "court"})
		}
		return locations, nil
	}

	epimsID, err := b.ref.Venues.EpimsID(record.ProcessingVenue)
	if err != nil {
		return nil, err
	}
	return []listings.HearingLocation{{LocationID: epimsID, LocationType: "court"}}, nil
}

func (b *PayloadBuilder) channel(record *cases.CaseRecord) cases.HearingChannel {
	if over := record.Listing.Overrides; over != nil && over.AppellantChannel != "" {
		return over.AppellantChannel
	}
	if def := record.Listing.Defaults; def != nil && def.AppellantChannel != "" {
		return def.AppellantChannel
	}
	return cases.ChannelFaceToFace
}

func (b *PayloadBuilder) autoList(record *cases.CaseRecord) bool {
	if over := record.Listing.Overrides; over != nil && over.AutoList != nil {
		return *over.AutoList
	}
	if def := record.Listing.Defaults; def != nil && def.AutoList != nil {
		return *def.AutoList
	}
	return false
}
