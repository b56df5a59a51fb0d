// Package refdata provides reference-data lookups used when building hearing
// requests: session categories, default durations and venue identifiers.
package refdata

import (
	"errors"
	"fmt"
)

// Reference-data resolution errors. Resolution failures are fatal,
// non-retryable input errors.
var (
	// ErrSessionCategoryNotFound indicates the benefit/issue code pair maps
	// to no session category.
	ErrSessionCategoryNotFound = errors.New("session category not found")

	// ErrVenueNotFound indicates the processing venue maps to no
	// scheduling-service venue identifier.
	ErrVenueNotFound = errors.New("venue not found")
)

// SessionCategory classifies a case for listing purposes.
type SessionCategory string

const (
	Category01 SessionCategory = "CATEGORY_01"
	Category02 SessionCategory = "CATEGORY_02"
	Category03 SessionCategory = "CATEGORY_03"
	Category04 SessionCategory = "CATEGORY_04"
	Category05 SessionCategory = "CATEGORY_05"
	Category06 SessionCategory = "CATEGORY_06"
)

// SessionCategoryMap maps a benefit/issue code pair to a session category.
type SessionCategoryMap struct {
	BenefitCode string
	IssueCode   string
	Category    SessionCategory
}

// SessionCategoryService resolves benefit/issue code pairs to session
// categories.
type SessionCategoryService struct {
	categories map[string]SessionCategoryMap
}

// NewSessionCategoryService creates a session category service seeded with
// the standard benefit/issue mappings.
func NewSessionCategoryService() *SessionCategoryService {
	service := &SessionCategoryService{
		categories: make(map[string]SessionCategoryMap),
	}
	for _, m := range defaultSessionCategories {
		service.categories[categoryKey(m.BenefitCode, m.IssueCode)] = m
	}
	return service
}

// SessionCategory resolves the session category for a benefit/issue code
// pair. Failure to resolve is a fatal input error carrying both codes.
func (s *SessionCategoryService) SessionCategory(benefitCode, issueCode string) (SessionCategoryMap, error) {
	m, ok := s.categories[categoryKey(benefitCode, issueCode)]
	if !ok {
		return SessionCategoryMap{}, fmt.Errorf("%w: benefit code %q, issue code %q",
			ErrSessionCategoryNotFound, benefitCode, issueCode)
	}
	return m, nil
}

func categoryKey(benefitCode, issueCode string) string {
	return benefitCode + "/" + issueCode
}

// defaultSessionCategories covers the benefit/issue pairs this service lists.
var defaultSessionCategories = []SessionCategoryMap{
	{BenefitCode: "001", IssueCode: "US", Category: Category01},
	{BenefitCode: "001", IssueCode: "UM", Category: Category01},
	{BenefitCode: "002", IssueCode: "DD", Category: Category03},
	{BenefitCode: "003", IssueCode: "DD", Category: Category03},
	{BenefitCode: "015", IssueCode: "CP", Category: Category02},
	{BenefitCode: "016", IssueCode: "CC", Category: Category02},
	{BenefitCode: "022", IssueCode: "CD", Category: Category04},
	{BenefitCode: "023", IssueCode: "CD", Category: Category04},
	{BenefitCode: "037", IssueCode: "DQ", Category: Category05},
	{BenefitCode: "051", IssueCode: "RA", Category: Category06},
}
