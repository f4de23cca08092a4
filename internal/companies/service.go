// Package companies holds the selectable company registry and the
// new-company onboarding flow.
package companies

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/booksdesk-dev/booksdesk/internal/forms"
	"github.com/booksdesk-dev/booksdesk/internal/model"
)

// Service provides in-memory lookup over the registered companies.
type Service struct {
	companies []model.Company
	byID      map[string]model.Company
	profiles  []model.CompanyProfile
	byFileNum map[string]model.CompanyProfile
}

// NewService creates a Service from a slice of companies.
func NewService(companies []model.Company) *Service {
	byID := make(map[string]model.Company, len(companies))
	for _, c := range companies {
		byID[c.ID] = c
	}
	return &Service{
		companies: companies,
		byID:      byID,
		byFileNum: make(map[string]model.CompanyProfile),
	}
}

// Defaults returns the stock company registry.
func Defaults() []model.Company {
	return []model.Company{
		{ID: "abc_motors", Name: "ABC Motors Ltd"},
		{ID: "black_hp", Name: "Black HP Ltd"},
		{ID: "crystal_it", Name: "Crystal IT Ltd"},
	}
}

// All returns all selectable companies.
func (s *Service) All() []model.Company {
	return s.companies
}

// Get returns a company by id.
func (s *Service) Get(id string) (model.Company, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// Exists reports whether a company id is registered.
func (s *Service) Exists(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// ProfileParams holds the new-company form fields.
type ProfileParams struct {
	FileNumber        string `validate:"required"`
	Name              string `validate:"required"`
	RegisteredAddress string `validate:"required"`
	BRN               string `validate:"required"`
	VATNumber         string
	Telephone         string
	BusinessNature    string `validate:"required"`
	YearEnded         string `validate:"required"`
	MultiCurrency     bool
	Directors         string `validate:"required"`
}

// Register onboards a new company. The company file number becomes the
// selectable company id.
func (s *Service) Register(p ProfileParams) (model.CompanyProfile, error) {
	if err := forms.Check(p); err != nil {
		return model.CompanyProfile{}, err
	}
	if _, exists := s.byFileNum[p.FileNumber]; exists {
		return model.CompanyProfile{}, fmt.Errorf("company file number %s already registered", p.FileNumber)
	}
	if s.Exists(p.FileNumber) {
		return model.CompanyProfile{}, fmt.Errorf("company id %s already registered", p.FileNumber)
	}

	profile := model.CompanyProfile{
		ID:                uuid.NewString(),
		FileNumber:        p.FileNumber,
		Name:              p.Name,
		RegisteredAddress: p.RegisteredAddress,
		BRN:               p.BRN,
		VATNumber:         p.VATNumber,
		Telephone:         p.Telephone,
		BusinessNature:    p.BusinessNature,
		YearEnded:         p.YearEnded,
		MultiCurrency:     p.MultiCurrency,
		Directors:         p.Directors,
	}
	s.profiles = append(s.profiles, profile)
	s.byFileNum[p.FileNumber] = profile

	company := model.Company{ID: p.FileNumber, Name: p.Name}
	s.companies = append(s.companies, company)
	s.byID[company.ID] = company

	return profile, nil
}

// Profiles returns all onboarded company profiles.
func (s *Service) Profiles() []model.CompanyProfile {
	return s.profiles
}

// Profile returns an onboarded profile by file number.
func (s *Service) Profile(fileNumber string) (model.CompanyProfile, bool) {
	p, ok := s.byFileNum[fileNumber]
	return p, ok
}
