// Package vat holds the VAT code table and rate lookup.
package vat

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/booksdesk-dev/booksdesk/internal/forms"
	"github.com/booksdesk-dev/booksdesk/internal/model"
)

var maxPercentage = decimal.NewFromInt(100)

// Service provides in-memory lookup and CRUD over the VAT code table.
type Service struct {
	codes  []model.VATCode
	byCode map[string]model.VATCode
}

// NewService creates a Service from a slice of VAT codes.
func NewService(codes []model.VATCode) *Service {
	byCode := make(map[string]model.VATCode, len(codes))
	for _, c := range codes {
		byCode[c.Code] = c
	}
	return &Service{codes: codes, byCode: byCode}
}

// Defaults returns the stock VAT code table.
func Defaults() []model.VATCode {
	return []model.VATCode{
		{ID: uuid.NewString(), VATID: "VAT001", Code: "1.1", Name: "Standard VAT", Percentage: decimal.NewFromInt(15), Period: model.ReportMonthly},
		{ID: uuid.NewString(), VATID: "VAT002", Code: "1.4", Name: "Zero Rated VAT", Percentage: decimal.Zero, Period: model.ReportMonthly},
		{ID: uuid.NewString(), VATID: "VAT003", Code: "2.1", Name: "Exempt VAT", Percentage: decimal.Zero, Period: model.ReportQuarterly},
	}
}

// All returns all VAT codes.
func (s *Service) All() []model.VATCode {
	return s.codes
}

// Get returns a VAT code entry by code.
func (s *Service) Get(code string) (model.VATCode, bool) {
	c, ok := s.byCode[code]
	return c, ok
}

// Rate resolves a VAT code to its percentage.
func (s *Service) Rate(code string) (decimal.Decimal, bool) {
	c, ok := s.byCode[code]
	if !ok {
		return decimal.Zero, false
	}
	return c.Percentage, true
}

// Params holds the VAT form fields.
type Params struct {
	VATID      string `validate:"required"`
	Code       string `validate:"required"`
	Name       string `validate:"required"`
	Percentage decimal.Decimal
	Period     model.ReportPeriod `validate:"required,oneof=Monthly Quarterly"`
}

// Create validates and adds a new VAT code. The percentage must lie in
// [0, 100].
func (s *Service) Create(p Params) (model.VATCode, error) {
	if err := forms.Check(p); err != nil {
		return model.VATCode{}, err
	}
	if p.Percentage.IsNegative() || p.Percentage.GreaterThan(maxPercentage) {
		return model.VATCode{}, fmt.Errorf("percentage %s out of range 0-100", p.Percentage)
	}
	if _, exists := s.byCode[p.Code]; exists {
		return model.VATCode{}, fmt.Errorf("VAT code %s already exists", p.Code)
	}

	c := model.VATCode{
		ID:         uuid.NewString(),
		VATID:      p.VATID,
		Code:       p.Code,
		Name:       p.Name,
		Percentage: p.Percentage,
		Period:     p.Period,
	}
	s.codes = append(s.codes, c)
	s.byCode[c.Code] = c
	return c, nil
}

// Delete removes a VAT code.
func (s *Service) Delete(code string) bool {
	if _, ok := s.byCode[code]; !ok {
		return false
	}
	delete(s.byCode, code)
	for i := range s.codes {
		if s.codes[i].Code == code {
			s.codes = append(s.codes[:i], s.codes[i+1:]...)
			break
		}
	}
	return true
}
