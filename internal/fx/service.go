// Package fx holds the exchange-rate registry.
package fx

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/booksdesk-dev/booksdesk/internal/forms"
	"github.com/booksdesk-dev/booksdesk/internal/model"
)

// Service provides in-memory lookup and CRUD over exchange rates.
type Service struct {
	rates  []model.ExchangeRate
	byCode map[string]model.ExchangeRate
}

// NewService creates a Service from a slice of exchange rates.
func NewService(rates []model.ExchangeRate) *Service {
	byCode := make(map[string]model.ExchangeRate, len(rates))
	for _, r := range rates {
		byCode[r.Code] = r
	}
	return &Service{rates: rates, byCode: byCode}
}

// Defaults returns the seeded exchange-rate table against the home
// currency.
func Defaults() []model.ExchangeRate {
	asOf := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	return []model.ExchangeRate{
		{ID: uuid.NewString(), CurrencyID: "CUR001", Code: "USD", Date: asOf, Name: "United States Dollar", Symbol: "$", RateToHome: decimal.RequireFromString("46.2500"), Monthly: true},
		{ID: uuid.NewString(), CurrencyID: "CUR002", Code: "EUR", Date: asOf, Name: "Euro", Symbol: "€", RateToHome: decimal.RequireFromString("48.1075"), Monthly: true},
		{ID: uuid.NewString(), CurrencyID: "CUR003", Code: "GBP", Date: asOf, Name: "Pound Sterling", Symbol: "£", RateToHome: decimal.RequireFromString("57.4900"), Monthly: false},
	}
}

// All returns all exchange rates.
func (s *Service) All() []model.ExchangeRate {
	return s.rates
}

// Get returns an exchange rate by currency code.
func (s *Service) Get(code string) (model.ExchangeRate, bool) {
	r, ok := s.byCode[code]
	return r, ok
}

// Params holds the exchange-rate form fields.
type Params struct {
	CurrencyID string `validate:"required"`
	Code       string `validate:"required,len=3"`
	Date       time.Time
	Name       string `validate:"required"`
	Symbol     string `validate:"required"`
	RateToHome decimal.Decimal
	Monthly    bool
}

// Upsert validates and inserts or replaces the rate for a currency
// code. The rate must be positive.
func (s *Service) Upsert(p Params) (model.ExchangeRate, error) {
	if err := forms.Check(p); err != nil {
		return model.ExchangeRate{}, err
	}
	if !p.RateToHome.IsPositive() {
		return model.ExchangeRate{}, fmt.Errorf("rate %s must be positive", p.RateToHome)
	}

	r := model.ExchangeRate{
		ID:         uuid.NewString(),
		CurrencyID: p.CurrencyID,
		Code:       p.Code,
		Date:       p.Date,
		Name:       p.Name,
		Symbol:     p.Symbol,
		RateToHome: p.RateToHome,
		Monthly:    p.Monthly,
	}

	if existing, ok := s.byCode[p.Code]; ok {
		r.ID = existing.ID
		for i := range s.rates {
			if s.rates[i].Code == p.Code {
				s.rates[i] = r
				break
			}
		}
	} else {
		s.rates = append(s.rates, r)
	}
	s.byCode[p.Code] = r
	return r, nil
}

// Delete removes a currency's rate.
func (s *Service) Delete(code string) bool {
	if _, ok := s.byCode[code]; !ok {
		return false
	}
	delete(s.byCode, code)
	for i := range s.rates {
		if s.rates[i].Code == code {
			s.rates = append(s.rates[:i], s.rates[i+1:]...)
			break
		}
	}
	return true
}
