package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one currency's rate against the home currency.
type ExchangeRate struct {
	ID         string
	CurrencyID string // primary key
	Code       string // ISO code, e.g. USD
	Date       time.Time
	Name       string
	Symbol     string
	RateToHome decimal.Decimal
	Monthly    bool // monthly average rate rather than a spot rate
}

// DisplayRate renders the rate at the 4-decimal display precision.
func (r ExchangeRate) DisplayRate() string {
	return r.RateToHome.StringFixed(4)
}
