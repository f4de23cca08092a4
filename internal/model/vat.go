package model

import "github.com/shopspring/decimal"

// ReportPeriod is how often a VAT code is reported.
type ReportPeriod string

const (
	ReportMonthly   ReportPeriod = "Monthly"
	ReportQuarterly ReportPeriod = "Quarterly"
)

// VATCode maps a tax code to its percentage rate.
type VATCode struct {
	ID         string
	VATID      string // primary key
	Code       string // e.g. "1.1", "1.4"
	Name       string
	Percentage decimal.Decimal
	Period     ReportPeriod
}
