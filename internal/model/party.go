package model

import "github.com/shopspring/decimal"

// Customer represents a row in the customer registry.
type Customer struct {
	ID          string
	Code        string // primary key, e.g. CUST001
	Name        string
	Category    string
	BRN         string
	VATNo       string
	Address     string
	Contact     string
	Currency    string
	Balance     decimal.Decimal
	AccountCode string // links to the general ledger
}

// Supplier represents a row in the supplier registry.
type Supplier struct {
	ID          string
	Code        string // primary key, e.g. SUPP001
	Name        string
	Category    string
	BRN         string
	VATNo       string
	Address     string
	Contact     string
	Currency    string
	Balance     decimal.Decimal
	AccountCode string
}
