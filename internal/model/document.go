package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind distinguishes invoices from credit notes.
type DocumentKind string

const (
	KindInvoice    DocumentKind = "invoice"
	KindCreditNote DocumentKind = "credit-note"
)

// LineItem is one billable row of an invoice or credit note.
//
// CustomerName, VATNo and AccountCode are derived fields: they mirror
// the customer referenced by CustomerCode and are never edited
// directly. VAT and Total are computed from Exclusive and VATCode.
type LineItem struct {
	ID           string
	Date         time.Time
	Number       string // generated document-line number
	CustomerCode string
	CustomerName string
	VATNo        string
	AccountCode  string
	Description  string
	VATCode      string
	Exclusive    decimal.Decimal
	VAT          decimal.Decimal
	Total        decimal.Decimal
}

// Document is a committed invoice or credit note.
type Document struct {
	ID        string
	Kind      DocumentKind
	Number    string
	Lines     []LineItem
	CreatedAt time.Time
	UpdatedAt time.Time
}
