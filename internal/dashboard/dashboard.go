// Package dashboard derives the summary figures shown on the shell's
// dashboard panel.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/booksdesk-dev/booksdesk/internal/document"
)

// Stats summarizes the current books.
type Stats struct {
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	Profit        decimal.Decimal
	VATDue        decimal.Decimal
}

// Compute derives Stats from the invoice and credit-note totals and
// the outstanding supplier balances. Credit notes reduce revenue and
// the VAT due.
func Compute(invoices, creditNotes document.Totals, supplierBalances []decimal.Decimal) Stats {
	expenses := decimal.Zero
	for _, b := range supplierBalances {
		expenses = expenses.Add(b)
	}

	revenue := invoices.Exclusive.Sub(creditNotes.Exclusive)
	return Stats{
		TotalRevenue:  revenue,
		TotalExpenses: expenses,
		Profit:        revenue.Sub(expenses),
		VATDue:        invoices.VAT.Sub(creditNotes.VAT),
	}
}
