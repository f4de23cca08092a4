// Package document keeps invoice and credit-note line items consistent:
// each line's VAT and total follow its exclusive amount and selected
// VAT code, and aggregate totals are derived across all lines.
package document

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/booksdesk-dev/booksdesk/internal/customers"
	"github.com/booksdesk-dev/booksdesk/internal/model"
)

var oneHundred = decimal.NewFromInt(100)

// RateLookup resolves a VAT code to its percentage.
type RateLookup interface {
	Rate(code string) (decimal.Decimal, bool)
}

// CustomerLookup resolves a customer code to its display fields.
type CustomerLookup interface {
	Option(code string) (customers.Option, bool)
}

// ApplyVATCode sets the line's VAT code. VAT and total are recomputed
// only when the exclusive amount is positive and the code resolves; a
// zero or negative exclusive amount leaves the previously computed
// amounts in place.
func ApplyVATCode(line model.LineItem, code string, rates RateLookup) model.LineItem {
	line.VATCode = code
	if pct, ok := rates.Rate(code); ok && line.Exclusive.IsPositive() {
		line.VAT = line.Exclusive.Mul(pct).Div(oneHundred)
		line.Total = line.Exclusive.Add(line.VAT)
	}
	return line
}

// ApplyExclusive sets the line's exclusive amount. With a resolvable
// VAT code set, VAT and total are recomputed; with no VAT code
// selected, VAT is zeroed and the total equals the exclusive amount.
func ApplyExclusive(line model.LineItem, amount decimal.Decimal, rates RateLookup) model.LineItem {
	line.Exclusive = amount
	if line.VATCode != "" {
		if pct, ok := rates.Rate(line.VATCode); ok {
			line.VAT = amount.Mul(pct).Div(oneHundred)
			line.Total = amount.Add(line.VAT)
		}
	} else {
		line.VAT = decimal.Zero
		line.Total = amount
	}
	return line
}

// ApplyCustomer copies the customer's display fields onto the line
// when the code resolves, and clears the reference and all derived
// fields when it does not (including an empty selection).
func ApplyCustomer(line model.LineItem, code string, directory CustomerLookup) model.LineItem {
	opt, ok := directory.Option(code)
	if !ok {
		line.CustomerCode = ""
		line.CustomerName = ""
		line.VATNo = ""
		line.AccountCode = ""
		return line
	}
	line.CustomerCode = opt.Code
	line.CustomerName = opt.Name
	line.VATNo = opt.VATNo
	line.AccountCode = opt.AccountCode
	return line
}

// Totals aggregates the amount columns of a set of lines.
type Totals struct {
	Exclusive decimal.Decimal
	VAT       decimal.Decimal
	Total     decimal.Decimal
}

// Aggregate sums each amount column. An empty slice yields zero
// totals.
func Aggregate(lines []model.LineItem) Totals {
	t := Totals{Exclusive: decimal.Zero, VAT: decimal.Zero, Total: decimal.Zero}
	for _, l := range lines {
		t.Exclusive = t.Exclusive.Add(l.Exclusive)
		t.VAT = t.VAT.Add(l.VAT)
		t.Total = t.Total.Add(l.Total)
	}
	return t
}

// Field enumerates the directly editable line columns. Amounts, the
// VAT code and the customer reference have dedicated Apply functions.
type Field int

const (
	FieldDate Field = iota
	FieldDescription
)

const dateLayout = "2006-01-02"

// UpdateField applies a free-text edit to one of the editable columns.
func UpdateField(line model.LineItem, field Field, value string) (model.LineItem, error) {
	switch field {
	case FieldDate:
		d, err := time.Parse(dateLayout, value)
		if err != nil {
			return line, fmt.Errorf("parsing date %q: %w", value, err)
		}
		line.Date = d
	case FieldDescription:
		line.Description = value
	default:
		return line, fmt.Errorf("unknown line field %d", field)
	}
	return line, nil
}
