package document

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/booksdesk-dev/booksdesk/internal/model"
)

const (
	numFields       = 11
	colDate         = 0
	colNumber       = 1
	colCustomerCode = 2
	colCustomerName = 3
	colVATNo        = 4
	colAccountCode  = 5
	colDescription  = 6
	colVATCode      = 7
	colExclusive    = 8
	colVAT          = 9
	colTotal        = 10
)

var header = []string{
	"date", "number", "customer_code", "customer_name", "vat_no",
	"account_code", "description", "vat_code", "exclusive", "vat", "total",
}

// WriteLines writes draft lines as CSV.
func WriteLines(w io.Writer, lines []model.LineItem) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, l := range lines {
		if err := cw.Write(MarshalLine(l)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadLines reads draft lines from CSV. Row ids are regenerated on
// import.
func ReadLines(r io.Reader) ([]model.LineItem, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading lines CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var lines []model.LineItem
	for i, rec := range records[1:] {
		l, err := UnmarshalLine(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// MarshalLine converts a LineItem to a CSV row.
func MarshalLine(l model.LineItem) []string {
	row := make([]string, numFields)
	row[colDate] = l.Date.Format(dateLayout)
	row[colNumber] = l.Number
	row[colCustomerCode] = l.CustomerCode
	row[colCustomerName] = l.CustomerName
	row[colVATNo] = l.VATNo
	row[colAccountCode] = l.AccountCode
	row[colDescription] = l.Description
	row[colVATCode] = l.VATCode
	row[colExclusive] = l.Exclusive.StringFixed(2)
	row[colVAT] = l.VAT.StringFixed(2)
	row[colTotal] = l.Total.StringFixed(2)
	return row
}

// UnmarshalLine converts a CSV row to a LineItem.
func UnmarshalLine(rec []string) (model.LineItem, error) {
	if len(rec) != numFields {
		return model.LineItem{}, fmt.Errorf("expected %d fields, got %d", numFields, len(rec))
	}

	date, err := time.Parse(dateLayout, rec[colDate])
	if err != nil {
		return model.LineItem{}, fmt.Errorf("parsing date %q: %w", rec[colDate], err)
	}
	exclusive, err := decimal.NewFromString(rec[colExclusive])
	if err != nil {
		return model.LineItem{}, fmt.Errorf("parsing exclusive %q: %w", rec[colExclusive], err)
	}
	vat, err := decimal.NewFromString(rec[colVAT])
	if err != nil {
		return model.LineItem{}, fmt.Errorf("parsing vat %q: %w", rec[colVAT], err)
	}
	total, err := decimal.NewFromString(rec[colTotal])
	if err != nil {
		return model.LineItem{}, fmt.Errorf("parsing total %q: %w", rec[colTotal], err)
	}

	return model.LineItem{
		ID:           uuid.NewString(),
		Date:         date,
		Number:       rec[colNumber],
		CustomerCode: rec[colCustomerCode],
		CustomerName: rec[colCustomerName],
		VATNo:        rec[colVATNo],
		AccountCode:  rec[colAccountCode],
		Description:  rec[colDescription],
		VATCode:      rec[colVATCode],
		Exclusive:    exclusive,
		VAT:          vat,
		Total:        total,
	}, nil
}

// Export writes a draft's lines to a CSV file.
func Export(path string, lines []model.LineItem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := WriteLines(f, lines); err != nil {
		return fmt.Errorf("exporting lines: %w", err)
	}
	return nil
}

// Import reads draft lines from a CSV file.
func Import(path string) ([]model.LineItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("importing lines: %w", err)
	}
	return lines, nil
}
