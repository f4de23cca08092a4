package ledger

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/booksdesk-dev/booksdesk/internal/model"
)

const (
	numFields = 4
	colCode   = 0
	colName   = 1
	colType   = 2
	colGroup  = 3
)

// ReadAccounts reads chart-of-accounts.csv.
func ReadAccounts(r io.Reader) ([]model.LedgerAccount, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.LedgerAccount
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes chart-of-accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.LedgerAccount) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account_code", "account_name", "account_type", "group_type"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts a LedgerAccount to a CSV row.
func MarshalAccount(acct model.LedgerAccount) []string {
	row := make([]string, numFields)
	row[colCode] = acct.Code
	row[colName] = acct.Name
	row[colType] = string(acct.Type)
	row[colGroup] = string(acct.Group)
	return row
}

// UnmarshalAccount converts a CSV row to a LedgerAccount.
func UnmarshalAccount(rec []string) (model.LedgerAccount, error) {
	if len(rec) != numFields {
		return model.LedgerAccount{}, fmt.Errorf("expected %d fields, got %d", numFields, len(rec))
	}
	if rec[colCode] == "" {
		return model.LedgerAccount{}, fmt.Errorf("empty account code")
	}
	return model.LedgerAccount{
		Code:  rec[colCode],
		Name:  rec[colName],
		Type:  model.AccountType(rec[colType]),
		Group: model.GroupType(rec[colGroup]),
	}, nil
}
