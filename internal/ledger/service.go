// Package ledger holds the general ledger chart of accounts.
package ledger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/booksdesk-dev/booksdesk/internal/forms"
	"github.com/booksdesk-dev/booksdesk/internal/model"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.LedgerAccount
	byCode   map[string]model.LedgerAccount
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.LedgerAccount) *Service {
	byCode := make(map[string]model.LedgerAccount, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}
	return &Service{accounts: accounts, byCode: byCode}
}

// Load reads chart-of-accounts.csv from a data root and returns a
// Service.
func Load(dataRoot string) (*Service, error) {
	path := filepath.Join(dataRoot, "accounts", "chart-of-accounts.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts.
func (s *Service) All() []model.LedgerAccount {
	return s.accounts
}

// Get returns an account by code.
func (s *Service) Get(code string) (model.LedgerAccount, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// Exists reports whether an account code exists.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType model.AccountType) []model.LedgerAccount {
	var result []model.LedgerAccount
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Params holds the general-ledger form fields.
type Params struct {
	Code  string            `validate:"required"`
	Name  string            `validate:"required"`
	Type  model.AccountType `validate:"required,oneof=Asset Liability Equity Revenue Expense"`
	Group model.GroupType   `validate:"required"`
}

// Create validates and adds a new ledger account.
func (s *Service) Create(p Params) (model.LedgerAccount, error) {
	if err := forms.Check(p); err != nil {
		return model.LedgerAccount{}, err
	}
	if _, exists := s.byCode[p.Code]; exists {
		return model.LedgerAccount{}, fmt.Errorf("account %s already exists", p.Code)
	}

	a := model.LedgerAccount{Code: p.Code, Name: p.Name, Type: p.Type, Group: p.Group}
	s.accounts = append(s.accounts, a)
	s.byCode[a.Code] = a
	return a, nil
}

// Delete removes an account by code.
func (s *Service) Delete(code string) bool {
	if _, ok := s.byCode[code]; !ok {
		return false
	}
	delete(s.byCode, code)
	for i := range s.accounts {
		if s.accounts[i].Code == code {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			break
		}
	}
	return true
}

// Save writes the chart of accounts to
// <dataRoot>/accounts/chart-of-accounts.csv.
func (s *Service) Save(dataRoot string) error {
	dir := filepath.Join(dataRoot, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, "chart-of-accounts.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
