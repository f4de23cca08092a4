// Package customers holds the customer registry.
package customers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/booksdesk-dev/booksdesk/internal/forms"
	"github.com/booksdesk-dev/booksdesk/internal/model"
)

// Option is the subset of customer fields copied onto document lines.
type Option struct {
	Code        string
	Name        string
	VATNo       string
	AccountCode string
}

// Service provides in-memory lookup and CRUD over the customer
// registry.
type Service struct {
	customers []model.Customer
	byCode    map[string]model.Customer
}

// NewService creates a Service from a slice of customers.
func NewService(customers []model.Customer) *Service {
	byCode := make(map[string]model.Customer, len(customers))
	for _, c := range customers {
		byCode[c.Code] = c
	}
	return &Service{customers: customers, byCode: byCode}
}

// Defaults returns the seeded customer registry.
func Defaults() []model.Customer {
	return []model.Customer{
		{
			ID:          uuid.NewString(),
			Code:        "CUST001",
			Name:        "ABC Company Ltd",
			Category:    "Trade",
			BRN:         "C06011223",
			VATNo:       "V12345678",
			Address:     "4 Royal Street, Port Louis",
			Contact:     "230 210 4455",
			Currency:    "MUR",
			Balance:     decimal.NewFromInt(12500),
			AccountCode: "1100",
		},
		{
			ID:          uuid.NewString(),
			Code:        "CUST002",
			Name:        "XYZ Trading",
			Category:    "Trade",
			BRN:         "C09031180",
			VATNo:       "V87654321",
			Address:     "18 Sir William Newton St",
			Contact:     "230 212 7788",
			Currency:    "MUR",
			Balance:     decimal.NewFromInt(4300),
			AccountCode: "1110",
		},
	}
}

// All returns all customers.
func (s *Service) All() []model.Customer {
	return s.customers
}

// Get returns a customer by code.
func (s *Service) Get(code string) (model.Customer, bool) {
	c, ok := s.byCode[code]
	return c, ok
}

// Option returns the display fields for a customer code. Unknown codes
// report false; there is no partial matching.
func (s *Service) Option(code string) (Option, bool) {
	c, ok := s.byCode[code]
	if !ok {
		return Option{}, false
	}
	return Option{Code: c.Code, Name: c.Name, VATNo: c.VATNo, AccountCode: c.AccountCode}, true
}

// Params holds the customer form fields.
type Params struct {
	Code        string `validate:"required"`
	Name        string `validate:"required"`
	Category    string
	BRN         string
	VATNo       string
	Address     string
	Contact     string
	Currency    string `validate:"required,len=3"`
	Balance     decimal.Decimal
	AccountCode string `validate:"required"`
}

// Create validates and adds a new customer.
func (s *Service) Create(p Params) (model.Customer, error) {
	if err := forms.Check(p); err != nil {
		return model.Customer{}, err
	}
	if _, exists := s.byCode[p.Code]; exists {
		return model.Customer{}, fmt.Errorf("customer %s already exists", p.Code)
	}

	c := fromParams(uuid.NewString(), p)
	s.customers = append(s.customers, c)
	s.byCode[c.Code] = c
	return c, nil
}

// Update validates and replaces an existing customer's fields.
func (s *Service) Update(code string, p Params) (model.Customer, error) {
	existing, ok := s.byCode[code]
	if !ok {
		return model.Customer{}, fmt.Errorf("customer %s not found", code)
	}
	if err := forms.Check(p); err != nil {
		return model.Customer{}, err
	}
	if p.Code != code {
		return model.Customer{}, fmt.Errorf("customer code is immutable")
	}

	c := fromParams(existing.ID, p)
	for i := range s.customers {
		if s.customers[i].Code == code {
			s.customers[i] = c
			break
		}
	}
	s.byCode[code] = c
	return c, nil
}

// Delete removes a customer by code.
func (s *Service) Delete(code string) bool {
	if _, ok := s.byCode[code]; !ok {
		return false
	}
	delete(s.byCode, code)
	for i := range s.customers {
		if s.customers[i].Code == code {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			break
		}
	}
	return true
}

func fromParams(id string, p Params) model.Customer {
	return model.Customer{
		ID:          id,
		Code:        p.Code,
		Name:        p.Name,
		Category:    p.Category,
		BRN:         p.BRN,
		VATNo:       p.VATNo,
		Address:     p.Address,
		Contact:     p.Contact,
		Currency:    p.Currency,
		Balance:     p.Balance,
		AccountCode: p.AccountCode,
	}
}
