// Package suppliers holds the supplier registry.
package suppliers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/booksdesk-dev/booksdesk/internal/forms"
	"github.com/booksdesk-dev/booksdesk/internal/model"
)

// Service provides in-memory lookup and CRUD over the supplier
// registry.
type Service struct {
	suppliers []model.Supplier
	byCode    map[string]model.Supplier
}

// NewService creates a Service from a slice of suppliers.
func NewService(suppliers []model.Supplier) *Service {
	byCode := make(map[string]model.Supplier, len(suppliers))
	for _, s := range suppliers {
		byCode[s.Code] = s
	}
	return &Service{suppliers: suppliers, byCode: byCode}
}

// Defaults returns the seeded supplier registry.
func Defaults() []model.Supplier {
	return []model.Supplier{
		{
			ID:          uuid.NewString(),
			Code:        "SUPP001",
			Name:        "Indian Ocean Paper Mills",
			Category:    "Stationery",
			BRN:         "C05221901",
			VATNo:       "V33220011",
			Address:     "Plaine Lauzun Industrial Estate",
			Contact:     "230 208 6611",
			Currency:    "MUR",
			Balance:     decimal.NewFromInt(7800),
			AccountCode: "2100",
		},
		{
			ID:          uuid.NewString(),
			Code:        "SUPP002",
			Name:        "Coastal Logistics Ltd",
			Category:    "Freight",
			BRN:         "C11140702",
			VATNo:       "V55110099",
			Address:     "Mer Rouge, Port Louis",
			Contact:     "230 217 3030",
			Currency:    "MUR",
			Balance:     decimal.NewFromInt(15200),
			AccountCode: "2110",
		},
	}
}

// All returns all suppliers.
func (s *Service) All() []model.Supplier {
	return s.suppliers
}

// Get returns a supplier by code.
func (s *Service) Get(code string) (model.Supplier, bool) {
	sup, ok := s.byCode[code]
	return sup, ok
}

// Balances returns every supplier's outstanding balance.
func (s *Service) Balances() []decimal.Decimal {
	out := make([]decimal.Decimal, len(s.suppliers))
	for i, sup := range s.suppliers {
		out[i] = sup.Balance
	}
	return out
}

// Params holds the supplier form fields.
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

// Create validates and adds a new supplier.
func (s *Service) Create(p Params) (model.Supplier, error) {
	if err := forms.Check(p); err != nil {
		return model.Supplier{}, err
	}
	if _, exists := s.byCode[p.Code]; exists {
		return model.Supplier{}, fmt.Errorf("supplier %s already exists", p.Code)
	}

	sup := fromParams(uuid.NewString(), p)
	s.suppliers = append(s.suppliers, sup)
	s.byCode[sup.Code] = sup
	return sup, nil
}

// Update validates and replaces an existing supplier's fields.
func (s *Service) Update(code string, p Params) (model.Supplier, error) {
	existing, ok := s.byCode[code]
	if !ok {
		return model.Supplier{}, fmt.Errorf("supplier %s not found", code)
	}
	if err := forms.Check(p); err != nil {
		return model.Supplier{}, err
	}
	if p.Code != code {
		return model.Supplier{}, fmt.Errorf("supplier code is immutable")
	}

	sup := fromParams(existing.ID, p)
	for i := range s.suppliers {
		if s.suppliers[i].Code == code {
			s.suppliers[i] = sup
			break
		}
	}
	s.byCode[code] = sup
	return sup, nil
}

// Delete removes a supplier by code.
func (s *Service) Delete(code string) bool {
	if _, ok := s.byCode[code]; !ok {
		return false
	}
	delete(s.byCode, code)
	for i := range s.suppliers {
		if s.suppliers[i].Code == code {
			s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
			break
		}
	}
	return true
}

func fromParams(id string, p Params) model.Supplier {
	return model.Supplier{
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
