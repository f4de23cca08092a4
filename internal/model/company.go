package model

// Company is a selectable tenant context.
type Company struct {
	ID   string
	Name string
}

// CompanyProfile is the full onboarding record captured when a new
// company is registered.
type CompanyProfile struct {
	ID                string
	FileNumber        string // primary key
	Name              string
	RegisteredAddress string
	BRN               string
	VATNumber         string
	Telephone         string
	BusinessNature    string
	YearEnded         string
	MultiCurrency     bool
	Directors         string
}
