package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "Asset"
	AccountTypeLiability AccountType = "Liability"
	AccountTypeEquity    AccountType = "Equity"
	AccountTypeRevenue   AccountType = "Revenue"
	AccountTypeExpense   AccountType = "Expense"
)

// GroupType refines an account type for reporting.
type GroupType string

const (
	GroupCurrentAsset        GroupType = "Current Asset"
	GroupNonCurrentAsset     GroupType = "Non-Current Asset"
	GroupCurrentLiability    GroupType = "Current Liability"
	GroupNonCurrentLiability GroupType = "Non-Current Liability"
	GroupEquity              GroupType = "Equity"
	GroupOperatingRevenue    GroupType = "Operating Revenue"
	GroupNonOperatingRevenue GroupType = "Non-Operating Revenue"
	GroupOperatingExpense    GroupType = "Operating Expense"
	GroupNonOperatingExpense GroupType = "Non-Operating Expense"
)

// LedgerAccount represents a row in the chart of accounts.
type LedgerAccount struct {
	Code  string // primary key, e.g. "1100"
	Name  string
	Type  AccountType
	Group GroupType
}
