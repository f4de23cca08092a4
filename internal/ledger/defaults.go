package ledger

import "github.com/booksdesk-dev/booksdesk/internal/model"

// DefaultChart returns the stock chart of accounts.
func DefaultChart() []model.LedgerAccount {
	return []model.LedgerAccount{
		{Code: "1100", Name: "Trade Debtors", Type: model.AccountTypeAsset, Group: model.GroupCurrentAsset},
		{Code: "1110", Name: "Trade Debtors - Foreign", Type: model.AccountTypeAsset, Group: model.GroupCurrentAsset},
		{Code: "1120", Name: "Other Receivables", Type: model.AccountTypeAsset, Group: model.GroupCurrentAsset},
		{Code: "1500", Name: "Plant & Equipment", Type: model.AccountTypeAsset, Group: model.GroupNonCurrentAsset},
		{Code: "2100", Name: "Trade Creditors", Type: model.AccountTypeLiability, Group: model.GroupCurrentLiability},
		{Code: "2110", Name: "Trade Creditors - Foreign", Type: model.AccountTypeLiability, Group: model.GroupCurrentLiability},
		{Code: "2120", Name: "Accruals", Type: model.AccountTypeLiability, Group: model.GroupCurrentLiability},
		{Code: "2200", Name: "VAT Payable", Type: model.AccountTypeLiability, Group: model.GroupCurrentLiability},
		{Code: "3000", Name: "Share Capital", Type: model.AccountTypeEquity, Group: model.GroupEquity},
		{Code: "4000", Name: "Sales", Type: model.AccountTypeRevenue, Group: model.GroupOperatingRevenue},
		{Code: "4100", Name: "Interest Received", Type: model.AccountTypeRevenue, Group: model.GroupNonOperatingRevenue},
		{Code: "5000", Name: "Purchases", Type: model.AccountTypeExpense, Group: model.GroupOperatingExpense},
		{Code: "5100", Name: "Bank Charges", Type: model.AccountTypeExpense, Group: model.GroupNonOperatingExpense},
	}
}
