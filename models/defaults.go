package models

import "sort"

// DefaultCurrencies is the currency list seeded into a fresh document.
var DefaultCurrencies = []string{"USD", "EUR", "JPY", "GBP", "AUD", "CAD", "CHF", "CNY", "INR", "AED"}

// Category names used by side-effect transactions.
const (
	LoanCategory       = "Loan"
	InvestmentCategory = "Investment"
)

// DefaultIncomeCategories seeds the INCOME category list.
var DefaultIncomeCategories = []string{
	"Salary", "Freelance", "Investment", "Gift", LoanCategory, "Other",
}

// DefaultExpenseCategories seeds the EXPENSE category list.
var DefaultExpenseCategories = []string{
	"Food & Drink",
	"Shopping",
	"Housing",
	"Transportation",
	"Bills & Utilities",
	"Entertainment",
	"Health & Wellness",
	"Travel",
	"Education",
	"Family & Friends",
	"Subscriptions",
	TransferCategory,
	"Check Payment",
	InvestmentCategory,
	"Debt",
	"Other",
}

// NewDocument builds the initial document for a first-time user. The chosen
// base currency is appended to the known list (sorted) when it isn't one of
// the defaults.
func NewDocument(baseCurrency string) *AppData {
	currencies := append([]string(nil), DefaultCurrencies...)
	found := false
	for _, c := range currencies {
		if c == baseCurrency {
			found = true
			break
		}
	}
	if !found {
		currencies = append(currencies, baseCurrency)
		sort.Strings(currencies)
	}

	return &AppData{
		Version:    CurrentVersion,
		Settings:   Settings{BaseCurrency: baseCurrency},
		Currencies: currencies,
		Categories: Categories{
			Income:  append([]string(nil), DefaultIncomeCategories...),
			Expense: append([]string(nil), DefaultExpenseCategories...),
		},
		Wallets:       []Wallet{},
		Transactions:  []Transaction{},
		Debts:         []Debt{},
		Subscriptions: []Subscription{},
		Assets:        []Asset{},
		FixedDeposits: []FixedDeposit{},
		Checks:        []Check{},
		Budgets:       []Budget{},
		Goals:         []Goal{},
	}
}
