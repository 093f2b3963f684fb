package models

import "time"

// TransactionType distinguishes money flowing in from money flowing out.
type TransactionType string

const (
	TxIncome  TransactionType = "INCOME"
	TxExpense TransactionType = "EXPENSE"
)

// ValidTransactionType returns true if t is a valid transaction type.
func ValidTransactionType(t TransactionType) bool {
	return t == TxIncome || t == TxExpense
}

// TransferCategory is the category stamped on both legs of a wallet
// transfer.
const TransferCategory = "Transfer"

// Transaction is one ledger entry. Amount is always denominated in the base
// currency; OriginalAmount/Currency/ExchangeRate are annotations carried
// when the transaction happened in a wallet whose currency differs from the
// base currency. ID and Date are assigned at creation and never change.
type Transaction struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	Amount         float64         `json:"amount"`
	Type           TransactionType `json:"type"`
	Category       string          `json:"category"`
	WalletID       string          `json:"walletId"`
	OriginalAmount *float64        `json:"originalAmount,omitempty"`
	Currency       string          `json:"currency,omitempty"`
	ExchangeRate   *float64        `json:"exchangeRate,omitempty"`
	Remarks        string          `json:"remarks,omitempty"`
}

// WalletAmount returns the amount in the owning wallet's currency:
// OriginalAmount when the annotation is present, the base-currency Amount
// otherwise.
func (t *Transaction) WalletAmount() float64 {
	if t.OriginalAmount != nil {
		return *t.OriginalAmount
	}
	return t.Amount
}

// SignedAmount returns Amount with INCOME positive and EXPENSE negative.
func (t *Transaction) SignedAmount() float64 {
	if t.Type == TxIncome {
		return t.Amount
	}
	return -t.Amount
}

// Categories maps each transaction type to its list of category names.
// Categories are referenced by value, not by id; renames must cascade.
type Categories struct {
	Income  []string `json:"INCOME"`
	Expense []string `json:"EXPENSE"`
}

// For returns the category list for the given transaction type.
func (c *Categories) For(t TransactionType) []string {
	if t == TxIncome {
		return c.Income
	}
	return c.Expense
}

// Contains reports whether name exists for the given transaction type.
func (c *Categories) Contains(t TransactionType, name string) bool {
	for _, n := range c.For(t) {
		if n == name {
			return true
		}
	}
	return false
}

// Add appends name to the list for the given type if not already present.
func (c *Categories) Add(t TransactionType, name string) {
	if c.Contains(t, name) {
		return
	}
	if t == TxIncome {
		c.Income = append(c.Income, name)
	} else {
		c.Expense = append(c.Expense, name)
	}
}

// Rename replaces oldName with newName in the list for the given type.
// Returns false if oldName was not found.
func (c *Categories) Rename(t TransactionType, oldName, newName string) bool {
	list := c.For(t)
	for i, n := range list {
		if n == oldName {
			list[i] = newName
			return true
		}
	}
	return false
}

// Remove deletes name from the list for the given type.
func (c *Categories) Remove(t TransactionType, name string) {
	list := c.For(t)
	out := list[:0]
	for _, n := range list {
		if n != name {
			out = append(out, n)
		}
	}
	if t == TxIncome {
		c.Income = out
	} else {
		c.Expense = out
	}
}
