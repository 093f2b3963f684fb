package models

import "time"

// DebtType distinguishes money received now from money received and spent in
// the past. Recording a CURRENT debt also materializes an income transaction
// into the receiving wallet; an OLD debt is tracking-only.
type DebtType string

const (
	DebtCurrent DebtType = "CURRENT"
	DebtOld     DebtType = "OLD"
)

// ValidDebtType returns true if t is a valid debt type.
func ValidDebtType(t DebtType) bool {
	return t == DebtCurrent || t == DebtOld
}

// Debt is a liability owed to a lender. Amount is in the base currency.
type Debt struct {
	ID             string    `json:"id"`
	Type           DebtType  `json:"type"`
	Description    string    `json:"description"`
	Lender         string    `json:"lender"`
	Amount         float64   `json:"amount"`
	DateIncurred   time.Time `json:"dateIncurred"`
	OriginalAmount *float64  `json:"originalAmount,omitempty"`
	Currency       string    `json:"currency,omitempty"`
	ExchangeRate   *float64  `json:"exchangeRate,omitempty"`
	Remarks        string    `json:"remarks,omitempty"`
}
