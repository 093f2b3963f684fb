package models

import "time"

// CheckStatus tracks the lifecycle of an issued check. PENDING is the only
// non-terminal state; every transition out of PENDING is one-way.
type CheckStatus string

const (
	CheckPending  CheckStatus = "PENDING"
	CheckCleared  CheckStatus = "CLEARED"
	CheckBounced  CheckStatus = "BOUNCED"
	CheckCanceled CheckStatus = "CANCELED"
)

// ValidCheckStatus returns true if s is a valid check status.
func ValidCheckStatus(s CheckStatus) bool {
	switch s {
	case CheckPending, CheckCleared, CheckBounced, CheckCanceled:
		return true
	default:
		return false
	}
}

// Terminal reports whether s permits no further transitions.
func (s CheckStatus) Terminal() bool {
	return s != CheckPending && ValidCheckStatus(s)
}

// Check is a written check drawn against a wallet. Only clearing produces a
// ledger transaction; bounced and canceled checks end with no money moved.
type Check struct {
	ID             string      `json:"id"`
	Payee          string      `json:"payee"`
	Amount         float64     `json:"amount"`
	WalletID       string      `json:"walletId"`
	Category       string      `json:"category"`
	CheckNumber    string      `json:"checkNumber"`
	IssueDate      time.Time   `json:"issueDate"`
	DueDate        time.Time   `json:"dueDate"`
	Status         CheckStatus `json:"status"`
	Remarks        string      `json:"remarks,omitempty"`
	OriginalAmount *float64    `json:"originalAmount,omitempty"`
	Currency       string      `json:"currency,omitempty"`
	ExchangeRate   *float64    `json:"exchangeRate,omitempty"`
}
