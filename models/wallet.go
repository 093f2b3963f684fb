package models

// Wallet is a container of funds denominated in a single currency.
// InitialBalance is in the wallet's own currency, not the base currency.
type Wallet struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	InitialBalance float64 `json:"initialBalance"`
	Currency       string  `json:"currency"`
}
