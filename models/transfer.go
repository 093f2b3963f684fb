package models

// TransferInput describes a wallet-to-wallet transfer. FromAmount/ToAmount
// are in the respective wallet currencies; the rates convert each side to
// the base currency for the two ledger entries the transfer produces.
type TransferInput struct {
	FromWalletID     string  `json:"fromWalletId"`
	ToWalletID       string  `json:"toWalletId"`
	FromAmount       float64 `json:"fromAmount"`
	ToAmount         float64 `json:"toAmount"`
	FromExchangeRate float64 `json:"fromExchangeRate"`
	ToExchangeRate   float64 `json:"toExchangeRate"`
	Remarks          string  `json:"remarks,omitempty"`
}
