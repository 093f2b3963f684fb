package models

import "time"

// AssetType is a free-form classification; the well-known values match what
// the asset form offers.
type AssetType string

const (
	AssetRealEstate AssetType = "Real Estate"
	AssetStocks     AssetType = "Stocks"
	AssetCrypto     AssetType = "Crypto"
	AssetOther      AssetType = "Other"
)

// PurchaseType distinguishes a purchase happening now, which spends money
// from a wallet, from one made in the past that is tracked only for its
// value. Shared by assets and fixed deposits.
type PurchaseType string

const (
	PurchaseCurrent PurchaseType = "CURRENT"
	PurchaseOld     PurchaseType = "OLD"
)

// ValidPurchaseType returns true if t is a valid purchase type.
func ValidPurchaseType(t PurchaseType) bool {
	return t == PurchaseCurrent || t == PurchaseOld
}

// Asset is a non-cash holding valued in the base currency.
type Asset struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         AssetType    `json:"type"`
	PurchaseType PurchaseType `json:"purchaseType"`
	CurrentValue float64      `json:"currentValue"`
	PurchaseDate time.Time    `json:"purchaseDate"`
	Remarks      string       `json:"remarks,omitempty"`
}
