package models

import "time"

// FixedDeposit is a term deposit accruing simple interest. PrincipalAmount
// is in the base currency and InterestRate is percent per annum.
// MaturityAmount, when set, overrides the derived maturity value.
type FixedDeposit struct {
	ID              string       `json:"id"`
	PurchaseType    PurchaseType `json:"purchaseType"`
	BankName        string       `json:"bankName"`
	PrincipalAmount float64      `json:"principalAmount"`
	InterestRate    float64      `json:"interestRate"`
	StartDate       time.Time    `json:"startDate"`
	MaturityDate    time.Time    `json:"maturityDate"`
	MaturityAmount  *float64     `json:"maturityAmount,omitempty"`
	Remarks         string       `json:"remarks,omitempty"`
}
