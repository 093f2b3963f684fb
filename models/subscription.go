package models

import "time"

// BillingCycle is the recurrence unit for subscription payments.
type BillingCycle string

const (
	BillingMonthly BillingCycle = "MONTHLY"
	BillingYearly  BillingCycle = "YEARLY"
)

// ValidBillingCycle returns true if c is a valid billing cycle.
func ValidBillingCycle(c BillingCycle) bool {
	return c == BillingMonthly || c == BillingYearly
}

// SubscriptionType distinguishes a brand-new subscription, whose first
// payment happens at creation, from an existing one tracked for future
// payments only.
type SubscriptionType string

const (
	SubscriptionNew      SubscriptionType = "NEW"
	SubscriptionExisting SubscriptionType = "EXISTING"
)

// ValidSubscriptionType returns true if t is a valid subscription type.
func ValidSubscriptionType(t SubscriptionType) bool {
	return t == SubscriptionNew || t == SubscriptionExisting
}

// Subscription is a recurring expense billed against a wallet.
type Subscription struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Type         SubscriptionType `json:"type"`
	Amount       float64          `json:"amount"`
	BillingCycle BillingCycle     `json:"billingCycle"`
	NextDueDate  time.Time        `json:"nextDueDate"`
	WalletID     string           `json:"walletId"`
	Category     string           `json:"category"`
	Remarks      string           `json:"remarks,omitempty"`
}

// AdvanceDueDate returns the due date one billing cycle after the current
// one. Calendar arithmetic normalizes overflow (Jan 31 + 1 month = Mar 2/3),
// matching time.Time.AddDate semantics.
func (s *Subscription) AdvanceDueDate() time.Time {
	if s.BillingCycle == BillingYearly {
		return s.NextDueDate.AddDate(1, 0, 0)
	}
	return s.NextDueDate.AddDate(0, 1, 0)
}
