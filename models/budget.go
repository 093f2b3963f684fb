package models

import "time"

// Budget is a monthly spending limit for one EXPENSE category. Consumers
// assume at most one budget per category; creation enforces it.
type Budget struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Goal is a savings target. SavedAmount only moves through bounded
// increments and never goes negative.
type Goal struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	TargetAmount float64    `json:"targetAmount"`
	SavedAmount  float64    `json:"savedAmount"`
	TargetDate   *time.Time `json:"targetDate,omitempty"`
}
