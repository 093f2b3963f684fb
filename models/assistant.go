package models

// AssistantMessage is one turn of assistant conversation history.
type AssistantMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// AddTransactionCall is the structured instruction the assistant emits when
// the user's message records a transaction. WalletName is resolved to a
// wallet id by the ledger (case-insensitive, first wallet as fallback).
type AddTransactionCall struct {
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	WalletName  string          `json:"walletName"`
}

// AssistantReply is either conversational text or a function call, never
// both.
type AssistantReply struct {
	Text           string              `json:"text,omitempty"`
	AddTransaction *AddTransactionCall `json:"addTransaction,omitempty"`
}
