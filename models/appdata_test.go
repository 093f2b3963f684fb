package models

import (
	"testing"
	"time"
)

func TestValidTransactionType(t *testing.T) {
	for _, tt := range []TransactionType{TxIncome, TxExpense} {
		if !ValidTransactionType(tt) {
			t.Errorf("ValidTransactionType(%q) = false, want true", tt)
		}
	}
	for _, tt := range []TransactionType{"", "income", "TRANSFER"} {
		if ValidTransactionType(tt) {
			t.Errorf("ValidTransactionType(%q) = true, want false", tt)
		}
	}
}

func TestWalletAmountPrefersOriginal(t *testing.T) {
	orig := 250.0
	tx := Transaction{Amount: 100, OriginalAmount: &orig}
	if got := tx.WalletAmount(); got != 250 {
		t.Errorf("WalletAmount() = %v, want 250", got)
	}

	tx.OriginalAmount = nil
	if got := tx.WalletAmount(); got != 100 {
		t.Errorf("WalletAmount() = %v, want 100", got)
	}
}

func TestCheckStatusTerminal(t *testing.T) {
	if CheckPending.Terminal() {
		t.Error("PENDING must not be terminal")
	}
	for _, s := range []CheckStatus{CheckCleared, CheckBounced, CheckCanceled} {
		if !s.Terminal() {
			t.Errorf("%q should be terminal", s)
		}
	}
	if CheckStatus("VOID").Terminal() {
		t.Error("unknown status must not report terminal")
	}
}

func TestAdvanceDueDate(t *testing.T) {
	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	monthly := Subscription{BillingCycle: BillingMonthly, NextDueDate: due}
	if got := monthly.AdvanceDueDate(); !got.Equal(time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("monthly advance = %v", got)
	}

	yearly := Subscription{BillingCycle: BillingYearly, NextDueDate: due}
	if got := yearly.AdvanceDueDate(); !got.Equal(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("yearly advance = %v", got)
	}
}

func TestCategoriesRenameAndRemove(t *testing.T) {
	c := Categories{Expense: []string{"Food", "Travel"}}

	if !c.Rename(TxExpense, "Food", "Food & Drink") {
		t.Fatal("Rename returned false for existing category")
	}
	if !c.Contains(TxExpense, "Food & Drink") || c.Contains(TxExpense, "Food") {
		t.Errorf("rename not applied: %v", c.Expense)
	}

	if c.Rename(TxExpense, "Missing", "X") {
		t.Error("Rename returned true for missing category")
	}

	c.Remove(TxExpense, "Travel")
	if c.Contains(TxExpense, "Travel") {
		t.Errorf("remove not applied: %v", c.Expense)
	}
}

func TestNewDocumentSeedsDefaults(t *testing.T) {
	doc := NewDocument("LKR")

	if doc.Version != CurrentVersion {
		t.Errorf("Version = %q, want %q", doc.Version, CurrentVersion)
	}
	if doc.Settings.BaseCurrency != "LKR" {
		t.Errorf("BaseCurrency = %q", doc.Settings.BaseCurrency)
	}
	if !doc.HasCurrency("LKR") {
		t.Error("onboarding currency not appended to currency list")
	}
	if !doc.Categories.Contains(TxExpense, TransferCategory) {
		t.Error("default expense categories must include Transfer")
	}
	if len(doc.Wallets) != 0 || len(doc.Transactions) != 0 {
		t.Error("fresh document must have empty collections")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := 42.0
	doc := NewDocument("USD")
	doc.Wallets = append(doc.Wallets, Wallet{ID: "w1", Name: "Cash", Currency: "USD"})
	doc.Transactions = append(doc.Transactions, Transaction{ID: "t1", Amount: 10, OriginalAmount: &orig})

	clone := doc.Clone()
	*clone.Transactions[0].OriginalAmount = 99
	clone.Wallets[0].Name = "Changed"
	clone.Categories.Expense[0] = "Mutated"

	if *doc.Transactions[0].OriginalAmount != 42 {
		t.Error("clone shares OriginalAmount pointer with original")
	}
	if doc.Wallets[0].Name != "Cash" {
		t.Error("clone shares wallet backing array with original")
	}
	if doc.Categories.Expense[0] == "Mutated" {
		t.Error("clone shares category list with original")
	}
}

func TestWalletReferenced(t *testing.T) {
	doc := NewDocument("USD")
	doc.Checks = append(doc.Checks, Check{ID: "c1", WalletID: "w9"})

	if !doc.WalletReferenced("w9") {
		t.Error("WalletReferenced(w9) = false, want true")
	}
	if doc.WalletReferenced("w1") {
		t.Error("WalletReferenced(w1) = true, want false")
	}
}

func TestWalletByNameCaseInsensitive(t *testing.T) {
	doc := NewDocument("USD")
	doc.Wallets = append(doc.Wallets, Wallet{ID: "w1", Name: "Main Wallet"})

	if w := doc.WalletByName("main wallet"); w == nil || w.ID != "w1" {
		t.Error("WalletByName should match case-insensitively")
	}
	if doc.WalletByName("nope") != nil {
		t.Error("WalletByName should return nil for no match")
	}
}
