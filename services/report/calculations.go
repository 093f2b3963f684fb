// Package report provides the pure derived-state calculators: balances,
// aggregates, calendar-bucketed summaries, maturity values, and budget
// usage. Nothing here mutates the document; every function derives its
// result from the slices it is handed, with the base currency and the clock
// injected by the caller.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aivofinance/aivo/models"
)

// monthKeyFormat buckets transactions by calendar month, e.g. "Mar 24".
const monthKeyFormat = "Jan 06"

// WalletBalance computes a wallet's running balance in the wallet's own
// currency: the initial balance plus the signed sum of the wallet-currency
// amounts of every transaction referencing the wallet.
func WalletBalance(w models.Wallet, txs []models.Transaction) float64 {
	balance := w.InitialBalance
	for i := range txs {
		t := &txs[i]
		if t.WalletID != w.ID {
			continue
		}
		if t.Type == models.TxIncome {
			balance += t.WalletAmount()
		} else {
			balance -= t.WalletAmount()
		}
	}
	return balance
}

// TotalBalance computes total cash in the base currency: all base-currency
// transaction amounts (income minus expense) plus the initial balances of
// wallets denominated in the base currency.
//
// Initial balances of foreign-currency wallets are deliberately excluded: no
// exchange rate is retained for the moment the wallet was created, so
// including them would misstate the total. This is a documented
// approximation; do not "fix" it without capturing historical rates.
func TotalBalance(wallets []models.Wallet, txs []models.Transaction, baseCurrency string) float64 {
	total := 0.0
	for i := range txs {
		total += txs[i].SignedAmount()
	}
	for i := range wallets {
		if wallets[i].Currency == baseCurrency {
			total += wallets[i].InitialBalance
		}
	}
	return total
}

// TotalIncome sums base-currency amounts of INCOME transactions.
func TotalIncome(txs []models.Transaction) float64 {
	total := 0.0
	for i := range txs {
		if txs[i].Type == models.TxIncome {
			total += txs[i].Amount
		}
	}
	return total
}

// TotalExpenses sums base-currency amounts of EXPENSE transactions.
func TotalExpenses(txs []models.Transaction) float64 {
	total := 0.0
	for i := range txs {
		if txs[i].Type == models.TxExpense {
			total += txs[i].Amount
		}
	}
	return total
}

// NetWorth combines total cash with asset values and fixed deposit
// principals, minus liabilities. All inputs are already base-currency; no
// conversion happens here.
func NetWorth(wallets []models.Wallet, txs []models.Transaction, debts []models.Debt, assets []models.Asset, fds []models.FixedDeposit, baseCurrency string) float64 {
	total := TotalBalance(wallets, txs, baseCurrency)
	for i := range assets {
		total += assets[i].CurrentValue
	}
	for i := range fds {
		total += fds[i].PrincipalAmount
	}
	for i := range debts {
		total -= debts[i].Amount
	}
	return total
}

// CategoryTotal is one row of a spending-by-category breakdown.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// SpendingByCategory groups EXPENSE transactions by category and returns
// totals in descending order.
func SpendingByCategory(txs []models.Transaction) []CategoryTotal {
	spending := make(map[string]float64)
	for i := range txs {
		if txs[i].Type == models.TxExpense {
			spending[txs[i].Category] += txs[i].Amount
		}
	}

	out := make([]CategoryTotal, 0, len(spending))
	for name, value := range spending {
		out = append(out, CategoryTotal{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// MonthlyPoint is one calendar-month bucket of an income/expense summary.
type MonthlyPoint struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// MonthlySummary buckets transactions into the trailing calendar months
// ending at now's month. Months with no transactions appear with
// zero values; output is ordered oldest to newest.
func MonthlySummary(txs []models.Transaction, months int, now time.Time) []MonthlyPoint {
	if months <= 0 {
		months = 6
	}

	keys := make([]string, 0, months)
	buckets := make(map[string]*MonthlyPoint, months)
	for i := months - 1; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		key := m.Format(monthKeyFormat)
		keys = append(keys, key)
		buckets[key] = &MonthlyPoint{Month: key}
	}

	for i := range txs {
		t := &txs[i]
		bucket, ok := buckets[t.Date.Format(monthKeyFormat)]
		if !ok {
			continue // outside the window
		}
		if t.Type == models.TxIncome {
			bucket.Income += t.Amount
		} else {
			bucket.Expense += t.Amount
		}
	}

	out := make([]MonthlyPoint, 0, months)
	for _, key := range keys {
		out = append(out, *buckets[key])
	}
	return out
}

// NetWorthPoint is net worth as of the end of one calendar month.
type NetWorthPoint struct {
	Month    string  `json:"month"`
	NetWorth float64 `json:"netWorth"`
}

// NetWorthHistory computes net worth as of each month-end over the trailing
// months window, oldest to newest. Cash flow is cumulative over transactions
// dated on or before each month's last day; asset, fixed deposit, and debt
// totals are the current values held constant across the window, since
// point-in-time valuations are not tracked. Foreign-currency initial
// balances are excluded under the same rule as TotalBalance.
func NetWorthHistory(wallets []models.Wallet, txs []models.Transaction, debts []models.Debt, assets []models.Asset, fds []models.FixedDeposit, baseCurrency string, months int, now time.Time) []NetWorthPoint {
	if months <= 0 {
		months = 12
	}

	initialCash := 0.0
	for i := range wallets {
		if wallets[i].Currency == baseCurrency {
			initialCash += wallets[i].InitialBalance
		}
	}

	holdings := 0.0
	for i := range assets {
		holdings += assets[i].CurrentValue
	}
	for i := range fds {
		holdings += fds[i].PrincipalAmount
	}
	for i := range debts {
		holdings -= debts[i].Amount
	}

	out := make([]NetWorthPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

		cashFlow := 0.0
		for j := range txs {
			if !txs[j].Date.After(monthEnd) {
				cashFlow += txs[j].SignedAmount()
			}
		}

		out = append(out, NetWorthPoint{
			Month:    monthStart.Format(monthKeyFormat),
			NetWorth: initialCash + cashFlow + holdings,
		})
	}
	return out
}

// MaturityAmount derives a fixed deposit's maturity value using simple
// interest, A = P(1 + r/100 * t), with t the fractional duration in years
// (days / 365.25). The result is rounded to 2 decimal places.
func MaturityAmount(principal, ratePct float64, start, maturity time.Time) float64 {
	years := maturity.Sub(start).Hours() / 24 / 365.25
	amount := principal * (1 + (ratePct/100)*years)
	rounded, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return rounded
}

// MaturityValue returns the fixed deposit's maturity value, preferring a
// stored amount over recomputation.
func MaturityValue(fd models.FixedDeposit) float64 {
	if fd.MaturityAmount != nil {
		return *fd.MaturityAmount
	}
	return MaturityAmount(fd.PrincipalAmount, fd.InterestRate, fd.StartDate, fd.MaturityDate)
}

// BudgetUsage is the consumption of one budget for the current month.
// Remaining goes negative on overspend; Percentage is capped at 100 for
// display, with the raw overspend recoverable from Remaining.
type BudgetUsage struct {
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// CalculateBudgetUsage sums EXPENSE transactions in the budget's category
// over the calendar month containing now, first day through last day
// inclusive.
func CalculateBudgetUsage(b models.Budget, txs []models.Transaction, now time.Time) BudgetUsage {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	spent := 0.0
	for i := range txs {
		t := &txs[i]
		if t.Type != models.TxExpense || t.Category != b.Category {
			continue
		}
		if t.Date.Before(monthStart) || t.Date.After(monthEnd) {
			continue
		}
		spent += t.Amount
	}

	usage := BudgetUsage{
		Spent:     spent,
		Remaining: b.Amount - spent,
	}
	if b.Amount > 0 {
		usage.Percentage = spent / b.Amount * 100
		if usage.Percentage > 100 {
			usage.Percentage = 100
		}
	}
	return usage
}
