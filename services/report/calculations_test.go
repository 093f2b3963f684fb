package report

import (
	"math"
	"testing"
	"time"

	"github.com/aivofinance/aivo/models"
)

func fptr(v float64) *float64 { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWalletBalanceUsesWalletCurrencyAmounts(t *testing.T) {
	w := models.Wallet{ID: "w1", InitialBalance: 1000, Currency: "EUR"}
	txs := []models.Transaction{
		// Foreign wallet: originalAmount is the EUR value, amount the base value.
		{WalletID: "w1", Type: models.TxIncome, Amount: 550, OriginalAmount: fptr(500), Currency: "EUR"},
		{WalletID: "w1", Type: models.TxExpense, Amount: 110, OriginalAmount: fptr(100), Currency: "EUR"},
		// No annotation: base amount doubles as wallet amount.
		{WalletID: "w1", Type: models.TxExpense, Amount: 50},
		// Other wallet, must be ignored.
		{WalletID: "w2", Type: models.TxIncome, Amount: 9999},
	}

	if got := WalletBalance(w, txs); !almostEqual(got, 1000+500-100-50) {
		t.Errorf("WalletBalance = %v, want 1350", got)
	}
}

func TestTotalBalanceExcludesForeignInitialBalances(t *testing.T) {
	wallets := []models.Wallet{
		{ID: "w1", InitialBalance: 1000, Currency: "USD"},
		{ID: "w2", InitialBalance: 5000, Currency: "EUR"}, // excluded on purpose
	}
	txs := []models.Transaction{
		{WalletID: "w1", Type: models.TxIncome, Amount: 200},
		{WalletID: "w2", Type: models.TxExpense, Amount: 50},
	}

	if got := TotalBalance(wallets, txs, "USD"); !almostEqual(got, 1000+200-50) {
		t.Errorf("TotalBalance = %v, want 1150", got)
	}
}

func TestNetWorthDecomposition(t *testing.T) {
	wallets := []models.Wallet{{ID: "w1", InitialBalance: 100, Currency: "USD"}}
	txs := []models.Transaction{
		{WalletID: "w1", Type: models.TxIncome, Amount: 400},
		{WalletID: "w1", Type: models.TxExpense, Amount: 150},
	}
	debts := []models.Debt{{Amount: 300}, {Amount: 200}}
	assets := []models.Asset{{CurrentValue: 1000}}
	fds := []models.FixedDeposit{{PrincipalAmount: 2500}}

	cash := TotalBalance(wallets, txs, "USD")
	want := cash + 1000 + 2500 - 500
	if got := NetWorth(wallets, txs, debts, assets, fds, "USD"); !almostEqual(got, want) {
		t.Errorf("NetWorth = %v, want %v", got, want)
	}
}

func TestTotalIncomeAndExpenses(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TxIncome, Amount: 100},
		{Type: models.TxIncome, Amount: 50},
		{Type: models.TxExpense, Amount: 30},
	}
	if got := TotalIncome(txs); !almostEqual(got, 150) {
		t.Errorf("TotalIncome = %v, want 150", got)
	}
	if got := TotalExpenses(txs); !almostEqual(got, 30) {
		t.Errorf("TotalExpenses = %v, want 30", got)
	}
}

func TestSpendingByCategoryDescending(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TxExpense, Category: "Food", Amount: 40},
		{Type: models.TxExpense, Category: "Travel", Amount: 100},
		{Type: models.TxExpense, Category: "Food", Amount: 20},
		{Type: models.TxIncome, Category: "Salary", Amount: 5000}, // ignored
	}

	got := SpendingByCategory(txs)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "Travel" || !almostEqual(got[0].Value, 100) {
		t.Errorf("first row = %+v, want Travel/100", got[0])
	}
	if got[1].Name != "Food" || !almostEqual(got[1].Value, 60) {
		t.Errorf("second row = %+v, want Food/60", got[1])
	}
}

func TestMonthlySummaryBucketsAndZeroFill(t *testing.T) {
	now := date(2024, time.June, 15)
	txs := []models.Transaction{
		{Type: models.TxIncome, Amount: 100, Date: date(2024, time.June, 1)},
		{Type: models.TxExpense, Amount: 40, Date: date(2024, time.April, 30)},
		{Type: models.TxIncome, Amount: 999, Date: date(2023, time.June, 1)}, // outside window
	}

	got := MonthlySummary(txs, 6, now)
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	if got[0].Month != "Jan 24" || got[5].Month != "Jun 24" {
		t.Errorf("window = %q..%q, want Jan 24..Jun 24", got[0].Month, got[5].Month)
	}
	if !almostEqual(got[3].Expense, 40) { // Apr 24
		t.Errorf("Apr expense = %v, want 40", got[3].Expense)
	}
	if !almostEqual(got[5].Income, 100) {
		t.Errorf("Jun income = %v, want 100", got[5].Income)
	}
	// Empty month still present with zeros.
	if got[1].Income != 0 || got[1].Expense != 0 {
		t.Errorf("Feb bucket not zero-filled: %+v", got[1])
	}
}

func TestNetWorthHistoryCumulativeAndConstantHoldings(t *testing.T) {
	now := date(2024, time.June, 15)
	wallets := []models.Wallet{{ID: "w1", InitialBalance: 1000, Currency: "USD"}}
	txs := []models.Transaction{
		{WalletID: "w1", Type: models.TxIncome, Amount: 100, Date: date(2024, time.April, 10)},
		{WalletID: "w1", Type: models.TxExpense, Amount: 30, Date: date(2024, time.May, 20)},
	}
	assets := []models.Asset{{CurrentValue: 500}}

	got := NetWorthHistory(wallets, txs, nil, assets, nil, "USD", 4, now)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	// Mar 24: before any transactions.
	if !almostEqual(got[0].NetWorth, 1500) {
		t.Errorf("Mar = %v, want 1500", got[0].NetWorth)
	}
	// Apr 24: income landed.
	if !almostEqual(got[1].NetWorth, 1600) {
		t.Errorf("Apr = %v, want 1600", got[1].NetWorth)
	}
	// May and Jun: expense applied, holdings constant.
	if !almostEqual(got[2].NetWorth, 1570) || !almostEqual(got[3].NetWorth, 1570) {
		t.Errorf("May/Jun = %v/%v, want 1570/1570", got[2].NetWorth, got[3].NetWorth)
	}
	if got[0].Month != "Mar 24" || got[3].Month != "Jun 24" {
		t.Errorf("ordering = %q..%q, want oldest to newest", got[0].Month, got[3].Month)
	}
}

func TestMaturityAmountSimpleInterest(t *testing.T) {
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	got := MaturityAmount(1000, 10, start, end)
	// 365 days / 365.25 is just shy of a full year.
	if math.Abs(got-1099.93) > 0.02 {
		t.Errorf("MaturityAmount = %v, want ≈1099.93", got)
	}
}

func TestMaturityValuePrefersStoredAmount(t *testing.T) {
	fd := models.FixedDeposit{
		PrincipalAmount: 1000,
		InterestRate:    10,
		StartDate:       time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		MaturityDate:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		MaturityAmount:  fptr(1234.56),
	}
	if got := MaturityValue(fd); got != 1234.56 {
		t.Errorf("MaturityValue = %v, want stored 1234.56", got)
	}

	fd.MaturityAmount = nil
	if got := MaturityValue(fd); got < 1099 || got > 1101 {
		t.Errorf("MaturityValue = %v, want derived ≈1100", got)
	}
}

func TestBudgetUsageCapsPercentage(t *testing.T) {
	now := date(2024, time.June, 15)
	b := models.Budget{Category: "Food", Amount: 1000}
	txs := []models.Transaction{
		{Type: models.TxExpense, Category: "Food", Amount: 1500, Date: date(2024, time.June, 10)},
		{Type: models.TxExpense, Category: "Food", Amount: 200, Date: date(2024, time.May, 10)}, // prior month
		{Type: models.TxExpense, Category: "Travel", Amount: 50, Date: date(2024, time.June, 12)},
	}

	got := CalculateBudgetUsage(b, txs, now)
	if !almostEqual(got.Spent, 1500) {
		t.Errorf("Spent = %v, want 1500", got.Spent)
	}
	if !almostEqual(got.Remaining, -500) {
		t.Errorf("Remaining = %v, want -500", got.Remaining)
	}
	if !almostEqual(got.Percentage, 100) {
		t.Errorf("Percentage = %v, want capped 100", got.Percentage)
	}
}

func TestBudgetUsageZeroBudget(t *testing.T) {
	got := CalculateBudgetUsage(models.Budget{Category: "Food", Amount: 0}, nil, date(2024, time.June, 1))
	if got.Percentage != 0 {
		t.Errorf("Percentage = %v, want 0 for zero budget", got.Percentage)
	}
}

func TestBudgetUsageMonthBoundariesInclusive(t *testing.T) {
	now := date(2024, time.June, 15)
	b := models.Budget{Category: "Food", Amount: 100}
	txs := []models.Transaction{
		{Type: models.TxExpense, Category: "Food", Amount: 10, Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{Type: models.TxExpense, Category: "Food", Amount: 20, Date: time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC)},
	}

	if got := CalculateBudgetUsage(b, txs, now); !almostEqual(got.Spent, 30) {
		t.Errorf("Spent = %v, want 30 (both boundary days included)", got.Spent)
	}
}
