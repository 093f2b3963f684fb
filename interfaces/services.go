package interfaces

import (
	"context"

	"github.com/aivofinance/aivo/models"
)

// DocumentSession owns the loaded document and its persistence cycle.
// Mutations replace the in-memory document synchronously; the remote write
// is debounced and happens in the background, one attempt per flush.
type DocumentSession interface {
	// Load finds and reads the remote document, running the migration gate
	// before accepting it. Returns storage.ErrFileNotFound for a first-time
	// user who still needs onboarding.
	Load(ctx context.Context) error

	// Initialize creates the initial document for a first-time user with
	// the chosen base currency.
	Initialize(ctx context.Context, baseCurrency string) error

	// Snapshot returns a deep copy of the current document for readers.
	Snapshot() (*models.AppData, error)

	// Replace swaps in the next document and schedules a debounced persist.
	Replace(doc *models.AppData)

	// Flush forces any pending write through immediately.
	Flush(ctx context.Context) error

	// LastSaveError reports the outcome of the most recent persist attempt,
	// nil when it succeeded. Save failures are non-fatal: the in-memory
	// document is retained and the next mutation retriggers persistence.
	LastSaveError() error

	Close() error
}

// LedgerService is the sole mutation path over the document. Every
// operation validates first, then computes a whole next document and applies
// it in one replacement, so entity-plus-linked-transaction pairs are atomic.
// Each returns the new document state or a structured failure.
type LedgerService interface {
	// Transactions
	AddTransaction(tx models.Transaction) (*models.AppData, error)
	UpdateTransaction(tx models.Transaction) (*models.AppData, error)
	DeleteTransaction(id string) (*models.AppData, error)

	// Wallets
	AddWallet(w models.Wallet) (*models.AppData, error)
	UpdateWallet(w models.Wallet) (*models.AppData, error)
	DeleteWallet(id string) (*models.AppData, error)

	// Categories
	AddCategory(t models.TransactionType, name string) (*models.AppData, error)
	RenameCategory(t models.TransactionType, oldName, newName string) (*models.AppData, error)
	DeleteCategory(t models.TransactionType, name string) (*models.AppData, error)

	// Debts
	AddDebt(d models.Debt, walletID string) (*models.AppData, error)
	UpdateDebt(d models.Debt) (*models.AppData, error)
	DeleteDebt(id string) (*models.AppData, error)

	// Subscriptions
	AddSubscription(s models.Subscription) (*models.AppData, error)
	UpdateSubscription(s models.Subscription) (*models.AppData, error)
	PaySubscription(id string) (*models.AppData, error)
	DeleteSubscription(id string) (*models.AppData, error)

	// Assets
	AddAsset(a models.Asset, walletID string) (*models.AppData, error)
	UpdateAsset(a models.Asset) (*models.AppData, error)
	DeleteAsset(id string) (*models.AppData, error)

	// Fixed deposits
	AddFixedDeposit(fd models.FixedDeposit, walletID string) (*models.AppData, error)
	UpdateFixedDeposit(fd models.FixedDeposit) (*models.AppData, error)
	DeleteFixedDeposit(id string) (*models.AppData, error)

	// Transfers
	Transfer(in models.TransferInput) (*models.AppData, error)

	// Checks
	AddCheck(c models.Check) (*models.AppData, error)
	UpdateCheckStatus(id string, status models.CheckStatus) (*models.AppData, error)

	// Budgets
	AddBudget(b models.Budget) (*models.AppData, error)
	UpdateBudget(b models.Budget) (*models.AppData, error)
	DeleteBudget(id string) (*models.AppData, error)

	// Goals
	AddGoal(g models.Goal) (*models.AppData, error)
	UpdateGoal(g models.Goal) (*models.AppData, error)
	UpdateGoalProgress(id string, delta float64) (*models.AppData, error)
	DeleteGoal(id string) (*models.AppData, error)

	// Assistant surface: resolves walletName to a wallet id.
	AddTransactionFromAssistant(call models.AddTransactionCall) (*models.AppData, error)
}
