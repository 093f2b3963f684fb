package ledger

import (
	"strings"

	"github.com/aivofinance/aivo/models"
	"github.com/aivofinance/aivo/services/report"
)

func (s *Service) validateTransaction(doc *models.AppData, tx models.Transaction) error {
	if tx.Description == "" {
		return validationf("transaction description is required")
	}
	if tx.Amount <= 0 {
		return validationf("transaction amount must be positive, got %v", tx.Amount)
	}
	if !models.ValidTransactionType(tx.Type) {
		return validationf("invalid transaction type %q", tx.Type)
	}
	if tx.Category == "" {
		return validationf("transaction category is required")
	}
	if doc.Wallet(tx.WalletID) == nil {
		return validationf("wallet %q does not exist", tx.WalletID)
	}
	return nil
}

// AddTransaction records a ledger entry. ID and Date are assigned here and
// never change afterwards.
func (s *Service) AddTransaction(tx models.Transaction) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if err := s.validateTransaction(doc, tx); err != nil {
		return nil, err
	}

	tx.ID = s.newID("tx")
	tx.Date = s.now()
	doc.Transactions = append(doc.Transactions, tx)

	s.logger.Debug().Str("transaction_id", tx.ID).Str("type", string(tx.Type)).Msg("Transaction added")
	return s.commit(doc)
}

// UpdateTransaction replaces the stored transaction's editable fields. The
// original ID and Date are preserved.
func (s *Service) UpdateTransaction(tx models.Transaction) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if err := s.validateTransaction(doc, tx); err != nil {
		return nil, err
	}

	for i := range doc.Transactions {
		if doc.Transactions[i].ID == tx.ID {
			tx.Date = doc.Transactions[i].Date
			doc.Transactions[i] = tx
			return s.commit(doc)
		}
	}
	return nil, notFoundf("transaction %q", tx.ID)
}

// DeleteTransaction removes the entry. Entities whose creation produced it
// are not touched.
func (s *Service) DeleteTransaction(id string) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}

	for i := range doc.Transactions {
		if doc.Transactions[i].ID == id {
			doc.Transactions = append(doc.Transactions[:i], doc.Transactions[i+1:]...)
			return s.commit(doc)
		}
	}
	return nil, notFoundf("transaction %q", id)
}

// Transfer moves funds between two wallets as a linked EXPENSE/INCOME pair.
// Both legs carry their wallet's currency and rate annotations, and both
// land in the same document replacement.
func (s *Service) Transfer(in models.TransferInput) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}

	if in.FromWalletID == in.ToWalletID {
		return nil, validationf("cannot transfer to the same wallet")
	}
	from := doc.Wallet(in.FromWalletID)
	if from == nil {
		return nil, validationf("source wallet %q does not exist", in.FromWalletID)
	}
	to := doc.Wallet(in.ToWalletID)
	if to == nil {
		return nil, validationf("destination wallet %q does not exist", in.ToWalletID)
	}
	if in.FromAmount <= 0 || in.ToAmount <= 0 {
		return nil, validationf("transfer amounts must be positive")
	}
	if in.FromExchangeRate <= 0 || in.ToExchangeRate <= 0 {
		return nil, validationf("exchange rates must be positive")
	}
	if balance := report.WalletBalance(*from, doc.Transactions); balance < in.FromAmount {
		return nil, validationf("insufficient balance in %s: have %v, need %v", from.Name, balance, in.FromAmount)
	}

	now := s.now()
	fromAmount := in.FromAmount
	toAmount := in.ToAmount
	fromRate := in.FromExchangeRate
	toRate := in.ToExchangeRate

	expense := models.Transaction{
		ID:             s.newID("tx"),
		Date:           now,
		Description:    "Transfer to " + to.Name,
		Amount:         in.FromAmount * in.FromExchangeRate,
		Type:           models.TxExpense,
		Category:       models.TransferCategory,
		WalletID:       from.ID,
		OriginalAmount: &fromAmount,
		Currency:       from.Currency,
		ExchangeRate:   &fromRate,
		Remarks:        in.Remarks,
	}
	income := models.Transaction{
		ID:             s.newID("tx"),
		Date:           now,
		Description:    "Transfer from " + from.Name,
		Amount:         in.ToAmount * in.ToExchangeRate,
		Type:           models.TxIncome,
		Category:       models.TransferCategory,
		WalletID:       to.ID,
		OriginalAmount: &toAmount,
		Currency:       to.Currency,
		ExchangeRate:   &toRate,
		Remarks:        in.Remarks,
	}
	doc.Transactions = append(doc.Transactions, expense, income)

	s.logger.Info().Str("from", from.Name).Str("to", to.Name).Float64("amount", in.FromAmount).Msg("Transfer recorded")
	return s.commit(doc)
}

// AddTransactionFromAssistant records a transaction from the assistant's
// structured instruction, resolving the wallet name to an id. An unknown
// name falls back to the first wallet so the assistant never dangles a
// reference.
func (s *Service) AddTransactionFromAssistant(call models.AddTransactionCall) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if len(doc.Wallets) == 0 {
		return nil, validationf("no wallets exist yet, add a wallet first")
	}

	walletID := doc.Wallets[0].ID
	for i := range doc.Wallets {
		if strings.EqualFold(doc.Wallets[i].Name, call.WalletName) {
			walletID = doc.Wallets[i].ID
			break
		}
	}

	return s.AddTransaction(models.Transaction{
		Description: call.Description,
		Amount:      call.Amount,
		Type:        call.Type,
		Category:    call.Category,
		WalletID:    walletID,
	})
}
