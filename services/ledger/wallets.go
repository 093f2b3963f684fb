package ledger

import (
	"fmt"

	"github.com/aivofinance/aivo/models"
)

func validateWallet(w models.Wallet) error {
	if w.Name == "" {
		return validationf("wallet name is required")
	}
	if w.Currency == "" {
		return validationf("wallet currency is required")
	}
	return nil
}

// AddWallet inserts a wallet. An unseen currency code is appended to the
// known-currencies list.
func (s *Service) AddWallet(w models.Wallet) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if err := validateWallet(w); err != nil {
		return nil, err
	}

	w.ID = s.newID("wal")
	doc.Wallets = append(doc.Wallets, w)
	registerCurrency(doc, w.Currency)

	s.logger.Info().Str("wallet_id", w.ID).Str("name", w.Name).Str("currency", w.Currency).Msg("Wallet added")
	return s.commit(doc)
}

// UpdateWallet replaces the wallet's editable fields.
func (s *Service) UpdateWallet(w models.Wallet) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if err := validateWallet(w); err != nil {
		return nil, err
	}

	for i := range doc.Wallets {
		if doc.Wallets[i].ID == w.ID {
			doc.Wallets[i] = w
			registerCurrency(doc, w.Currency)
			return s.commit(doc)
		}
	}
	return nil, notFoundf("wallet %q", w.ID)
}

// DeleteWallet removes a wallet. The last remaining wallet cannot be
// deleted, nor can one still referenced by a transaction, subscription, or
// check.
func (s *Service) DeleteWallet(id string) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}

	if doc.Wallet(id) == nil {
		return nil, notFoundf("wallet %q", id)
	}
	if len(doc.Wallets) <= 1 {
		return nil, fmt.Errorf("%w: cannot delete the last wallet, add another wallet first", ErrReferentialIntegrity)
	}
	if doc.WalletReferenced(id) {
		return nil, fmt.Errorf("%w: wallet is used by transactions, subscriptions, or checks", ErrReferentialIntegrity)
	}

	for i := range doc.Wallets {
		if doc.Wallets[i].ID == id {
			doc.Wallets = append(doc.Wallets[:i], doc.Wallets[i+1:]...)
			break
		}
	}

	s.logger.Info().Str("wallet_id", id).Msg("Wallet deleted")
	return s.commit(doc)
}

// AddCategory appends a category name for the given transaction type.
func (s *Service) AddCategory(t models.TransactionType, name string) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, validationf("category name is required")
	}
	if !models.ValidTransactionType(t) {
		return nil, validationf("invalid transaction type %q", t)
	}
	if doc.Categories.Contains(t, name) {
		return nil, validationf("category %q already exists", name)
	}

	doc.Categories.Add(t, name)
	return s.commit(doc)
}

// RenameCategory renames a category and cascades the new name across every
// transaction of the same type, subscription, and check that references the
// old name. Categories are referenced by value, so the cascade is what
// keeps historical records consistent.
func (s *Service) RenameCategory(t models.TransactionType, oldName, newName string) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if newName == "" {
		return nil, validationf("category name is required")
	}
	if oldName == newName {
		return doc, nil
	}
	if doc.Categories.Contains(t, newName) {
		return nil, validationf("category %q already exists", newName)
	}
	if !doc.Categories.Rename(t, oldName, newName) {
		return nil, notFoundf("category %q", oldName)
	}

	for i := range doc.Transactions {
		if doc.Transactions[i].Type == t && doc.Transactions[i].Category == oldName {
			doc.Transactions[i].Category = newName
		}
	}
	for i := range doc.Subscriptions {
		if doc.Subscriptions[i].Category == oldName {
			doc.Subscriptions[i].Category = newName
		}
	}
	for i := range doc.Checks {
		if doc.Checks[i].Category == oldName {
			doc.Checks[i].Category = newName
		}
	}

	s.logger.Info().Str("from", oldName).Str("to", newName).Msg("Category renamed")
	return s.commit(doc)
}

// DeleteCategory removes the name from the category list. Existing records
// keep the orphaned category string.
func (s *Service) DeleteCategory(t models.TransactionType, name string) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if !doc.Categories.Contains(t, name) {
		return nil, notFoundf("category %q", name)
	}

	doc.Categories.Remove(t, name)
	return s.commit(doc)
}
