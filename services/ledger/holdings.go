package ledger

import (
	"github.com/aivofinance/aivo/models"
)

// Debts, subscriptions, assets, and fixed deposits are each dual-natured:
// a "current" record moves money now and materializes a linked transaction
// in the same write, an "old" record is tracking-only. The linked
// transaction is never removed when its source entity is deleted.

func validateDebt(d models.Debt) error {
	if !models.ValidDebtType(d.Type) {
		return validationf("invalid debt type %q", d.Type)
	}
	if d.Lender == "" {
		return validationf("debt lender is required")
	}
	if d.Amount <= 0 {
		return validationf("debt amount must be positive, got %v", d.Amount)
	}
	return nil
}

// AddDebt records a liability. A CURRENT debt means money was just received,
// so it also materializes an INCOME transaction into the target wallet.
func (s *Service) AddDebt(d models.Debt, walletID string) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if err := validateDebt(d); err != nil {
		return nil, err
	}

	d.ID = s.newID("debt")
	doc.Debts = append(doc.Debts, d)

	if d.Type == models.DebtCurrent {
		if walletID == "" {
			return nil, validationf("a current debt requires a target wallet")
		}
		if doc.Wallet(walletID) == nil {
			return nil, validationf("wallet %q does not exist", walletID)
		}
		doc.Transactions = append(doc.Transactions, models.Transaction{
			ID:             s.newID("tx"),
			Date:           s.now(),
			Description:    "Loan from " + d.Lender,
			Amount:         d.Amount,
			Type:           models.TxIncome,
			Category:       models.LoanCategory,
			WalletID:       walletID,
			OriginalAmount: d.OriginalAmount,
			Currency:       d.Currency,
			ExchangeRate:   d.ExchangeRate,
			Remarks:        d.Remarks,
		})
		s.logger.Info().Str("debt_id", d.ID).Str("lender", d.Lender).Msg("Current debt recorded with income transaction")
	}

	return s.commit(doc)
}

// UpdateDebt replaces the debt's editable fields. Linked transactions are
// not adjusted.
func (s *Service) UpdateDebt(d models.Debt) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if err := validateDebt(d); err != nil {
		return nil, err
	}

	for i := range doc.Debts {
		if doc.Debts[i].ID == d.ID {
			doc.Debts[i] = d
			return s.commit(doc)
		}
	}
	return nil, notFoundf("debt %q", d.ID)
}

// DeleteDebt removes the debt. Any income transaction it produced stays.
func (s *Service) DeleteDebt(id string) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}

	for i := range doc.Debts {
		if doc.Debts[i].ID == id {
			doc.Debts = append(doc.Debts[:i], doc.Debts[i+1:]...)
			return s.commit(doc)
		}
	}
	return nil, notFoundf("debt %q", id)
}

func (s *Service) validateSubscription(doc *models.AppData, sub models.Subscription) error {
	if sub.Name == "" {
		return validationf("subscription name is required")
	}
	if !models.ValidSubscriptionType(sub.Type) {
		return validationf("invalid subscription type %q", sub.Type)
	}
	if !models.ValidBillingCycle(sub.BillingCycle) {
		return validationf("invalid billing cycle %q", sub.BillingCycle)
	}
	if sub.Amount <= 0 {
		return validationf("subscription amount must be positive, got %v", sub.Amount)
	}
	if sub.Category == "" {
		return validationf("subscription category is required")
	}
	if doc.Wallet(sub.WalletID) == nil {
		return validationf("wallet %q does not exist", sub.WalletID)
	}
	return nil
}

// AddSubscription records a recurring expense. A NEW subscription pays its
// first bill at creation, so it also materializes an EXPENSE transaction.
func (s *Service) AddSubscription(sub models.Subscription) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if err := s.validateSubscription(doc, sub); err != nil {
		return nil, err
	}

	sub.ID = s.newID("sub")
	doc.Subscriptions = append(doc.Subscriptions, sub)

	if sub.Type == models.SubscriptionNew {
		doc.Transactions = append(doc.Transactions, models.Transaction{
			ID:          s.newID("tx"),
			Date:        s.now(),
			Description: "Initial payment for " + sub.Name,
			Amount:      sub.Amount,
			Type:        models.TxExpense,
			Category:    sub.Category,
			WalletID:    sub.WalletID,
			Remarks:     sub.Remarks,
		})
		s.logger.Info().Str("subscription_id", sub.ID).Str("name", sub.Name).Msg("New subscription recorded with initial payment")
	}

	return s.commit(doc)
}

// UpdateSubscription replaces the subscription's editable fields.
func (s *Service) UpdateSubscription(sub models.Subscription) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if err := s.validateSubscription(doc, sub); err != nil {
		return nil, err
	}

	for i := range doc.Subscriptions {
		if doc.Subscriptions[i].ID == sub.ID {
			doc.Subscriptions[i] = sub
			return s.commit(doc)
		}
	}
	return nil, notFoundf("subscription %q", sub.ID)
}

// PaySubscription records one billing payment as an EXPENSE transaction and
// advances the due date by one cycle unit in the same write.
func (s *Service) PaySubscription(id string) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}

	sub := doc.Subscription(id)
	if sub == nil {
		return nil, notFoundf("subscription %q", id)
	}

	doc.Transactions = append(doc.Transactions, models.Transaction{
		ID:          s.newID("tx"),
		Date:        s.now(),
		Description: "Payment for " + sub.Name,
		Amount:      sub.Amount,
		Type:        models.TxExpense,
		Category:    sub.Category,
		WalletID:    sub.WalletID,
	})
	sub.NextDueDate = sub.AdvanceDueDate()

	s.logger.Info().Str("subscription_id", id).Time("next_due", sub.NextDueDate).Msg("Subscription paid")
	return s.commit(doc)
}

// DeleteSubscription removes the subscription. Past payment transactions
// stay.
func (s *Service) DeleteSubscription(id string) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}

	for i := range doc.Subscriptions {
		if doc.Subscriptions[i].ID == id {
			doc.Subscriptions = append(doc.Subscriptions[:i], doc.Subscriptions[i+1:]...)
			return s.commit(doc)
		}
	}
	return nil, notFoundf("subscription %q", id)
}

func validateAsset(a models.Asset) error {
	if a.Name == "" {
		return validationf("asset name is required")
	}
	if !models.ValidPurchaseType(a.PurchaseType) {
		return validationf("invalid purchase type %q", a.PurchaseType)
	}
	if a.CurrentValue <= 0 {
		return validationf("asset value must be positive, got %v", a.CurrentValue)
	}
	return nil
}

// AddAsset records a holding. A CURRENT purchase spends from a wallet, so
// it also materializes an EXPENSE transaction for the purchase value.
func (s *Service) AddAsset(a models.Asset, walletID string) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if err := validateAsset(a); err != nil {
		return nil, err
	}

	a.ID = s.newID("asset")
	doc.Assets = append(doc.Assets, a)

	if a.PurchaseType == models.PurchaseCurrent {
		if walletID == "" {
			return nil, validationf("a current asset purchase requires a wallet")
		}
		if doc.Wallet(walletID) == nil {
			return nil, validationf("wallet %q does not exist", walletID)
		}
		doc.Transactions = append(doc.Transactions, models.Transaction{
			ID:          s.newID("tx"),
			Date:        s.now(),
			Description: "Purchase of " + a.Name,
			Amount:      a.CurrentValue,
			Type:        models.TxExpense,
			Category:    models.InvestmentCategory,
			WalletID:    walletID,
			Remarks:     a.Remarks,
		})
		s.logger.Info().Str("asset_id", a.ID).Str("name", a.Name).Msg("Asset purchase recorded with expense transaction")
	}

	return s.commit(doc)
}

// UpdateAsset replaces the asset's editable fields.
func (s *Service) UpdateAsset(a models.Asset) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if err := validateAsset(a); err != nil {
		return nil, err
	}

	for i := range doc.Assets {
		if doc.Assets[i].ID == a.ID {
			doc.Assets[i] = a
			return s.commit(doc)
		}
	}
	return nil, notFoundf("asset %q", a.ID)
}

// DeleteAsset removes the asset. The purchase transaction stays.
func (s *Service) DeleteAsset(id string) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}

	for i := range doc.Assets {
		if doc.Assets[i].ID == id {
			doc.Assets = append(doc.Assets[:i], doc.Assets[i+1:]...)
			return s.commit(doc)
		}
	}
	return nil, notFoundf("asset %q", id)
}

func validateFixedDeposit(fd models.FixedDeposit) error {
	if fd.BankName == "" {
		return validationf("fixed deposit bank name is required")
	}
	if !models.ValidPurchaseType(fd.PurchaseType) {
		return validationf("invalid purchase type %q", fd.PurchaseType)
	}
	if fd.PrincipalAmount <= 0 {
		return validationf("fixed deposit principal must be positive, got %v", fd.PrincipalAmount)
	}
	if !fd.MaturityDate.After(fd.StartDate) {
		return validationf("maturity date must be after start date")
	}
	return nil
}

// AddFixedDeposit records a term deposit. A CURRENT purchase spends the
// principal from a wallet, so it also materializes an EXPENSE transaction.
func (s *Service) AddFixedDeposit(fd models.FixedDeposit, walletID string) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if err := validateFixedDeposit(fd); err != nil {
		return nil, err
	}

	fd.ID = s.newID("fd")
	doc.FixedDeposits = append(doc.FixedDeposits, fd)

	if fd.PurchaseType == models.PurchaseCurrent {
		if walletID == "" {
			return nil, validationf("a current fixed deposit requires a wallet")
		}
		if doc.Wallet(walletID) == nil {
			return nil, validationf("wallet %q does not exist", walletID)
		}
		doc.Transactions = append(doc.Transactions, models.Transaction{
			ID:          s.newID("tx"),
			Date:        s.now(),
			Description: "Fixed Deposit at " + fd.BankName,
			Amount:      fd.PrincipalAmount,
			Type:        models.TxExpense,
			Category:    models.InvestmentCategory,
			WalletID:    walletID,
			Remarks:     fd.Remarks,
		})
		s.logger.Info().Str("fixed_deposit_id", fd.ID).Str("bank", fd.BankName).Msg("Fixed deposit recorded with expense transaction")
	}

	return s.commit(doc)
}

// UpdateFixedDeposit replaces the deposit's editable fields.
func (s *Service) UpdateFixedDeposit(fd models.FixedDeposit) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if err := validateFixedDeposit(fd); err != nil {
		return nil, err
	}

	for i := range doc.FixedDeposits {
		if doc.FixedDeposits[i].ID == fd.ID {
			doc.FixedDeposits[i] = fd
			return s.commit(doc)
		}
	}
	return nil, notFoundf("fixed deposit %q", fd.ID)
}

// DeleteFixedDeposit removes the deposit. The purchase transaction stays.
func (s *Service) DeleteFixedDeposit(id string) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}

	for i := range doc.FixedDeposits {
		if doc.FixedDeposits[i].ID == id {
			doc.FixedDeposits = append(doc.FixedDeposits[:i], doc.FixedDeposits[i+1:]...)
			return s.commit(doc)
		}
	}
	return nil, notFoundf("fixed deposit %q", id)
}
