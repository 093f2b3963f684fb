package ledger

import (
	"fmt"
	"math"

	"github.com/aivofinance/aivo/models"
)

// AddCheck records a written check, always PENDING. Money moves only when
// the check clears.
func (s *Service) AddCheck(c models.Check) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}

	if c.Payee == "" {
		return nil, validationf("check payee is required")
	}
	if c.Amount <= 0 {
		return nil, validationf("check amount must be positive, got %v", c.Amount)
	}
	if c.CheckNumber == "" {
		return nil, validationf("check number is required")
	}
	if c.Category == "" {
		return nil, validationf("check category is required")
	}
	if doc.Wallet(c.WalletID) == nil {
		return nil, validationf("wallet %q does not exist", c.WalletID)
	}
	if c.DueDate.Before(c.IssueDate) {
		return nil, validationf("due date must not be before issue date")
	}

	c.ID = s.newID("chk")
	c.Status = models.CheckPending
	doc.Checks = append(doc.Checks, c)

	s.logger.Debug().Str("check_id", c.ID).Str("payee", c.Payee).Msg("Check added")
	return s.commit(doc)
}

// UpdateCheckStatus moves a pending check to a terminal state. Clearing is
// the only transition that materializes an EXPENSE transaction; terminal
// checks admit no further transitions.
func (s *Service) UpdateCheckStatus(id string, status models.CheckStatus) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}

	check := doc.Check(id)
	if check == nil {
		return nil, notFoundf("check %q", id)
	}
	if !status.Terminal() {
		return nil, validationf("invalid check status transition to %q", status)
	}
	if check.Status != models.CheckPending {
		return nil, validationf("check %q is already %s", id, check.Status)
	}

	check.Status = status

	if status == models.CheckCleared {
		doc.Transactions = append(doc.Transactions, models.Transaction{
			ID:             s.newID("tx"),
			Date:           s.now(),
			Description:    fmt.Sprintf("Check #%s to %s", check.CheckNumber, check.Payee),
			Amount:         check.Amount,
			Type:           models.TxExpense,
			Category:       check.Category,
			WalletID:       check.WalletID,
			Remarks:        "Check cleared on " + s.now().Format("2006-01-02"),
			OriginalAmount: check.OriginalAmount,
			Currency:       check.Currency,
			ExchangeRate:   check.ExchangeRate,
		})
		s.logger.Info().Str("check_id", id).Msg("Check cleared with expense transaction")
	}

	return s.commit(doc)
}

func (s *Service) validateBudget(doc *models.AppData, b models.Budget) error {
	if b.Amount <= 0 {
		return validationf("budget amount must be positive, got %v", b.Amount)
	}
	if !doc.Categories.Contains(models.TxExpense, b.Category) {
		return validationf("budget category %q is not an expense category", b.Category)
	}
	for i := range doc.Budgets {
		if doc.Budgets[i].Category == b.Category && doc.Budgets[i].ID != b.ID {
			return validationf("a budget for %q already exists", b.Category)
		}
	}
	return nil
}

// AddBudget creates a monthly limit, at most one per expense category.
func (s *Service) AddBudget(b models.Budget) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if err := s.validateBudget(doc, b); err != nil {
		return nil, err
	}

	b.ID = s.newID("bud")
	doc.Budgets = append(doc.Budgets, b)
	return s.commit(doc)
}

// UpdateBudget replaces the budget's editable fields.
func (s *Service) UpdateBudget(b models.Budget) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}
	if err := s.validateBudget(doc, b); err != nil {
		return nil, err
	}

	for i := range doc.Budgets {
		if doc.Budgets[i].ID == b.ID {
			doc.Budgets[i] = b
			return s.commit(doc)
		}
	}
	return nil, notFoundf("budget %q", b.ID)
}

// DeleteBudget removes the budget.
func (s *Service) DeleteBudget(id string) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}

	for i := range doc.Budgets {
		if doc.Budgets[i].ID == id {
			doc.Budgets = append(doc.Budgets[:i], doc.Budgets[i+1:]...)
			return s.commit(doc)
		}
	}
	return nil, notFoundf("budget %q", id)
}

// AddGoal creates a savings goal with nothing saved yet.
func (s *Service) AddGoal(g models.Goal) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}

	if g.Name == "" {
		return nil, validationf("goal name is required")
	}
	if g.TargetAmount <= 0 {
		return nil, validationf("goal target must be positive, got %v", g.TargetAmount)
	}

	g.ID = s.newID("goal")
	g.SavedAmount = 0
	doc.Goals = append(doc.Goals, g)
	return s.commit(doc)
}

// UpdateGoal replaces the goal's editable fields.
func (s *Service) UpdateGoal(g models.Goal) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}

	if g.Name == "" {
		return nil, validationf("goal name is required")
	}
	if g.TargetAmount <= 0 {
		return nil, validationf("goal target must be positive, got %v", g.TargetAmount)
	}
	if g.SavedAmount < 0 {
		return nil, validationf("saved amount cannot be negative")
	}

	for i := range doc.Goals {
		if doc.Goals[i].ID == g.ID {
			doc.Goals[i] = g
			return s.commit(doc)
		}
	}
	return nil, notFoundf("goal %q", g.ID)
}

// UpdateGoalProgress moves the saved amount by delta, clamping at zero so a
// withdrawal can never overdraw the goal.
func (s *Service) UpdateGoalProgress(id string, delta float64) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}

	goal := doc.Goal(id)
	if goal == nil {
		return nil, notFoundf("goal %q", id)
	}

	goal.SavedAmount = math.Max(0, goal.SavedAmount+delta)
	return s.commit(doc)
}

// DeleteGoal removes the goal.
func (s *Service) DeleteGoal(id string) (*models.AppData, error) {
	doc, err := s.begin()
	if err != nil {
		return nil, err
	}

	for i := range doc.Goals {
		if doc.Goals[i].ID == id {
			doc.Goals = append(doc.Goals[:i], doc.Goals[i+1:]...)
			return s.commit(doc)
		}
	}
	return nil, notFoundf("goal %q", id)
}
