package models

import "strings"

// CurrentVersion is the schema version this build reads and writes.
// Documents at an older version pass through the migration gate before they
// are accepted into working state.
const CurrentVersion = "0.1"

// Settings holds per-document configuration. BaseCurrency is chosen once at
// onboarding and is immutable for the life of the document.
type Settings struct {
	BaseCurrency string `json:"baseCurrency"`
}

// AppData is the root document: the unit of load, of mutation, and of
// persistence. Every mutation computes a whole next document which replaces
// this one atomically.
type AppData struct {
	Version       string         `json:"version"`
	Settings      Settings       `json:"settings"`
	Currencies    []string       `json:"currencies"`
	Wallets       []Wallet       `json:"wallets"`
	Categories    Categories     `json:"categories"`
	Transactions  []Transaction  `json:"transactions"`
	Debts         []Debt         `json:"debts"`
	Subscriptions []Subscription `json:"subscriptions"`
	Assets        []Asset        `json:"assets"`
	FixedDeposits []FixedDeposit `json:"fixedDeposits"`
	Checks        []Check        `json:"checks"`
	Budgets       []Budget       `json:"budgets"`
	Goals         []Goal         `json:"goals"`
}

// Wallet returns the wallet with the given id, or nil.
func (d *AppData) Wallet(id string) *Wallet {
	for i := range d.Wallets {
		if d.Wallets[i].ID == id {
			return &d.Wallets[i]
		}
	}
	return nil
}

// WalletByName returns the wallet matching name case-insensitively, or nil.
func (d *AppData) WalletByName(name string) *Wallet {
	for i := range d.Wallets {
		if strings.EqualFold(d.Wallets[i].Name, name) {
			return &d.Wallets[i]
		}
	}
	return nil
}

// Subscription returns the subscription with the given id, or nil.
func (d *AppData) Subscription(id string) *Subscription {
	for i := range d.Subscriptions {
		if d.Subscriptions[i].ID == id {
			return &d.Subscriptions[i]
		}
	}
	return nil
}

// Check returns the check with the given id, or nil.
func (d *AppData) Check(id string) *Check {
	for i := range d.Checks {
		if d.Checks[i].ID == id {
			return &d.Checks[i]
		}
	}
	return nil
}

// Goal returns the goal with the given id, or nil.
func (d *AppData) Goal(id string) *Goal {
	for i := range d.Goals {
		if d.Goals[i].ID == id {
			return &d.Goals[i]
		}
	}
	return nil
}

// HasCurrency reports whether code is already in the known-currencies list.
func (d *AppData) HasCurrency(code string) bool {
	for _, c := range d.Currencies {
		if c == code {
			return true
		}
	}
	return false
}

// WalletReferenced reports whether any transaction, subscription, or check
// references the wallet id.
func (d *AppData) WalletReferenced(id string) bool {
	for i := range d.Transactions {
		if d.Transactions[i].WalletID == id {
			return true
		}
	}
	for i := range d.Subscriptions {
		if d.Subscriptions[i].WalletID == id {
			return true
		}
	}
	for i := range d.Checks {
		if d.Checks[i].WalletID == id {
			return true
		}
	}
	return false
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone returns a deep copy of the document. Mutation handlers clone, edit
// the clone, and swap it in so a partially applied mutation is never
// observable.
func (d *AppData) Clone() *AppData {
	c := &AppData{
		Version:       d.Version,
		Settings:      d.Settings,
		Currencies:    append([]string(nil), d.Currencies...),
		Wallets:       append([]Wallet(nil), d.Wallets...),
		Categories:    Categories{Income: append([]string(nil), d.Categories.Income...), Expense: append([]string(nil), d.Categories.Expense...)},
		Transactions:  append([]Transaction(nil), d.Transactions...),
		Debts:         append([]Debt(nil), d.Debts...),
		Subscriptions: append([]Subscription(nil), d.Subscriptions...),
		Assets:        append([]Asset(nil), d.Assets...),
		FixedDeposits: append([]FixedDeposit(nil), d.FixedDeposits...),
		Checks:        append([]Check(nil), d.Checks...),
		Budgets:       append([]Budget(nil), d.Budgets...),
		Goals:         append([]Goal(nil), d.Goals...),
	}
	for i := range c.Transactions {
		c.Transactions[i].OriginalAmount = copyFloat(c.Transactions[i].OriginalAmount)
		c.Transactions[i].ExchangeRate = copyFloat(c.Transactions[i].ExchangeRate)
	}
	for i := range c.Debts {
		c.Debts[i].OriginalAmount = copyFloat(c.Debts[i].OriginalAmount)
		c.Debts[i].ExchangeRate = copyFloat(c.Debts[i].ExchangeRate)
	}
	for i := range c.Checks {
		c.Checks[i].OriginalAmount = copyFloat(c.Checks[i].OriginalAmount)
		c.Checks[i].ExchangeRate = copyFloat(c.Checks[i].ExchangeRate)
	}
	for i := range c.FixedDeposits {
		c.FixedDeposits[i].MaturityAmount = copyFloat(c.FixedDeposits[i].MaturityAmount)
	}
	for i := range c.Goals {
		if c.Goals[i].TargetDate != nil {
			t := *c.Goals[i].TargetDate
			c.Goals[i].TargetDate = &t
		}
	}
	return c
}
