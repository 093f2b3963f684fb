// Package migration implements the schema version gate: a loaded document
// is compared against the current schema version and, when behind, backed
// up and transformed before it is accepted into working state. The backup
// must complete before any mutation; backup failure aborts the migration
// with the original data untouched.
package migration

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aivofinance/aivo/common"
	"github.com/aivofinance/aivo/interfaces"
	"github.com/aivofinance/aivo/models"
)

// Status describes where a gate run ended up.
type Status string

const (
	StatusUpToDate       Status = "UP_TO_DATE"
	StatusNeedsMigration Status = "NEEDS_MIGRATION"
	StatusBackedUp       Status = "BACKED_UP"
	StatusMigrated       Status = "MIGRATED"
	StatusFailed         Status = "FAILED"
)

var (
	// ErrBackupFailed means the pre-migration backup could not be taken;
	// the migration was aborted and the stored document is untouched.
	ErrBackupFailed = errors.New("data backup failed")

	// ErrMigrationFailed means a transformation step could not be applied;
	// the gate fails closed and persists nothing.
	ErrMigrationFailed = errors.New("migration failed")
)

// fallbackVersion is assumed for documents written before version tagging.
const fallbackVersion = "0.0"

// step is one version-gated transformation. Apply runs when the document's
// version is older than the step's target version.
type step struct {
	version string
	apply   func(doc *models.AppData) error
}

// steps run in order; each brings the document up to its target version.
var steps = []step{
	{version: "0.1", apply: normalizeCollections},
}

// normalizeCollections fills in collections and category lists absent from
// pre-0.1 documents so downstream code never sees nil slices.
func normalizeCollections(doc *models.AppData) error {
	if doc.Currencies == nil {
		doc.Currencies = append([]string(nil), models.DefaultCurrencies...)
	}
	if doc.Categories.Income == nil {
		doc.Categories.Income = append([]string(nil), models.DefaultIncomeCategories...)
	}
	if doc.Categories.Expense == nil {
		doc.Categories.Expense = append([]string(nil), models.DefaultExpenseCategories...)
	}
	if doc.Wallets == nil {
		doc.Wallets = []models.Wallet{}
	}
	if doc.Transactions == nil {
		doc.Transactions = []models.Transaction{}
	}
	if doc.Debts == nil {
		doc.Debts = []models.Debt{}
	}
	if doc.Subscriptions == nil {
		doc.Subscriptions = []models.Subscription{}
	}
	if doc.Assets == nil {
		doc.Assets = []models.Asset{}
	}
	if doc.FixedDeposits == nil {
		doc.FixedDeposits = []models.FixedDeposit{}
	}
	if doc.Checks == nil {
		doc.Checks = []models.Check{}
	}
	if doc.Budgets == nil {
		doc.Budgets = []models.Budget{}
	}
	if doc.Goals == nil {
		doc.Goals = []models.Goal{}
	}
	return nil
}

// Result reports what the gate did.
type Result struct {
	Status      Status
	FromVersion string
	ToVersion   string
	BackupName  string
}

// Gate runs the backup-then-migrate sequence against the remote store.
type Gate struct {
	store  interfaces.DriveStore
	logger *common.Logger
	now    func() time.Time
}

// NewGate creates a migration gate over the given store.
func NewGate(store interfaces.DriveStore, logger *common.Logger) *Gate {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Gate{store: store, logger: logger, now: time.Now}
}

// compareVersions orders dotted numeric versions: -1, 0, or 1.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		av, bv := 0, 0
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Run checks the document version and, when behind, backs up the remote
// file, applies the pending transformation steps, stamps the current
// version, and persists the migrated document. Running against an
// up-to-date document is a no-op.
func (g *Gate) Run(ctx context.Context, fileID string, doc *models.AppData) (*models.AppData, *Result, error) {
	fromVersion := doc.Version
	if fromVersion == "" {
		fromVersion = fallbackVersion
	}

	result := &Result{
		Status:      StatusUpToDate,
		FromVersion: fromVersion,
		ToVersion:   models.CurrentVersion,
	}

	if compareVersions(fromVersion, models.CurrentVersion) == 0 {
		g.logger.Debug().Str("version", fromVersion).Msg("Data is up to date, no migration needed")
		return doc, result, nil
	}

	result.Status = StatusNeedsMigration
	g.logger.Info().
		Str("found", fromVersion).
		Str("required", models.CurrentVersion).
		Msg("Data version mismatch, starting migration")

	// Backup first. Proceeding without one risks the only copy of the
	// user's data, so a backup failure aborts everything.
	backupName := fmt.Sprintf("aivofinance_data_backup_v%s_%s.json", fromVersion, g.now().UTC().Format(time.RFC3339))
	if err := g.store.CopyFile(ctx, fileID, backupName); err != nil {
		result.Status = StatusFailed
		g.logger.Error().Err(err).Str("backup", backupName).Msg("Failed to back up data file, aborting migration")
		return doc, result, fmt.Errorf("%w: %v", ErrBackupFailed, err)
	}
	result.Status = StatusBackedUp
	result.BackupName = backupName

	migrated := doc.Clone()
	for _, s := range steps {
		if compareVersions(fromVersion, s.version) >= 0 {
			continue
		}
		if err := s.apply(migrated); err != nil {
			result.Status = StatusFailed
			return doc, result, fmt.Errorf("%w: step %s: %v", ErrMigrationFailed, s.version, err)
		}
		g.logger.Info().Str("step", s.version).Msg("Migration step applied")
	}
	migrated.Version = models.CurrentVersion

	if err := g.store.UpdateFile(ctx, fileID, migrated); err != nil {
		result.Status = StatusFailed
		return doc, result, fmt.Errorf("failed to persist migrated document: %w", err)
	}

	result.Status = StatusMigrated
	g.logger.Info().
		Str("from", fromVersion).
		Str("to", models.CurrentVersion).
		Str("backup", backupName).
		Msg("Migration complete")
	return migrated, result, nil
}
