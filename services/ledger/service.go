// Package ledger is the sole mutation path over the document. Every
// operation snapshots the current document, validates against it, applies
// the change plus any linked side-effect transaction to the copy, and swaps
// the copy in through the session in one replacement. A reader never sees an
// entity without its linked transaction or the other way around.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/aivofinance/aivo/common"
	"github.com/aivofinance/aivo/interfaces"
	"github.com/aivofinance/aivo/models"
)

// Compile-time interface check
var _ interfaces.LedgerService = (*Service)(nil)

var (
	// ErrValidation covers malformed or missing fields on create/update.
	// The document is untouched when it is returned.
	ErrValidation = errors.New("validation failed")

	// ErrReferentialIntegrity covers mutations blocked because other
	// entities still reference the target.
	ErrReferentialIntegrity = errors.New("referential integrity violation")

	// ErrNotFound is returned when the target entity does not exist.
	ErrNotFound = errors.New("not found")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Service implements LedgerService over a document session.
type Service struct {
	session interfaces.DocumentSession
	logger  *common.Logger
	now     func() time.Time
	newID   func(prefix string) string
}

// Option configures the service.
type Option func(*Service)

// WithClock overrides the time source (tests pin it).
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator overrides id generation (tests make it deterministic).
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(s *Service) {
		s.newID = gen
	}
}

// NewService creates the ledger over the given document session.
func NewService(session interfaces.DocumentSession, logger *common.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	s := &Service{
		session: session,
		logger:  logger,
		now:     time.Now,
		newID: func(prefix string) string {
			return prefix + "_" + uuid.NewString()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// begin returns a deep copy of the current document to mutate.
func (s *Service) begin() (*models.AppData, error) {
	return s.session.Snapshot()
}

// commit swaps the mutated document in and schedules persistence.
func (s *Service) commit(doc *models.AppData) (*models.AppData, error) {
	s.session.Replace(doc)
	return doc, nil
}

// registerCurrency appends an unseen currency code to the known list,
// keeping it sorted.
func registerCurrency(doc *models.AppData, code string) {
	if code == "" || doc.HasCurrency(code) {
		return
	}
	doc.Currencies = append(doc.Currencies, code)
	sort.Strings(doc.Currencies)
}
