// Package data owns the loaded document and its persistence cycle. The
// in-memory document updates synchronously on every mutation; writes to the
// remote store are debounced so bursts of edits coalesce into one flush,
// latest document wins. A failed save is non-fatal: the in-memory document
// is kept and the next mutation schedules the next attempt.
package data

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aivofinance/aivo/common"
	"github.com/aivofinance/aivo/interfaces"
	"github.com/aivofinance/aivo/migration"
	"github.com/aivofinance/aivo/models"
	"github.com/aivofinance/aivo/storage"
)

// Compile-time interface check
var _ interfaces.DocumentSession = (*Service)(nil)

// DefaultSaveDelay is the debounce window before a mutation is flushed to
// the remote store.
const DefaultSaveDelay = 500 * time.Millisecond

// saveTimeout bounds the background write triggered by the debounce timer.
const saveTimeout = 30 * time.Second

// ErrNotLoaded is returned when the session has no document yet: Load has
// not run, or the user still needs onboarding.
var ErrNotLoaded = errors.New("no document loaded")

// Service implements DocumentSession over a DriveStore.
type Service struct {
	store     interfaces.DriveStore
	gate      *migration.Gate
	logger    *common.Logger
	saveDelay time.Duration

	mu          sync.Mutex
	doc         *models.AppData
	fileID      string
	timer       *time.Timer
	pending     *models.AppData
	lastSaveErr error
}

// Option configures the service.
type Option func(*Service)

// WithSaveDelay overrides the debounce window (tests use a tiny one).
func WithSaveDelay(d time.Duration) Option {
	return func(s *Service) {
		s.saveDelay = d
	}
}

// NewService creates a document session over the given store.
func NewService(store interfaces.DriveStore, logger *common.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	s := &Service{
		store:     store,
		gate:      migration.NewGate(store, logger),
		logger:    logger,
		saveDelay: DefaultSaveDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load finds and reads the remote document, running the migration gate
// before accepting it into working state. A first-time user with no file
// yet gets storage.ErrFileNotFound and must call Initialize.
func (s *Service) Load(ctx context.Context) error {
	fileID, err := s.store.FindFile(ctx)
	if err != nil {
		return err
	}
	if fileID == "" {
		return storage.ErrFileNotFound
	}

	doc, err := s.store.ReadFile(ctx, fileID)
	if err != nil {
		return err
	}

	// The gate backs up and persists before the document is accepted; a
	// partially migrated document is never exposed for editing.
	migrated, result, err := s.gate.Run(ctx, fileID, doc)
	if err != nil {
		return err
	}
	if result.Status == migration.StatusMigrated {
		s.logger.Info().Str("from", result.FromVersion).Str("to", result.ToVersion).Msg("Document migrated on load")
	}

	s.mu.Lock()
	s.doc = migrated
	s.fileID = fileID
	s.mu.Unlock()

	s.logger.Info().Str("file_id", fileID).Msg("Document loaded")
	return nil
}

// Initialize creates the initial document for a first-time user.
func (s *Service) Initialize(ctx context.Context, baseCurrency string) error {
	doc := models.NewDocument(baseCurrency)

	fileID, err := s.store.CreateFile(ctx, doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.doc = doc
	s.fileID = fileID
	s.mu.Unlock()

	s.logger.Info().Str("file_id", fileID).Str("base_currency", baseCurrency).Msg("Document initialized")
	return nil
}

// Snapshot returns a deep copy of the current document.
func (s *Service) Snapshot() (*models.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return nil, ErrNotLoaded
	}
	return s.doc.Clone(), nil
}

// Replace swaps in the next document synchronously and (re)arms the
// debounce timer. Rapid successive calls collapse into one write of the
// most recent document.
func (s *Service) Replace(doc *models.AppData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = doc
	s.pending = doc

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.saveDelay, s.flushPending)
}

// flushPending writes the latest pending document, one attempt.
func (s *Service) flushPending() {
	s.mu.Lock()
	pending := s.pending
	fileID := s.fileID
	s.pending = nil
	s.timer = nil
	s.mu.Unlock()

	if pending == nil || fileID == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	err := s.store.UpdateFile(ctx, fileID, pending)

	s.mu.Lock()
	s.lastSaveErr = err
	s.mu.Unlock()

	if err != nil {
		// Non-fatal: in-memory state is authoritative and the next
		// mutation schedules the next attempt.
		s.logger.Error().Err(err).Msg("Failed to save document")
		return
	}
	s.logger.Debug().Str("file_id", fileID).Msg("Document saved")
}

// Flush forces any pending write through immediately.
func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	pending := s.pending
	fileID := s.fileID
	s.pending = nil
	s.mu.Unlock()

	if pending == nil || fileID == "" {
		return nil
	}

	err := s.store.UpdateFile(ctx, fileID, pending)

	s.mu.Lock()
	s.lastSaveErr = err
	s.mu.Unlock()

	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to save document")
	}
	return err
}

// LastSaveError reports the outcome of the most recent persist attempt.
func (s *Service) LastSaveError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaveErr
}

// Close flushes any pending write and releases the store.
func (s *Service) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := s.Flush(ctx); err != nil {
		return err
	}
	return s.store.Close()
}
