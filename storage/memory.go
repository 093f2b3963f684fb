package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aivofinance/aivo/common"
	"github.com/aivofinance/aivo/interfaces"
	"github.com/aivofinance/aivo/models"
)

// Compile-time interface check
var _ interfaces.DriveStore = (*MemoryStore)(nil)

// MemoryStore simulates the remote file store in memory, with optional
// artificial latency so callers exercise the same async paths they would
// against a real network.
type MemoryStore struct {
	mu      sync.Mutex
	files   map[string][]byte // file id -> JSON content
	fileID  string            // id of the data file, "" until created
	latency time.Duration
	logger  *common.Logger
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(logger *common.Logger, latency time.Duration) *MemoryStore {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &MemoryStore{
		files:   make(map[string][]byte),
		latency: latency,
		logger:  logger,
	}
}

// delay simulates network latency, honoring context cancellation.
func (s *MemoryStore) delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// FindFile returns the data file id, or "" when none exists.
func (s *MemoryStore) FindFile(ctx context.Context) (string, error) {
	if err := s.delay(ctx, s.latency); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileID, nil
}

// CreateFile stores the initial document and returns the new file id.
func (s *MemoryStore) CreateFile(ctx context.Context, doc *models.AppData) (string, error) {
	if err := s.delay(ctx, s.latency); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fileID != "" {
		return "", ErrFileExists
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	id := "file_" + uuid.NewString()
	s.files[id] = data
	s.fileID = id
	s.logger.Debug().Str("file_id", id).Msg("Data file created")
	return id, nil
}

// ReadFile loads and decodes the document.
func (s *MemoryStore) ReadFile(ctx context.Context, fileID string) (*models.AppData, error) {
	if err := s.delay(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.files[fileID]
	if !ok {
		return nil, ErrFileNotFound
	}

	var doc models.AppData
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &doc, nil
}

// UpdateFile replaces the document contents in full.
func (s *MemoryStore) UpdateFile(ctx context.Context, fileID string, doc *models.AppData) error {
	// Saving is faster than reading against the real store too.
	if err := s.delay(ctx, s.latency/2); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[fileID]; !ok {
		return ErrFileNotFound
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	s.files[fileID] = data
	return nil
}

// CopyFile duplicates the file under newName. The copy is stored under the
// backup name so callers can verify it afterwards.
func (s *MemoryStore) CopyFile(ctx context.Context, fileID, newName string) error {
	if err := s.delay(ctx, s.latency); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.files[fileID]
	if !ok {
		return ErrFileNotFound
	}

	cp := make([]byte, len(data))
	copy(cp, data)
	s.files[newName] = cp
	s.logger.Debug().Str("file_id", fileID).Str("backup", newName).Msg("Data file copied")
	return nil
}

// Close releases nothing for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// HasFile reports whether a file exists under the given id or name.
func (s *MemoryStore) HasFile(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[id]
	return ok
}

// FileCount returns the number of stored files, backups included.
func (s *MemoryStore) FileCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}
