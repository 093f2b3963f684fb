package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"

	gcs "cloud.google.com/go/storage"
	"golang.org/x/time/rate"

	"github.com/aivofinance/aivo/common"
	"github.com/aivofinance/aivo/interfaces"
	"github.com/aivofinance/aivo/models"
)

// Compile-time interface check
var _ interfaces.DriveStore = (*GCSStore)(nil)

// DefaultWritesPerMin caps save-path writes; the debounced saver coalesces
// bursts so this is generous headroom, not a queue.
const DefaultWritesPerMin = 30

// GCSStore keeps the user's data file as a single JSON object in a Google
// Cloud Storage bucket. The file id is the object name. Credentials come
// from Application Default Credentials.
type GCSStore struct {
	client  *gcs.Client
	bucket  string
	prefix  string
	limiter *rate.Limiter
	logger  *common.Logger
}

// NewGCSStore creates a store backed by the configured bucket.
func NewGCSStore(ctx context.Context, logger *common.Logger, cfg common.GCSConfig) (*GCSStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("gcs storage requires a bucket name")
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	wpm := cfg.WritesPerMin
	if wpm <= 0 {
		wpm = DefaultWritesPerMin
	}

	return &GCSStore{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  cfg.Prefix,
		limiter: rate.NewLimiter(rate.Limit(float64(wpm)/60.0), 1),
		logger:  logger,
	}, nil
}

// dataObjectName is the canonical object name of the user's data file.
func (s *GCSStore) dataObjectName() string {
	return path.Join(s.prefix, DataFileName)
}

// FindFile returns the data object name if it exists, or "".
func (s *GCSStore) FindFile(ctx context.Context) (string, error) {
	name := s.dataObjectName()
	_, err := s.client.Bucket(s.bucket).Object(name).Attrs(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", name, err)
	}
	return name, nil
}

// CreateFile writes the initial document. The precondition rejects the
// write if an object already exists under the data file name.
func (s *GCSStore) CreateFile(ctx context.Context, doc *models.AppData) (string, error) {
	name := s.dataObjectName()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	obj := s.client.Bucket(s.bucket).Object(name).If(gcs.Conditions{DoesNotExist: true})
	w := obj.NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize %s: %w", name, err)
	}

	s.logger.Info().Str("bucket", s.bucket).Str("object", name).Msg("Data file created")
	return name, nil
}

// ReadFile loads and decodes the document object.
func (s *GCSStore) ReadFile(ctx context.Context, fileID string) (*models.AppData, error) {
	r, err := s.client.Bucket(s.bucket).Object(fileID).NewReader(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", fileID, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fileID, err)
	}

	var doc models.AppData
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", fileID, err)
	}
	return &doc, nil
}

// UpdateFile replaces the document object in full. Writes are throttled so
// a misbehaving caller cannot turn save retries into a request storm.
func (s *GCSStore) UpdateFile(ctx context.Context, fileID string, doc *models.AppData) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	w := s.client.Bucket(s.bucket).Object(fileID).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write %s: %w", fileID, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", fileID, err)
	}
	return nil
}

// CopyFile duplicates the data object under newName within the same prefix.
func (s *GCSStore) CopyFile(ctx context.Context, fileID, newName string) error {
	bkt := s.client.Bucket(s.bucket)
	src := bkt.Object(fileID)
	dst := bkt.Object(path.Join(s.prefix, newName))

	if _, err := dst.CopierFrom(src).Run(ctx); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", fileID, newName, err)
	}

	s.logger.Info().Str("object", fileID).Str("backup", newName).Msg("Data file backed up")
	return nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
