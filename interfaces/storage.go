// Package interfaces defines service contracts for Aivo
package interfaces

import (
	"context"

	"github.com/aivofinance/aivo/models"
)

// DriveStore is the remote file store holding exactly one document per user.
// The core depends only on these five operations and tolerates their latency
// and failure; implementations may be a real cloud store or an in-memory
// simulation.
type DriveStore interface {
	// FindFile returns the id of the user's data file, or "" when no file
	// exists yet (first-time user).
	FindFile(ctx context.Context) (string, error)

	// CreateFile stores the initial document and returns the new file id.
	// Fails if a file already exists.
	CreateFile(ctx context.Context, doc *models.AppData) (string, error)

	// ReadFile loads and decodes the document.
	ReadFile(ctx context.Context, fileID string) (*models.AppData, error)

	// UpdateFile replaces the document contents in full.
	UpdateFile(ctx context.Context, fileID string, doc *models.AppData) error

	// CopyFile duplicates the file under a new name. Used for pre-migration
	// backups; the copy must be complete before CopyFile returns.
	CopyFile(ctx context.Context, fileID, newName string) error

	Close() error
}
