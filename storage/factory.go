package storage

import (
	"context"
	"fmt"

	"github.com/aivofinance/aivo/common"
	"github.com/aivofinance/aivo/interfaces"
)

// NewDriveStore builds the remote store selected by configuration.
func NewDriveStore(ctx context.Context, logger *common.Logger, cfg common.StorageConfig) (interfaces.DriveStore, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemoryStore(logger, cfg.Memory.GetLatency()), nil
	case "gcs":
		return NewGCSStore(ctx, logger, cfg.GCS)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
