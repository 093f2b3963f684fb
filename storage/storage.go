// Package storage provides remote document store implementations.
//
// The persisted unit is a single JSON document per user. Two backends exist:
// an in-memory simulation used in tests and development, and Google Cloud
// Storage for real deployments. Both satisfy interfaces.DriveStore.
package storage

import "errors"

// DataFileName is the canonical name of the user's data file.
const DataFileName = "aivofinance_data.json"

var (
	// ErrFileNotFound is returned when the data file does not exist yet.
	ErrFileNotFound = errors.New("data file not found")

	// ErrFileExists is returned by CreateFile when a data file already
	// exists; the document is created exactly once per user.
	ErrFileExists = errors.New("data file already exists")
)
