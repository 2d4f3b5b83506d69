package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Document keys for the four persisted JSON values.
const (
	KeyTasks    = "tasks"
	KeyGoals    = "goals"
	KeySettings = "settings"
	KeyStats    = "stats"
)

// Gateway is a flat key-value store of JSON documents. A save is a full
// overwrite of the document under its key; there are no partial-write or
// transactional guarantees across keys.
type Gateway interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, doc []byte) error
	Close() error
}
