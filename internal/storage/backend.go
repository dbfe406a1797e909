package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("storage: not found")

// Backend is a small key-value store holding whole serialized values per
// slot. Get returns ErrNotFound for a slot that was never written.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

type Kind string

const (
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindFile, KindSQLite:
		return true
	default:
		return false
	}
}

// Open returns the backend of the given kind rooted at dir.
func Open(kind Kind, dir string) (Backend, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("storage: data dir is required")
	}
	switch kind {
	case KindFile:
		return NewFileBackend(dir)
	case KindSQLite:
		return OpenSQLite(dir)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", kind)
	}
}
