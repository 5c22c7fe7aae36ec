package repository

import (
	"context"
	"errors"
	"sync"
)

// ErrBlobNotFound indica que a chave ainda não foi gravada
var ErrBlobNotFound = errors.New("chave não encontrada")

// BlobRepository guarda valores opacos por chave, como um localStorage do lado do servidor
type BlobRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

type memoryBlobRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryBlobRepository cria um repositório que vive só enquanto o processo vive
func NewMemoryBlobRepository() BlobRepository {
	return &memoryBlobRepository{
		values: make(map[string][]byte),
	}
}

func (r *memoryBlobRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.values[key]
	if !ok {
		return nil, ErrBlobNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (r *memoryBlobRepository) Put(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	r.values[key] = stored
	return nil
}
