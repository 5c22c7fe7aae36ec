package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const badgerKeyPrefix = "blob:"

type badgerBlobRepository struct {
	db *badger.DB
}

func NewBadgerBlobRepository(db *badger.DB) BlobRepository {
	return &badgerBlobRepository{
		db: db,
	}
}

func (r *badgerBlobRepository) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerKeyPrefix + key))
		if err != nil {
			return err
		}

		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler %q do badger: %w", key, err)
	}

	return value, nil
}

func (r *badgerBlobRepository) Put(_ context.Context, key string, value []byte) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(badgerKeyPrefix+key), value)
	})
	if err != nil {
		return fmt.Errorf("erro ao gravar %q no badger: %w", key, err)
	}

	return nil
}
