package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/protrack-api/infrastructure/database/postgres"
)

const appStateTable = "app_state"

// Chave do advisory lock que serializa a criação da tabela entre instâncias
const bootstrapLockID = 7_204_001

const createAppStateTable = `
	CREATE TABLE IF NOT EXISTS app_state (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

type postgresBlobRepository struct {
	conn postgres.Queryer
}

// NewPostgresBlobRepository cria o repositório e garante que a tabela existe.
// Dois CREATE TABLE IF NOT EXISTS simultâneos podem colidir no catálogo, por isso o lock.
func NewPostgresBlobRepository(ctx context.Context, db postgres.Transactor) (BlobRepository, error) {
	err := db.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", bootstrapLockID); err != nil {
			return fmt.Errorf("erro ao obter lock de criação: %w", err)
		}

		if _, err := tx.ExecContext(ctx, createAppStateTable); err != nil {
			return fmt.Errorf("erro ao criar tabela %s: %w", appStateTable, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &postgresBlobRepository{
		conn: db,
	}, nil
}

func (r *postgresBlobRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := selectBlobQuery(key)
	if err != nil {
		return nil, err
	}

	var value string
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler %q: %w", key, err)
	}

	return []byte(value), nil
}

func (r *postgresBlobRepository) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := upsertBlobQuery(key, value)
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar %q: %w", key, err)
	}

	return nil
}

func selectBlobQuery(key string) (string, []interface{}, error) {
	return squirrel.
		Select("value").
		From(appStateTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func upsertBlobQuery(key string, value []byte) (string, []interface{}, error) {
	return squirrel.
		Insert(appStateTable).
		Columns("key", "value", "updated_at").
		Values(key, string(value), squirrel.Expr("now()")).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
