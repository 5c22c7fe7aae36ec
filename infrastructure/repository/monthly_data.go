package repository

import (
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/protrack-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MonthlyDataRepository grava a coleção inteira de meses como um único JSON sob uma chave
type MonthlyDataRepository interface {
	Load(ctx context.Context) ([]*domain.MonthlyData, error)
	Save(ctx context.Context, data []*domain.MonthlyData) error
}

type monthlyDataRepository struct {
	blobs BlobRepository
	key   string
}

func NewMonthlyDataRepository(blobs BlobRepository, key string) MonthlyDataRepository {
	return &monthlyDataRepository{
		blobs: blobs,
		key:   key,
	}
}

// Load retorna vazio quando a chave ainda não existe e erro quando o conteúdo é inválido
func (r *monthlyDataRepository) Load(ctx context.Context) ([]*domain.MonthlyData, error) {
	raw, err := r.blobs.Get(ctx, r.key)
	if errors.Is(err, ErrBlobNotFound) {
		return []*domain.MonthlyData{}, nil
	}
	if err != nil {
		return nil, err
	}

	var data []*domain.MonthlyData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("conteúdo inválido em %q: %w", r.key, err)
	}

	if data == nil {
		data = []*domain.MonthlyData{}
	}
	return data, nil
}

func (r *monthlyDataRepository) Save(ctx context.Context, data []*domain.MonthlyData) error {
	if data == nil {
		data = []*domain.MonthlyData{}
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("erro ao serializar meses: %w", err)
	}

	return r.blobs.Put(ctx, r.key, raw)
}
