package reporting

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/protrack-api/internal/domain"
	"github.com/vfg2006/protrack-api/pkg/log"
	"github.com/vfg2006/protrack-api/pkg/metrics"
)

//go:generate mockgen -source=store.go -destination=mocks/persister_mock.go -package=mocks

// Persister é a porta de persistência do Store: lido uma vez na criação, gravado após cada mutação
type Persister interface {
	Load(ctx context.Context) ([]*domain.MonthlyData, error)
	Save(ctx context.Context, data []*domain.MonthlyData) error
}

// Store mantém os meses carregados, ordenados por id decrescente, e o mês selecionado.
// As entidades nunca são alteradas campo a campo: um novo upload substitui o ponteiro.
type Store struct {
	mu        sync.RWMutex
	persister Persister
	data      []*domain.MonthlyData
	selected  string
	now       func() time.Time
}

// StoreOption configura o Store
type StoreOption func(*Store)

// WithClock substitui o relógio usado no createdAt
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore cria o Store e carrega o estado persistido.
// Falha de leitura não é fatal: o Store começa vazio.
func NewStore(ctx context.Context, persister Persister, opts ...StoreOption) *Store {
	s := &Store{
		persister: persister,
		data:      make([]*domain.MonthlyData, 0),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	loaded, err := persister.Load(ctx)
	if err != nil {
		metrics.PersistenceErrors.WithLabelValues("load").Inc()
		log.ForContext(ctx).WithError(err).Error("store: falha ao ler dados salvos, iniciando vazio")
		loaded = nil
	}

	seen := make(map[string]bool, len(loaded))
	for _, item := range loaded {
		if item == nil || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		s.data = append(s.data, item)
	}
	s.sort()

	if len(s.data) > 0 {
		s.selected = s.data[0].ID
	}
	metrics.StoredMonths.Set(float64(len(s.data)))

	log.ForContext(ctx).WithFields(log.Fields{
		"months":   len(s.data),
		"selected": s.selected,
	}).Info("store: dados carregados")

	return s
}

// Upsert substitui (ou cria) o mês, o torna o mês selecionado e retorna a entidade gravada
func (s *Store) Upsert(ctx context.Context, monthKey string, records []domain.ProductionRecord) *domain.MonthlyData {
	s.mu.Lock()
	defer s.mu.Unlock()

	entity := &domain.MonthlyData{
		ID:        monthKey,
		MonthName: MonthName(monthKey),
		Records:   records,
		CreatedAt: s.now().UnixMilli(),
	}

	s.data = append(s.without(monthKey), entity)
	s.sort()
	s.selected = monthKey

	s.persist(ctx)

	return entity
}

// Delete remove o mês. Se era o selecionado, a seleção passa para o primeiro restante.
// Retorna o id selecionado após a remoção ("" quando vazio) e se o mês existia.
func (s *Store) Delete(ctx context.Context, id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.without(id)
	if len(remaining) == len(s.data) {
		return s.selected, false
	}
	s.data = remaining

	if s.selected == id {
		s.selected = ""
		if len(s.data) > 0 {
			s.selected = s.data[0].ID
		}
	}

	s.persist(ctx)

	return s.selected, true
}

// List retorna os meses em ordem decrescente de id
func (s *Store) List() []*domain.MonthlyData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.MonthlyData, len(s.data))
	copy(out, s.data)
	return out
}

// Get retorna o mês ou nil
func (s *Store) Get(id string) *domain.MonthlyData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.find(id)
}

// Selected retorna o mês selecionado, ou nil quando não há seleção
func (s *Store) Selected() *domain.MonthlyData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.find(s.selected)
}

// Select altera a seleção para um mês existente
func (s *Store) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(id) == nil {
		return ErrMonthNotFound
	}
	s.selected = id
	return nil
}

func (s *Store) find(id string) *domain.MonthlyData {
	if id == "" {
		return nil
	}
	for _, item := range s.data {
		if item.ID == id {
			return item
		}
	}
	return nil
}

func (s *Store) without(id string) []*domain.MonthlyData {
	filtered := make([]*domain.MonthlyData, 0, len(s.data))
	for _, item := range s.data {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// sort reordena a coleção inteira; chamado após toda mutação
func (s *Store) sort() {
	sort.SliceStable(s.data, func(i, j int) bool {
		return s.data[i].ID > s.data[j].ID
	})
}

// persist grava a coleção completa. Erro de gravação só é registrado.
func (s *Store) persist(ctx context.Context) {
	metrics.StoredMonths.Set(float64(len(s.data)))

	snapshot := make([]*domain.MonthlyData, len(s.data))
	copy(snapshot, s.data)

	if err := s.persister.Save(ctx, snapshot); err != nil {
		metrics.PersistenceErrors.WithLabelValues("save").Inc()
		log.ForContext(ctx).WithError(err).WithField("months", len(snapshot)).Error("store: falha ao salvar dados")
	}
}
