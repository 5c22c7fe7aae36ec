package insighting

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vfg2006/protrack-api/internal/domain"
	"github.com/vfg2006/protrack-api/pkg/log"
	"github.com/vfg2006/protrack-api/pkg/metrics"
	"github.com/vfg2006/protrack-api/pkg/utils"
	"golang.org/x/sync/singleflight"
)

// ErrIncompleteInsight indica uma resposta do provedor sem os campos obrigatórios
var ErrIncompleteInsight = errors.New("insight sem summary, trendAnalysis ou recommendations")

// cachedInsight guarda o insight de um upload específico do mês
type cachedInsight struct {
	createdAt int64
	insight   domain.AIInsight
}

// generated é o resultado compartilhado entre chamadas simultâneas do mesmo mês
type generated struct {
	insight  domain.AIInsight
	fallback bool
}

// Service implementa Insighter sobre um Generator
type Service struct {
	generator Generator

	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]cachedInsight
}

// NewService cria uma nova instância do serviço de insights.
// Com generator nil todas as análises retornam o insight de contingência.
func NewService(generator Generator) *Service {
	return &Service{
		generator: generator,
		cache:     make(map[string]cachedInsight),
	}
}

func (s *Service) Analyze(ctx context.Context, data *domain.MonthlyData) domain.AIInsight {
	insight, _ := s.generate(ctx, data)
	return insight
}

func (s *Service) Insight(ctx context.Context, data *domain.MonthlyData) *domain.InsightResponse {
	if cached, ok := s.cached(data); ok {
		metrics.InsightRequests.WithLabelValues("cached").Inc()
		return s.response(ctx, data, cached, false)
	}

	return s.load(ctx, data)
}

func (s *Service) Refresh(ctx context.Context, data *domain.MonthlyData) *domain.InsightResponse {
	s.Forget(data.ID)
	return s.load(ctx, data)
}

func (s *Service) Forget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.cache, id)
}

// load gera o insight com no máximo uma chamada em andamento por mês.
// A chamada compartilhada não herda o cancelamento de quem a iniciou; o timeout do cliente a limita.
func (s *Service) load(ctx context.Context, data *domain.MonthlyData) *domain.InsightResponse {
	callCtx := context.WithoutCancel(ctx)

	value, _, shared := s.group.Do(data.ID, func() (interface{}, error) {
		insight, ok := s.generate(callCtx, data)
		if ok {
			s.store(data, insight)
		}
		return generated{insight: insight, fallback: !ok}, nil
	})

	if shared {
		log.ForContext(ctx).WithField("month_id", data.ID).Debug("insights: resultado compartilhado com requisição em andamento")
	}

	result := value.(generated)
	return s.response(ctx, data, result.insight, result.fallback)
}

// generate chama o provedor e devolve o insight e se ele é válido
func (s *Service) generate(ctx context.Context, data *domain.MonthlyData) (domain.AIInsight, bool) {
	if data == nil {
		metrics.InsightRequests.WithLabelValues("fallback").Inc()
		return FallbackInsight(), false
	}

	logger := log.ForContext(ctx).WithField("month_id", data.ID)

	if s.generator == nil {
		metrics.InsightRequests.WithLabelValues("fallback").Inc()
		logger.Warn("insights: provedor não configurado, usando contingência")
		return FallbackInsight(), false
	}

	start := time.Now()
	insight, err := s.generator.GenerateInsight(ctx, BuildRequest(data))
	metrics.InsightDuration.Observe(time.Since(start).Seconds())

	if err == nil && !isComplete(insight) {
		err = ErrIncompleteInsight
	}

	if err != nil {
		metrics.InsightRequests.WithLabelValues("fallback").Inc()
		logger.WithError(err).Error("insights: falha ao gerar análise, usando contingência")
		return FallbackInsight(), false
	}

	metrics.InsightRequests.WithLabelValues("success").Inc()
	logger.WithField("recommendations", len(insight.Recommendations)).Info("insights: análise gerada")

	return *insight, true
}

func (s *Service) cached(data *domain.MonthlyData) (domain.AIInsight, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.cache[data.ID]
	if !ok || entry.createdAt != data.CreatedAt {
		return domain.AIInsight{}, false
	}
	return entry.insight, true
}

func (s *Service) store(data *domain.MonthlyData, insight domain.AIInsight) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[data.ID] = cachedInsight{createdAt: data.CreatedAt, insight: insight}
}

func (s *Service) response(ctx context.Context, data *domain.MonthlyData, insight domain.AIInsight, fallback bool) *domain.InsightResponse {
	requestID, err := utils.GenerateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("insights: falha ao gerar request_id")
	}

	return &domain.InsightResponse{
		RequestID: requestID,
		MonthID:   data.ID,
		Fallback:  fallback,
		Insight:   insight,
	}
}
