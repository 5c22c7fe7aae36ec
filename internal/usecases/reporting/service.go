package reporting

import (
	"context"
	"errors"
	"strings"

	"github.com/vfg2006/protrack-api/internal/domain"
	"github.com/vfg2006/protrack-api/internal/usecases/parsing"
	"github.com/vfg2006/protrack-api/internal/usecases/statistics"
	"github.com/vfg2006/protrack-api/pkg/apiErrors"
	"github.com/vfg2006/protrack-api/pkg/log"
	"github.com/vfg2006/protrack-api/pkg/metrics"
)

// Reporter define as operações sobre os relatórios mensais
type Reporter interface {
	// Upload valida, faz o parse e grava o mês, substituindo um upload anterior do mesmo mês
	Upload(ctx context.Context, monthKey, content string) (*UploadResult, error)
	List() []*domain.MonthlyData
	Get(id string) (*domain.MonthlyData, error)
	// Delete remove o mês e retorna o id selecionado depois da remoção ("" quando vazio)
	Delete(ctx context.Context, id string) (string, error)
	Selected() *domain.MonthlyData
	Select(id string) error
	Stats(id string) (domain.Stats, error)
	Dashboard(id string) (*domain.Dashboard, error)
}

// UploadResult é o resultado de um upload bem sucedido
type UploadResult struct {
	Data         *domain.MonthlyData `json:"data"`
	SkippedLines int                 `json:"skipped_lines"`
}

// DeleteListener é avisado quando um mês deixa de existir
type DeleteListener func(id string)

// Service implementa Reporter sobre o Store
type Service struct {
	store     *Store
	parser    parsing.Parser
	listeners []DeleteListener
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(store *Store, parser parsing.Parser) *Service {
	return &Service{
		store:  store,
		parser: parser,
	}
}

// OnDelete registra um listener chamado após cada remoção
func (s *Service) OnDelete(listener DeleteListener) {
	s.listeners = append(s.listeners, listener)
}

func (s *Service) Upload(ctx context.Context, monthKey, content string) (*UploadResult, error) {
	logger := log.ForContext(ctx)
	monthKey = strings.TrimSpace(monthKey)

	if monthKey == "" {
		metrics.UploadsTotal.WithLabelValues("missing_month").Inc()
		return nil, NewReportError(ErrMissingMonth, apiErrors.ErrMissingMonth, "")
	}

	if !ValidMonthKey(monthKey) {
		metrics.UploadsTotal.WithLabelValues("invalid_month").Inc()
		return nil, NewReportError(ErrInvalidMonth, apiErrors.ErrInvalidFormat, monthKey)
	}

	if strings.TrimSpace(content) == "" {
		metrics.UploadsTotal.WithLabelValues("empty_content").Inc()
		return nil, NewReportError(ErrEmptyContent, apiErrors.ErrEmptyContent, monthKey)
	}

	result, err := s.parser.Parse(monthKey, content)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("no_valid_records").Inc()
		logger.WithField("month_id", monthKey).WithError(err).Warn("upload: nenhum registro válido")

		if errors.Is(err, parsing.ErrNoValidRecords) {
			return nil, NewReportError(err, apiErrors.ErrNoValidRecords, monthKey)
		}
		return nil, NewReportError(err, apiErrors.ErrInvalidFormat, monthKey)
	}

	entity := s.store.Upsert(ctx, monthKey, result.Records)

	metrics.UploadsTotal.WithLabelValues("success").Inc()
	metrics.UploadSkippedLines.Add(float64(result.SkippedLines))

	logger.WithFields(log.Fields{
		"month_id":             entity.ID,
		"upload_records":       len(result.Records),
		"upload_skipped_lines": result.SkippedLines,
	}).Info("upload: mês salvo com sucesso")

	return &UploadResult{
		Data:         entity,
		SkippedLines: result.SkippedLines,
	}, nil
}

func (s *Service) List() []*domain.MonthlyData {
	return s.store.List()
}

func (s *Service) Get(id string) (*domain.MonthlyData, error) {
	data := s.store.Get(id)
	if data == nil {
		return nil, NewReportError(ErrMonthNotFound, apiErrors.ErrMonthNotFound, id)
	}
	return data, nil
}

func (s *Service) Delete(ctx context.Context, id string) (string, error) {
	selectedID, ok := s.store.Delete(ctx, id)
	if !ok {
		return "", NewReportError(ErrMonthNotFound, apiErrors.ErrMonthNotFound, id)
	}

	for _, listener := range s.listeners {
		listener(id)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"month_id": id,
		"selected": selectedID,
	}).Info("months: mês removido")

	return selectedID, nil
}

func (s *Service) Selected() *domain.MonthlyData {
	return s.store.Selected()
}

func (s *Service) Select(id string) error {
	if err := s.store.Select(id); err != nil {
		return NewReportError(err, apiErrors.ErrMonthNotFound, id)
	}
	return nil
}

// Stats recalcula as métricas a cada chamada
func (s *Service) Stats(id string) (domain.Stats, error) {
	data, err := s.Get(id)
	if err != nil {
		return domain.Stats{}, err
	}
	return statistics.Compute(data.Records), nil
}

func (s *Service) Dashboard(id string) (*domain.Dashboard, error) {
	data, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return statistics.BuildDashboard(data), nil
}
