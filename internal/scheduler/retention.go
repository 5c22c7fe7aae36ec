package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/protrack-api/internal/config"
	"github.com/vfg2006/protrack-api/internal/domain"
	"github.com/vfg2006/protrack-api/internal/usecases/reporting"
	"github.com/vfg2006/protrack-api/pkg/log"
	"github.com/vfg2006/protrack-api/pkg/metrics"
)

// MonthRemover é o subconjunto do Reporter usado pela retenção
type MonthRemover interface {
	List() []*domain.MonthlyData
	Delete(ctx context.Context, id string) (string, error)
}

// RetentionService remove periodicamente os meses mais antigos que a janela configurada
type RetentionService struct {
	scheduler           *gocron.Scheduler
	config              config.Retention
	months              MonthRemover
	now                 func() time.Time
	runCtx              context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDeleted         []string
}

func NewRetentionService(months MonthRemover, cfg config.Retention) *RetentionService {
	log.L.WithFields(log.Fields{
		"cron_schedule":     cfg.CronSchedule,
		"retention_months":  cfg.Months,
		"retention_enabled": cfg.Enabled,
	}).Info("retention: configuração carregada")

	return &RetentionService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      cfg,
		months:      months,
		now:         time.Now,
		runCtx:      context.Background(),
		lastDeleted: []string{},
	}
}

// Start agenda a rotina; o agendador para quando ctx é cancelado
func (s *RetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("retention: rotina desabilitada por configuração")
		return nil
	}

	s.runCtx = ctx

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar rotina de retenção: %w", err)
	}

	s.scheduler.StartAsync()
	log.L.WithField("cron", s.config.CronSchedule).Info("retention: agendador iniciado")

	go func() {
		<-ctx.Done()
		log.L.Info("retention: parando agendador")
		s.scheduler.Stop()
	}()

	return nil
}

// Cutoff é o primeiro mês mantido; meses com id menor são removidos
func (s *RetentionService) Cutoff() string {
	return reporting.MonthsBefore(s.now(), s.config.Months)
}

// RunOnce executa a retenção de forma síncrona e retorna os ids removidos
func (s *RetentionService) RunOnce(ctx context.Context) ([]string, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return nil, fmt.Errorf("retenção já em andamento")
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if s.config.Months <= 0 {
		return []string{}, nil
	}

	cutoff := s.Cutoff()
	deleted := make([]string, 0)

	for _, month := range s.months.List() {
		if month.ID >= cutoff {
			continue
		}

		if _, err := s.months.Delete(ctx, month.ID); err != nil {
			log.ForContext(ctx).WithField("month_id", month.ID).WithError(err).Warn("retention: falha ao remover mês")
			continue
		}
		deleted = append(deleted, month.ID)
	}

	metrics.RetentionDeleted.Add(float64(len(deleted)))

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastDeleted = deleted
	s.syncMutex.Unlock()

	log.ForContext(ctx).WithFields(log.Fields{
		"cutoff":  cutoff,
		"deleted": len(deleted),
	}).Info("retention: rotina concluída")

	return deleted, nil
}

func (s *RetentionService) run(ctx context.Context) {
	if _, err := s.RunOnce(ctx); err != nil {
		log.L.WithError(err).Info("retention: execução ignorada")
	}
}

// TriggerManualSync dispara a retenção em background
func (s *RetentionService) TriggerManualSync() {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		log.L.Info("retention: rotina já em andamento, ignorando solicitação manual")
		return
	}

	log.L.Info("retention: execução manual iniciada")
	go s.run(s.runCtx)
}

// GetStatus retorna o status atual da rotina
func (s *RetentionService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"retention_months":       s.config.Months,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_deleted":           s.lastDeleted,
	}
}
