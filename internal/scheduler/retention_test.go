package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/protrack-api/infrastructure/repository"
	"github.com/vfg2006/protrack-api/internal/config"
	"github.com/vfg2006/protrack-api/internal/usecases/parsing"
	"github.com/vfg2006/protrack-api/internal/usecases/reporting"
)

func newReporter(t *testing.T, months ...string) *reporting.Service {
	persister := repository.NewMonthlyDataRepository(repository.NewMemoryBlobRepository(), "k")
	store := reporting.NewStore(context.Background(), persister)
	service := reporting.NewService(store, parsing.NewParser())

	for _, month := range months {
		_, err := service.Upload(context.Background(), month, "Alice,1")
		require.NoError(t, err)
	}
	return service
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
}

func TestRetention_RunOnce(t *testing.T) {
	reporter := newReporter(t, "2022-12", "2023-05", "2023-06", "2024-01", "2024-06")
	require.NoError(t, reporter.Select("2023-05"))

	service := NewRetentionService(reporter, config.Retention{Months: 12, Enabled: true, CronSchedule: "0 2 1 * *"})
	service.now = fixedNow

	var forgotten []string
	reporter.OnDelete(func(id string) { forgotten = append(forgotten, id) })

	deleted, err := service.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2023-06", service.Cutoff())
	assert.Equal(t, []string{"2023-05", "2022-12"}, deleted)
	assert.Equal(t, deleted, forgotten)

	ids := make([]string, 0)
	for _, month := range reporter.List() {
		ids = append(ids, month.ID)
	}
	assert.Equal(t, []string{"2024-06", "2024-01", "2023-06"}, ids)

	// A seleção removida cai para o mês mais recente
	assert.Equal(t, "2024-06", reporter.Selected().ID)

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, deleted, status["last_deleted"])
}

func TestRetention_SemJanela(t *testing.T) {
	reporter := newReporter(t, "2000-01")
	service := NewRetentionService(reporter, config.Retention{})

	deleted, err := service.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Empty(t, deleted)
	assert.Len(t, reporter.List(), 1)
}

func TestRetention_StartDesabilitado(t *testing.T) {
	service := NewRetentionService(newReporter(t), config.Retention{Enabled: false})

	assert.NoError(t, service.Start(context.Background()))
}

func TestRetention_CronInvalido(t *testing.T) {
	service := NewRetentionService(newReporter(t), config.Retention{Enabled: true, Months: 1, CronSchedule: "not a cron"})

	assert.Error(t, service.Start(context.Background()))
}

var _ MonthRemover = (*reporting.Service)(nil)
