package reporting

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/protrack-api/internal/domain"
	"github.com/vfg2006/protrack-api/internal/usecases/parsing"
	"github.com/vfg2006/protrack-api/pkg/apiErrors"
)

func newTestService(t *testing.T) *Service {
	store, _ := newTestStore(t, nil)
	return NewService(store, parsing.NewParser())
}

func TestService_UploadErrors(t *testing.T) {
	tests := []struct {
		name     string
		month    string
		content  string
		wantErr  error
		wantCode string
	}{
		{
			name:     "mês não informado",
			month:    "   ",
			content:  "Alice,10",
			wantErr:  ErrMissingMonth,
			wantCode: apiErrors.ErrMissingMonth,
		},
		{
			name:     "mês em formato inválido",
			month:    "2024-13",
			content:  "Alice,10",
			wantErr:  ErrInvalidMonth,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:     "conteúdo vazio",
			month:    "2024-03",
			content:  "  \n\t ",
			wantErr:  ErrEmptyContent,
			wantCode: apiErrors.ErrEmptyContent,
		},
		{
			name:     "nenhum registro válido",
			month:    "2024-03",
			content:  "Name,Value\nAlice,abc\n,10",
			wantErr:  ErrNoValidRecords,
			wantCode: apiErrors.ErrNoValidRecords,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t)

			result, err := service.Upload(context.Background(), tt.month, tt.content)

			assert.Nil(t, result)
			require.ErrorIs(t, err, tt.wantErr)

			var reportErr *ReportError
			require.True(t, errors.As(err, &reportErr))
			assert.Equal(t, tt.wantCode, reportErr.Code)
			assert.Equal(t, tt.wantErr.Error(), reportErr.Err.Error())
			assert.Empty(t, service.List())
		})
	}
}

func TestService_UploadSuccess(t *testing.T) {
	service := newTestService(t)

	result, err := service.Upload(context.Background(), " 2024-03 ", "Name,Production\nAlice,100\nBob,n/a\nCarol,50.5")

	require.NoError(t, err)
	assert.Equal(t, 1, result.SkippedLines)
	assert.Equal(t, "2024-03", result.Data.ID)
	assert.Equal(t, "March 2024", result.Data.MonthName)
	assert.Equal(t, []domain.ProductionRecord{
		{Name: "Alice", Value: 100},
		{Name: "Carol", Value: 50.5},
	}, result.Data.Records)
	assert.Equal(t, "2024-03", service.Selected().ID)
}

func TestService_UploadReplacesMonth(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Upload(ctx, "2024-03", "Alice,1")
	require.NoError(t, err)
	_, err = service.Upload(ctx, "2024-03", "Bob,2\nCarol,3")
	require.NoError(t, err)

	data, err := service.Get("2024-03")
	require.NoError(t, err)
	assert.Len(t, service.List(), 1)
	assert.Equal(t, []domain.ProductionRecord{{Name: "Bob", Value: 2}, {Name: "Carol", Value: 3}}, data.Records)
}

func TestService_DeleteNotifiesListenersAndMovesSelection(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	for _, month := range []string{"2024-01", "2024-02", "2024-03"} {
		_, err := service.Upload(ctx, month, "Alice,1")
		require.NoError(t, err)
	}
	require.NoError(t, service.Select("2024-02"))

	var removed []string
	service.OnDelete(func(id string) { removed = append(removed, id) })

	selected, err := service.Delete(ctx, "2024-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-03", selected)
	assert.Equal(t, []string{"2024-02"}, removed)

	_, err = service.Delete(ctx, "2024-02")
	assert.ErrorIs(t, err, ErrMonthNotFound)
	assert.Equal(t, []string{"2024-02"}, removed)
}

func TestService_NotFound(t *testing.T) {
	service := newTestService(t)

	_, err := service.Get("2024-01")
	assert.ErrorIs(t, err, ErrMonthNotFound)

	_, err = service.Stats("2024-01")
	assert.ErrorIs(t, err, ErrMonthNotFound)

	_, err = service.Dashboard("2024-01")
	assert.ErrorIs(t, err, ErrMonthNotFound)

	err = service.Select("2024-01")
	var reportErr *ReportError
	require.True(t, errors.As(err, &reportErr))
	assert.Equal(t, apiErrors.ErrMonthNotFound, reportErr.Code)
}

func TestService_StatsAndDashboard(t *testing.T) {
	service := newTestService(t)

	_, err := service.Upload(context.Background(), "2024-05", "Alice,10\nBob,30\nCarol,20")
	require.NoError(t, err)

	stats, err := service.Stats("2024-05")
	require.NoError(t, err)
	assert.Equal(t, 60.0, stats.Total)
	assert.Equal(t, 20.0, stats.Average)
	assert.Equal(t, "Bob", stats.TopPerformer)

	dashboard, err := service.Dashboard("2024-05")
	require.NoError(t, err)
	assert.Equal(t, stats, dashboard.Stats)
	assert.Len(t, dashboard.Breakdown, 3)
	assert.Equal(t, "2024-05", dashboard.Data.ID)
}

func TestService_UploadConcorrenteComDelete(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]*UploadResult, 50)

	for i := range results {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			result, err := service.Upload(ctx, "2024-03", "Alice,1")
			assert.NoError(t, err)
			results[i] = result
		}(i)
		go func() {
			defer wg.Done()
			_, _ = service.Delete(ctx, "2024-03")
		}()
	}
	wg.Wait()

	for _, result := range results {
		require.NotNil(t, result.Data)
		assert.Equal(t, "2024-03", result.Data.ID)
		assert.Equal(t, []domain.ProductionRecord{{Name: "Alice", Value: 1}}, result.Data.Records)
	}
}
