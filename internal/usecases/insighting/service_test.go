package insighting

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/protrack-api/internal/domain"
	"github.com/vfg2006/protrack-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func sampleMonth() *domain.MonthlyData {
	return &domain.MonthlyData{
		ID:        "2024-03",
		MonthName: "March 2024",
		CreatedAt: 1710000000000,
		Records: []domain.ProductionRecord{
			{Name: "Alice", Value: 1250.5},
			{Name: "Bob", Value: 100},
		},
	}
}

func validInsight() *domain.AIInsight {
	return &domain.AIInsight{
		Summary:         "Produção concentrada em Alice.",
		TrendAnalysis:   "Alice responde por 92% do total.",
		Recommendations: []string{"Distribuir carga", "Treinar Bob"},
	}
}

func TestBuildRequest(t *testing.T) {
	req := BuildRequest(sampleMonth())

	assert.Equal(t, domain.InsightRequest{
		MonthLabel:       "March 2024",
		RecordsFlattened: "Alice: 1250.5, Bob: 100",
	}, req)
}

func TestBuildRequest_SemRegistros(t *testing.T) {
	req := BuildRequest(&domain.MonthlyData{MonthName: "May 2024"})

	assert.Equal(t, "", req.RecordsFlattened)
}

func TestFallbackInsight(t *testing.T) {
	insight := FallbackInsight()

	assert.Equal(t, "We encountered an issue generating your custom AI analysis. This could be due to API availability or data complexity.", insight.Summary)
	assert.Equal(t, "Unable to calculate automated trends at this time.", insight.TrendAnalysis)
	require.Len(t, insight.Recommendations, 3)
	assert.Equal(t, "Review the raw data table below for manual insights.", insight.Recommendations[0])
	assert.Equal(t, "Check your internet connection and try refreshing the dashboard.", insight.Recommendations[1])
	assert.Equal(t, "Ensure the uploaded data contains valid numerical values.", insight.Recommendations[2])

	// Alterar a cópia não afeta chamadas seguintes
	insight.Recommendations[0] = "x"
	assert.Equal(t, "Review the raw data table below for manual insights.", FallbackInsight().Recommendations[0])
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name         string
		insight      *domain.AIInsight
		err          error
		wantFallback bool
	}{
		{
			name:    "resposta válida",
			insight: validInsight(),
		},
		{
			name:         "timeout do provedor",
			err:          context.DeadlineExceeded,
			wantFallback: true,
		},
		{
			name:         "json malformado",
			err:          errors.New("invalid character '}' looking for beginning of value"),
			wantFallback: true,
		},
		{
			name:         "resposta vazia",
			wantFallback: true,
		},
		{
			name:         "summary ausente",
			insight:      &domain.AIInsight{TrendAnalysis: "x", Recommendations: []string{}},
			wantFallback: true,
		},
		{
			name:         "recommendations ausente",
			insight:      &domain.AIInsight{Summary: "x", TrendAnalysis: "y"},
			wantFallback: true,
		},
		{
			name:    "recommendations vazia é aceita",
			insight: &domain.AIInsight{Summary: "x", TrendAnalysis: "y", Recommendations: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			generator := mocks.NewMockGenerator(ctrl)

			generator.EXPECT().
				GenerateInsight(gomock.Any(), BuildRequest(sampleMonth())).
				Return(tt.insight, tt.err)

			service := NewService(generator)
			result := service.Analyze(context.Background(), sampleMonth())

			if tt.wantFallback {
				assert.Equal(t, FallbackInsight(), result)
				return
			}
			assert.Equal(t, *tt.insight, result)
		})
	}
}

func TestAnalyze_SemProvedor(t *testing.T) {
	service := NewService(nil)

	result := service.Analyze(context.Background(), sampleMonth())

	assert.Equal(t, FallbackInsight(), result)
	assert.Len(t, result.Recommendations, 3)
}

func TestInsight_UsaCacheParaMesmoUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mocks.NewMockGenerator(ctrl)

	generator.EXPECT().GenerateInsight(gomock.Any(), gomock.Any()).Return(validInsight(), nil).Times(1)

	service := NewService(generator)
	ctx := context.Background()

	first := service.Insight(ctx, sampleMonth())
	second := service.Insight(ctx, sampleMonth())

	assert.False(t, first.Fallback)
	assert.Equal(t, "2024-03", first.MonthID)
	assert.Equal(t, first.Insight, second.Insight)
	assert.NotEmpty(t, first.RequestID)
}

func TestInsight_NovoUploadInvalidaCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mocks.NewMockGenerator(ctrl)

	generator.EXPECT().GenerateInsight(gomock.Any(), gomock.Any()).Return(validInsight(), nil).Times(2)

	service := NewService(generator)
	ctx := context.Background()

	service.Insight(ctx, sampleMonth())

	reuploaded := sampleMonth()
	reuploaded.CreatedAt++
	service.Insight(ctx, reuploaded)
}

func TestInsight_FallbackNaoEntraNoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mocks.NewMockGenerator(ctrl)

	gomock.InOrder(
		generator.EXPECT().GenerateInsight(gomock.Any(), gomock.Any()).Return(nil, errors.New("503")),
		generator.EXPECT().GenerateInsight(gomock.Any(), gomock.Any()).Return(validInsight(), nil),
	)

	service := NewService(generator)
	ctx := context.Background()

	first := service.Insight(ctx, sampleMonth())
	second := service.Insight(ctx, sampleMonth())

	assert.True(t, first.Fallback)
	assert.False(t, second.Fallback)
	assert.Equal(t, *validInsight(), second.Insight)
}

func TestRefreshEForget(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mocks.NewMockGenerator(ctrl)

	generator.EXPECT().GenerateInsight(gomock.Any(), gomock.Any()).Return(validInsight(), nil).Times(3)

	service := NewService(generator)
	ctx := context.Background()

	service.Insight(ctx, sampleMonth())
	service.Refresh(ctx, sampleMonth())

	service.Forget("2024-03")
	service.Insight(ctx, sampleMonth())
}

func TestInsight_UmaRequisicaoPorMes(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mocks.NewMockGenerator(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	generator.EXPECT().
		GenerateInsight(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.InsightRequest) (*domain.AIInsight, error) {
			close(started)
			<-release
			return validInsight(), nil
		}).
		Times(1)

	service := NewService(generator)
	ctx := context.Background()

	var wg sync.WaitGroup
	responses := make([]*domain.InsightResponse, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		responses[0] = service.Insight(ctx, sampleMonth())
	}()
	<-started

	wg.Add(1)
	go func() {
		defer wg.Done()
		responses[1] = service.Refresh(ctx, sampleMonth())
	}()

	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, responses[0].Insight, responses[1].Insight)
	assert.False(t, responses[1].Fallback)
}

func TestInsight_CancelamentoDoChamadorNaoInterrompeGeracao(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mocks.NewMockGenerator(ctrl)

	generator.EXPECT().
		GenerateInsight(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.InsightRequest) (*domain.AIInsight, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return validInsight(), nil
		}).
		Times(1)

	service := NewService(generator)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	first := service.Insight(ctx, sampleMonth())
	second := service.Insight(context.Background(), sampleMonth())

	assert.False(t, first.Fallback)
	assert.Equal(t, *validInsight(), first.Insight)
	assert.Equal(t, first.Insight, second.Insight)
}
