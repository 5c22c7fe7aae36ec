package insighting

import (
	"context"

	"github.com/vfg2006/protrack-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/generator_mock.go -package=mocks

// Generator é o colaborador externo que produz a análise textual de um mês
type Generator interface {
	// GenerateInsight envia o pedido ao provedor e devolve a análise já decodificada
	GenerateInsight(ctx context.Context, req domain.InsightRequest) (*domain.AIInsight, error)
}

// Insighter define as operações de insight expostas para a API
type Insighter interface {
	// Analyze nunca falha: qualquer erro vira o insight de contingência
	Analyze(ctx context.Context, data *domain.MonthlyData) domain.AIInsight

	// Insight devolve o insight do mês, usando o cache quando o upload não mudou
	Insight(ctx context.Context, data *domain.MonthlyData) *domain.InsightResponse

	// Refresh ignora o cache e gera o insight novamente
	Refresh(ctx context.Context, data *domain.MonthlyData) *domain.InsightResponse

	// Forget descarta o cache de um mês removido
	Forget(id string)
}
