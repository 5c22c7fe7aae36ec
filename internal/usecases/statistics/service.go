package statistics

import (
	"github.com/vfg2006/protrack-api/internal/domain"
	"github.com/vfg2006/protrack-api/pkg/utils"
)

// Paleta usada pelo front para as barras e fatias, na ordem dos registros
var chartPalette = []string{"#3b82f6", "#10b981", "#f59e0b", "#8b5cf6", "#ef4444", "#06b6d4"}

// Compute calcula as métricas agregadas de um mês a partir dos registros
func Compute(records []domain.ProductionRecord) domain.Stats {
	if len(records) == 0 {
		return domain.Stats{TopPerformer: domain.NoTopPerformer}
	}

	total := 0.0
	maxValue := records[0].Value
	minValue := records[0].Value
	for _, record := range records {
		total += record.Value
		if record.Value > maxValue {
			maxValue = record.Value
		}
		if record.Value < minValue {
			minValue = record.Value
		}
	}

	// Empate no máximo: vence o primeiro na ordem do arquivo
	topPerformer := domain.NoTopPerformer
	for _, record := range records {
		if record.Value == maxValue {
			topPerformer = record.Name
			break
		}
	}

	return domain.Stats{
		Total:        total,
		Average:      total / float64(len(records)),
		Max:          maxValue,
		Min:          minValue,
		Count:        len(records),
		TopPerformer: topPerformer,
	}
}

// Breakdown retorna a participação percentual (duas casas) de cada registro no total
func Breakdown(records []domain.ProductionRecord) []domain.RecordShare {
	total := Compute(records).Total

	shares := make([]domain.RecordShare, 0, len(records))
	for i, record := range records {
		share := 0.0
		if total > 0 {
			share = utils.RoundWithTwoDecimalPlace(record.Value / total * 100)
		}

		shares = append(shares, domain.RecordShare{
			Name:         record.Name,
			Value:        record.Value,
			SharePercent: share,
			Color:        chartPalette[i%len(chartPalette)],
		})
	}

	return shares
}

// BuildDashboard monta a visão completa de um mês. Nada aqui é cacheado.
func BuildDashboard(data *domain.MonthlyData) *domain.Dashboard {
	return &domain.Dashboard{
		Data:      data,
		Stats:     Compute(data.Records),
		Breakdown: Breakdown(data.Records),
	}
}
