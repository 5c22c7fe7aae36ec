package insighting

import (
	"strconv"
	"strings"

	"github.com/vfg2006/protrack-api/internal/domain"
)

const (
	fallbackSummary       = "We encountered an issue generating your custom AI analysis. This could be due to API availability or data complexity."
	fallbackTrendAnalysis = "Unable to calculate automated trends at this time."
)

var fallbackRecommendations = []string{
	"Review the raw data table below for manual insights.",
	"Check your internet connection and try refreshing the dashboard.",
	"Ensure the uploaded data contains valid numerical values.",
}

// BuildRequest achata os registros no formato "nome: valor" separados por ", "
func BuildRequest(data *domain.MonthlyData) domain.InsightRequest {
	parts := make([]string, 0, len(data.Records))
	for _, record := range data.Records {
		parts = append(parts, record.Name+": "+strconv.FormatFloat(record.Value, 'f', -1, 64))
	}

	return domain.InsightRequest{
		MonthLabel:       data.MonthName,
		RecordsFlattened: strings.Join(parts, ", "),
	}
}

// FallbackInsight é a análise exibida quando o provedor não responde direito
func FallbackInsight() domain.AIInsight {
	recommendations := make([]string, len(fallbackRecommendations))
	copy(recommendations, fallbackRecommendations)

	return domain.AIInsight{
		Summary:         fallbackSummary,
		TrendAnalysis:   fallbackTrendAnalysis,
		Recommendations: recommendations,
	}
}

// isComplete confere o formato mínimo aceito de um insight
func isComplete(insight *domain.AIInsight) bool {
	return insight != nil &&
		strings.TrimSpace(insight.Summary) != "" &&
		strings.TrimSpace(insight.TrendAnalysis) != "" &&
		insight.Recommendations != nil
}
