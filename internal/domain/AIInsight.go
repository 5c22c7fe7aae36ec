package domain

// AIInsight é a análise textual gerada pelo provedor de IA
type AIInsight struct {
	Summary         string   `json:"summary"`
	TrendAnalysis   string   `json:"trendAnalysis"`
	Recommendations []string `json:"recommendations"`
}

// InsightRequest é o payload enviado ao provedor de IA
type InsightRequest struct {
	MonthLabel       string `json:"monthLabel"`
	RecordsFlattened string `json:"recordsFlattened"`
}

// InsightResponse é a resposta da API de insights de um mês
type InsightResponse struct {
	RequestID string    `json:"request_id"`
	MonthID   string    `json:"month_id"`
	Fallback  bool      `json:"fallback"`
	Insight   AIInsight `json:"insight"`
}
