package domain

// MonthlyData representa o conjunto de registros de produção de um mês
type MonthlyData struct {
	ID        string             `json:"id"`        // Mês no formato yyyy-mm
	MonthName string             `json:"monthName"` // Ex: "October 2023"
	Records   []ProductionRecord `json:"records"`
	CreatedAt int64              `json:"createdAt"` // Epoch em milissegundos
}

// MonthSummary é a versão resumida de MonthlyData usada na listagem de meses
type MonthSummary struct {
	ID        string `json:"id"`
	MonthName string `json:"monthName"`
	CreatedAt int64  `json:"createdAt"`
	Count     int    `json:"count"`
}

// Summary retorna o resumo do mês para a listagem
func (m *MonthlyData) Summary() MonthSummary {
	return MonthSummary{
		ID:        m.ID,
		MonthName: m.MonthName,
		CreatedAt: m.CreatedAt,
		Count:     len(m.Records),
	}
}
