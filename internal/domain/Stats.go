package domain

// NoTopPerformer é o valor de TopPerformer quando não existem registros
const NoTopPerformer = "None"

// Stats são as métricas agregadas de um mês. Nunca são persistidas.
type Stats struct {
	Total        float64 `json:"total"`
	Average      float64 `json:"average"`
	Max          float64 `json:"max"`
	Min          float64 `json:"min"`
	Count        int     `json:"count"`
	TopPerformer string  `json:"topPerformer"`
}

// RecordShare representa a participação de um registro no total do mês
type RecordShare struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	SharePercent float64 `json:"sharePercent"`
	Color        string  `json:"color"`
}

// Dashboard agrupa tudo que a tela de um mês precisa
type Dashboard struct {
	Data      *MonthlyData  `json:"data"`
	Stats     Stats         `json:"stats"`
	Breakdown []RecordShare `json:"breakdown"`
}
