package domain

// ProductionRecord representa uma linha válida do relatório de produção (coluna A: nome, coluna B: valor)
type ProductionRecord struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
