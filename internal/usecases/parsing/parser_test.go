package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/protrack-api/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expected    []domain.ProductionRecord
		skipped     int
		expectedErr error
	}{
		{
			name:    "Cabeçalho deve ser descartado",
			content: "Name,Production\nAlice,100\nBob,200",
			expected: []domain.ProductionRecord{
				{Name: "Alice", Value: 100},
				{Name: "Bob", Value: 200},
			},
		},
		{
			name:     "Valor deve ser sanitizado",
			content:  "Carol; $1250.50 units",
			expected: []domain.ProductionRecord{{Name: "Carol", Value: 1250.50}},
		},
		{
			name:     "Linha sem número deve ser ignorada",
			content:  "NoNumberHere,abc\nValid,42",
			expected: []domain.ProductionRecord{{Name: "Valid", Value: 42}},
			skipped:  1,
		},
		{
			name:        "Conteúdo sem segunda coluna deve falhar",
			content:     "JustOneColumn\nJustOneColumn",
			expectedErr: ErrNoValidRecords,
		},
		{
			name:        "Somente cabeçalho deve falhar",
			content:     "name;value\n",
			expectedErr: ErrNoValidRecords,
		},
		{
			name:    "Tab, CRLF e linhas vazias",
			content: "Line A\t10\r\n\r\n   \r\nLine B\t20.5\r\n",
			expected: []domain.ProductionRecord{
				{Name: "Line A", Value: 10},
				{Name: "Line B", Value: 20.5},
			},
		},
		{
			name:    "Aspas externas devem ser removidas",
			content: "\"Dana\",\"300\"\n\"Eve\" ; \"1.5\"",
			expected: []domain.ProductionRecord{
				{Name: "Dana", Value: 300},
				{Name: "Eve", Value: 1.5},
			},
		},
		{
			name:     "Nome vazio deve ser ignorado",
			content:  " ,100\n\"\",200\nFrank,300",
			expected: []domain.ProductionRecord{{Name: "Frank", Value: 300}},
			skipped:  2,
		},
		{
			name:     "Campo vazio entre separadores não é pulado",
			content:  "Gina,,100\nHank,5",
			expected: []domain.ProductionRecord{{Name: "Hank", Value: 5}},
			skipped:  1,
		},
		{
			name:     "Número com vírgula é dividido (limitação conhecida)",
			content:  "Ivy,1,250",
			expected: []domain.ProductionRecord{{Name: "Ivy", Value: 1}},
		},
		{
			name:    "Prefixo numérico válido como parseFloat",
			content: "Jack,1.2.3\nKim,.5\nLeo,7.\nMia,.",
			expected: []domain.ProductionRecord{
				{Name: "Jack", Value: 1.2},
				{Name: "Kim", Value: 0.5},
				{Name: "Leo", Value: 7},
			},
			skipped: 1,
		},
		{
			name:     "Sinal negativo é removido pela sanitização",
			content:  "Ned,-40",
			expected: []domain.ProductionRecord{{Name: "Ned", Value: 40}},
		},
		{
			name:    "Nomes duplicados são preservados",
			content: "Olga,1\nOlga,2",
			expected: []domain.ProductionRecord{
				{Name: "Olga", Value: 1},
				{Name: "Olga", Value: 2},
			},
		},
		{
			name:        "Conteúdo vazio falha",
			content:     "\n\n",
			expectedErr: ErrNoValidRecords,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse("2024-03", tt.content)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "2024-03", result.MonthKey)
			assert.Equal(t, tt.expected, result.Records)
			assert.Equal(t, tt.skipped, result.SkippedLines)
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	content := "Name,Production\nAlice,100\nBob,200\ninvalid\nCarol;300"

	first, err := NewParser().Parse("2023-10", content)
	require.NoError(t, err)

	second, err := NewParser().Parse("2023-10", content)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParse_HeaderOnlyOnFirstLine(t *testing.T) {
	result, err := Parse("2024-01", "Alice,10\nname of line,20")
	require.NoError(t, err)

	assert.Equal(t, []domain.ProductionRecord{
		{Name: "Alice", Value: 10},
		{Name: "name of line", Value: 20},
	}, result.Records)
}

func TestParse_ErrorMessage(t *testing.T) {
	_, err := Parse("2024-01", "abc")

	assert.EqualError(t, err, "No valid production records found. Ensure Column A has names and Column B has numbers.")
}

func TestParse_RemoveBOM(t *testing.T) {
	result, err := Parse("2024-03", "\uFEFFAlice,10\nBob,20")
	require.NoError(t, err)

	assert.Equal(t, []domain.ProductionRecord{
		{Name: "Alice", Value: 10},
		{Name: "Bob", Value: 20},
	}, result.Records)
	assert.Equal(t, 0, result.SkippedLines)
}

func TestParse_BOMNasPontasDoCampo(t *testing.T) {
	result, err := Parse("2024-03", "Alice,10\n\uFEFF Bob \uFEFF,20")
	require.NoError(t, err)

	assert.Equal(t, "Bob", result.Records[1].Name)
}
