package parsing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/vfg2006/protrack-api/internal/domain"
)

// Palavras que identificam uma linha de cabeçalho
var headerKeywords = []string{"name", "production", "value"}

var lineBreak = regexp.MustCompile(`\r?\n`)

const byteOrderMark = "\uFEFF"

// trim remove espaços Unicode e o BOM das pontas
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// Parser transforma o conteúdo bruto de um upload em registros de produção
type Parser interface {
	Parse(monthKey, content string) (*Result, error)
}

// Result é o resultado de um parse bem sucedido
type Result struct {
	MonthKey     string
	Records      []domain.ProductionRecord
	SkippedLines int // Linhas descartadas silenciosamente (sem contar o cabeçalho)
}

type recordParser struct{}

// NewParser cria o parser de registros delimitados por vírgula, ponto e vírgula ou tab
func NewParser() Parser {
	return &recordParser{}
}

func (p *recordParser) Parse(monthKey, content string) (*Result, error) {
	return Parse(monthKey, content)
}

// Parse converte o conteúdo em registros. O monthKey não é validado aqui.
func Parse(monthKey, content string) (*Result, error) {
	content = strings.TrimPrefix(content, byteOrderMark)

	lines := make([]string, 0)
	for _, line := range lineBreak.Split(content, -1) {
		if trim(line) != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) > 0 && isHeader(lines[0]) {
		lines = lines[1:]
	}

	result := &Result{
		MonthKey: monthKey,
		Records:  make([]domain.ProductionRecord, 0, len(lines)),
	}

	for _, line := range lines {
		record, ok := parseLine(line)
		if !ok {
			result.SkippedLines++
			continue
		}
		result.Records = append(result.Records, record)
	}

	if len(result.Records) == 0 {
		return nil, ErrNoValidRecords
	}

	return result, nil
}

func isHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range headerKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func parseLine(line string) (domain.ProductionRecord, bool) {
	fields := splitFields(line)
	if len(fields) < 2 {
		return domain.ProductionRecord{}, false
	}

	name := fields[0]
	value, ok := parseValue(fields[1])
	if trim(name) == "" || !ok {
		return domain.ProductionRecord{}, false
	}

	return domain.ProductionRecord{Name: name, Value: value}, true
}

// splitFields divide a linha em qualquer vírgula, ponto e vírgula ou tab, mantendo campos vazios
func splitFields(line string) []string {
	fields := make([]string, 0, 2)
	start := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ',', ';', '\t':
			fields = append(fields, cleanField(line[start:i]))
			start = i + 1
		}
	}
	return append(fields, cleanField(line[start:]))
}

func cleanField(field string) string {
	field = trim(field)
	field = strings.TrimPrefix(field, `"`)
	return strings.TrimSuffix(field, `"`)
}

// parseValue remove tudo que não é dígito ou ponto e lê o maior prefixo numérico válido
func parseValue(raw string) (float64, bool) {
	sanitized := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, raw)

	end, digits, dot := 0, 0, false
	for ; end < len(sanitized); end++ {
		if sanitized[end] == '.' {
			if dot {
				break
			}
			dot = true
			continue
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}

	value, err := strconv.ParseFloat(sanitized[:end], 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}
