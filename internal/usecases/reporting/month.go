package reporting

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidMonthKey verifica se a chave está no formato yyyy-mm
func ValidMonthKey(key string) bool {
	return monthKeyPattern.MatchString(key)
}

// MonthName gera o nome de exibição do mês, ex: "2023-10" -> "October 2023".
// Meses fora do intervalo são normalizados pelo calendário ("2024-13" -> "January 2025").
func MonthName(key string) string {
	parts := strings.Split(key, "-")
	if len(parts) < 2 {
		return key
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return key
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return key
	}

	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// MonthsBefore retorna a chave yyyy-mm de n meses antes de ref
func MonthsBefore(ref time.Time, n int) string {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return first.AddDate(0, -n, 0).Format("2006-01")
}
