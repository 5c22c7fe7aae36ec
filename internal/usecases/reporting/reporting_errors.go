package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/protrack-api/internal/usecases/parsing"
)

// Erros do upload e da consulta de meses. As mensagens são exibidas como estão para o usuário.
var (
	ErrMissingMonth   = errors.New("Please select a month.")
	ErrInvalidMonth   = errors.New("Invalid month. Use the YYYY-MM format.")
	ErrEmptyContent   = errors.New("Please provide data content.")
	ErrNoValidRecords = parsing.ErrNoValidRecords
	ErrMonthNotFound  = errors.New("month not found")
)

// ReportError é um erro com o código de API correspondente
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	MonthID string // Mês envolvido (quando aplicável)
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.MonthID != "" {
		return fmt.Sprintf("%s: %s", e.MonthID, e.Err.Error())
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um novo ReportError
func NewReportError(err error, code string, monthID string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		MonthID: monthID,
	}
}
