package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/protrack-api/internal/usecases/reporting"
	"github.com/vfg2006/protrack-api/pkg/apiErrors"
	"github.com/vfg2006/protrack-api/pkg/log"
	"github.com/vfg2006/protrack-api/pkg/validation"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("http: erro ao codificar resposta")
	}
}

// writeReportError traduz erros dos relatórios; a mensagem do erro base vai como está para o usuário
func writeReportError(w http.ResponseWriter, r *http.Request, err error) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		apiErrors.WriteError(w, reportErr.Code, reportErr.Err.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("http: erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}

func writeValidationError(w http.ResponseWriter, err error) {
	var validationErr *validation.RequestValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Error(), validationErr.Fields)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
}
