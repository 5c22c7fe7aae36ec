package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/protrack-api/internal/scheduler"
	"github.com/vfg2006/protrack-api/pkg/apiErrors"
	"github.com/vfg2006/protrack-api/pkg/log"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypeRetention = "retention"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	RetentionService *scheduler.RetentionService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeRetention:
			if services.RetentionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retenção não disponível", nil)
				return
			}
			services.RetentionService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: retention", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("cron: execução manual solicitada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.RetentionService != nil {
			status[CronJobTypeRetention] = services.RetentionService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
