package handler

import (
	"net/http"

	"github.com/vfg2006/protrack-api/internal/usecases/insighting"
	"github.com/vfg2006/protrack-api/internal/usecases/reporting"
	"github.com/vfg2006/protrack-api/pkg/log"
)

// GetMonthInsight devolve o insight do mês; falhas do provedor viram o insight de contingência com status 200
func GetMonthInsight(reporter reporting.Reporter, insighter insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := reporter.Get(monthID(r))
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		response := insighter.Insight(r.Context(), data)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"month_id":   data.ID,
			"request_id": response.RequestID,
			"fallback":   response.Fallback,
		}).Info("insights: insight entregue")

		writeJSON(w, r, http.StatusOK, response)
	})
}

func RefreshMonthInsight(reporter reporting.Reporter, insighter insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := reporter.Get(monthID(r))
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, insighter.Refresh(r.Context(), data))
	})
}
