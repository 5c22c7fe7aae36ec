package handler

import (
	"net/http"
	"time"
)

// HealthcheckHandler responde com o horário atual e a quantidade de meses carregados
func HealthcheckHandler(months func() int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
			"months": months(),
		})
	})
}
