package handler

import (
	"net/http"

	"github.com/vfg2006/protrack-api/internal/domain"
	"github.com/vfg2006/protrack-api/internal/usecases/reporting"
	"github.com/vfg2006/protrack-api/pkg/apiErrors"
	"github.com/vfg2006/protrack-api/pkg/validation"
)

type SelectionRequest struct {
	ID string `json:"id" validate:"required"`
}

type SelectionResponse struct {
	SelectedID string              `json:"selected_id"`
	Data       *domain.MonthlyData `json:"data"`
}

func GetSelection(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := SelectionResponse{}
		if selected := service.Selected(); selected != nil {
			response.SelectedID = selected.ID
			response.Data = selected
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

func UpdateSelection(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req SelectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := validation.ValidateStruct(&req); err != nil {
			writeValidationError(w, err)
			return
		}

		if err := service.Select(req.ID); err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, SelectionResponse{
			SelectedID: req.ID,
			Data:       service.Selected(),
		})
	})
}
