package handler

import (
	"io"
	"mime"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/protrack-api/internal/domain"
	"github.com/vfg2006/protrack-api/internal/usecases/reporting"
	"github.com/vfg2006/protrack-api/pkg/apiErrors"
	"github.com/vfg2006/protrack-api/pkg/log"
	"github.com/vfg2006/protrack-api/pkg/validation"
)

// MaxUploadBytes limita o corpo do upload (JSON ou multipart)
const MaxUploadBytes = 5 << 20

type UploadRequest struct {
	Month   string `json:"month" validate:"max=32"`
	Content string `json:"content" validate:"max=5242880"`
}

type MonthListResponse struct {
	Months     []domain.MonthSummary `json:"months"`
	SelectedID string                `json:"selected_id"`
}

type DeleteMonthResponse struct {
	Deleted    string `json:"deleted"`
	SelectedID string `json:"selected_id"`
}

func ListMonths(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		months := service.List()

		response := MonthListResponse{
			Months: make([]domain.MonthSummary, 0, len(months)),
		}
		for _, month := range months {
			response.Months = append(response.Months, month.Summary())
		}
		if selected := service.Selected(); selected != nil {
			response.SelectedID = selected.ID
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

// UploadMonth aceita JSON {month, content} ou multipart com os campos month e file
func UploadMonth(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)

		req, err := decodeUpload(r)
		if err != nil {
			logger.WithError(err).Warn("upload: requisição inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := validation.ValidateStruct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		result, err := service.Upload(r.Context(), req.Month, req.Content)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, result)
	})
}

func decodeUpload(r *http.Request) (*UploadRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType != "multipart/form-data" {
		var req UploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar JSON")
		}
		return &req, nil
	}

	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		return nil, errors.Wrap(err, "erro ao ler formulário")
	}

	req := &UploadRequest{Month: r.FormValue("month")}

	file, _, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		// Sem arquivo o conteúdo pode vir como campo de texto
		req.Content = r.FormValue("content")
		return req, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir arquivo")
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler arquivo")
	}
	req.Content = string(raw)

	return req, nil
}

func GetMonth(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := service.Get(monthID(r))
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, data)
	})
}

func DeleteMonth(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := monthID(r)

		selectedID, err := service.Delete(r.Context(), id)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, DeleteMonthResponse{
			Deleted:    id,
			SelectedID: selectedID,
		})
	})
}

func GetMonthStats(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.Stats(monthID(r))
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, stats)
	})
}

func GetMonthDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := service.Dashboard(monthID(r))
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, dashboard)
	})
}

func monthID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}
