package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/protrack-api/internal/usecases/authenticating"
	"github.com/vfg2006/protrack-api/pkg/apiErrors"
	"github.com/vfg2006/protrack-api/pkg/log"
	"github.com/vfg2006/protrack-api/pkg/validation"
)

type LoginRequest struct {
	Password string `json:"password" validate:"required,max=72"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := validation.ValidateStruct(&req); err != nil {
			writeValidationError(w, err)
			return
		}

		token, err := service.Login(req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("auth: erro inesperado no login")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
}
