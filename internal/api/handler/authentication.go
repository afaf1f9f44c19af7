package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/internal/usecases/authenticating"
	"github.com/vfg2006/profitability-api/pkg/apiErrors"
	"github.com/vfg2006/profitability-api/pkg/middleware"
)

type LoginRequest struct {
	Email string `json:"email"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := decodeJSON(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, user, err := service.Login(req.Email)
		if err != nil {
			logrus.WithError(err).Warn("Falha no login")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: user})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, http.StatusOK, service.Profile(claims))
	}
}
