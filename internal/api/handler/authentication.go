package handler

import (
	"errors"
	"net/http"

	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/internal/usecases/authenticating"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/apiErrors"
	"github.com/Carmonaag/Dashboard-Analitico-de-Vendas/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("login: falha na autenticação")
			handleLoginError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, LoginResponse{Token: token})
	}
}

// handleLoginError traduz o erro de autenticação para a resposta da API
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		return
	}

	switch {
	case authenticating.IsCredentialsError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}
