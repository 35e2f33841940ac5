package http

import (
	"encoding/json"
	"net/http"

	"github.com/restotrack/personnel-backend-go/internal/domain/auth"
	"github.com/restotrack/personnel-backend-go/internal/handler/http/response"
	authService "github.com/restotrack/personnel-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService authService.AuthService
}

func NewAuthHandler(service authService.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: service}
}

func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
