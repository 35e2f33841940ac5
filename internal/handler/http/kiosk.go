package http

import (
	"encoding/json"
	"net/http"

	"github.com/restotrack/personnel-backend-go/internal/domain/kiosk"
	"github.com/restotrack/personnel-backend-go/internal/handler/http/response"
	kioskService "github.com/restotrack/personnel-backend-go/internal/service/kiosk"
)

type KioskHandler interface {
	GenerateToken(w http.ResponseWriter, r *http.Request)
	CreateLocation(w http.ResponseWriter, r *http.Request)
	ListLocations(w http.ResponseWriter, r *http.Request)
}

type KioskHandlerImpl struct {
	kioskService kioskService.KioskService
}

func NewKioskHandler(service kioskService.KioskService) KioskHandler {
	return &KioskHandlerImpl{kioskService: service}
}

func (h *KioskHandlerImpl) GenerateToken(w http.ResponseWriter, r *http.Request) {
	var req kiosk.GenerateTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.kioskService.GenerateToken(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Token generated successfully", resp)
}

func (h *KioskHandlerImpl) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req kiosk.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.kioskService.CreateLocation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Location created successfully", resp)
}

func (h *KioskHandlerImpl) ListLocations(w http.ResponseWriter, r *http.Request) {
	resp, err := h.kioskService.ListLocations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
