package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/restotrack/personnel-backend-go/internal/domain/adjustment"
	"github.com/restotrack/personnel-backend-go/internal/handler/http/middleware"
	"github.com/restotrack/personnel-backend-go/internal/handler/http/response"
	adjustmentService "github.com/restotrack/personnel-backend-go/internal/service/adjustment"
)

type AdjustmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AdjustmentHandlerImpl struct {
	adjustmentService adjustmentService.AdjustmentService
}

func NewAdjustmentHandler(service adjustmentService.AdjustmentService) AdjustmentHandler {
	return &AdjustmentHandlerImpl{adjustmentService: service}
}

func (h *AdjustmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req adjustment.CreateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.CreatedBy == "" {
		req.CreatedBy = middleware.UserID(r)
	}

	resp, err := h.adjustmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment created successfully", resp)
}

func (h *AdjustmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Adjustment ID is required", nil)
		return
	}

	resp, err := h.adjustmentService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *AdjustmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	personnelID := r.URL.Query().Get("personnel_id")
	if personnelID == "" {
		response.BadRequest(w, "personnel_id query parameter is required", nil)
		return
	}

	resp, err := h.adjustmentService.List(r.Context(), personnelID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
