package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/restotrack/personnel-backend-go/internal/domain/absence"
	"github.com/restotrack/personnel-backend-go/internal/handler/http/middleware"
	"github.com/restotrack/personnel-backend-go/internal/handler/http/response"
	absenceService "github.com/restotrack/personnel-backend-go/internal/service/absence"
)

type AbsenceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absenceService.AbsenceService
}

func NewAbsenceHandler(service absenceService.AbsenceService) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: service}
}

func (h *AbsenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req absence.CreateAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.CreatedBy == "" {
		req.CreatedBy = middleware.UserID(r)
	}

	resp, err := h.absenceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence created successfully", resp)
}

func (h *AbsenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	req := absence.DeleteAbsenceRequest{
		AbsenceID: chi.URLParam(r, "id"),
		DeletedBy: middleware.UserID(r),
	}

	if err := h.absenceService.Delete(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence deleted successfully", nil)
}

func (h *AbsenceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Absence ID is required", nil)
		return
	}

	resp, err := h.absenceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := absence.Filter{
		PersonnelID: r.URL.Query().Get("personnel_id"),
	}
	if from := r.URL.Query().Get("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			response.BadRequest(w, errInvalidDateParam("from").Error(), nil)
			return
		}
		filter.From = t
	}
	if to := r.URL.Query().Get("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			response.BadRequest(w, errInvalidDateParam("to").Error(), nil)
			return
		}
		filter.To = t
	}

	resp, err := h.absenceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
