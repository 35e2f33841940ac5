package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/restotrack/personnel-backend-go/internal/domain/personnel"
	"github.com/restotrack/personnel-backend-go/internal/handler/http/middleware"
	"github.com/restotrack/personnel-backend-go/internal/handler/http/response"
	personnelService "github.com/restotrack/personnel-backend-go/internal/service/personnel"
)

type PersonnelHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type PersonnelHandlerImpl struct {
	personnelService personnelService.PersonnelService
}

func NewPersonnelHandler(service personnelService.PersonnelService) PersonnelHandler {
	return &PersonnelHandlerImpl{personnelService: service}
}

func (h *PersonnelHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req personnel.CreatePersonnelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.personnelService.Create(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Personnel created successfully", resp)
}

func (h *PersonnelHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req personnel.UpdatePersonnelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.personnelService.Update(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Personnel updated successfully", resp)
}

func (h *PersonnelHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Personnel ID is required", nil)
		return
	}

	resp, err := h.personnelService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *PersonnelHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	resp, err := h.personnelService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *PersonnelHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Personnel ID is required", nil)
		return
	}

	if err := h.personnelService.Deactivate(r.Context(), middleware.UserID(r), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Personnel deactivated successfully", nil)
}
