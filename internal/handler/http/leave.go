package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/restotrack/personnel-backend-go/internal/domain/leave"
	"github.com/restotrack/personnel-backend-go/internal/handler/http/middleware"
	"github.com/restotrack/personnel-backend-go/internal/handler/http/response"
	leaveService "github.com/restotrack/personnel-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leaveService.LeaveService
}

func NewLeaveHandler(service leaveService.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: service}
}

func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.ApprovedBy == "" {
		req.ApprovedBy = middleware.UserID(r)
	}

	resp, err := h.leaveService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave created successfully", resp)
}

func (h *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	req := leave.DeleteLeaveRequest{
		LeaveID:   chi.URLParam(r, "id"),
		DeletedBy: middleware.UserID(r),
	}

	resp, err := h.leaveService.Delete(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave deleted successfully", resp)
}

func (h *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	resp, err := h.leaveService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.List(r.Context(), r.URL.Query().Get("personnel_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
