package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/restotrack/personnel-backend-go/internal/handler/http/response"
	summaryService "github.com/restotrack/personnel-backend-go/internal/service/summary"
)

type SummaryHandler interface {
	Range(w http.ResponseWriter, r *http.Request)
	CurrentMonth(w http.ResponseWriter, r *http.Request)
	Trailing30(w http.ResponseWriter, r *http.Request)
}

type SummaryHandlerImpl struct {
	summaryService summaryService.SummaryService
}

func NewSummaryHandler(service summaryService.SummaryService) SummaryHandler {
	return &SummaryHandlerImpl{summaryService: service}
}

func (h *SummaryHandlerImpl) Range(w http.ResponseWriter, r *http.Request) {
	personnelID := chi.URLParam(r, "id")
	if personnelID == "" {
		response.BadRequest(w, "Personnel ID is required", nil)
		return
	}

	from, err := time.Parse("2006-01-02", r.URL.Query().Get("from"))
	if err != nil {
		response.BadRequest(w, errInvalidDateParam("from").Error(), nil)
		return
	}
	to, err := time.Parse("2006-01-02", r.URL.Query().Get("to"))
	if err != nil {
		response.BadRequest(w, errInvalidDateParam("to").Error(), nil)
		return
	}
	if to.Before(from) {
		response.BadRequest(w, "to must not be before from", nil)
		return
	}

	resp, err := h.summaryService.Range(r.Context(), personnelID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *SummaryHandlerImpl) CurrentMonth(w http.ResponseWriter, r *http.Request) {
	personnelID := chi.URLParam(r, "id")
	if personnelID == "" {
		response.BadRequest(w, "Personnel ID is required", nil)
		return
	}

	resp, err := h.summaryService.CurrentMonth(r.Context(), personnelID, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *SummaryHandlerImpl) Trailing30(w http.ResponseWriter, r *http.Request) {
	personnelID := chi.URLParam(r, "id")
	if personnelID == "" {
		response.BadRequest(w, "Personnel ID is required", nil)
		return
	}

	resp, err := h.summaryService.Trailing30(r.Context(), personnelID, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
