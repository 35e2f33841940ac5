package http

import (
	"net/http"
	"strconv"

	"github.com/restotrack/personnel-backend-go/internal/handler/http/response"
	auditService "github.com/restotrack/personnel-backend-go/internal/service/audit"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type AuditHandlerImpl struct {
	recorder auditService.Recorder
}

func NewAuditHandler(recorder auditService.Recorder) AuditHandler {
	return &AuditHandlerImpl{recorder: recorder}
}

func (h *AuditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.recorder.List(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
