package handler

import (
	"net/http"

	"carebook/internal/usecase"
	"carebook/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

func (h *AuditLogHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	logs, err := h.auditLogUsecase.ListRecent(r.Context())
	if err != nil {
		response.InternalServerError(w, "failed to get audit logs")
		return
	}

	response.JSON(w, http.StatusOK, logs)
}
