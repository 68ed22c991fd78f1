package handler

import (
	"net/http"

	"carebook/internal/usecase"
	"carebook/pkg/response"
)

type ClinicianHandler struct {
	clinicianUsecase usecase.ClinicianUsecase
}

func NewClinicianHandler(clinicianUsecase usecase.ClinicianUsecase) *ClinicianHandler {
	return &ClinicianHandler{clinicianUsecase: clinicianUsecase}
}

func (h *ClinicianHandler) ListClinicians(w http.ResponseWriter, r *http.Request) {
	clinicians, err := h.clinicianUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "failed to get clinicians")
		return
	}

	response.JSON(w, http.StatusOK, clinicians)
}
