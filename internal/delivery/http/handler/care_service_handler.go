package handler

import (
	"net/http"

	"carebook/internal/usecase"
	"carebook/pkg/response"
)

type CareServiceHandler struct {
	careServiceUsecase usecase.CareServiceUsecase
}

func NewCareServiceHandler(careServiceUsecase usecase.CareServiceUsecase) *CareServiceHandler {
	return &CareServiceHandler{careServiceUsecase: careServiceUsecase}
}

func (h *CareServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.careServiceUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "failed to get services")
		return
	}

	response.JSON(w, http.StatusOK, services)
}
