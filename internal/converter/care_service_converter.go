package converter

import (
	"carebook/internal/delivery/dto"
	"carebook/internal/domain/entity"
)

func CareServiceToResponse(service *entity.CareService) *dto.CareServiceResponse {
	if service == nil {
		return nil
	}

	return &dto.CareServiceResponse{
		ID:          service.ID,
		Name:        service.Name,
		Description: service.Description,
		Price:       service.Price,
	}
}

func CareServicesToResponses(services []entity.CareService) []dto.CareServiceResponse {
	responses := make([]dto.CareServiceResponse, len(services))
	for i, service := range services {
		resp := CareServiceToResponse(&service)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
