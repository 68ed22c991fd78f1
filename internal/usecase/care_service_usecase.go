package usecase

import (
	"context"

	"carebook/internal/converter"
	"carebook/internal/delivery/dto"
	"carebook/internal/domain/repository"
)

type CareServiceUsecase interface {
	List(ctx context.Context) ([]dto.CareServiceResponse, error)
}

type careServiceUsecase struct {
	careServiceRepo repository.CareServiceRepository
}

func NewCareServiceUsecase(careServiceRepo repository.CareServiceRepository) CareServiceUsecase {
	return &careServiceUsecase{careServiceRepo: careServiceRepo}
}

func (u *careServiceUsecase) List(ctx context.Context) ([]dto.CareServiceResponse, error) {
	services, err := u.careServiceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return converter.CareServicesToResponses(services), nil
}
