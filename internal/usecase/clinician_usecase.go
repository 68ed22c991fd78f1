package usecase

import (
	"context"

	"carebook/internal/converter"
	"carebook/internal/delivery/dto"
	"carebook/internal/domain/repository"
)

type ClinicianUsecase interface {
	List(ctx context.Context) ([]dto.ClinicianResponse, error)
}

type clinicianUsecase struct {
	clinicianRepo repository.ClinicianProfileRepository
}

func NewClinicianUsecase(clinicianRepo repository.ClinicianProfileRepository) ClinicianUsecase {
	return &clinicianUsecase{clinicianRepo: clinicianRepo}
}

func (u *clinicianUsecase) List(ctx context.Context) ([]dto.ClinicianResponse, error) {
	profiles, err := u.clinicianRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return converter.CliniciansToResponses(profiles), nil
}
