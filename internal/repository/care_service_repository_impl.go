package repository

import (
	"context"

	"carebook/internal/domain/entity"
	domainRepo "carebook/internal/domain/repository"

	"gorm.io/gorm"
)

type careServiceRepository struct {
	db *gorm.DB
}

func NewCareServiceRepository(db *gorm.DB) domainRepo.CareServiceRepository {
	return &careServiceRepository{db: db}
}

func (r *careServiceRepository) Create(ctx context.Context, service *entity.CareService) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *careServiceRepository) FindAll(ctx context.Context) ([]entity.CareService, error) {
	var services []entity.CareService
	err := r.db.WithContext(ctx).Order("name").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}
