package repository

import (
	"context"

	"carebook/internal/domain/entity"
	domainRepo "carebook/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clinicianProfileRepository struct {
	db *gorm.DB
}

func NewClinicianProfileRepository(db *gorm.DB) domainRepo.ClinicianProfileRepository {
	return &clinicianProfileRepository{db: db}
}

func (r *clinicianProfileRepository) Create(ctx context.Context, profile *entity.ClinicianProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *clinicianProfileRepository) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.ClinicianProfile{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *clinicianProfileRepository) FindAll(ctx context.Context) ([]entity.ClinicianProfile, error) {
	var profiles []entity.ClinicianProfile
	err := r.db.WithContext(ctx).Preload("User").Order("specialization").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
